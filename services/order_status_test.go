package services

import (
	"testing"

	"github.com/Bossnapi119/pakawinasiayam/entity"
)

func TestNextAdvance(t *testing.T) {
	tests := []struct {
		from entity.OrderStatus
		want entity.OrderStatus
		ok   bool
	}{
		{entity.StatusNew, entity.StatusPreparing, true},
		{entity.StatusPreparing, entity.StatusCompleted, true},
		{entity.StatusReady, entity.StatusReady, false},
		{entity.StatusCompleted, entity.StatusCompleted, false},
		{entity.StatusCancelled, entity.StatusCancelled, false},
	}
	for _, tc := range tests {
		got, ok := NextAdvance(tc.from)
		if got != tc.want || ok != tc.ok {
			t.Errorf("NextAdvance(%s) = %s,%v; want %s,%v", tc.from, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCanTransitionForwardOnly(t *testing.T) {
	forward := []struct{ from, to entity.OrderStatus }{
		{entity.StatusNew, entity.StatusPreparing},
		{entity.StatusNew, entity.StatusCancelled},
		{entity.StatusPreparing, entity.StatusReady},
		{entity.StatusPreparing, entity.StatusCompleted},
		{entity.StatusPreparing, entity.StatusCancelled},
		{entity.StatusReady, entity.StatusCompleted},
	}
	for _, tc := range forward {
		if !CanTransition(tc.from, tc.to) {
			t.Errorf("%s -> %s should be allowed", tc.from, tc.to)
		}
	}

	backward := []struct{ from, to entity.OrderStatus }{
		{entity.StatusPreparing, entity.StatusNew},
		{entity.StatusCompleted, entity.StatusPreparing},
		{entity.StatusCompleted, entity.StatusNew},
		{entity.StatusCancelled, entity.StatusNew},
		{entity.StatusReady, entity.StatusCancelled},
	}
	for _, tc := range backward {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("%s -> %s must not be allowed", tc.from, tc.to)
		}
	}
}
