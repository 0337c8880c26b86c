package services

import (
	"github.com/Bossnapi119/pakawinasiayam/entity"
)

// NextAdvance is the kitchen's forward-only button: NEW starts preparation,
// PREPARING completes. READY stays addressable through the general status
// endpoint but the two-step advance skips it, matching how staff actually
// work the queue. Everything else is terminal for this action.
func NextAdvance(s entity.OrderStatus) (entity.OrderStatus, bool) {
	switch s {
	case entity.StatusNew:
		return entity.StatusPreparing, true
	case entity.StatusPreparing:
		return entity.StatusCompleted, true
	default:
		return s, false
	}
}

// allowedTransitions is the full fulfillment state machine used by the status
// endpoint. Forward-only; CANCELLED is an administrative exit from NEW or
// PREPARING. Payment status is a separate axis and never appears here.
var allowedTransitions = map[entity.OrderStatus][]entity.OrderStatus{
	entity.StatusNew:       {entity.StatusPreparing, entity.StatusReady, entity.StatusCompleted, entity.StatusCancelled},
	entity.StatusPreparing: {entity.StatusReady, entity.StatusCompleted, entity.StatusCancelled},
	entity.StatusReady:     {entity.StatusCompleted},
}

func CanTransition(from, to entity.OrderStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
