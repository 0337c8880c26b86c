package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Kitchen-facing status values, lowercase for display like the original
// board. Only these three drive the advance button.
const (
	ViewStatusNew       = "new"
	ViewStatusPreparing = "preparing"
	ViewStatusReady     = "ready"
	ViewStatusCompleted = "completed"
)

// OrderView is the kitchen display shape of one order.
type OrderView struct {
	ID             string
	Lines          []string // rendered as "{quantity}x {name}"
	Status         string
	OrderType      string
	TableNumber    string
	SpecialRequest string
}

// SyncState is what a poll leaves behind for the display to render.
type SyncState struct {
	Orders       []OrderView
	AccessDenied bool   // 401/403 from the server; do not auto-logout
	ConnFailed   bool   // transient; the next successful poll clears it
	LastError    string // human-readable companion to the flags
}

// KitchenSync polls the order store on an interval and reconciles the remote
// state into a local view. Server state always wins: each applied poll
// replaces the whole list. Responses are sequence-numbered so a stale poll
// arriving late can never overwrite a newer one.
type KitchenSync struct {
	API      *API
	Interval time.Duration

	mu         sync.Mutex
	orders     []OrderView
	accessErr  bool
	connErr    bool
	lastErr    string
	nextSeq    uint64
	appliedSeq uint64
	onChange   func(SyncState)
}

func NewKitchenSync(api *API) *KitchenSync {
	return &KitchenSync{API: api, Interval: 5 * time.Second}
}

// OnChange registers a render callback invoked after every applied poll and
// every optimistic advance.
func (s *KitchenSync) OnChange(fn func(SyncState)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Run polls until ctx is cancelled. It is meant to be started when the
// kitchen view becomes active and cancelled when the view goes away, so
// request volume stays bounded. In-flight requests are not aborted, only
// their results discarded by the sequence check.
func (s *KitchenSync) Run(ctx context.Context) {
	s.Poll(ctx)
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Poll(ctx)
		}
	}
}

// Poll fetches the active orders and applies them unless a newer poll already
// landed. Both error conditions are sticky until the next success.
func (s *KitchenSync) Poll(ctx context.Context) error {
	s.mu.Lock()
	s.nextSeq++
	seq := s.nextSeq
	s.mu.Unlock()

	remote, err := s.API.ActiveOrders(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq <= s.appliedSeq {
		// a newer response was applied while this one was in flight
		return nil
	}

	if err != nil {
		s.appliedSeq = seq
		if errors.Is(err, ErrAccessDenied) {
			s.accessErr = true
			s.lastErr = "Access denied. Please log in again."
		} else {
			s.connErr = true
			s.lastErr = "Connection failed. Is the backend running?"
		}
		s.notifyLocked()
		return err
	}

	s.appliedSeq = seq
	s.orders = mapOrders(remote)
	s.accessErr = false
	s.connErr = false
	s.lastErr = ""
	s.notifyLocked()
	return nil
}

// State returns a copy of the current view state.
func (s *KitchenSync) State() SyncState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// Advance applies the two-step button to one order: NEW starts preparation,
// PREPARING completes, anything else is a no-op. The local view flips first
// so the UI feels immediate; the write then goes to the store. If the write
// fails transiently the optimistic state stands until the next poll corrects
// it (last poll wins, deliberately not a two-phase commit).
func (s *KitchenSync) Advance(ctx context.Context, orderID string) error {
	s.mu.Lock()
	var next string
	found := false
	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		found = true
		switch s.orders[i].Status {
		case ViewStatusNew:
			next = ViewStatusPreparing
		case ViewStatusPreparing:
			next = ViewStatusCompleted
		}
		if next != "" {
			s.orders[i].Status = next
		}
		break
	}
	s.notifyLocked()
	s.mu.Unlock()

	if !found || next == "" {
		return nil
	}

	if err := s.API.UpdateOrderStatus(ctx, orderID, toRemoteStatus(next)); err != nil {
		if errors.Is(err, ErrAccessDenied) {
			return err
		}
		// keep the optimistic state; the next poll reconciles
		return fmt.Errorf("%w: status update not confirmed", ErrConnection)
	}
	return nil
}

func (s *KitchenSync) stateLocked() SyncState {
	orders := make([]OrderView, len(s.orders))
	copy(orders, s.orders)
	return SyncState{
		Orders:       orders,
		AccessDenied: s.accessErr,
		ConnFailed:   s.connErr,
		LastError:    s.lastErr,
	}
}

func (s *KitchenSync) notifyLocked() {
	if s.onChange != nil {
		s.onChange(s.stateLocked())
	}
}

func mapOrders(remote []RemoteOrder) []OrderView {
	out := make([]OrderView, 0, len(remote))
	for _, o := range remote {
		lines := make([]string, 0, len(o.Items))
		for _, it := range o.Items {
			lines = append(lines, fmt.Sprintf("%dx %s", it.Quantity, it.Name))
		}
		out = append(out, OrderView{
			ID:             o.ID,
			Lines:          lines,
			Status:         toViewStatus(o.Status),
			OrderType:      o.OrderType,
			TableNumber:    o.TableNumber,
			SpecialRequest: o.SpecialRequest,
		})
	}
	return out
}

func toViewStatus(remote string) string {
	switch remote {
	case "NEW":
		return ViewStatusNew
	case "PREPARING":
		return ViewStatusPreparing
	case "READY":
		return ViewStatusReady
	default:
		return ViewStatusCompleted
	}
}

func toRemoteStatus(view string) string {
	switch view {
	case ViewStatusNew:
		return "NEW"
	case ViewStatusPreparing:
		return "PREPARING"
	case ViewStatusReady:
		return "READY"
	default:
		return "COMPLETED"
	}
}
