package watchregistry

import "sync"

// handleState is the lifecycle position of a CancelHandle.
type handleState int

const (
	handlePending   handleState = iota // subscription not established yet
	handleActive                       // subscription live
	handleCancelled                    // terminal
)

// CancelHandle owns the subscription of one watch. It moves
// Pending → Active → Cancelled, or Pending → Cancelled when the watch is
// torn down before its subscription is established.
type CancelHandle struct {
	mu    sync.Mutex
	state handleState
	sub   Subscription
}

func newCancelHandle() *CancelHandle {
	return &CancelHandle{}
}

// activate binds sub to the handle. If the handle was cancelled meanwhile,
// sub is unsubscribed immediately and false is returned.
func (h *CancelHandle) activate(sub Subscription) bool {
	h.mu.Lock()
	if h.state == handleCancelled {
		h.mu.Unlock()
		sub.Unsubscribe()
		return false
	}

	h.sub = sub
	h.state = handleActive
	h.mu.Unlock()
	return true
}

// Cancel stops the subscription. Calling it again is a no-op.
//
// Unsubscribe runs outside the handle lock: a batch being delivered may
// still query Cancelled while the subscription winds down.
func (h *CancelHandle) Cancel() {
	h.mu.Lock()
	sub := h.sub
	h.sub = nil
	h.state = handleCancelled
	h.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
}

// Active reports whether the subscription is live.
func (h *CancelHandle) Active() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state == handleActive
}

// Cancelled reports whether Cancel was called.
func (h *CancelHandle) Cancelled() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state == handleCancelled
}
