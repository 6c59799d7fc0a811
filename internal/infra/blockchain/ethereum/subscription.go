package ethereum

import (
	"context"

	"github.com/gabapcia/transferwatch/internal/watchregistry"
)

// subscription stops one polling loop.
type subscription struct {
	cancel context.CancelFunc
	done   chan struct{} // closed when the polling loop has returned
}

var _ watchregistry.Subscription = (*subscription)(nil)

// Unsubscribe implements watchregistry.Subscription. It does not wait for a
// poll in progress to finish.
func (s *subscription) Unsubscribe() {
	s.cancel()
}
