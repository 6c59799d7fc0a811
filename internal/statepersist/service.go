// Package statepersist writes the relay's durable state to a Storage backend
// without putting I/O on the command path. Save requests are coalesced with
// a trailing-edge debounce; only the latest snapshot of a burst is written.
package statepersist

import (
	"context"
	"sync"
	"time"
)

// Service schedules snapshot writes and loads the stored snapshot.
type Service interface {
	// RequestSave schedules state to be written once no newer request has
	// arrived for the debounce window. Each call replaces the pending
	// snapshot and restarts the window.
	//
	// It never blocks on I/O and never returns an error: write failures are
	// logged and counted. Callers must not mutate state after handing it over.
	RequestSave(ctx context.Context, state DurableState)

	// LoadSnapshot returns the stored snapshot, see Storage.LoadSnapshot.
	LoadSnapshot(ctx context.Context) (DurableState, error)

	// QuarantineSnapshot moves the stored snapshot aside, see
	// Storage.QuarantineSnapshot.
	QuarantineSnapshot(ctx context.Context) error

	// Flush writes the pending snapshot, if any, right away and returns the
	// write error.
	Flush(ctx context.Context) error

	// Close flushes and stops accepting save requests. Requests made after
	// Close are dropped.
	Close(ctx context.Context) error
}

// config holds the tunables of the service.
type config struct {
	debounce time.Duration // quiet period before a pending snapshot is written
}

// Option configures the service.
type Option func(*config)

// WithDebounce sets the coalescing window. Default: 1s.
func WithDebounce(d time.Duration) Option {
	return func(c *config) {
		c.debounce = d
	}
}

// pendingSnapshot is a requested snapshot waiting for its timer.
type pendingSnapshot struct {
	ctx   context.Context
	state DurableState
	seq   uint64
}

// service is the debounced implementation of Service.
//
// mu guards the pending snapshot and the timer. writeMu serializes writes.
type service struct {
	cfg     config
	storage Storage

	mu      sync.Mutex
	pending *pendingSnapshot
	seq     uint64 // request counter, for logs
	timer   *time.Timer
	closed  bool

	writeMu sync.Mutex
}

// Compile-time check to ensure *service implements the Service interface.
var _ Service = (*service)(nil)

// New returns a Service writing through storage.
func New(storage Storage, opts ...Option) *service {
	cfg := config{
		debounce: time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		cfg:     cfg,
		storage: storage,
	}
}

// LoadSnapshot implements Service.
func (s *service) LoadSnapshot(ctx context.Context) (DurableState, error) {
	return s.storage.LoadSnapshot(ctx)
}

// QuarantineSnapshot implements Service.
func (s *service) QuarantineSnapshot(ctx context.Context) error {
	return s.storage.QuarantineSnapshot(ctx)
}

// Close implements Service.
func (s *service) Close(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	return s.Flush(ctx)
}
