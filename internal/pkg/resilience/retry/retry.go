// Package retry provides a configurable retry mechanism for operations that
// may fail temporarily. It wraps avast/retry-go with exponential backoff and
// exposes functional options for attempts and delays.
//
//	r := retry.New(retry.WithAttempts(5))
//	err := r.Execute(ctx, func() error {
//	    return subscribe()
//	})
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes an operation until it succeeds, the attempts are exhausted
// or the context is done.
type Retry interface {
	// Execute runs operation with the configured retry policy. It returns nil
	// as soon as one attempt succeeds. Otherwise it returns the last error
	// (or every attempt's error, see WithLastErrorOnly).
	Execute(ctx context.Context, operation func() error) error
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts    uint          // total attempts, including the first one
	delay       time.Duration // base delay before the first retry
	maxDelay    time.Duration // cap for the exponential backoff
	lastErrOnly bool          // return only the error of the final attempt
	retryIf     func(error) bool
}

// Option configures the retry mechanism.
type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry with the given options applied over the defaults:
// 3 attempts, 1s base delay, 5s max delay, last error only.
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute implements Retry.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	opts := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
	}
	if r.cfg.retryIf != nil {
		opts = append(opts, retry.RetryIf(r.cfg.retryIf))
	}

	return retry.Do(operation, opts...)
}

// WithAttempts sets the total number of attempts. Default: 3.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between attempts. Default: 1s.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the backoff delay. Default: 5s.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly controls whether only the final attempt's error is
// returned (true) or all attempt errors combined (false). Default: true.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithRetryIf stops retrying as soon as an attempt fails with an error for
// which f returns false. By default every error is retried.
func WithRetryIf(f func(error) bool) Option {
	return func(c *config) {
		c.retryIf = f
	}
}
