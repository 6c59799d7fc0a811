// Package watchregistry owns the set of transfer watches and the allow-list.
//
// It enforces per-owner deduplication and quota, keeps one live ledger
// subscription per watch, renders the transfers each subscription reports
// into chat notifications, and asks for a snapshot save on every mutation.
package watchregistry

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/transferwatch/internal/pkg/metrics"
	"github.com/gabapcia/transferwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/transferwatch/internal/pkg/types"
	"github.com/gabapcia/transferwatch/internal/statepersist"

	"github.com/ethereum/go-ethereum/common"
)

// Service manages transfer watches and the allow-list.
//
// All mutations are serialized; the slow ledger subscribe call runs outside
// the registry lock so a stalled node never blocks other commands.
type Service interface {
	// AddWatch subscribes to transfers of token into destination on behalf
	// of owner and records the watch.
	//
	// Returns:
	//   - ErrInvalidAddress for a zero address.
	//   - ErrUnauthorized if owner is not on the allow-list.
	//   - ErrAlreadyWatching if owner already watches (or is adding) the pair.
	//   - ErrQuotaExceeded if owner holds the maximum number of watches.
	//   - an error wrapping ErrWatchSetupFailed if the subscription fails.
	AddWatch(ctx context.Context, owner Owner, token, destination common.Address, alias string) (TransferWatch, error)

	// RemoveWatch detaches the owner's watch of the pair and cancels its
	// subscription. Returns ErrNotWatching if there is no such watch.
	RemoveWatch(ctx context.Context, owner Owner, token, destination common.Address) error

	// ListWatches returns every watch in insertion order.
	ListWatches(ctx context.Context) []TransferWatch

	// ListOwnerWatches returns the owner's watches in insertion order.
	ListOwnerWatches(ctx context.Context, owner Owner) []TransferWatch

	// Allow adds owner to the allow-list. Returns ErrAlreadyAllowed if it is
	// already there.
	Allow(ctx context.Context, owner Owner) error

	// Disallow removes owner from the allow-list. Returns ErrNotAllowed if it
	// is not there and ErrAdminNotRemovable for the administrator. Existing
	// watches of the owner keep running.
	Disallow(ctx context.Context, owner Owner) error

	// IsAllowed reports whether owner is on the allow-list.
	IsAllowed(owner Owner) bool

	// IsAdmin reports whether owner is the administrator.
	IsAdmin(owner Owner) bool

	// Status summarizes the registry.
	Status(ctx context.Context) Status

	// Restore rebuilds the registry from the snapshot returned by loader and
	// re-establishes a subscription for every restored watch. It must run
	// before commands are accepted and only once.
	Restore(ctx context.Context, loader SnapshotLoader) error

	// Close cancels every live subscription. Later adds fail.
	Close()
}

// StateSaver receives the durable view of the registry after each mutation.
type StateSaver interface {
	// RequestSave schedules state to be stored. It must not block on I/O.
	RequestSave(ctx context.Context, state statepersist.DurableState)
}

// Status is the summary returned by Service.Status.
type Status struct {
	AllowList     []Owner // ascending
	AllowListSize int
	WatchCount    int
}

// config holds the tunables of the registry.
type config struct {
	maxWatchesPerUser  int           // quota per owner
	setupTimeout       time.Duration // bound on one subscribe call
	restoreConcurrency int           // parallel re-subscriptions during Restore
	restoreAttempts    uint          // subscribe attempts per restored watch
	restoreRetryDelay  time.Duration // base backoff between restore attempts
	strictRestore      bool          // fail Restore on a corrupt snapshot
}

// Option configures the registry.
type Option func(*config)

// WithMaxWatchesPerUser sets the per-owner quota. Default: 5.
func WithMaxWatchesPerUser(n int) Option {
	return func(c *config) {
		c.maxWatchesPerUser = n
	}
}

// WithSetupTimeout bounds each ledger subscribe call. Default: 30s.
func WithSetupTimeout(d time.Duration) Option {
	return func(c *config) {
		c.setupTimeout = d
	}
}

// WithRestoreConcurrency sets how many watches are re-subscribed in
// parallel during Restore. Default: 4.
func WithRestoreConcurrency(n int) Option {
	return func(c *config) {
		c.restoreConcurrency = n
	}
}

// WithRestoreAttempts sets the subscribe attempts per restored watch and the
// base delay between them. Defaults: 3 attempts, 1s.
func WithRestoreAttempts(n uint, delay time.Duration) Option {
	return func(c *config) {
		c.restoreAttempts = n
		c.restoreRetryDelay = delay
	}
}

// WithStrictRestore makes Restore fail on a corrupt snapshot instead of
// starting empty.
func WithStrictRestore(strict bool) Option {
	return func(c *config) {
		c.strictRestore = strict
	}
}

// watchKey identifies a watch. Addresses compare by their decoded bytes.
type watchKey struct {
	owner       Owner
	token       common.Address
	destination common.Address
}

// service is the mutex-guarded implementation of Service.
type service struct {
	cfg   config
	admin Owner

	ledger LedgerWatcher
	sink   NotificationSink
	saver  StateSaver
	retry  retry.Retry

	mu        sync.Mutex
	allowList types.Set[Owner]
	watches   []TransferWatch
	inFlight  types.Set[watchKey] // adds past the checks, awaiting their subscription
	restored  bool
	closed    bool
}

// Compile-time check to ensure *service implements the Service interface.
var _ Service = (*service)(nil)

// New returns a registry whose allow-list initially holds only admin.
func New(admin Owner, ledger LedgerWatcher, sink NotificationSink, saver StateSaver, opts ...Option) *service {
	cfg := config{
		maxWatchesPerUser:  5,
		setupTimeout:       30 * time.Second,
		restoreConcurrency: 4,
		restoreAttempts:    3,
		restoreRetryDelay:  time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		cfg:    cfg,
		admin:  admin,
		ledger: ledger,
		sink:   sink,
		saver:  saver,
		retry: retry.New(
			retry.WithAttempts(cfg.restoreAttempts),
			retry.WithDelay(cfg.restoreRetryDelay),
			retry.WithRetryIf(func(err error) bool {
				return !errors.Is(err, ErrUnsupportedToken)
			}),
		),
		allowList: types.NewSet(admin),
		inFlight:  types.NewSet[watchKey](),
	}
}

// Status implements Service.
func (s *service) Status(_ context.Context) Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Status{
		AllowList:     types.Sorted(s.allowList),
		AllowListSize: s.allowList.Len(),
		WatchCount:    len(s.watches),
	}
}

// Close implements Service.
func (s *service) Close() {
	s.mu.Lock()
	watches := s.watches
	s.watches = nil
	s.closed = true
	s.mu.Unlock()

	for _, w := range watches {
		w.handle.Cancel()
	}
	metrics.WatchesActive.Set(0)
}

// durableStateLocked builds the snapshot of the registry. s.mu must be held.
func (s *service) durableStateLocked() statepersist.DurableState {
	owners := types.Sorted(s.allowList)
	allowList := make([]int64, len(owners))
	for i, o := range owners {
		allowList[i] = int64(o)
	}

	watches := make([]statepersist.WatchDescriptor, len(s.watches))
	for i, w := range s.watches {
		watches[i] = w.descriptor()
	}

	return statepersist.DurableState{
		AllowList: allowList,
		Watches:   watches,
	}
}

// requestSaveLocked hands the current snapshot to the saver. Calling it with
// s.mu held keeps requests in mutation order, so the last request always
// reflects the latest state.
func (s *service) requestSaveLocked(ctx context.Context) {
	s.saver.RequestSave(ctx, s.durableStateLocked())
}
