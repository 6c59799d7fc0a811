package watchregistry

import (
	"context"
	"fmt"
	"slices"

	"github.com/gabapcia/transferwatch/internal/pkg/logger"
	"github.com/gabapcia/transferwatch/internal/pkg/metrics"
	"github.com/gabapcia/transferwatch/internal/statepersist"

	"github.com/ethereum/go-ethereum/common"
)

// Owner is the chat identity a watch belongs to.
type Owner int64

// TransferWatch is one owner's interest in transfers of a token into a
// destination address.
type TransferWatch struct {
	Owner              Owner
	DestinationAddress common.Address
	TokenAddress       common.Address
	DisplayAlias       string // shown instead of the destination when set

	handle *CancelHandle
}

// Active reports whether the watch has a live subscription.
func (w TransferWatch) Active() bool {
	return w.handle != nil && w.handle.Active()
}

func (w TransferWatch) key() watchKey {
	return watchKey{
		owner:       w.Owner,
		token:       w.TokenAddress,
		destination: w.DestinationAddress,
	}
}

func (w TransferWatch) descriptor() statepersist.WatchDescriptor {
	return statepersist.WatchDescriptor{
		Owner:        int64(w.Owner),
		ToAddress:    w.DestinationAddress.Hex(),
		TokenAddress: w.TokenAddress.Hex(),
		ToAlias:      w.DisplayAlias,
	}
}

// ParseAddress decodes a 0x-prefixed hex address in any letter case.
// It returns ErrInvalidAddress for malformed input and the zero address.
func ParseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}

	addr := common.HexToAddress(s)
	if addr == (common.Address{}) {
		return common.Address{}, fmt.Errorf("%w: zero address", ErrInvalidAddress)
	}

	return addr, nil
}

// indexLocked returns the position of the watch identified by key, or -1.
// s.mu must be held.
func (s *service) indexLocked(key watchKey) int {
	return slices.IndexFunc(s.watches, func(w TransferWatch) bool {
		return w.key() == key
	})
}

// ownerCountLocked counts the owner's watches, including adds in flight.
// s.mu must be held.
func (s *service) ownerCountLocked(owner Owner) int {
	count := 0
	for _, w := range s.watches {
		if w.Owner == owner {
			count++
		}
	}
	for key := range s.inFlight {
		if key.owner == owner {
			count++
		}
	}
	return count
}

// reserve runs the admission checks of AddWatch and, on success, marks key
// as in flight so concurrent adds see it.
func (s *service) reserve(key watchKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.closed:
		return fmt.Errorf("%w: registry closed", ErrWatchSetupFailed)
	case !s.allowList.Has(key.owner):
		return ErrUnauthorized
	case s.indexLocked(key) >= 0 || s.inFlight.Has(key):
		return ErrAlreadyWatching
	case s.ownerCountLocked(key.owner) >= s.cfg.maxWatchesPerUser:
		return ErrQuotaExceeded
	}

	s.inFlight.Add(key)
	return nil
}

// subscribe establishes the ledger subscription of w, bounded by the setup
// timeout, and activates its handle.
func (s *service) subscribe(ctx context.Context, w TransferWatch) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.setupTimeout)
	defer cancel()

	sub, err := s.ledger.Subscribe(ctx, w.TokenAddress, w.DestinationAddress, s.notifier(w))
	if err != nil {
		return err
	}

	w.handle.activate(sub)
	return nil
}

// AddWatch implements Service.
func (s *service) AddWatch(ctx context.Context, owner Owner, token, destination common.Address, alias string) (w TransferWatch, err error) {
	ctx, span := startOperation(ctx, "add", owner)
	defer func() { endOperation(span, "add", err) }()

	if token == (common.Address{}) || destination == (common.Address{}) {
		return TransferWatch{}, fmt.Errorf("%w: zero address", ErrInvalidAddress)
	}

	w = TransferWatch{
		Owner:              owner,
		DestinationAddress: destination,
		TokenAddress:       token,
		DisplayAlias:       alias,
		handle:             newCancelHandle(),
	}
	key := w.key()

	if err := s.reserve(key); err != nil {
		return TransferWatch{}, err
	}

	subErr := s.subscribe(ctx, w)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.inFlight.Delete(key)

	if subErr != nil {
		logger.Warn(ctx, "failed to subscribe to transfers",
			"owner", owner,
			"token", token.Hex(),
			"destination", destination.Hex(),
			"error", subErr,
		)
		return TransferWatch{}, fmt.Errorf("%w: %w", ErrWatchSetupFailed, subErr)
	}

	if s.closed {
		w.handle.Cancel()
		return TransferWatch{}, fmt.Errorf("%w: registry closed", ErrWatchSetupFailed)
	}

	s.watches = append(s.watches, w)
	metrics.WatchesActive.Set(float64(len(s.watches)))
	s.requestSaveLocked(ctx)

	logger.Info(ctx, "watch added",
		"owner", owner,
		"token", token.Hex(),
		"destination", destination.Hex(),
	)
	return w, nil
}

// RemoveWatch implements Service.
func (s *service) RemoveWatch(ctx context.Context, owner Owner, token, destination common.Address) (err error) {
	ctx, span := startOperation(ctx, "remove", owner)
	defer func() { endOperation(span, "remove", err) }()

	key := watchKey{owner: owner, token: token, destination: destination}

	s.mu.Lock()
	i := s.indexLocked(key)
	if i < 0 {
		s.mu.Unlock()
		return ErrNotWatching
	}

	w := s.watches[i]
	s.watches = slices.Delete(s.watches, i, i+1)
	metrics.WatchesActive.Set(float64(len(s.watches)))
	s.requestSaveLocked(ctx)
	s.mu.Unlock()

	// Detached first: a batch racing this call sees either the live watch
	// or a cancelled handle, never a half-removed entry.
	w.handle.Cancel()

	logger.Info(ctx, "watch removed",
		"owner", owner,
		"token", token.Hex(),
		"destination", destination.Hex(),
	)
	return nil
}

// ListWatches implements Service.
func (s *service) ListWatches(_ context.Context) []TransferWatch {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.watches)
}

// ListOwnerWatches implements Service.
func (s *service) ListOwnerWatches(_ context.Context, owner Owner) []TransferWatch {
	s.mu.Lock()
	defer s.mu.Unlock()

	var watches []TransferWatch
	for _, w := range s.watches {
		if w.Owner == owner {
			watches = append(watches, w)
		}
	}
	return watches
}
