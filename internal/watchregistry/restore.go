package watchregistry

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/transferwatch/internal/pkg/logger"
	"github.com/gabapcia/transferwatch/internal/pkg/metrics"
	"github.com/gabapcia/transferwatch/internal/pkg/types"
	"github.com/gabapcia/transferwatch/internal/statepersist"

	"golang.org/x/sync/errgroup"
)

// SnapshotLoader reads the stored snapshot.
type SnapshotLoader interface {
	// LoadSnapshot returns statepersist.ErrNoSnapshot when nothing was saved
	// and statepersist.ErrCorruptSnapshot when the snapshot is unreadable.
	LoadSnapshot(ctx context.Context) (statepersist.DurableState, error)

	// QuarantineSnapshot moves an unreadable snapshot aside before the
	// registry starts empty and later saves replace it.
	QuarantineSnapshot(ctx context.Context) error
}

// loadSnapshot applies the restore policy to the loader's outcome. ok is
// false when there is nothing to restore.
func (s *service) loadSnapshot(ctx context.Context, loader SnapshotLoader) (state statepersist.DurableState, ok bool, err error) {
	state, err = loader.LoadSnapshot(ctx)
	switch {
	case err == nil:
		return state, true, nil
	case errors.Is(err, statepersist.ErrNoSnapshot):
		logger.Info(ctx, "no snapshot found, starting with an empty registry")
		return statepersist.DurableState{}, false, nil
	case errors.Is(err, statepersist.ErrCorruptSnapshot) && !s.cfg.strictRestore:
		logger.Error(ctx, "snapshot is corrupt, starting with an empty registry", "error", err)
		if qErr := loader.QuarantineSnapshot(ctx); qErr != nil {
			return statepersist.DurableState{}, false, fmt.Errorf("snapshot is corrupt and could not be moved aside: %w", errors.Join(err, qErr))
		}
		return statepersist.DurableState{}, false, nil
	default:
		return statepersist.DurableState{}, false, fmt.Errorf("loading snapshot: %w", err)
	}
}

// restoreCandidates turns descriptors into watches, dropping invalid,
// duplicate and over-quota entries. Order is preserved.
func (s *service) restoreCandidates(ctx context.Context, descriptors []statepersist.WatchDescriptor) []TransferWatch {
	var (
		seen       = types.NewSet[watchKey]()
		perOwner   = make(map[Owner]int)
		candidates = make([]TransferWatch, 0, len(descriptors))
	)

	for _, d := range descriptors {
		token, tokenErr := ParseAddress(d.TokenAddress)
		destination, destinationErr := ParseAddress(d.ToAddress)
		if err := errors.Join(tokenErr, destinationErr); err != nil {
			logger.Warn(ctx, "dropping restored watch with an invalid address",
				"owner", d.Owner,
				"token", d.TokenAddress,
				"destination", d.ToAddress,
				"error", err,
			)
			continue
		}

		w := TransferWatch{
			Owner:              Owner(d.Owner),
			DestinationAddress: destination,
			TokenAddress:       token,
			DisplayAlias:       d.ToAlias,
			handle:             newCancelHandle(),
		}

		if seen.Has(w.key()) {
			logger.Warn(ctx, "dropping duplicate restored watch",
				"owner", d.Owner,
				"token", d.TokenAddress,
				"destination", d.ToAddress,
			)
			continue
		}

		if perOwner[w.Owner] >= s.cfg.maxWatchesPerUser {
			logger.Warn(ctx, "dropping restored watch over quota",
				"owner", d.Owner,
				"token", d.TokenAddress,
				"destination", d.ToAddress,
			)
			continue
		}

		seen.Add(w.key())
		perOwner[w.Owner]++
		candidates = append(candidates, w)
	}

	return candidates
}

// resubscribe establishes subscriptions for candidates concurrently and
// reports which succeeded, by index.
func (s *service) resubscribe(ctx context.Context, candidates []TransferWatch) []bool {
	succeeded := make([]bool, len(candidates))

	var g errgroup.Group
	g.SetLimit(max(s.cfg.restoreConcurrency, 1))

	for i, w := range candidates {
		g.Go(func() error {
			err := s.retry.Execute(ctx, func() error {
				return s.subscribe(ctx, w)
			})
			if err != nil {
				logger.Warn(ctx, "dropping restored watch, subscription failed",
					"owner", w.Owner,
					"token", w.TokenAddress.Hex(),
					"destination", w.DestinationAddress.Hex(),
					"error", err,
				)
				return nil
			}

			succeeded[i] = true
			return nil
		})
	}

	_ = g.Wait()
	return succeeded
}

// Restore implements Service.
func (s *service) Restore(ctx context.Context, loader SnapshotLoader) (err error) {
	ctx, span := startOperation(ctx, "restore", s.admin)
	defer func() { endOperation(span, "restore", err) }()

	s.mu.Lock()
	if s.restored {
		s.mu.Unlock()
		return ErrAlreadyRestored
	}
	s.restored = true
	s.mu.Unlock()

	state, ok, err := s.loadSnapshot(ctx, loader)
	if err != nil {
		// Nothing was applied, so a later Restore may try again.
		s.mu.Lock()
		s.restored = false
		s.mu.Unlock()
		return err
	}
	if !ok {
		return nil
	}

	s.mu.Lock()
	for _, owner := range state.AllowList {
		s.allowList.Add(Owner(owner))
	}
	s.mu.Unlock()

	candidates := s.restoreCandidates(ctx, state.Watches)
	succeeded := s.resubscribe(ctx, candidates)

	s.mu.Lock()
	defer s.mu.Unlock()

	restored := 0
	for i, w := range candidates {
		if !succeeded[i] {
			continue
		}

		if s.closed || s.indexLocked(w.key()) >= 0 {
			w.handle.Cancel()
			continue
		}

		s.watches = append(s.watches, w)
		restored++
	}
	metrics.WatchesActive.Set(float64(len(s.watches)))

	logger.Info(ctx, "registry restored",
		"allow_list", s.allowList.Len(),
		"watches.stored", len(state.Watches),
		"watches.restored", restored,
	)
	return nil
}
