package statepersist

import (
	"context"
	"time"

	"github.com/gabapcia/transferwatch/internal/pkg/logger"
	"github.com/gabapcia/transferwatch/internal/pkg/metrics"
)

// RequestSave implements Service.
func (s *service) RequestSave(ctx context.Context, state DurableState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		logger.Warn(ctx, "snapshot save requested after close, dropping",
			"snapshot.watches", len(state.Watches),
		)
		return
	}

	s.seq++
	s.pending = &pendingSnapshot{
		ctx:   context.WithoutCancel(ctx),
		state: state,
		seq:   s.seq,
	}

	if s.timer == nil {
		s.timer = time.AfterFunc(s.cfg.debounce, s.fire)
		return
	}

	s.timer.Reset(s.cfg.debounce)
}

// takePending detaches the pending snapshot, if any.
func (s *service) takePending() *pendingSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.pending
	s.pending = nil
	return p
}

// fire runs on the debounce timer.
func (s *service) fire() {
	_ = s.writePending()
}

// Flush implements Service.
func (s *service) Flush(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	if s.pending != nil {
		s.pending.ctx = ctx
	}
	s.mu.Unlock()

	return s.writePending()
}

// writePending stores the latest pending snapshot. The pending slot is read
// under writeMu, so concurrent writers always store snapshots in request
// order and a caller returning from here knows no older write is in flight.
func (s *service) writePending() error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	p := s.takePending()
	if p == nil {
		return nil
	}

	ctx := p.ctx
	if err := s.storage.SaveSnapshot(ctx, p.state); err != nil {
		metrics.SnapshotWrites.WithLabelValues(metrics.OutcomeFailure).Inc()
		logger.Error(ctx, "failed to write snapshot",
			"snapshot.seq", p.seq,
			"snapshot.watches", len(p.state.Watches),
			"error", err,
		)
		return err
	}

	metrics.SnapshotWrites.WithLabelValues(metrics.OutcomeSuccess).Inc()
	logger.Debug(ctx, "snapshot written",
		"snapshot.seq", p.seq,
		"snapshot.allow_list", len(p.state.AllowList),
		"snapshot.watches", len(p.state.Watches),
	)
	return nil
}
