package watchregistry

import (
	"context"

	"github.com/gabapcia/transferwatch/internal/pkg/logger"
)

// IsAllowed implements Service.
func (s *service) IsAllowed(owner Owner) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.allowList.Has(owner)
}

// IsAdmin implements Service.
func (s *service) IsAdmin(owner Owner) bool {
	return owner == s.admin
}

// Allow implements Service.
func (s *service) Allow(ctx context.Context, owner Owner) (err error) {
	ctx, span := startOperation(ctx, "allow", owner)
	defer func() { endOperation(span, "allow", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.allowList.Has(owner) {
		return ErrAlreadyAllowed
	}

	s.allowList.Add(owner)
	s.requestSaveLocked(ctx)

	logger.Info(ctx, "owner allowed", "owner", owner)
	return nil
}

// Disallow implements Service.
func (s *service) Disallow(ctx context.Context, owner Owner) (err error) {
	ctx, span := startOperation(ctx, "disallow", owner)
	defer func() { endOperation(span, "disallow", err) }()

	if s.IsAdmin(owner) {
		return ErrAdminNotRemovable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.allowList.Has(owner) {
		return ErrNotAllowed
	}

	s.allowList.Delete(owner)
	s.requestSaveLocked(ctx)

	logger.Info(ctx, "owner disallowed", "owner", owner)
	return nil
}
