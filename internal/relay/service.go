// Package relay runs the transfer notification relay: it restores the
// registry from the last snapshot, serves chat commands, and on shutdown
// cancels every subscription and flushes the pending snapshot.
package relay

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gabapcia/transferwatch/internal/pkg/logger"
	"github.com/gabapcia/transferwatch/internal/statepersist"
	"github.com/gabapcia/transferwatch/internal/watchregistry"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
var ErrServiceAlreadyStarted = errors.New("service already started")

// Service is the relay lifecycle.
type Service interface {
	// Start restores the registry and starts serving commands in the
	// background. Commands are only accepted once restoration is done.
	//
	// Returns ErrServiceAlreadyStarted if Start is called more than once.
	Start(ctx context.Context) error

	// Close stops serving commands, cancels every subscription and writes
	// the pending snapshot. It is safe to call Close even if the service was
	// never started.
	Close(ctx context.Context) error
}

// Bot serves chat commands until its context is cancelled.
type Bot interface {
	Run(ctx context.Context) error
}

// closeFunc stops the background routines and releases dependencies.
type closeFunc func(ctx context.Context) error

// service wires the registry, its persistence and the bot together.
type service struct {
	mu        sync.Mutex // protects lifecycle state
	isStarted bool       // ensures Start is called only once
	closeFunc closeFunc  // cancels the bot and shuts dependencies down

	registry watchregistry.Service
	persist  statepersist.Service
	bot      Bot
}

// Compile-time check to ensure *service implements the Service interface.
var _ Service = new(service)

// Start implements Service.
func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	if err := s.registry.Restore(ctx, s.persist); err != nil {
		return fmt.Errorf("restoring registry: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		if err := s.bot.Run(ctx); err != nil {
			logger.Error(ctx, "bot stopped with an error", "error", err)
		}
	}()

	s.closeFunc = func(ctx context.Context) error {
		cancel()
		<-done

		s.registry.Close()
		return s.persist.Close(ctx)
	}
	s.isStarted = true

	logger.Info(ctx, "relay started")
	return nil
}

// Close implements Service.
func (s *service) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if s.closeFunc != nil {
		err = s.closeFunc(ctx)
	}

	s.closeFunc = nil
	s.isStarted = false
	return err
}

// New creates the relay service.
func New(registry watchregistry.Service, persist statepersist.Service, bot Bot) *service {
	return &service{
		registry: registry,
		persist:  persist,
		bot:      bot,
	}
}
