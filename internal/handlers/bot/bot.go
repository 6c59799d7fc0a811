// Package bot turns inbound chat commands into registry operations and
// replies to the sender.
package bot

import (
	"context"
	"time"

	"github.com/gabapcia/transferwatch/internal/pkg/logger"
	"github.com/gabapcia/transferwatch/internal/pkg/x/chflow"
	"github.com/gabapcia/transferwatch/internal/watchregistry"

	"github.com/google/uuid"
)

// Message is one inbound chat message.
type Message struct {
	UpdateID int64  // position in the update stream
	ChatID   int64  // sender chat, also the owner identity
	Text     string // empty for non-text updates
}

// UpdateSource delivers inbound messages.
type UpdateSource interface {
	// Updates returns the messages with an UpdateID of at least offset. It
	// may block until some arrive.
	Updates(ctx context.Context, offset int64) ([]Message, error)

	// Acknowledge confirms every message with an UpdateID below offset, so
	// they are not delivered again. It does not block for new messages.
	Acknowledge(ctx context.Context, offset int64) error
}

// acknowledgeTimeout bounds the confirmation sent while stopping.
const acknowledgeTimeout = 5 * time.Second

// config holds the tunables of the bot.
type config struct {
	workers      int           // messages handled in parallel
	username     string        // accepted @suffix of commands
	fetchBackoff time.Duration // pause after a failed fetch
}

// Option configures the bot.
type Option func(*config)

// WithWorkers sets how many messages are handled in parallel. Default: 4.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithUsername sets the bot's username so "/cmd@username" is accepted.
func WithUsername(name string) Option {
	return func(c *config) {
		c.username = name
	}
}

// WithFetchBackoff sets the pause after a failed fetch. Default: 5s.
func WithFetchBackoff(d time.Duration) Option {
	return func(c *config) {
		c.fetchBackoff = d
	}
}

// bot dispatches chat commands to the registry.
type bot struct {
	cfg      config
	registry watchregistry.Service
	source   UpdateSource
	replier  watchregistry.NotificationSink
	handlers map[string]handlerFunc
}

// New returns a bot reading from source and replying through replier.
func New(registry watchregistry.Service, source UpdateSource, replier watchregistry.NotificationSink, opts ...Option) *bot {
	cfg := config{
		workers:      4,
		fetchBackoff: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &bot{
		cfg:      cfg,
		registry: registry,
		source:   source,
		replier:  replier,
	}
	b.handlers = b.routes()
	return b
}

// Run fetches messages and handles them until ctx is cancelled. Messages in
// flight are finished before it returns, and everything fetched is
// acknowledged so a restart does not handle it again.
func (b *bot) Run(ctx context.Context) error {
	messages := make(chan Message, b.cfg.workers)
	wait := chflow.Consume(context.WithoutCancel(ctx), b.cfg.workers, messages, b.handle)
	defer wait()
	defer close(messages)

	logger.Info(ctx, "bot started", "workers", b.cfg.workers)

	offset := b.poll(ctx, messages)
	b.acknowledge(ctx, offset)

	logger.Info(ctx, "bot stopped", "update.offset", offset)
	return nil
}

// poll feeds fetched messages to the workers until ctx is cancelled and
// returns the offset after the last message queued.
func (b *bot) poll(ctx context.Context, messages chan<- Message) int64 {
	var offset int64
	for {
		batch, err := b.source.Updates(ctx, offset)
		if ctx.Err() != nil {
			return offset
		}

		if err != nil {
			logger.Error(ctx, "fetching updates failed", "update.offset", offset, "error", err)
			select {
			case <-ctx.Done():
				return offset
			case <-time.After(b.cfg.fetchBackoff):
			}
			continue
		}

		for _, m := range batch {
			if !chflow.Send(ctx, messages, m) {
				return offset
			}
			offset = max(offset, m.UpdateID+1)
		}
	}
}

// acknowledge confirms everything before offset on a context detached from
// the cancelled ctx.
func (b *bot) acknowledge(ctx context.Context, offset int64) {
	if offset == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), acknowledgeTimeout)
	defer cancel()

	if err := b.source.Acknowledge(ctx, offset); err != nil {
		logger.Warn(ctx, "failed to acknowledge handled updates", "update.offset", offset, "error", err)
	}
}

// handle runs the command in m and sends the reply.
func (b *bot) handle(ctx context.Context, m Message) {
	ctx = logger.Derive(ctx,
		"update.id", m.UpdateID,
		"update.correlation_id", uuid.NewString(),
		"chat.id", m.ChatID,
	)

	defer func() {
		if r := recover(); r != nil {
			logger.Error(ctx, "command handler panicked", "panic", r)
		}
	}()

	cmd, ok := parseCommand(m.Text, b.cfg.username)
	if !ok {
		return
	}

	h, ok := b.handlers[cmd.name]
	if !ok {
		logger.Debug(ctx, "ignoring unknown command", "command", cmd.name)
		return
	}

	sender := watchregistry.Owner(m.ChatID)
	reply := h(ctx, sender, cmd.args)
	if reply == "" {
		return
	}

	if err := b.replier.Send(ctx, sender, reply); err != nil {
		logger.Error(ctx, "failed to send reply", "command", cmd.name, "error", err)
	}
}
