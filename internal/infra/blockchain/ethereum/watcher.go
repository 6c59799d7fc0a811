package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/gabapcia/transferwatch/internal/pkg/logger"
	"github.com/gabapcia/transferwatch/internal/pkg/metrics"
	"github.com/gabapcia/transferwatch/internal/pkg/telemetry"
	"github.com/gabapcia/transferwatch/internal/watchregistry"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"golang.org/x/time/rate"
)

// meterName identifies instruments registered by this package.
const meterName = "github.com/gabapcia/transferwatch/internal/infra/blockchain/ethereum"

// config holds the tunables of the watcher.
type config struct {
	pollInterval  time.Duration // time between two log polls of a subscription
	maxBlockRange uint64        // widest block range requested in one FilterLogs call
	rateLimit     rate.Limit    // RPC calls per second shared by every subscription
	explorerURL   string        // base URL used to link transactions
}

// Option configures the watcher.
type Option func(*config)

// WithPollInterval sets how often each subscription polls. Default: 60s.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}

// WithMaxBlockRange bounds the block span of a single log query. A poll
// that falls further behind catches up over several intervals.
// Default: 1000.
func WithMaxBlockRange(n uint64) Option {
	return func(c *config) {
		c.maxBlockRange = n
	}
}

// WithRateLimit caps the RPC calls per second across all subscriptions.
// Zero or less disables the limit. Default: 10.
func WithRateLimit(perSecond float64) Option {
	return func(c *config) {
		c.rateLimit = rate.Limit(perSecond)
		if perSecond <= 0 {
			c.rateLimit = rate.Inf
		}
	}
}

// WithExplorerURL sets the block explorer used for transaction links.
// Default: https://etherscan.io.
func WithExplorerURL(url string) Option {
	return func(c *config) {
		c.explorerURL = url
	}
}

// watcher polls an Ethereum node for ERC-20 transfers.
type watcher struct {
	cfg          config
	backend      Backend
	limiter      *rate.Limiter
	pollDuration metric.Float64Histogram
}

// Ensure watcher implements the watchregistry.LedgerWatcher interface at compile time.
var _ watchregistry.LedgerWatcher = (*watcher)(nil)

// NewWatcher returns a LedgerWatcher backed by backend.
func NewWatcher(backend Backend, opts ...Option) *watcher {
	cfg := config{
		pollInterval:  60 * time.Second,
		maxBlockRange: 1000,
		rateLimit:     10,
		explorerURL:   explorers[1],
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	cfg.maxBlockRange = max(cfg.maxBlockRange, 1)

	burst := 1
	if cfg.rateLimit != rate.Inf && cfg.rateLimit > 1 {
		burst = int(cfg.rateLimit)
	}

	pollDuration, err := telemetry.Meter(meterName).Float64Histogram("ledger.poll.duration",
		metric.WithDescription("Duration of one transfer log poll"),
		metric.WithUnit("s"),
	)
	if err != nil {
		pollDuration = noop.Float64Histogram{}
	}

	return &watcher{
		cfg:          cfg,
		backend:      backend,
		limiter:      rate.NewLimiter(cfg.rateLimit, burst),
		pollDuration: pollDuration,
	}
}

// blockNumber returns the latest block number.
func (w *watcher) blockNumber(ctx context.Context) (uint64, error) {
	if err := w.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	return w.backend.BlockNumber(ctx)
}

// Subscribe implements watchregistry.LedgerWatcher. Only blocks mined after
// the call are reported.
func (w *watcher) Subscribe(ctx context.Context, tokenAddress, destination common.Address, onEvents func(ctx context.Context, records []watchregistry.TransferRecord)) (watchregistry.Subscription, error) {
	tok, err := w.readToken(ctx, tokenAddress)
	if err != nil {
		return nil, err
	}

	latest, err := w.blockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading latest block: %w", err)
	}

	pollCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	pollCtx = logger.Derive(pollCtx, "token", tokenAddress.Hex(), "destination", destination.Hex())

	p := &poller{
		token:       tok,
		destination: destination,
		next:        latest + 1,
		onEvents:    onEvents,
	}
	sub := &subscription{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(sub.done)
		w.run(pollCtx, p)
	}()

	logger.Debug(pollCtx, "transfer subscription started", "token.name", tok.name, "block.from", p.next)
	return sub, nil
}

// poller is the state of one subscription's polling loop.
type poller struct {
	token       token
	destination common.Address
	next        uint64 // first block not yet queried
	onEvents    func(ctx context.Context, records []watchregistry.TransferRecord)
}

// run polls every interval until ctx is cancelled.
func (w *watcher) run(ctx context.Context, p *poller) {
	ticker := time.NewTicker(w.cfg.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		w.poll(ctx, p)
	}
}

// poll queries the blocks mined since the last poll and hands the decoded
// transfers to the subscriber. Errors are logged and the range is retried on
// the next tick.
func (w *watcher) poll(ctx context.Context, p *poller) {
	start := time.Now()
	records, err := w.fetch(ctx, p)
	w.pollDuration.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(attribute.Bool("error", err != nil)),
	)

	if err != nil {
		if ctx.Err() != nil {
			return
		}

		metrics.LedgerPollErrors.Inc()
		logger.Error(ctx, "polling transfer logs failed", "block.from", p.next, "error", err)
		return
	}

	if len(records) > 0 && ctx.Err() == nil {
		p.onEvents(ctx, records)
	}
}

// fetch returns the transfers into the destination mined between p.next and
// the latest block, advancing p.next past the queried range.
func (w *watcher) fetch(ctx context.Context, p *poller) ([]watchregistry.TransferRecord, error) {
	latest, err := w.blockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading latest block: %w", err)
	}

	if latest < p.next {
		return nil, nil
	}

	to := min(latest, p.next+w.cfg.maxBlockRange-1)

	if err := w.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	logs, err := w.backend.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(p.next),
		ToBlock:   new(big.Int).SetUint64(to),
		Addresses: []common.Address{p.token.address},
		Topics:    [][]common.Hash{{transferTopic}, nil, {common.BytesToHash(p.destination.Bytes())}},
	})
	if err != nil {
		return nil, fmt.Errorf("filtering logs %d-%d: %w", p.next, to, err)
	}

	p.next = to + 1

	records := make([]watchregistry.TransferRecord, 0, len(logs))
	for _, l := range logs {
		if l.Removed {
			continue
		}

		record, err := w.decodeTransfer(p.token, l)
		if err != nil {
			logger.Warn(ctx, "skipping undecodable transfer log", "tx", l.TxHash.Hex(), "error", err)
			continue
		}

		records = append(records, record)
	}

	return records, nil
}
