package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/transferwatch/internal/config"
	"github.com/gabapcia/transferwatch/internal/handlers/bot"
	"github.com/gabapcia/transferwatch/internal/handlers/cli"
	"github.com/gabapcia/transferwatch/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/transferwatch/internal/infra/storage/file"
	"github.com/gabapcia/transferwatch/internal/infra/storage/redis"
	"github.com/gabapcia/transferwatch/internal/infra/telegram"
	"github.com/gabapcia/transferwatch/internal/pkg/logger"
	"github.com/gabapcia/transferwatch/internal/pkg/metrics"
	"github.com/gabapcia/transferwatch/internal/pkg/telemetry"
	httpclient "github.com/gabapcia/transferwatch/internal/pkg/transport/http"
	"github.com/gabapcia/transferwatch/internal/relay"
	"github.com/gabapcia/transferwatch/internal/statepersist"
	"github.com/gabapcia/transferwatch/internal/watchregistry"

	"github.com/joho/godotenv"
)

// pollSlack keeps the HTTP timeout above the getUpdates long-poll timeout.
const pollSlack = 10 * time.Second

// sendTimeout bounds one sendMessage request.
const sendTimeout = 10 * time.Second

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// A missing .env is fine; the process environment still applies.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName)
		if err != nil {
			return fmt.Errorf("initializing telemetry: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer cancel()
			_ = shutdown(shutdownCtx)
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr); err != nil {
				logger.Error(ctx, "metrics server stopped", "error", err)
			}
		}()
	}

	storage, closeStorage, err := newStorage(ctx, cfg.State)
	if err != nil {
		return err
	}
	defer closeStorage()

	persist := statepersist.New(storage, statepersist.WithDebounce(cfg.State.Debounce))

	ledger, closeLedger, err := newLedgerWatcher(ctx, cfg.Ethereum)
	if err != nil {
		return err
	}
	defer closeLedger()

	tg := telegram.NewClient(
		httpclient.NewStandardClient(httpclient.WithTimeout(cfg.Telegram.PollTimeout+pollSlack)),
		cfg.Telegram.Token,
		telegram.WithAPIURL(cfg.Telegram.APIURL),
		telegram.WithPollTimeout(cfg.Telegram.PollTimeout),
		telegram.WithSendClient(httpclient.NewStandardClient(
			httpclient.WithTimeout(sendTimeout),
			httpclient.WithRetryPolicy(httpclient.UnsentOnlyRetryPolicy),
		)),
	)

	me, err := tg.GetMe(ctx)
	if err != nil {
		return fmt.Errorf("identifying bot: %w", err)
	}
	logger.Info(ctx, "connected to telegram", "bot.username", me.Username)

	registry := watchregistry.New(watchregistry.Owner(cfg.AdminID), ledger, tg, persist,
		watchregistry.WithMaxWatchesPerUser(cfg.Registry.MaxWatchesPerUser),
		watchregistry.WithSetupTimeout(cfg.Registry.SetupTimeout),
		watchregistry.WithRestoreConcurrency(cfg.Registry.RestoreConcurrency),
		watchregistry.WithRestoreAttempts(cfg.Registry.RestoreAttempts, time.Second),
		watchregistry.WithStrictRestore(cfg.State.StrictRestore),
	)

	commands := bot.New(registry, tg, tg,
		bot.WithWorkers(cfg.Telegram.Workers),
		bot.WithUsername(me.Username),
	)

	return cli.Run(ctx, relay.New(registry, persist, commands), persist)
}

// newStorage opens the configured snapshot backend.
func newStorage(ctx context.Context, cfg config.State) (statepersist.Storage, func(), error) {
	switch cfg.Backend {
	case config.BackendRedis:
		client, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB,
			redis.WithSnapshotKey(cfg.RedisKey),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return client, func() { _ = client.Close() }, nil
	default:
		return file.NewStore(cfg.Path), func() {}, nil
	}
}

// newLedgerWatcher connects to the node and builds the transfer watcher.
func newLedgerWatcher(ctx context.Context, cfg config.Ethereum) (watchregistry.LedgerWatcher, func(), error) {
	explorer := cfg.ExplorerURL
	if explorer == "" {
		url, err := ethereum.ExplorerURL(cfg.ChainID)
		if err != nil {
			return nil, nil, err
		}
		explorer = url
	}

	backend, err := ethereum.Dial(ctx, cfg.RPCURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to node: %w", err)
	}

	watcher := ethereum.NewWatcher(backend,
		ethereum.WithPollInterval(cfg.PollInterval),
		ethereum.WithRateLimit(cfg.RateLimit),
		ethereum.WithExplorerURL(explorer),
	)

	return watcher, backend.Close, nil
}
