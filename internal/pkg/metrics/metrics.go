// Package metrics declares the Prometheus collectors exported by the relay
// and serves them over HTTP.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gabapcia/transferwatch/internal/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values shared by the counters below.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeDropped = "dropped"
)

var (
	// Registry
	WatchesActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "transferwatch",
		Subsystem: "registry",
		Name:      "watches_active",
		Help:      "Number of watches with a live subscription",
	})

	WatchOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "transferwatch",
		Subsystem: "registry",
		Name:      "operations_total",
		Help:      "Registry operations by name and outcome",
	}, []string{"operation", "outcome"})

	Notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "transferwatch",
		Subsystem: "registry",
		Name:      "notifications_total",
		Help:      "Rendered transfer notifications by delivery outcome",
	}, []string{"outcome"})

	// Persistence
	SnapshotWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "transferwatch",
		Subsystem: "persistence",
		Name:      "snapshot_writes_total",
		Help:      "Snapshot writes by outcome",
	}, []string{"outcome"})

	// Ledger
	LedgerPollErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "transferwatch",
		Subsystem: "ledger",
		Name:      "poll_errors_total",
		Help:      "Failed transfer log polls",
	})
)

// Handler returns the HTTP handler exposing the default registry.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// Serve listens on addr until ctx is done, then shuts the server down.
func Serve(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn(ctx, "metrics server shutdown failed", "error", err)
		}
	}()

	logger.Info(ctx, "metrics server started", "addr", addr)
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
