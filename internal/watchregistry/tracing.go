package watchregistry

import (
	"context"

	"github.com/gabapcia/transferwatch/internal/pkg/metrics"
	"github.com/gabapcia/transferwatch/internal/pkg/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName identifies spans emitted by this package.
const tracerName = "github.com/gabapcia/transferwatch/internal/watchregistry"

// startOperation opens a span for a registry operation on behalf of owner.
func startOperation(ctx context.Context, operation string, owner Owner) (context.Context, trace.Span) {
	return telemetry.Tracer(tracerName).Start(ctx, "watchregistry."+operation,
		trace.WithAttributes(attribute.Int64("owner", int64(owner))),
	)
}

// endOperation records the outcome of operation on span and in metrics,
// then ends span.
func endOperation(span trace.Span, operation string, err error) {
	defer span.End()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		metrics.WatchOperations.WithLabelValues(operation, metrics.OutcomeFailure).Inc()
		return
	}

	metrics.WatchOperations.WithLabelValues(operation, metrics.OutcomeSuccess).Inc()
}
