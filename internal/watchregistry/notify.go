package watchregistry

import (
	"context"
	"fmt"
	"html"

	"github.com/gabapcia/transferwatch/internal/pkg/logger"
	"github.com/gabapcia/transferwatch/internal/pkg/metrics"

	"github.com/ethereum/go-ethereum/common"
)

// NotificationSink delivers rendered messages to owners.
type NotificationSink interface {
	// Send delivers text to owner. text may carry HTML markup.
	Send(ctx context.Context, owner Owner, text string) error
}

// shortenAddress renders the checksummed address as its first 6 and last 5
// characters joined by an ellipsis, e.g. "0xc8Fb…C701A".
func shortenAddress(a common.Address) string {
	hex := a.Hex()
	return hex[:6] + "…" + hex[len(hex)-5:]
}

// render builds the notification for one transfer into w.
func render(w TransferWatch, rec TransferRecord) string {
	to := shortenAddress(rec.To)
	if w.DisplayAlias != "" {
		to = html.EscapeString(w.DisplayAlias)
	}

	return fmt.Sprintf("Received %s %s to %s from %s. <a href='%s'>See tx here.</a>",
		html.EscapeString(rec.Amount),
		html.EscapeString(rec.AssetName),
		to,
		shortenAddress(rec.From),
		html.EscapeString(rec.TxReference),
	)
}

// notifier returns the subscription callback of w. It reads only the
// captured watch, never the registry.
func (s *service) notifier(w TransferWatch) func(ctx context.Context, records []TransferRecord) {
	return func(ctx context.Context, records []TransferRecord) {
		if w.handle.Cancelled() {
			metrics.Notifications.WithLabelValues(metrics.OutcomeDropped).Add(float64(len(records)))
			return
		}

		for _, rec := range records {
			if err := s.sink.Send(ctx, w.Owner, render(w, rec)); err != nil {
				metrics.Notifications.WithLabelValues(metrics.OutcomeFailure).Inc()
				logger.Error(ctx, "failed to deliver transfer notification",
					"owner", w.Owner,
					"token", w.TokenAddress.Hex(),
					"tx", rec.TxReference,
					"error", err,
				)
				continue
			}

			metrics.Notifications.WithLabelValues(metrics.OutcomeSuccess).Inc()
		}
	}
}
