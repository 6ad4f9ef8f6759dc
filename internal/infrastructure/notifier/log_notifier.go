package notifier

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/metrics"
)

// LogNotifier implements usecase.Notifier by writing the notification to the
// log. Used when no SMTP host is configured, typically in development.
type LogNotifier struct {
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

// NewLogNotifier creates a new LogNotifier.
func NewLogNotifier(logger zerolog.Logger, m *metrics.Metrics) *LogNotifier {
	return &LogNotifier{logger: logger, metrics: m}
}

// Notify logs the notification instead of delivering it.
func (n *LogNotifier) Notify(_ context.Context, notification domain.Notification) error {
	n.logger.Info().
		Str("kind", notification.Kind).
		Str("recipient", notification.Recipient).
		Str("subject", notification.Subject).
		Msg("transaction notification")

	if n.metrics != nil {
		n.metrics.NotificationsSent.Inc()
	}

	return nil
}
