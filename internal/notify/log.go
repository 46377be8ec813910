package notify

import (
	"context"

	"go.uber.org/zap"

	"finman/internal/logger"
)

// LogNotifier writes reminders to the application log. It is the default
// driver and the one used in development.
type LogNotifier struct {
	log *zap.SugaredLogger
}

// NewLogNotifier returns a LogNotifier. A nil log uses the "notify" logger.
func NewLogNotifier(log *zap.SugaredLogger) *LogNotifier {
	if log == nil {
		log = logger.Named("notify")
	}
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, msg Message) error {
	n.log.Infow("Bill reminder",
		"user_id", msg.UserID,
		"bill_id", msg.BillID,
		"subject", msg.Subject(),
		"amount", msg.Amount.StringFixed(2),
	)
	return nil
}

func (n *LogNotifier) Close() error { return nil }
