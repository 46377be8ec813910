// Package notify delivers bill reminders over the configured channel.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"finman/internal/config"
)

// Drivers accepted in NOTIFY_DRIVER.
const (
	DriverLog   = "log"
	DriverEmail = "email"
	DriverAMQP  = "amqp"
)

// Message is a reminder about one bill.
type Message struct {
	UserID   string          `json:"user_id"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	BillID   string          `json:"bill_id"`
	Title    string          `json:"title"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	DueDate  time.Time       `json:"due_date"`
}

// Subject is the one-line summary of the reminder.
func (m Message) Subject() string {
	return fmt.Sprintf("Upcoming bill: %s due %s", m.Title, m.DueDate.Format("2006-01-02"))
}

// Body is the plain-text reminder sent to the user.
func (m Message) Body() string {
	body := fmt.Sprintf("Dear %s,\n\n", m.Username)
	body += fmt.Sprintf(
		"This is a reminder that your %s bill \"%s\" of %s %s is due on %s.\n",
		m.Category, m.Title, m.Amount.StringFixed(2), m.Currency, m.DueDate.Format("2006-01-02"),
	)
	body += "\nBest regards,\nFinman"
	return body
}

// Notifier sends reminders. Implementations must be safe to call from one
// goroutine at a time.
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
	Close() error
}

// New builds the notifier selected by cfg.NotifyDriver.
func New(cfg *config.Config) (Notifier, error) {
	switch cfg.NotifyDriver {
	case "", DriverLog:
		return NewLogNotifier(nil), nil
	case DriverEmail:
		return NewEmailNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom), nil
	case DriverAMQP:
		return NewAMQPNotifier(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	default:
		return nil, fmt.Errorf("unknown notify driver %q", cfg.NotifyDriver)
	}
}
