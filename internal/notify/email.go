package notify

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
	"go.uber.org/zap"

	"finman/internal/logger"
)

// EmailNotifier sends reminders over SMTP.
type EmailNotifier struct {
	from string
	addr string
	auth smtp.Auth
	send func(e *email.Email, addr string, auth smtp.Auth) error
	log  *zap.SugaredLogger
}

// NewEmailNotifier creates an EmailNotifier for the given SMTP server.
func NewEmailNotifier(host, port, username, password, from string) *EmailNotifier {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &EmailNotifier{
		from: from,
		addr: fmt.Sprintf("%s:%s", host, port),
		auth: auth,
		send: func(e *email.Email, addr string, auth smtp.Auth) error { return e.Send(addr, auth) },
		log:  logger.Named("notify.email"),
	}
}

func (n *EmailNotifier) Notify(_ context.Context, msg Message) error {
	if msg.Email == "" {
		return fmt.Errorf("user %s has no email address", msg.UserID)
	}

	e := email.NewEmail()
	e.From = n.from
	e.To = []string{msg.Email}
	e.Subject = msg.Subject()
	e.Text = []byte(msg.Body())

	if err := n.send(e, n.addr, n.auth); err != nil {
		n.log.Errorw("Failed to send reminder", "to", msg.Email, "error", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	n.log.Infow("Reminder sent", "to", msg.Email, "subject", e.Subject)
	return nil
}

func (n *EmailNotifier) Close() error { return nil }
