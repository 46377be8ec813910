package notify

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/jordan-wright/email"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"finman/internal/config"
)

func sampleMessage() Message {
	return Message{
		UserID:   "u1",
		Username: "alice",
		Email:    "alice@example.com",
		BillID:   "b1",
		Title:    "Electricity",
		Category: "utilities",
		Amount:   decimal.NewFromFloat(42.5),
		Currency: "EUR",
		DueDate:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestMessageFormatting(t *testing.T) {
	msg := sampleMessage()

	if got := msg.Subject(); got != "Upcoming bill: Electricity due 2024-05-01" {
		t.Errorf("unexpected subject %q", got)
	}
	body := msg.Body()
	for _, want := range []string{"Dear alice", "42.50 EUR", "2024-05-01", "utilities"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := NewLogNotifier(zap.New(core).Sugar())

	if err := n.Notify(context.Background(), sampleMessage()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := logs.FilterMessage("Bill reminder").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].ContextMap()["bill_id"] != "b1" {
		t.Errorf("expected bill_id b1, got %v", entries[0].ContextMap()["bill_id"])
	}
}

func TestEmailNotifier(t *testing.T) {
	t.Run("sends to the user", func(t *testing.T) {
		n := NewEmailNotifier("smtp.example.com", "587", "user", "pass", "noreply@example.com")
		var sent *email.Email
		var sentAddr string
		n.send = func(e *email.Email, addr string, _ smtp.Auth) error {
			sent, sentAddr = e, addr
			return nil
		}

		if err := n.Notify(context.Background(), sampleMessage()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sentAddr != "smtp.example.com:587" {
			t.Errorf("unexpected addr %q", sentAddr)
		}
		if sent.From != "noreply@example.com" || len(sent.To) != 1 || sent.To[0] != "alice@example.com" {
			t.Errorf("unexpected envelope: from=%q to=%v", sent.From, sent.To)
		}
		if !strings.Contains(string(sent.Text), "Electricity") {
			t.Errorf("expected body to mention the bill, got %q", sent.Text)
		}
	})

	t.Run("wraps send failure", func(t *testing.T) {
		n := NewEmailNotifier("smtp.example.com", "25", "", "", "noreply@example.com")
		sendErr := errors.New("connection refused")
		n.send = func(*email.Email, string, smtp.Auth) error { return sendErr }

		err := n.Notify(context.Background(), sampleMessage())
		if !errors.Is(err, sendErr) {
			t.Errorf("expected wrapped send error, got %v", err)
		}
	})

	t.Run("rejects missing address", func(t *testing.T) {
		n := NewEmailNotifier("smtp.example.com", "25", "", "", "noreply@example.com")
		msg := sampleMessage()
		msg.Email = ""
		if err := n.Notify(context.Background(), msg); err == nil {
			t.Error("expected an error for an empty address")
		}
	})
}

func TestNew(t *testing.T) {
	n, err := New(&config.Config{NotifyDriver: DriverLog})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := n.(*LogNotifier); !ok {
		t.Errorf("expected *LogNotifier, got %T", n)
	}

	n, err = New(&config.Config{NotifyDriver: DriverEmail, SMTPHost: "localhost", SMTPPort: "25"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := n.(*EmailNotifier); !ok {
		t.Errorf("expected *EmailNotifier, got %T", n)
	}

	if _, err := New(&config.Config{NotifyDriver: "pigeon"}); err == nil {
		t.Error("expected an error for an unknown driver")
	}
}
