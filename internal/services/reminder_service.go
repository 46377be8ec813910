package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "finman/internal/errors"
	"finman/internal/logger"
	"finman/internal/models"
	"finman/internal/notify"
)

// reminderService sends one notification per pending bill falling due soon.
type reminderService struct {
	db       *gorm.DB
	notifier notify.Notifier
	log      *zap.SugaredLogger
	now      func() time.Time
}

// NewReminderService creates a new ReminderServicer.
func NewReminderService(db *gorm.DB, notifier notify.Notifier) ReminderServicer {
	return &reminderService{db: db, notifier: notifier, log: logger.Named("reminders"), now: utcNow}
}

type dueBill struct {
	models.Bill
	Username string
	Email    string
	Currency string
}

// DispatchDue notifies owners of pending bills due within window that have
// not been reminded yet. Owners who turned bill reminders off are skipped.
// A failed send leaves the bill unstamped so the next pass retries it.
func (s *reminderService) DispatchDue(ctx context.Context, window time.Duration) (*ReminderResult, error) {
	now := s.now()

	var due []dueBill
	err := s.db.WithContext(ctx).
		Model(&models.Bill{}).
		Select("bills.*, users.username, users.email, users.settings_currency AS currency").
		Joins("JOIN users ON users.id = bills.user_id AND users.deleted_at IS NULL").
		Where("bills.status = ? AND bills.reminded_at IS NULL", models.BillStatusPending).
		Where("bills.due_date >= ? AND bills.due_date <= ?", now, now.Add(window)).
		Where("users.settings_notify_bill_reminders = ?", true).
		Order("bills.due_date ASC").
		Find(&due).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := &ReminderResult{Checked: len(due)}
	for _, b := range due {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		msg := notify.Message{
			UserID:   b.UserID,
			Username: b.Username,
			Email:    b.Email,
			BillID:   b.ID,
			Title:    b.Title,
			Category: b.Category,
			Amount:   decimal.NewFromFloat(b.Amount),
			Currency: b.Currency,
			DueDate:  b.DueDate,
		}
		if err := s.notifier.Notify(ctx, msg); err != nil {
			result.Failed++
			s.log.Warnw("Bill reminder failed", "bill_id", b.ID, "error", err)
			continue
		}

		err := s.db.WithContext(ctx).Model(&models.Bill{}).
			Where("id = ?", b.ID).
			Update("reminded_at", s.now()).Error
		if err != nil {
			return result, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		result.Sent++
	}

	s.log.Infow("Bill reminders dispatched", "checked", result.Checked, "sent", result.Sent, "failed", result.Failed)
	return result, nil
}
