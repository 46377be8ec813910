package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "finman/internal/errors"
	"finman/internal/models"
)

// recurringService manages recurring expense schedules.
type recurringService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRecurringService creates a new RecurringServicer.
func NewRecurringService(db *gorm.DB) RecurringServicer {
	return &recurringService{db: db, now: utcNow}
}

// Schedule creates an active recurring expense whose first occurrence is
// one frequency step from now.
func (s *recurringService) Schedule(userID string, input RecurringInput) (*models.Recurring, error) {
	title := strings.TrimSpace(input.Title)
	category := strings.TrimSpace(input.Category)
	if title == "" || category == "" || input.Amount <= 0 || input.Frequency == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Please provide title, amount, category and frequency")
	}

	recurring := &models.Recurring{
		UserID:      userID,
		Title:       title,
		Amount:      input.Amount,
		Category:    category,
		Frequency:   input.Frequency,
		NextDueDate: input.Frequency.Next(s.now()),
		Active:      true,
	}
	if err := s.db.Create(recurring).Error; err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	return recurring, nil
}

// GetActive lists active schedules, soonest first.
func (s *recurringService) GetActive(userID string) ([]models.Recurring, error) {
	var list []models.Recurring
	err := s.db.Scopes(ownedBy[models.Recurring](userID)).
		Where("active = ?", true).
		Order("next_due_date ASC").
		Find(&list).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return list, nil
}

// UpdateRecurring changes the provided fields. Deactivating is done here too.
func (s *recurringService) UpdateRecurring(userID, recurringID string, update RecurringUpdate) (*models.Recurring, error) {
	recurring, err := findOwned[models.Recurring](s.db, userID, recurringID, apperrors.ErrRecurringNotFound)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]any)
	if update.Title != nil {
		if strings.TrimSpace(*update.Title) == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title cannot be empty")
		}
		updates["title"] = strings.TrimSpace(*update.Title)
	}
	if update.Amount != nil {
		if *update.Amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
		}
		updates["amount"] = *update.Amount
	}
	if update.Category != nil {
		updates["category"] = strings.TrimSpace(*update.Category)
	}
	if update.Frequency != nil {
		updates["frequency"] = *update.Frequency
	}
	if update.NextDueDate != nil {
		updates["next_due_date"] = *update.NextDueDate
	}
	if update.Active != nil {
		updates["active"] = *update.Active
	}

	if err := applyUpdates(s.db, recurring, updates); err != nil {
		return nil, err
	}
	return recurring, nil
}

func (s *recurringService) DeleteRecurring(userID, recurringID string) error {
	recurring, err := findOwned[models.Recurring](s.db, userID, recurringID, apperrors.ErrRecurringNotFound)
	if err != nil {
		return err
	}
	if err := s.db.Delete(recurring).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Pay records the current occurrence as an expense dated now and advances
// the schedule by one step from its current due date.
func (s *recurringService) Pay(userID, recurringID string) (*RecurringPayment, error) {
	var payment RecurringPayment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		recurring, err := findOwned[models.Recurring](tx, userID, recurringID, apperrors.ErrRecurringNotFound)
		if err != nil {
			return err
		}
		if !recurring.Active {
			return apperrors.ErrRecurringInactive
		}

		expense := &models.Expense{
			UserID:      userID,
			Title:       recurring.Title,
			Amount:      recurring.Amount,
			Category:    recurring.Category,
			Description: "Recurring " + string(recurring.Frequency) + " payment",
			Date:        s.now(),
		}
		if err := tx.Create(expense).Error; err != nil {
			return apperrors.FromDB(err, nil)
		}

		next := recurring.Frequency.Next(recurring.NextDueDate)
		if err := tx.Model(recurring).Update("next_due_date", next).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		recurring.NextDueDate = next
		payment = RecurringPayment{Recurring: recurring, Expense: expense}
		return nil
	})
	if err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	return &payment, nil
}
