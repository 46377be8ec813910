package services

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "finman/internal/errors"
	"finman/internal/models"
	"finman/internal/uuid"
)

// sharedExpenseService manages expenses split between users.
type sharedExpenseService struct {
	db *gorm.DB
}

// NewSharedExpenseService creates a new SharedExpenseServicer.
func NewSharedExpenseService(db *gorm.DB) SharedExpenseServicer {
	return &sharedExpenseService{db: db}
}

// Create stores a shared expense owned by userID. Participants given by
// email must exist. Ids are only checked for format.
func (s *sharedExpenseService) Create(userID string, input SharedExpenseInput) (*models.SharedExpense, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || input.Amount <= 0 || len(input.Participants) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Please provide title, amount and participants")
	}

	splitType := input.SplitType
	if splitType == "" {
		splitType = models.SplitEqual
	}

	participants, err := s.resolveParticipants(input.Participants, input.Amount, splitType)
	if err != nil {
		return nil, err
	}

	shared := &models.SharedExpense{
		CreatedBy:    userID,
		Title:        title,
		Amount:       input.Amount,
		SplitType:    splitType,
		Status:       models.SharedStatusPending,
		Participants: participants,
	}
	if err := s.db.Create(shared).Error; err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	return s.load(shared.ID)
}

// List returns the shared expenses the user created or takes part in.
func (s *sharedExpenseService) List(userID string) ([]models.SharedExpense, error) {
	participating := s.db.Model(&models.SharedParticipant{}).
		Select("shared_expense_id").
		Where("user_id = ?", userID)

	var list []models.SharedExpense
	err := s.db.Preload("Participants.User").
		Where("created_by = ? OR id IN (?)", userID, participating).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return list, nil
}

// Update changes a shared expense created by userID. Equal shares are
// recomputed whenever the amount, participants or split type change.
// Participants that stay on the list keep their paid flag, and the status
// is recomputed from the stored flags.
func (s *sharedExpenseService) Update(userID, sharedID string, update SharedExpenseUpdate) (*models.SharedExpense, error) {
	shared, err := s.findCreated(userID, sharedID)
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
	amount := shared.Amount
	if update.Amount != nil {
		if *update.Amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
		}
		amount = *update.Amount
		updates["amount"] = amount
	}
	splitType := shared.SplitType
	if update.SplitType != nil {
		splitType = *update.SplitType
		updates["split_type"] = splitType
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := applyUpdates(tx, shared, updates); err != nil {
			return err
		}

		switch {
		case update.Participants != nil:
			participants, err := s.resolveParticipants(update.Participants, amount, splitType)
			if err != nil {
				return err
			}
			paid := make(map[string]bool, len(shared.Participants))
			for _, p := range shared.Participants {
				paid[p.UserID] = p.Paid
			}
			if err := tx.Unscoped().Where("shared_expense_id = ?", shared.ID).Delete(&models.SharedParticipant{}).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			for i := range participants {
				participants[i].SharedExpenseID = shared.ID
				participants[i].Paid = paid[participants[i].UserID]
			}
			if err := tx.Create(&participants).Error; err != nil {
				return apperrors.FromDB(err, nil)
			}
		case splitType == models.SplitEqual && len(shared.Participants) > 0:
			share := amount / float64(len(shared.Participants))
			if err := tx.Model(&models.SharedParticipant{}).Where("shared_expense_id = ?", shared.ID).Update("share", share).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		return refreshSharedStatus(tx, shared.ID)
	})
	if err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	return s.load(shared.ID)
}

// Delete removes a shared expense created by userID along with its participants.
func (s *sharedExpenseService) Delete(userID, sharedID string) error {
	shared, err := s.findCreated(userID, sharedID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shared_expense_id = ?", shared.ID).Delete(&models.SharedParticipant{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(shared).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// Settle marks the caller's share as paid. The expense is settled once
// every participant has paid.
func (s *sharedExpenseService) Settle(userID, sharedID string) (*models.SharedExpense, error) {
	if !uuid.IsValid(sharedID) {
		return nil, apperrors.ErrInvalidID
	}
	shared, err := s.load(sharedID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, p := range shared.Participants {
		if p.UserID == userID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperrors.ErrNotAParticipant
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Concurrent settles of the same expense queue on the parent row.
		var locked models.SharedExpense
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&locked, "id = ?", shared.ID).Error
		if err != nil {
			return apperrors.FromDB(err, apperrors.ErrSharedExpenseNotFound)
		}

		err = tx.Model(&models.SharedParticipant{}).
			Where("id = ?", shared.Participants[idx].ID).
			Update("paid", true).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return refreshSharedStatus(tx, shared.ID)
	})
	if err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	return s.load(shared.ID)
}

// refreshSharedStatus derives the status from the stored participant rows:
// settled when there is at least one participant and none is unpaid.
func refreshSharedStatus(tx *gorm.DB, sharedID string) error {
	var total, unpaid int64
	if err := tx.Model(&models.SharedParticipant{}).Where("shared_expense_id = ?", sharedID).Count(&total).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := tx.Model(&models.SharedParticipant{}).Where("shared_expense_id = ? AND paid = ?", sharedID, false).Count(&unpaid).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	status := models.SharedStatusPending
	if total > 0 && unpaid == 0 {
		status = models.SharedStatusSettled
	}
	if err := tx.Model(&models.SharedExpense{}).Where("id = ?", sharedID).Update("status", status).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// resolveParticipants maps identifiers to user ids and assigns shares.
// Identifiers containing '@' are looked up by email.
func (s *sharedExpenseService) resolveParticipants(inputs []ParticipantInput, amount float64, splitType models.SplitType) ([]models.SharedParticipant, error) {
	participants := make([]models.SharedParticipant, 0, len(inputs))
	for _, in := range inputs {
		ident := strings.TrimSpace(in.User)
		var userID string
		if strings.Contains(ident, "@") {
			var user models.UserSummary
			if err := s.db.Where("email = ?", strings.ToLower(ident)).First(&user).Error; err != nil {
				return nil, apperrors.FromDB(err, apperrors.ErrUserNotFound)
			}
			userID = user.ID
		} else {
			if !uuid.IsValid(ident) {
				return nil, apperrors.ErrInvalidID
			}
			userID = ident
		}

		share := in.Share
		if splitType == models.SplitEqual {
			share = amount / float64(len(inputs))
		}
		participants = append(participants, models.SharedParticipant{UserID: userID, Share: share})
	}
	return participants, nil
}

func (s *sharedExpenseService) findCreated(userID, sharedID string) (*models.SharedExpense, error) {
	shared, err := findOwned[models.SharedExpense](s.db.Preload("Participants"), userID, sharedID, apperrors.ErrSharedExpenseNotFound)
	if err != nil {
		return nil, err
	}
	return shared, nil
}

func (s *sharedExpenseService) load(id string) (*models.SharedExpense, error) {
	var shared models.SharedExpense
	if err := s.db.Preload("Participants.User").First(&shared, "id = ?", id).Error; err != nil {
		return nil, apperrors.FromDB(err, apperrors.ErrSharedExpenseNotFound)
	}
	return &shared, nil
}
