package services

import (
	"strings"

	"gorm.io/gorm"

	apperrors "finman/internal/errors"
	"finman/internal/models"
)

type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

// CreateGoal records a savings goal. New goals are active.
func (s *goalService) CreateGoal(userID string, input GoalInput) (*models.Goal, error) {
	category := strings.TrimSpace(input.Category)
	if input.TargetAmount <= 0 || category == "" || input.Deadline.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Please provide target_amount, deadline and category")
	}
	if input.CurrentAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "current_amount cannot be negative")
	}

	goal := &models.Goal{
		UserID:        userID,
		TargetAmount:  input.TargetAmount,
		CurrentAmount: input.CurrentAmount,
		Deadline:      input.Deadline,
		Category:      category,
		Description:   input.Description,
		Status:        models.GoalStatusActive,
	}
	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	return goal, nil
}

// GetUserGoals lists the user's goals by nearest deadline.
func (s *goalService) GetUserGoals(userID string) ([]models.Goal, error) {
	var goals []models.Goal
	if err := s.db.Scopes(ownedBy[models.Goal](userID)).Order("deadline ASC").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goals, nil
}

func (s *goalService) GetGoalByID(userID, goalID string) (*models.Goal, error) {
	return findOwned[models.Goal](s.db, userID, goalID, apperrors.ErrGoalNotFound)
}

// UpdateGoal changes the provided fields. Status only moves when the client sets it.
func (s *goalService) UpdateGoal(userID, goalID string, update GoalUpdate) (*models.Goal, error) {
	goal, err := s.GetGoalByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]any)
	if update.TargetAmount != nil {
		if *update.TargetAmount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target_amount must be positive")
		}
		updates["target_amount"] = *update.TargetAmount
	}
	if update.CurrentAmount != nil {
		if *update.CurrentAmount < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "current_amount cannot be negative")
		}
		updates["current_amount"] = *update.CurrentAmount
	}
	if update.Deadline != nil {
		updates["deadline"] = *update.Deadline
	}
	if update.Category != nil {
		if strings.TrimSpace(*update.Category) == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category cannot be empty")
		}
		updates["category"] = strings.TrimSpace(*update.Category)
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Status != nil {
		updates["status"] = *update.Status
	}

	if err := applyUpdates(s.db, goal, updates); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *goalService) DeleteGoal(userID, goalID string) error {
	goal, err := s.GetGoalByID(userID, goalID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(goal).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
