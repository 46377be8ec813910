package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "finman/internal/errors"
	"finman/internal/models"
	"finman/internal/pagination"
)

var budgetSortColumns = map[string]string{
	"category":   "category",
	"amount":     "amount",
	"spent":      "spent",
	"created_at": "created_at",
}

// budgetService handles budget-related business logic.
type budgetService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db, now: utcNow}
}

// CreateBudget creates a new budget for a category. Spent starts at zero.
func (s *budgetService) CreateBudget(userID string, input BudgetInput) (*models.Budget, error) {
	category := strings.TrimSpace(input.Category)
	if category == "" || input.Amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Please provide category and a positive amount")
	}

	period := input.Period
	if period == "" {
		period = models.BudgetPeriodMonthly
	}

	budget := &models.Budget{
		UserID:   userID,
		Category: category,
		Amount:   input.Amount,
		Period:   period,
	}
	if err := s.db.Create(budget).Error; err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	return budget, nil
}

// GetUserBudgets returns a paginated list of the user's budgets.
func (s *budgetService) GetUserBudgets(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Budget], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.Budget{}).Scopes(ownedBy[models.Budget](userID)).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var budgets []models.Budget
	err := s.db.Scopes(
		ownedBy[models.Budget](userID),
		pagination.Sort(page, budgetSortColumns, "created_at"),
		pagination.Paginate(page),
	).Find(&budgets).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(budgets, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetBudgetByID returns a budget by ID if it belongs to the user.
func (s *budgetService) GetBudgetByID(userID, budgetID string) (*models.Budget, error) {
	return findOwned[models.Budget](s.db, userID, budgetID, apperrors.ErrBudgetNotFound)
}

// UpdateBudget updates an existing budget's fields.
func (s *budgetService) UpdateBudget(userID, budgetID string, update BudgetUpdate) (*models.Budget, error) {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]any)
	if update.Category != nil {
		if strings.TrimSpace(*update.Category) == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category cannot be empty")
		}
		updates["category"] = strings.TrimSpace(*update.Category)
	}
	if update.Amount != nil {
		if *update.Amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
		}
		updates["amount"] = *update.Amount
	}
	if update.Period != nil {
		updates["period"] = *update.Period
	}
	if update.Spent != nil {
		if *update.Spent < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "spent cannot be negative")
		}
		updates["spent"] = *update.Spent
	}

	if err := applyUpdates(s.db, budget, updates); err != nil {
		return nil, err
	}
	return budget, nil
}

// DeleteBudget soft-deletes a budget.
func (s *budgetService) DeleteBudget(userID, budgetID string) error {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(budget).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetOverview sums the stored amounts and spent of all the user's budgets.
func (s *budgetService) GetOverview(userID string) (*BudgetOverview, error) {
	var overview BudgetOverview
	err := s.db.Model(&models.Budget{}).
		Scopes(ownedBy[models.Budget](userID)).
		Select("COALESCE(SUM(amount), 0) AS total_budget, COALESCE(SUM(spent), 0) AS total_spent, COUNT(*) AS budget_count").
		Scan(&overview).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	overview.Remaining = overview.TotalBudget - overview.TotalSpent
	return &overview, nil
}

// GetBudgetProgress compares a budget with the expenses recorded in its
// category during the current period window. The stored spent is reported
// alongside and left untouched.
func (s *budgetService) GetBudgetProgress(userID, budgetID string) (*BudgetProgress, error) {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return nil, err
	}

	periodStart, periodEnd := periodWindow(budget.Period, s.now())

	var liveSpent float64
	err = s.db.Model(&models.Expense{}).
		Scopes(ownedBy[models.Expense](userID)).
		Select("COALESCE(SUM(amount), 0)").
		Where("category = ? AND date >= ? AND date < ?", budget.Category, periodStart, periodEnd).
		Scan(&liveSpent).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var percentage float64
	if budget.Amount > 0 {
		percentage = liveSpent / budget.Amount * 100
	}

	return &BudgetProgress{
		BudgetID:    budget.ID,
		Category:    budget.Category,
		Budgeted:    budget.Amount,
		Spent:       budget.Spent,
		LiveSpent:   liveSpent,
		Remaining:   budget.Amount - liveSpent,
		Percentage:  percentage,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	}, nil
}

// periodWindow returns the half-open [start, end) window of the period containing now, in UTC.
func periodWindow(period models.BudgetPeriod, now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	switch period {
	case models.BudgetPeriodQuarterly:
		firstMonth := time.Month((int(now.Month())-1)/3*3 + 1)
		start := time.Date(now.Year(), firstMonth, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 3, 0)
	case models.BudgetPeriodYearly:
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, 0)
	default:
		start := startOfMonth(now)
		return start, start.AddDate(0, 1, 0)
	}
}
