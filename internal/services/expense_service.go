package services

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "finman/internal/errors"
	"finman/internal/models"
	"finman/internal/pagination"
)

var expenseSortColumns = map[string]string{
	"date":       "date",
	"amount":     "amount",
	"title":      "title",
	"category":   "category",
	"created_at": "created_at",
}

// expenseService handles expense records and the aggregations built on them.
type expenseService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db, now: utcNow}
}

// CreateExpense records a new expense for the user.
func (s *expenseService) CreateExpense(userID string, input ExpenseInput) (*models.Expense, error) {
	title := strings.TrimSpace(input.Title)
	category := strings.TrimSpace(input.Category)
	if title == "" || category == "" || input.Amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Please provide title, amount and category")
	}

	date := input.Date
	if date.IsZero() {
		date = s.now()
	}

	expense := &models.Expense{
		UserID:      userID,
		Title:       title,
		Amount:      input.Amount,
		Category:    category,
		Description: input.Description,
		Date:        date,
	}
	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	return expense, nil
}

// GetUserExpenses returns a page of the user's expenses, newest first by default.
func (s *expenseService) GetUserExpenses(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	base := s.db.Model(&models.Expense{}).Scopes(ownedBy[models.Expense](userID))

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	err := s.db.Scopes(
		ownedBy[models.Expense](userID),
		pagination.Sort(page, expenseSortColumns, "date"),
		pagination.Paginate(page),
	).Find(&expenses).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetExpenseByID returns an expense owned by the user.
func (s *expenseService) GetExpenseByID(userID, expenseID string) (*models.Expense, error) {
	return findOwned[models.Expense](s.db, userID, expenseID, apperrors.ErrExpenseNotFound)
}

// UpdateExpense changes the provided fields of an owned expense.
func (s *expenseService) UpdateExpense(userID, expenseID string, update ExpenseUpdate) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(userID, expenseID)
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
		if strings.TrimSpace(*update.Category) == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category cannot be empty")
		}
		updates["category"] = strings.TrimSpace(*update.Category)
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Date != nil {
		updates["date"] = *update.Date
	}

	if err := applyUpdates(s.db, expense, updates); err != nil {
		return nil, err
	}
	return expense, nil
}

// DeleteExpense soft-deletes an owned expense.
func (s *expenseService) DeleteExpense(userID, expenseID string) error {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// FilterExpenses returns the user's expenses matching filter, newest first.
func (s *expenseService) FilterExpenses(ctx context.Context, userID string, filter ExpenseFilter) ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.scoped(ctx, userID).
		Scopes(applyFilter(filter)).
		Order("date DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// GetSummary returns overall statistics plus per-category totals.
func (s *expenseService) GetSummary(ctx context.Context, userID string) (*ExpenseSummary, error) {
	var summary ExpenseSummary
	err := s.scoped(ctx, userID).
		Select("COALESCE(SUM(amount), 0) AS total, COALESCE(AVG(amount), 0) AS avg_amount, " +
			"COALESCE(MAX(amount), 0) AS max_amount, COUNT(*) AS count").
		Scan(&summary.Summary).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary.ByCategory, err = s.categoryTotals(ctx, userID, nil)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetMonthlyTotals returns totals per calendar month, newest first.
func (s *expenseService) GetMonthlyTotals(ctx context.Context, userID string) ([]MonthlyTotal, error) {
	rows, err := s.datedAmounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	return monthlyTotals(rows), nil
}

// GetCurrentMonthOverview sums the expenses dated in the current calendar month.
func (s *expenseService) GetCurrentMonthOverview(ctx context.Context, userID string) (*MonthOverview, error) {
	var row struct {
		Total float64
		Count int64
	}
	err := s.scoped(ctx, userID).
		Where("date >= ?", startOfMonth(s.now())).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Scan(&row).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var overview MonthOverview
	overview.CurrentMonth.Spending = row.Total
	overview.CurrentMonth.Transactions = row.Count
	return &overview, nil
}

// GetSpendingTrends returns per-category totals for every month, newest first.
func (s *expenseService) GetSpendingTrends(ctx context.Context, userID string) ([]CategoryTrend, error) {
	rows, err := s.datedAmounts(ctx, userID)
	if err != nil {
		return nil, err
	}

	type key struct {
		year, month int
		category    string
	}
	totals := make(map[key]float64)
	for _, r := range rows {
		d := r.Date.UTC()
		totals[key{d.Year(), int(d.Month()), r.Category}] += r.Amount
	}

	trends := make([]CategoryTrend, 0, len(totals))
	for k, total := range totals {
		trends = append(trends, CategoryTrend{Year: k.year, Month: k.month, Category: k.category, Total: total})
	}
	sort.Slice(trends, func(i, j int) bool {
		a, b := trends[i], trends[j]
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		if a.Month != b.Month {
			return a.Month > b.Month
		}
		return a.Category < b.Category
	})
	return trends, nil
}

// GetCategoryInsights returns per-category statistics ordered by total spent.
func (s *expenseService) GetCategoryInsights(ctx context.Context, userID string) ([]CategoryInsight, error) {
	var insights []CategoryInsight
	err := s.scoped(ctx, userID).
		Select("category, SUM(amount) AS total_spent, AVG(amount) AS average_expense, " +
			"MAX(amount) AS max_expense, COUNT(*) AS frequency").
		Group("category").
		Order("total_spent DESC").
		Scan(&insights).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if insights == nil {
		insights = []CategoryInsight{}
	}
	return insights, nil
}

// GetRecentActivity returns the user's latest expenses.
func (s *expenseService) GetRecentActivity(ctx context.Context, userID string, limit int) ([]models.Expense, error) {
	if limit <= 0 {
		limit = 5
	}
	var expenses []models.Expense
	err := s.scoped(ctx, userID).Order("date DESC").Limit(limit).Find(&expenses).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// GetForecast returns the average expense amount per (calendar month,
// category) across all history. It is a rollup, not a prediction.
func (s *expenseService) GetForecast(ctx context.Context, userID string) ([]ForecastEntry, error) {
	rows, err := s.datedAmounts(ctx, userID)
	if err != nil {
		return nil, err
	}

	type key struct {
		month    int
		category string
	}
	type acc struct {
		sum   float64
		count int
	}
	groups := make(map[key]*acc)
	for _, r := range rows {
		k := key{int(r.Date.UTC().Month()), r.Category}
		a, ok := groups[k]
		if !ok {
			a = &acc{}
			groups[k] = a
		}
		a.sum += r.Amount
		a.count++
	}

	forecast := make([]ForecastEntry, 0, len(groups))
	for k, a := range groups {
		forecast = append(forecast, ForecastEntry{
			Month:       k.month,
			Category:    k.category,
			AvgSpending: a.sum / float64(a.count),
		})
	}
	sort.Slice(forecast, func(i, j int) bool {
		if forecast[i].Month != forecast[j].Month {
			return forecast[i].Month < forecast[j].Month
		}
		return forecast[i].Category < forecast[j].Category
	})
	return forecast, nil
}

// ComparePeriods compares category totals of two date ranges. Every
// category spent in period 1 appears in the comparison. When period 2 has
// nothing for a category the percentage is taken against 1, not 0.
func (s *expenseService) ComparePeriods(ctx context.Context, userID string, period1, period2 DateRange) (*PeriodComparison, error) {
	var p1, p2 []CategoryTotal

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		p1, err = s.categoryTotals(gctx, userID, &period1)
		return err
	})
	g.Go(func() error {
		var err error
		p2, err = s.categoryTotals(gctx, userID, &period2)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	baseline := make(map[string]float64, len(p2))
	for _, ct := range p2 {
		baseline[ct.Category] = ct.Total
	}

	comparison := make([]CategoryChange, 0, len(p1))
	for _, ct := range p1 {
		prev := baseline[ct.Category]
		denominator := prev
		if denominator == 0 {
			denominator = 1
		}
		diff := ct.Total - prev
		comparison = append(comparison, CategoryChange{
			Category:         ct.Category,
			Difference:       diff,
			PercentageChange: diff / denominator * 100,
		})
	}

	return &PeriodComparison{Period1: p1, Period2: p2, Comparison: comparison}, nil
}

// GetReport groups the filtered expenses by category.
func (s *expenseService) GetReport(ctx context.Context, userID string, filter ExpenseFilter) ([]CategoryReport, error) {
	expenses, err := s.FilterExpenses(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	return groupByCategory(expenses), nil
}

// CheckBudgetAlert compares this month's spending in category with limit.
func (s *expenseService) CheckBudgetAlert(ctx context.Context, userID, category string, limit float64) (*BudgetAlert, error) {
	var current float64
	err := s.scoped(ctx, userID).
		Where("category = ? AND date >= ?", category, startOfMonth(s.now())).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&current).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	status := "within_limit"
	if current > limit {
		status = "exceeded"
	}
	return &BudgetAlert{Status: status, Limit: limit, Current: current, Remaining: limit - current}, nil
}

// TrackSavingsGoal measures the amounts recorded in category up to now
// against target.
func (s *expenseService) TrackSavingsGoal(ctx context.Context, userID, category string, target float64, targetDate time.Time) (*SavingsProgress, error) {
	if target <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target_amount must be positive")
	}

	now := s.now()
	var current float64
	err := s.scoped(ctx, userID).
		Where("category = ? AND date <= ?", category, now).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&current).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &SavingsProgress{
		Target:             target,
		Current:            current,
		Remaining:          target - current,
		PercentageAchieved: current / target * 100,
		DaysRemaining:      int(math.Ceil(targetDate.Sub(now).Hours() / 24)),
	}, nil
}

// GetDashboard computes the dashboard sections concurrently.
func (s *expenseService) GetDashboard(ctx context.Context, userID string) (*Dashboard, error) {
	var dash Dashboard

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		dash.MonthlyTrends, err = s.GetMonthlyTotals(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		dash.CategoryBreakdown, err = s.categoryTotals(gctx, userID, nil)
		return err
	})
	g.Go(func() error {
		var err error
		dash.RecentTransactions, err = s.GetRecentActivity(gctx, userID, 5)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dash, nil
}

// scoped starts an owner-scoped query on expenses.
func (s *expenseService) scoped(ctx context.Context, userID string) *gorm.DB {
	return s.db.WithContext(ctx).Model(&models.Expense{}).Scopes(ownedBy[models.Expense](userID))
}

// categoryTotals sums expenses per category, optionally within a date range,
// largest first.
func (s *expenseService) categoryTotals(ctx context.Context, userID string, within *DateRange) ([]CategoryTotal, error) {
	query := s.scoped(ctx, userID)
	if within != nil {
		query = query.Where("date >= ? AND date <= ?", within.Start, within.End)
	}

	var totals []CategoryTotal
	err := query.
		Select("category, SUM(amount) AS total, COUNT(*) AS count").
		Group("category").
		Order("total DESC").
		Scan(&totals).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if totals == nil {
		totals = []CategoryTotal{}
	}
	return totals, nil
}

type datedAmount struct {
	Date     time.Time
	Amount   float64
	Category string
}

// datedAmounts loads the columns needed for calendar bucketing. Buckets are
// computed in Go so the same code runs on postgres and sqlite.
func (s *expenseService) datedAmounts(ctx context.Context, userID string) ([]datedAmount, error) {
	var rows []datedAmount
	if err := s.scoped(ctx, userID).Select("date, amount, category").Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return rows, nil
}

func monthlyTotals(rows []datedAmount) []MonthlyTotal {
	type key struct{ year, month int }
	totals := make(map[key]float64)
	for _, r := range rows {
		d := r.Date.UTC()
		totals[key{d.Year(), int(d.Month())}] += r.Amount
	}

	result := make([]MonthlyTotal, 0, len(totals))
	for k, total := range totals {
		result = append(result, MonthlyTotal{Year: k.year, Month: k.month, Total: total})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Year != result[j].Year {
			return result[i].Year > result[j].Year
		}
		return result[i].Month > result[j].Month
	})
	return result
}

func groupByCategory(expenses []models.Expense) []CategoryReport {
	index := make(map[string]int)
	var groups []CategoryReport
	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			i = len(groups)
			index[e.Category] = i
			groups = append(groups, CategoryReport{Category: e.Category, Items: []models.Expense{}})
		}
		groups[i].Total += e.Amount
		groups[i].Count++
		groups[i].Items = append(groups[i].Items, e)
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Category < groups[j].Category })
	if groups == nil {
		groups = []CategoryReport{}
	}
	return groups
}

// applyFilter returns a scope for the optional expense filter fields.
func applyFilter(filter ExpenseFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.StartDate != nil {
			db = db.Where("date >= ?", *filter.StartDate)
		}
		if filter.EndDate != nil {
			db = db.Where("date <= ?", *filter.EndDate)
		}
		if len(filter.Categories) > 0 {
			db = db.Where("category IN ?", filter.Categories)
		}
		if filter.MinAmount != nil {
			db = db.Where("amount >= ?", *filter.MinAmount)
		}
		if filter.MaxAmount != nil {
			db = db.Where("amount <= ?", *filter.MaxAmount)
		}
		return db
	}
}

func startOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
