package services

import (
	"context"
	"time"

	"finman/internal/models"
	"finman/internal/pagination"
)

// ProfileUpdate carries the optional profile fields a user may change.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
	Phone     *string
	Avatar    *string
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(username, email, password string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	UpdateProfile(userID string, update ProfileUpdate) (*models.User, error)
	ChangePassword(userID, currentPassword, newPassword string) error
	DeleteAccount(userID, password string) error
	GetSettings(userID string) (*models.Settings, error)
	ReplaceSettings(userID string, settings models.Settings) (*models.Settings, error)
	UpdateSetting(userID, setting string, value any) (*models.Settings, error)
}

// ExpenseInput is the payload for creating an expense. A zero Date means now.
type ExpenseInput struct {
	Title       string
	Amount      float64
	Category    string
	Description string
	Date        time.Time
}

// ExpenseUpdate carries optional expense fields.
type ExpenseUpdate struct {
	Title       *string
	Amount      *float64
	Category    *string
	Description *string
	Date        *time.Time
}

// ExpenseFilter holds optional filter parameters for listing expenses.
type ExpenseFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Categories []string
	MinAmount  *float64
	MaxAmount  *float64
}

// DateRange is an inclusive time window.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SummaryStats aggregates all of a user's expenses.
type SummaryStats struct {
	Total     float64 `json:"total"`
	AvgAmount float64 `json:"avg_amount"`
	MaxAmount float64 `json:"max_amount"`
	Count     int64   `json:"count"`
}

// CategoryTotal is the sum of expenses in one category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int64   `json:"count"`
}

// ExpenseSummary is the response of the summary statistics endpoint.
type ExpenseSummary struct {
	Summary    SummaryStats    `json:"summary"`
	ByCategory []CategoryTotal `json:"by_category"`
}

// MonthlyTotal is the sum of expenses in one calendar month.
type MonthlyTotal struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Total float64 `json:"total"`
}

// CategoryTrend is the monthly total of one category.
type CategoryTrend struct {
	Year     int     `json:"year"`
	Month    int     `json:"month"`
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// CategoryInsight describes spending behaviour in one category.
type CategoryInsight struct {
	Category       string  `json:"category"`
	TotalSpent     float64 `json:"total_spent"`
	AverageExpense float64 `json:"average_expense"`
	MaxExpense     float64 `json:"max_expense"`
	Frequency      int64   `json:"frequency"`
}

// MonthOverview reports current-month spending.
type MonthOverview struct {
	CurrentMonth struct {
		Spending     float64 `json:"spending"`
		Transactions int64   `json:"transactions"`
	} `json:"current_month"`
}

// ForecastEntry is the historical average expense for a calendar month and category.
type ForecastEntry struct {
	Month       int     `json:"month"`
	Category    string  `json:"category"`
	AvgSpending float64 `json:"avg_spending"`
}

// CategoryChange compares one category across two periods.
type CategoryChange struct {
	Category         string  `json:"category"`
	Difference       float64 `json:"difference"`
	PercentageChange float64 `json:"percentage_change"`
}

// PeriodComparison is the response of the compare endpoint.
type PeriodComparison struct {
	Period1    []CategoryTotal  `json:"period1"`
	Period2    []CategoryTotal  `json:"period2"`
	Comparison []CategoryChange `json:"comparison"`
}

// CategoryReport groups expenses of one category for the JSON report.
type CategoryReport struct {
	Category string           `json:"category"`
	Total    float64          `json:"total"`
	Count    int64            `json:"count"`
	Items    []models.Expense `json:"items"`
}

// BudgetAlert reports current-month spending in a category against a limit.
type BudgetAlert struct {
	Status    string  `json:"status"`
	Limit     float64 `json:"limit"`
	Current   float64 `json:"current"`
	Remaining float64 `json:"remaining"`
}

// SavingsProgress tracks accumulated amounts in a category toward a target.
type SavingsProgress struct {
	Target             float64 `json:"target"`
	Current            float64 `json:"current"`
	Remaining          float64 `json:"remaining"`
	PercentageAchieved float64 `json:"percentage_achieved"`
	DaysRemaining      int     `json:"days_remaining"`
}

// Dashboard bundles the figures shown on the landing page.
type Dashboard struct {
	MonthlyTrends      []MonthlyTotal   `json:"monthly_trends"`
	CategoryBreakdown  []CategoryTotal  `json:"category_breakdown"`
	RecentTransactions []models.Expense `json:"recent_transactions"`
}

// ExpenseServicer defines the contract for expense records and their analytics.
type ExpenseServicer interface {
	CreateExpense(userID string, input ExpenseInput) (*models.Expense, error)
	GetUserExpenses(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	GetExpenseByID(userID, expenseID string) (*models.Expense, error)
	UpdateExpense(userID, expenseID string, update ExpenseUpdate) (*models.Expense, error)
	DeleteExpense(userID, expenseID string) error

	FilterExpenses(ctx context.Context, userID string, filter ExpenseFilter) ([]models.Expense, error)
	GetSummary(ctx context.Context, userID string) (*ExpenseSummary, error)
	GetMonthlyTotals(ctx context.Context, userID string) ([]MonthlyTotal, error)
	GetCurrentMonthOverview(ctx context.Context, userID string) (*MonthOverview, error)
	GetSpendingTrends(ctx context.Context, userID string) ([]CategoryTrend, error)
	GetCategoryInsights(ctx context.Context, userID string) ([]CategoryInsight, error)
	GetRecentActivity(ctx context.Context, userID string, limit int) ([]models.Expense, error)
	GetForecast(ctx context.Context, userID string) ([]ForecastEntry, error)
	ComparePeriods(ctx context.Context, userID string, period1, period2 DateRange) (*PeriodComparison, error)
	GetReport(ctx context.Context, userID string, filter ExpenseFilter) ([]CategoryReport, error)
	CheckBudgetAlert(ctx context.Context, userID, category string, limit float64) (*BudgetAlert, error)
	TrackSavingsGoal(ctx context.Context, userID, category string, target float64, targetDate time.Time) (*SavingsProgress, error)
	GetDashboard(ctx context.Context, userID string) (*Dashboard, error)
}

// BudgetInput is the payload for creating a budget.
type BudgetInput struct {
	Category string
	Amount   float64
	Period   models.BudgetPeriod
}

// BudgetUpdate carries optional budget fields. Spent is only ever changed here.
type BudgetUpdate struct {
	Category *string
	Amount   *float64
	Period   *models.BudgetPeriod
	Spent    *float64
}

// BudgetOverview sums the stored amount and spent across a user's budgets.
type BudgetOverview struct {
	TotalBudget float64 `json:"total_budget"`
	TotalSpent  float64 `json:"total_spent"`
	Remaining   float64 `json:"remaining"`
	BudgetCount int64   `json:"budget_count"`
}

// BudgetProgress compares a budget with expenses recorded in its current period.
type BudgetProgress struct {
	BudgetID    string    `json:"budget_id"`
	Category    string    `json:"category"`
	Budgeted    float64   `json:"budgeted"`
	Spent       float64   `json:"spent"`
	LiveSpent   float64   `json:"live_spent"`
	Remaining   float64   `json:"remaining"`
	Percentage  float64   `json:"percentage"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(userID string, input BudgetInput) (*models.Budget, error)
	GetUserBudgets(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Budget], error)
	GetBudgetByID(userID, budgetID string) (*models.Budget, error)
	UpdateBudget(userID, budgetID string, update BudgetUpdate) (*models.Budget, error)
	DeleteBudget(userID, budgetID string) error
	GetOverview(userID string) (*BudgetOverview, error)
	GetBudgetProgress(userID, budgetID string) (*BudgetProgress, error)
}

// GoalInput is the payload for creating a goal.
type GoalInput struct {
	TargetAmount  float64
	CurrentAmount float64
	Deadline      time.Time
	Category      string
	Description   string
}

// GoalUpdate carries optional goal fields.
type GoalUpdate struct {
	TargetAmount  *float64
	CurrentAmount *float64
	Deadline      *time.Time
	Category      *string
	Description   *string
	Status        *models.GoalStatus
}

// GoalServicer defines the contract for savings goals.
type GoalServicer interface {
	CreateGoal(userID string, input GoalInput) (*models.Goal, error)
	GetUserGoals(userID string) ([]models.Goal, error)
	GetGoalByID(userID, goalID string) (*models.Goal, error)
	UpdateGoal(userID, goalID string, update GoalUpdate) (*models.Goal, error)
	DeleteGoal(userID, goalID string) error
}

// RecurringInput is the payload for scheduling a recurring expense.
type RecurringInput struct {
	Title     string
	Amount    float64
	Category  string
	Frequency models.Frequency
}

// RecurringUpdate carries optional recurring fields.
type RecurringUpdate struct {
	Title       *string
	Amount      *float64
	Category    *string
	Frequency   *models.Frequency
	NextDueDate *time.Time
	Active      *bool
}

// RecurringPayment is the result of paying one occurrence.
type RecurringPayment struct {
	Recurring *models.Recurring `json:"recurring"`
	Expense   *models.Expense   `json:"expense"`
}

// RecurringServicer defines the contract for recurring expense schedules.
type RecurringServicer interface {
	Schedule(userID string, input RecurringInput) (*models.Recurring, error)
	GetActive(userID string) ([]models.Recurring, error)
	UpdateRecurring(userID, recurringID string, update RecurringUpdate) (*models.Recurring, error)
	DeleteRecurring(userID, recurringID string) error
	Pay(userID, recurringID string) (*RecurringPayment, error)
}

// BillInput is the payload for a bill reminder.
type BillInput struct {
	Title     string
	Amount    float64
	DueDate   time.Time
	Category  string
	Recurring bool
}

// UpcomingBills summarizes future-dated bills.
type UpcomingBills struct {
	Total   float64       `json:"total"`
	Count   int           `json:"count"`
	NextDue *time.Time    `json:"next_due"`
	Bills   []models.Bill `json:"bills"`
}

// BillPayment is the result of marking a bill paid.
type BillPayment struct {
	PaidBill *models.Bill `json:"paid_bill"`
	NextBill *models.Bill `json:"next_bill,omitempty"`
}

// BillServicer defines the contract for bills and their reminders.
type BillServicer interface {
	SetReminder(userID string, input BillInput) (*models.Bill, []models.Bill, error)
	GetUpcoming(userID string) (*UpcomingBills, error)
	MarkPaid(userID, billID string) (*BillPayment, error)
}

// ParticipantInput identifies a participant by email or user id.
type ParticipantInput struct {
	User  string
	Share float64
}

// SharedExpenseInput is the payload for creating a shared expense.
type SharedExpenseInput struct {
	Title        string
	Amount       float64
	SplitType    models.SplitType
	Participants []ParticipantInput
}

// SharedExpenseUpdate carries optional fields. A non-nil Participants
// replaces the whole participant list.
type SharedExpenseUpdate struct {
	Title        *string
	Amount       *float64
	SplitType    *models.SplitType
	Participants []ParticipantInput
}

// SharedExpenseServicer defines the contract for split expenses.
type SharedExpenseServicer interface {
	Create(userID string, input SharedExpenseInput) (*models.SharedExpense, error)
	List(userID string) ([]models.SharedExpense, error)
	Update(userID, sharedID string, update SharedExpenseUpdate) (*models.SharedExpense, error)
	Delete(userID, sharedID string) error
	Settle(userID, sharedID string) (*models.SharedExpense, error)
}

// ReportRequest selects the expenses rendered into a downloadable report.
type ReportRequest struct {
	Format     string
	StartDate  *time.Time
	EndDate    *time.Time
	Categories []string
}

// GeneratedReport is a rendered document ready to be streamed.
type GeneratedReport struct {
	Filename    string
	ContentType string
	Body        []byte
	Record      *models.Report
}

// ReportServicer defines the contract for downloadable reports.
type ReportServicer interface {
	Generate(ctx context.Context, userID string, req ReportRequest) (*GeneratedReport, error)
	GetHistory(userID string) ([]models.Report, error)
}

// ReminderResult summarizes one reminder dispatch pass.
type ReminderResult struct {
	Checked int `json:"checked"`
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
}

// ReminderServicer dispatches notifications for bills that fall due soon.
type ReminderServicer interface {
	DispatchDue(ctx context.Context, window time.Duration) (*ReminderResult, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]any)
}
