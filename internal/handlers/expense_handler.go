package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "finman/internal/errors"
	"finman/internal/pagination"
	"finman/internal/services"
)

// ExpenseHandler handles expense records and their analytics.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService}
}

// CreateExpenseRequest represents the request payload for creating an expense.
type CreateExpenseRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=200"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required,min=1,max=100"`
	Description string  `json:"description" binding:"max=1000"`
	Date        *string `json:"date"`
}

// UpdateExpenseRequest represents the request payload for updating an expense.
type UpdateExpenseRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=1,max=200"`
	Amount      *float64 `json:"amount" binding:"omitempty,gt=0"`
	Category    *string  `json:"category" binding:"omitempty,min=1,max=100"`
	Description *string  `json:"description" binding:"omitempty,max=1000"`
	Date        *string  `json:"date"`
}

// BudgetAlertRequest asks how current-month spending compares to a limit.
type BudgetAlertRequest struct {
	Category string  `json:"category" binding:"required"`
	Limit    float64 `json:"limit" binding:"required,gt=0"`
}

// SavingsGoalRequest tracks a category's accumulated amount against a target.
type SavingsGoalRequest struct {
	TargetAmount float64 `json:"target_amount" binding:"required"`
	TargetDate   string  `json:"target_date" binding:"required"`
	Category     string  `json:"category" binding:"required"`
}

// CreateExpense handles the creation of a new expense.
// @Summary     Create an expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateExpenseRequest true "Expense details"
// @Success     201 {object} models.Expense "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	input := services.ExpenseInput{
		Title:       req.Title,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
	}
	if req.Date != nil && *req.Date != "" {
		parsed, parseErr := parseFlexibleTime(*req.Date)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid date format, use RFC3339 or YYYY-MM-DD"))
			return
		}
		input.Date = parsed
	}

	expense, err := h.expenseService.CreateExpense(userID, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_EXPENSE", "expense", expense.ID, c.ClientIP(),
		map[string]any{"title": req.Title, "amount": req.Amount, "category": req.Category})

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// GetExpenses lists the caller's expenses.
// @Summary     Get expenses
// @Description Get a paginated list of expenses, newest first
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Param       sort      query string false "date, amount, title, category or created_at"
// @Param       order     query string false "asc or desc"
// @Success     200 {object} pagination.PageResponse[models.Expense] "Paginated expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /expenses [get]
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	result, err := h.expenseService.GetUserExpenses(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetExpense returns one expense.
// @Summary     Get expense by ID
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} models.Expense
// @Failure     400 {object} ErrorResponse "Invalid expense ID"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [get]
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetExpenseByID(userID, expenseID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// UpdateExpense changes an expense.
// @Summary     Update expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true "Expense ID"
// @Param       request body UpdateExpenseRequest true "Fields to change"
// @Success     200 {object} models.Expense
// @Failure     400 {object} ErrorResponse "Invalid input or expense ID"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	update := services.ExpenseUpdate{
		Title:       req.Title,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
	}
	if req.Date != nil && *req.Date != "" {
		parsed, parseErr := parseFlexibleTime(*req.Date)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid date format, use RFC3339 or YYYY-MM-DD"))
			return
		}
		update.Date = &parsed
	}

	expense, err := h.expenseService.UpdateExpense(userID, expenseID, update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_EXPENSE", "expense", expenseID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// DeleteExpense removes an expense.
// @Summary     Delete expense
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} MessageResponse "Expense deleted"
// @Failure     400 {object} ErrorResponse "Invalid expense ID"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(userID, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_EXPENSE", "expense", expenseID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Expense deleted successfully"})
}

// GetSummary returns overall statistics and per-category totals.
// @Summary     Expense statistics
// @Tags        expense-analytics
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.ExpenseSummary
// @Router      /expenses/stats/summary [get]
func (h *ExpenseHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.expenseService.GetSummary(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetMonthlyTotals returns spending per calendar month.
// @Summary     Monthly expenses
// @Tags        expense-analytics
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.MonthlyTotal
// @Router      /expenses/stats/monthly [get]
func (h *ExpenseHandler) GetMonthlyTotals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	totals, err := h.expenseService.GetMonthlyTotals(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, totals)
}

// FilterExpenses returns expenses matching the query filters, newest first.
// @Summary     Filter expenses
// @Tags        expense-analytics
// @Produce     json
// @Security    BearerAuth
// @Param       start_date query string false "Inclusive lower bound (RFC3339 or YYYY-MM-DD)"
// @Param       end_date   query string false "Inclusive upper bound (RFC3339 or YYYY-MM-DD)"
// @Param       category   query string false "Category, or a comma-separated list"
// @Param       min_amount query number false "Minimum amount"
// @Param       max_amount query number false "Maximum amount"
// @Success     200 {array} models.Expense
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Router      /expenses/filter [get]
func (h *ExpenseHandler) FilterExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter, err := parseExpenseFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenses, err := h.expenseService.FilterExpenses(c.Request.Context(), userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// GetBudgetOverview reports spending in the current month.
// @Summary     Current month overview
// @Tags        expense-analytics
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.MonthOverview
// @Router      /expenses/budget-overview [get]
func (h *ExpenseHandler) GetBudgetOverview(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	overview, err := h.expenseService.GetCurrentMonthOverview(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// GetSpendingTrends returns monthly totals per category.
// @Summary     Spending trends
// @Tags        expense-analytics
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.CategoryTrend
// @Router      /expenses/spending-trends [get]
func (h *ExpenseHandler) GetSpendingTrends(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	trends, err := h.expenseService.GetSpendingTrends(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, trends)
}

// GetCategoryInsights returns per-category spending behaviour.
// @Summary     Category insights
// @Tags        expense-analytics
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.CategoryInsight
// @Router      /expenses/category-insights [get]
func (h *ExpenseHandler) GetCategoryInsights(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	insights, err := h.expenseService.GetCategoryInsights(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, insights)
}

// GetRecentActivity returns the newest expenses.
// @Summary     Recent activity
// @Tags        expense-analytics
// @Produce     json
// @Security    BearerAuth
// @Param       limit query int false "Number of expenses (default 5)"
// @Success     200 {array} models.Expense
// @Failure     400 {object} ErrorResponse "Invalid limit"
// @Router      /expenses/recent-activity [get]
func (h *ExpenseHandler) GetRecentActivity(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		n, convErr := strconv.Atoi(v)
		if convErr != nil || n < 1 || n > 100 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must be between 1 and 100"))
			return
		}
		limit = n
	}

	expenses, err := h.expenseService.GetRecentActivity(c.Request.Context(), userID, limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// GetForecast returns historical averages per month and category.
// @Summary     Expense forecast
// @Tags        expense-analytics
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.ForecastEntry
// @Router      /expenses/forecast [get]
func (h *ExpenseHandler) GetForecast(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	forecast, err := h.expenseService.GetForecast(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, forecast)
}

// ComparePeriods compares category totals of two date ranges.
// @Summary     Compare periods
// @Tags        expense-analytics
// @Produce     json
// @Security    BearerAuth
// @Param       period1_start query string true "Period 1 start (period1Start also accepted)"
// @Param       period1_end   query string true "Period 1 end (period1End also accepted)"
// @Param       period2_start query string true "Period 2 start (period2Start also accepted)"
// @Param       period2_end   query string true "Period 2 end (period2End also accepted)"
// @Success     200 {object} services.PeriodComparison
// @Failure     400 {object} ErrorResponse "Missing or invalid dates"
// @Router      /expenses/compare [get]
func (h *ExpenseHandler) ComparePeriods(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	period1, err := parseDateRange(c, "period1_start", "period1Start", "period1_end", "period1End")
	if err != nil {
		respondWithError(c, err)
		return
	}
	period2, err := parseDateRange(c, "period2_start", "period2Start", "period2_end", "period2End")
	if err != nil {
		respondWithError(c, err)
		return
	}

	comparison, err := h.expenseService.ComparePeriods(c.Request.Context(), userID, period1, period2)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, comparison)
}

// GetReport groups filtered expenses by category.
// @Summary     Expense report
// @Tags        expense-analytics
// @Produce     json
// @Security    BearerAuth
// @Param       start_date query string false "Start date"
// @Param       end_date   query string false "End date"
// @Param       categories query string false "Comma-separated categories"
// @Success     200 {array} services.CategoryReport
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Router      /expenses/report [get]
func (h *ExpenseHandler) GetReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter, err := parseExpenseFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.expenseService.GetReport(c.Request.Context(), userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// CheckBudgetAlert compares current-month category spending with a limit.
// @Summary     Budget alert
// @Tags        alerts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body BudgetAlertRequest true "Category and limit"
// @Success     200 {object} services.BudgetAlert
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /expenses/budget-alert [post]
func (h *ExpenseHandler) CheckBudgetAlert(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BudgetAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	alert, err := h.expenseService.CheckBudgetAlert(c.Request.Context(), userID, req.Category, req.Limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, alert)
}

// TrackSavingsGoal reports progress of a category toward a target.
// @Summary     Track savings goal
// @Tags        alerts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SavingsGoalRequest true "Target, date and category"
// @Success     200 {object} services.SavingsProgress
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /expenses/savings-goal [post]
func (h *ExpenseHandler) TrackSavingsGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SavingsGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	targetDate, err := parseFlexibleTime(req.TargetDate)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid target_date format, use RFC3339 or YYYY-MM-DD"))
		return
	}

	progress, err := h.expenseService.TrackSavingsGoal(c.Request.Context(), userID, req.Category, req.TargetAmount, targetDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, progress)
}

// GetDashboard bundles trends, category breakdown and recent expenses.
// @Summary     Dashboard statistics
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.Dashboard
// @Router      /dashboard [get]
func (h *ExpenseHandler) GetDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	dashboard, err := h.expenseService.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

func parseExpenseFilter(c *gin.Context) (services.ExpenseFilter, error) {
	var filter services.ExpenseFilter

	start, err := queryTime(c, "start_date", "startDate")
	if err != nil {
		return filter, err
	}
	filter.StartDate = start

	end, err := queryTime(c, "end_date", "endDate")
	if err != nil {
		return filter, err
	}
	filter.EndDate = endOfDay(end, c.DefaultQuery("end_date", c.Query("endDate")))

	if raw := c.Query("categories"); raw != "" {
		filter.Categories = splitList(raw)
	} else {
		filter.Categories = splitList(c.Query("category"))
	}

	if filter.MinAmount, err = queryFloat(c, "min_amount"); err != nil {
		return filter, err
	}
	if filter.MaxAmount, err = queryFloat(c, "max_amount"); err != nil {
		return filter, err
	}
	return filter, nil
}

// parseDateRange reads a required range from startKey/endKey, falling back
// to their camelCase aliases.
func parseDateRange(c *gin.Context, startKey, startAlias, endKey, endAlias string) (services.DateRange, error) {
	start, err := queryTime(c, startKey, startAlias)
	if err != nil {
		return services.DateRange{}, err
	}
	end, err := queryTime(c, endKey, endAlias)
	if err != nil {
		return services.DateRange{}, err
	}
	if start == nil || end == nil {
		return services.DateRange{}, apperrors.WithMessage(apperrors.ErrInvalidInput, startKey+" and "+endKey+" are required")
	}
	end = endOfDay(end, c.DefaultQuery(endKey, c.Query(endAlias)))
	if end.Before(*start) {
		return services.DateRange{}, apperrors.WithMessage(apperrors.ErrInvalidInput, endKey+" must not be before "+startKey)
	}
	return services.DateRange{Start: *start, End: *end}, nil
}

