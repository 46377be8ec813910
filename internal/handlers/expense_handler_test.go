package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finman/internal/errors"
	"finman/internal/models"
	"finman/internal/pagination"
	"finman/internal/services"
)

// --- mock expense service ---

type mockExpenseService struct {
	createFn      func(userID string, input services.ExpenseInput) (*models.Expense, error)
	listFn        func(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	getFn         func(userID, expenseID string) (*models.Expense, error)
	updateFn      func(userID, expenseID string, update services.ExpenseUpdate) (*models.Expense, error)
	deleteFn      func(userID, expenseID string) error
	filterFn      func(userID string, filter services.ExpenseFilter) ([]models.Expense, error)
	recentFn      func(userID string, limit int) ([]models.Expense, error)
	compareFn     func(userID string, p1, p2 services.DateRange) (*services.PeriodComparison, error)
	reportFn      func(userID string, filter services.ExpenseFilter) ([]services.CategoryReport, error)
	budgetAlertFn func(userID, category string, limit float64) (*services.BudgetAlert, error)
	savingsFn     func(userID, category string, target float64, targetDate time.Time) (*services.SavingsProgress, error)
}

func (m *mockExpenseService) CreateExpense(userID string, input services.ExpenseInput) (*models.Expense, error) {
	if m.createFn != nil {
		return m.createFn(userID, input)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) GetUserExpenses(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	if m.listFn != nil {
		return m.listFn(userID, page)
	}
	resp := pagination.NewPageResponse([]models.Expense{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockExpenseService) GetExpenseByID(userID, expenseID string) (*models.Expense, error) {
	if m.getFn != nil {
		return m.getFn(userID, expenseID)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) UpdateExpense(userID, expenseID string, update services.ExpenseUpdate) (*models.Expense, error) {
	if m.updateFn != nil {
		return m.updateFn(userID, expenseID, update)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) DeleteExpense(userID, expenseID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(userID, expenseID)
	}
	return nil
}

func (m *mockExpenseService) FilterExpenses(_ context.Context, userID string, filter services.ExpenseFilter) ([]models.Expense, error) {
	if m.filterFn != nil {
		return m.filterFn(userID, filter)
	}
	return []models.Expense{}, nil
}

func (m *mockExpenseService) GetSummary(_ context.Context, _ string) (*services.ExpenseSummary, error) {
	return &services.ExpenseSummary{
		Summary:    services.SummaryStats{Total: 150, AvgAmount: 50, MaxAmount: 80, Count: 3},
		ByCategory: []services.CategoryTotal{{Category: "food", Total: 150, Count: 3}},
	}, nil
}

func (m *mockExpenseService) GetMonthlyTotals(_ context.Context, _ string) ([]services.MonthlyTotal, error) {
	return []services.MonthlyTotal{{Year: 2024, Month: 6, Total: 100}, {Year: 2024, Month: 5, Total: 50}}, nil
}

func (m *mockExpenseService) GetCurrentMonthOverview(_ context.Context, _ string) (*services.MonthOverview, error) {
	o := &services.MonthOverview{}
	o.CurrentMonth.Spending = 42
	o.CurrentMonth.Transactions = 2
	return o, nil
}

func (m *mockExpenseService) GetSpendingTrends(_ context.Context, _ string) ([]services.CategoryTrend, error) {
	return []services.CategoryTrend{}, nil
}

func (m *mockExpenseService) GetCategoryInsights(_ context.Context, _ string) ([]services.CategoryInsight, error) {
	return []services.CategoryInsight{}, nil
}

func (m *mockExpenseService) GetRecentActivity(_ context.Context, userID string, limit int) ([]models.Expense, error) {
	if m.recentFn != nil {
		return m.recentFn(userID, limit)
	}
	return []models.Expense{}, nil
}

func (m *mockExpenseService) GetForecast(_ context.Context, _ string) ([]services.ForecastEntry, error) {
	return []services.ForecastEntry{}, nil
}

func (m *mockExpenseService) ComparePeriods(_ context.Context, userID string, p1, p2 services.DateRange) (*services.PeriodComparison, error) {
	if m.compareFn != nil {
		return m.compareFn(userID, p1, p2)
	}
	return &services.PeriodComparison{}, nil
}

func (m *mockExpenseService) GetReport(_ context.Context, userID string, filter services.ExpenseFilter) ([]services.CategoryReport, error) {
	if m.reportFn != nil {
		return m.reportFn(userID, filter)
	}
	return []services.CategoryReport{}, nil
}

func (m *mockExpenseService) CheckBudgetAlert(_ context.Context, userID, category string, limit float64) (*services.BudgetAlert, error) {
	if m.budgetAlertFn != nil {
		return m.budgetAlertFn(userID, category, limit)
	}
	return &services.BudgetAlert{}, nil
}

func (m *mockExpenseService) TrackSavingsGoal(_ context.Context, userID, category string, target float64, targetDate time.Time) (*services.SavingsProgress, error) {
	if m.savingsFn != nil {
		return m.savingsFn(userID, category, target, targetDate)
	}
	return &services.SavingsProgress{}, nil
}

func (m *mockExpenseService) GetDashboard(_ context.Context, _ string) (*services.Dashboard, error) {
	return &services.Dashboard{
		MonthlyTrends:      []services.MonthlyTotal{},
		CategoryBreakdown:  []services.CategoryTotal{},
		RecentTransactions: []models.Expense{},
	}, nil
}

var _ services.ExpenseServicer = (*mockExpenseService)(nil)

func setupExpenseRouter(handler *ExpenseHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.GET("/expenses/stats/summary", handler.GetSummary)
	auth.GET("/expenses/stats/monthly", handler.GetMonthlyTotals)
	auth.GET("/expenses/filter", handler.FilterExpenses)
	auth.GET("/expenses/budget-overview", handler.GetBudgetOverview)
	auth.GET("/expenses/recent-activity", handler.GetRecentActivity)
	auth.GET("/expenses/compare", handler.ComparePeriods)
	auth.GET("/expenses/report", handler.GetReport)
	auth.POST("/expenses/budget-alert", handler.CheckBudgetAlert)
	auth.POST("/expenses/savings-goal", handler.TrackSavingsGoal)
	auth.POST("/expenses", handler.CreateExpense)
	auth.GET("/expenses", handler.GetExpenses)
	auth.GET("/expenses/:id", handler.GetExpense)
	auth.PUT("/expenses/:id", handler.UpdateExpense)
	auth.DELETE("/expenses/:id", handler.DeleteExpense)
	auth.GET("/dashboard", handler.GetDashboard)
	return r
}

func TestExpenseHandler_CreateExpense(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var got services.ExpenseInput
		audit := &mockAuditService{}
		svc := &mockExpenseService{
			createFn: func(userID string, input services.ExpenseInput) (*models.Expense, error) {
				got = input
				return &models.Expense{
					Base:     models.Base{ID: testRecID},
					UserID:   userID,
					Title:    input.Title,
					Amount:   input.Amount,
					Category: input.Category,
					Date:     input.Date,
				}, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc, audit))

		rec := doRequest(r, "POST", "/expenses",
			`{"title":"Lunch","amount":12.5,"category":"food","date":"2024-06-01"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		expense := parseJSON(t, rec)["expense"].(map[string]interface{})
		if expense["title"] != "Lunch" || expense["amount"].(float64) != 12.5 {
			t.Errorf("unexpected expense %v", expense)
		}
		if !got.Date.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected parsed date, got %v", got.Date)
		}
		if len(audit.calls) != 1 || audit.calls[0].ResourceID != testRecID {
			t.Errorf("expected CREATE_EXPENSE audit for %s, got %+v", testRecID, audit.calls)
		}
	})

	t.Run("omitted date stays zero", func(t *testing.T) {
		var got services.ExpenseInput
		svc := &mockExpenseService{
			createFn: func(_ string, input services.ExpenseInput) (*models.Expense, error) {
				got = input
				return &models.Expense{}, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/expenses", `{"title":"Lunch","amount":12.5,"category":"food"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
		if !got.Date.IsZero() {
			t.Errorf("expected zero date for the service to default, got %v", got.Date)
		}
	})

	for name, body := range map[string]string{
		"missing_title":    `{"amount":12.5,"category":"food"}`,
		"zero_amount":      `{"title":"Lunch","amount":0,"category":"food"}`,
		"negative_amount":  `{"title":"Lunch","amount":-3,"category":"food"}`,
		"missing_category": `{"title":"Lunch","amount":12.5}`,
		"bad_date":         `{"title":"Lunch","amount":12.5,"category":"food","date":"yesterday"}`,
	} {
		t.Run("returns 400 on "+name, func(t *testing.T) {
			r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}, &mockAuditService{}))

			rec := doRequest(r, "POST", "/expenses", body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		})
	}
}

func TestExpenseHandler_GetExpenses(t *testing.T) {
	t.Run("passes pagination", func(t *testing.T) {
		var got pagination.PageRequest
		svc := &mockExpenseService{
			listFn: func(_ string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
				got = page
				resp := pagination.NewPageResponse([]models.Expense{{Title: "a"}}, 2, 10, 11)
				return &resp, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/expenses?page=2&page_size=10&sort=amount&order=asc", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got.Page != 2 || got.PageSize != 10 || got.Sort != "amount" || got.Order != "asc" {
			t.Errorf("unexpected page request %+v", got)
		}
		result := parseJSON(t, rec)
		if result["total_pages"].(float64) != 2 {
			t.Errorf("expected 2 pages, got %v", result["total_pages"])
		}
	})

	t.Run("rejects bad order", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/expenses?order=sideways", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestExpenseHandler_GetExpense(t *testing.T) {
	t.Run("returns 400 on malformed id", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/expenses/not-a-uuid", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_ID")
	})

	t.Run("returns 404 when not owned", func(t *testing.T) {
		svc := &mockExpenseService{
			getFn: func(_, _ string) (*models.Expense, error) { return nil, apperrors.ErrExpenseNotFound },
		}
		r := setupExpenseRouter(NewExpenseHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/expenses/"+testRecID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "EXPENSE_NOT_FOUND")
		if result["status"] != "fail" {
			t.Errorf("expected fail, got %v", result["status"])
		}
	})
}

func TestExpenseHandler_UpdateExpense(t *testing.T) {
	t.Run("passes only sent fields", func(t *testing.T) {
		var got services.ExpenseUpdate
		svc := &mockExpenseService{
			updateFn: func(_, _ string, update services.ExpenseUpdate) (*models.Expense, error) {
				got = update
				return &models.Expense{Amount: *update.Amount}, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/expenses/"+testRecID, `{"amount":99}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Amount == nil || *got.Amount != 99 || got.Title != nil || got.Date != nil {
			t.Errorf("unexpected update %+v", got)
		}
	})
}

func TestExpenseHandler_DeleteExpense(t *testing.T) {
	audit := &mockAuditService{}
	r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}, audit))

	rec := doRequest(r, "DELETE", "/expenses/"+testRecID, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := audit.actions(); len(got) != 1 || got[0] != "DELETE_EXPENSE" {
		t.Errorf("expected DELETE_EXPENSE audit, got %v", got)
	}
}

func TestExpenseHandler_Analytics(t *testing.T) {
	r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}, &mockAuditService{}))

	t.Run("summary", func(t *testing.T) {
		rec := doRequest(r, "GET", "/expenses/stats/summary", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		summary := parseJSON(t, rec)["summary"].(map[string]interface{})
		if summary["total"].(float64) != 150 || summary["count"].(float64) != 3 {
			t.Errorf("unexpected summary %v", summary)
		}
	})

	t.Run("monthly", func(t *testing.T) {
		rec := doRequest(r, "GET", "/expenses/stats/monthly", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got := parseJSONArray(t, rec); len(got) != 2 {
			t.Errorf("expected 2 months, got %d", len(got))
		}
	})

	t.Run("budget_overview", func(t *testing.T) {
		rec := doRequest(r, "GET", "/expenses/budget-overview", "")
		current := parseJSON(t, rec)["current_month"].(map[string]interface{})
		if current["spending"].(float64) != 42 || current["transactions"].(float64) != 2 {
			t.Errorf("unexpected overview %v", current)
		}
	})

	t.Run("dashboard", func(t *testing.T) {
		rec := doRequest(r, "GET", "/dashboard", "")
		result := parseJSON(t, rec)
		for _, key := range []string{"monthly_trends", "category_breakdown", "recent_transactions"} {
			if _, ok := result[key]; !ok {
				t.Errorf("missing %s", key)
			}
		}
	})
}

func TestExpenseHandler_FilterExpenses(t *testing.T) {
	t.Run("parses every filter", func(t *testing.T) {
		var got services.ExpenseFilter
		svc := &mockExpenseService{
			filterFn: func(_ string, filter services.ExpenseFilter) ([]models.Expense, error) {
				got = filter
				return []models.Expense{}, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET",
			"/expenses/filter?start_date=2024-01-01&end_date=2024-01-31&category=food,travel&min_amount=5&max_amount=50.5", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if !got.StartDate.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected start %v", got.StartDate)
		}
		wantEnd := time.Date(2024, 1, 31, 23, 59, 59, 999999999, time.UTC)
		if !got.EndDate.Equal(wantEnd) {
			t.Errorf("expected end of day %v, got %v", wantEnd, got.EndDate)
		}
		if len(got.Categories) != 2 || got.Categories[1] != "travel" {
			t.Errorf("unexpected categories %v", got.Categories)
		}
		if *got.MinAmount != 5 || *got.MaxAmount != 50.5 {
			t.Errorf("unexpected amounts %v %v", *got.MinAmount, *got.MaxAmount)
		}
	})

	t.Run("rejects bad amount", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/expenses/filter?min_amount=lots", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("rejects bad date", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/expenses/filter?start_date=01/02/2024", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestExpenseHandler_GetRecentActivity(t *testing.T) {
	t.Run("default limit is left to the service", func(t *testing.T) {
		got := -1
		svc := &mockExpenseService{
			recentFn: func(_ string, limit int) ([]models.Expense, error) {
				got = limit
				return []models.Expense{}, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc, &mockAuditService{}))

		doRequest(r, "GET", "/expenses/recent-activity", "")
		if got != 0 {
			t.Errorf("expected 0, got %d", got)
		}

		doRequest(r, "GET", "/expenses/recent-activity?limit=3", "")
		if got != 3 {
			t.Errorf("expected 3, got %d", got)
		}
	})

	t.Run("rejects non-numeric limit", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/expenses/recent-activity?limit=many", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestExpenseHandler_ComparePeriods(t *testing.T) {
	t.Run("passes both ranges", func(t *testing.T) {
		var p1, p2 services.DateRange
		svc := &mockExpenseService{
			compareFn: func(_ string, a, b services.DateRange) (*services.PeriodComparison, error) {
				p1, p2 = a, b
				return &services.PeriodComparison{}, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET",
			"/expenses/compare?period1_start=2024-02-01&period1_end=2024-02-29&period2_start=2024-01-01&period2_end=2024-01-31", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if p1.Start.Month() != time.February || p2.Start.Month() != time.January {
			t.Errorf("unexpected ranges %+v %+v", p1, p2)
		}
	})

	t.Run("accepts camelCase names", func(t *testing.T) {
		var p1, p2 services.DateRange
		svc := &mockExpenseService{
			compareFn: func(_ string, a, b services.DateRange) (*services.PeriodComparison, error) {
				p1, p2 = a, b
				return &services.PeriodComparison{}, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET",
			"/expenses/compare?period1Start=2024-02-01&period1End=2024-02-29&period2Start=2024-01-01&period2End=2024-01-31", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if p1.Start.Month() != time.February || p2.Start.Month() != time.January {
			t.Errorf("unexpected ranges %+v %+v", p1, p2)
		}
		if p1.End.Day() != 29 || p1.End.Hour() != 23 {
			t.Errorf("expected date-only end widened to end of day, got %s", p1.End)
		}
	})

	t.Run("requires all four dates", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/expenses/compare?period1_start=2024-02-01&period1_end=2024-02-29", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}, &mockAuditService{}))

		rec := doRequest(r, "GET",
			"/expenses/compare?period1_start=2024-03-01&period1_end=2024-02-01&period2_start=2024-01-01&period2_end=2024-01-31", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestExpenseHandler_GetReport(t *testing.T) {
	var got services.ExpenseFilter
	svc := &mockExpenseService{
		reportFn: func(_ string, filter services.ExpenseFilter) ([]services.CategoryReport, error) {
			got = filter
			return []services.CategoryReport{{Category: "food", Total: 10, Count: 1, Items: []models.Expense{}}}, nil
		},
	}
	r := setupExpenseRouter(NewExpenseHandler(svc, &mockAuditService{}))

	rec := doRequest(r, "GET", "/expenses/report?categories=food,%20rent&startDate=2024-01-01", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(got.Categories) != 2 || got.Categories[1] != "rent" {
		t.Errorf("expected trimmed categories, got %v", got.Categories)
	}
	if got.StartDate == nil {
		t.Error("expected camelCase startDate to be accepted")
	}
	if rows := parseJSONArray(t, rec); len(rows) != 1 {
		t.Errorf("expected 1 group, got %d", len(rows))
	}
}

func TestExpenseHandler_Alerts(t *testing.T) {
	t.Run("budget alert", func(t *testing.T) {
		svc := &mockExpenseService{
			budgetAlertFn: func(_, category string, limit float64) (*services.BudgetAlert, error) {
				return &services.BudgetAlert{Status: "exceeded", Limit: limit, Current: 120, Remaining: limit - 120}, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/expenses/budget-alert", `{"category":"food","limit":100}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if parseJSON(t, rec)["status"] != "exceeded" {
			t.Error("expected exceeded")
		}
	})

	t.Run("budget alert requires limit", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/expenses/budget-alert", `{"category":"food"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("savings goal parses target date", func(t *testing.T) {
		var gotDate time.Time
		svc := &mockExpenseService{
			savingsFn: func(_, _ string, target float64, targetDate time.Time) (*services.SavingsProgress, error) {
				gotDate = targetDate
				return &services.SavingsProgress{Target: target}, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/expenses/savings-goal",
			`{"target_amount":1000,"target_date":"2024-12-31","category":"savings"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotDate.Year() != 2024 || gotDate.Month() != time.December {
			t.Errorf("unexpected date %v", gotDate)
		}
	})

	t.Run("savings goal surfaces service validation", func(t *testing.T) {
		svc := &mockExpenseService{
			savingsFn: func(_, _ string, _ float64, _ time.Time) (*services.SavingsProgress, error) {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target_amount must be positive")
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/expenses/savings-goal",
			`{"target_amount":-5,"target_date":"2024-12-31","category":"savings"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
