package services

import (
	"testing"
	"time"

	"finman/internal/models"
	"finman/internal/pagination"
	"finman/internal/testutil"
)

func TestCreateBudget(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		budget, err := svc.CreateBudget(user.ID, BudgetInput{Category: "groceries", Amount: 500, Period: models.BudgetPeriodQuarterly})
		testutil.AssertNoError(t, err)

		if budget.ID == "" {
			t.Fatal("expected budget ID")
		}
		if budget.Spent != 0 {
			t.Errorf("expected spent 0, got %f", budget.Spent)
		}
		if budget.Period != models.BudgetPeriodQuarterly {
			t.Errorf("expected period quarterly, got %s", budget.Period)
		}
	})

	t.Run("defaults_to_monthly", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		budget, err := svc.CreateBudget(user.ID, BudgetInput{Category: "groceries", Amount: 500})
		testutil.AssertNoError(t, err)
		if budget.Period != models.BudgetPeriodMonthly {
			t.Errorf("expected period monthly, got %s", budget.Period)
		}
	})

	t.Run("invalid_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateBudget(user.ID, BudgetInput{Category: "groceries", Amount: -1})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserBudgets(t *testing.T) {
	t.Run("returns_user_budgets_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		testutil.CreateTestBudget(t, db, user1.ID, "food", 100, 0)
		testutil.CreateTestBudget(t, db, user1.ID, "rent", 900, 0)
		testutil.CreateTestBudget(t, db, user2.ID, "food", 100, 0)

		result, err := svc.GetUserBudgets(user1.ID, pagination.PageRequest{Page: 1, PageSize: 20})
		testutil.AssertNoError(t, err)

		if result.TotalItems != 2 {
			t.Errorf("expected 2 budgets, got %d", result.TotalItems)
		}
	})

	t.Run("pagination", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		for i := 0; i < 5; i++ {
			testutil.CreateTestBudget(t, db, user.ID, "food", float64(100+i), 0)
		}

		result, err := svc.GetUserBudgets(user.ID, pagination.PageRequest{Page: 2, PageSize: 2, Sort: "amount", Order: "asc"})
		testutil.AssertNoError(t, err)

		if result.TotalPages != 3 {
			t.Errorf("expected 3 pages, got %d", result.TotalPages)
		}
		if len(result.Data) != 2 || result.Data[0].Amount != 102 {
			t.Errorf("unexpected second page %+v", result.Data)
		}
	})
}

func TestUpdateBudget(t *testing.T) {
	t.Run("spent_only_changes_when_sent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID, "food", 100, 40)

		amount := 200.0
		updated, err := svc.UpdateBudget(user.ID, budget.ID, BudgetUpdate{Amount: &amount})
		testutil.AssertNoError(t, err)
		if updated.Amount != 200 || updated.Spent != 40 {
			t.Errorf("unexpected budget %+v", updated)
		}

		spent := 75.0
		updated, err = svc.UpdateBudget(user.ID, budget.ID, BudgetUpdate{Spent: &spent})
		testutil.AssertNoError(t, err)
		if updated.Spent != 75 {
			t.Errorf("expected spent 75, got %f", updated.Spent)
		}
	})

	t.Run("not_owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, owner.ID, "food", 100, 0)

		amount := 1.0
		_, err := svc.UpdateBudget(other.ID, budget.ID, BudgetUpdate{Amount: &amount})
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})
}

func TestDeleteBudget(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewBudgetService(db)
	user := testutil.CreateTestUser(t, db)
	budget := testutil.CreateTestBudget(t, db, user.ID, "food", 100, 0)

	testutil.AssertNoError(t, svc.DeleteBudget(user.ID, budget.ID))

	_, err := svc.GetBudgetByID(user.ID, budget.ID)
	testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
}

func TestGetOverview(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewBudgetService(db)
	user := testutil.CreateTestUser(t, db)

	testutil.CreateTestBudget(t, db, user.ID, "food", 300, 100)
	testutil.CreateTestBudget(t, db, user.ID, "rent", 500, 50)

	got, err := svc.GetOverview(user.ID)
	testutil.AssertNoError(t, err)

	want := BudgetOverview{TotalBudget: 800, TotalSpent: 150, Remaining: 650, BudgetCount: 2}
	if *got != want {
		t.Errorf("expected %+v, got %+v", want, *got)
	}

	empty := testutil.CreateTestUser(t, db)
	got, err = svc.GetOverview(empty.ID)
	testutil.AssertNoError(t, err)
	if *got != (BudgetOverview{}) {
		t.Errorf("expected zero overview, got %+v", *got)
	}
}

func TestGetBudgetProgress(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewBudgetService(db).(*budgetService)
	svc.now = func() time.Time { return fixedNow }
	user := testutil.CreateTestUser(t, db)

	budget := testutil.CreateTestBudget(t, db, user.ID, "food", 200, 10)
	testutil.CreateTestExpense(t, db, user.ID, "food", 50, date(2024, 6, 3))
	testutil.CreateTestExpense(t, db, user.ID, "food", 30, date(2024, 6, 14))
	testutil.CreateTestExpense(t, db, user.ID, "food", 99, date(2024, 5, 31))
	testutil.CreateTestExpense(t, db, user.ID, "rent", 99, date(2024, 6, 5))

	got, err := svc.GetBudgetProgress(user.ID, budget.ID)
	testutil.AssertNoError(t, err)

	if got.Spent != 10 {
		t.Errorf("expected stored spent to be reported unchanged, got %f", got.Spent)
	}
	if got.LiveSpent != 80 || got.Remaining != 120 || got.Percentage != 40 {
		t.Errorf("unexpected progress %+v", got)
	}
	if !got.PeriodStart.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected period start %s", got.PeriodStart)
	}
}

func TestPeriodWindow(t *testing.T) {
	now := time.Date(2024, 8, 20, 9, 0, 0, 0, time.UTC)
	tests := []struct {
		period     models.BudgetPeriod
		start, end time.Time
	}{
		{models.BudgetPeriodMonthly, time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)},
		{models.BudgetPeriodQuarterly, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)},
		{models.BudgetPeriodYearly, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			start, end := periodWindow(tt.period, now)
			if !start.Equal(tt.start) || !end.Equal(tt.end) {
				t.Errorf("got [%s, %s), want [%s, %s)", start, end, tt.start, tt.end)
			}
		})
	}
}
