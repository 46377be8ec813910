package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"finman/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plaintext password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password, unique username and email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username: fmt.Sprintf("user%d", nextID()),
		Email:    email,
		Password: string(hash),
		Settings: models.DefaultSettings(),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestExpense creates an expense with the given category, amount and date.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID, category string, amount float64, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:   userID,
		Title:    fmt.Sprintf("Test Expense %d", nextID()),
		Amount:   amount,
		Category: category,
		Date:     date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestBudget creates a monthly budget with the given amount and stored spent.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID, category string, amount, spent float64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:   userID,
		Category: category,
		Amount:   amount,
		Period:   models.BudgetPeriodMonthly,
		Spent:    spent,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestGoal creates an active goal due in three months.
func CreateTestGoal(t *testing.T, db *gorm.DB, userID string) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		UserID:       userID,
		TargetAmount: 1000,
		Deadline:     time.Now().AddDate(0, 3, 0),
		Category:     "savings",
		Description:  fmt.Sprintf("Test Goal %d", nextID()),
		Status:       models.GoalStatusActive,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// CreateTestRecurring creates a recurring expense with the given frequency and next due date.
func CreateTestRecurring(t *testing.T, db *gorm.DB, userID string, freq models.Frequency, next time.Time, active bool) *models.Recurring {
	t.Helper()

	recurring := &models.Recurring{
		UserID:      userID,
		Title:       fmt.Sprintf("Test Recurring %d", nextID()),
		Amount:      15,
		Category:    "subscriptions",
		Frequency:   freq,
		NextDueDate: next,
		Active:      true,
	}
	if err := db.Create(recurring).Error; err != nil {
		t.Fatalf("failed to create test recurring expense: %v", err)
	}
	// A false bool is a zero value and would be skipped by a struct update.
	if !active {
		if err := db.Model(recurring).Update("active", false).Error; err != nil {
			t.Fatalf("failed to deactivate recurring expense: %v", err)
		}
	}
	return recurring
}

// CreateTestBill creates a pending bill due at the given time.
func CreateTestBill(t *testing.T, db *gorm.DB, userID string, due time.Time, recurring bool) *models.Bill {
	t.Helper()

	bill := &models.Bill{
		UserID:    userID,
		Title:     fmt.Sprintf("Test Bill %d", nextID()),
		Amount:    100,
		DueDate:   due,
		Category:  "utilities",
		Recurring: recurring,
		Status:    models.BillStatusPending,
	}
	if err := db.Create(bill).Error; err != nil {
		t.Fatalf("failed to create test bill: %v", err)
	}
	return bill
}

// CreateTestSharedExpense creates an equal split of amount between the given users.
func CreateTestSharedExpense(t *testing.T, db *gorm.DB, creatorID string, amount float64, participantIDs ...string) *models.SharedExpense {
	t.Helper()

	shared := &models.SharedExpense{
		CreatedBy: creatorID,
		Title:     fmt.Sprintf("Test Shared %d", nextID()),
		Amount:    amount,
		SplitType: models.SplitEqual,
		Status:    models.SharedStatusPending,
	}
	for _, id := range participantIDs {
		shared.Participants = append(shared.Participants, models.SharedParticipant{
			UserID: id,
			Share:  amount / float64(len(participantIDs)),
		})
	}
	if err := db.Create(shared).Error; err != nil {
		t.Fatalf("failed to create test shared expense: %v", err)
	}
	return shared
}
