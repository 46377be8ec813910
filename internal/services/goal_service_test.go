package services

import (
	"testing"
	"time"

	"finman/internal/models"
	"finman/internal/testutil"
)

func TestGoalLifecycle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewGoalService(db)
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)

	goal, err := svc.CreateGoal(user.ID, GoalInput{TargetAmount: 5000, Deadline: time.Now().AddDate(1, 0, 0), Category: "travel"})
	testutil.AssertNoError(t, err)
	if goal.Status != models.GoalStatusActive || goal.CurrentAmount != 0 {
		t.Errorf("unexpected new goal %+v", goal)
	}

	t.Run("list_own_only", func(t *testing.T) {
		testutil.CreateTestGoal(t, db, other.ID)
		goals, err := svc.GetUserGoals(user.ID)
		testutil.AssertNoError(t, err)
		if len(goals) != 1 {
			t.Errorf("expected 1 goal, got %d", len(goals))
		}
	})

	t.Run("reaching_target_does_not_complete", func(t *testing.T) {
		current := 6000.0
		updated, err := svc.UpdateGoal(user.ID, goal.ID, GoalUpdate{CurrentAmount: &current})
		testutil.AssertNoError(t, err)
		if updated.Status != models.GoalStatusActive {
			t.Errorf("expected status to stay active, got %s", updated.Status)
		}
	})

	t.Run("status_set_by_client", func(t *testing.T) {
		status := models.GoalStatusCompleted
		updated, err := svc.UpdateGoal(user.ID, goal.ID, GoalUpdate{Status: &status})
		testutil.AssertNoError(t, err)
		if updated.Status != models.GoalStatusCompleted {
			t.Errorf("expected completed, got %s", updated.Status)
		}
	})

	t.Run("other_user_cannot_delete", func(t *testing.T) {
		err := svc.DeleteGoal(other.ID, goal.ID)
		testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")
	})

	t.Run("delete", func(t *testing.T) {
		testutil.AssertNoError(t, svc.DeleteGoal(user.ID, goal.ID))
		_, err := svc.GetGoalByID(user.ID, goal.ID)
		testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")
	})
}

func TestCreateGoalValidation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewGoalService(db)
	user := testutil.CreateTestUser(t, db)

	_, err := svc.CreateGoal(user.ID, GoalInput{TargetAmount: 100, Category: "travel"})
	testutil.AssertAppError(t, err, "INVALID_INPUT")

	_, err = svc.CreateGoal(user.ID, GoalInput{TargetAmount: 0, Deadline: time.Now(), Category: "travel"})
	testutil.AssertAppError(t, err, "INVALID_INPUT")
}
