package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "finman/internal/errors"
	"finman/internal/models"
	"finman/internal/services"
)

type mockSharedExpenseService struct {
	createFn func(userID string, input services.SharedExpenseInput) (*models.SharedExpense, error)
	listFn   func(userID string) ([]models.SharedExpense, error)
	updateFn func(userID, sharedID string, update services.SharedExpenseUpdate) (*models.SharedExpense, error)
	deleteFn func(userID, sharedID string) error
	settleFn func(userID, sharedID string) (*models.SharedExpense, error)
}

func (m *mockSharedExpenseService) Create(userID string, input services.SharedExpenseInput) (*models.SharedExpense, error) {
	if m.createFn != nil {
		return m.createFn(userID, input)
	}
	return &models.SharedExpense{}, nil
}

func (m *mockSharedExpenseService) List(userID string) ([]models.SharedExpense, error) {
	if m.listFn != nil {
		return m.listFn(userID)
	}
	return []models.SharedExpense{}, nil
}

func (m *mockSharedExpenseService) Update(userID, sharedID string, update services.SharedExpenseUpdate) (*models.SharedExpense, error) {
	if m.updateFn != nil {
		return m.updateFn(userID, sharedID, update)
	}
	return &models.SharedExpense{}, nil
}

func (m *mockSharedExpenseService) Delete(userID, sharedID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(userID, sharedID)
	}
	return nil
}

func (m *mockSharedExpenseService) Settle(userID, sharedID string) (*models.SharedExpense, error) {
	if m.settleFn != nil {
		return m.settleFn(userID, sharedID)
	}
	return &models.SharedExpense{}, nil
}

var _ services.SharedExpenseServicer = (*mockSharedExpenseService)(nil)

func setupSharedRouter(handler *SharedExpenseHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/shared", handler.CreateSharedExpense)
	auth.GET("/shared", handler.GetSharedExpenses)
	auth.PUT("/shared/:id", handler.UpdateSharedExpense)
	auth.DELETE("/shared/:id", handler.DeleteSharedExpense)
	auth.POST("/shared/:id/settle", handler.SettleSharedExpense)
	return r
}

func TestSharedExpenseHandler_Create(t *testing.T) {
	t.Run("returns 201 and maps participants", func(t *testing.T) {
		var got services.SharedExpenseInput
		svc := &mockSharedExpenseService{
			createFn: func(userID string, input services.SharedExpenseInput) (*models.SharedExpense, error) {
				got = input
				return &models.SharedExpense{CreatedBy: userID, Title: input.Title, SplitType: models.SplitEqual, Status: models.SharedStatusPending}, nil
			},
		}
		r := setupSharedRouter(NewSharedExpenseHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/shared",
			`{"title":"Dinner","amount":90,"participants":[{"user":"bob@example.com"},{"user":"`+otherUserID+`"}]}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if len(got.Participants) != 2 || got.Participants[0].User != "bob@example.com" {
			t.Errorf("unexpected participants %+v", got.Participants)
		}
		result := parseJSON(t, rec)
		if result["status"] != "success" {
			t.Errorf("expected success, got %v", result["status"])
		}
		if data := result["data"].(map[string]interface{}); data["created_by"] != testUserID {
			t.Errorf("expected creator %s, got %v", testUserID, data["created_by"])
		}
	})

	t.Run("returns 400 without participants", func(t *testing.T) {
		r := setupSharedRouter(NewSharedExpenseHandler(&mockSharedExpenseService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/shared", `{"title":"Dinner","amount":90,"participants":[]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on participant without user", func(t *testing.T) {
		r := setupSharedRouter(NewSharedExpenseHandler(&mockSharedExpenseService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/shared", `{"title":"Dinner","amount":90,"participants":[{"share":10}]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on unknown split type", func(t *testing.T) {
		r := setupSharedRouter(NewSharedExpenseHandler(&mockSharedExpenseService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/shared", `{"title":"Dinner","amount":90,"split_type":"weighted","participants":[{"user":"a@b.c"}]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("surfaces unknown participant", func(t *testing.T) {
		svc := &mockSharedExpenseService{
			createFn: func(_ string, _ services.SharedExpenseInput) (*models.SharedExpense, error) {
				return nil, apperrors.ErrUserNotFound
			},
		}
		r := setupSharedRouter(NewSharedExpenseHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/shared", `{"title":"Dinner","amount":90,"participants":[{"user":"ghost@example.com"}]}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestSharedExpenseHandler_List(t *testing.T) {
	svc := &mockSharedExpenseService{
		listFn: func(_ string) ([]models.SharedExpense, error) {
			return []models.SharedExpense{{Title: "a"}}, nil
		},
	}
	r := setupSharedRouter(NewSharedExpenseHandler(svc, &mockAuditService{}))

	rec := doRequest(r, "GET", "/shared", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if data := parseJSON(t, rec)["data"].([]interface{}); len(data) != 1 {
		t.Errorf("expected 1 shared expense, got %d", len(data))
	}
}

func TestSharedExpenseHandler_Update(t *testing.T) {
	t.Run("leaves participants nil when absent", func(t *testing.T) {
		var got services.SharedExpenseUpdate
		svc := &mockSharedExpenseService{
			updateFn: func(_, _ string, update services.SharedExpenseUpdate) (*models.SharedExpense, error) {
				got = update
				return &models.SharedExpense{}, nil
			},
		}
		r := setupSharedRouter(NewSharedExpenseHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/shared/"+testRecID, `{"title":"Lunch"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Participants != nil {
			t.Error("participants must stay nil when not sent")
		}
		if got.Title == nil || *got.Title != "Lunch" {
			t.Errorf("unexpected title %v", got.Title)
		}
	})

	t.Run("returns 404 for non-creator", func(t *testing.T) {
		svc := &mockSharedExpenseService{
			updateFn: func(_, _ string, _ services.SharedExpenseUpdate) (*models.SharedExpense, error) {
				return nil, apperrors.ErrSharedExpenseNotFound
			},
		}
		r := setupSharedRouter(NewSharedExpenseHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/shared/"+testRecID, `{"title":"Lunch"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "SHARED_EXPENSE_NOT_FOUND")
	})
}

func TestSharedExpenseHandler_Delete(t *testing.T) {
	audit := &mockAuditService{}
	r := setupSharedRouter(NewSharedExpenseHandler(&mockSharedExpenseService{}, audit))

	rec := doRequest(r, "DELETE", "/shared/"+testRecID, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := audit.actions(); len(got) != 1 || got[0] != "DELETE_SHARED_EXPENSE" {
		t.Errorf("expected DELETE_SHARED_EXPENSE audit, got %v", got)
	}
}

func TestSharedExpenseHandler_Settle(t *testing.T) {
	t.Run("returns settled expense", func(t *testing.T) {
		svc := &mockSharedExpenseService{
			settleFn: func(_, _ string) (*models.SharedExpense, error) {
				return &models.SharedExpense{Status: models.SharedStatusSettled}, nil
			},
		}
		r := setupSharedRouter(NewSharedExpenseHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/shared/"+testRecID+"/settle", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		data := parseJSON(t, rec)["data"].(map[string]interface{})
		if data["status"] != "settled" {
			t.Errorf("expected settled, got %v", data["status"])
		}
	})

	t.Run("returns 403 for outsiders", func(t *testing.T) {
		svc := &mockSharedExpenseService{
			settleFn: func(_, _ string) (*models.SharedExpense, error) { return nil, apperrors.ErrNotAParticipant },
		}
		r := setupSharedRouter(NewSharedExpenseHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/shared/"+testRecID+"/settle", "")

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "NOT_A_PARTICIPANT")
	})
}
