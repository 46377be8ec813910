package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finman/internal/errors"
	"finman/internal/models"
	"finman/internal/services"
)

type mockBillService struct {
	setReminderFn func(userID string, input services.BillInput) (*models.Bill, []models.Bill, error)
	getUpcomingFn func(userID string) (*services.UpcomingBills, error)
	markPaidFn    func(userID, billID string) (*services.BillPayment, error)
}

func (m *mockBillService) SetReminder(userID string, input services.BillInput) (*models.Bill, []models.Bill, error) {
	if m.setReminderFn != nil {
		return m.setReminderFn(userID, input)
	}
	return &models.Bill{}, []models.Bill{}, nil
}

func (m *mockBillService) GetUpcoming(userID string) (*services.UpcomingBills, error) {
	if m.getUpcomingFn != nil {
		return m.getUpcomingFn(userID)
	}
	return &services.UpcomingBills{Bills: []models.Bill{}}, nil
}

func (m *mockBillService) MarkPaid(userID, billID string) (*services.BillPayment, error) {
	if m.markPaidFn != nil {
		return m.markPaidFn(userID, billID)
	}
	return &services.BillPayment{PaidBill: &models.Bill{Status: models.BillStatusPaid}}, nil
}

var _ services.BillServicer = (*mockBillService)(nil)

func setupBillRouter(handler *BillHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/expenses/bills", handler.SetReminder)
	auth.GET("/expenses/bills/upcoming", handler.GetUpcoming)
	auth.PATCH("/expenses/bills/:billId/paid", handler.MarkPaid)
	return r
}

func TestBillHandler_SetReminder(t *testing.T) {
	t.Run("returns 201 with upcoming bills", func(t *testing.T) {
		var got services.BillInput
		svc := &mockBillService{
			setReminderFn: func(_ string, input services.BillInput) (*models.Bill, []models.Bill, error) {
				got = input
				bill := &models.Bill{Title: input.Title, Status: models.BillStatusPending}
				return bill, []models.Bill{*bill}, nil
			},
		}
		r := setupBillRouter(NewBillHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/expenses/bills",
			`{"title":"Power","amount":80,"due_date":"2030-01-15","category":"utilities","recurring":true}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if !got.Recurring || !got.DueDate.Equal(time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected input %+v", got)
		}
		result := parseJSON(t, rec)
		if result["message"] != "Bill reminder set successfully" {
			t.Errorf("unexpected message %v", result["message"])
		}
		if bills := result["upcoming_bills"].([]interface{}); len(bills) != 1 {
			t.Errorf("expected 1 upcoming bill, got %d", len(bills))
		}
	})

	t.Run("returns 400 on bad due date", func(t *testing.T) {
		r := setupBillRouter(NewBillHandler(&mockBillService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/expenses/bills",
			`{"title":"Power","amount":80,"due_date":"15/01/2030","category":"utilities"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestBillHandler_GetUpcoming(t *testing.T) {
	svc := &mockBillService{
		getUpcomingFn: func(_ string) (*services.UpcomingBills, error) {
			return &services.UpcomingBills{Total: 180, Count: 2, Bills: []models.Bill{{}, {}}}, nil
		},
	}
	r := setupBillRouter(NewBillHandler(svc, &mockAuditService{}))

	rec := doRequest(r, "GET", "/expenses/bills/upcoming", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	if result["total"].(float64) != 180 || result["count"].(float64) != 2 {
		t.Errorf("unexpected upcoming %v", result)
	}
}

func TestBillHandler_MarkPaid(t *testing.T) {
	t.Run("includes next bill for recurring", func(t *testing.T) {
		next := &models.Bill{Base: models.Base{ID: otherUserID}, Status: models.BillStatusPending}
		svc := &mockBillService{
			markPaidFn: func(_, billID string) (*services.BillPayment, error) {
				return &services.BillPayment{
					PaidBill: &models.Bill{Base: models.Base{ID: billID}, Status: models.BillStatusPaid},
					NextBill: next,
				}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupBillRouter(NewBillHandler(svc, audit))

		rec := doRequest(r, "PATCH", "/expenses/bills/"+testRecID+"/paid", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["paid_bill"].(map[string]interface{})["status"] != "paid" {
			t.Errorf("expected paid bill, got %v", result["paid_bill"])
		}
		if _, ok := result["next_bill"]; !ok {
			t.Error("expected next_bill in response")
		}
		if got := audit.actions(); len(got) != 1 || got[0] != "PAY_BILL" {
			t.Errorf("expected PAY_BILL audit, got %v", got)
		}
	})

	t.Run("omits next bill for one-off", func(t *testing.T) {
		r := setupBillRouter(NewBillHandler(&mockBillService{}, &mockAuditService{}))

		rec := doRequest(r, "PATCH", "/expenses/bills/"+testRecID+"/paid", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if _, ok := parseJSON(t, rec)["next_bill"]; ok {
			t.Error("next_bill should be omitted")
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockBillService{
			markPaidFn: func(_, _ string) (*services.BillPayment, error) { return nil, apperrors.ErrBillNotFound },
		}
		r := setupBillRouter(NewBillHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PATCH", "/expenses/bills/"+testRecID+"/paid", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "BILL_NOT_FOUND")
	})

	t.Run("returns 400 on malformed bill id", func(t *testing.T) {
		r := setupBillRouter(NewBillHandler(&mockBillService{}, &mockAuditService{}))

		rec := doRequest(r, "PATCH", "/expenses/bills/abc/paid", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
