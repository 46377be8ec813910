package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finman/internal/errors"
	"finman/internal/models"
	"finman/internal/services"
)

// BillHandler handles bill reminders.
type BillHandler struct {
	billService  services.BillServicer
	auditService services.AuditServicer
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(billService services.BillServicer, auditService services.AuditServicer) *BillHandler {
	return &BillHandler{billService: billService, auditService: auditService}
}

// BillReminderRequest represents the request payload for a bill reminder.
type BillReminderRequest struct {
	Title     string  `json:"title" binding:"required,min=1,max=200"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	DueDate   string  `json:"due_date" binding:"required"`
	Category  string  `json:"category" binding:"required,min=1,max=100"`
	Recurring bool    `json:"recurring"`
}

// BillReminderResponse is returned after setting a reminder.
type BillReminderResponse struct {
	Message       string        `json:"message"`
	Reminder      *models.Bill  `json:"reminder"`
	UpcomingBills []models.Bill `json:"upcoming_bills"`
}

// BillPaidResponse is returned after marking a bill paid.
type BillPaidResponse struct {
	Message  string       `json:"message"`
	PaidBill *models.Bill `json:"paid_bill"`
	NextBill *models.Bill `json:"next_bill,omitempty"`
}

// SetReminder creates a pending bill.
// @Summary     Set bill reminder
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body BillReminderRequest true "Bill details"
// @Success     201 {object} BillReminderResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /expenses/bills [post]
func (h *BillHandler) SetReminder(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BillReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	dueDate, err := parseFlexibleTime(req.DueDate)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid due_date format, use RFC3339 or YYYY-MM-DD"))
		return
	}

	bill, upcoming, err := h.billService.SetReminder(userID, services.BillInput{
		Title:     req.Title,
		Amount:    req.Amount,
		DueDate:   dueDate,
		Category:  req.Category,
		Recurring: req.Recurring,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "SET_BILL_REMINDER", "bill", bill.ID, c.ClientIP(),
		map[string]any{"title": req.Title, "amount": req.Amount, "recurring": req.Recurring})

	c.JSON(http.StatusCreated, BillReminderResponse{
		Message:       "Bill reminder set successfully",
		Reminder:      bill,
		UpcomingBills: upcoming,
	})
}

// GetUpcoming lists future bills with their total.
// @Summary     Get upcoming bills
// @Tags        bills
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.UpcomingBills
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /expenses/bills/upcoming [get]
func (h *BillHandler) GetUpcoming(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	upcoming, err := h.billService.GetUpcoming(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, upcoming)
}

// MarkPaid settles a bill and rolls a recurring one forward a month.
// @Summary     Mark bill as paid
// @Tags        bills
// @Produce     json
// @Security    BearerAuth
// @Param       billId path string true "Bill ID"
// @Success     200 {object} BillPaidResponse
// @Failure     400 {object} ErrorResponse "Invalid bill ID"
// @Failure     404 {object} ErrorResponse "Bill not found"
// @Router      /expenses/bills/{billId}/paid [patch]
func (h *BillHandler) MarkPaid(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	billID, err := parsePathID(c, "billId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	payment, err := h.billService.MarkPaid(userID, billID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	changes := map[string]any{"status": models.BillStatusPaid}
	if payment.NextBill != nil {
		changes["next_bill_id"] = payment.NextBill.ID
	}
	h.auditService.Log(userID, "PAY_BILL", "bill", billID, c.ClientIP(), changes)

	c.JSON(http.StatusOK, BillPaidResponse{
		Message:  "Bill marked as paid",
		PaidBill: payment.PaidBill,
		NextBill: payment.NextBill,
	})
}
