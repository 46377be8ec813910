package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finman/internal/errors"
	"finman/internal/models"
	"finman/internal/services"
)

// RecurringHandler handles recurring expense schedules.
type RecurringHandler struct {
	recurringService services.RecurringServicer
	auditService     services.AuditServicer
}

// NewRecurringHandler creates a new RecurringHandler.
func NewRecurringHandler(recurringService services.RecurringServicer, auditService services.AuditServicer) *RecurringHandler {
	return &RecurringHandler{recurringService: recurringService, auditService: auditService}
}

// ScheduleRecurringRequest represents the request payload for a new schedule.
type ScheduleRecurringRequest struct {
	Title     string           `json:"title" binding:"required,min=1,max=200"`
	Amount    float64          `json:"amount" binding:"required,gt=0"`
	Category  string           `json:"category" binding:"required,min=1,max=100"`
	Frequency models.Frequency `json:"frequency" binding:"required,recurring_frequency"`
}

// UpdateRecurringRequest represents the request payload for changing a schedule.
type UpdateRecurringRequest struct {
	Title       *string           `json:"title" binding:"omitempty,min=1,max=200"`
	Amount      *float64          `json:"amount" binding:"omitempty,gt=0"`
	Category    *string           `json:"category" binding:"omitempty,min=1,max=100"`
	Frequency   *models.Frequency `json:"frequency" binding:"omitempty,recurring_frequency"`
	NextDueDate *string           `json:"next_due_date"`
	Active      *bool             `json:"active"`
}

// RecurringResponse wraps a single schedule.
type RecurringResponse struct {
	Status string            `json:"status"`
	Data   *models.Recurring `json:"data"`
}

// RecurringListResponse lists active schedules.
type RecurringListResponse struct {
	Count int                `json:"count"`
	Data  []models.Recurring `json:"data"`
}

// ScheduleRecurring creates a schedule due one frequency unit from now.
// @Summary     Schedule recurring expense
// @Tags        recurring
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ScheduleRecurringRequest true "Schedule details"
// @Success     201 {object} RecurringResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /recurring [post]
func (h *RecurringHandler) ScheduleRecurring(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ScheduleRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	recurring, err := h.recurringService.Schedule(userID, services.RecurringInput{
		Title:     req.Title,
		Amount:    req.Amount,
		Category:  req.Category,
		Frequency: req.Frequency,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "SCHEDULE_RECURRING", "recurring", recurring.ID, c.ClientIP(),
		map[string]any{"title": req.Title, "amount": req.Amount, "frequency": req.Frequency})

	c.JSON(http.StatusCreated, RecurringResponse{Status: "success", Data: recurring})
}

// GetRecurring lists active schedules, soonest first.
// @Summary     Get recurring expenses
// @Tags        recurring
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} RecurringListResponse
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /recurring [get]
func (h *RecurringHandler) GetRecurring(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	schedules, err := h.recurringService.GetActive(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, RecurringListResponse{Count: len(schedules), Data: schedules})
}

// UpdateRecurring changes a schedule.
// @Summary     Update recurring expense
// @Tags        recurring
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                 true "Recurring ID"
// @Param       request body UpdateRecurringRequest true "Fields to change"
// @Success     200 {object} RecurringResponse
// @Failure     400 {object} ErrorResponse "Invalid input or recurring ID"
// @Failure     404 {object} ErrorResponse "Recurring expense not found"
// @Router      /recurring/{id} [put]
func (h *RecurringHandler) UpdateRecurring(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	recurringID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	update := services.RecurringUpdate{
		Title:     req.Title,
		Amount:    req.Amount,
		Category:  req.Category,
		Frequency: req.Frequency,
		Active:    req.Active,
	}
	if req.NextDueDate != nil {
		next, parseErr := parseFlexibleTime(*req.NextDueDate)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid next_due_date format, use RFC3339 or YYYY-MM-DD"))
			return
		}
		update.NextDueDate = &next
	}

	recurring, err := h.recurringService.UpdateRecurring(userID, recurringID, update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_RECURRING", "recurring", recurringID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, RecurringResponse{Status: "success", Data: recurring})
}

// DeleteRecurring removes a schedule.
// @Summary     Delete recurring expense
// @Tags        recurring
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Recurring ID"
// @Success     200 {object} MessageResponse "Recurring expense deleted"
// @Failure     400 {object} ErrorResponse "Invalid recurring ID"
// @Failure     404 {object} ErrorResponse "Recurring expense not found"
// @Router      /recurring/{id} [delete]
func (h *RecurringHandler) DeleteRecurring(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	recurringID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.recurringService.DeleteRecurring(userID, recurringID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_RECURRING", "recurring", recurringID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Recurring expense deleted"})
}

// PayRecurring records one occurrence as an expense and advances the due date.
// @Summary     Pay recurring expense
// @Tags        recurring
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Recurring ID"
// @Success     201 {object} services.RecurringPayment
// @Failure     400 {object} ErrorResponse "Invalid ID or inactive schedule"
// @Failure     404 {object} ErrorResponse "Recurring expense not found"
// @Router      /recurring/{id}/pay [post]
func (h *RecurringHandler) PayRecurring(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	recurringID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	payment, err := h.recurringService.Pay(userID, recurringID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "PAY_RECURRING", "recurring", recurringID, c.ClientIP(),
		map[string]any{"expense_id": payment.Expense.ID, "amount": payment.Expense.Amount})

	c.JSON(http.StatusCreated, payment)
}
