package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finman/internal/models"
	"finman/internal/services"
)

// SharedExpenseHandler handles expenses split between users.
type SharedExpenseHandler struct {
	sharedService services.SharedExpenseServicer
	auditService  services.AuditServicer
}

// NewSharedExpenseHandler creates a new SharedExpenseHandler.
func NewSharedExpenseHandler(sharedService services.SharedExpenseServicer, auditService services.AuditServicer) *SharedExpenseHandler {
	return &SharedExpenseHandler{sharedService: sharedService, auditService: auditService}
}

// ParticipantRequest names a participant by email or user id.
type ParticipantRequest struct {
	User  string  `json:"user" binding:"required"`
	Share float64 `json:"share" binding:"gte=0"`
}

// CreateSharedExpenseRequest represents the request payload for a shared expense.
type CreateSharedExpenseRequest struct {
	Title        string               `json:"title" binding:"required,min=1,max=200"`
	Amount       float64              `json:"amount" binding:"required,gt=0"`
	SplitType    models.SplitType     `json:"split_type" binding:"omitempty,split_type"`
	Participants []ParticipantRequest `json:"participants" binding:"required,min=1,dive"`
}

// UpdateSharedExpenseRequest represents the request payload for changing a
// shared expense. Sending participants replaces the whole list.
type UpdateSharedExpenseRequest struct {
	Title        *string              `json:"title" binding:"omitempty,min=1,max=200"`
	Amount       *float64             `json:"amount" binding:"omitempty,gt=0"`
	SplitType    *models.SplitType    `json:"split_type" binding:"omitempty,split_type"`
	Participants []ParticipantRequest `json:"participants" binding:"omitempty,min=1,dive"`
}

// SharedExpenseResponse wraps a single shared expense.
type SharedExpenseResponse struct {
	Status string                `json:"status"`
	Data   *models.SharedExpense `json:"data"`
}

func toParticipantInputs(reqs []ParticipantRequest) []services.ParticipantInput {
	if reqs == nil {
		return nil
	}
	inputs := make([]services.ParticipantInput, len(reqs))
	for i, p := range reqs {
		inputs[i] = services.ParticipantInput{User: p.User, Share: p.Share}
	}
	return inputs
}

// CreateSharedExpense splits an expense between participants.
// @Summary     Create shared expense
// @Tags        shared
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateSharedExpenseRequest true "Shared expense details"
// @Success     201 {object} SharedExpenseResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Participant not found"
// @Router      /shared [post]
func (h *SharedExpenseHandler) CreateSharedExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateSharedExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	shared, err := h.sharedService.Create(userID, services.SharedExpenseInput{
		Title:        req.Title,
		Amount:       req.Amount,
		SplitType:    req.SplitType,
		Participants: toParticipantInputs(req.Participants),
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_SHARED_EXPENSE", "shared_expense", shared.ID, c.ClientIP(),
		map[string]any{"title": req.Title, "amount": req.Amount, "participants": len(req.Participants)})

	c.JSON(http.StatusCreated, SharedExpenseResponse{Status: "success", Data: shared})
}

// GetSharedExpenses lists shared expenses the caller created or takes part in.
// @Summary     Get shared expenses
// @Tags        shared
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.SharedExpense
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /shared [get]
func (h *SharedExpenseHandler) GetSharedExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	list, err := h.sharedService.List(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": list})
}

// UpdateSharedExpense changes a shared expense. Only its creator may do so.
// @Summary     Update shared expense
// @Tags        shared
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                     true "Shared expense ID"
// @Param       request body UpdateSharedExpenseRequest true "Fields to change"
// @Success     200 {object} SharedExpenseResponse
// @Failure     400 {object} ErrorResponse "Invalid input or ID"
// @Failure     404 {object} ErrorResponse "Shared expense not found"
// @Router      /shared/{id} [put]
func (h *SharedExpenseHandler) UpdateSharedExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	sharedID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSharedExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	shared, err := h.sharedService.Update(userID, sharedID, services.SharedExpenseUpdate{
		Title:        req.Title,
		Amount:       req.Amount,
		SplitType:    req.SplitType,
		Participants: toParticipantInputs(req.Participants),
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_SHARED_EXPENSE", "shared_expense", sharedID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, SharedExpenseResponse{Status: "success", Data: shared})
}

// DeleteSharedExpense removes a shared expense. Only its creator may do so.
// @Summary     Delete shared expense
// @Tags        shared
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Shared expense ID"
// @Success     200 {object} MessageResponse
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Shared expense not found"
// @Router      /shared/{id} [delete]
func (h *SharedExpenseHandler) DeleteSharedExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	sharedID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.sharedService.Delete(userID, sharedID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_SHARED_EXPENSE", "shared_expense", sharedID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Shared expense deleted successfully"})
}

// SettleSharedExpense marks the caller's share as paid.
// @Summary     Settle shared expense
// @Tags        shared
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Shared expense ID"
// @Success     200 {object} SharedExpenseResponse
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     403 {object} ErrorResponse "Not a participant"
// @Failure     404 {object} ErrorResponse "Shared expense not found"
// @Router      /shared/{id}/settle [post]
func (h *SharedExpenseHandler) SettleSharedExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	sharedID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	shared, err := h.sharedService.Settle(userID, sharedID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "SETTLE_SHARED_EXPENSE", "shared_expense", sharedID, c.ClientIP(),
		map[string]any{"status": shared.Status})

	c.JSON(http.StatusOK, SharedExpenseResponse{Status: "success", Data: shared})
}
