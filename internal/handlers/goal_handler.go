package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finman/internal/errors"
	"finman/internal/models"
	"finman/internal/services"
)

// GoalHandler handles savings goals.
type GoalHandler struct {
	goalService  services.GoalServicer
	auditService services.AuditServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService services.GoalServicer, auditService services.AuditServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService, auditService: auditService}
}

// CreateGoalRequest represents the request payload for creating a goal.
type CreateGoalRequest struct {
	TargetAmount  float64 `json:"target_amount" binding:"required,gt=0"`
	CurrentAmount float64 `json:"current_amount" binding:"gte=0"`
	Deadline      string  `json:"deadline" binding:"required"`
	Category      string  `json:"category" binding:"required,min=1,max=100"`
	Description   string  `json:"description" binding:"max=1000"`
}

// UpdateGoalRequest represents the request payload for updating a goal.
type UpdateGoalRequest struct {
	TargetAmount  *float64           `json:"target_amount" binding:"omitempty,gt=0"`
	CurrentAmount *float64           `json:"current_amount" binding:"omitempty,gte=0"`
	Deadline      *string            `json:"deadline"`
	Category      *string            `json:"category" binding:"omitempty,min=1,max=100"`
	Description   *string            `json:"description" binding:"omitempty,max=1000"`
	Status        *models.GoalStatus `json:"status" binding:"omitempty,goal_status"`
}

// CreateGoal handles the creation of a new goal.
// @Summary     Create a financial goal
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateGoalRequest true "Goal details"
// @Success     201 {object} models.Goal "Goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	deadline, err := parseFlexibleTime(req.Deadline)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid deadline format, use RFC3339 or YYYY-MM-DD"))
		return
	}

	goal, err := h.goalService.CreateGoal(userID, services.GoalInput{
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Deadline:      deadline,
		Category:      req.Category,
		Description:   req.Description,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_GOAL", "goal", goal.ID, c.ClientIP(),
		map[string]any{"target_amount": req.TargetAmount, "category": req.Category})

	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

// GetGoals lists the caller's goals by deadline.
// @Summary     Get financial goals
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Goal
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /goals [get]
func (h *GoalHandler) GetGoals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goals, err := h.goalService.GetUserGoals(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// UpdateGoal changes a goal. Status only moves through this endpoint.
// @Summary     Update a financial goal
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Goal ID"
// @Param       request body UpdateGoalRequest true "Fields to change"
// @Success     200 {object} models.Goal
// @Failure     400 {object} ErrorResponse "Invalid input or goal ID"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Router      /goals/{id} [put]
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	update := services.GoalUpdate{
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Category:      req.Category,
		Description:   req.Description,
		Status:        req.Status,
	}
	if req.Deadline != nil {
		deadline, parseErr := parseFlexibleTime(*req.Deadline)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid deadline format, use RFC3339 or YYYY-MM-DD"))
			return
		}
		update.Deadline = &deadline
	}

	goal, err := h.goalService.UpdateGoal(userID, goalID, update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_GOAL", "goal", goalID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// DeleteGoal removes a goal.
// @Summary     Delete a financial goal
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Goal ID"
// @Success     200 {object} MessageResponse "Goal deleted"
// @Failure     400 {object} ErrorResponse "Invalid goal ID"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Router      /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.goalService.DeleteGoal(userID, goalID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_GOAL", "goal", goalID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Goal deleted successfully"})
}
