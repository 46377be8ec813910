package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finman/internal/errors"
	"finman/internal/services"
)

// PipelineHandler exposes batch jobs to external schedulers.
type PipelineHandler struct {
	reminderService services.ReminderServicer
	window          time.Duration
}

// NewPipelineHandler creates a new PipelineHandler. window is how far ahead
// bills are considered due unless the request overrides it.
func NewPipelineHandler(reminderService services.ReminderServicer, window time.Duration) *PipelineHandler {
	return &PipelineHandler{reminderService: reminderService, window: window}
}

// DispatchBillReminders sends notifications for bills falling due soon.
// @Summary     Dispatch bill reminders
// @Tags        pipeline
// @Produce     json
// @Security    ApiKeyAuth
// @Param       window query string false "Look-ahead window, e.g. 48h"
// @Success     200 {object} services.ReminderResult
// @Failure     400 {object} ErrorResponse "Invalid window"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Router      /pipeline/bill-reminders [post]
func (h *PipelineHandler) DispatchBillReminders(c *gin.Context) {
	window := h.window
	if v := c.Query("window"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "window must be a positive duration such as 72h"))
			return
		}
		window = d
	}

	result, err := h.reminderService.DispatchDue(c.Request.Context(), window)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
