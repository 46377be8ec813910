package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finman/internal/services"
)

// ReportHandler serves downloadable expense reports.
type ReportHandler struct {
	reportService services.ReportServicer
	auditService  services.AuditServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer, auditService services.AuditServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService, auditService: auditService}
}

// GenerateReport renders the caller's expenses as a PDF or spreadsheet.
// @Summary     Generate a financial report
// @Tags        reports
// @Produce     application/pdf
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security    BearerAuth
// @Param       format     query string false "pdf or excel (default excel)"
// @Param       start_date query string false "Start date (startDate also accepted)"
// @Param       end_date   query string false "End date (endDate also accepted)"
// @Param       categories query string false "Comma-separated categories"
// @Success     200 {file} file
// @Failure     400 {object} ErrorResponse "Invalid format or dates"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /reports/generate [get]
func (h *ReportHandler) GenerateReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter, err := parseExpenseFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	generated, err := h.reportService.Generate(c.Request.Context(), userID, services.ReportRequest{
		Format:     c.Query("format"),
		StartDate:  filter.StartDate,
		EndDate:    filter.EndDate,
		Categories: filter.Categories,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "GENERATE_REPORT", "report", generated.Record.ID, c.ClientIP(),
		map[string]any{"format": generated.Record.Format, "records": generated.Record.RecordCount})

	c.Header("Content-Disposition", "attachment; filename="+generated.Filename)
	c.Data(http.StatusOK, generated.ContentType, generated.Body)
}

// GetReportHistory lists previously generated reports.
// @Summary     Report history
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Report
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /reports [get]
func (h *ReportHandler) GetReportHistory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	reports, err := h.reportService.GetHistory(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}
