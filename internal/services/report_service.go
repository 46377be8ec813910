package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "finman/internal/errors"
	"finman/internal/models"
	"finman/internal/report"
)

// Supported report formats.
const (
	ReportFormatPDF   = "pdf"
	ReportFormatExcel = "excel"
)

// reportService renders expense reports and keeps their history.
type reportService struct {
	db       *gorm.DB
	expenses ExpenseServicer
	now      func() time.Time
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB, expenses ExpenseServicer) ReportServicer {
	return &reportService{db: db, expenses: expenses, now: utcNow}
}

// Generate renders the user's expenses matching req. An empty format means excel.
func (s *reportService) Generate(ctx context.Context, userID string, req ReportRequest) (*GeneratedReport, error) {
	format := strings.ToLower(req.Format)
	if format == "" {
		format = ReportFormatExcel
	}
	if format != ReportFormatPDF && format != ReportFormatExcel {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "format must be pdf or excel")
	}

	expenses, err := s.expenses.FilterExpenses(ctx, userID, ExpenseFilter{
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Categories: req.Categories,
	})
	if err != nil {
		return nil, err
	}

	doc := report.Document{
		Title:       "Expense Report",
		Start:       req.StartDate,
		End:         req.EndDate,
		GeneratedAt: s.now(),
		Rows:        make([]report.Row, 0, len(expenses)),
	}
	for _, e := range expenses {
		doc.Rows = append(doc.Rows, report.Row{
			Title:       e.Title,
			Category:    e.Category,
			Amount:      e.Amount,
			Date:        e.Date,
			Description: e.Description,
		})
	}

	generated := &GeneratedReport{}
	switch format {
	case ReportFormatPDF:
		generated.Body, err = report.PDF(doc)
		generated.Filename = "expense-report.pdf"
		generated.ContentType = "application/pdf"
	default:
		generated.Body, err = report.Excel(doc)
		generated.Filename = "expense-report.xlsx"
		generated.ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	record := &models.Report{
		UserID:      userID,
		Format:      format,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Categories:  strings.Join(req.Categories, ","),
		RecordCount: len(expenses),
	}
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	generated.Record = record

	return generated, nil
}

// GetHistory lists previously generated reports, newest first.
func (s *reportService) GetHistory(userID string) ([]models.Report, error) {
	var reports []models.Report
	if err := s.db.Scopes(ownedBy[models.Report](userID)).Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return reports, nil
}
