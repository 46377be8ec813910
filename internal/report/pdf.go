package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	pdfFont        = "Helvetica"
	pdfLineHeight  = 8.0
	categoryColumn = 110.0
	countColumn    = 30.0
	amountColumn   = 50.0
)

// PDF renders the category summary of doc. Long listings continue on new
// pages, each with a numbered footer.
func PDF(doc Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(pdfFont, "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont(pdfFont, "B", 18)
	pdf.CellFormat(0, 12, doc.Title, "", 1, "C", false, 0, "")
	pdf.SetFont(pdfFont, "", 11)
	pdf.CellFormat(0, pdfLineHeight, RangeLabel(doc), "", 1, "C", false, 0, "")
	if !doc.GeneratedAt.IsZero() {
		pdf.CellFormat(0, pdfLineHeight, "Generated "+doc.GeneratedAt.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	}
	pdf.Ln(6)

	totals, grand := Totals(doc.Rows)

	header := func() {
		pdf.SetFont(pdfFont, "B", 11)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(categoryColumn, pdfLineHeight, "Category", "1", 0, "L", true, 0, "")
		pdf.CellFormat(countColumn, pdfLineHeight, "Expenses", "1", 0, "R", true, 0, "")
		pdf.CellFormat(amountColumn, pdfLineHeight, "Total", "1", 1, "R", true, 0, "")
		pdf.SetFont(pdfFont, "", 11)
	}
	header()

	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for _, ct := range totals {
		if pdf.GetY()+pdfLineHeight > pageHeight-bottom-20 {
			pdf.AddPage()
			header()
		}
		pdf.CellFormat(categoryColumn, pdfLineHeight, ct.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(countColumn, pdfLineHeight, fmt.Sprintf("%d", ct.Count), "1", 0, "R", false, 0, "")
		pdf.CellFormat(amountColumn, pdfLineHeight, FormatAmount(ct.Total), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont(pdfFont, "B", 11)
	pdf.CellFormat(categoryColumn+countColumn, pdfLineHeight, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(amountColumn, pdfLineHeight, FormatAmount(grand), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
