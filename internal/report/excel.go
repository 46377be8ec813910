package report

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the expense rows.
const SheetName = "Expenses"

var excelHeader = []any{"Title", "Category", "Amount", "Date", "Description"}

// Excel renders every row of doc into a single worksheet followed by a total row.
func Excel(doc Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return nil, fmt.Errorf("create amount style: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &excelHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", "E1", headerStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	grand := decimal.Zero
	for i, r := range doc.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		amount := decimal.NewFromFloat(r.Amount)
		grand = grand.Add(amount)
		row := []any{r.Title, r.Category, amount.InexactFloat64(), r.Date.Format("2006-01-02"), r.Description}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	totalRow := len(doc.Rows) + 2
	labelCell, _ := excelize.CoordinatesToCellName(1, totalRow)
	total := []any{"Total", "", grand.InexactFloat64()}
	if err := f.SetSheetRow(SheetName, labelCell, &total); err != nil {
		return nil, fmt.Errorf("write total: %w", err)
	}
	endLabel, _ := excelize.CoordinatesToCellName(5, totalRow)
	if err := f.SetCellStyle(SheetName, labelCell, endLabel, headerStyle); err != nil {
		return nil, fmt.Errorf("style total: %w", err)
	}
	if len(doc.Rows) > 0 {
		if err := f.SetCellStyle(SheetName, "C2", fmt.Sprintf("C%d", totalRow-1), amountStyle); err != nil {
			return nil, fmt.Errorf("style amounts: %w", err)
		}
	}

	widths := map[string]float64{"A": 30, "B": 20, "C": 14, "D": 14, "E": 40}
	for col, w := range widths {
		if err := f.SetColWidth(SheetName, col, col, w); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render spreadsheet: %w", err)
	}
	return buf.Bytes(), nil
}
