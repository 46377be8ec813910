// Package report renders expense listings into downloadable documents.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Row is one expense line in a report.
type Row struct {
	Title       string
	Category    string
	Amount      float64
	Date        time.Time
	Description string
}

// Document is the input of a renderer.
type Document struct {
	Title       string
	Start       *time.Time
	End         *time.Time
	Rows        []Row
	GeneratedAt time.Time
}

// CategoryTotal is the summed amount of one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
	Count    int
}

// Totals sums rows per category, largest total first, plus the grand total.
// Amounts are summed as decimals so cents do not drift.
func Totals(rows []Row) ([]CategoryTotal, decimal.Decimal) {
	index := make(map[string]int)
	var totals []CategoryTotal
	grand := decimal.Zero
	for _, r := range rows {
		amount := decimal.NewFromFloat(r.Amount)
		grand = grand.Add(amount)

		i, ok := index[r.Category]
		if !ok {
			i = len(totals)
			index[r.Category] = i
			totals = append(totals, CategoryTotal{Category: r.Category, Total: decimal.Zero})
		}
		totals[i].Total = totals[i].Total.Add(amount)
		totals[i].Count++
	}

	sort.SliceStable(totals, func(i, j int) bool {
		if c := totals[i].Total.Cmp(totals[j].Total); c != 0 {
			return c > 0
		}
		return totals[i].Category < totals[j].Category
	})
	return totals, grand
}

// FormatAmount renders an amount with two decimal places.
func FormatAmount(v decimal.Decimal) string {
	return v.StringFixed(2)
}

// RangeLabel describes the date range of doc.
func RangeLabel(doc Document) string {
	const layout = "2006-01-02"
	switch {
	case doc.Start != nil && doc.End != nil:
		return doc.Start.Format(layout) + " to " + doc.End.Format(layout)
	case doc.Start != nil:
		return "From " + doc.Start.Format(layout)
	case doc.End != nil:
		return "Until " + doc.End.Format(layout)
	default:
		return "All time"
	}
}
