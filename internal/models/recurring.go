package models

import "time"

// Frequency is the interval between occurrences of a recurring expense.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Next returns from advanced by one unit of f. Month and year steps use
// calendar arithmetic, so Jan 31 + 1 month normalizes to early March.
// Unknown frequencies step monthly.
func (f Frequency) Next(from time.Time) time.Time {
	switch f {
	case FrequencyDaily:
		return from.AddDate(0, 0, 1)
	case FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case FrequencyYearly:
		return from.AddDate(1, 0, 0)
	default:
		return from.AddDate(0, 1, 0)
	}
}

// Recurring is a template for an expense that repeats on a schedule.
type Recurring struct {
	Base
	UserID      string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Category    string    `gorm:"size:100;not null" json:"category"`
	Frequency   Frequency `gorm:"size:20;not null" json:"frequency"`
	NextDueDate time.Time `gorm:"not null;index" json:"next_due_date"`
	Active      bool      `gorm:"not null" json:"active"`
}

func (Recurring) OwnerColumn() string { return "user_id" }

// TableName keeps the table name readable.
func (Recurring) TableName() string { return "recurring_expenses" }
