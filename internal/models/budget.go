package models

// BudgetPeriod represents the period type for a budget
type BudgetPeriod string

const (
	BudgetPeriodMonthly   BudgetPeriod = "monthly"
	BudgetPeriodQuarterly BudgetPeriod = "quarterly"
	BudgetPeriodYearly    BudgetPeriod = "yearly"
)

// Budget is a spending limit for a category. Spent is stored as given by
// the client and is not recomputed from expenses.
type Budget struct {
	Base
	UserID   string       `gorm:"type:uuid;not null;index" json:"user_id"`
	Category string       `gorm:"size:100;not null" json:"category"`
	Amount   float64      `gorm:"not null" json:"amount"`
	Period   BudgetPeriod `gorm:"size:20;not null" json:"period"`
	Spent    float64      `gorm:"not null" json:"spent"`
}

func (Budget) OwnerColumn() string { return "user_id" }
