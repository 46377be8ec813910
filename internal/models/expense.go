package models

import "time"

// Expense is a single spending record.
type Expense struct {
	Base
	UserID      string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Category    string    `gorm:"size:100;not null;index" json:"category"`
	Description string    `json:"description"`
	Date        time.Time `gorm:"not null;index" json:"date"`
}

func (Expense) OwnerColumn() string { return "user_id" }
