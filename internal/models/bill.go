package models

import "time"

// BillStatus is either pending or paid.
type BillStatus string

const (
	BillStatusPending BillStatus = "pending"
	BillStatusPaid    BillStatus = "paid"
)

// Bill is a dated payment the user wants to be reminded about.
type Bill struct {
	Base
	UserID     string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Title      string     `gorm:"size:200;not null" json:"title"`
	Amount     float64    `gorm:"not null" json:"amount"`
	DueDate    time.Time  `gorm:"not null;index" json:"due_date"`
	Category   string     `gorm:"size:100;not null" json:"category"`
	Recurring  bool       `gorm:"not null" json:"recurring"`
	Status     BillStatus `gorm:"size:20;not null;index" json:"status"`
	PaidDate   *time.Time `json:"paid_date,omitempty"`
	RemindedAt *time.Time `json:"reminded_at,omitempty"`
}

func (Bill) OwnerColumn() string { return "user_id" }
