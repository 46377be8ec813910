package models

import "time"

// Report records a generated expense report download.
type Report struct {
	Base
	UserID      string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Format      string     `gorm:"size:10;not null" json:"format"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Categories  string     `json:"categories,omitempty"`
	RecordCount int        `gorm:"not null" json:"record_count"`
}

func (Report) OwnerColumn() string { return "user_id" }
