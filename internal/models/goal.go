package models

import "time"

// GoalStatus is set by the owner; nothing moves a goal between states automatically.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusFailed    GoalStatus = "failed"
)

// Goal is a savings target.
type Goal struct {
	Base
	UserID        string     `gorm:"type:uuid;not null;index" json:"user_id"`
	TargetAmount  float64    `gorm:"not null" json:"target_amount"`
	CurrentAmount float64    `gorm:"not null" json:"current_amount"`
	Deadline      time.Time  `gorm:"not null" json:"deadline"`
	Category      string     `gorm:"size:100;not null" json:"category"`
	Description   string     `json:"description"`
	Status        GoalStatus `gorm:"size:20;not null" json:"status"`
}

func (Goal) OwnerColumn() string { return "user_id" }
