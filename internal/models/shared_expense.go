package models

// SplitType decides how a shared expense's amount is divided.
type SplitType string

const (
	SplitEqual  SplitType = "equal"
	SplitCustom SplitType = "custom"
)

// SharedStatus becomes settled once every participant has paid.
type SharedStatus string

const (
	SharedStatusPending SharedStatus = "pending"
	SharedStatusSettled SharedStatus = "settled"
)

// SharedExpense is an expense split between several users. The creator
// owns the record; participants can only settle their own share.
type SharedExpense struct {
	Base
	CreatedBy    string              `gorm:"type:uuid;not null;index" json:"created_by"`
	Title        string              `gorm:"size:200;not null" json:"title"`
	Amount       float64             `gorm:"not null" json:"amount"`
	SplitType    SplitType           `gorm:"size:20;not null" json:"split_type"`
	Status       SharedStatus        `gorm:"size:20;not null" json:"status"`
	Participants []SharedParticipant `gorm:"foreignKey:SharedExpenseID" json:"participants"`
}

func (SharedExpense) OwnerColumn() string { return "created_by" }

// AllPaid reports whether every participant has settled.
func (s *SharedExpense) AllPaid() bool {
	if len(s.Participants) == 0 {
		return false
	}
	for _, p := range s.Participants {
		if !p.Paid {
			return false
		}
	}
	return true
}

// SharedParticipant is one user's portion of a shared expense.
type SharedParticipant struct {
	Base
	SharedExpenseID string       `gorm:"type:uuid;not null;index" json:"shared_expense_id"`
	UserID          string       `gorm:"type:uuid;not null;index" json:"user_id"`
	Share           float64      `gorm:"not null" json:"share"`
	Paid            bool         `gorm:"not null" json:"paid"`
	User            *UserSummary `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
