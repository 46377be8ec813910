package models

// Theme values accepted in user settings.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// NotificationSettings toggles the channels a user receives alerts on.
type NotificationSettings struct {
	Email         bool `gorm:"not null" json:"email"`
	Push          bool `gorm:"not null" json:"push"`
	BudgetAlerts  bool `gorm:"not null" json:"budget_alerts"`
	BillReminders bool `gorm:"not null" json:"bill_reminders"`
}

// Settings holds per-user display and notification preferences.
type Settings struct {
	Currency      string               `gorm:"size:3;not null" json:"currency"`
	Theme         string               `gorm:"not null" json:"theme"`
	Language      string               `gorm:"size:10;not null" json:"language"`
	Notifications NotificationSettings `gorm:"embedded;embeddedPrefix:notify_" json:"notifications"`
	DefaultView   string               `gorm:"not null" json:"default_view"`
}

// DefaultSettings returns the settings assigned at registration.
func DefaultSettings() Settings {
	return Settings{
		Currency: "USD",
		Theme:    ThemeLight,
		Language: "en",
		Notifications: NotificationSettings{
			Email:         true,
			Push:          true,
			BudgetAlerts:  true,
			BillReminders: true,
		},
		DefaultView: "monthly",
	}
}

// User represents the user model in the database
type User struct {
	Base
	Username  string   `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email     string   `gorm:"uniqueIndex;not null" json:"email"`
	Password  string   `gorm:"not null" json:"-"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Phone     string   `json:"phone"`
	Avatar    string   `json:"avatar"`
	Settings  Settings `gorm:"embedded;embeddedPrefix:settings_" json:"settings"`
}

// UserSummary is the public projection of a user embedded in other records.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TableName maps UserSummary onto the users table.
func (UserSummary) TableName() string { return "users" }
