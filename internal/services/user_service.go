package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "finman/internal/errors"
	"finman/internal/models"
	"finman/internal/validator"
)

// userService handles user-related business logic.
type userService struct {
	db         *gorm.DB
	bcryptCost int
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db, bcryptCost: bcrypt.DefaultCost}
}

// CreateUser registers a new user with default settings.
func (s *userService) CreateUser(username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "username, email and password are required")
	}

	if taken, err := s.exists("email", email, ""); err != nil {
		return nil, err
	} else if taken {
		return nil, apperrors.ErrDuplicateEmail
	}
	if taken, err := s.exists("username", username, ""); err != nil {
		return nil, err
	} else if taken {
		return nil, apperrors.ErrDuplicateUsername
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
		Settings: models.DefaultSettings(),
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, apperrors.FromDB(err, nil)
	}

	return user, nil
}

// GetUserByEmail retrieves a user by email, case-insensitively.
func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error; err != nil {
		return nil, apperrors.FromDB(err, apperrors.ErrUserNotFound)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, apperrors.FromDB(err, apperrors.ErrUserNotFound)
	}
	return &user, nil
}

// VerifyPassword checks if the provided password matches the stored hash
func (s *userService) VerifyPassword(user *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
}

// AttemptLogin authenticates by email and password. Unknown email and wrong
// password produce the same error.
func (s *userService) AttemptLogin(email, password string) (*models.User, error) {
	user, err := s.GetUserByEmail(email)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == apperrors.ErrUserNotFound.Code {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.VerifyPassword(user, password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// UpdateProfile changes profile fields, rejecting a username or email that
// belongs to another user.
func (s *userService) UpdateProfile(userID string, update ProfileUpdate) (*models.User, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]any)
	if update.Username != nil {
		username := strings.TrimSpace(*update.Username)
		if taken, err := s.exists("username", username, userID); err != nil {
			return nil, err
		} else if taken {
			return nil, apperrors.WithMessage(apperrors.ErrDuplicateUsername, "Username is already taken")
		}
		updates["username"] = username
	}
	if update.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*update.Email))
		if taken, err := s.exists("email", email, userID); err != nil {
			return nil, err
		} else if taken {
			return nil, apperrors.WithMessage(apperrors.ErrDuplicateEmail, "Email is already taken")
		}
		updates["email"] = email
	}
	if update.FirstName != nil {
		updates["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		updates["last_name"] = *update.LastName
	}
	if update.Phone != nil {
		updates["phone"] = *update.Phone
	}
	if update.Avatar != nil {
		updates["avatar"] = *update.Avatar
	}

	if err := applyUpdates(s.db, user, updates); err != nil {
		return nil, err
	}
	return s.GetUserByID(userID)
}

// ChangePassword replaces the password after verifying the current one.
func (s *userService) ChangePassword(userID, currentPassword, newPassword string) error {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return err
	}
	if !s.VerifyPassword(user, currentPassword) {
		return apperrors.WithMessage(apperrors.ErrInvalidPassword, "Current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Model(user).Update("password", string(hashed)).Error; err != nil {
		return apperrors.FromDB(err, nil)
	}
	return nil
}

// DeleteAccount removes the user and every record they own in one
// transaction. Shared expenses created by the user go with them, and the
// user is dropped from expenses others shared with them.
func (s *userService) DeleteAccount(userID, password string) error {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return err
	}
	if !s.VerifyPassword(user, password) {
		return apperrors.ErrInvalidPassword
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		tx = tx.Unscoped().Session(&gorm.Session{})
		owned := []any{&models.Expense{}, &models.Budget{}, &models.Goal{}, &models.Recurring{}, &models.Bill{}, &models.Report{}}
		for _, model := range owned {
			if err := tx.Where("user_id = ?", userID).Delete(model).Error; err != nil {
				return fmt.Errorf("delete %T: %w", model, err)
			}
		}

		created := tx.Model(&models.SharedExpense{}).Select("id").Where("created_by = ?", userID)
		if err := tx.Where("shared_expense_id IN (?)", created).Delete(&models.SharedParticipant{}).Error; err != nil {
			return fmt.Errorf("delete participants of created shared expenses: %w", err)
		}
		if err := tx.Where("created_by = ?", userID).Delete(&models.SharedExpense{}).Error; err != nil {
			return fmt.Errorf("delete shared expenses: %w", err)
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.SharedParticipant{}).Error; err != nil {
			return fmt.Errorf("delete participations: %w", err)
		}

		return tx.Delete(user).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetSettings returns the user's settings.
func (s *userService) GetSettings(userID string) (*models.Settings, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	return &user.Settings, nil
}

// ReplaceSettings overwrites the whole settings object.
func (s *userService) ReplaceSettings(userID string, settings models.Settings) (*models.Settings, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	user.Settings = settings
	if err := s.db.Save(user).Error; err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	return &user.Settings, nil
}

// UpdateSetting changes one named setting. Nested notification flags are
// addressed as "notifications.<flag>".
func (s *userService) UpdateSetting(userID, setting string, value any) (*models.Settings, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if err := applySetting(&user.Settings, setting, value); err != nil {
		return nil, err
	}
	if err := s.db.Save(user).Error; err != nil {
		return nil, apperrors.FromDB(err, nil)
	}
	return &user.Settings, nil
}

func applySetting(settings *models.Settings, setting string, value any) error {
	invalid := func() error {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("Invalid value for %s", setting))
	}

	if flag, ok := strings.CutPrefix(setting, "notifications."); ok {
		b, isBool := value.(bool)
		if !isBool {
			return invalid()
		}
		n := &settings.Notifications
		switch flag {
		case "email":
			n.Email = b
		case "push":
			n.Push = b
		case "budget_alerts", "budgetAlerts":
			n.BudgetAlerts = b
		case "bill_reminders", "billReminders":
			n.BillReminders = b
		default:
			return apperrors.WithMessage(apperrors.ErrUnknownSetting, "Unknown setting: "+setting)
		}
		return nil
	}

	str, isString := value.(string)
	switch setting {
	case "currency":
		if !isString || !validator.IsCurrency(str) {
			return invalid()
		}
		settings.Currency = str
	case "theme":
		if !isString || !validator.IsEnum("theme", str) {
			return invalid()
		}
		settings.Theme = str
	case "language":
		if !isString || str == "" || len(str) > 10 {
			return invalid()
		}
		settings.Language = str
	case "default_view", "defaultView":
		if !isString || !validator.IsEnum("default_view", str) {
			return invalid()
		}
		settings.DefaultView = str
	default:
		return apperrors.WithMessage(apperrors.ErrUnknownSetting, "Unknown setting: "+setting)
	}
	return nil
}

// exists reports whether another user (not excludeID) already has value in column.
func (s *userService) exists(column, value, excludeID string) (bool, error) {
	query := s.db.Model(&models.User{}).Where(column+" = ?", value)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count > 0, nil
}
