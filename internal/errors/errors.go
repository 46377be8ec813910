// Package errors provides the application error type used across the API.
// Services return *AppError so the HTTP layer can render a consistent body
// without leaking storage details to clients.
package errors

import (
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Status returns "fail" for client errors and "error" for server errors.
func (e *AppError) Status() string {
	if e.StatusCode >= 400 && e.StatusCode < 500 {
		return "fail"
	}
	return "error"
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// FromDB maps a storage error onto the catalogue. notFound is returned for
// gorm.ErrRecordNotFound so callers keep their resource specific code.
func FromDB(err error, notFound *AppError) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if notFound == nil {
			notFound = ErrNotFound
		}
		return notFound
	case errors.Is(err, gorm.ErrDuplicatedKey), isUniqueViolation(err):
		return Wrap(ErrDuplicateValue, err)
	case errors.Is(err, gorm.ErrCheckConstraintViolated), errors.Is(err, gorm.ErrForeignKeyViolated):
		return Wrap(ErrValidation, err)
	case isMalformedUUID(err):
		return Wrap(ErrInvalidID, err)
	}
	return Wrap(ErrInternalServer, err)
}

// Some drivers (sqlite without error translation) only surface the message.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

func isMalformedUUID(err error) bool {
	return strings.Contains(err.Error(), "invalid input syntax for type uuid")
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrInvalidPassword    = &AppError{Code: "INVALID_PASSWORD", Message: "Password is incorrect", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrInvalidID      = &AppError{Code: "INVALID_ID", Message: "Invalid identifier", StatusCode: http.StatusBadRequest}
	ErrValidation     = &AppError{Code: "VALIDATION_ERROR", Message: "Record failed validation", StatusCode: http.StatusBadRequest}
	ErrDuplicateValue = &AppError{Code: "DUPLICATE_VALUE", Message: "Duplicate field value", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors. Duplicate identity is a 400, matching the rest of the
// validation taxonomy.
var (
	ErrUserNotFound      = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail    = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusBadRequest}
	ErrDuplicateUsername = &AppError{Code: "DUPLICATE_USERNAME", Message: "A user with this username already exists", StatusCode: http.StatusBadRequest}
	ErrUnknownSetting    = &AppError{Code: "UNKNOWN_SETTING", Message: "Unknown setting", StatusCode: http.StatusBadRequest}
)

// Expense errors.
var (
	ErrExpenseNotFound = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
)

// Budget errors.
var (
	ErrBudgetNotFound = &AppError{Code: "BUDGET_NOT_FOUND", Message: "Budget not found", StatusCode: http.StatusNotFound}
)

// Goal errors.
var (
	ErrGoalNotFound = &AppError{Code: "GOAL_NOT_FOUND", Message: "Goal not found", StatusCode: http.StatusNotFound}
)

// Recurring and bill errors.
var (
	ErrRecurringNotFound = &AppError{Code: "RECURRING_NOT_FOUND", Message: "Recurring expense not found", StatusCode: http.StatusNotFound}
	ErrRecurringInactive = &AppError{Code: "RECURRING_INACTIVE", Message: "Recurring expense is not active", StatusCode: http.StatusBadRequest}
	ErrBillNotFound      = &AppError{Code: "BILL_NOT_FOUND", Message: "Bill not found", StatusCode: http.StatusNotFound}
)

// Shared expense errors.
var (
	ErrSharedExpenseNotFound = &AppError{Code: "SHARED_EXPENSE_NOT_FOUND", Message: "Shared expense not found", StatusCode: http.StatusNotFound}
	ErrNotAParticipant       = &AppError{Code: "NOT_A_PARTICIPANT", Message: "You are not a participant in this expense", StatusCode: http.StatusForbidden}
)
