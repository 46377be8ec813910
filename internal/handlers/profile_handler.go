package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finman/internal/errors"
	"finman/internal/models"
	"finman/internal/services"
)

// ProfileHandler serves the authenticated user's profile and settings.
type ProfileHandler struct {
	userService  services.UserServicer
	auditService services.AuditServicer
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(userService services.UserServicer, auditService services.AuditServicer) *ProfileHandler {
	return &ProfileHandler{userService: userService, auditService: auditService}
}

// UpdateProfileRequest holds the profile fields a user may change.
type UpdateProfileRequest struct {
	Username  *string `json:"username" binding:"omitempty,min=3,max=50"`
	Email     *string `json:"email" binding:"omitempty,email,max=255"`
	FirstName *string `json:"first_name" binding:"omitempty,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,max=100"`
	Phone     *string `json:"phone" binding:"omitempty,max=30"`
	Avatar    *string `json:"avatar" binding:"omitempty,max=500"`
}

// ChangePasswordRequest is the payload for a password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6,max=128"`
}

// DeleteAccountRequest confirms account deletion with the password.
type DeleteAccountRequest struct {
	Password string `json:"password" binding:"required"`
}

// NotificationSettingsRequest mirrors models.NotificationSettings.
type NotificationSettingsRequest struct {
	Email         bool `json:"email"`
	Push          bool `json:"push"`
	BudgetAlerts  bool `json:"budget_alerts"`
	BillReminders bool `json:"bill_reminders"`
}

// SettingsRequest replaces the whole settings object.
type SettingsRequest struct {
	Currency      string                      `json:"currency" binding:"required,iso4217"`
	Theme         string                      `json:"theme" binding:"required,theme"`
	Language      string                      `json:"language" binding:"required,max=10"`
	Notifications NotificationSettingsRequest `json:"notifications"`
	DefaultView   string                      `json:"default_view" binding:"required,default_view"`
}

// UpdateSettingRequest changes one named setting.
type UpdateSettingRequest struct {
	Setting string `json:"setting" binding:"required"`
	Value   any    `json:"value"`
}

// GetProfile returns the user's profile
// @Summary     Get user profile
// @Description Get the authenticated user's profile information
// @Tags        profile
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.User "User profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateProfile changes profile fields.
// @Summary     Update user profile
// @Tags        profile
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateProfileRequest true "Profile fields"
// @Success     200 {object} models.User "Updated profile"
// @Failure     400 {object} ErrorResponse "Invalid input or duplicate email/username"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	user, err := h.userService.UpdateProfile(userID, services.ProfileUpdate{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Avatar:    req.Avatar,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_PROFILE", "user", userID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// ChangePassword replaces the password after checking the current one.
// @Summary     Change password
// @Tags        profile
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ChangePasswordRequest true "Current and new password"
// @Success     200 {object} MessageResponse "Password updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Wrong current password"
// @Router      /profile/change-password [post]
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	if err := h.userService.ChangePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CHANGE_PASSWORD", "user", userID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Password updated successfully"})
}

// DeleteAccount removes the user and everything they own.
// @Summary     Delete account
// @Tags        profile
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body DeleteAccountRequest true "Password confirmation"
// @Success     200 {object} MessageResponse "Account deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Wrong password"
// @Router      /profile [delete]
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	if err := h.userService.DeleteAccount(userID, req.Password); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_ACCOUNT", "user", userID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Account deleted successfully"})
}

// GetSettings returns the user's settings.
// @Summary     Get settings
// @Tags        settings
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.Settings
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /settings [get]
func (h *ProfileHandler) GetSettings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	settings, err := h.userService.GetSettings(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// ReplaceSettings overwrites all settings.
// @Summary     Update all settings
// @Tags        settings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SettingsRequest true "Settings"
// @Success     200 {object} models.Settings
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /settings [put]
func (h *ProfileHandler) ReplaceSettings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	settings, err := h.userService.ReplaceSettings(userID, models.Settings{
		Currency: req.Currency,
		Theme:    req.Theme,
		Language: req.Language,
		Notifications: models.NotificationSettings{
			Email:         req.Notifications.Email,
			Push:          req.Notifications.Push,
			BudgetAlerts:  req.Notifications.BudgetAlerts,
			BillReminders: req.Notifications.BillReminders,
		},
		DefaultView: req.DefaultView,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_SETTINGS", "user", userID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, settings)
}

// UpdateSetting changes a single setting.
// @Summary     Update a specific setting
// @Tags        settings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateSettingRequest true "Setting name and value"
// @Success     200 {object} models.Settings
// @Failure     400 {object} ErrorResponse "Unknown setting or invalid value"
// @Router      /settings [patch]
func (h *ProfileHandler) UpdateSetting(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	if req.Value == nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "value is required"))
		return
	}

	settings, err := h.userService.UpdateSetting(userID, req.Setting, req.Value)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_SETTING", "user", userID, c.ClientIP(),
		map[string]any{req.Setting: req.Value})

	c.JSON(http.StatusOK, settings)
}
