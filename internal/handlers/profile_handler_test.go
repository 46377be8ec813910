package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "finman/internal/errors"
	"finman/internal/models"
	"finman/internal/services"
)

func setupProfileRouter(handler *ProfileHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.GET("/profile", handler.GetProfile)
	auth.PUT("/profile", handler.UpdateProfile)
	auth.POST("/profile/change-password", handler.ChangePassword)
	auth.DELETE("/profile", handler.DeleteAccount)
	auth.GET("/settings", handler.GetSettings)
	auth.PUT("/settings", handler.ReplaceSettings)
	auth.PATCH("/settings", handler.UpdateSetting)
	return r
}

func TestProfileHandler_GetProfile(t *testing.T) {
	t.Run("returns profile without password", func(t *testing.T) {
		userSvc := &mockUserService{
			getUserByIDFn: func(id string) (*models.User, error) {
				return &models.User{Base: models.Base{ID: id}, Username: "alice", Password: "hash"}, nil
			},
		}
		r := setupProfileRouter(NewProfileHandler(userSvc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/profile", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		user := parseJSON(t, rec)["user"].(map[string]interface{})
		if user["username"] != "alice" {
			t.Errorf("expected alice, got %v", user["username"])
		}
		if _, leaked := user["password"]; leaked {
			t.Error("password must not be serialised")
		}
	})

	t.Run("returns 401 without auth", func(t *testing.T) {
		handler := NewProfileHandler(&mockUserService{}, &mockAuditService{})
		r := gin.New()
		r.GET("/profile", handler.GetProfile)

		rec := doRequest(r, "GET", "/profile", "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	t.Run("passes only sent fields", func(t *testing.T) {
		var got services.ProfileUpdate
		userSvc := &mockUserService{
			updateProfileFn: func(_ string, update services.ProfileUpdate) (*models.User, error) {
				got = update
				return &models.User{Username: *update.Username}, nil
			},
		}
		r := setupProfileRouter(NewProfileHandler(userSvc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/profile", `{"username":"alice2"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Username == nil || *got.Username != "alice2" {
			t.Errorf("expected username alice2, got %v", got.Username)
		}
		if got.Email != nil || got.Phone != nil {
			t.Error("unsent fields must stay nil")
		}
	})

	t.Run("returns 400 when username is taken", func(t *testing.T) {
		userSvc := &mockUserService{
			updateProfileFn: func(_ string, _ services.ProfileUpdate) (*models.User, error) {
				return nil, apperrors.ErrDuplicateUsername
			},
		}
		r := setupProfileRouter(NewProfileHandler(userSvc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/profile", `{"username":"bob"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_USERNAME")
	})
}

func TestProfileHandler_ChangePassword(t *testing.T) {
	t.Run("returns 401 on wrong current password", func(t *testing.T) {
		userSvc := &mockUserService{
			changePasswordFn: func(_, _, _ string) error { return apperrors.ErrInvalidPassword },
		}
		r := setupProfileRouter(NewProfileHandler(userSvc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/profile/change-password",
			`{"current_password":"nope","new_password":"newsecret"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_PASSWORD")
	})

	t.Run("returns 200 on success", func(t *testing.T) {
		audit := &mockAuditService{}
		r := setupProfileRouter(NewProfileHandler(&mockUserService{}, audit))

		rec := doRequest(r, "POST", "/profile/change-password",
			`{"current_password":"secret1","new_password":"newsecret"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got := audit.actions(); len(got) != 1 || got[0] != "CHANGE_PASSWORD" {
			t.Errorf("expected CHANGE_PASSWORD audit, got %v", got)
		}
	})
}

func TestProfileHandler_DeleteAccount(t *testing.T) {
	t.Run("requires password", func(t *testing.T) {
		r := setupProfileRouter(NewProfileHandler(&mockUserService{}, &mockAuditService{}))

		rec := doRequest(r, "DELETE", "/profile", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("deletes the caller", func(t *testing.T) {
		var deleted string
		userSvc := &mockUserService{
			deleteAccountFn: func(userID, _ string) error {
				deleted = userID
				return nil
			},
		}
		r := setupProfileRouter(NewProfileHandler(userSvc, &mockAuditService{}))

		rec := doRequest(r, "DELETE", "/profile", `{"password":"secret1"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if deleted != testUserID {
			t.Errorf("expected %s deleted, got %s", testUserID, deleted)
		}
	})
}

func TestProfileHandler_Settings(t *testing.T) {
	t.Run("replace validates enums", func(t *testing.T) {
		r := setupProfileRouter(NewProfileHandler(&mockUserService{}, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/settings",
			`{"currency":"USD","theme":"neon","language":"en","default_view":"monthly","notifications":{}}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("replace validates currency", func(t *testing.T) {
		r := setupProfileRouter(NewProfileHandler(&mockUserService{}, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/settings",
			`{"currency":"XXX","theme":"dark","language":"en","default_view":"monthly","notifications":{}}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("replace passes the whole object", func(t *testing.T) {
		var got models.Settings
		userSvc := &mockUserService{
			replaceFn: func(_ string, s models.Settings) (*models.Settings, error) {
				got = s
				return &s, nil
			},
		}
		r := setupProfileRouter(NewProfileHandler(userSvc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/settings",
			`{"currency":"EUR","theme":"dark","language":"de","default_view":"weekly","notifications":{"email":true}}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Currency != "EUR" || got.Theme != "dark" || !got.Notifications.Email || got.Notifications.Push {
			t.Errorf("unexpected settings %+v", got)
		}
	})

	t.Run("patch forwards boolean false", func(t *testing.T) {
		var gotValue any
		userSvc := &mockUserService{
			updateSettingFn: func(_, setting string, value any) (*models.Settings, error) {
				if setting != "notifications.email" {
					t.Errorf("unexpected setting %s", setting)
				}
				gotValue = value
				s := models.DefaultSettings()
				return &s, nil
			},
		}
		r := setupProfileRouter(NewProfileHandler(userSvc, &mockAuditService{}))

		rec := doRequest(r, "PATCH", "/settings", `{"setting":"notifications.email","value":false}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotValue != false {
			t.Errorf("expected false, got %v", gotValue)
		}
	})

	t.Run("patch rejects unknown setting", func(t *testing.T) {
		userSvc := &mockUserService{
			updateSettingFn: func(_, _ string, _ any) (*models.Settings, error) {
				return nil, apperrors.ErrUnknownSetting
			},
		}
		r := setupProfileRouter(NewProfileHandler(userSvc, &mockAuditService{}))

		rec := doRequest(r, "PATCH", "/settings", `{"setting":"volume","value":"11"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "UNKNOWN_SETTING")
	})

	t.Run("patch requires a value", func(t *testing.T) {
		r := setupProfileRouter(NewProfileHandler(&mockUserService{}, &mockAuditService{}))

		rec := doRequest(r, "PATCH", "/settings", `{"setting":"theme"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
