package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"finman/internal/config"
	apperrors "finman/internal/errors"
	"finman/internal/logger"
)

// ErrorResponse is the body of every error response. Error carries the
// internal cause outside production.
type ErrorResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ErrorHandler returns a Gin middleware that converts errors set on the Gin
// context into consistent JSON error responses.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		RespondWithError(c, c.Errors.Last().Err)
	}
}

// RespondWithError writes err as an ErrorResponse. Errors that are not
// *AppError are logged and reported as a generic internal error.
func RespondWithError(c *gin.Context, err error) {
	status, body := renderError(c, err)
	c.JSON(status, body)
}

func abortWithError(c *gin.Context, err error) {
	status, body := renderError(c, err)
	c.AbortWithStatusJSON(status, body)
}

func renderError(c *gin.Context, err error) (int, ErrorResponse) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		logger.Get().Errorw("unexpected error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
		appErr = apperrors.Wrap(apperrors.ErrInternalServer, err)
	} else if appErr.Internal != nil {
		logger.Get().Errorw("app error",
			"code", appErr.Code,
			"message", appErr.Message,
			"internal", appErr.Internal.Error(),
			"path", c.Request.URL.Path,
		)
	}

	status := appErr.StatusCode
	if status == 0 {
		status = http.StatusInternalServerError
	}
	body := ErrorResponse{
		Status:  appErr.Status(),
		Code:    appErr.Code,
		Message: appErr.Message,
	}
	if appErr.Internal != nil && !config.Get().IsProduction() {
		body.Error = appErr.Internal.Error()
	}
	return status, body
}
