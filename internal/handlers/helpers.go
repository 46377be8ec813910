package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finman/internal/errors"
	"finman/internal/middleware"
	"finman/internal/uuid"
)

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (string, error) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		return "", apperrors.ErrUnauthorized
	}
	return userID, nil
}

// parsePathID reads a UUID path parameter.
// Returns ErrInvalidID if the parameter is not a well-formed identifier.
func parsePathID(c *gin.Context, param string) (string, error) {
	id := c.Param(param)
	if !uuid.IsValid(id) {
		return "", apperrors.WithMessage(apperrors.ErrInvalidID, "Invalid "+param)
	}
	return id, nil
}

// respondWithError writes a consistent JSON error response.
func respondWithError(c *gin.Context, err error) {
	middleware.RespondWithError(c, err)
}

func invalidInput(err error) *apperrors.AppError {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// parseFlexibleTime accepts RFC3339 timestamps and plain YYYY-MM-DD dates.
func parseFlexibleTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(time.DateOnly, s)
}

// queryTime parses the first non-empty query parameter among keys.
func queryTime(c *gin.Context, keys ...string) (*time.Time, error) {
	for _, key := range keys {
		v := c.Query(key)
		if v == "" {
			continue
		}
		t, err := parseFlexibleTime(v)
		if err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid "+key+" format, use RFC3339 or YYYY-MM-DD")
		}
		return &t, nil
	}
	return nil, nil
}

// endOfDay widens a date-only upper bound so the whole day is included.
func endOfDay(t *time.Time, raw string) *time.Time {
	if t == nil || strings.Contains(raw, "T") {
		return t
	}
	e := t.Add(24*time.Hour - time.Nanosecond)
	return &e
}

func queryFloat(c *gin.Context, key string) (*float64, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid "+key)
	}
	return &f, nil
}

// splitList reads a comma-separated query parameter, dropping blanks.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse documents the error body for swagger.
type ErrorResponse = middleware.ErrorResponse
