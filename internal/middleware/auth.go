package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"finman/internal/config"
	apperrors "finman/internal/errors"
	"finman/internal/models"
)

// UserIDKey is the gin context key holding the authenticated user's id.
const UserIDKey = "userID"

const tokenIssuer = "finman-api"

// JWTClaims represents the claims in the JWT
type JWTClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// UserResolver loads the user a token was issued to.
type UserResolver interface {
	GetUserByID(id string) (*models.User, error)
}

func getJWTKey() []byte {
	return []byte(config.Get().JWTSecret)
}

// GenerateToken signs an HS256 token for user, valid for the configured duration.
func GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &JWTClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(config.Get().JWTExpirationDur)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getJWTKey())
}

// ParseToken verifies signature, algorithm and expiry and returns the claims.
func ParseToken(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return getJWTKey(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserID == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// AuthMiddleware verifies the bearer token, checks that its user still
// exists, and stores the user id in the context. Every failure is a 401.
func AuthMiddleware(users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			abortWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "You are not logged in. Please log in to get access."))
			return
		}

		claims, err := ParseToken(strings.TrimSpace(tokenString))
		if err != nil {
			abortWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid or expired token"))
			return
		}

		user, err := users.GetUserByID(claims.UserID)
		if err != nil {
			abortWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "The user belonging to this token no longer exists."))
			return
		}

		c.Set(UserIDKey, user.ID)
		c.Next()
	}
}
