package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Session tokens live for a week; the admin panel re-logs in after that.
const SessionTokenTTL = 7 * 24 * time.Hour

// Context keys set by RequireAdmin
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextRole     = "role"
)

// Sentinel errors for token validation
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// JWTSecret should be loaded from environment via config
var JWTSecret string

// SetJWTSecret initializes the JWT secret from config
func SetJWTSecret(secret string) error {
	if secret == "" {
		return fmt.Errorf("JWT_SECRET cannot be empty")
	}
	if len(secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters long")
	}
	JWTSecret = secret
	return nil
}

// SessionClaims represents JWT claims for admin sessions
type SessionClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateSessionToken creates a signed session token for an admin user
func GenerateSessionToken(userID int64, username, role string) (string, error) {
	claims := SessionClaims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "realty-server",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(JWTSecret))
}

// ValidateSessionToken verifies a session token and returns its claims.
// Expired tokens are distinguished from malformed or tampered ones so the
// handlers can report them separately.
func ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(JWTSecret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// TokenFromRequest extracts the session token from a request. The legacy
// admin panel sends X-Auth-Token; newer clients send Authorization: Bearer.
// X-Auth-Token wins when both are present.
func TokenFromRequest(c *gin.Context) string {
	if token := c.GetHeader("X-Auth-Token"); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}

	return ""
}

// RequireAdmin rejects requests without a valid admin session token
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Authentication required"})
			c.Abort()
			return
		}

		claims, err := ValidateSessionToken(token)
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, ErrTokenExpired) {
				msg = "Token expired"
			}
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
			c.Abort()
			return
		}

		if claims.Role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "Admin access required"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// OptionalAdmin validates a token when one is supplied but never rejects
// the request. Public search uses it to decide whether inactive listings
// are visible.
func OptionalAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c)
		if token != "" {
			if claims, err := ValidateSessionToken(token); err == nil && claims.Role == "admin" {
				c.Set(ContextUserID, claims.UserID)
				c.Set(ContextUsername, claims.Username)
				c.Set(ContextRole, claims.Role)
			}
		}
		c.Next()
	}
}

// IsAdmin reports whether the request carried a valid admin session
func IsAdmin(c *gin.Context) bool {
	role, exists := c.Get(ContextRole)
	return exists && role == "admin"
}
