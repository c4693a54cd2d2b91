package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/wse-am/realty-server/src/middleware"
	"github.com/wse-am/realty-server/src/services"
)

// AuthHandler handles admin login and session introspection
type AuthHandler struct {
	adminService *services.AdminService
	analytics    *services.AnalyticsService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(adminService *services.AdminService, analytics *services.AnalyticsService) *AuthHandler {
	return &AuthHandler{
		adminService: adminService,
		analytics:    analytics,
	}
}

// LoginRequest represents the request body for admin login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleLogin verifies credentials and issues a session token
func (ah *AuthHandler) HandleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.BindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Password = strings.TrimSpace(req.Password)
	if req.Username == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := ah.adminService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			respondError(c, http.StatusUnauthorized, "User not found")
		case errors.Is(err, services.ErrUserInactive):
			respondError(c, http.StatusUnauthorized, "User is not active")
		case errors.Is(err, services.ErrInvalidCredentials):
			respondError(c, http.StatusUnauthorized, "Invalid password")
		case errors.Is(err, services.ErrPasswordCheck):
			respondError(c, http.StatusInternalServerError, "Password check error")
		default:
			log.Error().Err(err).Str("username", req.Username).Msg("login failed")
			respondError(c, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	token, err := middleware.GenerateSessionToken(user.ID, user.Username, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to sign session token")
		respondError(c, http.StatusInternalServerError, "Failed to create session")
		return
	}

	ah.analytics.TrackLogin(c.Request.Context(), user.Username)

	respondOK(c, http.StatusOK, gin.H{
		"token": token,
		"user":  user.Public(),
	})
}

// HandleWhoami validates the presented token and returns the session's user.
// The user is re-fetched so a deactivated account stops working before the
// token expires.
func (ah *AuthHandler) HandleWhoami(c *gin.Context) {
	token := middleware.TokenFromRequest(c)
	if token == "" {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	claims, err := middleware.ValidateSessionToken(token)
	if err != nil {
		if errors.Is(err, middleware.ErrTokenExpired) {
			respondError(c, http.StatusUnauthorized, "Token expired")
		} else {
			respondError(c, http.StatusUnauthorized, "Invalid token")
		}
		return
	}

	user, err := ah.adminService.GetActiveByID(c.Request.Context(), claims.UserID)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "User not found or inactive")
		return
	}

	respondOK(c, http.StatusOK, gin.H{"user": user.Public()})
}
