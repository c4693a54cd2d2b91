package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/wse-am/realty-server/src/services"
)

// UserHandler handles admin user provisioning
type UserHandler struct {
	adminService *services.AdminService
}

// NewUserHandler creates a new user handler
func NewUserHandler(adminService *services.AdminService) *UserHandler {
	return &UserHandler{adminService: adminService}
}

// CreateUserRequest represents the request body for user creation
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// ResetPasswordRequest represents the request body for a password reset
type ResetPasswordRequest struct {
	Username    string `json:"username"`
	NewPassword string `json:"new_password"`
}

// HandleCreateUser provisions a new admin user
func (uh *UserHandler) HandleCreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.BindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Password = strings.TrimSpace(req.Password)
	req.Email = strings.TrimSpace(req.Email)
	req.FullName = strings.TrimSpace(req.FullName)
	if req.Username == "" || req.Email == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "Username, email and password are required")
		return
	}

	user, err := uh.adminService.CreateAdminUser(c.Request.Context(),
		req.Username, req.Password, req.Email, req.FullName, req.Role)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			respondError(c, http.StatusBadRequest, "Username already exists")
			return
		}
		log.Error().Err(err).Str("username", req.Username).Msg("failed to create user")
		respondError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	respondOK(c, http.StatusCreated, gin.H{"user": user.Public()})
}

// HandleResetPassword overwrites a user's password
func (uh *UserHandler) HandleResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.BindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.NewPassword = strings.TrimSpace(req.NewPassword)
	if req.Username == "" || req.NewPassword == "" {
		respondError(c, http.StatusBadRequest, "Username and new password are required")
		return
	}

	if err := uh.adminService.ResetPassword(c.Request.Context(), req.Username, req.NewPassword); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "User not found")
			return
		}
		log.Error().Err(err).Str("username", req.Username).Msg("failed to reset password")
		respondError(c, http.StatusInternalServerError, "Failed to reset password")
		return
	}

	respondOK(c, http.StatusOK, gin.H{"message": "Password updated"})
}
