package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/wse-am/realty-server/src/models"
	"github.com/wse-am/realty-server/src/services"
)

// ContactHandler forwards contact form submissions to email and Telegram
type ContactHandler struct {
	emailService    *services.EmailService
	telegramService *services.TelegramService
	analytics       *services.AnalyticsService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(emailService *services.EmailService, telegramService *services.TelegramService, analytics *services.AnalyticsService) *ContactHandler {
	return &ContactHandler{
		emailService:    emailService,
		telegramService: telegramService,
		analytics:       analytics,
	}
}

// EmailContactRequest represents the email contact form payload
type EmailContactRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// TelegramContactRequest represents the telegram contact form payload.
// The form has a single free-text contact field instead of separate
// phone and email.
type TelegramContactRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Message string `json:"message"`
}

// HandleEmailContact forwards a submission via Mailgun
func (ch *ContactHandler) HandleEmailContact(c *gin.Context) {
	var req EmailContactRequest
	if err := c.BindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Phone == "" || req.Email == "" {
		respondError(c, http.StatusBadRequest, "Name, phone and email are required")
		return
	}

	msg := &models.ContactMessage{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Message: req.Message,
	}

	if err := ch.emailService.SendContactNotification(c.Request.Context(), msg); err != nil {
		if errors.Is(err, services.ErrNotConfigured) {
			respondError(c, http.StatusInternalServerError, "Email forwarding is not configured")
			return
		}
		log.Error().Err(err).Msg("failed to forward contact email")
		respondError(c, http.StatusInternalServerError, "Failed to send message")
		return
	}

	ch.analytics.TrackContactSubmitted(c.Request.Context(), "email")

	respondOK(c, http.StatusOK, gin.H{"message": "Message sent"})
}

// HandleTelegramContact forwards a submission to the Telegram chat
func (ch *ContactHandler) HandleTelegramContact(c *gin.Context) {
	var req TelegramContactRequest
	if err := c.BindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Contact == "" {
		respondError(c, http.StatusBadRequest, "Name and contact are required")
		return
	}

	msg := &models.ContactMessage{
		Name:    req.Name,
		Phone:   req.Contact,
		Message: req.Message,
	}

	if err := ch.telegramService.SendContactNotification(c.Request.Context(), msg); err != nil {
		if errors.Is(err, services.ErrNotConfigured) {
			respondError(c, http.StatusInternalServerError, "Telegram forwarding is not configured")
			return
		}
		log.Error().Err(err).Msg("failed to forward contact message to telegram")
		respondError(c, http.StatusInternalServerError, "Failed to send message")
		return
	}

	ch.analytics.TrackContactSubmitted(c.Request.Context(), "telegram")

	respondOK(c, http.StatusOK, gin.H{"message": "Message sent"})
}
