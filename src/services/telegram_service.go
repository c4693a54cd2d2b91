package services

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/wse-am/realty-server/src/models"
)

const telegramAPIBase = "https://api.telegram.org"

// TelegramService forwards contact form submissions to a Telegram chat
// through the Bot API sendMessage method
type TelegramService struct {
	botToken string
	chatID   string
	baseURL  string
	client   *http.Client
}

// NewTelegramService creates a new Telegram service.
// Returns a disabled service when the bot token or chat id is missing.
func NewTelegramService(botToken, chatID string) *TelegramService {
	return &TelegramService{
		botToken: botToken,
		chatID:   chatID,
		baseURL:  telegramAPIBase,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Enabled reports whether Telegram credentials were configured
func (s *TelegramService) Enabled() bool {
	return s.botToken != "" && s.chatID != ""
}

// formatContactMessage builds the HTML-formatted Telegram message body.
// User-supplied fields are escaped so they cannot break the markup.
func formatContactMessage(msg *models.ContactMessage) string {
	var sb strings.Builder
	sb.WriteString("<b>New contact form submission</b>\n\n")
	sb.WriteString(fmt.Sprintf("<b>Name:</b> %s\n", html.EscapeString(msg.Name)))
	if msg.Phone != "" {
		sb.WriteString(fmt.Sprintf("<b>Phone:</b> %s\n", html.EscapeString(msg.Phone)))
	}
	if msg.Email != "" {
		sb.WriteString(fmt.Sprintf("<b>Email:</b> %s\n", html.EscapeString(msg.Email)))
	}
	sb.WriteString(fmt.Sprintf("\n%s", html.EscapeString(msg.Message)))
	return sb.String()
}

// SendContactNotification forwards a contact form submission to the
// configured chat
func (s *TelegramService) SendContactNotification(ctx context.Context, msg *models.ContactMessage) error {
	if !s.Enabled() {
		return ErrNotConfigured
	}

	form := url.Values{}
	form.Set("chat_id", s.chatID)
	form.Set("text", formatContactMessage(msg))
	form.Set("parse_mode", "HTML")

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, s.botToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("telegram API returned %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
