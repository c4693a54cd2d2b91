package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/wse-am/realty-server/src/models"
	"github.com/wse-am/realty-server/src/templates"
)

// EmailService forwards contact form submissions via Mailgun
type EmailService struct {
	mg         *mailgun.MailgunImpl
	fromEmail  string
	fromName   string
	recipient  string
	domain     string
	configPath string
}

// NewEmailService creates a new email service with Mailgun configuration.
// Returns a disabled service when the Mailgun domain or API key is missing.
func NewEmailService(domain, apiKey, fromEmail, fromName, recipient, configPath string) *EmailService {
	if domain == "" || apiKey == "" {
		return &EmailService{configPath: configPath}
	}

	mg := mailgun.NewMailgun(domain, apiKey)
	mg.SetAPIBase(mailgun.APIBaseEU)

	return &EmailService{
		mg:         mg,
		fromEmail:  fromEmail,
		fromName:   fromName,
		recipient:  recipient,
		domain:     domain,
		configPath: configPath,
	}
}

// Enabled reports whether Mailgun credentials were configured
func (s *EmailService) Enabled() bool {
	return s.mg != nil
}

// getDefaultNotifyConfig returns compiled-in branding as fallback
func getDefaultNotifyConfig() *templates.NotifyConfig {
	config := &templates.NotifyConfig{}
	config.Branding.Name = "WSE.AM"
	config.Branding.Tagline = "Real estate in Yerevan"
	config.Branding.Website = "https://wse.am"
	config.Design.PrimaryColor = "#1D4ED8"
	config.Design.TextColor = "#0a0a0a"
	config.Design.MutedColor = "#777777"
	config.Design.LightBg = "#f5f5f5"
	config.Design.BorderColor = "#e5e5e5"
	config.Subjects.ContactForm = "New contact form submission — WSE.AM"
	config.Contact.Intro = "Someone left a message through the website contact form."
	config.Contact.ReplyHint = "Reply directly to reach the sender."
	config.Contact.NoEmail = "no email provided"
	config.Contact.NoPhone = "no phone provided"
	return config
}

// SendContactNotification forwards a contact form submission to the
// configured recipient
func (s *EmailService) SendContactNotification(ctx context.Context, msg *models.ContactMessage) error {
	if s.mg == nil {
		return ErrNotConfigured
	}

	config, err := templates.LoadNotifyConfig(s.configPath)
	if err != nil {
		config = getDefaultNotifyConfig()
	}

	email := msg.Email
	if email == "" {
		email = config.Contact.NoEmail
	}
	phone := msg.Phone
	if phone == "" {
		phone = config.Contact.NoPhone
	}

	data := templates.ContactMessageData{
		Name:         msg.Name,
		Phone:        phone,
		Email:        email,
		Message:      msg.Message,
		BrandName:    config.Branding.Name,
		Tagline:      config.Branding.Tagline,
		Website:      config.Branding.Website,
		Intro:        config.Contact.Intro,
		ReplyHint:    config.Contact.ReplyHint,
		PrimaryColor: config.Design.PrimaryColor,
		TextColor:    config.Design.TextColor,
		MutedColor:   config.Design.MutedColor,
		LightBg:      config.Design.LightBg,
		BorderColor:  config.Design.BorderColor,
	}

	textBody, err := templates.RenderContactText(data)
	if err != nil {
		return fmt.Errorf("failed to render contact text: %w", err)
	}

	message := s.mg.NewMessage(
		fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		config.Subjects.ContactForm,
		textBody,
		s.recipient,
	)

	if htmlBody, err := templates.RenderContactHTML(data); err == nil {
		message.SetHtml(htmlBody)
	}

	// The sender's address becomes Reply-To so the recipient can answer
	// from their mail client
	if msg.Email != "" {
		message.SetReplyTo(msg.Email)
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, time.Second*30)
	defer cancel()

	_, _, err = s.mg.Send(ctxWithTimeout, message)
	if err != nil {
		return fmt.Errorf("failed to send contact notification: %w", err)
	}

	return nil
}
