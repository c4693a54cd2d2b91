package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	Port        int
	DatabaseURL string
	JWTSecret   string
	LogLevel    string
	LogFormat   string

	// Contact form forwarding
	MailgunDomain    string
	MailgunAPIKey    string
	MailgunFromEmail string
	MailgunFromName  string
	ContactRecipient string
	TelegramBotToken string
	TelegramChatID   string

	// Notification template overrides (optional YAML file)
	NotifyTemplatePath string

	// PostHog Analytics settings
	PostHogAPIKey  string
	PostHogHost    string
	PostHogEnabled bool

	// Admin auto-seed (first run only)
	AdminUsername string
	AdminPassword string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:        getEnvInt("PORT", 8080),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),

		MailgunDomain:    getEnv("MAILGUN_DOMAIN", ""),
		MailgunAPIKey:    getEnv("MAILGUN_API_KEY", ""),
		MailgunFromEmail: getEnv("MAILGUN_FROM_EMAIL", "noreply@wse.am"),
		MailgunFromName:  getEnv("MAILGUN_FROM_NAME", "WSE.AM"),
		ContactRecipient: getEnv("CONTACT_RECIPIENT", "2023wse@gmail.com"),
		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:   getEnv("TELEGRAM_CHAT_ID", ""),

		NotifyTemplatePath: getEnv("NOTIFY_TEMPLATE_PATH", ""),

		PostHogAPIKey:  getEnv("POSTHOG_API_KEY", ""),
		PostHogHost:    getEnv("POSTHOG_HOST", "https://eu.i.posthog.com"),
		PostHogEnabled: getEnvBool("POSTHOG_ENABLED", false),

		AdminUsername: getEnv("ADMIN_USERNAME", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}
}

// Validate checks that required settings are present. The server refuses to
// start without a real signing secret; there is no built-in fallback.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters long")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}
