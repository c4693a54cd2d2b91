package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/posthog/posthog-go"
	"github.com/rs/zerolog/log"
)

// AnalyticsService handles product analytics tracking
type AnalyticsService struct {
	client  posthog.Client
	enabled bool
}

type posthogLogger struct{}

func (l posthogLogger) Success(m posthog.APIMessage) {
	log.Debug().Str("type", fmt.Sprintf("%T", m)).Msg("PostHog event delivered")
}

func (l posthogLogger) Failure(m posthog.APIMessage, err error) {
	log.Error().Err(err).Str("type", fmt.Sprintf("%T", m)).Msg("PostHog delivery failed")
}

// AnalyticsConfig holds analytics configuration
type AnalyticsConfig struct {
	PostHogAPIKey string
	PostHogHost   string
	Enabled       bool
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(cfg AnalyticsConfig) (*AnalyticsService, error) {
	if !cfg.Enabled || cfg.PostHogAPIKey == "" {
		return &AnalyticsService{enabled: false}, nil
	}

	client, err := posthog.NewWithConfig(
		cfg.PostHogAPIKey,
		posthog.Config{
			Endpoint:  cfg.PostHogHost,
			Interval:  30 * time.Second,
			BatchSize: 100,
			Callback:  posthogLogger{},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create PostHog client: %w", err)
	}

	return &AnalyticsService{
		client:  client,
		enabled: true,
	}, nil
}

// Close flushes pending events and closes client
func (s *AnalyticsService) Close() error {
	if !s.enabled {
		return nil
	}
	return s.client.Close()
}

// getEnvironment returns current environment (production, staging, development)
func getEnvironment() string {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		return "production"
	}
	return env
}

// TrackEvent captures a generic event
func (s *AnalyticsService) TrackEvent(ctx context.Context, distinctID, event string, properties map[string]interface{}) {
	if !s.enabled {
		return
	}

	if properties == nil {
		properties = make(map[string]interface{})
	}
	properties["timestamp"] = time.Now().Unix()
	properties["environment"] = getEnvironment()

	if err := s.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	}); err != nil {
		log.Error().Err(err).Str("event", event).Msg("PostHog enqueue failed")
	}
}

// TrackLogin tracks a successful admin login
func (s *AnalyticsService) TrackLogin(ctx context.Context, username string) {
	s.TrackEvent(ctx, "admin_"+username, "admin_login", nil)
}

// TrackPropertyCreated tracks a new listing
func (s *AnalyticsService) TrackPropertyCreated(ctx context.Context, username string, propertyID int64, propertyType, transactionType string) {
	s.TrackEvent(ctx, "admin_"+username, "property_created", map[string]interface{}{
		"property_id":      propertyID,
		"property_type":    propertyType,
		"transaction_type": transactionType,
	})
}

// TrackContactSubmitted tracks a contact form submission
func (s *AnalyticsService) TrackContactSubmitted(ctx context.Context, channel string) {
	s.TrackEvent(ctx, "anonymous", "contact_submitted", map[string]interface{}{
		"channel": channel,
	})
}
