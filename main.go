package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/wse-am/realty-server/src/config"
	"github.com/wse-am/realty-server/src/database"
	"github.com/wse-am/realty-server/src/handlers"
	"github.com/wse-am/realty-server/src/logging"
	"github.com/wse-am/realty-server/src/middleware"
	"github.com/wse-am/realty-server/src/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize structured logging
	logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	// Fail fast on missing required settings; there is no fallback secret
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	log.Info().
		Int("port", cfg.Port).
		Str("log_level", cfg.LogLevel).
		Msg("starting server")

	// Initialize database
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.New(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	log.Info().Msg("database connected")

	// Initialize JWT secret in middleware
	if err := middleware.SetJWTSecret(cfg.JWTSecret); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize JWT secret")
	}

	// Initialize services
	adminService := services.NewAdminService(db.GetPool())
	propertyService := services.NewPropertyService(db.GetPool())

	// Auto-seed admin user on first run (if ADMIN_USERNAME and ADMIN_PASSWORD are set)
	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		hasAdmins, err := adminService.HasAdmins(context.Background())
		if err != nil {
			log.Error().Err(err).Msg("failed to check for existing admin users")
		} else if !hasAdmins {
			if _, err := adminService.CreateAdminUser(context.Background(),
				cfg.AdminUsername, cfg.AdminPassword, "", "", ""); err != nil {
				log.Error().Err(err).Msg("failed to create initial admin user")
			} else {
				log.Info().Str("username", cfg.AdminUsername).Msg("initial admin user created")
			}
		}
	}

	// Contact form forwarders; missing credentials disable the channel
	emailService := services.NewEmailService(
		cfg.MailgunDomain,
		cfg.MailgunAPIKey,
		cfg.MailgunFromEmail,
		cfg.MailgunFromName,
		cfg.ContactRecipient,
		cfg.NotifyTemplatePath,
	)
	if emailService.Enabled() {
		log.Info().Str("domain", cfg.MailgunDomain).Msg("Mailgun email forwarding initialized")
	} else {
		log.Warn().Msg("Mailgun credentials not configured - email forwarding disabled")
	}

	telegramService := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramChatID)
	if telegramService.Enabled() {
		log.Info().Msg("Telegram forwarding initialized")
	} else {
		log.Warn().Msg("Telegram credentials not configured - telegram forwarding disabled")
	}

	// Initialize Analytics Service
	analyticsService, err := services.NewAnalyticsService(services.AnalyticsConfig{
		PostHogAPIKey: cfg.PostHogAPIKey,
		PostHogHost:   cfg.PostHogHost,
		Enabled:       cfg.PostHogEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize analytics service")
	}
	defer analyticsService.Close()

	if cfg.PostHogEnabled {
		log.Info().Str("host", cfg.PostHogHost).Msg("PostHog analytics enabled")
	} else {
		log.Info().Msg("PostHog analytics disabled")
	}

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.Recovery())

	// The API serves browser clients on other origins; the admin panel
	// sends its token in X-Auth-Token
	corsConfig := cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Auth-Token"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          24 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	// Canonical envelopes for unknown routes and wrong methods
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"ok": false, "error": "Method not allowed"})
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "Not found"})
	})

	setupRoutes(router, db, adminService, propertyService, emailService, telegramService, analyticsService)

	// Create HTTP server with timeouts (protect from Slowloris attack)
	srv := &http.Server{
		Addr:              ":" + formatPort(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Int("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	// Graceful shutdown with timeout
	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server shut down successfully")
}

func setupRoutes(
	router *gin.Engine,
	db *database.Database,
	adminService *services.AdminService,
	propertyService *services.PropertyService,
	emailService *services.EmailService,
	telegramService *services.TelegramService,
	analyticsService *services.AnalyticsService,
) {
	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(adminService, analyticsService)
	userHandler := handlers.NewUserHandler(adminService)
	propertyHandler := handlers.NewPropertyHandler(propertyService, analyticsService)
	contactHandler := handlers.NewContactHandler(emailService, telegramService, analyticsService)

	// Health check endpoints
	router.GET("/health", healthHandler.HandleHealth)
	router.GET("/ready", healthHandler.HandleReady)
	router.GET("/info", healthHandler.HandleInfo)

	api := router.Group("/api")

	// Session endpoints
	api.POST("/auth", middleware.LoginRateLimitMiddleware(), authHandler.HandleLogin)
	api.GET("/auth", authHandler.HandleWhoami)

	// User provisioning (admin only)
	api.POST("/users", middleware.RequireAdmin(), userHandler.HandleCreateUser)
	api.POST("/users/reset-password", middleware.RequireAdmin(), userHandler.HandleResetPassword)

	// Listings: public search, admin writes
	api.GET("/properties", middleware.OptionalAdmin(), propertyHandler.HandleSearch)
	api.POST("/properties", middleware.RequireAdmin(), propertyHandler.HandleCreate)
	api.PUT("/properties", middleware.RequireAdmin(), propertyHandler.HandleUpdate)
	api.DELETE("/properties", middleware.RequireAdmin(), propertyHandler.HandleDelete)

	// Contact form forwarders (public, rate limited)
	contact := api.Group("/contact")
	contact.Use(middleware.ContactRateLimitMiddleware())
	{
		contact.POST("/email", contactHandler.HandleEmailContact)
		contact.POST("/telegram", contactHandler.HandleTelegramContact)
	}
}

func formatPort(port int) string {
	return fmt.Sprintf("%d", port)
}
