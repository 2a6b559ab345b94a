package main

import (
	"log"
	"net/http"
	"time"

	"eventguestbook/config"
	authadapter "eventguestbook/internal/adapters/auth"
	"eventguestbook/internal/adapters/calendarific"
	emailadapter "eventguestbook/internal/adapters/email"
	delivery "eventguestbook/internal/delivery/http"
	"eventguestbook/internal/delivery/http/controllers"
	"eventguestbook/internal/delivery/http/middleware"
	"eventguestbook/internal/delivery/http/session"
	"eventguestbook/internal/repository/postgres"
	"eventguestbook/internal/services"
)

const (
	bcryptCost     = 10
	holidayTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := config.NewLogger()

	db, err := postgres.Open(cfg.DBUrl)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := postgres.Migrate(db, "migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	guestRepo := postgres.NewGuestRepository(db)

	// Adapters
	hasher := authadapter.NewBcryptHasher(bcryptCost)
	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: emailadapter.SESConfig{
			Region:          cfg.Email.SESRegion,
			AccessKeyID:     cfg.Email.SESAccessKeyID,
			SecretAccessKey: cfg.Email.SESSecretAccessKey,
		},
	}, logger)
	if err != nil {
		log.Fatalf("Failed to create mailer: %v", err)
	}
	// The upstream call is bounded so a hung provider cannot stall a request forever.
	holidayFetcher := calendarific.NewHTTPFetcher(&http.Client{Timeout: holidayTimeout}, cfg.HolidayAPIKey)

	// Services
	emailService := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer())
	authService := services.NewAuthService(userRepo, hasher, emailService, logger)
	eventService := services.NewEventService(eventRepo)
	rsvpService := services.NewRSVPService(eventRepo, guestRepo)
	holidayService := services.NewHolidayService(holidayFetcher, nil)

	// Delivery
	sessionManager := session.NewManager(cfg.SessionSecret, cfg.Environment == "production")
	publicController := controllers.NewPublicController(logger, eventService, rsvpService, holidayService, sessionManager)
	authController := controllers.NewAuthController(logger, authService, sessionManager)
	adminController := controllers.NewAdminController(logger, eventService, sessionManager)

	mux := delivery.NewRouter(publicController, authController, adminController, sessionManager, authService, logger)
	handler := middleware.Logging(logger, middleware.CORS(cfg.AllowedOrigins, mux))

	logger.Info("starting server", "port", cfg.Port, "env", cfg.Environment)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
