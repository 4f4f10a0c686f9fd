// Command api serves the room scheduler HTTP API.
//
//	@title						Room Scheduler API
//	@version					1.0
//	@description				Group availability rooms: create a room over candidate dates, collect each participant's available slots, read the aggregated result.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"roomscheduler/config"
	_ "roomscheduler/docs"
	"roomscheduler/internal/adapters/auth"
	"roomscheduler/internal/adapters/email"
	"roomscheduler/internal/adapters/i18n"
	"roomscheduler/internal/adapters/roomcode"
	"roomscheduler/internal/availability"
	httpdelivery "roomscheduler/internal/delivery/http"
	"roomscheduler/internal/delivery/http/controllers"
	"roomscheduler/internal/delivery/http/middleware"
	"roomscheduler/internal/repository/postgres"
	"roomscheduler/internal/services"
)

func main() {
	logger := config.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = db.PingContext(pingCtx)
	cancel()
	if err != nil {
		logger.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}

	if cfg.RunMigrations {
		if err := postgres.RunMigrations(cfg.DBUrl, logger); err != nil {
			logger.Error("failed to run migrations", "err", err)
			os.Exit(1)
		}
	}

	codes, err := roomcode.NewGenerator(cfg.RoomCode.Alphabet, cfg.RoomCode.Length)
	if err != nil {
		logger.Error("invalid room code settings", "err", err)
		os.Exit(1)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:          cfg.Email.AWSRegion,
			AccessKeyID:     cfg.Email.AWSAccessKeyID,
			SecretAccessKey: cfg.Email.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	// Repositories
	roomRepo := postgres.NewRoomRepository(db)
	participantRepo := postgres.NewParticipantRepository(db)

	// Services
	tokens := auth.NewJWT(cfg.JWTSecret)
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	roomService := services.NewRoomService(services.RoomServiceConfig{
		RoomRepo:        roomRepo,
		ParticipantRepo: participantRepo,
		Validator:       availability.NewRangeValidator(availability.SystemClock{}),
		Codes:           codes,
		EmailService:    emailService,
		PublicURL:       cfg.PublicURL,
		Logger:          logger,
		Timeout:         cfg.ContextTimeout,
	})
	participantService := services.NewParticipantService(roomRepo, participantRepo, auth.NewBcryptHasher(cfg.BcryptCost), tokens, cfg.JWTExpiry, cfg.ContextTimeout)

	// HTTP
	translator := i18n.NewTranslator(cfg.DefaultLocale, logger)
	router := httpdelivery.NewRouter(
		controllers.NewRoomController(logger, roomService, translator),
		controllers.NewParticipantController(logger, participantService, translator),
		middleware.RequireAuth(tokens, logger),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           httpdelivery.Wrap(router, logger, cfg.CORSOrigins),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "err", err)
	}
	logger.Info("server stopped")
}
