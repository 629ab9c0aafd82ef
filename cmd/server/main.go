// Package main is the entry point for the clinic service HTTP server.
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/sebasr/clinic-service/internal/cache"
	"github.com/sebasr/clinic-service/internal/config"
	"github.com/sebasr/clinic-service/internal/database"
	"github.com/sebasr/clinic-service/internal/email"
	"github.com/sebasr/clinic-service/internal/events"
	"github.com/sebasr/clinic-service/internal/logging"
	"github.com/sebasr/clinic-service/internal/monitoring"
	"github.com/sebasr/clinic-service/internal/repository"
	"github.com/sebasr/clinic-service/internal/server"
)

func main() {
	if err := run(); err != nil {
		// run has returned, so every deferred Close has already executed
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		bootLogger := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLogger.Error().Err(err).Msg("failed to load configuration")
		return err
	}

	logger := logging.New(cfg.Log)

	sentryEnabled, err := monitoring.InitSentry(&cfg.Monitoring)
	if err != nil {
		logger.Warn().Err(err).Msg("error reporting disabled")
	} else if sentryEnabled {
		defer monitoring.FlushSentry()
		logger.Info().Msg("Sentry error reporting enabled")
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		logger.Error().Err(err).Msg("failed to connect to database")
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error().Err(err).Msg("error closing database")
		}
	}()
	logger.Info().Msg("connected to database")

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to apply migrations")
			return err
		}
		logger.Info().Msg("schema up to date")
	}

	var appointmentCache cache.AppointmentCache
	if cfg.Cache.Enabled() {
		redisCache, err := cache.NewRedisCache(&cfg.Cache)
		if err != nil {
			// Listings still work from the store
			logger.Warn().Err(err).Msg("appointment cache disabled")
		} else {
			appointmentCache = redisCache
			defer redisCache.Close()
			logger.Info().Str("addr", cfg.Cache.Addr).Msg("appointment cache enabled")
		}
	}

	var publisher events.Publisher
	if cfg.Events.Enabled() {
		kafkaPublisher := events.NewKafkaPublisher(&cfg.Events)
		publisher = kafkaPublisher
		defer func() {
			if err := kafkaPublisher.Close(); err != nil {
				logger.Error().Err(err).Msg("error closing event publisher")
			}
		}()
		logger.Info().Strs("brokers", cfg.Events.Brokers).Str("topic", cfg.Events.Topic).Msg("event publishing enabled")
	}

	var emailService email.Service
	switch cfg.Email.Provider {
	case "mailgun":
		emailService = email.NewMailgunService(
			cfg.Email.MailgunDomain,
			cfg.Email.MailgunAPIKey,
			cfg.Email.FromAddress,
			cfg.Email.FromName,
			cfg.Email.AppURL,
		)
		logger.Info().Msg("email service initialized with Mailgun provider")
	case "console":
		emailService = email.NewConsoleService(logger, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.AppURL)
		logger.Info().Msg("email service writing to the log")
	default:
		logger.Info().Msg("email service not configured - welcome emails disabled")
	}

	deps := &server.Dependencies{
		Config:          cfg,
		Logger:          logger,
		DB:              db,
		AccountRepo:     repository.NewPostgresAccountRepository(db),
		TreatmentRepo:   repository.NewPostgresTreatmentRepository(db),
		AppointmentRepo: repository.NewPostgresAppointmentRepository(db),
		Cache:           appointmentCache,
		Events:          publisher,
		EmailService:    emailService,
	}

	srv := server.New(deps)

	logger.Info().Str("port", cfg.Server.Port).Msg("starting server")
	if err := srv.Run(":" + cfg.Server.Port); err != nil {
		logger.Error().Err(err).Msg("server stopped")
		return err
	}
	return nil
}
