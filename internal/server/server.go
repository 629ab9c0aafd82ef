// Package server provides HTTP server setup and configuration.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sebasr/clinic-service/internal/auth"
	"github.com/sebasr/clinic-service/internal/cache"
	"github.com/sebasr/clinic-service/internal/config"
	"github.com/sebasr/clinic-service/internal/email"
	"github.com/sebasr/clinic-service/internal/events"
	"github.com/sebasr/clinic-service/internal/handlers"
	"github.com/sebasr/clinic-service/internal/logging"
	"github.com/sebasr/clinic-service/internal/middleware"
	"github.com/sebasr/clinic-service/internal/monitoring"
	"github.com/sebasr/clinic-service/internal/repository"
	"github.com/sebasr/clinic-service/internal/service"
)

// Dependencies holds all dependencies needed to create a server
type Dependencies struct {
	Config          *config.Config
	Logger          zerolog.Logger
	DB              handlers.Pinger // Optional: nil skips the database health check
	AccountRepo     repository.AccountRepository
	TreatmentRepo   repository.TreatmentRepository
	AppointmentRepo repository.AppointmentRepository
	Cache           cache.AppointmentCache // Optional: nil disables list caching
	Events          events.Publisher       // Optional: nil disables domain events
	EmailService    email.Service          // Optional: nil disables welcome emails
}

// New creates a new Gin router with all routes configured
func New(deps *Dependencies) *gin.Engine {
	cfg := deps.Config
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	// gin.Default() would add the colored text logger; requests are logged by zerolog instead
	router := gin.New()

	router.Use(gin.CustomRecovery(recoveryHandler(deps.Logger)))
	router.Use(middleware.RequestID())
	router.Use(logging.RequestLogger(deps.Logger))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Encoding", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.Monitoring.MetricsEnabled {
		monitoring.Init()
		router.Use(middleware.Metrics())
	}
	router.Use(middleware.ErrorReporter())
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithDecompressFn(gzip.DefaultDecompressHandle)))

	loc, err := cfg.Clinic.Location()
	if err != nil {
		deps.Logger.Warn().Err(err).Msg("falling back to the server time zone")
		loc = time.Local
	}

	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.JWTAccessTokenTTL)
	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	accountService := service.NewAccountService(
		deps.AccountRepo,
		auth.NewHasher(cfg.Auth.BcryptCost),
		jwtService,
		deps.EmailService,
		deps.Events,
		deps.Logger,
	)
	treatmentService := service.NewTreatmentService(deps.TreatmentRepo, deps.Events, deps.Logger)
	appointmentService := service.NewAppointmentService(deps.AppointmentRepo, deps.Cache, deps.Events, loc, deps.Logger)

	accountHandler := handlers.NewAccountHandler(accountService)
	treatmentHandler := handlers.NewTreatmentHandler(treatmentService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	healthHandler := handlers.NewHealthHandler(deps.DB, cfg.Monitoring.Version)

	// Record routes stay open unless AUTH_REQUIRED is set
	recordAuth := authMiddleware.Optional()
	if cfg.Auth.Required {
		recordAuth = authMiddleware.Required()
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthHandler.Check)

		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", accountHandler.Register)
			authGroup.POST("/login", accountHandler.Login)
		}

		treatments := v1.Group("/treatments")
		treatments.Use(recordAuth)
		{
			treatments.POST("", treatmentHandler.Create)
			treatments.GET("", treatmentHandler.FindByName)
		}

		appointments := v1.Group("/appointments")
		appointments.Use(recordAuth)
		{
			appointments.POST("", appointmentHandler.Create)
			appointments.GET("", appointmentHandler.ListAll)
			appointments.GET("/today", appointmentHandler.ListToday)
		}
	}

	// Legacy routes (original paths, kept for existing clients)
	router.POST("/register", accountHandler.Register)
	router.POST("/login", accountHandler.Login)
	router.POST("/treat", recordAuth, treatmentHandler.Create)
	router.GET("/treatBYname", recordAuth, treatmentHandler.FindByName)
	router.POST("/appointment", recordAuth, appointmentHandler.Create)
	router.GET("/appointments/today", recordAuth, appointmentHandler.ListToday)
	router.GET("/allappointments", recordAuth, appointmentHandler.ListAll)

	if cfg.Monitoring.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(monitoring.Handler()))
	}

	return router
}

// recoveryHandler turns a panic into the same failure envelope the handlers use
func recoveryHandler(logger zerolog.Logger) gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		err := fmt.Errorf("panic: %v", recovered)
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("recovered from panic")
		monitoring.CaptureError(err, map[string]interface{}{
			"endpoint": c.Request.URL.Path,
			"method":   c.Request.Method,
		})
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"status":  http.StatusInternalServerError,
			"error":   "persistence_error",
			"message": "Unexpected server error",
			"detail":  err.Error(),
		})
	}
}
