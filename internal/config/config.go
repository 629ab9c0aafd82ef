// Package config provides configuration management for the clinic service.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Auth       AuthConfig
	Clinic     ClinicConfig
	Email      EmailConfig
	Cache      CacheConfig
	Events     EventsConfig
	Monitoring MonitoringConfig
	Log        LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port    string
	GinMode string
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret         string
	JWTAccessTokenTTL time.Duration
	BcryptCost        int
	// Required makes treatment and appointment routes reject anonymous callers.
	Required bool
}

// ClinicConfig holds clinic-local settings
type ClinicConfig struct {
	// Timezone decides what "today" means for appointment listings.
	// "Local" uses the server's zone.
	Timezone string
}

// EmailConfig holds email service configuration
type EmailConfig struct {
	Provider      string // Email provider: "mailgun", "console" or "mock"
	MailgunDomain string // Mailgun domain
	MailgunAPIKey string // Mailgun API key
	FromAddress   string // Sender email address
	FromName      string // Sender name
	AppURL        string // Frontend app URL used in links
}

// CacheConfig holds Redis cache configuration. An empty Addr disables caching.
type CacheConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// EventsConfig holds Kafka publisher configuration. No brokers disables events.
type EventsConfig struct {
	Brokers []string
	Topic   string
}

// MonitoringConfig holds metrics and error reporting configuration
type MonitoringConfig struct {
	MetricsEnabled bool
	SentryDSN      string
	Environment    string
	Version        string
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Format string // "json" or "console"
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	URL                   string
	Host                  string
	Port                  string
	Name                  string
	User                  string
	Password              string
	SSLMode               string
	MaxConnections        int
	MaxIdleConnections    int
	ConnectionMaxLifetime time.Duration
	AutoMigrate           bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "5000"),
			GinMode: getEnv("GIN_MODE", "release"),
		},
		Database: DatabaseConfig{
			URL:                   GetSecret("DATABASE_URL", ""),
			Host:                  getEnv("DB_HOST", "localhost"),
			Port:                  getEnv("DB_PORT", "5432"),
			Name:                  getEnv("DB_NAME", "clinic_dev"),
			User:                  getEnv("DB_USER", "clinic_user"),
			Password:              GetSecret("DB_PASSWORD", "clinic_pass"),
			SSLMode:               getEnv("DB_SSLMODE", "disable"),
			MaxConnections:        getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MaxIdleConnections:    getEnvAsInt("DB_MAX_IDLE_CONNECTIONS", 5),
			ConnectionMaxLifetime: getEnvAsDuration("DB_CONNECTION_MAX_LIFETIME", "5m"),
			AutoMigrate:           getEnvAsBool("DB_AUTO_MIGRATE", true),
		},
		Auth: AuthConfig{
			JWTSecret:         GetSecret("JWT_SECRET", "dev-secret-key-change-in-production"),
			JWTAccessTokenTTL: getEnvAsDuration("JWT_ACCESS_TOKEN_TTL", "8h"),
			BcryptCost:        getEnvAsInt("AUTH_BCRYPT_COST", 10),
			Required:          getEnvAsBool("AUTH_REQUIRED", false),
		},
		Clinic: ClinicConfig{
			Timezone: getEnv("CLINIC_TIMEZONE", "Local"),
		},
		Email: EmailConfig{
			Provider:      getEnv("EMAIL_PROVIDER", "mock"),
			MailgunDomain: GetSecret("MAILGUN_DOMAIN", ""),
			MailgunAPIKey: GetSecret("MAILGUN_API_KEY", ""),
			FromAddress:   getEnv("EMAIL_FROM_ADDRESS", "noreply@example.com"),
			FromName:      getEnv("EMAIL_FROM_NAME", "Clinic"),
			AppURL:        getEnv("APP_URL", "http://localhost:3000"),
		},
		Cache: CacheConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: GetSecret("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			TTL:      getEnvAsDuration("CACHE_TTL", "30s"),
		},
		Events: EventsConfig{
			Brokers: getEnvAsList("KAFKA_BROKERS"),
			Topic:   getEnv("KAFKA_TOPIC", "clinic_events"),
		},
		Monitoring: MonitoringConfig{
			MetricsEnabled: getEnvAsBool("METRICS_ENABLED", true),
			SentryDSN:      GetSecret("SENTRY_DSN", ""),
			Environment:    getEnv("APP_ENV", "development"),
			Version:        getEnv("APP_VERSION", "1.0.0"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	if c.Email.Provider == "mailgun" {
		if c.Email.MailgunAPIKey == "" {
			return errors.New("MAILGUN_API_KEY is required when EMAIL_PROVIDER=mailgun")
		}
		if c.Email.MailgunDomain == "" {
			return errors.New("MAILGUN_DOMAIN is required when EMAIL_PROVIDER=mailgun")
		}
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if _, err := c.Clinic.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the configured clinic time zone
func (c *ClinicConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid CLINIC_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Enabled reports whether a Redis address was configured
func (c *CacheConfig) Enabled() bool {
	return c.Addr != ""
}

// Enabled reports whether any Kafka broker was configured
func (e *EventsConfig) Enabled() bool {
	return len(e.Brokers) > 0
}

// ConnectionString returns the database connection string
func (d *DatabaseConfig) ConnectionString() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool gets an environment variable as a bool or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated environment variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvAsDuration gets an environment variable as a duration or returns a default value
func getEnvAsDuration(key, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		defaultDuration, _ := time.ParseDuration(defaultValue)
		return defaultDuration
	}
	return value
}
