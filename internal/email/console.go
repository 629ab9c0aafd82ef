package email

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// ConsoleService is an email service that writes emails to the log
// instead of delivering them. Used for local development.
type ConsoleService struct {
	logger      zerolog.Logger
	fromAddress string
	fromName    string
	appURL      string
}

// NewConsoleService creates a new console-based email service
func NewConsoleService(logger zerolog.Logger, fromAddress, fromName, appURL string) *ConsoleService {
	return &ConsoleService{
		logger:      logger.With().Str("component", "email").Logger(),
		fromAddress: fromAddress,
		fromName:    fromName,
		appURL:      strings.TrimSuffix(appURL, "/"),
	}
}

// SendWelcomeEmail logs the welcome email
func (s *ConsoleService) SendWelcomeEmail(_ context.Context, to, name string) error {
	s.logger.Info().
		Str("to", to).
		Str("from", s.fromName+" <"+s.fromAddress+">").
		Str("subject", welcomeSubject).
		Str("body", welcomeText(name, s.appURL)).
		Msg("welcome email (console mode)")
	return nil
}
