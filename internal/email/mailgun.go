package email

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mailgun/mailgun-go/v5"
)

// MailgunService implements the Service interface using Mailgun's API.
type MailgunService struct {
	client      mailgun.Mailgun
	domain      string
	fromAddress string
	fromName    string
	appURL      string
}

// NewMailgunService creates a new Mailgun email service.
// domain: Mailgun domain (e.g., "mg.example.com")
// apiKey: Mailgun API key
// appURL: Frontend application URL used for the sign-in link
func NewMailgunService(domain, apiKey, fromAddress, fromName, appURL string) *MailgunService {
	// Values loaded from env files often carry trailing whitespace
	domain = strings.TrimSpace(domain)
	apiKey = strings.TrimSpace(apiKey)

	mg := mailgun.NewMailgun(apiKey)

	if os.Getenv("MAILGUN_EU") == "true" {
		// v5 appends /v3 itself
		_ = mg.SetAPIBase("https://api.eu.mailgun.net")
	}
	return &MailgunService{
		client:      mg,
		domain:      domain,
		fromAddress: strings.TrimSpace(fromAddress),
		fromName:    strings.TrimSpace(fromName),
		appURL:      strings.TrimSuffix(strings.TrimSpace(appURL), "/"),
	}
}

// SendWelcomeEmail sends the registration greeting
func (s *MailgunService) SendWelcomeEmail(ctx context.Context, to, name string) error {
	sender := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)
	message := mailgun.NewMessage(s.domain, sender, welcomeSubject, welcomeText(name, s.appURL), to)
	message.SetHTML(welcomeHTML(name, s.appURL))

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if _, err := s.client.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	return nil
}
