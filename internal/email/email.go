// Package email sends account notifications for the clinic service.
package email

import "context"

// Service defines the interface for sending emails.
// Implementations include Mailgun for production, Console for local
// development and Mock for testing.
type Service interface {
	// SendWelcomeEmail greets a newly registered account holder.
	SendWelcomeEmail(ctx context.Context, to, name string) error
}
