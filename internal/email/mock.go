package email

import (
	"context"
	"sync"
)

// MockService is a mock email service implementation for testing.
// It stores sent emails in memory for verification in tests.
type MockService struct {
	mu            sync.Mutex
	WelcomeEmails []MockEmail
	// Err, when set, is returned from every send.
	Err error
}

// MockEmail represents an email that was sent by the mock service.
type MockEmail struct {
	To   string
	Name string
}

// NewMockService creates a new mock email service.
func NewMockService() *MockService {
	return &MockService{
		WelcomeEmails: make([]MockEmail, 0),
	}
}

// SendWelcomeEmail records a welcome email.
func (s *MockService) SendWelcomeEmail(_ context.Context, to, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.WelcomeEmails = append(s.WelcomeEmails, MockEmail{To: to, Name: name})
	return nil
}

// Reset clears all stored emails.
func (s *MockService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.WelcomeEmails = make([]MockEmail, 0)
}

// GetWelcomeEmails returns a copy of all welcome emails sent.
func (s *MockService) GetWelcomeEmails() []MockEmail {
	s.mu.Lock()
	defer s.mu.Unlock()
	emails := make([]MockEmail, len(s.WelcomeEmails))
	copy(emails, s.WelcomeEmails)
	return emails
}
