package repository

import (
	"context"

	"github.com/sebasr/clinic-service/internal/models"
)

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	// Create stores a new account. The password field must already be hashed.
	Create(ctx context.Context, account *models.Account) error

	// GetByIdentityID retrieves an account by its identity number
	GetByIdentityID(ctx context.Context, identityID string) (*models.Account, error)
}
