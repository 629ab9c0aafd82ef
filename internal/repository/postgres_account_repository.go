package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sebasr/clinic-service/internal/database"
	"github.com/sebasr/clinic-service/internal/models"
	"github.com/sebasr/clinic-service/internal/monitoring"
)

var (
	// ErrAccountNotFound is returned when no account has the identity number
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountExists is returned when the identity number is already registered
	ErrAccountExists = errors.New("account with this identity number already exists")
)

// PostgresAccountRepository implements AccountRepository using PostgreSQL
type PostgresAccountRepository struct {
	db *database.DB
}

// NewPostgresAccountRepository creates a new PostgreSQL account repository
func NewPostgresAccountRepository(db *database.DB) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

// Create creates a new account
func (r *PostgresAccountRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO Account (
			id, status, name, lastname, identityID, email,
			day, phonenum, sex, address, password
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
	`

	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}

	_, err := r.db.ExecContext(ctx, query,
		account.ID, nullIfEmpty(account.Status), account.Name, nullIfEmpty(account.Lastname),
		nullIfEmpty(account.IdentityID), account.Email,
		nullIfEmpty(account.Day), nullIfEmpty(account.Phonenum), nullIfEmpty(account.Sex),
		nullIfEmpty(account.Address), account.PasswordHash,
	)
	monitoring.ObserveQuery("account.create", err)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrAccountExists
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// GetByIdentityID retrieves an account by its identity number
func (r *PostgresAccountRepository) GetByIdentityID(ctx context.Context, identityID string) (*models.Account, error) {
	query := `
		SELECT
			id, status, name, lastname, identityID, email,
			day, phonenum, sex, address, password
		FROM Account
		WHERE identityID = $1
	`

	var (
		account                                       models.Account
		status, lastname, day, phonenum, sex, address sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, identityID).Scan(
		&account.ID, &status, &account.Name, &lastname, &account.IdentityID, &account.Email,
		&day, &phonenum, &sex, &address, &account.PasswordHash,
	)

	if errors.Is(err, sql.ErrNoRows) {
		monitoring.ObserveQuery("account.get_by_identity", nil)
		return nil, ErrAccountNotFound
	}
	monitoring.ObserveQuery("account.get_by_identity", err)
	if err != nil {
		return nil, fmt.Errorf("failed to get account by identity number: %w", err)
	}

	account.Status = status.String
	account.Lastname = lastname.String
	account.Day = day.String
	account.Phonenum = phonenum.String
	account.Sex = sex.String
	account.Address = address.String

	return &account, nil
}

// nullIfEmpty stores omitted optional columns as NULL
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
