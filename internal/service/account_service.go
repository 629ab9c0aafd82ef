package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sebasr/clinic-service/internal/auth"
	"github.com/sebasr/clinic-service/internal/email"
	"github.com/sebasr/clinic-service/internal/events"
	"github.com/sebasr/clinic-service/internal/models"
	"github.com/sebasr/clinic-service/internal/repository"
	"github.com/sebasr/clinic-service/internal/validation"
)

// RegisterInput is the registration form. Only name, email and password are mandatory.
type RegisterInput struct {
	Status     string `json:"status" form:"status"`
	Name       string `json:"name" form:"name" validate:"required"`
	Lastname   string `json:"lastname" form:"lastname"`
	IdentityID string `json:"identityID" form:"identityID"`
	Email      string `json:"email" form:"email" validate:"required"`
	Day        string `json:"day" form:"day"`
	Phonenum   string `json:"phonenum" form:"phonenum"`
	Sex        string `json:"sex" form:"sex"`
	Address    string `json:"address" form:"address"`
	Password   string `json:"password" form:"password" validate:"required"`
}

// LoginInput holds login credentials
type LoginInput struct {
	IdentityID string `json:"identityID" form:"identityID" validate:"required"`
	Password   string `json:"password" form:"password" validate:"required"`
}

// LoginResult is returned on successful login
type LoginResult struct {
	Profile   *models.Profile
	Token     string
	ExpiresAt time.Time
}

// TokenIssuer mints access tokens for authenticated accounts
type TokenIssuer interface {
	GenerateAccessToken(accountID uuid.UUID, identityID, role string) (string, time.Time, error)
}

// AccountService registers accounts and checks credentials
type AccountService struct {
	accounts  repository.AccountRepository
	hasher    *auth.Hasher
	tokens    TokenIssuer
	mailer    email.Service
	publisher events.Publisher
	logger    zerolog.Logger
}

// NewAccountService creates an account service. tokens, mailer and publisher may be nil.
func NewAccountService(
	accounts repository.AccountRepository,
	hasher *auth.Hasher,
	tokens TokenIssuer,
	mailer email.Service,
	publisher events.Publisher,
	logger zerolog.Logger,
) *AccountService {
	if hasher == nil {
		hasher = auth.NewHasher(auth.DefaultCost)
	}
	return &AccountService{
		accounts:  accounts,
		hasher:    hasher,
		tokens:    tokens,
		mailer:    mailer,
		publisher: publisher,
		logger:    logger,
	}
}

// Register validates the form, hashes the password and stores the account
// with a single insert.
func (s *AccountService) Register(ctx context.Context, input RegisterInput) error {
	if err := validation.Struct(input); err != nil {
		return newValidationError(err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordEmpty) {
			return &ValidationError{Fields: []string{"password"}, Message: err.Error(), Err: err}
		}
		return err
	}

	account := &models.Account{
		ID:           uuid.New(),
		Status:       input.Status,
		Name:         input.Name,
		Lastname:     input.Lastname,
		IdentityID:   strings.TrimSpace(input.IdentityID),
		Email:        input.Email,
		Day:          input.Day,
		Phonenum:     input.Phonenum,
		Sex:          input.Sex,
		Address:      input.Address,
		PasswordHash: hash,
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return persistenceError(err)
	}

	s.logger.Info().Str("account_id", account.ID.String()).Msg("account registered")

	if s.mailer != nil {
		runAsync(s.logger, "welcome_email", func(ctx context.Context) error {
			return s.mailer.SendWelcomeEmail(ctx, account.Email, account.Name)
		})
	}
	if s.publisher != nil {
		payload := account.ToProfile()
		runAsync(s.logger, events.AccountRegistered, func(ctx context.Context) error {
			return s.publisher.Publish(ctx, events.Event{
				Type:    events.AccountRegistered,
				Key:     payload.ID.String(),
				Payload: payload,
			})
		})
	}

	return nil
}

// Login looks up the account by trimmed identity number and verifies the password
func (s *AccountService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.IdentityID = strings.TrimSpace(input.IdentityID)
	if err := validation.Struct(input); err != nil {
		return nil, newValidationError(err)
	}

	account, err := s.accounts.GetByIdentityID(ctx, input.IdentityID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistenceError(err)
	}

	if !s.hasher.Verify(input.Password, account.PasswordHash) {
		return nil, ErrInvalidCredential
	}

	profile := account.ToProfile()
	result := &LoginResult{Profile: profile}

	if s.tokens != nil {
		token, expiresAt, err := s.tokens.GenerateAccessToken(account.ID, account.IdentityID, profile.Role)
		if err != nil {
			return nil, err
		}
		result.Token = token
		result.ExpiresAt = expiresAt
	}

	return result, nil
}
