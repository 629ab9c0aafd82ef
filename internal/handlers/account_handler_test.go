package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sebasr/clinic-service/internal/auth"
	"github.com/sebasr/clinic-service/internal/models"
	"github.com/sebasr/clinic-service/internal/repository"
	"github.com/sebasr/clinic-service/internal/service"
)

func setupAccountTest() (*AccountHandler, *repository.MockAccountRepository, *auth.Hasher) {
	repo := repository.NewMockAccountRepository()
	hasher := auth.NewHasher(bcrypt.MinCost)
	jwtService := auth.NewJWTService("test-secret", time.Hour)
	svc := service.NewAccountService(repo, hasher, jwtService, nil, nil, zerolog.Nop())
	return NewAccountHandler(svc), repo, hasher
}

func TestAccountHandler_Register_Success(t *testing.T) {
	handler, repo, _ := setupAccountTest()

	var captured *models.Account
	repo.CreateFunc = func(_ context.Context, a *models.Account) error {
		captured = a
		return nil
	}

	c, w := newJSONContext(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"name":       "Ann",
		"email":      "ann@example.com",
		"password":   "s3cret",
		"identityID": "1100200300400",
		"status":     "patient",
	})

	handler.Register(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(200), body["status"])
	assert.Equal(t, "Register success", body["message"])

	require.NotNil(t, captured)
	assert.Equal(t, "1100200300400", captured.IdentityID)
	assert.NotEqual(t, "s3cret", captured.PasswordHash)
}

func TestAccountHandler_Register_Form(t *testing.T) {
	handler, repo, _ := setupAccountTest()

	called := false
	repo.CreateFunc = func(_ context.Context, _ *models.Account) error {
		called = true
		return nil
	}

	c, w := newFormContext("/register", url.Values{
		"name":     {"Ann"},
		"email":    {"ann@example.com"},
		"password": {"s3cret"},
	})

	handler.Register(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestAccountHandler_Register_MissingFields(t *testing.T) {
	handler, repo, _ := setupAccountTest()
	repo.CreateFunc = func(_ context.Context, _ *models.Account) error {
		t.Fatal("no row may be inserted")
		return nil
	}

	c, w := newJSONContext(http.MethodPost, "/api/v1/auth/register", map[string]string{"name": "Ann"})

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "validation_error", body["error"])
	assert.ElementsMatch(t, []interface{}{"email", "password"}, body["fields"])
}

func TestAccountHandler_Register_MalformedJSON(t *testing.T) {
	handler, _, _ := setupAccountTest()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewBufferString("{not json"))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_request")
}

func TestAccountHandler_Register_StoreFailure(t *testing.T) {
	handler, repo, _ := setupAccountTest()
	repo.CreateFunc = func(_ context.Context, _ *models.Account) error {
		return repository.ErrAccountExists
	}

	c, w := newJSONContext(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"name": "Ann", "email": "ann@example.com", "password": "s3cret", "identityID": "dup",
	})

	handler.Register(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "persistence_error", body["error"])
	assert.Contains(t, body["detail"], "already exists")
	assert.Len(t, c.Errors, 1)
}

func TestAccountHandler_Login_Success(t *testing.T) {
	handler, repo, hasher := setupAccountTest()

	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	account := &models.Account{
		ID: uuid.New(), Status: "Doctor", Name: "Ann", Lastname: "Lee",
		IdentityID: "1100200300400", Email: "ann@example.com", PasswordHash: hash,
	}
	repo.GetByIdentityIDFunc = func(_ context.Context, identityID string) (*models.Account, error) {
		if identityID == account.IdentityID {
			return account, nil
		}
		return nil, repository.ErrAccountNotFound
	}

	c, w := newJSONContext(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"identityID": " 1100200300400 ",
		"password":   "s3cret",
	})

	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Login success", body["message"])
	assert.Equal(t, "doctor", body["role"])
	assert.NotEmpty(t, body["token"])

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Ann", user["name"])
	assert.Equal(t, account.ID.String(), user["id"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, w.Body.String(), hash)
}

func TestAccountHandler_Login_Unauthorized(t *testing.T) {
	handler, repo, hasher := setupAccountTest()

	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	repo.GetByIdentityIDFunc = func(_ context.Context, identityID string) (*models.Account, error) {
		if identityID == "known" {
			return &models.Account{ID: uuid.New(), IdentityID: "known", PasswordHash: hash}, nil
		}
		return nil, repository.ErrAccountNotFound
	}

	tests := []struct {
		name        string
		identityID  string
		password    string
		wantMessage string
	}{
		{"unknown account", "nobody", "s3cret", "Account not found"},
		{"wrong password", "known", "wrong", "Incorrect password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newJSONContext(http.MethodPost, "/login", map[string]string{
				"identityID": tt.identityID,
				"password":   tt.password,
			})

			handler.Login(c)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, "unauthorized", body["error"])
			assert.Equal(t, tt.wantMessage, body["message"])
		})
	}
}

func TestAccountHandler_Login_StoreFailure(t *testing.T) {
	handler, repo, _ := setupAccountTest()
	repo.GetByIdentityIDFunc = func(_ context.Context, _ string) (*models.Account, error) {
		return nil, errors.New("connection refused")
	}

	c, w := newJSONContext(http.MethodPost, "/login", map[string]string{
		"identityID": "1", "password": "x",
	})

	handler.Login(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Fail to login", body["message"])
	assert.Contains(t, body["detail"], "connection refused")
}
