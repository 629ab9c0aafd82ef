package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebasr/clinic-service/internal/auth"
)

func setupTestMiddleware() (*AuthMiddleware, *auth.JWTService) {
	jwtService := auth.NewJWTService("test-secret-key", 1*time.Hour)
	return NewAuthMiddleware(jwtService), jwtService
}

func TestAuthMiddleware_Required_ValidToken(t *testing.T) {
	middleware, jwtService := setupTestMiddleware()

	accountID := uuid.New()
	token, _, err := jwtService.GenerateAccessToken(accountID, "1100200300400", "doctor")
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	handlerCalled := false
	var capturedID uuid.UUID
	var capturedIdentity, capturedRole string

	router.GET("/protected", middleware.Required(), func(c *gin.Context) {
		handlerCalled = true
		capturedID, _ = GetAccountID(c)
		capturedIdentity, _ = GetIdentityID(c)
		capturedRole, _ = GetRole(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	router.ServeHTTP(w, req)

	assert.True(t, handlerCalled)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, accountID, capturedID)
	assert.Equal(t, "1100200300400", capturedIdentity)
	assert.Equal(t, "doctor", capturedRole)
}

func TestAuthMiddleware_Required_Rejects(t *testing.T) {
	middleware, _ := setupTestMiddleware()
	expired := auth.NewJWTService("test-secret-key", -1*time.Hour)
	expiredToken, _, err := expired.GenerateAccessToken(uuid.New(), "1", "patient")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"garbage token", "Bearer not-a-jwt"},
		{"expired token", "Bearer " + expiredToken},
		{"basic scheme", "Basic dXNlcjpwYXNz"},
		{"missing token", "Bearer "},
		{"no scheme", expiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			router := gin.New()

			handlerCalled := false
			router.GET("/protected", middleware.Required(), func(c *gin.Context) {
				handlerCalled = true
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			router.ServeHTTP(w, req)

			assert.False(t, handlerCalled)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "unauthorized")
		})
	}
}

func TestAuthMiddleware_Optional(t *testing.T) {
	middleware, jwtService := setupTestMiddleware()
	accountID := uuid.New()
	token, _, err := jwtService.GenerateAccessToken(accountID, "1100200300400", "patient")
	require.NoError(t, err)

	tests := []struct {
		name          string
		header        string
		authenticated bool
	}{
		{"valid token", "Bearer " + token, true},
		{"no token", "", false},
		{"invalid token", "Bearer nope", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			router := gin.New()

			handlerCalled := false
			var idErr error
			var gotID uuid.UUID
			router.GET("/open", middleware.Optional(), func(c *gin.Context) {
				handlerCalled = true
				gotID, idErr = GetAccountID(c)
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/open", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			router.ServeHTTP(w, req)

			assert.True(t, handlerCalled)
			assert.Equal(t, http.StatusOK, w.Code)
			if tt.authenticated {
				assert.NoError(t, idErr)
				assert.Equal(t, accountID, gotID)
			} else {
				assert.Error(t, idErr)
			}
		})
	}
}

func TestGetAccountID_InvalidType(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set(string(AccountIDKey), "not-a-uuid")

	_, err := GetAccountID(c)
	assert.Error(t, err)
}

func TestGetRole_NotSet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := GetRole(c)
	assert.Error(t, err)

	c.Set(string(RoleKey), 42)
	_, err = GetRole(c)
	assert.Error(t, err)
}
