// Package middleware holds the gin middleware shared by the clinic routes.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sebasr/clinic-service/internal/auth"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// AccountIDKey is the context key for the authenticated account's ID
	AccountIDKey ContextKey = "account_id"

	// IdentityIDKey is the context key for the authenticated identity number
	IdentityIDKey ContextKey = "identity_id"

	// RoleKey is the context key for the authenticated account's role
	RoleKey ContextKey = "role"
)

// AuthMiddleware provides authentication middleware
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Required returns a middleware that requires a valid JWT token
// Returns 401 Unauthorized if the token is missing or invalid
func (m *AuthMiddleware) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := m.extractAndValidateToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  http.StatusUnauthorized,
				"error":   "unauthorized",
				"message": err.Error(),
			})
			return
		}

		if err := setIdentity(c, claims); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  http.StatusUnauthorized,
				"error":   "unauthorized",
				"message": "invalid account ID in token",
			})
			return
		}
		c.Next()
	}
}

// Optional returns a middleware that extracts account info if a valid token is present
// Continues execution even if the token is missing or invalid
func (m *AuthMiddleware) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := m.extractAndValidateToken(c); err == nil {
			_ = setIdentity(c, claims)
		}
		c.Next()
	}
}

func setIdentity(c *gin.Context, claims *auth.Claims) error {
	accountID, err := uuid.Parse(claims.AccountID)
	if err != nil {
		return err
	}
	c.Set(string(AccountIDKey), accountID)
	c.Set(string(IdentityIDKey), claims.IdentityID)
	c.Set(string(RoleKey), claims.Role)
	return nil
}

// extractAndValidateToken extracts the JWT token from the request and validates it
func (m *AuthMiddleware) extractAndValidateToken(c *gin.Context) (*auth.Claims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, errors.New("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errors.New("invalid authorization header format")
	}

	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return nil, errors.New("missing token")
	}

	return m.jwtService.ValidateToken(tokenString)
}

// GetAccountID retrieves the authenticated account's ID from the context
func GetAccountID(c *gin.Context) (uuid.UUID, error) {
	value, exists := c.Get(string(AccountIDKey))
	if !exists {
		return uuid.Nil, errors.New("account not authenticated")
	}

	id, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("invalid account ID format")
	}

	return id, nil
}

// GetIdentityID retrieves the authenticated identity number from the context
func GetIdentityID(c *gin.Context) (string, error) {
	return getString(c, IdentityIDKey)
}

// GetRole retrieves the authenticated account's role from the context
func GetRole(c *gin.Context) (string, error) {
	return getString(c, RoleKey)
}

func getString(c *gin.Context, key ContextKey) (string, error) {
	value, exists := c.Get(string(key))
	if !exists {
		return "", errors.New("account not authenticated")
	}

	s, ok := value.(string)
	if !ok {
		return "", errors.New("invalid " + string(key) + " format")
	}

	return s, nil
}
