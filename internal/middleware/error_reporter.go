package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sebasr/clinic-service/internal/monitoring"
)

// ErrorReporter sends errors attached with c.Error to Sentry once the
// handler chain has finished
func ErrorReporter() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, ginErr := range c.Errors {
			monitoring.CaptureErrorFor(ginErr.Err, errorUser(c), map[string]interface{}{
				"endpoint":   c.Request.URL.Path,
				"method":     c.Request.Method,
				"status":     c.Writer.Status(),
				"request_id": c.GetString(RequestIDKey),
				"headers":    safeHeaders(c.Request.Header),
			})
		}
	}
}

// errorUser reads the caller set by the auth middleware, if any
func errorUser(c *gin.Context) monitoring.ErrorUser {
	var user monitoring.ErrorUser
	if id, err := GetAccountID(c); err == nil {
		user.AccountID = id.String()
	}
	user.IdentityID, _ = GetIdentityID(c)
	user.Role, _ = GetRole(c)
	return user
}

func safeHeaders(h http.Header) map[string]interface{} {
	safe := make(map[string]interface{}, len(h))
	for k, v := range h {
		if strings.EqualFold(k, "Authorization") || strings.EqualFold(k, "Cookie") {
			safe[k] = "[FILTERED]"
		} else {
			safe[k] = v
		}
	}
	return safe
}
