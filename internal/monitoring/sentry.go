package monitoring

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/sebasr/clinic-service/internal/config"
)

// InitSentry configures the global Sentry hub. It reports whether
// reporting is active; an empty DSN leaves it off.
func InitSentry(cfg *config.MonitoringConfig) (bool, error) {
	if cfg.SentryDSN == "" {
		return false, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          "clinic-service@" + cfg.Version,
		TracesSampleRate: 0.2,
	})
	if err != nil {
		return false, fmt.Errorf("sentry initialization failed: %w", err)
	}

	return true, nil
}

// FlushSentry waits for buffered events before shutdown
func FlushSentry() {
	sentry.Flush(2 * time.Second)
}

// ErrorUser identifies the authenticated caller of a failed request
type ErrorUser struct {
	AccountID  string
	IdentityID string
	Role       string
}

// CaptureError sends err to Sentry with extra context, if a client is bound
func CaptureError(err error, extras map[string]interface{}) {
	CaptureErrorFor(err, ErrorUser{}, extras)
}

// CaptureErrorFor is CaptureError with the caller attached to the event.
// A zero ErrorUser leaves the event anonymous.
func CaptureErrorFor(err error, user ErrorUser, extras map[string]interface{}) {
	hub := sentry.CurrentHub()
	if hub == nil || hub.Client() == nil {
		return
	}
	hub.WithScope(func(scope *sentry.Scope) {
		if user != (ErrorUser{}) {
			scope.SetUser(sentry.User{ID: user.AccountID, Username: user.IdentityID})
			scope.SetTag("role", user.Role)
		}
		for k, v := range extras {
			scope.SetExtra(k, v)
		}
		hub.CaptureException(err)
	})
}
