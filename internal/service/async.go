package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

const sideEffectTimeout = 10 * time.Second

// runAsync runs a best-effort side effect off the request path.
// Failures are logged and never reach the caller.
func runAsync(logger zerolog.Logger, task string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			logger.Warn().Err(err).Str("task", task).Msg("background task failed")
		}
	}()
}
