package retry

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

type Config struct {
	MaxAttempts int
	Delay       time.Duration
	Backoff     bool // linear: attempt * Delay
}

// Do calls fn until it succeeds, the attempts run out or ctx is done.
func Do(ctx context.Context, config Config, fn func() error) error {
	attempts := config.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == attempts {
			break
		}

		delay := config.Delay
		if config.Backoff {
			delay = time.Duration(attempt) * config.Delay
		}
		slog.Debug("retrying", "attempt", attempt, "delay", delay, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("failed after %d attempts: %w", attempts, lastErr)
}
