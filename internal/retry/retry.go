// Package retry provides the bounded polling primitive used to wait on
// asynchronous provider-side checks.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrPollExhausted is returned when a check is still pending after the
// configured number of attempts.
var ErrPollExhausted = errors.New("still pending after maximum poll attempts")

// PollConfig controls polling behavior.
type PollConfig struct {
	// Interval is the delay between two consecutive checks.
	Interval time.Duration

	// MaxAttempts caps the number of checks. Zero or negative means a
	// single check.
	MaxAttempts int
}

// DefaultPollConfig returns the configuration used for availability checks:
// one check per second for up to ten minutes.
func DefaultPollConfig() PollConfig {
	return PollConfig{
		Interval:    time.Second,
		MaxAttempts: 600,
	}
}

// Poll issues check until pending reports false for its result, sleeping
// config.Interval between attempts, and returns the first settled result.
//
// A check error aborts polling immediately and is returned unchanged. When
// every attempt is still pending, the last result is returned together with
// an error wrapping ErrPollExhausted. Cancelling ctx stops the loop between
// attempts.
func Poll[T any](ctx context.Context, config PollConfig, check func(context.Context) (T, error), pending func(T) bool) (T, error) {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = 1
	}

	var result T
	for attempt := 1; attempt <= config.MaxAttempts; attempt++ {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		var err error
		result, err = check(ctx)
		if err != nil {
			return result, err
		}
		if !pending(result) {
			return result, nil
		}
		if attempt == config.MaxAttempts {
			break
		}

		if config.Interval > 0 && !sleep(ctx, config.Interval) {
			return result, ctx.Err()
		}
	}

	return result, fmt.Errorf("%w (%d attempts)", ErrPollExhausted, config.MaxAttempts)
}

func sleep(ctx context.Context, delay time.Duration) bool {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
