// Package retry wraps a single persistence write with a fixed-count retry.
// It guards the two public conversion paths (lead and booking creation) against
// transient connection hiccups; everything else fails fast.
package retry

import (
	"context"
	"time"
)

const (
	DefaultAttempts = 3
	defaultPause    = 200 * time.Millisecond
)

// Do invokes fn up to DefaultAttempts times, pausing between attempts.
// It returns nil on the first success, the last error once attempts are
// exhausted, or the context error if ctx is done while waiting.
func Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return DoN(ctx, DefaultAttempts, fn)
}

func DoN(ctx context.Context, attempts int, fn func(ctx context.Context) error) error {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}

		if i == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(defaultPause):
		}
	}

	return lastErr
}
