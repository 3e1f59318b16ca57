package gitlab

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// MaxRetries is the number of retries after a 429 before giving up.
	MaxRetries = 5

	// HeaderRetryAfter is the retry-after header (seconds or HTTP date).
	HeaderRetryAfter = "Retry-After"
)

// RetryDelay returns how long to wait after a rate limited response.
// attempt is the zero-based retry index. A parseable Retry-After header
// wins over exponential backoff.
func RetryDelay(h http.Header, attempt int) time.Duration {
	if d, ok := ParseRetryAfter(h.Get(HeaderRetryAfter)); ok {
		return d
	}
	return BackoffDelay(attempt)
}

// ParseRetryAfter parses a Retry-After value given in seconds or as an
// HTTP date. The boolean is false when the value is absent or malformed.
func ParseRetryAfter(value string) (time.Duration, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	if seconds, err := strconv.ParseUint(value, 10, 32); err == nil {
		return time.Duration(seconds) * time.Second, true
	}

	if at, err := http.ParseTime(value); err == nil {
		if d := time.Until(at); d > 0 {
			return d.Round(time.Second), true
		}
		return 0, true
	}

	return 0, false
}

// BackoffDelay returns 2^attempt seconds.
func BackoffDelay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	return time.Duration(1<<uint(attempt)) * time.Second
}

// newLimiter returns a token bucket allowing rps requests per second.
// Non-positive rates yield a limiter that never blocks.
func newLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(rps), 1)
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
