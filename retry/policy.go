package retry

import (
	"errors"
	"time"

	"github.com/addrkit/go-fias/httpclient"
)

// Default policy values
const (
	DefaultMaxRetries        = 3
	DefaultInitialDelay      = 500 * time.Millisecond
	DefaultBackoffMultiplier = 2.0
)

// Policy configures the retry behavior for a wrapped operation.
// A Policy is immutable once constructed and safe to copy; each call site
// owns its own value.
type Policy struct {
	// MaxRetries is the total number of attempts. 1 means a single attempt
	// with no retry.
	MaxRetries int
	// InitialDelay is the sleep before the second attempt. Zero means
	// immediate retry; the multiplier still advances the schedule.
	InitialDelay time.Duration
	// BackoffMultiplier scales the delay after every failed attempt.
	BackoffMultiplier float64
	// RetryIf decides whether a failure is retried. Nil means IsTransient.
	RetryIf func(error) bool
}

// DefaultPolicy returns the policy used when callers have no special
// requirements: 3 attempts, 500ms initial delay, doubling backoff,
// transient failures only.
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries:        DefaultMaxRetries,
		InitialDelay:      DefaultInitialDelay,
		BackoffMultiplier: DefaultBackoffMultiplier,
		RetryIf:           IsTransient,
	}
}

// Validate checks the policy for invalid values
func (p Policy) Validate() error {
	if p.MaxRetries < 1 {
		return errors.New("retry: max retries must be at least one")
	}
	if p.InitialDelay < 0 {
		return errors.New("retry: initial delay cannot be negative")
	}
	if p.BackoffMultiplier < 1 {
		return errors.New("retry: backoff multiplier must be at least one")
	}
	return nil
}

// IsTransient reports whether an error is worth retrying: network
// failures, timeouts, and HTTP 5xx responses. Validation and auth
// failures are never transient.
func IsTransient(err error) bool {
	if httpclient.IsErrorType(err, httpclient.NetworkError) {
		return true
	}
	if httpclient.IsErrorType(err, httpclient.TimeoutError) {
		return true
	}
	if httpclient.IsErrorType(err, httpclient.HTTPError) {
		code := httpclient.StatusCode(err)
		return code >= 500 && code < 600
	}
	return false
}

// Always admits every failure. Use it only for operations known to be
// safely repeatable regardless of why they failed.
func Always(error) bool {
	return true
}
