package moysklad

import (
	"errors"
	"fmt"
	"time"
)

var ErrNotFound = errors.New("moysklad entity not found")

// AuthError means the token was rejected
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("moysklad rejected credentials (status %d): %s", e.StatusCode, e.Message)
}

// RateLimitError is returned on HTTP 429
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("moysklad rate limit exceeded, retry after %s", e.RetryAfter)
}

// StatusError is any other non-2xx answer
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("moysklad returned status %d: %s", e.StatusCode, e.Message)
}
