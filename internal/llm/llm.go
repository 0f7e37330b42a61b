package llm

import (
	"context"
	"errors"
	"net"
	"strings"
)

// Client abstracts an LLM provider as a single chat round trip: a fixed
// instruction message plus a user message, returning the raw model text.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// ErrRateLimited tags quota/rate-limit failures from the provider so callers
// can produce an accurate user-facing message after retries are exhausted.
var ErrRateLimited = errors.New("llm rate limit exceeded")

// IsRateLimit reports whether err is a provider rate-limit/quota signal.
func IsRateLimit(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "resource_exhausted") ||
		strings.Contains(msg, "resource exhausted") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "too many requests") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "429")
}

// isTransient reports whether err looks like a self-resolving provider fault
// worth retrying.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "http status 5") || strings.Contains(msg, "unavailable") || strings.Contains(msg, "server_error") {
		return true
	}
	if strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection closed") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "tls handshake timeout") ||
		strings.Contains(msg, "eof") {
		return true
	}

	return false
}

func shouldRetry(err error) bool {
	return IsRateLimit(err) || isTransient(err)
}
