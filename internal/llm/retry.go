package llm

import (
	"context"
	"time"

	"resume-insight/internal/shared/telemetry"
)

// RetryPolicy bounds the exponential backoff applied to provider calls.
// Provider calls are the highest-latency, highest-failure-rate step of the
// pipeline and quota errors usually clear within seconds to a minute.
type RetryPolicy struct {
	MaxAttempts int
	MinDelay    time.Duration
	MaxDelay    time.Duration
}

// DefaultRetryPolicy returns the production backoff bounds.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 5,
		MinDelay:    4 * time.Second,
		MaxDelay:    60 * time.Second,
	}
}

type retryingClient struct {
	base   Client
	policy RetryPolicy
}

// WithRetry wraps base so Complete is retried on rate-limit and transient
// provider errors, with delays starting at MinDelay and doubling up to
// MaxDelay. The last error is returned once MaxAttempts is exhausted.
func WithRetry(base Client, policy RetryPolicy) Client {
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = 1
	}
	if policy.MinDelay <= 0 {
		policy.MinDelay = time.Second
	}
	if policy.MaxDelay < policy.MinDelay {
		policy.MaxDelay = policy.MinDelay
	}
	return &retryingClient{base: base, policy: policy}
}

func (r *retryingClient) Complete(ctx context.Context, system, user string) (string, error) {
	delay := r.policy.MinDelay

	var lastErr error
	for attempt := 1; attempt <= r.policy.MaxAttempts; attempt++ {
		resp, err := r.base.Complete(ctx, system, user)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !shouldRetry(err) || attempt == r.policy.MaxAttempts {
			break
		}

		telemetry.Warn("llm.retry", map[string]any{
			"attempt":    attempt,
			"delay_ms":   delay.Milliseconds(),
			"rate_limit": IsRateLimit(err),
			"error":      err.Error(),
		})

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}

		delay *= 2
		if delay > r.policy.MaxDelay {
			delay = r.policy.MaxDelay
		}
	}
	return "", lastErr
}
