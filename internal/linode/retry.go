package linode

import (
	"context"
	"math"
	"math/rand/v2"
	"time"
)

// Retry policy defaults.
const (
	DefaultMaxRetries    = 3
	DefaultBaseDelay     = 1 * time.Second
	DefaultMaxDelay      = 30 * time.Second
	DefaultBackoffFactor = 2.0

	// jitterFraction is the maximum additive jitter relative to the
	// computed delay. Jitter desynchronizes concurrent retriers so they
	// do not hammer the API in lockstep.
	jitterFraction = 0.1
)

// RetryPolicy configures the backoff behavior of RetryingClient. The zero
// value disables retries; use DefaultRetryPolicy for sensible defaults.
// A policy is read-only after construction and safe to share across
// concurrent calls.
type RetryPolicy struct {
	// MaxRetries is the number of re-attempts after the initial try.
	MaxRetries int

	// BaseDelay is the delay before the first retry.
	BaseDelay time.Duration

	// MaxDelay caps the computed (pre-jitter) delay.
	MaxDelay time.Duration

	// BackoffFactor is the multiplier applied per retry.
	BackoffFactor float64

	// JitterEnabled adds up to 10% of the computed delay, sampled
	// uniformly, on top of each backoff sleep.
	JitterEnabled bool
}

// DefaultRetryPolicy returns the policy used in production: three retries,
// 1s base delay doubling up to 30s, with jitter.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:    DefaultMaxRetries,
		BaseDelay:     DefaultBaseDelay,
		MaxDelay:      DefaultMaxDelay,
		BackoffFactor: DefaultBackoffFactor,
		JitterEnabled: true,
	}
}

// Delay computes the backoff before retry number attempt (1-indexed: the
// first retry uses exponent zero, so it waits exactly BaseDelay). The
// exponential value is clamped to [0, MaxDelay] before jitter is added,
// so the final delay may exceed MaxDelay by at most the jitter fraction.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	if attempt < 1 {
		return 0
	}
	delay := float64(p.BaseDelay) * math.Pow(p.BackoffFactor, float64(attempt-1))
	if maxDelay := float64(p.MaxDelay); delay > maxDelay {
		delay = maxDelay
	}
	if delay < 0 {
		delay = 0
	}
	if p.JitterEnabled {
		delay += delay * jitterFraction * rand.Float64()
	}
	return time.Duration(delay)
}

// RetryHook observes every retry decision: op is the logical operation,
// attempt the 1-indexed retry number, delay the backoff about to be slept,
// and cause the error that triggered the retry.
type RetryHook func(op string, attempt int, delay time.Duration, cause error)

// RetryingClient wraps a base Client with automatic retries under a shared
// policy. It exposes the identical operation surface as the base client;
// callers cannot tell whether retries occurred except by latency. Retry
// loops of concurrent calls are independent: there is no shared backoff
// state and no request coalescing.
type RetryingClient struct {
	API

	base    *Client
	policy  RetryPolicy
	onRetry RetryHook
}

// RetryOption customizes a RetryingClient at construction time.
type RetryOption func(*RetryingClient)

// WithRetryHook registers a hook observing each retry. Used for logging
// and instrumentation.
func WithRetryHook(hook RetryHook) RetryOption {
	return func(rc *RetryingClient) {
		rc.onRetry = hook
	}
}

// NewRetryingClient wraps base with the given retry policy.
func NewRetryingClient(base *Client, policy RetryPolicy, opts ...RetryOption) *RetryingClient {
	rc := &RetryingClient{
		base:   base,
		policy: policy,
	}
	for _, opt := range opts {
		opt(rc)
	}
	rc.API = API{d: rc, meta: base.meta}
	return rc
}

// Policy returns the retry policy the client was constructed with.
func (rc *RetryingClient) Policy() RetryPolicy {
	return rc.policy
}

// Close releases the underlying base client's connection pool.
func (rc *RetryingClient) Close() {
	rc.base.Close()
}

// BaseURL returns the API endpoint of the wrapped base client.
func (rc *RetryingClient) BaseURL() string {
	return rc.base.BaseURL()
}

// Do executes one logical operation with retries. The loop is uniform for
// every operation: no delay before the first attempt, exponential backoff
// from the first retry on, context-aware sleeps, and fail-fast on
// non-retryable errors. On exhaustion the last observed error is returned
// unchanged so the caller sees the same taxonomy value the final attempt
// produced.
func (rc *RetryingClient) Do(ctx context.Context, op, method, path string, body, out any) error {
	var lastErr error
	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			delay := rc.policy.Delay(attempt)
			if rc.onRetry != nil {
				rc.onRetry(op, attempt, delay, lastErr)
			}
			if err := sleepContext(ctx, delay); err != nil {
				return err
			}
		}

		err := rc.base.Do(ctx, op, method, path, body, out)
		if err == nil {
			return nil
		}
		if attempt == rc.policy.MaxRetries {
			return err
		}
		if !IsRetryable(err) {
			return err
		}
		lastErr = err
	}
}

// sleepContext sleeps for d or until the context is done, whichever comes
// first. Cancellation during a backoff sleep propagates immediately.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
