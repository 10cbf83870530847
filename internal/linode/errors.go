package linode

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// Kind identifies which variant of the error taxonomy an error belongs to.
// The taxonomy is closed: every error produced by this package is exactly
// one of the kinds below.
type Kind int

const (
	// KindUnknown marks errors that did not originate from this package.
	KindUnknown Kind = iota

	// KindAPI marks structured error responses from the Linode API.
	KindAPI

	// KindNetwork marks transport-level failures (connect, timeout, DNS).
	KindNetwork

	// KindRetryable marks errors explicitly wrapped to force retry semantics.
	KindRetryable
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindAPI:
		return "api"
	case KindNetwork:
		return "network"
	case KindRetryable:
		return "retryable"
	default:
		return "unknown"
	}
}

// KindOf reports the taxonomy kind of err. Errors produced outside this
// package report KindUnknown.
func KindOf(err error) Kind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return KindAPI
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return KindNetwork
	}
	var retryErr *RetryableError
	if errors.As(err, &retryErr) {
		return KindRetryable
	}
	return KindUnknown
}

// APIError is a structured error response from the Linode API. The
// classification predicates are derived purely from the status code.
type APIError struct {
	// StatusCode is the HTTP status the API responded with.
	StatusCode int

	// Message is the human-readable reason reported by the API, or a
	// synthesized message when the response body carried no error details.
	Message string

	// Field names the request field the error relates to, when the API
	// reported one. Empty otherwise.
	Field string
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("linode: API error %d on field %q: %s", e.StatusCode, e.Field, e.Message)
	}
	return fmt.Sprintf("linode: API error %d: %s", e.StatusCode, e.Message)
}

// IsAuthenticationError reports whether the error is a 401. Authentication
// errors are never retried; only a new token fixes them.
func (e *APIError) IsAuthenticationError() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsForbiddenError reports whether the error is a 403.
func (e *APIError) IsForbiddenError() bool {
	return e.StatusCode == http.StatusForbidden
}

// IsRateLimitError reports whether the error is a 429.
func (e *APIError) IsRateLimitError() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// IsServerError reports whether the status is in the 5xx range.
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode <= 599
}

// NetworkError wraps a transport-level failure. The raw transport error is
// never surfaced directly to callers; it is always carried here so that the
// logical operation name is attached for diagnostics.
type NetworkError struct {
	// Op is the logical operation that failed, e.g. "list_instances".
	Op string

	// Cause is the underlying transport error.
	Cause error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("linode: %s: network error: %v", e.Op, e.Cause)
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// RetryableError forces retry semantics onto an error that the classifier
// would otherwise treat as fatal. RetryAfter, when non-zero, is a hint for
// how long to wait before the next attempt.
type RetryableError struct {
	Cause      error
	RetryAfter time.Duration
}

func (e *RetryableError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("linode: retryable: %v (retry after %s)", e.Cause, e.RetryAfter)
	}
	return fmt.Sprintf("linode: retryable: %v", e.Cause)
}

func (e *RetryableError) Unwrap() error {
	return e.Cause
}

// IsRetryable implements the retry classification shared by RetryingClient
// and any caller making policy decisions outside the retry loop:
//
//   - *APIError: retryable iff rate-limit (429) or server error (5xx).
//     401 and 403 are never retryable; only the caller can fix those.
//   - *NetworkError: always retryable.
//   - *RetryableError: always retryable.
//   - bare net.Error timeouts: retryable.
//
// Everything else fails fast.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.IsRateLimitError() || apiErr.IsServerError()
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return true
	}
	var retryErr *RetryableError
	if errors.As(err, &retryErr) {
		return true
	}
	var timeoutErr net.Error
	if errors.As(err, &timeoutErr) && timeoutErr.Timeout() {
		return true
	}
	return false
}
