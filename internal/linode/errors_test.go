package linode

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// timeoutError satisfies net.Error with Timeout() == true.
type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindUnknown},
		{"plain error", errors.New("boom"), KindUnknown},
		{"api error", &APIError{StatusCode: 500}, KindAPI},
		{"network error", &NetworkError{Op: "list_instances", Cause: errors.New("refused")}, KindNetwork},
		{"retryable error", &RetryableError{Cause: errors.New("try again")}, KindRetryable},
		{"wrapped api error", fmt.Errorf("outer: %w", &APIError{StatusCode: 404}), KindAPI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "api", KindAPI.String())
	assert.Equal(t, "network", KindNetwork.String())
	assert.Equal(t, "retryable", KindRetryable.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}

func TestAPIErrorPredicates(t *testing.T) {
	tests := []struct {
		status    int
		auth      bool
		forbidden bool
		rateLimit bool
		server    bool
	}{
		{http.StatusUnauthorized, true, false, false, false},
		{http.StatusForbidden, false, true, false, false},
		{http.StatusTooManyRequests, false, false, true, false},
		{http.StatusInternalServerError, false, false, false, true},
		{http.StatusServiceUnavailable, false, false, false, true},
		{599, false, false, false, true},
		{http.StatusNotFound, false, false, false, false},
		{http.StatusBadRequest, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %d", tt.status), func(t *testing.T) {
			e := &APIError{StatusCode: tt.status}
			assert.Equal(t, tt.auth, e.IsAuthenticationError())
			assert.Equal(t, tt.forbidden, e.IsForbiddenError())
			assert.Equal(t, tt.rateLimit, e.IsRateLimitError())
			assert.Equal(t, tt.server, e.IsServerError())
		})
	}
}

func TestAPIErrorMessage(t *testing.T) {
	withField := &APIError{StatusCode: 400, Message: "Label must be unique", Field: "label"}
	assert.Equal(t, `linode: API error 400 on field "label": Label must be unique`, withField.Error())

	withoutField := &APIError{StatusCode: 500, Message: "Internal server error"}
	assert.Equal(t, "linode: API error 500: Internal server error", withoutField.Error())
}

func TestNetworkErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &NetworkError{Op: "get_instance", Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "get_instance")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestRetryableErrorMessage(t *testing.T) {
	cause := errors.New("busy")

	plain := &RetryableError{Cause: cause}
	assert.Equal(t, "linode: retryable: busy", plain.Error())
	assert.ErrorIs(t, plain, cause)

	withHint := &RetryableError{Cause: cause, RetryAfter: 2 * time.Second}
	assert.Contains(t, withHint.Error(), "retry after 2s")
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("boom"), false},
		{"401 authentication", &APIError{StatusCode: 401}, false},
		{"403 forbidden", &APIError{StatusCode: 403}, false},
		{"404 not found", &APIError{StatusCode: 404}, false},
		{"429 rate limit", &APIError{StatusCode: 429}, true},
		{"500 server error", &APIError{StatusCode: 500}, true},
		{"503 unavailable", &APIError{StatusCode: 503}, true},
		{"network error", &NetworkError{Op: "op", Cause: errors.New("reset")}, true},
		{"forced retryable", &RetryableError{Cause: errors.New("busy")}, true},
		{"bare timeout", timeoutError{}, true},
		{"wrapped 500", fmt.Errorf("call failed: %w", &APIError{StatusCode: 500}), true},
		{"wrapped 401", fmt.Errorf("call failed: %w", &APIError{StatusCode: 401}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}
