package linode

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...ClientOption) *Client {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	c, err := NewClient(ts.URL, "test-token", opts...)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestNewClientRequiresToken(t *testing.T) {
	_, err := NewClient("", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API token is required")
}

func TestNewClientDefaultsBaseURL(t *testing.T) {
	c, err := NewClient("", "test-token")
	require.NoError(t, err)
	defer c.Close()
	assert.Equal(t, DefaultBaseURL, c.BaseURL())
}

func TestNewClientTrimsTrailingSlash(t *testing.T) {
	c, err := NewClient("https://example.com/v4/", "test-token")
	require.NoError(t, err)
	defer c.Close()
	assert.Equal(t, "https://example.com/v4", c.BaseURL())
}

func TestClientSendsStandardHeaders(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Contains(t, r.Header.Get("User-Agent"), "mcp-linode/")
		assert.Empty(t, r.Header.Get("Content-Type"), "GET carries no body")
		_, _ = w.Write([]byte(`{"data": [], "page": 1, "pages": 1, "results": 0}`))
	})

	_, err := c.ListInstances(t.Context())
	require.NoError(t, err)
}

func TestClientSendsJSONBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "us-east", body["region"])
		assert.Equal(t, "g6-nanode-1", body["type"])

		// Optional zero-valued fields stay off the wire entirely.
		_, present := body["backups_enabled"]
		assert.False(t, present)
		_, present = body["firewall_id"]
		assert.False(t, present)

		_, _ = w.Write([]byte(`{"id": 123, "label": "web-1", "status": "provisioning"}`))
	})

	inst, err := c.CreateInstance(t.Context(), InstanceCreateOptions{
		Region: "us-east",
		Type:   "g6-nanode-1",
	})
	require.NoError(t, err)
	assert.Equal(t, 123, inst.ID)
	assert.Equal(t, "provisioning", inst.Status)
}

func TestClientCustomUserAgent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "custom-agent/1.0", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`{"data": []}`))
	}, WithUserAgent("custom-agent/1.0"))

	_, err := c.ListInstances(t.Context())
	require.NoError(t, err)
}

func TestClientDecodesErrorEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors": [{"reason": "Label must be 3-64 characters", "field": "label"}]}`))
	})

	_, err := c.CreateInstance(t.Context(), InstanceCreateOptions{Region: "us-east", Type: "g6-nanode-1"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Label must be 3-64 characters", apiErr.Message)
	assert.Equal(t, "label", apiErr.Field)
}

func TestClientSynthesizesMessages(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		headers    map[string]string
		wantInMsg  string
		wantStatus int
	}{
		{
			name:       "401 without body",
			status:     http.StatusUnauthorized,
			wantInMsg:  "Authentication failed",
			wantStatus: 401,
		},
		{
			name:       "403 without body",
			status:     http.StatusForbidden,
			wantInMsg:  "Access forbidden",
			wantStatus: 403,
		},
		{
			name:       "429 with Retry-After",
			status:     http.StatusTooManyRequests,
			headers:    map[string]string{"Retry-After": "20"},
			wantInMsg:  "Retry after 20 seconds",
			wantStatus: 429,
		},
		{
			name:       "429 without Retry-After",
			status:     http.StatusTooManyRequests,
			wantInMsg:  "Rate limit exceeded.",
			wantStatus: 429,
		},
		{
			name:       "500 without body",
			status:     http.StatusInternalServerError,
			wantInMsg:  "Internal server error",
			wantStatus: 500,
		},
		{
			name:       "404 without body",
			status:     http.StatusNotFound,
			wantInMsg:  "API request failed with status 404",
			wantStatus: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tt.headers {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tt.status)
			})

			_, err := c.ListInstances(t.Context())
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
			assert.Contains(t, apiErr.Message, tt.wantInMsg)
		})
	}
}

func TestClientPermissiveDecode(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// Unknown fields and missing fields must both be tolerated.
		_, _ = w.Write([]byte(`{"id": 7, "label": "web-1", "brand_new_field": {"nested": true}}`))
	})

	inst, err := c.GetInstance(t.Context(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, inst.ID)
	assert.Equal(t, "web-1", inst.Label)
	assert.Empty(t, inst.Region, "absent fields decode to zero values")
	assert.Nil(t, inst.IPv4)
}

func TestClientWrapsTransportFailures(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c, err := NewClient(ts.URL, "test-token")
	require.NoError(t, err)
	defer c.Close()

	// Closing the server forces a connect failure on the next call.
	ts.Close()

	_, err = c.ListInstances(t.Context())
	require.Error(t, err)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, "list_instances", netErr.Op)
	assert.True(t, IsRetryable(err))
}

func TestClientRequestHook(t *testing.T) {
	type observation struct {
		op     string
		status int
		err    error
	}
	var seen []observation

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/linode/instances/404" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"id": 1}`))
	}, WithRequestHook(func(op string, status int, duration time.Duration, err error) {
		seen = append(seen, observation{op: op, status: status, err: err})
	}))

	_, err := c.GetInstance(t.Context(), 1)
	require.NoError(t, err)
	_, err = c.GetInstance(t.Context(), 404)
	require.Error(t, err)

	require.Len(t, seen, 2)
	assert.Equal(t, "get_instance", seen[0].op)
	assert.Equal(t, http.StatusOK, seen[0].status)
	assert.NoError(t, seen[0].err)
	assert.Equal(t, http.StatusNotFound, seen[1].status)
	assert.Error(t, seen[1].err)
}

func TestClientRateLimiterPacesRequests(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": []}`))
	}, WithRateLimit(50, 1))

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := c.ListInstances(t.Context())
		require.NoError(t, err)
	}

	// At 50 qps with burst 1, the second and third requests each wait
	// roughly 20ms for a token.
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestClientCloseIdempotent(t *testing.T) {
	c, err := NewClient("", "test-token")
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		c.Close()
		c.Close()
	})
}
