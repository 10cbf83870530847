package linode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/giantswarm/mcp-linode/internal/logging"
)

const (
	// DefaultBaseURL is the public Linode API endpoint.
	DefaultBaseURL = "https://api.linode.com/v4"

	// DefaultTimeout bounds each individual HTTP attempt.
	DefaultTimeout = 30 * time.Second

	// maxResponseBytes caps how much of a response body is read. Linode
	// responses are small JSON documents; the cap guards against a
	// misbehaving endpoint.
	maxResponseBytes = 16 << 20
)

// Version is the client version reported in the User-Agent header.
// It is overridden at build time via -ldflags.
var Version = "dev"

// defaultUserAgent identifies this client to the API.
var defaultUserAgent = "mcp-linode/" + Version

// RequestHook observes every completed HTTP attempt made by the base
// client. status is 0 when the request failed before a response arrived.
type RequestHook func(op string, status int, duration time.Duration, err error)

// Client is the base Linode API client. It performs one HTTP round trip
// per operation and translates every failure into the package's error
// taxonomy. It holds no per-request mutable state; the only shared
// resource is the pooled transport, which is safe for concurrent use.
type Client struct {
	API

	baseURL    string
	token      string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
	hook       RequestHook

	closeOnce sync.Once
}

// ClientOption customizes a Client at construction time.
type ClientOption func(*Client)

// WithHTTPClient replaces the default pooled HTTP client. Useful for tests
// and for callers that need custom transport behavior.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout. Zero keeps the default.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithRateLimit enables client-side request pacing. Requests wait for the
// limiter before dispatch, sharing the budget across all concurrent calls
// on the client.
func WithRateLimit(qps float64, burst int) ClientOption {
	return func(c *Client) {
		if qps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(qps), burst)
		}
	}
}

// WithLogger sets the structured logger used for request-level debug logs.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRequestHook registers a hook observing every completed HTTP attempt.
// Used to feed instrumentation without coupling this package to it.
func WithRequestHook(hook RequestHook) ClientOption {
	return func(c *Client) {
		c.hook = hook
	}
}

// NewClient creates a base API client for the given endpoint and bearer
// token. The credentials are immutable for the lifetime of the client.
func NewClient(baseURL, token string, opts ...ClientOption) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if token == "" {
		return nil, fmt.Errorf("linode: API token is required")
	}

	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		token:     token,
		userAgent: defaultUserAgent,
		httpClient: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: newPooledTransport(),
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.API = API{d: c, meta: newMetadataCache(defaultMetadataTTL)}
	return c, nil
}

// newPooledTransport returns the shared connection pool used by a client.
// Keep-alives stay enabled so connections are reused across calls.
func newPooledTransport() *http.Transport {
	return &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
}

// Close releases the connection pool. It is safe to call multiple times;
// only the first call has an effect.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		if t, ok := c.httpClient.Transport.(*http.Transport); ok && t != nil {
			t.CloseIdleConnections()
		}
	})
}

// BaseURL returns the API endpoint the client was constructed with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do performs a single API round trip for the named operation. body, when
// non-nil, is marshaled as the JSON request body; out, when non-nil,
// receives the decoded JSON response. Missing response fields decode to
// their zero values: the API is externally versioned and may add or omit
// fields at any time.
func (c *Client) Do(ctx context.Context, op, method, path string, body, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("linode: %s: rate limit wait: %w", op, err)
		}
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("linode: %s: marshal request body: %w", op, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("linode: %s: build request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		nerr := &NetworkError{Op: op, Cause: err}
		c.observe(op, 0, start, nerr)
		return nerr
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		nerr := &NetworkError{Op: op, Cause: err}
		c.observe(op, resp.StatusCode, start, nerr)
		return nerr
	}

	if resp.StatusCode >= 400 {
		apiErr := classifyResponse(resp, data)
		c.observe(op, resp.StatusCode, start, apiErr)
		return apiErr
	}

	c.observe(op, resp.StatusCode, start, nil)

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("linode: %s: decode response: %w", op, err)
		}
	}
	return nil
}

// observe emits the request-level debug log and feeds the request hook.
func (c *Client) observe(op string, status int, start time.Time, err error) {
	duration := time.Since(start)
	if c.hook != nil {
		c.hook(op, status, duration, err)
	}
	if err != nil {
		c.logger.Debug("api request failed",
			logging.Operation(op),
			slog.Int("status", status),
			slog.Duration(logging.KeyDuration, duration),
			logging.Err(err))
		return
	}
	c.logger.Debug("api request",
		logging.Operation(op),
		slog.Int("status", status),
		slog.Duration(logging.KeyDuration, duration))
}

// apiErrorEnvelope is the wire shape of Linode error responses:
// {"errors": [{"reason": "...", "field": "..."}]}.
type apiErrorEnvelope struct {
	Errors []apiErrorEntry `json:"errors"`
}

type apiErrorEntry struct {
	Reason string `json:"reason"`
	Field  string `json:"field"`
}

// classifyResponse turns a non-2xx response into an *APIError. A structured
// error body wins; otherwise the status code alone determines the message.
func classifyResponse(resp *http.Response, body []byte) *APIError {
	var envelope apiErrorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Errors) > 0 {
		first := envelope.Errors[0]
		if first.Reason != "" || first.Field != "" {
			return &APIError{
				StatusCode: resp.StatusCode,
				Message:    first.Reason,
				Field:      first.Field,
			}
		}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    "Authentication failed. Check that the API token is valid.",
		}
	case resp.StatusCode == http.StatusForbidden:
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    "Access forbidden. The token does not have permission for this operation.",
		}
	case resp.StatusCode == http.StatusTooManyRequests:
		msg := "Rate limit exceeded."
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			msg = fmt.Sprintf("Rate limit exceeded. Retry after %s seconds.", retryAfter)
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    msg,
		}
	case resp.StatusCode >= 500:
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    "Internal server error. The Linode API is experiencing problems.",
		}
	default:
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("API request failed with status %d", resp.StatusCode),
		}
	}
}
