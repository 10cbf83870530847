package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriterCapturesStatusCode(t *testing.T) {
	for _, code := range []int{http.StatusOK, http.StatusCreated, http.StatusNotFound, http.StatusInternalServerError} {
		recorder := httptest.NewRecorder()
		rw := newResponseWriter(recorder)

		rw.WriteHeader(code)

		assert.Equal(t, code, rw.statusCode)
		assert.True(t, rw.written)
	}
}

func TestResponseWriterDefaultsTo200(t *testing.T) {
	recorder := httptest.NewRecorder()
	rw := newResponseWriter(recorder)

	_, err := rw.Write([]byte("hello"))
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, rw.statusCode)
	assert.True(t, rw.written)
}

func TestResponseWriterOnlyFirstWriteHeaderCounts(t *testing.T) {
	recorder := httptest.NewRecorder()
	rw := newResponseWriter(recorder)

	rw.WriteHeader(http.StatusAccepted)
	rw.WriteHeader(http.StatusBadRequest)

	assert.Equal(t, http.StatusAccepted, rw.statusCode)
}

func TestResponseWriterUnwrap(t *testing.T) {
	recorder := httptest.NewRecorder()
	rw := newResponseWriter(recorder)

	assert.Equal(t, recorder, rw.Unwrap())
	assert.NotPanics(t, rw.Flush)
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"mcp endpoint unchanged", "/mcp", "/mcp"},
		{"health endpoint unchanged", "/healthz", "/healthz"},
		{"readiness endpoint unchanged", "/readyz", "/readyz"},
		{"metrics endpoint unchanged", "/metrics", "/metrics"},
		{"sse endpoint unchanged", "/sse", "/sse"},
		{"message endpoint unchanged", "/message", "/message"},
		{"session id normalized", "/mcp/abc123xyz890def456", "/mcp/:session"},
		{"session id with dashes normalized", "/mcp/session-id-12345", "/mcp/:session"},
		{"uuid normalized", "/api/resources/550e8400-e29b-41d4-a716-446655440000", "/api/resources/:uuid"},
		{"numeric id normalized", "/api/items/12345", "/api/items/:id"},
		{"numeric id in middle of path", "/api/items/12345/details", "/api/items/:id/details"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizePath(tt.input))
		})
	}
}

func TestHTTPMetricsNilProviderPassesThrough(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	middleware := HTTPMetrics(nil)(handler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	middleware.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHTTPMetricsCapturesErrorStatus(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	middleware := HTTPMetrics(nil)(handler)

	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	rec := httptest.NewRecorder()

	middleware.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
