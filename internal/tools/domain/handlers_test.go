package domain

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/mcp-linode/internal/config"
	"github.com/giantswarm/mcp-linode/internal/linode"
	"github.com/giantswarm/mcp-linode/internal/server"
)

func newTestServerContext(t *testing.T, handler http.HandlerFunc, allowDestructive bool) *server.ServerContext {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	sc, err := server.NewServerContext(t.Context(),
		server.WithEnvironments(&config.Config{
			DefaultEnvironment: config.DefaultEnvironmentName,
			Environments: map[string]config.Environment{
				config.DefaultEnvironmentName: {Token: "test-token", BaseURL: ts.URL},
			},
		}),
		server.WithAllowDestructive(allowDestructive),
		server.WithClientFactory(func(env config.Environment) (*linode.RetryingClient, error) {
			base, err := linode.NewClient(env.BaseURL, env.Token)
			if err != nil {
				return nil, err
			}
			return linode.NewRetryingClient(base, linode.RetryPolicy{MaxRetries: 0}), nil
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

func requestWithArgs(args map[string]interface{}) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = args
	return request
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestHandleCreateDomainRequiresSOAEmailForMasterZones(t *testing.T) {
	sc := newTestServerContext(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no API call expected")
	}, false)

	result, err := handleCreateDomain(t.Context(), requestWithArgs(map[string]interface{}{
		"domain": "example.com",
		"type":   "master",
	}), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "soa_email")
}

func TestHandleCreateDomainMasterZone(t *testing.T) {
	sc := newTestServerContext(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/domains", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "example.com", body["domain"])
		assert.Equal(t, "master", body["type"])
		assert.Equal(t, "admin@example.com", body["soa_email"])

		_, _ = w.Write([]byte(`{"id": 42, "domain": "example.com", "type": "master", "status": "active"}`))
	}, false)

	result, err := handleCreateDomain(t.Context(), requestWithArgs(map[string]interface{}{
		"domain":    "example.com",
		"type":      "master",
		"soa_email": "admin@example.com",
	}), sc)
	require.NoError(t, err)
	require.False(t, result.IsError)

	var dom linode.Domain
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &dom))
	assert.Equal(t, 42, dom.ID)
}

func TestHandleCreateDomainSlaveZoneWithoutSOAEmail(t *testing.T) {
	sc := newTestServerContext(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": 43, "domain": "mirror.example.com", "type": "slave"}`))
	}, false)

	result, err := handleCreateDomain(t.Context(), requestWithArgs(map[string]interface{}{
		"domain": "mirror.example.com",
		"type":   "slave",
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)
}

func TestHandleCreateDomainRecord(t *testing.T) {
	sc := newTestServerContext(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/domains/42/records", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "MX", body["type"])
		assert.Equal(t, "mail.example.com", body["target"])
		assert.Equal(t, float64(10), body["priority"])

		_, _ = w.Write([]byte(`{"id": 7, "type": "MX", "target": "mail.example.com", "priority": 10}`))
	}, false)

	result, err := handleCreateDomainRecord(t.Context(), requestWithArgs(map[string]interface{}{
		"domain_id": float64(42),
		"type":      "MX",
		"target":    "mail.example.com",
		"priority":  float64(10),
	}), sc)
	require.NoError(t, err)
	require.False(t, result.IsError)

	var record linode.DomainRecord
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &record))
	assert.Equal(t, 7, record.ID)
	assert.Equal(t, 10, record.Priority)
}

func TestHandleDeleteDomainBlocked(t *testing.T) {
	sc := newTestServerContext(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no API call expected")
	}, false)

	result, err := handleDeleteDomain(t.Context(), requestWithArgs(map[string]interface{}{
		"domain_id": float64(42),
	}), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleDeleteDomainRecordConfirmed(t *testing.T) {
	sc := newTestServerContext(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/domains/42/records/7", r.URL.Path)
		_, _ = w.Write([]byte(`{}`))
	}, false)

	result, err := handleDeleteDomainRecord(t.Context(), requestWithArgs(map[string]interface{}{
		"domain_id": float64(42),
		"record_id": float64(7),
		"confirm":   true,
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), "deleted")
}

func TestHandleListDomainRecords(t *testing.T) {
	sc := newTestServerContext(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/domains/42/records", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"data": [{"id": 7, "type": "A", "name": "www", "target": "203.0.113.10"}],
			"page": 1, "pages": 1, "results": 1
		}`))
	}, false)

	result, err := handleListDomainRecords(t.Context(), requestWithArgs(map[string]interface{}{
		"domain_id": float64(42),
	}), sc)
	require.NoError(t, err)
	require.False(t, result.IsError)

	var page linode.PagedResponse[linode.DomainRecord]
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &page))
	require.Len(t, page.Data, 1)
	assert.Equal(t, "www", page.Data[0].Name)
}
