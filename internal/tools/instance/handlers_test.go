package instance

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

func TestHandleListInstances(t *testing.T) {
	sc := newTestServerContext(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/linode/instances", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{
			"data": [{"id": 123, "label": "web-1", "region": "us-east", "status": "running"}],
			"page": 1, "pages": 1, "results": 1
		}`))
	}, false)

	result, err := handleListInstances(t.Context(), requestWithArgs(nil), sc)
	require.NoError(t, err)
	require.False(t, result.IsError)

	var page linode.PagedResponse[linode.Instance]
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &page))
	require.Len(t, page.Data, 1)
	assert.Equal(t, 123, page.Data[0].ID)
	assert.Equal(t, "web-1", page.Data[0].Label)
}

func TestHandleGetInstance(t *testing.T) {
	sc := newTestServerContext(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/linode/instances/123", r.URL.Path)
		_, _ = w.Write([]byte(`{"id": 123, "label": "web-1", "status": "running"}`))
	}, false)

	result, err := handleGetInstance(t.Context(), requestWithArgs(map[string]interface{}{
		"instance_id": float64(123),
	}), sc)
	require.NoError(t, err)
	require.False(t, result.IsError)

	var inst linode.Instance
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &inst))
	assert.Equal(t, "running", inst.Status)
}

func TestHandleGetInstanceMissingArg(t *testing.T) {
	sc := newTestServerContext(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no API call expected")
	}, false)

	result, err := handleGetInstance(t.Context(), requestWithArgs(nil), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "instance_id")
}

func TestHandleGetInstanceAPIError(t *testing.T) {
	sc := newTestServerContext(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errors": [{"reason": "Not found"}]}`))
	}, false)

	result, err := handleGetInstance(t.Context(), requestWithArgs(map[string]interface{}{
		"instance_id": float64(999),
	}), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "Not found")
}

func TestHandleCreateInstance(t *testing.T) {
	sc := newTestServerContext(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/linode/instances", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "us-east", body["region"])
		assert.Equal(t, "g6-standard-2", body["type"])
		assert.NotContains(t, body, "firewall_id", "omitted optional fields stay absent")

		_, _ = w.Write([]byte(`{"id": 42, "label": "new-instance", "status": "provisioning"}`))
	}, false)

	result, err := handleCreateInstance(t.Context(), requestWithArgs(map[string]interface{}{
		"region": "us-east",
		"type":   "g6-standard-2",
		"label":  "new-instance",
	}), sc)
	require.NoError(t, err)
	require.False(t, result.IsError)

	var inst linode.Instance
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &inst))
	assert.Equal(t, 42, inst.ID)
}

func TestHandleCreateInstanceImageWithoutRootPass(t *testing.T) {
	sc := newTestServerContext(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no API call expected")
	}, false)

	result, err := handleCreateInstance(t.Context(), requestWithArgs(map[string]interface{}{
		"region": "us-east",
		"type":   "g6-standard-2",
		"image":  "linode/ubuntu24.04",
	}), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "root_pass")
}

func TestHandleDeleteInstanceBlocked(t *testing.T) {
	sc := newTestServerContext(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no API call expected")
	}, false)

	result, err := handleDeleteInstance(t.Context(), requestWithArgs(map[string]interface{}{
		"instance_id": float64(123),
	}), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "confirmation")
}

func TestHandleDeleteInstanceConfirmed(t *testing.T) {
	sc := newTestServerContext(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/linode/instances/123", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}, false)

	result, err := handleDeleteInstance(t.Context(), requestWithArgs(map[string]interface{}{
		"instance_id": float64(123),
		"confirm":     true,
	}), sc)
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), "deleted")
}

func TestHandlePowerActions(t *testing.T) {
	cases := []struct {
		name string
		path string
		call func(sc *server.ServerContext) (*mcp.CallToolResult, error)
	}{
		{
			name: "boot",
			path: "/linode/instances/7/boot",
			call: func(sc *server.ServerContext) (*mcp.CallToolResult, error) {
				return handleBootInstance(t.Context(), requestWithArgs(map[string]interface{}{"instance_id": float64(7)}), sc)
			},
		},
		{
			name: "reboot",
			path: "/linode/instances/7/reboot",
			call: func(sc *server.ServerContext) (*mcp.CallToolResult, error) {
				return handleRebootInstance(t.Context(), requestWithArgs(map[string]interface{}{"instance_id": float64(7)}), sc)
			},
		},
		{
			name: "shutdown",
			path: "/linode/instances/7/shutdown",
			call: func(sc *server.ServerContext) (*mcp.CallToolResult, error) {
				return handleShutdownInstance(t.Context(), requestWithArgs(map[string]interface{}{"instance_id": float64(7)}), sc)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sc := newTestServerContext(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, tc.path, r.URL.Path)
				_, _ = w.Write([]byte(`{}`))
			}, false)

			result, err := tc.call(sc)
			require.NoError(t, err)
			assert.False(t, result.IsError)
		})
	}
}

func TestHandleResizeInstanceAllowDestructive(t *testing.T) {
	sc := newTestServerContext(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/linode/instances/7/resize", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "g6-standard-4", body["type"])

		_, _ = w.Write([]byte(`{}`))
	}, true)

	result, err := handleResizeInstance(t.Context(), requestWithArgs(map[string]interface{}{
		"instance_id": float64(7),
		"type":        "g6-standard-4",
	}), sc)
	require.NoError(t, err)
	assert.False(t, result.IsError)
}
