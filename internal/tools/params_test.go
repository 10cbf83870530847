package tools

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/mcp-linode/internal/config"
	"github.com/giantswarm/mcp-linode/internal/server"
)

func requestWithArgs(args map[string]interface{}) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = args
	return request
}

func TestStringArg(t *testing.T) {
	request := requestWithArgs(map[string]interface{}{"label": "web-1"})

	value, err := StringArg(request, "label")
	require.NoError(t, err)
	assert.Equal(t, "web-1", value)

	_, err = StringArg(request, "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"missing"`)

	_, err = StringArg(requestWithArgs(map[string]interface{}{"label": ""}), "label")
	assert.Error(t, err, "empty string counts as missing")
}

func TestIntArg(t *testing.T) {
	// JSON decoding yields float64 for numbers.
	request := requestWithArgs(map[string]interface{}{"instance_id": float64(123)})

	value, err := IntArg(request, "instance_id")
	require.NoError(t, err)
	assert.Equal(t, 123, value)

	request = requestWithArgs(map[string]interface{}{"instance_id": 456})
	value, err = IntArg(request, "instance_id")
	require.NoError(t, err)
	assert.Equal(t, 456, value)

	_, err = IntArg(request, "missing")
	assert.Error(t, err)

	_, err = IntArg(requestWithArgs(map[string]interface{}{"instance_id": "123"}), "instance_id")
	assert.Error(t, err, "string is not accepted as an integer")
}

func TestBoolArg(t *testing.T) {
	assert.True(t, BoolArg(requestWithArgs(map[string]interface{}{"confirm": true}), "confirm"))
	assert.False(t, BoolArg(requestWithArgs(map[string]interface{}{"confirm": false}), "confirm"))
	assert.False(t, BoolArg(requestWithArgs(nil), "confirm"))
	assert.False(t, BoolArg(requestWithArgs(map[string]interface{}{"confirm": "true"}), "confirm"))
}

func TestStringSliceArg(t *testing.T) {
	request := requestWithArgs(map[string]interface{}{
		"tags": []interface{}{"prod", "web", 7},
	})
	assert.Equal(t, []string{"prod", "web"}, StringSliceArg(request, "tags"))

	request = requestWithArgs(map[string]interface{}{"tags": []string{"a", "b"}})
	assert.Equal(t, []string{"a", "b"}, StringSliceArg(request, "tags"))

	assert.Nil(t, StringSliceArg(requestWithArgs(nil), "tags"))
}

func TestEnvironmentArg(t *testing.T) {
	assert.Equal(t, "staging", EnvironmentArg(requestWithArgs(map[string]interface{}{"environment": "staging"})))
	assert.Empty(t, EnvironmentArg(requestWithArgs(nil)))
}

func newToolTestContext(t *testing.T, envs map[string]config.Environment) *server.ServerContext {
	t.Helper()
	sc, err := server.NewServerContext(t.Context(),
		server.WithEnvironments(&config.Config{
			DefaultEnvironment: config.DefaultEnvironmentName,
			Environments:       envs,
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

func TestAddEnvironmentParamSingleEnvironment(t *testing.T) {
	sc := newToolTestContext(t, map[string]config.Environment{
		config.DefaultEnvironmentName: {Token: "t"},
	})

	assert.Empty(t, AddEnvironmentParam(sc), "single environment needs no selector")
}

func TestAddEnvironmentParamMultipleEnvironments(t *testing.T) {
	sc := newToolTestContext(t, map[string]config.Environment{
		config.DefaultEnvironmentName: {Token: "t"},
		"staging":                     {Token: "s"},
	})

	assert.Len(t, AddEnvironmentParam(sc), 1)
}
