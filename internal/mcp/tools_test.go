package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/invmate/stocktake/internal/api"
	"github.com/invmate/stocktake/internal/domain/inventory"
	"github.com/invmate/stocktake/internal/repository/memory"
	"github.com/invmate/stocktake/internal/store"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

func newAPIHandler(t *testing.T) *api.Handler {
	t.Helper()
	engine := inventory.NewService(store.New(memory.New(), nil), nil)
	return api.NewHandler(engine)
}

func TestBuildToolCatalog(t *testing.T) {
	catalog := buildToolCatalog()
	require.Len(t, catalog, 9)

	seen := map[string]bool{}
	for _, def := range catalog {
		require.NotEmpty(t, def.Name)
		require.NotEmpty(t, def.Description)
		require.NotNil(t, def.InputSchema)
		require.Equal(t, "object", def.InputSchema.Type)
		for _, name := range def.InputSchema.Required {
			require.Contains(t, def.InputSchema.Properties, name,
				"required property %q of %s missing from schema", name, def.Name)
		}
		require.False(t, seen[def.Name], "duplicate tool %s", def.Name)
		seen[def.Name] = true
	}
	for _, name := range []string{
		"create_project", "list_projects", "get_project", "delete_project",
		"import_baseline", "scan_code", "export_project", "project_summary",
		"search_items",
	} {
		require.True(t, seen[name], "catalog missing %s", name)
	}
}

func TestNewServer(t *testing.T) {
	server := NewServer(Config{Handler: newAPIHandler(t)})
	require.NotNil(t, server)
}

func callTool(t *testing.T, handler *api.Handler, method string, args any) *sdkmcp.CallToolResult {
	t.Helper()

	raw, err := json.Marshal(args)
	require.NoError(t, err)

	result, err := toolHandler(handler, method)(context.Background(), &sdkmcp.CallToolRequest{
		Params: &sdkmcp.CallToolParamsRaw{Arguments: json.RawMessage(raw)},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func toolText(t *testing.T, result *sdkmcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestToolHandler_RoundTrip(t *testing.T) {
	handler := newAPIHandler(t)

	result := callTool(t, handler, "create_project", map[string]any{"name": "Depot"})
	require.False(t, result.IsError)

	var created inventory.Project
	require.NoError(t, json.Unmarshal([]byte(toolText(t, result)), &created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Depot", created.Name)

	result = callTool(t, handler, "get_project", map[string]any{"id": created.ID})
	require.False(t, result.IsError)
	require.NotNil(t, result.StructuredContent)

	var got inventory.Project
	require.NoError(t, json.Unmarshal([]byte(toolText(t, result)), &got))
	require.Equal(t, created.ID, got.ID)
}

func TestToolHandler_EngineErrorIsToolError(t *testing.T) {
	handler := newAPIHandler(t)

	result := callTool(t, handler, "get_project", map[string]any{"id": "missing"})
	require.True(t, result.IsError)
	require.Contains(t, toolText(t, result), "PROJECT_NOT_FOUND")
}
