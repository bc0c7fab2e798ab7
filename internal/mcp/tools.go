package mcp

import "github.com/google/jsonschema-go/jsonschema"

// ToolDefinition describes one MCP tool backed by an engine method.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema *jsonschema.Schema
}

// buildToolCatalog returns all available MCP tools
func buildToolCatalog() []ToolDefinition {
	return []ToolDefinition{
		{
			Name:        "create_project",
			Description: "Create a new stock-take project",
			InputSchema: objectSchema(map[string]*jsonschema.Schema{
				"name":        stringSchema("Project display name"),
				"description": stringSchema("Project description"),
			}, "name"),
		},
		{
			Name:        "list_projects",
			Description: "List all stock-take projects, most recently updated first",
			InputSchema: objectSchema(nil),
		},
		{
			Name:        "get_project",
			Description: "Get a project with its full item collection",
			InputSchema: objectSchema(map[string]*jsonschema.Schema{
				"id": stringSchema("Project ID"),
			}, "id"),
		},
		{
			Name:        "delete_project",
			Description: "Delete a project and all of its items. The first call arms a confirmation that expires after a few seconds; call again (or pass force) to delete. Deleting an absent project succeeds.",
			InputSchema: objectSchema(map[string]*jsonschema.Schema{
				"id":    stringSchema("Project ID"),
				"force": {Type: "boolean", Description: "Skip the two-step confirmation"},
			}, "id"),
		},
		{
			Name:        "import_baseline",
			Description: "Import the expected-quantity baseline (CSV with a header row, then name, code, quantity). A non-empty import locks the project permanently.",
			InputSchema: objectSchema(map[string]*jsonschema.Schema{
				"projectId": stringSchema("Project ID"),
				"content":    stringSchema("Raw delimited baseline text"),
			}, "projectId", "content"),
		},
		{
			Name:        "scan_code",
			Description: "Record one physically counted unit by product code. A match increments the item's counted quantity by one; an unknown code is reported, not an error.",
			InputSchema: objectSchema(map[string]*jsonschema.Schema{
				"projectId": stringSchema("Project ID"),
				"code":       stringSchema("Exact product code (case-sensitive)"),
			}, "projectId", "code"),
		},
		{
			Name:        "export_project",
			Description: "Export the reconciled state as CSV (name, code, expected, counted, variance)",
			InputSchema: objectSchema(map[string]*jsonschema.Schema{
				"projectId": stringSchema("Project ID"),
			}, "projectId"),
		},
		{
			Name:        "project_summary",
			Description: "Get totals, capped progress percent, and per-item variance with match/surplus/shortage status",
			InputSchema: objectSchema(map[string]*jsonschema.Schema{
				"projectId": stringSchema("Project ID"),
			}, "projectId"),
		},
		{
			Name:        "search_items",
			Description: "Filter a project's items by a case-insensitive substring of name or code",
			InputSchema: objectSchema(map[string]*jsonschema.Schema{
				"projectId": stringSchema("Project ID"),
				"query":      stringSchema("Substring to match against item name or code"),
			}, "projectId"),
		},
	}
}

func objectSchema(props map[string]*jsonschema.Schema, required ...string) *jsonschema.Schema {
	if props == nil {
		props = map[string]*jsonschema.Schema{}
	}
	return &jsonschema.Schema{
		Type:       "object",
		Properties: props,
		Required:   required,
	}
}

func stringSchema(description string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Description: description}
}
