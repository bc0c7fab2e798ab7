package mcp

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/invmate/stocktake/internal/api"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `Stock-take reconciliation engine. Typical flow:
create_project, import_baseline (locks the project), then scan_code once per
counted unit. project_summary shows live variance; export_project produces
the final CSV report. An unmatched scan_code is a normal outcome, not an
error.`

// Config contains server configuration.
type Config struct {
	Handler *api.Handler
	Logger  *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "stocktake",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Handler)

	return server
}

// registerTools binds every catalog entry to the shared API handler. Tool
// arguments are forwarded as raw JSON so the dispatch and error mapping stay
// identical across the MCP and JSON-RPC transports.
func registerTools(server *sdkmcp.Server, handler *api.Handler) {
	for _, def := range buildToolCatalog() {
		server.AddTool(&sdkmcp.Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.InputSchema,
		}, toolHandler(handler, def.Name))
	}
}

func toolHandler(handler *api.Handler, method string) sdkmcp.ToolHandler {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
		var params json.RawMessage
		if req != nil && req.Params != nil {
			params = req.Params.Arguments
		}

		result, err := handler.Handle(ctx, method, params)
		if err != nil {
			return &sdkmcp.CallToolResult{
				IsError: true,
				Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: err.Error()}},
			}, nil
		}

		data, err := json.Marshal(result)
		if err != nil {
			return nil, err
		}
		return &sdkmcp.CallToolResult{
			Content:           []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
			StructuredContent: result,
		}, nil
	}
}
