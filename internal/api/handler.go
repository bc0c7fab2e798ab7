package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/invmate/stocktake/internal/domain/inventory"
)

// Dispatch-level sentinels. Transports branch on these to pick the matching
// protocol error code.
var (
	// ErrUnknownMethod reports a method name outside the dispatch table.
	ErrUnknownMethod = errors.New("unknown method")
	// ErrInvalidParams reports a params payload that failed to decode.
	ErrInvalidParams = errors.New("invalid params")
)

// EngineService defines the engine operations needed by the API layer.
type EngineService interface {
	CreateProject(ctx context.Context, name, description string) (*inventory.Project, error)
	DeleteProject(ctx context.Context, id string) error
	GetProject(ctx context.Context, id string) (*inventory.Project, error)
	ListProjects(ctx context.Context) ([]inventory.Project, error)
	ImportBaseline(ctx context.Context, projectID, rawText string) error
	Scan(ctx context.Context, projectID, code string) (inventory.ScanOutcome, error)
	ExportProject(ctx context.Context, projectID string) (string, error)
}

// Handler dispatches engine methods for the transports.
type Handler struct {
	engine        EngineService
	deleteGuard   *inventory.DeleteGuard
	confirmWindow time.Duration
}

// NewHandler creates a new API handler.
func NewHandler(engine EngineService) *Handler {
	return &Handler{
		engine:        engine,
		deleteGuard:   inventory.NewDeleteGuard(inventory.DefaultConfirmWindow),
		confirmWindow: inventory.DefaultConfirmWindow,
	}
}

// Handle dispatches one request to the engine.
func (h *Handler) Handle(ctx context.Context, method string, params json.RawMessage) (any, error) {
	switch method {
	case "create_project":
		var req CreateProjectParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		proj, err := h.engine.CreateProject(ctx, req.Name, req.Description)
		if err != nil {
			return nil, mapError(err)
		}
		return proj, nil

	case "list_projects":
		projects, err := h.engine.ListProjects(ctx)
		if err != nil {
			return nil, mapError(err)
		}
		if projects == nil {
			projects = []inventory.Project{}
		}
		return ListProjectsResponse{Projects: projects}, nil

	case "get_project":
		var req GetProjectParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		proj, err := h.engine.GetProject(ctx, req.ID)
		if err != nil {
			return nil, mapError(err)
		}
		return proj, nil

	case "delete_project":
		var req DeleteProjectParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if !req.Force && !h.deleteGuard.Request(req.ID) {
			return DeleteProjectResponse{
				Status:               "confirm_required",
				ConfirmWithinSeconds: int(h.confirmWindow.Seconds()),
			}, nil
		}
		if err := h.engine.DeleteProject(ctx, req.ID); err != nil {
			return nil, mapError(err)
		}
		return DeleteProjectResponse{Status: "deleted"}, nil

	case "import_baseline":
		var req ImportBaselineParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.engine.ImportBaseline(ctx, req.ProjectID, req.Content); err != nil {
			return nil, mapError(err)
		}
		proj, err := h.engine.GetProject(ctx, req.ProjectID)
		if err != nil {
			return nil, mapError(err)
		}
		return ImportBaselineResponse{
			ProjectID: proj.ID,
			Items:     len(proj.Items),
			Locked:    proj.IsLocked,
		}, nil

	case "scan_code":
		var req ScanParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		outcome, err := h.engine.Scan(ctx, req.ProjectID, req.Code)
		if err != nil {
			return nil, mapError(err)
		}
		return outcome, nil

	case "export_project":
		var req ExportProjectParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		proj, err := h.engine.GetProject(ctx, req.ProjectID)
		if err != nil {
			return nil, mapError(err)
		}
		content, err := h.engine.ExportProject(ctx, req.ProjectID)
		if err != nil {
			return nil, mapError(err)
		}
		return ExportProjectResponse{
			Filename: inventory.ExportFilename(proj.Name),
			Content:  content,
		}, nil

	case "project_summary":
		var req ProjectSummaryParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		proj, err := h.engine.GetProject(ctx, req.ProjectID)
		if err != nil {
			return nil, mapError(err)
		}
		return ProjectSummaryResponse{
			ProjectID: proj.ID,
			Name:      proj.Name,
			Summary:   inventory.Summarize(proj.Items),
			Items:     inventory.ItemVariances(proj.Items),
		}, nil

	case "search_items":
		var req SearchItemsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		proj, err := h.engine.GetProject(ctx, req.ProjectID)
		if err != nil {
			return nil, mapError(err)
		}
		return SearchItemsResponse{Items: inventory.FilterItems(proj.Items, req.Query)}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}
}

func decodeParams(params json.RawMessage, out any) error {
	if len(params) == 0 {
		return nil
	}
	if err := json.Unmarshal(params, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return nil
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
