package api

import (
	"github.com/invmate/stocktake/internal/domain/inventory"
)

type CreateProjectParams struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type GetProjectParams struct {
	ID string `json:"id"`
}

type DeleteProjectParams struct {
	ID string `json:"id"`
	// Force skips the two-step confirmation.
	Force bool `json:"force,omitempty"`
}

type ImportBaselineParams struct {
	ProjectID string `json:"projectId"`
	Content   string `json:"content"`
}

type ScanParams struct {
	ProjectID string `json:"projectId"`
	Code      string `json:"code"`
}

type ExportProjectParams struct {
	ProjectID string `json:"projectId"`
}

type ProjectSummaryParams struct {
	ProjectID string `json:"projectId"`
}

type SearchItemsParams struct {
	ProjectID string `json:"projectId"`
	Query     string `json:"query,omitempty"`
}

type ListProjectsResponse struct {
	Projects []inventory.Project `json:"projects"`
}

type DeleteProjectResponse struct {
	// Status is "deleted" or "confirm_required".
	Status string `json:"status"`
	// ConfirmWithinSeconds is set when confirmation is pending.
	ConfirmWithinSeconds int `json:"confirmWithinSeconds,omitempty"`
}

type ImportBaselineResponse struct {
	ProjectID string `json:"projectId"`
	Items     int    `json:"items"`
	Locked    bool   `json:"locked"`
}

type ExportProjectResponse struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type ProjectSummaryResponse struct {
	ProjectID string                   `json:"projectId"`
	Name      string                   `json:"name"`
	Summary   inventory.ProjectSummary `json:"summary"`
	Items     []inventory.ItemVariance `json:"items"`
}

type SearchItemsResponse struct {
	Items []inventory.InventoryItem `json:"items"`
}
