package api

import (
	"errors"
	"fmt"

	"github.com/invmate/stocktake/internal/domain/inventory"
	"github.com/invmate/stocktake/internal/repository"
)

// APIError represents a coded error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recoveryHint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to API error codes. Unknown errors map to nil
// and propagate as-is.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, inventory.ErrProjectNotFound):
		return &APIError{Code: "PROJECT_NOT_FOUND", Message: "project not found", RecoveryHint: "Check the project ID"}
	case errors.Is(err, inventory.ErrInvalidInput):
		return &APIError{Code: "VALIDATION_ERROR", Message: "invalid input", RecoveryHint: "Provide a non-empty project name"}
	case errors.Is(err, inventory.ErrProjectLocked):
		return &APIError{Code: "PROJECT_LOCKED", Message: "baseline already imported", RecoveryHint: "Create a new project to import a different baseline"}
	case errors.Is(err, repository.ErrPersistence):
		return &APIError{Code: "PERSISTENCE_ERROR", Message: "storage write failed; the change did not save", RecoveryHint: "Retry the operation"}
	default:
		return nil
	}
}
