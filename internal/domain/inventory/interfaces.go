package inventory

import "context"

// Store is the sole mutator and source of truth for projects. Every
// mutating call persists synchronously before returning, so an immediately
// following Get or List reflects it.
type Store interface {
	Create(ctx context.Context, name, description string) (*Project, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context) ([]Project, error)
	AttachItems(ctx context.Context, projectID string, items []InventoryItem) error
}
