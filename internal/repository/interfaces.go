package repository

import "context"

// Backend persists the project collection as a single opaque snapshot.
// Load returns ErrNotFound when no snapshot has been written yet; any other
// error indicates a storage fault. Save must be durable before it returns so
// that an immediately following Load observes the new snapshot.
type Backend interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}
