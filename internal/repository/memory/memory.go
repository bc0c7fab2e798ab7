package memory

import (
	"context"
	"sync"

	"github.com/invmate/stocktake/internal/repository"
)

// Backend is an in-memory repository.Backend. Contents are lost when the
// process exits; tests use it to run the full stack without a database.
type Backend struct {
	mu       sync.Mutex
	snapshot []byte
}

// New creates an empty in-memory backend.
func New() *Backend {
	return &Backend{}
}

// Load returns the current snapshot, or repository.ErrNotFound before the
// first Save.
func (b *Backend) Load(ctx context.Context) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.snapshot == nil {
		return nil, repository.ErrNotFound
	}
	out := make([]byte, len(b.snapshot))
	copy(out, b.snapshot)
	return out, nil
}

// Save replaces the snapshot.
func (b *Backend) Save(ctx context.Context, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.snapshot = make([]byte, len(data))
	copy(b.snapshot, data)
	return nil
}
