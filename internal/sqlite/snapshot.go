package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/invmate/stocktake/internal/repository"
)

// DefaultSnapshotKey is the key under which the project collection lives.
const DefaultSnapshotKey = "projects"

// SnapshotBackend implements repository.Backend over a keyed blob row.
type SnapshotBackend struct {
	db  *DB
	key string
}

// NewSnapshotBackend creates a backend bound to one snapshot key.
func NewSnapshotBackend(db *DB, key string) *SnapshotBackend {
	if key == "" {
		key = DefaultSnapshotKey
	}
	return &SnapshotBackend{db: db, key: key}
}

// Load reads the snapshot blob for the backend's key.
func (b *SnapshotBackend) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := b.db.QueryRowContext(ctx,
		`SELECT data FROM snapshots WHERE key = ?`, b.key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return data, nil
}

// Save writes the snapshot blob, replacing any previous one for the key.
func (b *SnapshotBackend) Save(ctx context.Context, data []byte) error {
	_, err := b.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, b.key, data, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}
