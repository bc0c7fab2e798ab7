package sqlite

import (
	"context"
	"testing"

	"github.com/invmate/stocktake/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestSnapshotBackend_LoadMissing(t *testing.T) {
	ctx := context.Background()
	backend := NewSnapshotBackend(NewTestDB(t), "")

	_, err := backend.Load(ctx)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSnapshotBackend_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	backend := NewSnapshotBackend(NewTestDB(t), "")

	payload := []byte(`[{"id":"p1","name":"Warehouse"}]`)
	require.NoError(t, backend.Save(ctx, payload))

	got, err := backend.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestSnapshotBackend_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	backend := NewSnapshotBackend(NewTestDB(t), "")

	require.NoError(t, backend.Save(ctx, []byte(`first`)))
	require.NoError(t, backend.Save(ctx, []byte(`second`)))

	got, err := backend.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, []byte(`second`), got)
}

func TestSnapshotBackend_KeysAreIsolated(t *testing.T) {
	ctx := context.Background()
	db := NewTestDB(t)

	a := NewSnapshotBackend(db, "a")
	b := NewSnapshotBackend(db, "b")

	require.NoError(t, a.Save(ctx, []byte(`alpha`)))

	_, err := b.Load(ctx)
	require.ErrorIs(t, err, repository.ErrNotFound)

	got, err := a.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, []byte(`alpha`), got)
}
