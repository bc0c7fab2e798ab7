package testserver

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/invmate/stocktake/internal/api"
	"github.com/invmate/stocktake/internal/domain/inventory"
	"github.com/invmate/stocktake/internal/sqlite"
	"github.com/invmate/stocktake/internal/store"
	"github.com/invmate/stocktake/internal/transport"
	"github.com/stretchr/testify/require"
)

type TestServer struct {
	Server *httptest.Server
	DB     *sqlite.DB
	Engine *inventory.Service
}

func New(t *testing.T) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	backend := sqlite.NewSnapshotBackend(db, sqlite.DefaultSnapshotKey)
	projectStore := store.New(backend, nil)
	engine := inventory.NewService(projectStore, nil)
	handler := api.NewHandler(engine)

	server := httptest.NewServer(transport.NewServer(handler))

	ts := &TestServer{
		Server: server,
		DB:     db,
		Engine: engine,
	}

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return ts
}
