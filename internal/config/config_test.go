package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "stocktake.db", cfg.DB.Path)
	require.Equal(t, "projects", cfg.DB.SnapshotKey)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "http", cfg.Transport.Mode)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STOCKTAKE_SERVER_HOST", "127.0.0.1")
	t.Setenv("STOCKTAKE_SERVER_PORT", "9090")
	t.Setenv("STOCKTAKE_DB_PATH", "/tmp/other.db")
	t.Setenv("STOCKTAKE_LOG_LEVEL", "debug")
	t.Setenv("STOCKTAKE_TRANSPORT_MODE", "stdio")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "/tmp/other.db", cfg.DB.Path)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "stdio", cfg.Transport.Mode)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("STOCKTAKE_SERVER_PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "STOCKTAKE_SERVER_PORT")
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
server:
  host: localhost
  port: 3000
db:
  path: data/inventory.db
log:
  level: warn
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))
	t.Setenv("STOCKTAKE_CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "localhost", cfg.Server.Host)
	require.Equal(t, 3000, cfg.Server.Port)
	require.Equal(t, "data/inventory.db", cfg.DB.Path)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, "projects", cfg.DB.SnapshotKey, "unset file keys keep defaults")
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o600))
	t.Setenv("STOCKTAKE_CONFIG_PATH", path)
	t.Setenv("STOCKTAKE_LOG_LEVEL", "error")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("STOCKTAKE_CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()
	require.Error(t, err)
}
