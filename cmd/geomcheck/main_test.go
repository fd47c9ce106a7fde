package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/woozymasta/pgeom/internal/config"
)

func TestRunOffline(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")

	ok, err := run(&Options{Offline: true, Output: out, Format: "json"})
	require.NoError(t, err)
	require.True(t, ok)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var report map[string]any
	require.NoError(t, json.Unmarshal(data, &report))
	require.EqualValues(t, 0, report["failed"])
}

func TestRunSQLite(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
connections:
  - name: echo
    driver: sqlite
    dsn: ":memory:"
testset:
  - POINT(1 2 3)
`), 0o600))

	ok, err := run(&Options{ConfigFile: cfgPath, Output: filepath.Join(dir, "report.yaml"), Format: "yaml"})
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := run(&Options{ConfigFile: filepath.Join(dir, "missing.yaml")})
	require.Error(t, err)

	_, err = run(&Options{Offline: true, EmptyMode: "strict"})
	require.Error(t, err)
}

func TestApplyOptions(t *testing.T) {
	cfg := config.Default()
	zero := 0
	applyOptions(cfg, &Options{
		SRID:      &zero,
		EmptyMode: "typed",
		Postgres:  []string{" postgres://localhost/gis ", ""},
	})

	require.Equal(t, 0, cfg.PrefixSRID())
	require.Equal(t, "typed", cfg.EmptyMode)
	require.Len(t, cfg.Connections, 1)
	require.Equal(t, "postgres-0", cfg.Connections[0].Name)
	require.Equal(t, "SELECT $1::geometry", cfg.Connections[0].Query)
}
