package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte("SRID=4326;POINT(1 2 3)\nlinestring(0 0,1 1)\n"), 0o600))

	require.NoError(t, run(&Options{Input: in, Output: out, To: "ewkb", EmptyMode: "legacy"}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t,
		"01010000A0E6100000000000000000F03F00000000000000400000000000000840\n"+
			"01020000000200000000000000000000000000000000000000000000000000F03F000000000000F03F\n",
		string(data))
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	require.Error(t, run(&Options{Input: filepath.Join(dir, "missing.txt"), To: "ewkt"}))
	require.Error(t, run(&Options{EmptyMode: "strict"}))

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("POINT(1)\n"), 0o600))
	require.Error(t, run(&Options{Input: bad, Output: filepath.Join(dir, "out.txt"), To: "ewkt"}))
	require.NoFileExists(t, filepath.Join(dir, "out.txt"))
}
