package harness

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"

	"github.com/woozymasta/pgeom/geom"
	"github.com/woozymasta/pgeom/internal/config"
	"github.com/woozymasta/pgeom/pggeom"
)

func TestOfflineLegacy(t *testing.T) {
	r, err := New(config.Default(), nil)
	require.NoError(t, err)

	report := r.Run(context.Background())
	require.True(t, report.OK(), "failed cases: %+v", failedInputs(report))
	require.Equal(t, 2*len(Testset), report.Total)
	require.NotEmpty(t, report.RunID)
	require.Equal(t, "legacy", report.EmptyMode)

	require.Equal(t, "POINT(10 10 20)", report.Cases[0].Parsed)
	require.Equal(t, "SRID=4326;POINT(10 10 20)", report.Cases[1].Parsed)
}

func TestOfflineTyped(t *testing.T) {
	cfg := config.Default()
	cfg.EmptyMode = "typed"
	srid := 3857
	cfg.SRID = &srid

	r, err := New(cfg, nil)
	require.NoError(t, err)

	report := r.Run(context.Background())
	require.True(t, report.OK(), "failed cases: %+v", failedInputs(report))

	var parsed []string
	for _, c := range report.Cases {
		parsed = append(parsed, c.Parsed)
	}
	require.Contains(t, parsed, "LINESTRING EMPTY")
	require.Contains(t, parsed, "SRID=3857;POINT EMPTY")
}

func TestCaseParseFailure(t *testing.T) {
	r := &Runner{}
	c := r.Case(context.Background(), "POINT(1)")
	require.False(t, c.Passed)
	require.Len(t, c.Checks, 1)
	require.Equal(t, "parse", c.Checks[0].Name)
	require.NotEmpty(t, c.Checks[0].Error)
}

func TestOnlineSQLite(t *testing.T) {
	ctx := context.Background()
	cfg, err := config.Parse([]byte(`
connections:
  - name: echo
    driver: sqlite
    dsn: ":memory:"
testset:
  - POINT(1 2 3)
  - MULTILINESTRING((0 0,1 1),(2 2,3 3))
  - POLYGON EMPTY
`))
	require.NoError(t, err)

	conns, closeAll, err := Open(ctx, cfg.Connections)
	require.NoError(t, err)
	t.Cleanup(closeAll)

	r, err := New(cfg, conns)
	require.NoError(t, err)

	report := r.Run(ctx)
	require.True(t, report.OK(), "failed cases: %+v", failedInputs(report))
	require.Equal(t, []string{"echo"}, report.Connections)
	require.Equal(t, 6, report.Total)

	names := make([]string, 0)
	for _, chk := range report.Cases[0].Checks {
		names = append(names, chk.Name)
	}
	require.Contains(t, names, "sql-in:echo")
	require.Contains(t, names, "sql-out:echo")
}

func TestOnlineTypedEmpty(t *testing.T) {
	pggeom.Parser = geom.Parser{Empty: geom.EmptyTyped}
	t.Cleanup(func() { pggeom.Parser = geom.Parser{} })

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	r := &Runner{
		Conns:   []Conn{{DB: db, Name: "echo", Query: "SELECT ?"}},
		Testset: []string{"LINESTRING EMPTY", "MULTIPOINT EMPTY"},
		Parser:  geom.Parser{Empty: geom.EmptyTyped},
		SRID:    4326,
	}
	report := r.Run(context.Background())
	require.True(t, report.OK(), "failed cases: %+v", failedInputs(report))
}

func TestServerSideError(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	r := &Runner{Conns: []Conn{{DB: db, Name: "broken", Query: "SELECT missing_function(?)"}}}
	c := r.Case(context.Background(), "POINT(1 2)")
	require.False(t, c.Passed)

	failed := c.Failed()
	require.Len(t, failed, 2)
	require.Equal(t, "sql-in:broken", failed[0].Name)
	require.Contains(t, failed[0].Error, "server side error")
}

func TestCancelledRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := New(config.Default(), nil)
	require.NoError(t, err)

	report := r.Run(ctx)
	require.False(t, report.OK())
	require.Zero(t, report.Total)
	require.NotEmpty(t, report.Error)
}

func TestReportWrite(t *testing.T) {
	cfg := config.Default()
	cfg.Testset = []string{"POINT(1 2)"}
	r, err := New(cfg, nil)
	require.NoError(t, err)
	report := r.Run(context.Background())

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, "json"))
	var fromJSON map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	require.EqualValues(t, 2, fromJSON["total"])
	require.Equal(t, report.RunID, fromJSON["run_id"])

	buf.Reset()
	require.NoError(t, report.Write(&buf, "yaml"))
	var fromYAML map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	require.Equal(t, 2, fromYAML["passed"])

	require.Error(t, report.Write(&buf, "xml"))
}

func failedInputs(r *Report) map[string][]Check {
	out := make(map[string][]Check)
	for _, c := range r.Cases {
		if !c.Passed {
			out[c.Input] = c.Failed()
		}
	}
	return out
}

func TestZeroSRIDPrefix(t *testing.T) {
	cfg, err := config.Parse([]byte("srid: 0\ntestset: [\"POINT(1 2)\"]\n"))
	require.NoError(t, err)

	r, err := New(cfg, nil)
	require.NoError(t, err)

	report := r.Run(context.Background())
	require.True(t, report.OK(), "failed cases: %+v", failedInputs(report))
	require.Equal(t, "SRID=0;POINT(1 2)", report.Cases[1].Input)
	require.Equal(t, "SRID=0;POINT(1 2)", report.Cases[1].Parsed)
}
