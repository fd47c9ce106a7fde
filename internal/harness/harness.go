// Package harness checks that geometry literals survive parsing, rendering,
// binary encoding and a trip through a database unchanged.
package harness

import (
	"context"
	"database/sql"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/woozymasta/pgeom/geom"
	"github.com/woozymasta/pgeom/internal/config"
	"github.com/woozymasta/pgeom/pggeom"
)

// Conn is a database the literals are echoed through. Query takes one
// placeholder and returns one geometry column.
type Conn struct {
	DB    *sql.DB
	Name  string
	Query string
}

// Runner runs the checks. Results of online checks are decoded with
// pggeom.Parser, which callers keep in line with Parser.
type Runner struct {
	Conns   []Conn
	Testset []string
	Parser  geom.Parser
	SRID    int
}

// New builds a runner from configuration. Connections are opened by Open.
func New(cfg *config.Config, conns []Conn) (*Runner, error) {
	p, err := cfg.Parser()
	if err != nil {
		return nil, err
	}

	testset := cfg.Testset
	if len(testset) == 0 {
		testset = Testset
	}

	return &Runner{
		Conns:   conns,
		Testset: testset,
		Parser:  p,
		SRID:    cfg.PrefixSRID(),
	}, nil
}

// Run checks every literal, bare and with an SRID prefix.
func (r *Runner) Run(ctx context.Context) *Report {
	report := &Report{
		RunID:     uuid.NewString(),
		EmptyMode: r.Parser.Empty.String(),
		Started:   time.Now().UTC(),
	}
	for _, c := range r.Conns {
		report.Connections = append(report.Connections, c.Name)
	}

	prefix := fmt.Sprintf("SRID=%d;", r.SRID)
	for _, literal := range r.Testset {
		for _, input := range []string{literal, prefix + literal} {
			if err := ctx.Err(); err != nil {
				report.Error = err.Error()
				report.finish()
				return report
			}
			report.add(r.Case(ctx, input))
		}
	}

	report.finish()
	return report
}

// Case runs all checks for one literal.
func (r *Runner) Case(ctx context.Context, input string) Case {
	c := Case{Input: input}

	g, err := r.Parser.FromString(input)
	if !c.check("parse", err == nil, err) {
		return c.done()
	}
	c.Parsed = g.String()

	regeom, err := r.Parser.FromString(c.Parsed)
	if !c.check("reparse", err == nil, err) {
		return c.done()
	}
	c.Reparsed = regeom.String()

	c.check("equal", geom.Equal(g, regeom), nil)
	c.check("text", c.Reparsed == c.Parsed, nil)

	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		back, err := ewkbRoundTrip(g, order)
		c.check("ewkb-"+order.String(), err == nil && r.same(g, back), err)
	}

	hex, err := geom.MarshalEWKBHex(g, nil)
	if c.check("ewkb-hex", err == nil, err) {
		back, err := r.Parser.FromString(hex)
		c.check("ewkb-hex-parse", err == nil && r.same(g, back), err)
	}

	for _, conn := range r.Conns {
		sqlIn, err := viaSQL(ctx, conn, input)
		c.check("sql-in:"+conn.Name, err == nil && r.same(g, sqlIn), err)

		sqlOut, err := viaSQL(ctx, conn, c.Parsed)
		c.check("sql-out:"+conn.Name, err == nil && r.same(g, sqlOut), err)
	}

	return c.done()
}

// same compares structurally. In legacy mode every empty geometry is the
// empty collection, so empties of different types are equal.
func (r *Runner) same(a, b geom.Geometry) bool {
	if geom.Equal(a, b) {
		return true
	}
	return r.Parser.Empty == geom.EmptyLegacy && a != nil && b != nil &&
		a.IsEmpty() && b.IsEmpty() && a.SRID() == b.SRID()
}

func ewkbRoundTrip(g geom.Geometry, order binary.ByteOrder) (geom.Geometry, error) {
	b, err := geom.MarshalEWKB(g, order)
	if err != nil {
		return nil, err
	}
	return geom.UnmarshalEWKB(b)
}

// viaSQL passes a text representation through the database.
func viaSQL(ctx context.Context, conn Conn, text string) (geom.Geometry, error) {
	var out pggeom.Geometry
	if err := conn.DB.QueryRowContext(ctx, conn.Query, text).Scan(&out); err != nil {
		return nil, errors.Wrapf(err, "%s: server side error", conn.Name)
	}
	if !out.Valid {
		return nil, errors.Errorf("%s: query returned NULL", conn.Name)
	}
	return out.Geom, nil
}

// Open connects to every configured database and checks it responds.
// The returned function closes all connections.
func Open(ctx context.Context, conns []config.Connection) ([]Conn, func(), error) {
	opened := make([]Conn, 0, len(conns))
	closeAll := func() {
		for _, c := range opened {
			if err := c.DB.Close(); err != nil {
				log.Warn().Err(err).Str("connection", c.Name).Msg("Failed to close connection")
			}
		}
	}

	for _, cc := range conns {
		db, err := sql.Open(cc.Driver, cc.DSN)
		if err != nil {
			closeAll()
			return nil, nil, errors.Wrapf(err, "open %s", cc.Name)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			closeAll()
			return nil, nil, errors.Wrapf(err, "connect %s", cc.Name)
		}

		log.Info().Str("connection", cc.Name).Str("driver", cc.Driver).Msg("Connected")
		opened = append(opened, Conn{DB: db, Name: cc.Name, Query: cc.Query})
	}

	return opened, closeAll, nil
}
