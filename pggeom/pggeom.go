// Package pggeom adapts geom values to database/sql, encoding/json and GORM so
// that PostGIS geometry columns can be read and written directly.
package pggeom

import (
	"context"
	"database/sql/driver"
	"encoding/binary"
	"encoding/json"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/woozymasta/pgeom/geom"
	"github.com/woozymasta/pgeom/geomconv"
)

// Parser decodes scanned and unmarshalled values. Set Parser.Empty to
// geom.EmptyTyped to keep empty geometries typed.
var Parser geom.Parser

// Geometry is a nullable geometry column value. Valid is false for SQL NULL.
type Geometry struct {
	Geom  geom.Geometry
	Valid bool
}

// New wraps g as a valid value.
func New(g geom.Geometry) Geometry {
	return Geometry{Geom: g, Valid: g != nil}
}

// Scan implements sql.Scanner. PostgreSQL text protocol drivers deliver
// geometry columns as hex EWKB; binary protocols deliver raw EWKB.
func (g *Geometry) Scan(src any) error {
	var (
		v   geom.Geometry
		err error
	)
	switch s := src.(type) {
	case nil:
		g.Geom, g.Valid = nil, false
		return nil
	case []byte:
		v, err = Parser.FromBytes(s)
	case string:
		v, err = Parser.FromString(s)
	default:
		return errors.Errorf("pggeom: cannot scan %T into Geometry", src)
	}
	if err != nil {
		return errors.Wrap(err, "pggeom: scan")
	}
	g.Geom, g.Valid = v, true
	return nil
}

// Value implements driver.Valuer as a little endian hex EWKB string, the
// canonical text input form of the PostGIS geometry type.
func (g Geometry) Value() (driver.Value, error) {
	if !g.Valid || g.Geom == nil {
		return nil, nil
	}
	s, err := geom.MarshalEWKBHex(g.Geom, binary.LittleEndian)
	if err != nil {
		return nil, errors.Wrap(err, "pggeom: value")
	}
	return s, nil
}

// MarshalJSON encodes the geometry as a GeoJSON geometry object, or null.
func (g Geometry) MarshalJSON() ([]byte, error) {
	if !g.Valid || g.Geom == nil {
		return []byte("null"), nil
	}
	return geomconv.MarshalGeoJSON(g.Geom)
}

// UnmarshalJSON accepts a GeoJSON geometry object, an EWKT or hex EWKB string,
// or null.
func (g *Geometry) UnmarshalJSON(b []byte) error {
	switch {
	case string(b) == "null":
		g.Geom, g.Valid = nil, false
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return errors.Wrap(err, "pggeom: unmarshal")
		}
		return g.Scan(s)
	}
	v, err := geomconv.UnmarshalGeoJSON(b)
	if err != nil {
		return errors.Wrap(err, "pggeom: unmarshal")
	}
	g.Geom, g.Valid = v, true
	return nil
}

// GormDataType returns the column type used by GORM migrations.
func (Geometry) GormDataType() string {
	return "geometry"
}

// GormValue binds the value through ST_GeomFromEWKT so the SRID survives.
func (g Geometry) GormValue(_ context.Context, _ *gorm.DB) clause.Expr {
	if !g.Valid || g.Geom == nil {
		return clause.Expr{SQL: "NULL"}
	}
	return clause.Expr{SQL: "ST_GeomFromEWKT(?)", Vars: []any{geom.MarshalWKT(g.Geom)}}
}
