// Package geom models PostGIS geometries and converts them between
// (E)WKT text and EWKB binary representations.
package geom

// SRIDUnset marks a geometry that carries no spatial reference identifier.
const SRIDUnset = -1

// Type identifies a geometry variant. The numeric value is the EWKB type code.
type Type uint32

const (
	TypePoint              Type = 1
	TypeLineString         Type = 2
	TypePolygon            Type = 3
	TypeMultiPoint         Type = 4
	TypeMultiLineString    Type = 5
	TypeMultiPolygon       Type = 6
	TypeGeometryCollection Type = 7
)

var typeKeywords = map[Type]string{
	TypePoint:              "POINT",
	TypeLineString:         "LINESTRING",
	TypePolygon:            "POLYGON",
	TypeMultiPoint:         "MULTIPOINT",
	TypeMultiLineString:    "MULTILINESTRING",
	TypeMultiPolygon:       "MULTIPOLYGON",
	TypeGeometryCollection: "GEOMETRYCOLLECTION",
}

// String returns the WKT keyword of the type.
func (t Type) String() string {
	if kw, ok := typeKeywords[t]; ok {
		return kw
	}
	return "UNKNOWN"
}

// Valid reports whether t is one of the seven geometry variants.
func (t Type) Valid() bool {
	_, ok := typeKeywords[t]
	return ok
}

// Geometry is implemented by the seven geometry variants of this package only.
// Values are immutable once constructed and safe for concurrent use.
type Geometry interface {
	Type() Type
	// Dimension is 2 for (x, y) and 3 for (x, y, z) coordinates.
	Dimension() int
	// SRID is the spatial reference identifier, or SRIDUnset.
	SRID() int
	IsEmpty() bool
	// Hash is a structural hash, consistent with Equal apart from the SRID.
	Hash() uint64
	// String renders canonical EWKT.
	String() string

	header() *base
}

type base struct {
	dim  int
	srid int
	hash uint64
}

func newBase(dim int) base {
	return base{dim: dim, srid: SRIDUnset}
}

func (b *base) Dimension() int { return b.dim }
func (b *base) SRID() int      { return b.srid }
func (b *base) Hash() uint64   { return b.hash }
func (b *base) header() *base  { return b }

// EmptyMode selects how "<KEYWORD> EMPTY" text is parsed.
type EmptyMode int

const (
	// EmptyLegacy collapses every EMPTY spelling, whatever the keyword, into
	// an empty GeometryCollection. This matches data written by PostGIS 0.x
	// era clients and is the default.
	EmptyLegacy EmptyMode = iota
	// EmptyTyped keeps the declared type: "POINT EMPTY" is an empty Point,
	// "POLYGON EMPTY" an empty Polygon. "GEOMETRYCOLLECTION(EMPTY)" is still
	// accepted as a compatibility spelling.
	EmptyTyped
)

// String returns the configuration name of the mode.
func (m EmptyMode) String() string {
	if m == EmptyTyped {
		return "typed"
	}
	return "legacy"
}

// ParseEmptyMode maps "legacy" or "typed" (and "" as legacy) to an EmptyMode.
func ParseEmptyMode(s string) (EmptyMode, error) {
	switch s {
	case "", "legacy":
		return EmptyLegacy, nil
	case "typed":
		return EmptyTyped, nil
	}
	return EmptyLegacy, &ParseError{Input: s, Msg: "unknown empty mode"}
}
