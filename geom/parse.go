package geom

import (
	"strconv"
	"strings"
)

const sridPrefix = "SRID="

// Parser converts text or binary input into geometries. The zero value uses
// EmptyLegacy.
type Parser struct {
	Empty EmptyMode
}

// FromString parses EWKT, or hex EWKB when the text (after an optional
// "SRID=<n>;" prefix) starts with "00" or "01". An SRID prefix overrides an
// SRID embedded in the binary form.
func FromString(text string) (Geometry, error) {
	return Parser{}.FromString(text)
}

// FromBytes accepts raw EWKB (first byte 0 or 1) or any textual form
// FromString accepts.
func FromBytes(b []byte) (Geometry, error) {
	return Parser{}.FromBytes(b)
}

// ParseWKT parses EWKT only; hex input is rejected.
func ParseWKT(text string) (Geometry, error) {
	return Parser{}.ParseWKT(text)
}

// FromString works like the package-level FromString using p's empty mode.
func (p Parser) FromString(text string) (Geometry, error) {
	return p.parse(text, true)
}

// FromBytes works like the package-level FromBytes using p's empty mode.
func (p Parser) FromBytes(b []byte) (Geometry, error) {
	if len(b) > 0 && (b[0] == bigEndianFlag || b[0] == littleEndianFlag) {
		g, err := UnmarshalEWKB(b)
		if err != nil {
			return nil, err
		}
		return p.fromBinary(g), nil
	}
	return p.FromString(string(b))
}

// ParseWKT works like the package-level ParseWKT using p's empty mode.
func (p Parser) ParseWKT(text string) (Geometry, error) {
	return p.parse(text, false)
}

func (p Parser) parse(text string, allowHex bool) (Geometry, error) {
	srid, body, err := splitSRID(strings.TrimSpace(text))
	if err != nil {
		return nil, err
	}

	var g Geometry
	if allowHex && isHexEWKB(body) && !hasSuffixFold(body, "EMPTY") {
		if g, err = UnmarshalEWKBHex(body); err == nil {
			g = p.fromBinary(g)
		}
	} else {
		g, err = p.parseWKT(body)
	}
	if err != nil {
		return nil, err
	}
	if srid != SRIDUnset {
		g = WithSRID(g, srid)
	}
	return g, nil
}

// fromBinary applies the empty mode to a decoded EWKB value. Legacy text has
// no empty point, so NaN points standing alone or as collection members
// become the empty collection. MultiPoint members stay: MULTIPOINT(EMPTY)
// is valid legacy text.
func (p Parser) fromBinary(g Geometry) Geometry {
	if p.Empty != EmptyLegacy {
		return g
	}
	return collapseEmptyPoints(g)
}

func collapseEmptyPoints(g Geometry) Geometry {
	switch v := g.(type) {
	case *Point:
		if v.IsEmpty() {
			return WithSRID(NewGeometryCollection(), v.SRID())
		}
	case *GeometryCollection:
		children := make([]Geometry, v.Len())
		changed := false
		for i := range children {
			children[i] = collapseEmptyPoints(v.Geometry(i))
			changed = changed || children[i] != v.Geometry(i)
		}
		if changed {
			return WithSRID(NewGeometryCollection(children...), v.SRID())
		}
	}
	return g
}

// splitSRID separates "SRID=<n>;<rest>" at the first '=' and the first ';'.
func splitSRID(s string) (int, string, error) {
	if !hasPrefixFold(s, "SRID") {
		return SRIDUnset, s, nil
	}
	eq := strings.IndexByte(s, '=')
	semi := strings.IndexByte(s, ';')
	if eq < 0 || semi < 0 || semi < eq {
		return SRIDUnset, "", parseErrorf(s, "malformed SRID prefix")
	}
	srid, err := strconv.ParseInt(strings.TrimSpace(s[eq+1:semi]), 10, 32)
	if err != nil {
		return SRIDUnset, "", &ParseError{Input: s[:semi+1], Msg: "invalid SRID", Err: err}
	}
	return int(srid), strings.TrimSpace(s[semi+1:]), nil
}

func isHexEWKB(s string) bool {
	return strings.HasPrefix(s, "00") || strings.HasPrefix(s, "01")
}
