package geom

import (
	"strconv"
	"strings"
)

// Keywords in dispatch order. Longer keywords sharing a prefix come first.
var keywordOrder = []Type{
	TypeMultiPolygon,
	TypeMultiLineString,
	TypeMultiPoint,
	TypePolygon,
	TypeLineString,
	TypePoint,
	TypeGeometryCollection,
}

func matchKeyword(s string) (Type, string, bool) {
	for _, t := range keywordOrder {
		kw := t.String()
		if hasPrefixFold(s, kw) {
			return t, strings.TrimSpace(s[len(kw):]), true
		}
	}
	return 0, "", false
}

// parseWKT parses a geometry literal without SRID prefix. It is also used for
// the members of a GEOMETRYCOLLECTION.
func (p Parser) parseWKT(s string) (Geometry, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, parseErrorf(s, "empty geometry text")
	}
	t, rest, ok := matchKeyword(s)

	if hasSuffixFold(s, "EMPTY") {
		if p.Empty == EmptyLegacy {
			return NewGeometryCollection(), nil
		}
		if !ok {
			return nil, parseErrorf(s, "unknown geometry keyword")
		}
		if !strings.EqualFold(rest, "EMPTY") {
			return nil, parseErrorf(s, "unexpected text before EMPTY")
		}
		return emptyOf(t), nil
	}
	if !ok {
		return nil, parseErrorf(s, "unknown geometry keyword")
	}
	// "GEOMETRYCOLLECTION(EMPTY)" as written by PostGIS 0.8. Other keywords
	// followed by "(EMPTY)" hold one empty member.
	if t == TypeGeometryCollection && isLegacyEmptyBody(rest) {
		return NewGeometryCollection(), nil
	}

	body, err := stripParens(rest)
	if err != nil {
		return nil, err
	}
	var g Geometry
	switch t {
	case TypePoint:
		g, err = parseTuple(body)
	case TypeLineString:
		var points []*Point
		if points, err = parseTuples(body); err == nil {
			g = NewLineString(points...)
		}
	case TypePolygon:
		g, err = parsePolygonBody(body)
	case TypeMultiPoint:
		g, err = parseMultiPointBody(body)
	case TypeMultiLineString:
		g, err = parseMultiLineStringBody(body)
	case TypeMultiPolygon:
		g, err = parseMultiPolygonBody(body)
	default:
		g, err = p.parseCollectionBody(body)
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func isLegacyEmptyBody(rest string) bool {
	inner, err := stripParens(rest)
	return err == nil && strings.EqualFold(strings.TrimSpace(inner), "EMPTY")
}

func emptyOf(t Type) Geometry {
	switch t {
	case TypePoint:
		return NewEmptyPoint()
	case TypeLineString:
		return NewLineString()
	case TypePolygon:
		return NewPolygon()
	case TypeMultiPoint:
		return NewMultiPoint()
	case TypeMultiLineString:
		return NewMultiLineString()
	case TypeMultiPolygon:
		return NewMultiPolygon()
	}
	return NewGeometryCollection()
}

// parseTuple parses "x y" or "x y z".
func parseTuple(s string) (*Point, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 && len(fields) != 3 {
		return nil, parseErrorf(s, "expected 2 or 3 coordinates, got %d", len(fields))
	}
	var c [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, &ParseError{Input: s, Msg: "invalid coordinate", Err: err}
		}
		c[i] = v
	}
	if len(fields) == 3 {
		return NewPointZ(c[0], c[1], c[2]), nil
	}
	return NewPoint(c[0], c[1]), nil
}

func parseTuples(body string) ([]*Point, error) {
	groups, err := splitTopLevel(body)
	if err != nil {
		return nil, err
	}
	points := make([]*Point, len(groups))
	for i, g := range groups {
		if points[i], err = parseTuple(g); err != nil {
			return nil, err
		}
	}
	return points, nil
}

func parseRing(s string) (*LinearRing, error) {
	if strings.EqualFold(s, "EMPTY") {
		return NewLinearRing(), nil
	}
	body, err := stripParens(s)
	if err != nil {
		return nil, err
	}
	points, err := parseTuples(body)
	if err != nil {
		return nil, err
	}
	return NewLinearRing(points...), nil
}

func parsePolygonBody(body string) (*Polygon, error) {
	groups, err := splitTopLevel(body)
	if err != nil {
		return nil, err
	}
	rings := make([]*LinearRing, len(groups))
	for i, g := range groups {
		if rings[i], err = parseRing(g); err != nil {
			return nil, err
		}
	}
	return NewPolygon(rings...), nil
}

// parseMultiPointBody accepts both "1 2,3 4" and "(1 2),(3 4)".
func parseMultiPointBody(body string) (*MultiPoint, error) {
	groups, err := splitTopLevel(body)
	if err != nil {
		return nil, err
	}
	points := make([]*Point, len(groups))
	for i, g := range groups {
		switch {
		case strings.EqualFold(g, "EMPTY"):
			points[i] = NewEmptyPoint()
			continue
		case strings.HasPrefix(g, "("):
			if g, err = stripParens(g); err != nil {
				return nil, err
			}
		}
		if points[i], err = parseTuple(g); err != nil {
			return nil, err
		}
	}
	return NewMultiPoint(points...), nil
}

func parseMultiLineStringBody(body string) (*MultiLineString, error) {
	groups, err := splitTopLevel(body)
	if err != nil {
		return nil, err
	}
	lines := make([]*LineString, len(groups))
	for i, g := range groups {
		if strings.EqualFold(g, "EMPTY") {
			lines[i] = NewLineString()
			continue
		}
		inner, err := stripParens(g)
		if err != nil {
			return nil, err
		}
		points, err := parseTuples(inner)
		if err != nil {
			return nil, err
		}
		lines[i] = NewLineString(points...)
	}
	return NewMultiLineString(lines...), nil
}

func parseMultiPolygonBody(body string) (*MultiPolygon, error) {
	groups, err := splitTopLevel(body)
	if err != nil {
		return nil, err
	}
	polygons := make([]*Polygon, len(groups))
	for i, g := range groups {
		if strings.EqualFold(g, "EMPTY") {
			polygons[i] = NewPolygon()
			continue
		}
		inner, err := stripParens(g)
		if err != nil {
			return nil, err
		}
		if polygons[i], err = parsePolygonBody(inner); err != nil {
			return nil, err
		}
	}
	return NewMultiPolygon(polygons...), nil
}

func (p Parser) parseCollectionBody(body string) (*GeometryCollection, error) {
	groups, err := splitTopLevel(body)
	if err != nil {
		return nil, err
	}
	geoms := make([]Geometry, len(groups))
	for i, g := range groups {
		if geoms[i], err = p.parseWKT(g); err != nil {
			return nil, err
		}
	}
	return NewGeometryCollection(geoms...), nil
}
