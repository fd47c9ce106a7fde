package geom

import (
	"strconv"
	"strings"
)

// MarshalWKT renders g as canonical text: "SRID=<n>;" when g carries an SRID,
// then "<KEYWORD>(<body>)" or "<KEYWORD> EMPTY". The output is deterministic,
// so rendering a parsed rendering yields the same string.
func MarshalWKT(g Geometry) string {
	if g == nil {
		return ""
	}
	var sb strings.Builder
	if srid := g.SRID(); srid != SRIDUnset {
		sb.WriteString(sridPrefix)
		sb.WriteString(strconv.Itoa(srid))
		sb.WriteByte(';')
	}
	writeTagged(&sb, g)
	return sb.String()
}

func writeTagged(sb *strings.Builder, g Geometry) {
	sb.WriteString(g.Type().String())
	if g.IsEmpty() {
		sb.WriteString(" EMPTY")
		return
	}
	writeBody(sb, g)
}

// writeBody writes the parenthesized body of a non-empty geometry, or EMPTY.
func writeBody(sb *strings.Builder, g Geometry) {
	if g.IsEmpty() {
		sb.WriteString("EMPTY")
		return
	}
	sb.WriteByte('(')
	switch t := g.(type) {
	case *Point:
		writeCoords(sb, t)
	case *LineString:
		writeTuples(sb, t.points)
	case *MultiPoint:
		writeTuples(sb, t.points)
	case *Polygon:
		for i, r := range t.rings {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeRing(sb, r)
		}
	case *MultiLineString:
		for i, l := range t.lines {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeBody(sb, l)
		}
	case *MultiPolygon:
		for i, p := range t.polygons {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeBody(sb, p)
		}
	case *GeometryCollection:
		for i, c := range t.geoms {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeTagged(sb, c)
		}
	}
	sb.WriteByte(')')
}

func writeRing(sb *strings.Builder, r *LinearRing) {
	if r.IsEmpty() {
		sb.WriteString("EMPTY")
		return
	}
	sb.WriteByte('(')
	writeTuples(sb, r.points)
	sb.WriteByte(')')
}

func writeTuples(sb *strings.Builder, points []*Point) {
	for i, p := range points {
		if i > 0 {
			sb.WriteByte(',')
		}
		if p.empty {
			sb.WriteString("EMPTY")
			continue
		}
		writeCoords(sb, p)
	}
}

func writeCoords(sb *strings.Builder, p *Point) {
	sb.WriteString(formatCoord(p.x))
	sb.WriteByte(' ')
	sb.WriteString(formatCoord(p.y))
	if p.dim == 3 {
		sb.WriteByte(' ')
		sb.WriteString(formatCoord(p.z))
	}
}

// formatCoord uses the shortest representation that parses back to v.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
