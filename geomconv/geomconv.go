// Package geomconv converts geometries to and from github.com/twpayne/go-geom,
// which gives access to the go-geom encoders (GeoJSON, KML, ...) and algorithms.
package geomconv

import (
	"github.com/pkg/errors"
	gogeom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/woozymasta/pgeom/geom"
)

// ToGoGeom converts g into the equivalent go-geom value. Coordinates are laid
// out with the dimension of the geometry that owns them. The SRID is copied
// when set.
func ToGoGeom(g geom.Geometry) (gogeom.T, error) {
	if g == nil {
		return nil, errors.New("geomconv: nil geometry")
	}
	t, err := toGoGeom(g)
	if err != nil {
		return nil, errors.Wrapf(err, "geomconv: convert %s", g.Type())
	}
	if srid := g.SRID(); srid != geom.SRIDUnset {
		setSRID(t, srid)
	}
	return t, nil
}

func toGoGeom(g geom.Geometry) (gogeom.T, error) {
	l := layout(g.Dimension())
	switch v := g.(type) {
	case *geom.Point:
		if v.IsEmpty() {
			return gogeom.NewPointEmpty(l), nil
		}
		return gogeom.NewPointFlat(l, coord(v, g.Dimension())), nil
	case *geom.LineString:
		return gogeom.NewLineString(l).SetCoords(coords(v.Points(), g.Dimension()))
	case *geom.Polygon:
		return gogeom.NewPolygon(l).SetCoords(polygonCoords(v))
	case *geom.MultiPoint:
		mp := gogeom.NewMultiPoint(l)
		for i := 0; i < v.Len(); i++ {
			p := v.Point(i)
			pt := gogeom.NewPointEmpty(l)
			if !p.IsEmpty() {
				pt = gogeom.NewPointFlat(l, coord(p, g.Dimension()))
			}
			if err := mp.Push(pt); err != nil {
				return nil, err
			}
		}
		return mp, nil
	case *geom.MultiLineString:
		lines := make([][]gogeom.Coord, v.Len())
		for i := range lines {
			lines[i] = coords(v.LineString(i).Points(), g.Dimension())
		}
		return gogeom.NewMultiLineString(l).SetCoords(lines)
	case *geom.MultiPolygon:
		polygons := make([][][]gogeom.Coord, v.Len())
		for i := range polygons {
			polygons[i] = polygonCoords(v.Polygon(i))
		}
		return gogeom.NewMultiPolygon(l).SetCoords(polygons)
	case *geom.GeometryCollection:
		gc := gogeom.NewGeometryCollection()
		for i := 0; i < v.Len(); i++ {
			child, err := toGoGeom(v.Geometry(i))
			if err != nil {
				return nil, err
			}
			if err := gc.Push(child); err != nil {
				return nil, err
			}
		}
		return gc, nil
	}
	return nil, errors.Errorf("unsupported geometry %T", g)
}

func layout(dim int) gogeom.Layout {
	if dim == 3 {
		return gogeom.XYZ
	}
	return gogeom.XY
}

func coord(p *geom.Point, dim int) gogeom.Coord {
	if dim == 3 {
		return gogeom.Coord{p.X(), p.Y(), p.Z()}
	}
	return gogeom.Coord{p.X(), p.Y()}
}

func coords(points []*geom.Point, dim int) []gogeom.Coord {
	out := make([]gogeom.Coord, len(points))
	for i, p := range points {
		out[i] = coord(p, dim)
	}
	return out
}

func polygonCoords(p *geom.Polygon) [][]gogeom.Coord {
	rings := make([][]gogeom.Coord, p.Len())
	for i := range rings {
		rings[i] = coords(p.Ring(i).Points(), p.Dimension())
	}
	return rings
}

func setSRID(t gogeom.T, srid int) {
	switch t := t.(type) {
	case *gogeom.Point:
		t.SetSRID(srid)
	case *gogeom.LineString:
		t.SetSRID(srid)
	case *gogeom.Polygon:
		t.SetSRID(srid)
	case *gogeom.MultiPoint:
		t.SetSRID(srid)
	case *gogeom.MultiLineString:
		t.SetSRID(srid)
	case *gogeom.MultiPolygon:
		t.SetSRID(srid)
	case *gogeom.GeometryCollection:
		t.SetSRID(srid)
	}
}

// FromGoGeom converts a go-geom value. Measured layouts (XYM, XYZM) are
// rejected. go-geom uses SRID 0 for "no SRID", which maps to geom.SRIDUnset.
func FromGoGeom(t gogeom.T) (geom.Geometry, error) {
	if t == nil {
		return nil, errors.New("geomconv: nil geometry")
	}
	g, err := fromGoGeom(t)
	if err != nil {
		return nil, errors.Wrapf(err, "geomconv: convert %T", t)
	}
	if srid := t.SRID(); srid != 0 {
		g = geom.WithSRID(g, srid)
	}
	return g, nil
}

func fromGoGeom(t gogeom.T) (geom.Geometry, error) {
	var dim int
	switch t.Layout() {
	case gogeom.XY, gogeom.NoLayout:
		dim = 2
	case gogeom.XYZ:
		dim = 3
	default:
		return nil, errors.Errorf("unsupported layout %s", t.Layout())
	}

	switch v := t.(type) {
	case *gogeom.Point:
		if v.Empty() {
			return geom.NewEmptyPoint(), nil
		}
		return point(v.Coords(), dim), nil
	case *gogeom.LineString:
		return geom.NewLineString(points(v.Coords(), dim)...), nil
	case *gogeom.Polygon:
		return polygon(v.Coords(), dim), nil
	case *gogeom.MultiPoint:
		pts := make([]*geom.Point, v.NumPoints())
		for i := range pts {
			p := v.Point(i)
			if p.Empty() {
				pts[i] = geom.NewEmptyPoint()
				continue
			}
			pts[i] = point(p.Coords(), dim)
		}
		return geom.NewMultiPoint(pts...), nil
	case *gogeom.MultiLineString:
		cs := v.Coords()
		lines := make([]*geom.LineString, len(cs))
		for i, c := range cs {
			lines[i] = geom.NewLineString(points(c, dim)...)
		}
		return geom.NewMultiLineString(lines...), nil
	case *gogeom.MultiPolygon:
		cs := v.Coords()
		polygons := make([]*geom.Polygon, len(cs))
		for i, c := range cs {
			polygons[i] = polygon(c, dim)
		}
		return geom.NewMultiPolygon(polygons...), nil
	case *gogeom.GeometryCollection:
		members := v.Geoms()
		geoms := make([]geom.Geometry, len(members))
		for i, m := range members {
			g, err := fromGoGeom(m)
			if err != nil {
				return nil, err
			}
			geoms[i] = g
		}
		return geom.NewGeometryCollection(geoms...), nil
	}
	return nil, errors.Errorf("unsupported geometry %T", t)
}

func point(c gogeom.Coord, dim int) *geom.Point {
	if dim == 3 {
		return geom.NewPointZ(c[0], c[1], c[2])
	}
	return geom.NewPoint(c[0], c[1])
}

func points(cs []gogeom.Coord, dim int) []*geom.Point {
	out := make([]*geom.Point, len(cs))
	for i, c := range cs {
		out[i] = point(c, dim)
	}
	return out
}

func polygon(cs [][]gogeom.Coord, dim int) *geom.Polygon {
	rings := make([]*geom.LinearRing, len(cs))
	for i, c := range cs {
		rings[i] = geom.NewLinearRing(points(c, dim)...)
	}
	return geom.NewPolygon(rings...)
}

// MarshalGeoJSON encodes g as a GeoJSON geometry object. GeoJSON has no SRID
// field; coordinates are written as they are.
func MarshalGeoJSON(g geom.Geometry) ([]byte, error) {
	t, err := ToGoGeom(g)
	if err != nil {
		return nil, err
	}
	b, err := geojson.Marshal(t)
	if err != nil {
		return nil, errors.Wrap(err, "geomconv: encode GeoJSON")
	}
	return b, nil
}

// UnmarshalGeoJSON decodes a GeoJSON geometry object.
func UnmarshalGeoJSON(b []byte) (geom.Geometry, error) {
	var t gogeom.T
	if err := geojson.Unmarshal(b, &t); err != nil {
		return nil, errors.Wrap(err, "geomconv: decode GeoJSON")
	}
	return FromGoGeom(t)
}
