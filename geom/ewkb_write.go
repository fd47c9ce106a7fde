package geom

import (
	"encoding/binary"
	"encoding/hex"
	"math"
	"strings"
)

// MarshalEWKB encodes g as EWKB in a single byte order for the whole output
// (binary.LittleEndian when order is nil). The Z flag is set for
// three-dimensional geometries and the SRID flag whenever an SRID is present.
// Coordinate tuples are written with the dimension of the geometry that owns
// them, so a 2D point inside a 3D line string gets z = 0.
func MarshalEWKB(g Geometry, order binary.ByteOrder) ([]byte, error) {
	e := &encoder{order: binary.LittleEndian, flag: littleEndianFlag}
	switch order {
	case nil, binary.LittleEndian:
	case binary.BigEndian:
		e.order, e.flag = binary.BigEndian, bigEndianFlag
	default:
		return nil, &EncodeError{Msg: "unsupported byte order " + order.String()}
	}
	if g == nil {
		return nil, &EncodeError{Msg: "nil geometry"}
	}
	if err := e.writeGeometry(g); err != nil {
		return nil, err
	}
	return e.buf, nil
}

// MarshalEWKBHex encodes g as upper-case hex EWKB, the form PostGIS prints.
func MarshalEWKBHex(g Geometry, order binary.ByteOrder) (string, error) {
	b, err := MarshalEWKB(g, order)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}

type encoder struct {
	buf   []byte
	order binary.AppendByteOrder
	flag  byte
}

func (e *encoder) u32(v uint32) {
	e.buf = e.order.AppendUint32(e.buf, v)
}

func (e *encoder) f64(v float64) {
	e.buf = e.order.AppendUint64(e.buf, math.Float64bits(v))
}

func (e *encoder) count(n int) error {
	if uint64(n) > math.MaxUint32 {
		return &EncodeError{Msg: "element count overflows uint32"}
	}
	e.u32(uint32(n))
	return nil
}

func (e *encoder) writeGeometry(g Geometry) error {
	t := g.Type()
	if !t.Valid() {
		return &EncodeError{Msg: "unknown geometry type " + t.String()}
	}
	word := uint32(t)
	dim := g.Dimension()
	if dim == 3 {
		word |= ewkbZ
	}
	srid := g.SRID()
	if srid != SRIDUnset {
		if srid < math.MinInt32 || srid > math.MaxInt32 {
			return &EncodeError{Msg: "SRID out of int32 range"}
		}
		word |= ewkbSRID
	}
	e.buf = append(e.buf, e.flag)
	e.u32(word)
	if srid != SRIDUnset {
		e.u32(uint32(int32(srid)))
	}

	switch v := g.(type) {
	case *Point:
		if v.empty {
			for i := 0; i < dim; i++ {
				e.f64(math.NaN())
			}
			return nil
		}
		e.tuple(v, dim)
		return nil
	case *LineString:
		return e.tuples(v.points, dim)
	case *Polygon:
		if err := e.count(len(v.rings)); err != nil {
			return err
		}
		for _, r := range v.rings {
			if err := e.tuples(r.points, dim); err != nil {
				return err
			}
		}
		return nil
	case *MultiPoint:
		return writeMembers(e, v.points)
	case *MultiLineString:
		return writeMembers(e, v.lines)
	case *MultiPolygon:
		return writeMembers(e, v.polygons)
	case *GeometryCollection:
		return writeMembers(e, v.geoms)
	}
	return &EncodeError{Msg: "unsupported geometry implementation"}
}

func (e *encoder) tuple(p *Point, dim int) {
	e.f64(p.x)
	e.f64(p.y)
	if dim == 3 {
		e.f64(p.z)
	}
}

func (e *encoder) tuples(points []*Point, dim int) error {
	if err := e.count(len(points)); err != nil {
		return err
	}
	for _, p := range points {
		e.tuple(p, dim)
	}
	return nil
}

func writeMembers[T Geometry](e *encoder, members []T) error {
	if err := e.count(len(members)); err != nil {
		return err
	}
	for _, m := range members {
		if err := e.writeGeometry(m); err != nil {
			return err
		}
	}
	return nil
}
