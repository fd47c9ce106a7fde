package geom

import (
	"encoding/binary"
	"encoding/hex"
	"math"
	"strings"
)

// EWKB type word flags, as written by PostGIS.
const (
	ewkbZ    uint32 = 0x80000000
	ewkbM    uint32 = 0x40000000
	ewkbSRID uint32 = 0x20000000

	ewkbTypeMask uint32 = 0x0fffffff
)

const (
	bigEndianFlag    byte = 0
	littleEndianFlag byte = 1

	// order byte, type word and a zero count: the smallest nested geometry
	minGeometryLen = 9
)

// UnmarshalEWKB decodes one EWKB geometry. The whole buffer must be consumed.
// ISO WKB Z type codes (1001..1007) are accepted as well.
func UnmarshalEWKB(b []byte) (Geometry, error) {
	d := &decoder{b: b}
	g, err := d.readGeometry()
	if err != nil {
		return nil, err
	}
	if d.off != len(d.b) {
		return nil, d.errorf("%d trailing bytes", len(d.b)-d.off)
	}
	return g, nil
}

// UnmarshalEWKBHex decodes hex-encoded EWKB, in either letter case.
func UnmarshalEWKBHex(s string) (Geometry, error) {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, &ParseError{Input: s, Msg: "invalid EWKB hex", Err: err}
	}
	return UnmarshalEWKB(b)
}

type decoder struct {
	b     []byte
	off   int
	order binary.ByteOrder
}

func (d *decoder) errorf(format string, args ...any) *ParseError {
	return parseErrorf(hex.EncodeToString(d.b), format+" at offset %d", append(args, d.off)...)
}

func (d *decoder) need(n int) error {
	if n < 0 || len(d.b)-d.off < n {
		return d.errorf("truncated EWKB: need %d bytes, have %d", n, len(d.b)-d.off)
	}
	return nil
}

func (d *decoder) u32() (uint32, error) {
	if err := d.need(4); err != nil {
		return 0, err
	}
	v := d.order.Uint32(d.b[d.off:])
	d.off += 4
	return v, nil
}

// count reads an element count and checks that count elements of at least
// minSize bytes fit into the remaining input.
func (d *decoder) count(minSize int) (int, error) {
	n, err := d.u32()
	if err != nil {
		return 0, err
	}
	if uint64(n)*uint64(minSize) > uint64(len(d.b)-d.off) {
		return 0, d.errorf("count %d exceeds remaining input", n)
	}
	return int(n), nil
}

func (d *decoder) f64() float64 {
	v := math.Float64frombits(d.order.Uint64(d.b[d.off:]))
	d.off += 8
	return v
}

func (d *decoder) readGeometry() (Geometry, error) {
	if err := d.need(1); err != nil {
		return nil, err
	}
	switch d.b[d.off] {
	case bigEndianFlag:
		d.order = binary.BigEndian
	case littleEndianFlag:
		d.order = binary.LittleEndian
	default:
		return nil, d.errorf("invalid byte order flag %d", d.b[d.off])
	}
	d.off++

	word, err := d.u32()
	if err != nil {
		return nil, err
	}
	if word&ewkbM != 0 {
		return nil, d.errorf("measured (M) geometries are not supported")
	}
	dim := 2
	if word&ewkbZ != 0 {
		dim = 3
	}
	code := word & ewkbTypeMask
	if code > 1000 {
		switch code / 1000 {
		case 1:
			dim = 3
		default:
			return nil, d.errorf("unsupported ISO type code %d", code)
		}
		code %= 1000
	}
	srid := SRIDUnset
	if word&ewkbSRID != 0 {
		v, err := d.u32()
		if err != nil {
			return nil, err
		}
		srid = int(int32(v))
	}

	g, err := d.readPayload(Type(code), dim)
	if err != nil {
		return nil, err
	}
	if srid != SRIDUnset {
		g = WithSRID(g, srid)
	}
	return g, nil
}

func (d *decoder) readPayload(t Type, dim int) (Geometry, error) {
	switch t {
	case TypePoint:
		if err := d.need(8 * dim); err != nil {
			return nil, err
		}
		p := d.tuple(dim)
		if math.IsNaN(p.x) && math.IsNaN(p.y) {
			return NewEmptyPoint(), nil
		}
		return p, nil
	case TypeLineString:
		points, err := d.tuples(dim)
		if err != nil {
			return nil, err
		}
		return NewLineString(points...), nil
	case TypePolygon:
		n, err := d.count(4)
		if err != nil {
			return nil, err
		}
		rings := make([]*LinearRing, n)
		for i := range rings {
			points, err := d.tuples(dim)
			if err != nil {
				return nil, err
			}
			rings[i] = NewLinearRing(points...)
		}
		return NewPolygon(rings...), nil
	case TypeMultiPoint, TypeMultiLineString, TypeMultiPolygon, TypeGeometryCollection:
		return d.readCollection(t)
	}
	return nil, d.errorf("unknown geometry type code %d", uint32(t))
}

func (d *decoder) tuple(dim int) *Point {
	x, y := d.f64(), d.f64()
	if dim == 3 {
		return NewPointZ(x, y, d.f64())
	}
	return NewPoint(x, y)
}

func (d *decoder) tuples(dim int) ([]*Point, error) {
	n, err := d.count(8 * dim)
	if err != nil {
		return nil, err
	}
	points := make([]*Point, n)
	for i := range points {
		points[i] = d.tuple(dim)
	}
	return points, nil
}

// readCollection reads the members of a Multi* or GeometryCollection, each
// with its own header.
func (d *decoder) readCollection(t Type) (Geometry, error) {
	n, err := d.count(minGeometryLen)
	if err != nil {
		return nil, err
	}
	children := make([]Geometry, n)
	for i := range children {
		if children[i], err = d.readGeometry(); err != nil {
			return nil, err
		}
	}

	switch t {
	case TypeMultiPoint:
		points, err := membersOf[*Point](d, children, TypePoint)
		if err != nil {
			return nil, err
		}
		return NewMultiPoint(points...), nil
	case TypeMultiLineString:
		lines, err := membersOf[*LineString](d, children, TypeLineString)
		if err != nil {
			return nil, err
		}
		return NewMultiLineString(lines...), nil
	case TypeMultiPolygon:
		polygons, err := membersOf[*Polygon](d, children, TypePolygon)
		if err != nil {
			return nil, err
		}
		return NewMultiPolygon(polygons...), nil
	}
	return NewGeometryCollection(children...), nil
}

func membersOf[T Geometry](d *decoder, children []Geometry, want Type) ([]T, error) {
	out := make([]T, len(children))
	for i, c := range children {
		m, ok := c.(T)
		if !ok {
			return nil, d.errorf("member %d is %s, want %s", i, c.Type(), want)
		}
		out[i] = m
	}
	return out, nil
}
