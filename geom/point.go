package geom

import "math"

// Point is a single coordinate tuple. An empty point (no coordinates) only
// comes out of typed-empty parsing or NaN coordinates in EWKB.
type Point struct {
	base
	x, y, z float64
	empty   bool
}

// NewPoint returns a two-dimensional point.
func NewPoint(x, y float64) *Point {
	p := &Point{base: newBase(2), x: x, y: y}
	p.hash = hashPoint(p)
	return p
}

// NewPointZ returns a three-dimensional point.
func NewPointZ(x, y, z float64) *Point {
	p := &Point{base: newBase(3), x: x, y: y, z: z}
	p.hash = hashPoint(p)
	return p
}

// NewEmptyPoint returns a point without coordinates.
func NewEmptyPoint() *Point {
	p := &Point{base: newBase(2), x: math.NaN(), y: math.NaN(), empty: true}
	p.hash = hashPoint(p)
	return p
}

func (p *Point) Type() Type     { return TypePoint }
func (p *Point) IsEmpty() bool  { return p.empty }
func (p *Point) String() string { return MarshalWKT(p) }

func (p *Point) X() float64 { return p.x }
func (p *Point) Y() float64 { return p.y }

// Z returns the third coordinate, 0 for two-dimensional points.
func (p *Point) Z() float64 { return p.z }

// Coords returns the coordinates as a slice of length Dimension, or nil for
// an empty point.
func (p *Point) Coords() []float64 {
	switch {
	case p.empty:
		return nil
	case p.dim == 3:
		return []float64{p.x, p.y, p.z}
	}
	return []float64{p.x, p.y}
}

func (p *Point) equal(o *Point) bool {
	if p.empty || o.empty {
		return p.empty == o.empty
	}
	if p.x != o.x || p.y != o.y {
		return false
	}
	return p.dim != 3 || p.z == o.z
}
