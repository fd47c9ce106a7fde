package geom

type dimensioned interface {
	Dimension() int
}

// firstDim is the dimension of a composed geometry: that of its first child,
// or 2 when there are none. Later children are not checked.
func firstDim[T dimensioned](children []T) int {
	if len(children) == 0 {
		return 2
	}
	return children[0].Dimension()
}

// LineString is an ordered sequence of points.
type LineString struct {
	base
	points []*Point
}

// NewLineString builds a line string from the given points. The slice is
// copied; points must not be nil.
func NewLineString(points ...*Point) *LineString {
	l := &LineString{base: newBase(firstDim(points)), points: clone(points)}
	l.hash = hashChildren(TypeLineString, l.dim, l.points)
	return l
}

func (l *LineString) Type() Type         { return TypeLineString }
func (l *LineString) IsEmpty() bool      { return len(l.points) == 0 }
func (l *LineString) String() string     { return MarshalWKT(l) }
func (l *LineString) Len() int           { return len(l.points) }
func (l *LineString) Point(i int) *Point { return l.points[i] }
func (l *LineString) Points() []*Point   { return clone(l.points) }

// LinearRing is a closed point sequence bounding a Polygon. Closure is not
// validated. It is a component of Polygon, not a standalone geometry.
type LinearRing struct {
	dim    int
	hash   uint64
	points []*Point
}

// NewLinearRing builds a ring from the given points.
func NewLinearRing(points ...*Point) *LinearRing {
	r := &LinearRing{dim: firstDim(points), points: clone(points)}
	r.hash = hashChildren(0, r.dim, r.points)
	return r
}

func (r *LinearRing) Dimension() int     { return r.dim }
func (r *LinearRing) Hash() uint64       { return r.hash }
func (r *LinearRing) IsEmpty() bool      { return len(r.points) == 0 }
func (r *LinearRing) Len() int           { return len(r.points) }
func (r *LinearRing) Point(i int) *Point { return r.points[i] }
func (r *LinearRing) Points() []*Point   { return clone(r.points) }

// Polygon is an exterior ring followed by zero or more interior rings.
type Polygon struct {
	base
	rings []*LinearRing
}

// NewPolygon builds a polygon from its rings, exterior first.
func NewPolygon(rings ...*LinearRing) *Polygon {
	p := &Polygon{base: newBase(firstDim(rings)), rings: clone(rings)}
	p.hash = hashChildren(TypePolygon, p.dim, p.rings)
	return p
}

func (p *Polygon) Type() Type             { return TypePolygon }
func (p *Polygon) IsEmpty() bool          { return len(p.rings) == 0 }
func (p *Polygon) String() string         { return MarshalWKT(p) }
func (p *Polygon) Len() int               { return len(p.rings) }
func (p *Polygon) Ring(i int) *LinearRing { return p.rings[i] }
func (p *Polygon) Rings() []*LinearRing   { return clone(p.rings) }

// MultiPoint is an ordered set of points.
type MultiPoint struct {
	base
	points []*Point
}

// NewMultiPoint returns a multi point of the given points, which may be empty.
func NewMultiPoint(points ...*Point) *MultiPoint {
	m := &MultiPoint{base: newBase(firstDim(points)), points: clone(points)}
	m.hash = hashChildren(TypeMultiPoint, m.dim, m.points)
	return m
}

func (m *MultiPoint) Type() Type         { return TypeMultiPoint }
func (m *MultiPoint) IsEmpty() bool      { return len(m.points) == 0 }
func (m *MultiPoint) String() string     { return MarshalWKT(m) }
func (m *MultiPoint) Len() int           { return len(m.points) }
func (m *MultiPoint) Point(i int) *Point { return m.points[i] }
func (m *MultiPoint) Points() []*Point   { return clone(m.points) }

// MultiLineString is an ordered set of line strings.
type MultiLineString struct {
	base
	lines []*LineString
}

// NewMultiLineString returns a multi line string of the given lines.
func NewMultiLineString(lines ...*LineString) *MultiLineString {
	m := &MultiLineString{base: newBase(firstDim(lines)), lines: clone(lines)}
	m.hash = hashChildren(TypeMultiLineString, m.dim, m.lines)
	return m
}

func (m *MultiLineString) Type() Type                   { return TypeMultiLineString }
func (m *MultiLineString) IsEmpty() bool                { return len(m.lines) == 0 }
func (m *MultiLineString) String() string               { return MarshalWKT(m) }
func (m *MultiLineString) Len() int                     { return len(m.lines) }
func (m *MultiLineString) LineString(i int) *LineString { return m.lines[i] }

// MultiPolygon is an ordered set of polygons.
type MultiPolygon struct {
	base
	polygons []*Polygon
}

// NewMultiPolygon returns a multi polygon of the given polygons.
func NewMultiPolygon(polygons ...*Polygon) *MultiPolygon {
	m := &MultiPolygon{base: newBase(firstDim(polygons)), polygons: clone(polygons)}
	m.hash = hashChildren(TypeMultiPolygon, m.dim, m.polygons)
	return m
}

func (m *MultiPolygon) Type() Type             { return TypeMultiPolygon }
func (m *MultiPolygon) IsEmpty() bool          { return len(m.polygons) == 0 }
func (m *MultiPolygon) String() string         { return MarshalWKT(m) }
func (m *MultiPolygon) Len() int               { return len(m.polygons) }
func (m *MultiPolygon) Polygon(i int) *Polygon { return m.polygons[i] }

// GeometryCollection is an ordered set of arbitrary geometries.
type GeometryCollection struct {
	base
	geoms []Geometry
}

// NewGeometryCollection returns a collection of the given geometries.
func NewGeometryCollection(geoms ...Geometry) *GeometryCollection {
	c := &GeometryCollection{base: newBase(firstDim(geoms)), geoms: clone(geoms)}
	c.hash = hashChildren(TypeGeometryCollection, c.dim, c.geoms)
	return c
}

func (c *GeometryCollection) Type() Type              { return TypeGeometryCollection }
func (c *GeometryCollection) IsEmpty() bool           { return len(c.geoms) == 0 }
func (c *GeometryCollection) String() string          { return MarshalWKT(c) }
func (c *GeometryCollection) Len() int                { return len(c.geoms) }
func (c *GeometryCollection) Geometry(i int) Geometry { return c.geoms[i] }

func clone[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return append([]T(nil), s...)
}
