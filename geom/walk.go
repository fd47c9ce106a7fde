package geom

// NumPoints returns the number of coordinate tuples in the tree rooted at g.
func NumPoints(g Geometry) int {
	switch t := g.(type) {
	case *Point:
		if t.empty {
			return 0
		}
		return 1
	case *LineString:
		return countPoints(t.points)
	case *Polygon:
		n := 0
		for _, r := range t.rings {
			n += countPoints(r.points)
		}
		return n
	case *MultiPoint:
		return countPoints(t.points)
	case *MultiLineString:
		return sumPoints(t.lines)
	case *MultiPolygon:
		return sumPoints(t.polygons)
	case *GeometryCollection:
		return sumPoints(t.geoms)
	}
	return 0
}

func countPoints(points []*Point) int {
	n := 0
	for _, p := range points {
		if !p.empty {
			n++
		}
	}
	return n
}

func sumPoints[T Geometry](children []T) int {
	n := 0
	for _, c := range children {
		n += NumPoints(c)
	}
	return n
}

// PointN returns the i-th coordinate tuple of g in depth-first, left-to-right
// order. It fails with *IndexError when i is outside [0, NumPoints(g)).
func PointN(g Geometry, i int) (*Point, error) {
	n := NumPoints(g)
	if i < 0 || i >= n {
		return nil, &IndexError{Index: i, Len: n}
	}
	return nthPoint(g, i), nil
}

// nthPoint assumes 0 <= i < NumPoints(g).
func nthPoint(g Geometry, i int) *Point {
	switch t := g.(type) {
	case *Point:
		return t
	case *LineString:
		return nthInSeq(t.points, i)
	case *MultiPoint:
		return nthInSeq(t.points, i)
	case *Polygon:
		for _, r := range t.rings {
			n := countPoints(r.points)
			if i < n {
				return nthInSeq(r.points, i)
			}
			i -= n
		}
	case *MultiLineString:
		return nthInChildren(t.lines, i)
	case *MultiPolygon:
		return nthInChildren(t.polygons, i)
	case *GeometryCollection:
		return nthInChildren(t.geoms, i)
	}
	return nil
}

func nthInSeq(points []*Point, i int) *Point {
	for _, p := range points {
		if p.empty {
			continue
		}
		if i == 0 {
			return p
		}
		i--
	}
	return nil
}

func nthInChildren[T Geometry](children []T, i int) *Point {
	for _, c := range children {
		n := NumPoints(c)
		if i < n {
			return nthPoint(c, i)
		}
		i -= n
	}
	return nil
}

// Points returns every coordinate tuple of g in depth-first order.
func Points(g Geometry) []*Point {
	out := make([]*Point, 0, NumPoints(g))
	return appendPoints(out, g)
}

func appendPoints(out []*Point, g Geometry) []*Point {
	switch t := g.(type) {
	case *Point:
		if !t.empty {
			out = append(out, t)
		}
	case *LineString:
		out = appendSeq(out, t.points)
	case *MultiPoint:
		out = appendSeq(out, t.points)
	case *Polygon:
		for _, r := range t.rings {
			out = appendSeq(out, r.points)
		}
	case *MultiLineString:
		for _, c := range t.lines {
			out = appendPoints(out, c)
		}
	case *MultiPolygon:
		for _, c := range t.polygons {
			out = appendPoints(out, c)
		}
	case *GeometryCollection:
		for _, c := range t.geoms {
			out = appendPoints(out, c)
		}
	}
	return out
}

func appendSeq(out []*Point, points []*Point) []*Point {
	for _, p := range points {
		if !p.empty {
			out = append(out, p)
		}
	}
	return out
}

// FirstPoint returns the first coordinate tuple of g, descending into the
// first non-empty child at each level.
func FirstPoint(g Geometry) (*Point, error) {
	if p := edgePoint(g, false); p != nil {
		return p, nil
	}
	return nil, &IndexError{Index: 0}
}

// LastPoint returns the last coordinate tuple of g, descending into the last
// non-empty child at each level.
func LastPoint(g Geometry) (*Point, error) {
	if p := edgePoint(g, true); p != nil {
		return p, nil
	}
	return nil, &IndexError{Index: -1}
}

func edgePoint(g Geometry, last bool) *Point {
	switch t := g.(type) {
	case *Point:
		if t.empty {
			return nil
		}
		return t
	case *LineString:
		return edgeOfSeq(t.points, last)
	case *MultiPoint:
		return edgeOfSeq(t.points, last)
	case *Polygon:
		return edgeOf(len(t.rings), last, func(i int) *Point { return edgeOfSeq(t.rings[i].points, last) })
	case *MultiLineString:
		return edgeOf(len(t.lines), last, func(i int) *Point { return edgePoint(t.lines[i], last) })
	case *MultiPolygon:
		return edgeOf(len(t.polygons), last, func(i int) *Point { return edgePoint(t.polygons[i], last) })
	case *GeometryCollection:
		return edgeOf(len(t.geoms), last, func(i int) *Point { return edgePoint(t.geoms[i], last) })
	}
	return nil
}

func edgeOfSeq(points []*Point, last bool) *Point {
	return edgeOf(len(points), last, func(i int) *Point {
		if points[i].empty {
			return nil
		}
		return points[i]
	})
}

func edgeOf(n int, last bool, at func(int) *Point) *Point {
	for k := 0; k < n; k++ {
		i := k
		if last {
			i = n - 1 - k
		}
		if p := at(i); p != nil {
			return p
		}
	}
	return nil
}

// Equal reports whether a and b are the same variant with the same
// dimension, SRID and, recursively, pairwise equal children in order.
func Equal(a, b Geometry) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() || a.Dimension() != b.Dimension() || a.SRID() != b.SRID() {
		return false
	}
	switch t := a.(type) {
	case *Point:
		return t.equal(b.(*Point))
	case *LineString:
		return equalPoints(t.points, b.(*LineString).points)
	case *Polygon:
		o := b.(*Polygon)
		if len(t.rings) != len(o.rings) {
			return false
		}
		for i := range t.rings {
			if !equalRings(t.rings[i], o.rings[i]) {
				return false
			}
		}
		return true
	case *MultiPoint:
		return equalPoints(t.points, b.(*MultiPoint).points)
	case *MultiLineString:
		return equalChildren(t.lines, b.(*MultiLineString).lines)
	case *MultiPolygon:
		return equalChildren(t.polygons, b.(*MultiPolygon).polygons)
	case *GeometryCollection:
		return equalChildren(t.geoms, b.(*GeometryCollection).geoms)
	}
	return false
}

func equalRings(a, b *LinearRing) bool {
	return a.dim == b.dim && equalPoints(a.points, b.points)
}

func equalPoints(a, b []*Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].dim != b[i].dim || !a[i].equal(b[i]) {
			return false
		}
	}
	return true
}

func equalChildren[T Geometry](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// WithSRID returns a shallow copy of g carrying srid. Children are shared.
func WithSRID(g Geometry, srid int) Geometry {
	switch t := g.(type) {
	case *Point:
		c := *t
		c.srid = srid
		return &c
	case *LineString:
		c := *t
		c.srid = srid
		return &c
	case *Polygon:
		c := *t
		c.srid = srid
		return &c
	case *MultiPoint:
		c := *t
		c.srid = srid
		return &c
	case *MultiLineString:
		c := *t
		c.srid = srid
		return &c
	case *MultiPolygon:
		c := *t
		c.srid = srid
		return &c
	case *GeometryCollection:
		c := *t
		c.srid = srid
		return &c
	}
	return g
}
