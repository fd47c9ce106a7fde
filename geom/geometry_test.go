package geom

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const multiPolygonWKT = "MULTIPOLYGON(((10 10 0,20 10 0,20 20 0,20 10 0,10 10 0),(5 5 0,5 6 0,6 6 0,6 5 0,5 5 0)))"

func mustParse(t *testing.T, s string) Geometry {
	t.Helper()
	g, err := FromString(s)
	require.NoError(t, err, s)
	return g
}

func TestTypeString(t *testing.T) {
	require.Equal(t, "POINT", TypePoint.String())
	require.Equal(t, "GEOMETRYCOLLECTION", TypeGeometryCollection.String())
	require.Equal(t, "UNKNOWN", Type(42).String())
	require.False(t, Type(0).Valid())
	require.True(t, TypeMultiPolygon.Valid())
}

func TestDimensionFromFirstChild(t *testing.T) {
	l := NewLineString(NewPointZ(1, 2, 3), NewPoint(4, 5))
	require.Equal(t, 3, l.Dimension())

	l = NewLineString(NewPoint(4, 5), NewPointZ(1, 2, 3))
	require.Equal(t, 2, l.Dimension())

	require.Equal(t, 2, NewGeometryCollection().Dimension())
	require.Equal(t, 3, NewGeometryCollection(NewMultiPoint(NewPointZ(1, 1, 1))).Dimension())
}

func TestIsEmpty(t *testing.T) {
	require.False(t, NewPoint(1, 2).IsEmpty())
	require.True(t, NewEmptyPoint().IsEmpty())
	require.True(t, NewLineString().IsEmpty())
	require.True(t, NewMultiPolygon().IsEmpty())
	require.False(t, NewGeometryCollection(NewGeometryCollection()).IsEmpty())
}

func TestNumPoints(t *testing.T) {
	tests := []struct {
		name string
		geom Geometry
		want int
	}{
		{"point", NewPoint(1, 2), 1},
		{"empty point", NewEmptyPoint(), 0},
		{"empty collection", NewGeometryCollection(), 0},
		{"multipolygon", mustParse(t, multiPolygonWKT), 10},
		{"collection", mustParse(t, "GEOMETRYCOLLECTION(POINT(1 2),LINESTRING(1 2,3 4,5 6))"), 4},
		{"multipoint with empty", NewMultiPoint(NewPoint(1, 2), NewEmptyPoint()), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NumPoints(tt.geom))
		})
	}
}

func TestPointNFlattening(t *testing.T) {
	g := mustParse(t, "GEOMETRYCOLLECTION(POINT(1 1),MULTILINESTRING((2 2,3 3),(4 4)),POLYGON((5 5,6 6,7 7,5 5)),GEOMETRYCOLLECTION EMPTY,MULTIPOINT(8 8,9 9))")
	n := NumPoints(g)
	require.Equal(t, 10, n)

	flat := Points(g)
	require.Len(t, flat, n)
	want := []float64{1, 2, 3, 4, 5, 6, 7, 5, 8, 9}
	for i := 0; i < n; i++ {
		p, err := PointN(g, i)
		require.NoError(t, err)
		require.Same(t, flat[i], p)
		require.Equal(t, want[i], p.X())
	}
}

func TestPointNOutOfRange(t *testing.T) {
	g := mustParse(t, "LINESTRING(1 2,3 4)")

	for _, i := range []int{-1, 2, 100} {
		_, err := PointN(g, i)
		var ie *IndexError
		require.True(t, errors.As(err, &ie))
		require.Equal(t, i, ie.Index)
		require.Equal(t, 2, ie.Len)
	}

	_, err := PointN(NewGeometryCollection(), 0)
	var ie *IndexError
	require.ErrorAs(t, err, &ie)
	require.Contains(t, err.Error(), "empty geometry")
}

func TestFirstLastPoint(t *testing.T) {
	g := mustParse(t, multiPolygonWKT)

	first, err := FirstPoint(g)
	require.NoError(t, err)
	require.Equal(t, []float64{10, 10, 0}, first.Coords())

	last, err := LastPoint(g)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 5, 0}, last.Coords())

	p0, err := PointN(g, 0)
	require.NoError(t, err)
	require.Same(t, p0, first)

	// empty members are skipped on the way down
	c := NewGeometryCollection(NewGeometryCollection(), NewPoint(7, 8), NewLineString())
	first, err = FirstPoint(c)
	require.NoError(t, err)
	require.Equal(t, 7.0, first.X())
	last, err = LastPoint(c)
	require.NoError(t, err)
	require.Same(t, first, last)

	_, err = FirstPoint(NewMultiPoint())
	require.ErrorAs(t, err, new(*IndexError))
	_, err = LastPoint(NewEmptyPoint())
	require.ErrorAs(t, err, new(*IndexError))
}

func TestEqual(t *testing.T) {
	a := mustParse(t, multiPolygonWKT)
	b := mustParse(t, multiPolygonWKT)
	require.True(t, Equal(a, b))
	require.Equal(t, a.Hash(), b.Hash())

	tests := []struct {
		name string
		a, b Geometry
	}{
		{"type", NewMultiPoint(NewPoint(1, 2)), NewLineString(NewPoint(1, 2))},
		{"dimension", NewPoint(1, 2), NewPointZ(1, 2, 0)},
		{"coordinate", NewPoint(1, 2), NewPoint(1, 3)},
		{"z", NewPointZ(1, 2, 3), NewPointZ(1, 2, 4)},
		{"order", NewLineString(NewPoint(1, 2), NewPoint(3, 4)), NewLineString(NewPoint(3, 4), NewPoint(1, 2))},
		{"count", NewMultiPoint(NewPoint(1, 2)), NewMultiPoint(NewPoint(1, 2), NewPoint(1, 2))},
		{"srid", WithSRID(NewPoint(1, 2), 4326), NewPoint(1, 2)},
		{"empty point", NewEmptyPoint(), NewPoint(0, 0)},
		{"nil", NewPoint(1, 2), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.False(t, Equal(tt.a, tt.b))
			require.False(t, Equal(tt.b, tt.a))
		})
	}

	require.True(t, Equal(nil, nil))
	require.True(t, Equal(NewEmptyPoint(), NewEmptyPoint()))
}

func TestHashIgnoresSRIDAndNegativeZero(t *testing.T) {
	p := NewPoint(0, 1)
	require.Equal(t, p.Hash(), WithSRID(p, 4326).Hash())
	require.Equal(t, p.Hash(), NewPoint(math.Copysign(0, -1), 1).Hash())
	require.NotEqual(t, NewPoint(1, 2).Hash(), NewPoint(2, 1).Hash())
	require.NotEqual(t, NewLineString(NewPoint(1, 2)).Hash(), NewMultiPoint(NewPoint(1, 2)).Hash())
}

func TestWithSRIDReturnsCopy(t *testing.T) {
	l := NewLineString(NewPoint(1, 2), NewPoint(3, 4))
	s := WithSRID(l, 3857)
	require.Equal(t, 3857, s.SRID())
	require.Equal(t, SRIDUnset, l.SRID())
	require.Equal(t, "SRID=3857;LINESTRING(1 2,3 4)", s.String())
	require.Equal(t, "LINESTRING(1 2,3 4)", l.String())
}

func TestConstructorsCopyInput(t *testing.T) {
	points := []*Point{NewPoint(1, 2), NewPoint(3, 4)}
	l := NewLineString(points...)
	points[0] = NewPoint(9, 9)
	require.Equal(t, 1.0, l.Point(0).X())

	out := l.Points()
	out[1] = nil
	require.NotNil(t, l.Point(1))
}
