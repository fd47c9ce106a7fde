package geo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/pgeom/geom"
)

func TestNewFeature(t *testing.T) {
	g, err := geom.FromString("SRID=4326;LINESTRING(1 2 3,4 5 6)")
	require.NoError(t, err)

	f, err := NewFeature(g, map[string]interface{}{"line": 7})
	require.NoError(t, err)
	require.Equal(t, "Feature", f.Type)
	require.Equal(t, "LineString", f.Geometry.Type)
	require.Equal(t, map[string]interface{}{
		"type":      "LINESTRING",
		"dimension": 3,
		"points":    2,
		"srid":      4326,
		"line":      7,
	}, f.Properties)

	fc := NewFeatureCollection(1)
	fc.Features = append(fc.Features, f)

	b, err := json.Marshal(fc)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"type": "FeatureCollection",
		"features": [{
			"type": "Feature",
			"geometry": {"type": "LineString", "coordinates": [[1,2,3],[4,5,6]]},
			"properties": {"type": "LINESTRING", "dimension": 3, "points": 2, "srid": 4326, "line": 7}
		}]
	}`, string(b))
}

func TestNewGeometryCollection(t *testing.T) {
	g, err := geom.FromString("GEOMETRYCOLLECTION(POINT(1 2),POINT(3 4))")
	require.NoError(t, err)

	out, err := NewGeometry(g)
	require.NoError(t, err)
	require.Equal(t, "GeometryCollection", out.Type)
	require.Len(t, out.Geometries, 2)
	require.Nil(t, out.Coordinates)

	b, err := yaml.Marshal(out)
	require.NoError(t, err)
	require.Contains(t, string(b), "type: GeometryCollection")
	require.NotContains(t, string(b), "coordinates: null")
}
