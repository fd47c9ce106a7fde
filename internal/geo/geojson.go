// Package geo holds the GeoJSON document types written by the converter.
package geo

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/woozymasta/pgeom/geom"
	"github.com/woozymasta/pgeom/geomconv"
)

// GeoJSONFeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type GeoJSONFeatureCollection struct {
	Type     string           `json:"type" yaml:"type"`
	Features []GeoJSONFeature `json:"features" yaml:"features"`
}

// GeoJSONFeature represents a single geographic feature with geometry and properties.
type GeoJSONFeature struct {
	Properties map[string]interface{} `json:"properties" yaml:"properties"`
	Type       string                 `json:"type" yaml:"type"`
	Geometry   GeoJSONGeometry        `json:"geometry" yaml:"geometry"`
}

// GeoJSONGeometry represents the geometry of a feature. Coordinates nest one
// array level per structural level; collections carry Geometries instead.
type GeoJSONGeometry struct {
	Type        string            `json:"type" yaml:"type"`
	Coordinates interface{}       `json:"coordinates,omitempty" yaml:"coordinates,omitempty"`
	Geometries  []GeoJSONGeometry `json:"geometries,omitempty" yaml:"geometries,omitempty"`
}

// NewFeatureCollection returns an empty collection with capacity for n features.
func NewFeatureCollection(n int) GeoJSONFeatureCollection {
	return GeoJSONFeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]GeoJSONFeature, 0, n),
	}
}

// NewGeometry converts g to its GeoJSON form. The SRID is not represented.
func NewGeometry(g geom.Geometry) (GeoJSONGeometry, error) {
	var out GeoJSONGeometry

	b, err := geomconv.MarshalGeoJSON(g)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, errors.Wrap(err, "decode GeoJSON geometry")
	}

	return out, nil
}

// NewFeature builds a feature for g. Its properties describe the geometry
// and are extended with extra.
func NewFeature(g geom.Geometry, extra map[string]interface{}) (GeoJSONFeature, error) {
	geometry, err := NewGeometry(g)
	if err != nil {
		return GeoJSONFeature{}, err
	}

	props := map[string]interface{}{
		"type":      g.Type().String(),
		"dimension": g.Dimension(),
		"points":    geom.NumPoints(g),
	}
	if srid := g.SRID(); srid != geom.SRIDUnset {
		props["srid"] = srid
	}
	for k, v := range extra {
		props[k] = v
	}

	return GeoJSONFeature{
		Type:       "Feature",
		Geometry:   geometry,
		Properties: props,
	}, nil
}
