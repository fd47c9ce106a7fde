package render

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"

	"github.com/woozymasta/pgeom/geom"
)

const svgMediaType = "image/svg+xml"

// SVG writes geoms as a minified SVG document with the same layout Image uses.
func SVG(w io.Writer, geoms []geom.Geometry, opts Options) error {
	if opts.Size <= 2*opts.Padding {
		return errors.Errorf("render: size %d too small for padding %d", opts.Size, opts.Padding)
	}
	b, ok := extent(geoms)
	if !ok {
		return errors.New("render: nothing to draw")
	}
	proj := newProjection(b, opts.Size, opts.Padding)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		opts.Size, opts.Size, opts.Size, opts.Size)
	fmt.Fprintf(&buf, `<rect width="100%%" height="100%%" fill="%s"/>`, hexColor(opts.Background))
	for _, g := range geoms {
		writeSVG(&buf, proj, g, opts)
	}
	buf.WriteString(`</svg>`)

	m := minify.New()
	m.AddFunc(svgMediaType, svg.Minify)
	if err := m.Minify(svgMediaType, w, &buf); err != nil {
		return errors.Wrap(err, "render: minify svg")
	}
	return nil
}

func writeSVG(buf *bytes.Buffer, proj projection, g geom.Geometry, opts Options) {
	stroke := hexColor(opts.Stroke)
	width := strconv.FormatFloat(float64(opts.Width), 'f', -1, 32)

	switch v := g.(type) {
	case *geom.Point:
		if !v.IsEmpty() {
			x, y := proj.apply(v)
			fmt.Fprintf(buf, `<circle cx="%g" cy="%g" r="%s" fill="%s"/>`, x, y, width, stroke)
		}
	case *geom.LineString:
		fmt.Fprintf(buf, `<path d="%s" fill="none" stroke="%s" stroke-width="%s"/>`,
			pathData(proj, v.Points(), false), stroke, width)
	case *geom.Polygon:
		var d string
		for _, r := range v.Rings() {
			d += pathData(proj, r.Points(), true)
		}
		fmt.Fprintf(buf, `<path d="%s" fill="%s" fill-rule="evenodd" stroke="%s" stroke-width="%s"/>`,
			d, hexColor(opts.Fill), stroke, width)
	case *geom.MultiPoint:
		for _, p := range v.Points() {
			writeSVG(buf, proj, p, opts)
		}
	case *geom.MultiLineString:
		for i := 0; i < v.Len(); i++ {
			writeSVG(buf, proj, v.LineString(i), opts)
		}
	case *geom.MultiPolygon:
		for i := 0; i < v.Len(); i++ {
			writeSVG(buf, proj, v.Polygon(i), opts)
		}
	case *geom.GeometryCollection:
		for i := 0; i < v.Len(); i++ {
			writeSVG(buf, proj, v.Geometry(i), opts)
		}
	}
}

func pathData(proj projection, points []*geom.Point, closed bool) string {
	var buf bytes.Buffer
	for i, p := range points {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		x, y := proj.apply(p)
		fmt.Fprintf(&buf, "%s%g %g", cmd, x, y)
	}
	if closed && len(points) > 0 {
		buf.WriteString("Z")
	}
	return buf.String()
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
