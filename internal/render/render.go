// Package render draws geometries as preview images (WebP raster or SVG).
package render

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/woozymasta/pgeom/geom"
)

// supersample is the factor the raster is drawn at before it is scaled down.
const supersample = 2

// Options controls the preview style.
type Options struct {
	Background color.RGBA
	Fill       color.RGBA
	Stroke     color.RGBA
	Size       int     // width and height in pixels
	Padding    int     // pixels kept free on each side
	Width      float32 // stroke width in pixels
	Quality    float32 // WebP quality, lossless when zero
}

// DefaultOptions returns a 512px preview style.
func DefaultOptions() Options {
	return Options{
		Background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Fill:       color.RGBA{R: 0x4a, G: 0x90, B: 0xd9, A: 0xff},
		Stroke:     color.RGBA{R: 0x1f, G: 0x3a, B: 0x5f, A: 0xff},
		Size:       512,
		Padding:    16,
		Width:      2,
	}
}

// bbox is the planar extent of the drawn geometries.
type bbox struct {
	minX, minY, maxX, maxY float64
}

func extent(geoms []geom.Geometry) (bbox, bool) {
	b := bbox{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	found := false
	for _, g := range geoms {
		for _, p := range geom.Points(g) {
			if p.IsEmpty() {
				continue
			}
			found = true
			b.minX = math.Min(b.minX, p.X())
			b.minY = math.Min(b.minY, p.Y())
			b.maxX = math.Max(b.maxX, p.X())
			b.maxY = math.Max(b.maxY, p.Y())
		}
	}
	return b, found
}

// projection maps geometry coordinates onto a square canvas, y axis up.
type projection struct {
	b      bbox
	scale  float64
	offX   float64
	offY   float64
	height float64
}

func newProjection(b bbox, size, padding int) projection {
	inner := float64(size - 2*padding)
	span := math.Max(b.maxX-b.minX, b.maxY-b.minY)
	scale := 1.0
	if span > 0 {
		scale = inner / span
	}
	// center the shorter axis
	return projection{
		b:      b,
		scale:  scale,
		offX:   float64(padding) + (inner-(b.maxX-b.minX)*scale)/2,
		offY:   float64(padding) + (inner-(b.maxY-b.minY)*scale)/2,
		height: float64(size),
	}
}

func (p projection) apply(pt *geom.Point) (float32, float32) {
	x := p.offX + (pt.X()-p.b.minX)*p.scale
	y := p.height - (p.offY + (pt.Y()-p.b.minY)*p.scale)
	return float32(x), float32(y)
}

// Image rasterizes geoms. Polygons are filled, rings and lines stroked and
// points drawn as small squares.
func Image(geoms []geom.Geometry, opts Options) (*image.RGBA, error) {
	if opts.Size <= 2*opts.Padding {
		return nil, errors.Errorf("render: size %d too small for padding %d", opts.Size, opts.Padding)
	}
	b, ok := extent(geoms)
	if !ok {
		return nil, errors.New("render: nothing to draw")
	}

	size := opts.Size * supersample
	proj := newProjection(b, size, opts.Padding*supersample)
	width := opts.Width * supersample
	if width <= 0 {
		width = supersample
	}

	fill := vector.NewRasterizer(size, size)
	stroke := vector.NewRasterizer(size, size)
	for _, g := range geoms {
		drawGeometry(fill, stroke, proj, g, width)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	fill.Draw(canvas, canvas.Bounds(), image.NewUniform(opts.Fill), image.Point{})
	stroke.Draw(canvas, canvas.Bounds(), image.NewUniform(opts.Stroke), image.Point{})

	out := image.NewRGBA(image.Rect(0, 0, opts.Size, opts.Size))
	xdraw.CatmullRom.Scale(out, out.Bounds(), canvas, canvas.Bounds(), draw.Over, nil)
	return out, nil
}

func drawGeometry(fill, stroke *vector.Rasterizer, proj projection, g geom.Geometry, width float32) {
	switch v := g.(type) {
	case *geom.Point:
		if !v.IsEmpty() {
			x, y := proj.apply(v)
			square(stroke, x, y, width*1.5)
		}
	case *geom.LineString:
		polyline(stroke, proj, v.Points(), width)
	case *geom.Polygon:
		for _, r := range v.Rings() {
			path(fill, proj, r.Points())
			polyline(stroke, proj, r.Points(), width)
		}
	case *geom.MultiPoint:
		for _, p := range v.Points() {
			drawGeometry(fill, stroke, proj, p, width)
		}
	case *geom.MultiLineString:
		for i := 0; i < v.Len(); i++ {
			drawGeometry(fill, stroke, proj, v.LineString(i), width)
		}
	case *geom.MultiPolygon:
		for i := 0; i < v.Len(); i++ {
			drawGeometry(fill, stroke, proj, v.Polygon(i), width)
		}
	case *geom.GeometryCollection:
		for i := 0; i < v.Len(); i++ {
			drawGeometry(fill, stroke, proj, v.Geometry(i), width)
		}
	}
}

// path adds a closed ring to z. Holes wound against the shell cancel out.
func path(z *vector.Rasterizer, proj projection, points []*geom.Point) {
	if len(points) < 3 {
		return
	}
	x, y := proj.apply(points[0])
	z.MoveTo(x, y)
	for _, p := range points[1:] {
		x, y = proj.apply(p)
		z.LineTo(x, y)
	}
	z.ClosePath()
}

// polyline strokes each segment as a quad of the given width.
func polyline(z *vector.Rasterizer, proj projection, points []*geom.Point, width float32) {
	if len(points) == 1 {
		x, y := proj.apply(points[0])
		square(z, x, y, width)
		return
	}
	for i := 1; i < len(points); i++ {
		ax, ay := proj.apply(points[i-1])
		bx, by := proj.apply(points[i])
		dx, dy := bx-ax, by-ay
		l := float32(math.Hypot(float64(dx), float64(dy)))
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*width/2, dx/l*width/2
		z.MoveTo(ax+nx, ay+ny)
		z.LineTo(bx+nx, by+ny)
		z.LineTo(bx-nx, by-ny)
		z.LineTo(ax-nx, ay-ny)
		z.ClosePath()
	}
}

func square(z *vector.Rasterizer, x, y, r float32) {
	z.MoveTo(x-r, y-r)
	z.LineTo(x+r, y-r)
	z.LineTo(x+r, y+r)
	z.LineTo(x-r, y+r)
	z.ClosePath()
}

// WebP renders geoms and encodes the image as WebP.
func WebP(w io.Writer, geoms []geom.Geometry, opts Options) error {
	img, err := Image(geoms, opts)
	if err != nil {
		return err
	}

	wopts := &webp.Options{Lossless: true}
	if opts.Quality > 0 {
		wopts = &webp.Options{Quality: opts.Quality}
	}
	if err := webp.Encode(w, img, wopts); err != nil {
		return errors.Wrap(err, "render: encode webp")
	}
	return nil
}
