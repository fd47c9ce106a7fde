// Package convert implements line-oriented batch conversion of geometries.
package convert

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/tdewolff/minify/v2"
	mjson "github.com/tdewolff/minify/v2/json"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/pgeom/geom"
	"github.com/woozymasta/pgeom/internal/geo"
	"github.com/woozymasta/pgeom/internal/render"
)

// Output formats.
const (
	FormatEWKT    = "ewkt"
	FormatEWKB    = "ewkb"
	FormatGeoJSON = "geojson"
	FormatSVG     = "svg"
	FormatWebP    = "webp"
)

const jsonMediaType = "application/json"

const maxLineSize = 16 << 20

// Options controls the output of Write.
type Options struct {
	Order    binary.ByteOrder // EWKB byte order, little endian when nil
	Render   *render.Options  // preview style for svg and webp, defaults when nil
	Format   string           // ewkt, ewkb, geojson, svg or webp
	Encoding string           // json or yaml, used by geojson only
	Minify   bool             // compact json output
}

// Record is one parsed input line.
type Record struct {
	Geom geom.Geometry
	Line int
}

// Read parses one geometry per line from r. Blank lines and lines starting
// with '#' are skipped. Input may be EWKT or hex EWKB.
func Read(r io.Reader, p geom.Parser) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var records []Record
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		g, err := p.FromString(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		records = append(records, Record{Geom: g, Line: line})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read input")
	}

	return records, nil
}

// Write renders records to w in the requested format.
func Write(w io.Writer, records []Record, opts Options) error {
	switch opts.Format {
	case FormatEWKT, "":
		for _, rec := range records {
			if _, err := fmt.Fprintln(w, geom.MarshalWKT(rec.Geom)); err != nil {
				return errors.Wrap(err, "write output")
			}
		}
		return nil

	case FormatEWKB:
		order := opts.Order
		if order == nil {
			order = binary.LittleEndian
		}
		for _, rec := range records {
			s, err := geom.MarshalEWKBHex(rec.Geom, order)
			if err != nil {
				return errors.Wrapf(err, "line %d", rec.Line)
			}
			if _, err := fmt.Fprintln(w, s); err != nil {
				return errors.Wrap(err, "write output")
			}
		}
		return nil

	case FormatGeoJSON:
		fc := geo.NewFeatureCollection(len(records))
		for _, rec := range records {
			f, err := geo.NewFeature(rec.Geom, map[string]interface{}{"line": rec.Line})
			if err != nil {
				return errors.Wrapf(err, "line %d", rec.Line)
			}
			fc.Features = append(fc.Features, f)
		}
		return encode(w, fc, opts)

	case FormatSVG, FormatWebP:
		style := render.DefaultOptions()
		if opts.Render != nil {
			style = *opts.Render
		}
		geoms := make([]geom.Geometry, len(records))
		for i, rec := range records {
			geoms[i] = rec.Geom
		}
		if opts.Format == FormatSVG {
			return render.SVG(w, geoms, style)
		}
		return render.WebP(w, geoms, style)
	}

	return errors.Errorf("unknown output format %q", opts.Format)
}

func encode(w io.Writer, v interface{}, opts Options) error {
	var (
		data []byte
		err  error
	)
	switch {
	case opts.Encoding == "yaml":
		data, err = yaml.Marshal(v)
	case opts.Minify:
		if data, err = json.Marshal(v); err == nil {
			data, err = minifyJSON(data)
		}
	default:
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return errors.Wrap(err, "marshal output")
	}
	if opts.Encoding != "yaml" {
		data = append(data, '\n')
	}

	_, err = w.Write(data)
	return errors.Wrap(err, "write output")
}

// minifyJSON strips insignificant whitespace and shortens numbers.
func minifyJSON(data []byte) ([]byte, error) {
	m := minify.New()
	m.AddFunc(jsonMediaType, mjson.Minify)
	return m.Bytes(jsonMediaType, data)
}

// Convert reads r and writes the converted records to w. It returns the
// number of geometries converted.
func Convert(r io.Reader, w io.Writer, p geom.Parser, opts Options) (int, error) {
	records, err := Read(r, p)
	if err != nil {
		return 0, err
	}
	if err := Write(w, records, opts); err != nil {
		return 0, err
	}
	return len(records), nil
}
