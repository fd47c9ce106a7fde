package main

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/woozymasta/pgeom/geom"
	"github.com/woozymasta/pgeom/internal/convert"
	"github.com/woozymasta/pgeom/internal/logger"
	"github.com/woozymasta/pgeom/internal/render"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Input     string `short:"i" long:"in"         description:"Input file path, one geometry per line. Reads from stdin if empty"`
	Output    string `short:"o" long:"out"        description:"Output file path. Writes to stdout if empty"`
	To        string `short:"t" long:"to"         description:"Output representation" choice:"ewkt" choice:"ewkb" choice:"geojson" choice:"svg" choice:"webp" default:"ewkt"`
	Format    string `short:"f" long:"format"     description:"Document format for geojson output" choice:"json" choice:"yaml" default:"json"`
	EmptyMode string `short:"e" long:"empty-mode" description:"Empty geometry handling" choice:"legacy" choice:"typed" default:"legacy"`
	Size      int    `long:"size"                 description:"Preview image size in pixels for svg and webp" default:"512"`
	BigEndian bool   `long:"big-endian"           description:"Write EWKB in big endian (XDR) byte order"`
	Minify    bool   `short:"m" long:"minify"     description:"Write compact JSON"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	if err := run(&opts); err != nil {
		log.Fatal().Err(err).Msg("Conversion failed")
	}
}

// run converts the input. Files it opens are closed before it returns.
func run(opts *Options) error {
	mode, err := geom.ParseEmptyMode(opts.EmptyMode)
	if err != nil {
		return errors.Wrap(err, "invalid empty mode")
	}

	// Read Input
	var in io.Reader = os.Stdin
	if opts.Input != "" {
		f, err := os.Open(opts.Input)
		if err != nil {
			return errors.Wrap(err, "open input file")
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	convOpts := convert.Options{
		Format:   opts.To,
		Encoding: opts.Format,
		Order:    binary.LittleEndian,
		Minify:   opts.Minify,
	}
	if opts.Size > 0 {
		style := render.DefaultOptions()
		style.Size = opts.Size
		convOpts.Render = &style
	}
	if opts.BigEndian {
		convOpts.Order = binary.BigEndian
	}

	var out bytes.Buffer
	count, err := convert.Convert(in, &out, geom.Parser{Empty: mode}, convOpts)
	if err != nil {
		return err
	}

	if opts.Output == "" {
		_, err := os.Stdout.Write(out.Bytes())
		return errors.Wrap(err, "write output")
	}

	if err := os.WriteFile(opts.Output, out.Bytes(), 0644); err != nil {
		return errors.Wrap(err, "write output file")
	}
	log.Info().
		Int("geometries", count).
		Str("path", opts.Output).
		Str("to", opts.To).
		Msg("Successfully converted")
	return nil
}
