package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/woozymasta/pgeom/internal/config"
	"github.com/woozymasta/pgeom/internal/harness"
	"github.com/woozymasta/pgeom/internal/logger"
	"github.com/woozymasta/pgeom/pggeom"

	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string   `short:"c" long:"config"     env:"CONFIG_FILE" description:"Path to configuration file (built-in defaults when empty)"`
	Postgres   []string `short:"d" long:"postgres"   env:"POSTGRES_DSN" env-delim:";" description:"PostgreSQL/PostGIS DSN to check against, repeatable"`
	EmptyMode  string   `short:"e" long:"empty-mode" env:"EMPTY_MODE"  description:"Empty geometry handling" choice:"legacy" choice:"typed"`
	Output     string   `short:"o" long:"out"        description:"Report file path. Writes to stdout if empty"`
	Format     string   `short:"f" long:"format"     description:"Report format" choice:"json" choice:"yaml" default:"json"`
	SRID       *int     `short:"s" long:"srid"       env:"SRID"        description:"SRID used for the prefixed pass"`
	Offline    bool     `long:"offline"              env:"OFFLINE"     description:"Skip database checks"`
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

	// Setup Logging
	opts.Logger.Setup()

	ok, err := run(&opts)
	if err != nil {
		log.Fatal().Err(err).Msg("Check failed")
	}
	if !ok {
		os.Exit(1)
	}
}

// run executes the checks and reports whether all of them passed.
// Connections are closed before it returns.
func run(opts *Options) (bool, error) {
	// Load Config
	cfg := config.Default()
	if opts.ConfigFile != "" {
		var err error
		if cfg, err = config.Load(opts.ConfigFile); err != nil {
			return false, errors.Wrap(err, "load configuration")
		}
	}
	applyOptions(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return false, errors.Wrap(err, "invalid configuration")
	}

	geomParser, err := cfg.Parser()
	if err != nil {
		return false, errors.Wrap(err, "invalid empty mode")
	}
	pggeom.Parser = geomParser

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var conns []harness.Conn
	if cfg.Offline {
		log.Info().Msg("Performing only offline tests")
	} else {
		log.Info().Int("connections", len(cfg.Connections)).Msg("Performing offline and online tests")
		var closeAll func()
		conns, closeAll, err = harness.Open(ctx, cfg.Connections)
		if err != nil {
			return false, errors.Wrap(err, "connect")
		}
		defer closeAll()
	}

	runner, err := harness.New(cfg, conns)
	if err != nil {
		return false, errors.Wrap(err, "create runner")
	}
	report := runner.Run(ctx)

	if err := writeReport(report, opts.Output, opts.Format); err != nil {
		return false, errors.Wrap(err, "write report")
	}

	log.Info().
		Str("run_id", report.RunID).
		Int("total", report.Total).
		Int("passed", report.Passed).
		Int("failed", report.Failed).
		Str("elapsed", report.Elapsed).
		Msg("Finished")

	return report.OK(), nil
}

// applyOptions lets command-line options override the configuration file.
func applyOptions(cfg *config.Config, opts *Options) {
	if opts.EmptyMode != "" {
		cfg.EmptyMode = opts.EmptyMode
	}
	if opts.SRID != nil {
		srid := *opts.SRID
		cfg.SRID = &srid
	}
	if opts.Offline {
		cfg.Offline = true
	}
	for i, dsn := range opts.Postgres {
		if dsn = strings.TrimSpace(dsn); dsn == "" {
			continue
		}
		cfg.Connections = append(cfg.Connections, config.Connection{
			Name:   "postgres-" + strconv.Itoa(i),
			Driver: config.DriverPostgres,
			DSN:    dsn,
			Query:  config.DefaultQuery(config.DriverPostgres),
		})
	}
}

func writeReport(report *harness.Report, path, format string) error {
	if path == "" {
		return report.Write(os.Stdout, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.Write(f, format); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	log.Info().Str("path", path).Str("format", format).Msg("Report written")
	return nil
}
