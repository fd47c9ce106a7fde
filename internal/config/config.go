// Package config handles the check harness configuration file.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/pgeom/geom"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DefaultSRID is the SRID prefixed to every literal in the second pass.
const DefaultSRID = 4326

// Config represents the root configuration file structure.
type Config struct {
	EmptyMode   string       `yaml:"empty_mode,omitempty" json:"empty_mode,omitempty"`
	Connections []Connection `yaml:"connections,omitempty" json:"connections,omitempty"`
	Testset     []string     `yaml:"testset,omitempty" json:"testset,omitempty"` // replaces the built-in literals
	SRID        *int         `yaml:"srid,omitempty" json:"srid,omitempty"` // nil when unset; 0 is a valid SRID
	Offline     bool         `yaml:"offline,omitempty" json:"offline,omitempty"`
}

// Connection describes one database the literals are sent through.
type Connection struct {
	Name   string `yaml:"name" json:"name"`
	Driver string `yaml:"driver" json:"driver"`
	DSN    string `yaml:"dsn" json:"-"`
	Query  string `yaml:"query,omitempty" json:"query,omitempty"` // one placeholder, returns one geometry column
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}

	return cfg, nil
}

// Parse decodes YAML configuration, applies defaults and validates it.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "decode yaml")
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.SRID == nil {
		srid := DefaultSRID
		c.SRID = &srid
	}
	for i := range c.Connections {
		conn := &c.Connections[i]
		conn.Driver = strings.ToLower(conn.Driver)
		if conn.Name == "" {
			conn.Name = conn.Driver
		}
		if conn.Query == "" {
			conn.Query = DefaultQuery(conn.Driver)
		}
	}
}

// Validate checks driver names, required fields and the empty mode.
func (c *Config) Validate() error {
	if _, err := c.Parser(); err != nil {
		return errors.Wrap(err, "empty_mode")
	}

	seen := make(map[string]bool, len(c.Connections))
	for i, conn := range c.Connections {
		switch conn.Driver {
		case DriverPostgres, DriverSQLite:
		default:
			return errors.Errorf("connection %d: unsupported driver %q", i, conn.Driver)
		}
		if conn.DSN == "" {
			return errors.Errorf("connection %q: dsn is required", conn.Name)
		}
		if seen[conn.Name] {
			return errors.Errorf("connection %q: duplicate name", conn.Name)
		}
		seen[conn.Name] = true
	}

	return nil
}

// Parser returns the geometry parser for the configured empty mode.
func (c *Config) Parser() (geom.Parser, error) {
	mode, err := geom.ParseEmptyMode(c.EmptyMode)
	if err != nil {
		return geom.Parser{}, err
	}
	return geom.Parser{Empty: mode}, nil
}

// PrefixSRID returns the SRID for the prefixed pass, DefaultSRID when unset.
func (c *Config) PrefixSRID() int {
	if c.SRID == nil {
		return DefaultSRID
	}
	return *c.SRID
}

// DefaultQuery returns the echo query for a driver. PostgreSQL casts the text
// through the geometry input function; SQLite returns the bound value as is.
func DefaultQuery(driver string) string {
	if driver == DriverPostgres {
		return "SELECT $1::geometry"
	}
	return "SELECT ?"
}
