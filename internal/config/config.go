// Package config loads the settings of the decmath command from a TOML or
// YAML file and the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/apd"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/decalc/decmath"
	"github.com/decalc/decmath/context"
	"github.com/decalc/decmath/math"
)

// Environment variables overriding the file settings.
const (
	EnvPrecision = "DECMATH_PRECISION"
	EnvRounding  = "DECMATH_ROUNDING"
)

// Format represents the configuration file format.
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota
	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatOf returns the format of a configuration file from its extension.
// Unknown extensions select TOML.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Config holds the settings of the decmath command.
type Config struct {
	// Precision in significant digits. 0 selects context.DefaultPrec.
	Precision uint `toml:"precision" yaml:"precision"`
	// Rounding mode, one of apd's rounding names such as "half_even".
	Rounding string `toml:"rounding" yaml:"rounding"`
	// Tolerances of the closeness checks of the smoke command.
	RelTol Decimal `toml:"rel_tol" yaml:"rel_tol"`
	AbsTol Decimal `toml:"abs_tol" yaml:"abs_tol"`
	// Verbose enables debug logging.
	Verbose bool `toml:"verbose" yaml:"verbose"`

	// Source is the file the configuration was loaded from, if any.
	Source string `toml:"-" yaml:"-"`
}

// Decimal wraps an apd.Decimal for exact parsing of configuration values.
// In TOML files, decimals should be written as strings since TOML floats are
// rounded to six decimal places on the way in.
type Decimal struct {
	*apd.Decimal
}

// UnmarshalText parses a decimal string
func (d *Decimal) UnmarshalText(text []byte) error {
	x, err := decmath.NewFromString(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	d.Decimal = x
	return nil
}

// MarshalText formats the decimal as a string
func (d Decimal) MarshalText() ([]byte, error) {
	if d.Decimal == nil {
		return []byte{}, nil
	}
	return []byte(d.Decimal.String()), nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, applies the environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Errorf("config file not found: %s", path)
		}
		return nil, errors.Wrap(err, "failed to read config")
	}

	cfg, err := Parse(data, FormatOf(path))
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	cfg.Source = path
	return cfg, nil
}

// Parse parses configuration data in the given format, applies the
// environment overrides and validates the result.
func Parse(data []byte, f Format) (*Config, error) {
	var cfg Config
	switch f {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrap(err, "failed to parse config")
		}
	default:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, errors.Wrap(err, "failed to parse config")
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyEnv overrides c's settings with those of the DECMATH_PRECISION and
// DECMATH_ROUNDING environment variables, when set.
func (c *Config) ApplyEnv() error {
	if s := os.Getenv(EnvPrecision); s != "" {
		p, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvPrecision)
		}
		c.Precision = uint(p)
	}
	if s := os.Getenv(EnvRounding); s != "" {
		c.Rounding = s
	}
	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Precision == 0 {
		c.Precision = context.DefaultPrec
	}
	if c.Rounding == "" {
		c.Rounding = context.DefaultMode
	}
	if c.RelTol.Decimal == nil {
		c.RelTol.Decimal = new(apd.Decimal).Set(math.DefaultRelTol)
	}
	if c.AbsTol.Decimal == nil {
		c.AbsTol.Decimal = new(apd.Decimal).Set(math.DefaultAbsTol)
	}
}

// Validate checks that c holds usable settings.
func (c *Config) Validate() error {
	if c.Precision > context.MaxPrec {
		return errors.Errorf("precision %d exceeds the maximum of %d", c.Precision, context.MaxPrec)
	}
	if c.Rounding != "" && !context.ValidMode(c.Rounding) {
		return errors.Errorf("unknown rounding mode %q", c.Rounding)
	}
	for _, t := range []struct {
		name string
		d    Decimal
	}{{"rel_tol", c.RelTol}, {"abs_tol", c.AbsTol}} {
		if t.d.Decimal == nil {
			continue
		}
		if t.d.Form != apd.Finite || t.d.Sign() < 0 {
			return errors.Errorf("%s must be a finite non-negative number, got %s", t.name, t.d)
		}
	}
	return nil
}

// Context returns a new Context with c's precision and rounding mode.
func (c *Config) Context() *context.Context {
	return context.New(c.Precision, c.Rounding)
}
