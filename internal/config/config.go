// SPDX-License-Identifier: MIT

// Package config resolves runtime settings for the CLI.
//
// Precedence, highest first: command-line flags, CONIC_* environment
// variables, the YAML file named by --config, built-in defaults.
package config

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/conic/conic"
	"github.com/katalvlaran/conic/internal/logging"
)

// EnvPrefix is prepended to every environment key, e.g. CONIC_EPSILON.
const EnvPrefix = "CONIC"

// Keys shared by flags, environment and config file.
const (
	KeyEpsilon  = "epsilon"
	KeyBoundary = "boundary"
	KeyWorkers  = "workers"
	KeyLogLevel = "log-level"
	KeyInput    = "input"
	KeyConfig   = "config"
)

// coefficientKeys are the single-section coefficient keys, in order a..f.
var coefficientKeys = [6]string{"a", "b", "c", "d", "e", "f"}

// ErrInvalidConfig is returned when a resolved value fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved configuration.
type Config struct {
	Epsilon  float64
	Boundary conic.BoundaryPolicy
	Workers  int
	LogLevel string

	// Input names a YAML batch file; when empty the single section given by
	// Coefficients is classified.
	Input        string
	Coefficients [6]float64
}

// NewFlagSet registers every flag with its default.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.Float64(KeyEpsilon, conic.DefaultEpsilon, "absolute tolerance for zero tests")
	fs.String(KeyBoundary, conic.DefaultBoundaryPolicy.String(), "boundary policy: banded|legacy")
	fs.Int(KeyWorkers, runtime.GOMAXPROCS(0), "concurrent classifications for --input")
	fs.String(KeyLogLevel, "info", "log level: error|warn|info|debug|trace")
	fs.StringP(KeyInput, "i", "", "YAML file with a list of {name,a,b,c,d,e,f}")
	fs.String(KeyConfig, "", "YAML config file")
	for _, k := range coefficientKeys {
		fs.Float64(k, 0, "coefficient "+k)
	}

	return fs
}

// Load parses args into fs and resolves the layered configuration.
func Load(fs *pflag.FlagSet, args []string) (*Config, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("config: bind flags: %w", err)
	}

	if file := v.GetString(KeyConfig); file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	return fromViper(v)
}

// fromViper reads and validates the resolved keys.
func fromViper(v *viper.Viper) (*Config, error) {
	boundary, err := conic.ParseBoundaryPolicy(v.GetString(KeyBoundary))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	cfg := &Config{
		Epsilon:  v.GetFloat64(KeyEpsilon),
		Boundary: boundary,
		Workers:  v.GetInt(KeyWorkers),
		LogLevel: v.GetString(KeyLogLevel),
		Input:    v.GetString(KeyInput),
	}
	for i, k := range coefficientKeys {
		cfg.Coefficients[i] = v.GetFloat64(k)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0:
		return fmt.Errorf("%w: %s must be finite and >= 0, got %v", ErrInvalidConfig, KeyEpsilon, c.Epsilon)
	case c.Workers < 1:
		return fmt.Errorf("%w: %s must be >= 1, got %d", ErrInvalidConfig, KeyWorkers, c.Workers)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Input == "" {
		if err := c.Section().Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	return nil
}

// ConicOptions returns the classifier options the config selects.
func (c *Config) ConicOptions() []conic.Option {
	return []conic.Option{
		conic.WithEpsilon(c.Epsilon),
		conic.WithBoundaryPolicy(c.Boundary),
	}
}

// Section builds the single section from Coefficients. An invalid epsilon
// leaves the classifier defaults in place.
func (c *Config) Section() conic.Section {
	k := c.Coefficients
	s := conic.New(k[0], k[1], k[2], k[3], k[4], k[5])
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 {
		return s
	}

	return s.With(c.ConicOptions()...)
}
