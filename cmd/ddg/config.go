// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ddg/builder"
	"github.com/katalvlaran/ddg/dec"
	"github.com/katalvlaran/ddg/factor"
)

// errConfig marks an invalid configuration value, from file or flags.
var errConfig = errors.New("ddg: invalid config")

// Config is the file form of the CLI settings. Flags override every field.
type Config struct {
	Tolerance float64 `yaml:"tolerance"`
	Backend   string  `yaml:"backend"`
	T         float64 `yaml:"t"`
	LogLevel  string  `yaml:"log_level"`
	Shape     string  `yaml:"shape"`
	Mesh      string  `yaml:"mesh"`
	Source    int     `yaml:"source"`
}

// DefaultConfig is used when no --config file is given.
func DefaultConfig() Config {
	return Config{
		Tolerance: dec.DefaultDegeneracyTolerance,
		Backend:   "native",
		T:         1.0,
		LogLevel:  "info",
		Shape:     "icosahedron",
	}
}

// LoadConfig reads path over DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("ddg: read config: %w", err)
	}
	d := yaml.NewDecoder(bytes.NewReader(data))
	d.KnownFields(true)
	if err := d.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("ddg: parse %s: %v: %w", path, err, errConfig)
	}

	return cfg, cfg.Validate()
}

// Validate checks ranges and names.
func (c Config) Validate() error {
	if !(c.Tolerance >= 0) || math.IsInf(c.Tolerance, 0) {
		return fmt.Errorf("tolerance %g: %w", c.Tolerance, errConfig)
	}
	if !(c.T >= 0) || math.IsInf(c.T, 0) {
		return fmt.Errorf("t %g: %w", c.T, errConfig)
	}
	if _, ok := factor.BackendByName(c.Backend); !ok {
		return fmt.Errorf("backend %q (want native or dense): %w", c.Backend, errConfig)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level %q: %w", c.LogLevel, errConfig)
	}
	if c.Mesh == "" {
		if _, err := builder.Named(c.Shape); err != nil {
			return fmt.Errorf("shape %q: %v: %w", c.Shape, err, errConfig)
		}
	}
	if c.Source < 0 {
		return fmt.Errorf("source %d: %w", c.Source, errConfig)
	}

	return nil
}
