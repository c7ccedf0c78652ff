// SPDX-License-Identifier: MIT

// Package config loads the graphslam CLI configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/graphslam/solver"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the file layout:
//
//	iterations: 10
//	solver: sparse-cholesky
//	format: g2o          # optional; inferred from file extensions otherwise
//	render:
//	  width: 16          # centimeters
//	  height: 16
//	log:
//	  level: info
//	  development: false
type Config struct {
	Iterations int    `yaml:"iterations"`
	Solver     string `yaml:"solver"`
	Format     string `yaml:"format"`
	Render     Render `yaml:"render"`
	Log        Log    `yaml:"log"`
}

// Render configures the render command.
type Render struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Log configures the zap logger.
type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Iterations: 10,
		Solver:     solver.NameSparseCholesky,
		Render:     Render{Width: 16, Height: 16},
		Log:        Log{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges and names.
func (c *Config) Validate() error {
	if c.Iterations < 0 {
		return fmt.Errorf("iterations %d: %w", c.Iterations, ErrInvalid)
	}
	if _, err := solver.ByName(c.Solver); err != nil {
		return fmt.Errorf("solver: %w: %w", ErrInvalid, err)
	}
	switch c.Format {
	case "", "g2o", "json":
	default:
		return fmt.Errorf("format %q: %w", c.Format, ErrInvalid)
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("render size %gx%g: %w", c.Render.Width, c.Render.Height, ErrInvalid)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w: %w", ErrInvalid, err)
	}

	return nil
}

// NewLogger builds the logger described by l.
func NewLogger(l Log) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if l.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	return zc.Build()
}
