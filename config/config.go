// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"fmt"

	"github.com/0xsoniclabs/propgen/gen"
	"github.com/0xsoniclabs/propgen/logger"
	"github.com/0xsoniclabs/propgen/random"
	"github.com/urfave/cli/v2"
)

// Config is the configuration of a propgen command.
type Config struct {
	AppName     string
	CommandName string

	Bins       int    // maximal number of histogram bars
	Generator  string // catalogue name of the generator
	LogLevel   string // level of the logger
	NumSamples int    // number of samples to generate
	Output     string // output path of rendered pages
	RandomSeed int64  // seed of the random source; negative for a clock seed
	Size       int    // size budget of the generation context
}

// NewConfig assembles the configuration of the command in ctx and validates it.
func NewConfig(ctx *cli.Context) (*Config, error) {
	cfg := createConfigFromFlags(ctx)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Size < 0 {
		return fmt.Errorf("invalid size (%v); size must not be negative", cfg.Size)
	}
	if cfg.NumSamples < 0 {
		return fmt.Errorf("invalid number of samples (%v)", cfg.NumSamples)
	}
	if cfg.Bins < 1 {
		return fmt.Errorf("invalid number of bins (%v); at least one bin is required", cfg.Bins)
	}
	return nil
}

// NewSource creates the random source for the configured seed.
func (cfg *Config) NewSource() random.Source {
	if cfg.RandomSeed < 0 {
		return random.NewTimeSeededSource()
	}
	return random.NewSource(cfg.RandomSeed)
}

// NewGenCtx creates a generation context over a fresh random source.
func (cfg *Config) NewGenCtx(log logger.Logger) *gen.Ctx {
	return gen.NewCtx(cfg.NewSource(), cfg.Size).WithLogger(log)
}
