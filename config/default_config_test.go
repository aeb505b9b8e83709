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
	"flag"
	"testing"

	"github.com/0xsoniclabs/propgen/gen"
	"github.com/0xsoniclabs/propgen/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestGetFlagValue(t *testing.T) {
	// app for testing
	app := cli.NewApp()
	app.Commands = []*cli.Command{
		{
			Name: "testcmd",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name: "intflag",
				},
				&cli.Int64Flag{
					Name: "int64flag",
				},
				&cli.StringFlag{
					Name: "stringflag",
				},
				&cli.PathFlag{
					Name: "pathflag",
				},
			},
		},
	}

	// Setup test cases
	testCases := []struct {
		name          string
		setupFlags    func() (*cli.Context, error)
		flagToTest    interface{}
		expectedValue interface{}
	}{
		{
			name: "IntFlag value",
			setupFlags: func() (*cli.Context, error) {
				set := flag.NewFlagSet("test", 0)
				set.Int("intflag", 42, "")
				ctx := cli.NewContext(app, set, nil)
				ctx.Command = app.Commands[0]
				return ctx, nil
			},
			flagToTest:    cli.IntFlag{Name: "intflag"},
			expectedValue: 42,
		},
		{
			name: "Int64Flag value",
			setupFlags: func() (*cli.Context, error) {
				set := flag.NewFlagSet("test", 0)
				set.Int64("int64flag", 200, "")
				ctx := cli.NewContext(app, set, nil)
				ctx.Command = app.Commands[0]
				return ctx, nil
			},
			flagToTest:    cli.Int64Flag{Name: "int64flag"},
			expectedValue: int64(200),
		},
		{
			name: "StringFlag value",
			setupFlags: func() (*cli.Context, error) {
				set := flag.NewFlagSet("test", 0)
				set.String("stringflag", "test-string", "")
				ctx := cli.NewContext(app, set, nil)
				ctx.Command = app.Commands[0]
				return ctx, nil
			},
			flagToTest:    cli.StringFlag{Name: "stringflag"},
			expectedValue: "test-string",
		},
		{
			name: "PathFlag value",
			setupFlags: func() (*cli.Context, error) {
				set := flag.NewFlagSet("test", 0)
				set.String("pathflag", "/test/path", "")
				ctx := cli.NewContext(app, set, nil)
				ctx.Command = app.Commands[0]
				return ctx, nil
			},
			flagToTest:    cli.PathFlag{Name: "pathflag"},
			expectedValue: "/test/path",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, err := tc.setupFlags()
			assert.NoError(t, err)

			value := getFlagValue(ctx, tc.flagToTest)
			assert.Equal(t, tc.expectedValue, value)
		})
	}
}

func TestGetFlagValue_DefaultWhenFlagNotDeclared(t *testing.T) {
	app := cli.NewApp()
	set := flag.NewFlagSet("test", 0)
	ctx := cli.NewContext(app, set, nil)
	ctx.Command = &cli.Command{Name: "empty"}

	assert.Equal(t, gen.DefaultGenSize, getFlagValue(ctx, SizeFlag))
	assert.Equal(t, int64(-1), getFlagValue(ctx, RandomSeedFlag))
	assert.Equal(t, "histogram.html", getFlagValue(ctx, OutputFlag))
	assert.Equal(t, "", getFlagValue(ctx, GeneratorFlag))
	assert.Nil(t, getFlagValue(ctx, cli.BoolFlag{Name: "unsupported"}))
}

// newTestContext creates a cli context of a command declaring all propgen flags.
func newTestContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	cmd := &cli.Command{
		Name: "sample",
		Flags: []cli.Flag{
			&BinsFlag,
			&GeneratorFlag,
			&logger.LogLevelFlag,
			&OutputFlag,
			&RandomSeedFlag,
			&SamplesFlag,
			&SizeFlag,
		},
	}
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range cmd.Flags {
		require.NoError(t, f.Apply(set))
	}
	require.NoError(t, set.Parse(args))
	app := cli.NewApp()
	app.HelpName = "propgen"
	ctx := cli.NewContext(app, set, nil)
	ctx.Command = cmd
	return ctx
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig(newTestContext(t))
	require.NoError(t, err)
	assert.Equal(t, "propgen", cfg.AppName)
	assert.Equal(t, "sample", cfg.CommandName)
	assert.Equal(t, 50, cfg.Bins)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10, cfg.NumSamples)
	assert.Equal(t, int64(-1), cfg.RandomSeed)
	assert.Equal(t, gen.DefaultGenSize, cfg.Size)
}

func TestNewConfig_UserValues(t *testing.T) {
	ctx := newTestContext(t, "--seed", "7", "--size", "3", "--samples", "20", "--generator", "int", "--output", "out.html", "--log", "debug")
	cfg, err := NewConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.RandomSeed)
	assert.Equal(t, 3, cfg.Size)
	assert.Equal(t, 20, cfg.NumSamples)
	assert.Equal(t, "int", cfg.Generator)
	assert.Equal(t, "out.html", cfg.Output)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestNewConfig_RejectsInvalidValues(t *testing.T) {
	for _, args := range [][]string{
		{"--size", "-1"},
		{"--samples", "-3"},
		{"--bins", "0"},
	} {
		_, err := NewConfig(newTestContext(t, args...))
		assert.Error(t, err, "args %v", args)
	}
}

func TestConfig_NewSourceIsSeeded(t *testing.T) {
	cfg := &Config{RandomSeed: 42, Size: 5}
	a := cfg.NewSource()
	b := cfg.NewSource()
	for range 10 {
		assert.Equal(t, a.Int64(), b.Int64())
	}
}

func TestConfig_NewGenCtx(t *testing.T) {
	cfg := &Config{RandomSeed: 1, Size: 4}
	ctx := cfg.NewGenCtx(logger.NewLogger("error", "Test"))
	assert.Equal(t, 4, ctx.Size())
	assert.NotNil(t, ctx.Source())
}
