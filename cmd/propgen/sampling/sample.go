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

package sampling

import (
	"time"

	"github.com/0xsoniclabs/propgen/config"
	"github.com/0xsoniclabs/propgen/gen"
	"github.com/0xsoniclabs/propgen/logger"
	"github.com/0xsoniclabs/propgen/utils"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

// SampleCommand prints samples of a catalogue generator.
var SampleCommand = cli.Command{
	Action:    sampleAction,
	Name:      "sample",
	Usage:     "print samples of a generator",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&config.GeneratorFlag,
		&config.RandomSeedFlag,
		&config.SizeFlag,
		&config.SamplesFlag,
		&logger.LogLevelFlag,
	},
	Description: "The sample command runs a catalogue generator on a seeded context and prints a table of the results.",
}

// sampleAction generates the configured number of samples and prints them.
func sampleAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Sample")
	e, err := lookup(cfg.Generator)
	if err != nil {
		return err
	}

	start := time.Now()
	samples := gen.SampleN(e.gen.SamplesWith(cfg.NewGenCtx(log)), cfg.NumSamples)
	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	log.Infof("Generated %d samples of %v in %vh %vm %vs", len(samples), cfg.Generator, hours, minutes, seconds)

	printers := utils.NewPrinters().AddPrinterToWriter(ctx.App.Writer, func() string {
		return renderSamples(cfg.Generator, samples)
	})
	defer printers.Close()
	return printers.Print()
}

// renderSamples formats the samples as a numbered table.
func renderSamples(name string, samples []string) string {
	t := table.NewWriter()
	t.SetTitle(name)
	t.AppendHeader(table.Row{"#", "Value"})
	for i, s := range samples {
		t.AppendRow(table.Row{i + 1, s})
	}
	t.SetStyle(table.StyleLight)
	return t.Render()
}
