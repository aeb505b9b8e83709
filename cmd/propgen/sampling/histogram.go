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
	"bytes"

	"github.com/0xsoniclabs/propgen/config"
	"github.com/0xsoniclabs/propgen/gen"
	"github.com/0xsoniclabs/propgen/logger"
	"github.com/0xsoniclabs/propgen/stochastic/visualizer"
	"github.com/0xsoniclabs/propgen/utils"
	"github.com/urfave/cli/v2"
)

// HistogramCommand renders the value frequencies of a catalogue generator.
var HistogramCommand = cli.Command{
	Action:    histogramAction,
	Name:      "histogram",
	Usage:     "render a histogram of the values of a generator",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&config.GeneratorFlag,
		&config.RandomSeedFlag,
		&config.SizeFlag,
		&config.SamplesFlag,
		&config.BinsFlag,
		&config.OutputFlag,
		&logger.LogLevelFlag,
	},
	Description: "The histogram command counts the values of a catalogue generator and writes a bar chart as HTML page.",
}

// histogramAction counts the sampled values and writes the chart.
func histogramAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Histogram")
	e, err := lookup(cfg.Generator)
	if err != nil {
		return err
	}

	counts := map[string]int{}
	for _, s := range gen.SampleN(e.gen.SamplesWith(cfg.NewGenCtx(log)), cfg.NumSamples) {
		counts[s]++
	}
	bins := visualizer.Truncate(visualizer.NewHistogram(counts), cfg.Bins, "other")
	log.Noticef("Counted %d distinct values in %d samples", len(counts), cfg.NumSamples)

	var page bytes.Buffer
	if err := visualizer.RenderHistogram(&page, cfg.Generator, bins); err != nil {
		return err
	}
	log.Noticef("Write histogram to %v", cfg.Output)
	printers := utils.NewPrinters().AddPrinterToFile(cfg.Output, page.String)
	defer printers.Close()
	return printers.Print()
}
