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
	"github.com/0xsoniclabs/propgen/gen"
	"github.com/urfave/cli/v2"
)

var (
	RandomSeedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "seed of the random source; a negative seed picks one from the clock",
		Value: -1,
	}
	SizeFlag = cli.IntFlag{
		Name:  "size",
		Usage: "size budget of the generation context",
		Value: gen.DefaultGenSize,
	}
	SamplesFlag = cli.IntFlag{
		Name:    "samples",
		Aliases: []string{"n"},
		Usage:   "number of generated samples",
		Value:   10,
	}
	GeneratorFlag = cli.StringFlag{
		Name:    "generator",
		Aliases: []string{"g"},
		Usage:   "name of the generator in the catalogue (see the list command)",
	}
	OutputFlag = cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "path of the rendered HTML page",
		Value:   "histogram.html",
	}
	BinsFlag = cli.IntFlag{
		Name:  "bins",
		Usage: "maximal number of histogram bars; less frequent values are folded into one bar",
		Value: 50,
	}
)
