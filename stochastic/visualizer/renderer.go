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

package visualizer

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// convertBinData converts bins to bar items.
func convertBinData(bins []Bin) []opts.BarData {
	items := []opts.BarData{}
	for i := range bins {
		items = append(items, opts.BarData{Value: bins[i].Count})
	}
	return items
}

// convertBinLabel extracts the bar labels.
func convertBinLabel(bins []Bin) []string {
	labels := []string{}
	for i := range bins {
		labels = append(labels, bins[i].Label)
	}
	return labels
}

// newHistogramChart creates a bar chart of the bins.
func newHistogramChart(title string, bins []Bin) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme:     types.ThemeChalk,
		PageTitle: title,
		Height:    "1300px",
	}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}))
	bar.SetXAxis(convertBinLabel(bins)).AddSeries("Frequency", convertBinData(bins))
	bar.XYReversal()
	return bar
}

// RenderHistogram writes an HTML page with a bar chart of the bins.
func RenderHistogram(w io.Writer, title string, bins []Bin) error {
	return newHistogramChart(title, bins).Render(w)
}
