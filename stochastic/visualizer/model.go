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
	"sort"
)

// Bin is a single bar of a histogram.
type Bin struct {
	Label string // printed value
	Count int    // number of samples with this value
}

// NewHistogram converts value counts into bins ordered by descending
// count; equal counts are ordered by label.
func NewHistogram(counts map[string]int) []Bin {
	bins := make([]Bin, 0, len(counts))
	for label, count := range counts {
		bins = append(bins, Bin{Label: label, Count: count})
	}
	sort.Slice(bins, func(i, j int) bool {
		if bins[i].Count != bins[j].Count {
			return bins[i].Count > bins[j].Count
		}
		return bins[i].Label < bins[j].Label
	})
	return bins
}

// Truncate keeps the first n bins and folds the rest into a single
// bin with the given label.
func Truncate(bins []Bin, n int, rest string) []Bin {
	if n < 0 || len(bins) <= n {
		return bins
	}
	out := append([]Bin(nil), bins[:n]...)
	total := 0
	for _, b := range bins[n:] {
		total += b.Count
	}
	return append(out, Bin{Label: rest, Count: total})
}
