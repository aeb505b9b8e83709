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

package discrete

import (
	"fmt"
	"math"
	"slices"

	"github.com/0xsoniclabs/propgen/gen"
)

// Check checks if the given probability mass function (pmf) of a
// discrete finite random variable is valid. A valid pmf has all
// probabilities in the range [0,1], and the sum of all probabilities
// must be 1.
func Check(f []float64) error {
	total := 0.0
	for i := range len(f) {
		x := f[i]
		if x < 0.0 || x > 1.0 || math.IsNaN(x) {
			return fmt.Errorf("invalid probability (%v) in the pmf", x)
		}
		total += x
	}
	if math.Abs(total-1.0) > 1e-9 {
		return fmt.Errorf("total is not one (%v)", total)
	}
	return nil
}

// Quantile computes the quantile (inverse CDF) for a discrete finite random variable.
// For a given probability u in the range [0,1], it returns the index i such that the cumulative
// probability up to and including i is at least u. Indices with zero probability
// are never returned unless all probabilities are zero. If u exceeds the accumulated total, it
// returns the last index with a positive probability. If all probabilities are zero, it returns 0.
func Quantile(f []float64, u float64) int {
	sum := 0.0 // Kahan's summation for the probability sum
	c := 0.0   // compensation term
	lastPositive := -1
	for i := range len(f) {
		p := f[i]
		y := p - c
		t := sum + y
		c = (t - sum) - y
		sum = t
		if p > 0.0 && u <= sum {
			return i
		}
		if f[i] > 0.0 {
			lastPositive = i
		}
	}
	if lastPositive != -1 {
		return lastPositive
	}
	return 0
}

// Distribution returns a generator selecting values[i] with probability pmf[i].
// Each run consumes exactly one uniform double.
func Distribution[T any](pmf []float64, values []T) (gen.Gen[T], error) {
	if len(pmf) != len(values) {
		return nil, fmt.Errorf("Distribution: pmf has %d entries but there are %d values", len(pmf), len(values))
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("Distribution: no values")
	}
	if err := Check(pmf); err != nil {
		return nil, fmt.Errorf("Distribution: %w", err)
	}
	f := slices.Clone(pmf)
	xs := slices.Clone(values)
	return gen.Map(gen.Double(), func(u float64) T {
		return xs[Quantile(f, u)]
	}), nil
}

// Index returns a generator of indices in [0,len(pmf)) distributed by pmf.
func Index(pmf []float64) (gen.Gen[int], error) {
	idx := make([]int, len(pmf))
	for i := range idx {
		idx[i] = i
	}
	return Distribution(pmf, idx)
}
