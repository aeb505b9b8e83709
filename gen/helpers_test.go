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

package gen

import (
	"testing"

	"github.com/0xsoniclabs/propgen/random"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func newTestCtx(seed int64) *Ctx {
	return NewCtx(random.NewSource(seed), DefaultGenSize)
}

// counting returns a generator yielding 1, 2, 3, ... and a pointer to the
// number of runs.
func counting() (Gen[int], *int) {
	runs := 0
	return func(*Ctx) int {
		runs++
		return runs
	}, &runs
}

// requireAssertion checks that f panics with an assertion failure.
func requireAssertion(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value is not an error: %v", r)
		require.True(t, errors.IsAssertionFailure(err), "not an assertion failure: %v", err)
	}()
	f()
}

// requireUnbiased performs a chi-squared goodness of fit test of the
// observed counts against the expected probabilities.
func requireUnbiased(t *testing.T, counts []int, probabilities []float64) {
	t.Helper()
	total := 0
	for _, c := range counts {
		total += c
	}
	chi2 := 0.0
	for i, c := range counts {
		expected := float64(total) * probabilities[i]
		err := expected - float64(c)
		chi2 += err * err / expected
	}
	alpha := 0.001
	df := float64(len(counts) - 1)
	critical := distuv.ChiSquared{K: df, Src: nil}.Quantile(1.0 - alpha)
	require.LessOrEqual(t, chi2, critical, "sampling is biased: counts %v", counts)
}
