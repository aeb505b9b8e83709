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

package exponential

import (
	"math"
	"testing"

	"github.com/0xsoniclabs/propgen/gen"
	"github.com/0xsoniclabs/propgen/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExponential_CDFBounds(t *testing.T) {
	for _, lambda := range []float64{0.5, 1.0, 5.0, 20.0} {
		assert.InDelta(t, 0.0, CDF(lambda, 0.0), 1e-12)
		assert.InDelta(t, 1.0, CDF(lambda, 1.0), 1e-12)
		assert.Less(t, CDF(lambda, 0.3), CDF(lambda, 0.6))
	}
}

// TestExponential_QuantileInvertsCDF checks that the quantile is the inverse of the CDF.
func TestExponential_QuantileInvertsCDF(t *testing.T) {
	for _, lambda := range []float64{0.5, 1.0, 5.0, 20.0} {
		for _, x := range []float64{0.0, 0.1, 0.25, 0.5, 0.9} {
			assert.InDelta(t, x, Quantile(lambda, CDF(lambda, x)), 1e-7)
		}
	}
}

func TestExponential_SampleClampsToRange(t *testing.T) {
	assert.Equal(t, 0, Sample(0.0, 5.0, 10))
	assert.Equal(t, 9, Sample(1.0, 5.0, 10))
	for u := 0.0; u < 1.0; u += 0.01 {
		x := Sample(u, 5.0, 10)
		assert.GreaterOrEqual(t, x, 0)
		assert.Less(t, x, 10)
	}
}

func TestExponential_ApproximateLambda(t *testing.T) {
	for _, mean := range []float64{0.05, 0.1, 0.25, 0.4} {
		lambda, err := ApproximateLambda(mean)
		require.NoError(t, err)
		got := 1/lambda - 1/(math.Exp(lambda)-1)
		assert.InDelta(t, mean, got, 1e-6, "mean %v", mean)
	}
}

func TestExponential_ApproximateLambdaRejectsInvalidMean(t *testing.T) {
	for _, mean := range []float64{0.0, 0.5, 0.7, -1.0, math.NaN()} {
		_, err := ApproximateLambda(mean)
		assert.Error(t, err, "mean %v", mean)
	}
}

func TestExponential_mleRejectsNaN(t *testing.T) {
	_, err := mle(math.NaN(), 0.1)
	assert.Error(t, err)
	_, err = dMLE(math.NaN())
	assert.Error(t, err)
}

func TestExponential_IndexConsumesOneDouble(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := random.NewMockSource(ctrl)
	src.EXPECT().Float64().Return(0.0)

	g, err := Index(5.0, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Run(gen.NewCtx(src, 10)))
}

func TestExponential_IndexRejectsInvalidArguments(t *testing.T) {
	_, err := Index(0.0, 10)
	assert.Error(t, err)
	_, err = Index(math.Inf(1), 10)
	assert.Error(t, err)
	_, err = Index(1.0, 0)
	assert.Error(t, err)
}

// TestExponential_IndexFavoursSmallValues checks that a large lambda puts
// most of the mass on the first indices.
func TestExponential_IndexFavoursSmallValues(t *testing.T) {
	g, err := Index(10.0, 100)
	require.NoError(t, err)
	ctx := gen.NewCtx(random.NewSource(7), 10)
	small := 0
	for range 1000 {
		if g.Run(ctx) < 20 {
			small++
		}
	}
	// Pr(X < 20) = CDF(10, 0.2) > 0.86
	assert.Greater(t, small, 800)
}

func TestExponential_SizeSpecBounds(t *testing.T) {
	ss, err := SizeSpec(3.0, 5)
	require.NoError(t, err)
	ctx := gen.NewCtx(random.NewSource(3), 10)
	seen0 := map[int]bool{}
	for range 2000 {
		n0 := ss.Gen0().Run(ctx)
		n1 := ss.Gen1().Run(ctx)
		assert.True(t, n0 >= 0 && n0 <= 5, "gen0 out of range: %d", n0)
		assert.True(t, n1 >= 1 && n1 <= 5, "gen1 out of range: %d", n1)
		seen0[n0] = true
	}
	assert.True(t, seen0[0])
	assert.True(t, seen0[5])
}

func TestExponential_SizeSpecDrivesFill(t *testing.T) {
	ss, err := SizeSpec(2.0, 8)
	require.NoError(t, err)
	ctx := gen.NewCtx(random.NewSource(11), 10)
	for range 100 {
		xs := gen.FillSS1(gen.Int(), ss).Run(ctx)
		assert.NotEmpty(t, xs)
		assert.LessOrEqual(t, len(xs), 8)
	}
}

func TestExponential_SizeSpecRejectsInvalidArguments(t *testing.T) {
	_, err := SizeSpec(1.0, 0)
	assert.Error(t, err)
	_, err = SizeSpec(math.NaN(), 4)
	assert.Error(t, err)
}
