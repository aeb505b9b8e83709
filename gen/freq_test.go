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
	"math"
	"testing"

	"github.com/0xsoniclabs/propgen/random"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestFrequency_RespectsWeights(t *testing.T) {
	ctx := newTestCtx(999)
	g := Frequency(
		Freq[string]{Weight: 1, Gen: Pure("A")},
		Freq[string]{Weight: 3, Gen: Pure("B")},
	)
	counts := map[string]int{}
	for range 40000 {
		counts[g.Run(ctx)]++
	}
	requireUnbiased(t, []int{counts["A"], counts["B"]}, []float64{0.25, 0.75})
	assert.InDelta(t, 3.0, float64(counts["B"])/float64(counts["A"]), 0.15)
}

func TestFrequency_SelectsByCumulativeWeight(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := random.NewMockSource(ctrl)
	ctx := NewCtx(src, 0)
	g := Frequency(
		Freq[int]{Weight: 2, Gen: Pure(0)},
		Freq[int]{Weight: 1, Gen: Pure(1)},
		Freq[int]{Weight: 3, Gen: Pure(2)},
	)
	tests := []struct{ draw, want int }{
		{0, 0}, {1, 0}, {2, 1}, {3, 2}, {5, 2},
	}
	for _, test := range tests {
		src.EXPECT().IntN(6).Return(test.draw)
		assert.Equal(t, test.want, g.Run(ctx), "draw %d", test.draw)
	}
}

func TestFrequency_SingleEntryDrawsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := random.NewMockSource(ctrl)
	g := Frequency(Freq[int]{Weight: 10, Gen: Pure(4)})
	assert.Equal(t, 4, g.Run(NewCtx(src, 0)))
}

func TestFrequency_ConfigurationErrors(t *testing.T) {
	requireAssertion(t, func() { Frequency[int]() })
	requireAssertion(t, func() {
		Frequency(Freq[int]{Weight: 1, Gen: Pure(1)}, Freq[int]{Weight: 0, Gen: Pure(2)})
	})
	requireAssertion(t, func() { Frequency(Freq[int]{Weight: -3, Gen: Pure(1)}) })
	requireAssertion(t, func() {
		Frequency(
			Freq[int]{Weight: math.MaxInt, Gen: Pure(1)},
			Freq[int]{Weight: 1, Gen: Pure(2)},
		)
	})
}

func TestChoose_Uniform(t *testing.T) {
	ctx := newTestCtx(5)
	g := Choose("a", "b", "c", "d")
	counts := map[string]int{}
	for range 20000 {
		counts[g.Run(ctx)]++
	}
	requireUnbiased(t, []int{counts["a"], counts["b"], counts["c"], counts["d"]}, []float64{0.25, 0.25, 0.25, 0.25})
}

func TestChoose_DoesNotAliasInput(t *testing.T) {
	values := []int{1, 1}
	g := Choose(values...)
	values[0], values[1] = 2, 2
	assert.Equal(t, 1, g.Run(newTestCtx(1)))
}

func TestChooseGen(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := random.NewMockSource(ctrl)
	src.EXPECT().IntN(2).Return(1)
	g := ChooseGen(Pure("x"), Pure("y"))
	assert.Equal(t, "y", g.Run(NewCtx(src, 0)))

	requireAssertion(t, func() { ChooseGen[int]() })
	requireAssertion(t, func() { Choose[int]() })
}
