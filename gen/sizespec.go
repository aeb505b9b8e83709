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

// SizeSpec decides how many elements a collection-shaped generator produces.
type SizeSpec interface {
	Gen0() Gen[int] // non-negative count
	Gen1() Gen[int] // positive count
}

type sizeSpec struct {
	gen0 Gen[int]
	gen1 Gen[int]
}

func (s sizeSpec) Gen0() Gen[int] { return s.gen0 }
func (s sizeSpec) Gen1() Gen[int] { return s.gen1 }

// DefaultSize draws counts up to the context's size budget.
var DefaultSize SizeSpec = sizeSpec{
	gen0: Sized(func(n int) Gen[int] {
		return ChooseInt(0, n)
	}),
	gen1: Sized(func(n int) Gen[int] {
		return ChooseInt(1, max(n, 1))
	}),
}

// ExactSize always yields n; the positive variant yields at least one.
func ExactSize(n int) SizeSpec {
	if n < 0 {
		assertf("ExactSize: negative size (%d)", n)
	}
	return sizeSpec{
		gen0: Pure(n),
		gen1: Pure(max(n, 1)),
	}
}

// SizeRange draws counts uniformly from [lo,hi]; the positive variant
// raises both bounds to at least one.
func SizeRange(lo, hi int) SizeSpec {
	if lo < 0 || lo > hi {
		assertf("SizeRange: invalid range [%d,%d]", lo, hi)
	}
	return sizeSpec{
		gen0: ChooseInt(lo, hi),
		gen1: ChooseInt(max(lo, 1), max(hi, 1)),
	}
}

// NewSizeSpec builds a SizeSpec from two count generators. The positive
// generator's values are raised to one if needed.
func NewSizeSpec(gen0, gen1 Gen[int]) SizeSpec {
	return sizeSpec{
		gen0: Map(gen0, func(n int) int { return max(n, 0) }),
		gen1: Map(gen1, func(n int) int { return max(n, 1) }),
	}
}
