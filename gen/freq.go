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
	"slices"
)

// Freq pairs a strictly positive weight with a generator.
type Freq[T any] struct {
	Weight int
	Gen    Gen[T]
}

// Frequency selects one of the generators with probability proportional to
// its weight. Empty input, non-positive weights and an overflowing weight sum
// are construction errors. A single entry is returned as is, so it consumes
// no randomness for the selection.
func Frequency[T any](xs ...Freq[T]) Gen[T] {
	if len(xs) == 0 {
		assertf("Frequency: no alternatives")
	}
	total := 0
	for i, x := range xs {
		if x.Weight <= 0 {
			assertf("Frequency: non-positive weight (%d) at position %d", x.Weight, i)
		}
		if total > math.MaxInt-x.Weight {
			assertf("Frequency: weight sum overflows at position %d", i)
		}
		total += x.Weight
	}
	if len(xs) == 1 {
		return xs[0].Gen
	}
	entries := slices.Clone(xs)
	return func(ctx *Ctx) T {
		n := ctx.src.IntN(total)
		cumulative := 0
		for _, e := range entries {
			cumulative += e.Weight
			if n < cumulative {
				return e.Gen(ctx)
			}
		}
		return entries[len(entries)-1].Gen(ctx)
	}
}

// Choose selects one of the values uniformly.
func Choose[T any](values ...T) Gen[T] {
	if len(values) == 0 {
		assertf("Choose: no values")
	}
	if len(values) == 1 {
		return Pure(values[0])
	}
	values = slices.Clone(values)
	return func(ctx *Ctx) T {
		return values[ctx.src.IntN(len(values))]
	}
}

// ChooseGen selects one of the generators uniformly and runs it.
func ChooseGen[T any](gens ...Gen[T]) Gen[T] {
	if len(gens) == 0 {
		assertf("ChooseGen: no generators")
	}
	if len(gens) == 1 {
		return gens[0]
	}
	gens = slices.Clone(gens)
	return func(ctx *Ctx) T {
		return gens[ctx.src.IntN(len(gens))](ctx)
	}
}
