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
	"iter"

	"github.com/0xsoniclabs/propgen/random"
)

// SamplesWith returns an infinite sequence of values generated against ctx.
// Every pull runs the generator once; nothing is buffered.
func (g Gen[T]) SamplesWith(ctx *Ctx) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			if !yield(g(ctx)) {
				return
			}
		}
	}
}

// SamplesSized returns an infinite sequence using a time seeded source and
// the given size. Each iteration starts from a fresh context.
func (g Gen[T]) SamplesSized(size int) iter.Seq[T] {
	return func(yield func(T) bool) {
		ctx := NewCtx(random.NewTimeSeededSource(), size)
		g.SamplesWith(ctx)(yield)
	}
}

// Samples returns an infinite sequence using the default size.
func (g Gen[T]) Samples() iter.Seq[T] {
	return g.SamplesSized(DefaultGenSize)
}

// SampleN collects the first n values of an infinite sequence.
func SampleN[T any](seq iter.Seq[T], n int) []T {
	out := make([]T, 0, n)
	if n <= 0 {
		return out
	}
	for v := range seq {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}
