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
	"slices"
)

// Shuffle generates uniformly random permutations of xs. The input is not
// modified.
func Shuffle[T any](xs []T) Gen[[]T] {
	xs = slices.Clone(xs)
	return func(ctx *Ctx) []T {
		buf := slices.Clone(xs)
		shuffle(ctx, buf)
		return buf
	}
}

// shuffle permutes buf in place with Fisher-Yates, consuming len(buf)-1
// draws.
func shuffle[T any](ctx *Ctx, buf []T) {
	for i := len(buf) - 1; i > 0; i-- {
		j := ctx.src.IntN(i + 1)
		buf[i], buf[j] = buf[j], buf[i]
	}
}

// Subset keeps every element of xs with an independent random bit,
// preserving the original order. All 2^n subsets are equally likely.
func Subset[T any](xs []T) Gen[[]T] {
	xs = slices.Clone(xs)
	return func(ctx *Ctx) []T {
		return subset(ctx, xs)
	}
}

func subset[T any](ctx *Ctx, xs []T) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if ctx.src.Bool() {
			out = append(out, x)
		}
	}
	return out
}

// Subset1 is Subset that never yields an empty result for non-empty input:
// an empty draw is replaced by one uniformly chosen element.
func Subset1[T any](xs []T) Gen[[]T] {
	xs = slices.Clone(xs)
	return func(ctx *Ctx) []T {
		out := subset(ctx, xs)
		if len(out) == 0 && len(xs) > 0 {
			out = append(out, xs[ctx.src.IntN(len(xs))])
		}
		return out
	}
}

// Take selects up to a possibly-zero number of elements drawn from ss,
// without replacement and in random order.
func Take[T any](xs []T, ss SizeSpec) Gen[[]T] {
	xs = slices.Clone(xs)
	count := ss.Gen0()
	return func(ctx *Ctx) []T {
		n := count(ctx)
		if n == 0 {
			return []T{}
		}
		buf := slices.Clone(xs)
		shuffle(ctx, buf)
		return buf[:min(n, len(buf))]
	}
}
