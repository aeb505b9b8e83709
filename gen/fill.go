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

// LargeFillThreshold is the fixed fill count from which a warning is logged.
const LargeFillThreshold = 100_000

// FillFold runs g exactly n times, folding every value into an accumulator
// that starts at z. No intermediate collection is built.
func FillFold[T, U any](g Gen[T], n int, z U, f func(U, T) U) Gen[U] {
	if n < 0 {
		assertf("FillFold: negative count (%d)", n)
	}
	return fillFold(g, Pure(n), z, f)
}

// FillFoldSS is FillFold with a possibly-zero count drawn from ss.
func FillFoldSS[T, U any](g Gen[T], ss SizeSpec, z U, f func(U, T) U) Gen[U] {
	return fillFold(g, ss.Gen0(), z, f)
}

func fillFold[T, U any](g Gen[T], count Gen[int], z U, f func(U, T) U) Gen[U] {
	return func(ctx *Ctx) U {
		n := count(ctx)
		acc := z
		for range n {
			acc = f(acc, g(ctx))
		}
		return acc
	}
}

// Fill generates a slice of exactly n values in generation order.
func Fill[T any](g Gen[T], n int) Gen[[]T] {
	if n < 0 {
		assertf("Fill: negative count (%d)", n)
	}
	return func(ctx *Ctx) []T {
		if n >= LargeFillThreshold {
			ctx.log.Warningf("Fill: generating a very large collection (%d elements)", n)
		}
		return fill(ctx, g, n)
	}
}

// FillSS generates a slice whose possibly-zero length is drawn from ss.
func FillSS[T any](g Gen[T], ss SizeSpec) Gen[[]T] {
	count := ss.Gen0()
	return func(ctx *Ctx) []T {
		return fill(ctx, g, count(ctx))
	}
}

// FillSS1 generates a non-empty slice whose length is drawn from ss.
func FillSS1[T any](g Gen[T], ss SizeSpec) Gen[[]T] {
	count := ss.Gen1()
	return func(ctx *Ctx) []T {
		return fill(ctx, g, count(ctx))
	}
}

func fill[T any](ctx *Ctx, g Gen[T], n int) []T {
	xs := make([]T, n)
	for i := range xs {
		xs[i] = g(ctx)
	}
	return xs
}

// SetOf generates a set from a possibly-zero number of draws; duplicates
// coalesce.
func SetOf[T comparable](g Gen[T], ss SizeSpec) Gen[map[T]struct{}] {
	count := ss.Gen0()
	return func(ctx *Ctx) map[T]struct{} {
		n := count(ctx)
		set := make(map[T]struct{}, n)
		for range n {
			set[g(ctx)] = struct{}{}
		}
		return set
	}
}

// MapBy draws a possibly-zero count from ss and then that many key/value
// pairs. A later draw of an existing key overwrites the earlier value, so the
// map may hold fewer entries than the drawn count.
func MapBy[K comparable, V any](values Gen[V], keys Gen[K], ss SizeSpec) Gen[map[K]V] {
	count := ss.Gen0()
	return func(ctx *Ctx) map[K]V {
		n := count(ctx)
		m := make(map[K]V, n)
		for range n {
			k := keys(ctx)
			m[k] = values(ctx)
		}
		return m
	}
}

// MapByKeySubset includes every key of the domain with one random bit and
// draws a value for each included key. Keys are visited in slice order.
func MapByKeySubset[K comparable, V any](values Gen[V], keys []K) Gen[map[K]V] {
	keys = slices.Clone(keys)
	return func(ctx *Ctx) map[K]V {
		m := make(map[K]V)
		for _, k := range keys {
			if ctx.src.Bool() {
				m[k] = values(ctx)
			}
		}
		return m
	}
}

// MapByEachKey draws a fresh value for every key of the domain.
func MapByEachKey[K comparable, V any](values Gen[V], keys []K) Gen[map[K]V] {
	keys = slices.Clone(keys)
	return func(ctx *Ctx) map[K]V {
		m := make(map[K]V, len(keys))
		for _, k := range keys {
			m[k] = values(ctx)
		}
		return m
	}
}
