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

// Pair holds two values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple holds three values.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Optional holds a value that may be absent.
type Optional[T any] struct {
	Value T
	Valid bool
}

// Either holds exactly one of two alternatives.
type Either[L, R any] struct {
	Left    L
	Right   R
	IsRight bool
}

// Zip2 runs ga then gb.
func Zip2[A, B any](ga Gen[A], gb Gen[B]) Gen[Pair[A, B]] {
	return Apply2(ga, gb, func(a A, b B) Pair[A, B] {
		return Pair[A, B]{First: a, Second: b}
	})
}

// Zip3 runs ga, gb and gc in order.
func Zip3[A, B, C any](ga Gen[A], gb Gen[B], gc Gen[C]) Gen[Triple[A, B, C]] {
	return Apply3(ga, gb, gc, func(a A, b B, c C) Triple[A, B, C] {
		return Triple[A, B, C]{First: a, Second: b, Third: c}
	})
}

// PairOf runs g twice.
func PairOf[T any](g Gen[T]) Gen[Pair[T, T]] {
	return Zip2(g, g)
}

// TripleOf runs g three times.
func TripleOf[T any](g Gen[T]) Gen[Triple[T, T, T]] {
	return Zip3(g, g, g)
}

// OptionOf spends exactly one random bit to decide whether a value is
// generated.
func OptionOf[T any](g Gen[T]) Gen[Optional[T]] {
	return func(ctx *Ctx) Optional[T] {
		if !ctx.src.Bool() {
			return Optional[T]{}
		}
		return Optional[T]{Value: g(ctx), Valid: true}
	}
}

// EitherOf spends one random bit to pick a side and runs that side's
// generator.
func EitherOf[L, R any](left Gen[L], right Gen[R]) Gen[Either[L, R]] {
	return func(ctx *Ctx) Either[L, R] {
		if ctx.src.Bool() {
			return Either[L, R]{Right: right(ctx), IsRight: true}
		}
		return Either[L, R]{Left: left(ctx)}
	}
}
