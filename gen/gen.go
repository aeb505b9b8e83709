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

// Package gen implements composable random-value generators for
// property-based testing. A Gen[T] is a function of a generation context;
// running it consumes randomness from the context's source in an order fixed
// by the structure of the composition, so a fixed seed reproduces a run.
package gen

import (
	"sync"
)

// Gen produces one value of type T per run.
type Gen[T any] func(ctx *Ctx) T

// Run evaluates the generator once.
func (g Gen[T]) Run(ctx *Ctx) T {
	return g(ctx)
}

// Try runs the generator and returns filter rejections as an error instead
// of panicking. Other panics are propagated.
func (g Gen[T]) Try(ctx *Ctx) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			ue, ok := r.(*UnsatisfiedError)
			if !ok {
				panic(r)
			}
			err = ue
		}
	}()
	return g(ctx), nil
}

// Pure returns a generator that always yields v without consuming randomness.
func Pure[T any](v T) Gen[T] {
	return func(*Ctx) T {
		return v
	}
}

// Map applies f to every generated value.
func Map[T, U any](g Gen[T], f func(T) U) Gen[U] {
	return func(ctx *Ctx) U {
		return f(g(ctx))
	}
}

// FlatMap runs g and then the generator selected by f on the same context.
func FlatMap[T, U any](g Gen[T], f func(T) Gen[U]) Gen[U] {
	return func(ctx *Ctx) U {
		t := g(ctx)
		return f(t)(ctx)
	}
}

// Apply2 runs ga then gb and combines the results.
func Apply2[A, B, C any](ga Gen[A], gb Gen[B], f func(A, B) C) Gen[C] {
	return func(ctx *Ctx) C {
		a := ga(ctx)
		b := gb(ctx)
		return f(a, b)
	}
}

// Apply3 runs ga, gb and gc in order and combines the results.
func Apply3[A, B, C, D any](ga Gen[A], gb Gen[B], gc Gen[C], f func(A, B, C) D) Gen[D] {
	return func(ctx *Ctx) D {
		a := ga(ctx)
		b := gb(ctx)
		c := gc(ctx)
		return f(a, b, c)
	}
}

// Filter rejects values failing pred by panicking with an *UnsatisfiedError.
// There is no resampling; use Try to observe the rejection as an error.
func (g Gen[T]) Filter(pred func(T) bool) Gen[T] {
	return func(ctx *Ctx) T {
		v := g(ctx)
		if !pred(v) {
			panic(&UnsatisfiedError{Value: v})
		}
		return v
	}
}

// Defer builds the generator returned by f on every run.
func Defer[T any](f func() Gen[T]) Gen[T] {
	return func(ctx *Ctx) T {
		return f()(ctx)
	}
}

// Lazy builds the generator returned by f on first use and caches it for the
// lifetime of the returned value. Useful for recursive definitions. A panic
// of f is cached as well and raised again on every run.
func Lazy[T any](f func() Gen[T]) Gen[T] {
	var (
		once    sync.Once
		g       Gen[T]
		failure any
	)
	return func(ctx *Ctx) T {
		once.Do(func() {
			defer func() {
				failure = recover()
			}()
			g = f()
		})
		if failure != nil {
			panic(failure)
		}
		return g(ctx)
	}
}

// Reseed resets the context's random source to the given seed.
func Reseed(seed int64) Gen[struct{}] {
	return func(ctx *Ctx) struct{} {
		ctx.src.Seed(seed)
		return struct{}{}
	}
}

// WithSeed reseeds the source before every run of g.
func (g Gen[T]) WithSeed(seed int64) Gen[T] {
	return FlatMap(Reseed(seed), func(struct{}) Gen[T] {
		return g
	})
}

// Sized passes the current size budget to f.
func Sized[T any](f func(size int) Gen[T]) Gen[T] {
	return func(ctx *Ctx) T {
		return f(ctx.size)(ctx)
	}
}

// Resize runs g with the given size budget. The caller's size is restored
// afterwards.
func Resize[T any](g Gen[T], size int) Gen[T] {
	return func(ctx *Ctx) T {
		return resized(ctx, size, g)
	}
}

// Scale runs g with the size budget transformed by f.
func Scale[T any](g Gen[T], f func(int) int) Gen[T] {
	return func(ctx *Ctx) T {
		return resized(ctx, f(ctx.size), g)
	}
}
