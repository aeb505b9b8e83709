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

	"golang.org/x/exp/constraints"
)

// maxIntNBound is the largest width handed to Source.IntN directly.
const maxIntNBound = math.MaxInt32

// ChooseIntegral generates values uniformly in the inclusive range [l,h].
// The index into the range is drawn without modulo bias, so ranges wider
// than 32 bits and full-width ranges are supported.
func ChooseIntegral[T constraints.Integer](l, h T) Gen[T] {
	if l > h {
		assertf("ChooseIntegral: empty range [%v,%v]", l, h)
	}
	if l == h {
		return Pure(l)
	}
	// conversion sign-extends signed values, so the difference is the
	// width of the range in two's complement
	width := uint64(h) - uint64(l) + 1
	return func(ctx *Ctx) T {
		return T(uint64(l) + ctx.uniformIndex(width))
	}
}

// ChooseInt generates ints in [l,h].
func ChooseInt(l, h int) Gen[int] {
	return ChooseIntegral(l, h)
}

// ChooseLong generates int64 values in [l,h].
func ChooseLong(l, h int64) Gen[int64] {
	return ChooseIntegral(l, h)
}

// ChooseDouble generates float64 values in [l,h]. Reversed bounds are
// swapped and equal bounds yield a constant. Intervals wider than the
// largest float64 use the convex combination l*(1-x) + h*x.
func ChooseDouble(l, h float64) Gen[float64] {
	if l > h {
		l, h = h, l
	}
	if l == h {
		return Pure(l)
	}
	d := h - l
	if math.IsInf(d, 0) {
		return func(ctx *Ctx) float64 {
			x := ctx.src.Float64()
			return min(l*(1-x)+h*x, h)
		}
	}
	return func(ctx *Ctx) float64 {
		return min(l+ctx.src.Float64()*d, h)
	}
}

// ChooseFloat generates float32 values in [l,h]. Intervals straddling zero
// use the convex combination l*(1-x) + h*x, which avoids the cancellation
// error of scale-and-shift near zero.
func ChooseFloat(l, h float32) Gen[float32] {
	if l > h {
		l, h = h, l
	}
	if l == h {
		return Pure(l)
	}
	if l < 0 && h > 0 {
		return func(ctx *Ctx) float32 {
			x := float32(ctx.src.Float64())
			return min(l*(1-x)+h*x, h)
		}
	}
	d := h - l
	return func(ctx *Ctx) float32 {
		return min(l+float32(ctx.src.Float64())*d, h)
	}
}

// Int generates any int32.
func Int() Gen[int32] {
	return func(ctx *Ctx) int32 {
		return ctx.src.Int32()
	}
}

// Long generates any int64.
func Long() Gen[int64] {
	return func(ctx *Ctx) int64 {
		return ctx.src.Int64()
	}
}

// Double generates float64 values in [0,1).
func Double() Gen[float64] {
	return func(ctx *Ctx) float64 {
		return ctx.src.Float64()
	}
}

// Float generates float32 values in [0,1) from 24 random mantissa bits.
func Float() Gen[float32] {
	return func(ctx *Ctx) float32 {
		return float32(uint32(ctx.src.Int32())>>8) / (1 << 24)
	}
}

// Bool generates a single random bit.
func Bool() Gen[bool] {
	return func(ctx *Ctx) bool {
		return ctx.src.Bool()
	}
}

// Byte generates any byte.
func Byte() Gen[byte] {
	return func(ctx *Ctx) byte {
		return byte(ctx.src.Int32())
	}
}
