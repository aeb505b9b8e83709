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
	"github.com/0xsoniclabs/propgen/logger"
	"github.com/0xsoniclabs/propgen/random"
)

// DefaultGenSize is the size budget used when sampling without an explicit size.
const DefaultGenSize = 30

var defaultLog = logger.NewLogger("warning", "Gen")

// Ctx is the generation context threaded through every generator of a single
// run. It borrows a random source and carries the current size budget.
type Ctx struct {
	src  random.Source
	size int
	log  logger.Logger
}

// NewCtx creates a generation context. The size must not be negative.
func NewCtx(src random.Source, size int) *Ctx {
	if size < 0 {
		assertf("NewCtx: negative generation size (%d)", size)
	}
	return &Ctx{
		src:  src,
		size: size,
		log:  defaultLog,
	}
}

// WithLogger replaces the logger used for advisory warnings.
func (c *Ctx) WithLogger(log logger.Logger) *Ctx {
	c.log = log
	return c
}

// Size returns the current size budget.
func (c *Ctx) Size() int {
	return c.size
}

// Source returns the borrowed random source.
func (c *Ctx) Source() random.Source {
	return c.src
}

// resized runs g with a temporary size; the previous size is restored even
// if g panics.
func resized[T any](c *Ctx, size int, g Gen[T]) T {
	if size < 0 {
		size = 0
	}
	prev := c.size
	c.size = size
	defer func() {
		c.size = prev
	}()
	return g(c)
}

// uniformIndex draws a value in [0,width) without modulo bias. A width of
// zero denotes the full 64-bit range.
func (c *Ctx) uniformIndex(width uint64) uint64 {
	switch {
	case width == 0:
		return uint64(c.src.Int64())
	case width <= maxIntNBound:
		return uint64(c.src.IntN(int(width)))
	}
	// reject draws from the incomplete top bucket
	threshold := -width % width
	for {
		x := uint64(c.src.Int64())
		if x >= threshold {
			return x % width
		}
	}
}
