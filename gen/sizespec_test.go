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
	"testing"

	"github.com/0xsoniclabs/propgen/random"
	"github.com/stretchr/testify/assert"
)

func TestExactSize(t *testing.T) {
	ctx := newTestCtx(1)
	assert.Equal(t, 0, ExactSize(0).Gen0().Run(ctx))
	assert.Equal(t, 1, ExactSize(0).Gen1().Run(ctx))
	assert.Equal(t, 5, ExactSize(5).Gen1().Run(ctx))
	requireAssertion(t, func() { ExactSize(-1) })
}

func TestSizeRange(t *testing.T) {
	ctx := newTestCtx(2)
	ss := SizeRange(0, 3)
	for range 500 {
		n0 := ss.Gen0().Run(ctx)
		assert.True(t, n0 >= 0 && n0 <= 3)
		n1 := ss.Gen1().Run(ctx)
		assert.True(t, n1 >= 1 && n1 <= 3)
	}
	assert.Equal(t, 1, SizeRange(0, 0).Gen1().Run(ctx))
	requireAssertion(t, func() { SizeRange(3, 2) })
	requireAssertion(t, func() { SizeRange(-1, 2) })
}

func TestDefaultSize_FollowsContextSize(t *testing.T) {
	ctx := NewCtx(random.NewSource(3), 0)
	assert.Equal(t, 0, DefaultSize.Gen0().Run(ctx))
	assert.Equal(t, 1, DefaultSize.Gen1().Run(ctx))

	ctx = NewCtx(random.NewSource(3), 6)
	for range 500 {
		n := DefaultSize.Gen1().Run(ctx)
		assert.True(t, n >= 1 && n <= 6)
	}
}

func TestNewSizeSpec_ClampsCounts(t *testing.T) {
	ss := NewSizeSpec(Pure(-4), Pure(0))
	ctx := newTestCtx(1)
	assert.Equal(t, 0, ss.Gen0().Run(ctx))
	assert.Equal(t, 1, ss.Gen1().Run(ctx))
}
