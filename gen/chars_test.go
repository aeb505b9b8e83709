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
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/0xsoniclabs/propgen/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRune_NeverSurrogate(t *testing.T) {
	ctx := newTestCtx(17)
	g := Rune()
	for range 200000 {
		r := g.Run(ctx)
		require.True(t, utf8.ValidRune(r), "invalid rune %U", r)
		require.False(t, r >= 0xD800 && r <= 0xDFFF, "surrogate %U", r)
	}
}

func TestRune_SkipsSurrogateBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := random.NewMockSource(ctrl)
	ctx := NewCtx(src, 0)
	tests := []struct {
		draw int
		want rune
	}{
		{0, 0},
		{0xD7FF, 0xD7FF},
		{0xD800, 0xE000},
		{scalarCount - 1, unicode.MaxRune},
	}
	for _, test := range tests {
		src.EXPECT().IntN(scalarCount).Return(test.draw)
		assert.Equal(t, test.want, Rune().Run(ctx))
	}
}

func TestCharClasses(t *testing.T) {
	ctx := newTestCtx(2)
	tests := []struct {
		name  string
		gen   Gen[rune]
		valid func(rune) bool
	}{
		{"num", NumChar(), func(r rune) bool { return r >= '0' && r <= '9' }},
		{"upper", Upper(), func(r rune) bool { return r >= 'A' && r <= 'Z' }},
		{"lower", Lower(), func(r rune) bool { return r >= 'a' && r <= 'z' }},
		{"alpha", Alpha(), func(r rune) bool { return r < unicode.MaxASCII && unicode.IsLetter(r) }},
		{"alphanum", AlphaNum(), func(r rune) bool {
			return r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))
		}},
		{"ascii", ASCII(), func(r rune) bool { return r >= 0x20 && r <= 0x7E }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for range 2000 {
				r := test.gen.Run(ctx)
				assert.True(t, test.valid(r), "unexpected character %q", r)
			}
		})
	}
}

func TestCharTables(t *testing.T) {
	assert.Len(t, alphaChars, 52)
	assert.Len(t, alphaNumChars, 62)
	assert.Len(t, asciiChars, 95)
}

func TestStringOf_Lengths(t *testing.T) {
	ctx := newTestCtx(8)
	g := AlphaString(SizeRange(0, 5))
	sawEmpty := false
	for range 500 {
		s := g.Run(ctx)
		assert.LessOrEqual(t, len(s), 5)
		sawEmpty = sawEmpty || s == ""
	}
	assert.True(t, sawEmpty)

	g1 := String1Of(NumChar(), SizeRange(0, 5))
	for range 500 {
		s := g1.Run(ctx)
		assert.NotEmpty(t, s)
		assert.LessOrEqual(t, len(s), 5)
	}
}

func TestStringOf_RunsCharGeneratorCountTimes(t *testing.T) {
	runs := 0
	chars := Gen[rune](func(*Ctx) rune {
		runs++
		return 'a' + rune(runs-1)
	})
	ctx := newTestCtx(1)
	assert.Equal(t, "abcd", StringOf(chars, ExactSize(4)).Run(ctx))
	assert.Equal(t, 4, runs)
	assert.Equal(t, "", StringOf(chars, ExactSize(0)).Run(ctx))
	assert.Equal(t, 4, runs)
}

func TestString_ValidUTF8(t *testing.T) {
	ctx := newTestCtx(9)
	g := String(DefaultSize)
	for range 200 {
		assert.True(t, utf8.ValidString(g.Run(ctx)))
	}
}

func TestIdentifier(t *testing.T) {
	ctx := newTestCtx(10)
	g := Identifier(ExactSize(6))
	for range 200 {
		id := g.Run(ctx)
		require.Len(t, id, 7)
		assert.True(t, unicode.IsLower(rune(id[0])))
		assert.Equal(t, -1, strings.IndexFunc(id, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		}))
	}
}

func TestDerivedStrings(t *testing.T) {
	ctx := newTestCtx(11)
	assert.Regexp(t, `^[0-9]{5}$`, NumString(ExactSize(5)).Run(ctx))
	assert.Regexp(t, `^[0-9A-Za-z]{5}$`, AlphaNumString(ExactSize(5)).Run(ctx))
	assert.Regexp(t, `^[ -~]{5}$`, ASCIIString(ExactSize(5)).Run(ctx))
}
