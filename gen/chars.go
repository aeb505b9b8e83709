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
	"unicode"
)

const (
	surrogateStart     = 0xD800
	surrogateCount     = 0x800
	scalarCount    int = unicode.MaxRune + 1 - surrogateCount
)

// Character tables, built once and read-only afterwards.
var (
	numChars      = []rune("0123456789")
	upperChars    = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	lowerChars    = []rune("abcdefghijklmnopqrstuvwxyz")
	alphaChars    = []rune(string(upperChars) + string(lowerChars))
	alphaNumChars = []rune(string(numChars) + string(alphaChars))
	asciiChars    = printableASCII()
)

func printableASCII() []rune {
	table := make([]rune, 0, 0x7F-0x20)
	for r := rune(0x20); r < 0x7F; r++ {
		table = append(table, r)
	}
	return table
}

// Rune generates any Unicode scalar value; surrogate code points are never
// produced. The draw covers the range with the surrogate block removed and
// is shifted past the block when it lands at or above its start.
func Rune() Gen[rune] {
	return func(ctx *Ctx) rune {
		r := rune(ctx.src.IntN(scalarCount))
		if r >= surrogateStart {
			r += surrogateCount
		}
		return r
	}
}

func fromTable(table []rune) Gen[rune] {
	return func(ctx *Ctx) rune {
		return table[ctx.src.IntN(len(table))]
	}
}

// NumChar generates decimal digits.
func NumChar() Gen[rune] { return fromTable(numChars) }

// Upper generates ASCII upper-case letters.
func Upper() Gen[rune] { return fromTable(upperChars) }

// Lower generates ASCII lower-case letters.
func Lower() Gen[rune] { return fromTable(lowerChars) }

// Alpha generates ASCII letters.
func Alpha() Gen[rune] { return fromTable(alphaChars) }

// AlphaNum generates ASCII letters and digits.
func AlphaNum() Gen[rune] { return fromTable(alphaNumChars) }

// ASCII generates printable ASCII characters.
func ASCII() Gen[rune] { return fromTable(asciiChars) }

// StringOf generates strings of chars with a possibly-zero length drawn from ss.
func StringOf(chars Gen[rune], ss SizeSpec) Gen[string] {
	return stringOf(chars, ss.Gen0())
}

// String1Of generates non-empty strings of chars.
func String1Of(chars Gen[rune], ss SizeSpec) Gen[string] {
	return stringOf(chars, ss.Gen1())
}

func stringOf(chars Gen[rune], count Gen[int]) Gen[string] {
	return func(ctx *Ctx) string {
		n := count(ctx)
		if n == 0 {
			return ""
		}
		buf := make([]rune, n)
		for i := range buf {
			buf[i] = chars(ctx)
		}
		return string(buf)
	}
}

func String(ss SizeSpec) Gen[string]         { return StringOf(Rune(), ss) }
func AlphaString(ss SizeSpec) Gen[string]    { return StringOf(Alpha(), ss) }
func NumString(ss SizeSpec) Gen[string]      { return StringOf(NumChar(), ss) }
func AlphaNumString(ss SizeSpec) Gen[string] { return StringOf(AlphaNum(), ss) }
func ASCIIString(ss SizeSpec) Gen[string]    { return StringOf(ASCII(), ss) }

// Identifier generates a lower-case letter followed by alphanumerics.
func Identifier(ss SizeSpec) Gen[string] {
	return Apply2(Lower(), AlphaNumString(ss), func(head rune, tail string) string {
		return string(head) + tail
	})
}
