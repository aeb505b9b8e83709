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

package sampling

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/0xsoniclabs/propgen/ethgen"
	"github.com/0xsoniclabs/propgen/gen"
	"github.com/0xsoniclabs/propgen/stochastic/statistics/discrete"
	"github.com/0xsoniclabs/propgen/stochastic/statistics/exponential"
	"github.com/0xsoniclabs/propgen/stochastic/statistics/markov"
	"github.com/0xsoniclabs/propgen/utils"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/exp/maps"
)

// entry is a named generator whose values are rendered as strings.
type entry struct {
	description string
	gen         gen.Gen[string]
}

func show[T any](g gen.Gen[T]) gen.Gen[string] {
	return gen.Map(g, func(v T) string {
		return fmt.Sprint(v)
	})
}

func quoted(g gen.Gen[rune]) gen.Gen[string] {
	return gen.Map(g, strconv.QuoteRune)
}

func showOption[T any](g gen.Gen[gen.Optional[T]]) gen.Gen[string] {
	return gen.Map(g, func(o gen.Optional[T]) string {
		if !o.Valid {
			return "none"
		}
		return fmt.Sprintf("some(%v)", o.Value)
	})
}

func showEither[L, R any](g gen.Gen[gen.Either[L, R]]) gen.Gen[string] {
	return gen.Map(g, func(e gen.Either[L, R]) string {
		if e.IsRight {
			return fmt.Sprintf("right(%v)", e.Right)
		}
		return fmt.Sprintf("left(%v)", e.Left)
	})
}

// showMap prints a map with its keys in sorted order.
func showMap[K comparable, V any](g gen.Gen[map[K]V], less func(a, b K) int) gen.Gen[string] {
	return gen.Map(g, func(m map[K]V) string {
		keys := maps.Keys(m)
		slices.SortFunc(keys, less)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%v:%v", k, m[k]))
		}
		return "{" + strings.Join(parts, " ") + "}"
	})
}

var letters = []string{"a", "b", "c", "d", "e"}

var weekdays = markovChain()

// markovChain is a work week in which the weekend is always followed by Monday.
func markovChain() *markov.Chain {
	return utils.Must(markov.New(
		[][]float64{
			{0.0, 0.9, 0.0, 0.0, 0.0, 0.1},
			{0.0, 0.0, 0.9, 0.0, 0.0, 0.1},
			{0.0, 0.0, 0.0, 0.9, 0.0, 0.1},
			{0.0, 0.0, 0.0, 0.0, 0.9, 0.1},
			{0.0, 0.0, 0.0, 0.0, 0.0, 1.0},
			{1.0, 0.0, 0.0, 0.0, 0.0, 0.0},
		},
		[]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Weekend"},
	))
}

var catalogue = map[string]entry{
	"int":    {"any 32-bit integer", show(gen.Int())},
	"long":   {"any 64-bit integer", show(gen.Long())},
	"double": {"double in [0,1)", show(gen.Double())},
	"float":  {"float in [0,1)", show(gen.Float())},
	"bool":   {"a single bit", show(gen.Bool())},
	"byte":   {"any byte", show(gen.Byte())},
	"die":    {"integer in [1,6]", show(gen.ChooseInt(1, 6))},
	"temperature": {"double in [-40,50]", gen.Map(gen.ChooseDouble(-40, 50), func(x float64) string {
		return strconv.FormatFloat(x, 'f', 2, 64)
	})},
	"unit-float": {"float in [-1,1]", show(gen.ChooseFloat(-1, 1))},

	"rune":         {"Unicode scalar value, never a surrogate", quoted(gen.Rune())},
	"digit":        {"decimal digit", quoted(gen.NumChar())},
	"upper":        {"upper case ASCII letter", quoted(gen.Upper())},
	"lower":        {"lower case ASCII letter", quoted(gen.Lower())},
	"alpha":        {"ASCII letter", quoted(gen.Alpha())},
	"alpha-num":    {"ASCII letter or digit", quoted(gen.AlphaNum())},
	"ascii":        {"printable ASCII character", quoted(gen.ASCII())},
	"string":       {"Unicode string", gen.Map(gen.String(gen.DefaultSize), strconv.Quote)},
	"ascii-string": {"printable ASCII string", gen.Map(gen.ASCIIString(gen.DefaultSize), strconv.Quote)},
	"alpha-string": {"string of letters", gen.AlphaString(gen.DefaultSize)},
	"num-string":   {"string of digits", gen.NumString(gen.DefaultSize)},
	"alnum-string": {"string of letters and digits", gen.AlphaNumString(gen.DefaultSize)},
	"identifier":   {"letter followed by letters or digits", gen.Identifier(gen.DefaultSize)},

	"weighted": {"a:1 b:3 c:6 weighted choice", gen.Frequency(
		gen.Freq[string]{Weight: 1, Gen: gen.Pure("a")},
		gen.Freq[string]{Weight: 3, Gen: gen.Pure("b")},
		gen.Freq[string]{Weight: 6, Gen: gen.Pure("c")},
	)},
	"letter":   {"uniform choice of a to e", gen.Choose(letters...)},
	"shuffle":  {"permutation of a to e", show(gen.Shuffle(letters))},
	"subset":   {"order preserving subset of a to e", show(gen.Subset(letters))},
	"subset1":  {"non-empty subset of a to e", show(gen.Subset1(letters))},
	"take3":    {"three distinct letters of a to e", show(gen.Take(letters, gen.ExactSize(3)))},
	"int-list": {"list of dice rolls", show(gen.FillSS(gen.ChooseInt(1, 6), gen.DefaultSize))},
	"int-set": {"set of dice rolls", show(gen.Map(gen.SetOf(gen.ChooseInt(1, 6), gen.DefaultSize), func(s map[int]struct{}) []int {
		xs := maps.Keys(s)
		slices.Sort(xs)
		return xs
	}))},
	"dice-sum": {"sum of ten dice", show(gen.FillFold(gen.ChooseInt(1, 6), 10, 0, func(acc, x int) int { return acc + x }))},
	"option":   {"maybe a die roll", showOption(gen.OptionOf(gen.ChooseInt(1, 6)))},
	"either":   {"letter or die roll", showEither(gen.EitherOf(gen.Choose(letters...), gen.ChooseInt(1, 6)))},
	"pair":     {"pair of dice", show(gen.PairOf(gen.ChooseInt(1, 6)))},
	"triple":   {"triple of letters", show(gen.TripleOf(gen.Choose(letters...)))},
	"key-subset": {"letters mapped to dice rolls, each letter with probability one half", showMap(
		gen.MapByKeySubset(gen.ChooseInt(1, 6), letters), strings.Compare)},
	"each-key": {"every letter mapped to a die roll", showMap(
		gen.MapByEachKey(gen.ChooseInt(1, 6), letters), strings.Compare)},
	"map-by": {"identifiers mapped to dice rolls", showMap(
		gen.MapBy(gen.ChooseInt(1, 6), gen.Identifier(gen.SizeRange(1, 3)), gen.DefaultSize), strings.Compare)},

	"pmf": {"letters distributed by a probability mass function", utils.Must(
		discrete.Distribution([]float64{0.5, 0.25, 0.125, 0.0625, 0.0625}, letters))},
	"exp-list": {"list whose length favours small sizes", show(gen.FillSS(gen.Int(),
		utils.Must(exponential.SizeSpec(5.0, 20))))},
	"week": {"walk through a work week", show(utils.Must(weekdays.Walk("Weekend", gen.SizeRange(1, 10))))},

	"address": {"random account address", show(ethgen.Address())},
	"contract": {"address from a population of 100 contracts", show(ethgen.IndexedAddress(
		utils.Must(exponential.Index(5.0, 100))))},
	"hash":    {"random 32-byte hash", show(ethgen.Hash())},
	"word":    {"random 256-bit word", show(ethgen.Word())},
	"balance": {"balance up to 10^18", show(ethgen.Balance(1_000_000_000_000_000_000))},
	"storage": {"storage map over 16 slots", showMap(
		ethgen.Storage(ethgen.IndexedHash(gen.ChooseInt(1, 16)), gen.DefaultSize),
		func(a, b common.Hash) int { return a.Cmp(b) })},
}

// Names returns the names of all catalogue generators in sorted order.
func Names() []string {
	names := maps.Keys(catalogue)
	slices.Sort(names)
	return names
}

func lookup(name string) (entry, error) {
	e, ok := catalogue[name]
	if !ok {
		return entry{}, fmt.Errorf("unknown generator %q; use the list command to show the catalogue", name)
	}
	return e, nil
}
