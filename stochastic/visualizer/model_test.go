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

package visualizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisualizer_NewHistogramOrder(t *testing.T) {
	bins := NewHistogram(map[string]int{"b": 3, "a": 3, "c": 7, "d": 1})
	assert.Equal(t, []Bin{
		{Label: "c", Count: 7},
		{Label: "a", Count: 3},
		{Label: "b", Count: 3},
		{Label: "d", Count: 1},
	}, bins)
}

func TestVisualizer_NewHistogramEmpty(t *testing.T) {
	assert.Empty(t, NewHistogram(nil))
}

func TestVisualizer_Truncate(t *testing.T) {
	bins := []Bin{{"a", 5}, {"b", 4}, {"c", 2}, {"d", 1}}
	assert.Equal(t, []Bin{{"a", 5}, {"b", 4}, {"other", 3}}, Truncate(bins, 2, "other"))
	assert.Equal(t, bins, Truncate(bins, 4, "other"))
	assert.Equal(t, bins, Truncate(bins, -1, "other"))
	assert.Equal(t, []Bin{{"a", 5}, {"b", 4}, {"c", 2}, {"d", 1}}, bins)
}
