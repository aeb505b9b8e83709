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

// Package random provides the bit source consumed by generators.
package random

import (
	"math/rand"
	"time"
)

// Source is a stateful pseudo-random bit generator. A Source is owned by a
// single caller and must not be used concurrently.
//
//go:generate mockgen -source source.go -destination source_mock.go -package random
type Source interface {
	Int32() int32       // next signed 32-bit integer
	Int64() int64       // next signed 64-bit integer
	Float64() float64   // next double in [0,1)
	Bool() bool         // next random bit
	IntN(bound int) int // next integer in [0,bound)
	Seed(seed int64)    // reset the state deterministically
}

// rngSource implements Source on top of math/rand.
type rngSource struct {
	rg *rand.Rand
}

// NewSource creates a source seeded with the given value.
func NewSource(seed int64) Source {
	return &rngSource{rg: rand.New(rand.NewSource(seed))}
}

// NewTimeSeededSource creates a source seeded from the wall clock.
func NewTimeSeededSource() Source {
	return NewSource(time.Now().UnixNano())
}

func (s *rngSource) Int32() int32 {
	return int32(s.rg.Uint32())
}

func (s *rngSource) Int64() int64 {
	return int64(s.rg.Uint64())
}

func (s *rngSource) Float64() float64 {
	return s.rg.Float64()
}

func (s *rngSource) Bool() bool {
	return s.rg.Int63()&1 == 1
}

// IntN panics if bound <= 0.
func (s *rngSource) IntN(bound int) int {
	return s.rg.Intn(bound)
}

func (s *rngSource) Seed(seed int64) {
	s.rg.Seed(seed)
}
