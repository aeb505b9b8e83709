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
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrUnsatisfied is the cause of every filter rejection.
var ErrUnsatisfied = errors.New("generated value does not satisfy the filter predicate")

// UnsatisfiedError reports the value a filtered generator rejected.
type UnsatisfiedError struct {
	Value any
}

func (e *UnsatisfiedError) Error() string {
	return fmt.Sprintf("%v: %v", ErrUnsatisfied, e.Value)
}

func (e *UnsatisfiedError) Unwrap() error {
	return ErrUnsatisfied
}

// assertf aborts on a generator constructed with invalid arguments.
func assertf(format string, args ...any) {
	panic(errors.AssertionFailedf(format, args...))
}
