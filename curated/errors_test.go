// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package curated_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/test"
)

const (
	overflow = "stack: overflow (depth %d)"
	illegal  = "cpu: illegal instruction (%04x)"
	halted   = "halted: %v"
)

func TestMessage(t *testing.T) {
	e := curated.Errorf(overflow, 16)
	test.ExpectEquality(t, e.Error(), "stack: overflow (depth 16)")

	// the stack prefix is not repeated
	f := curated.Errorf("stack: %v", e)
	test.ExpectEquality(t, f.Error(), "stack: overflow (depth 16)")

	// only adjacent parts are collapsed
	g := curated.Errorf("cpu: %v", curated.Errorf("stack: cpu: %v", "fault"))
	test.ExpectEquality(t, g.Error(), "cpu: stack: cpu: fault")
}

func TestPatterns(t *testing.T) {
	e := curated.Errorf(overflow, 16)
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, overflow))
	test.ExpectSuccess(t, curated.Has(e, overflow))
	test.ExpectFailure(t, curated.Is(e, illegal))
	test.ExpectFailure(t, curated.Has(e, illegal))

	f := curated.Errorf(halted, e)
	test.ExpectFailure(t, curated.Is(f, overflow))
	test.ExpectSuccess(t, curated.Is(f, halted))
	test.ExpectSuccess(t, curated.Has(f, overflow))
	test.ExpectSuccess(t, curated.Has(f, halted))

	// a standard library error breaks the chain
	g := curated.Errorf(halted, fmt.Errorf("wrapped: %w", e))
	test.ExpectFailure(t, curated.Has(g, overflow))

	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.Has(nil, overflow))
}

func TestUnwrap(t *testing.T) {
	e := errors.New("plain")
	f := curated.Errorf(halted, e)
	test.ExpectSuccess(t, errors.Is(f, e))
	test.ExpectEquality(t, f.Error(), "halted: plain")

	// the first error value is the one unwrapped
	g := curated.Errorf("%v %v", "not an error", f)
	test.ExpectSuccess(t, errors.Is(g, e))
	test.ExpectEquality(t, errors.Unwrap(curated.Errorf(overflow, 16)), nil)
}
