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

// Package curated creates errors that can be identified by the pattern they
// were formatted with.
//
// Packages declare the patterns for their errors as constants:
//
//	const Overflow = "stack: overflow (depth %d)"
//
// and create errors with Errorf() in the same way as fmt.Errorf():
//
//	return curated.Errorf(Overflow, depth)
//
// Is() tests the pattern of an error. Has() also looks through any curated
// errors used as values, so that wrapped errors can be found:
//
//	err := curated.Errorf("cpu: %v", curated.Errorf(stack.Overflow, 16))
//	curated.Is(err, stack.Overflow)  // false
//	curated.Has(err, stack.Overflow) // true
//
// Wrapping an error with the prefix it already has does not repeat the
// prefix. The message is split on ": " and adjacent parts that are the same
// are printed once:
//
//	curated.Errorf("cpu: %v", curated.Errorf("cpu: illegal instruction"))
//
// prints as
//
//	cpu: illegal instruction
package curated
