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

package curated

import (
	"fmt"
	"slices"
	"strings"
)

type curated struct {
	pattern string
	values  []any
}

// Errorf returns an error formatted with the pattern and values. The pattern
// identifies the error for the Is() and Has() functions so it should usually
// be a constant.
func Errorf(pattern string, values ...any) error {
	return curated{pattern: pattern, values: values}
}

// Error formats the message. Adjacent parts of the message that are the same
// are collapsed into one.
func (er curated) Error() string {
	parts := strings.Split(fmt.Sprintf(er.pattern, er.values...), ": ")
	return strings.Join(slices.Compact(parts), ": ")
}

// Unwrap returns the first value that is an error, so that curated errors
// work with errors.Is() and errors.As().
func (er curated) Unwrap() error {
	for _, v := range er.values {
		if err, ok := v.(error); ok {
			return err
		}
	}
	return nil
}

// IsAny is true if err was created by Errorf().
func IsAny(err error) bool {
	_, ok := err.(curated)
	return ok
}

// Is is true if err was created by Errorf() with the pattern.
func Is(err error, pattern string) bool {
	er, ok := err.(curated)
	return ok && er.pattern == pattern
}

// Has is true if err, or any curated error among its values, was created with
// the pattern.
func Has(err error, pattern string) bool {
	er, ok := err.(curated)
	if !ok {
		return false
	}
	if er.pattern == pattern {
		return true
	}
	for _, v := range er.values {
		if e, ok := v.(error); ok && Has(e, pattern) {
			return true
		}
	}
	return false
}
