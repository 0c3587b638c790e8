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

package registers

import "fmt"

// Address is a 16-bit register.
type Address struct {
	label string
	value uint16
}

// NewAddress is the preferred method of initialisation for Address.
func NewAddress(val uint16, label string) Address {
	return Address{
		value: val,
		label: label,
	}
}

func (r Address) String() string {
	return fmt.Sprintf("%s=%#04x", r.label, r.value)
}

// Label returns the name of the register.
func (r Address) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Address) Value() uint16 {
	return r.value
}

// Load value into register.
func (r *Address) Load(val uint16) {
	r.value = val
}

// Add value to register. Returns true if the addition wrapped.
func (r *Address) Add(val uint16) bool {
	v := r.value
	r.value += val
	return r.value < v
}

// Subtract value from register. Returns true if the subtraction wrapped.
func (r *Address) Subtract(val uint16) bool {
	v := r.value
	r.value -= val
	return val > v
}

// Reset register to zero.
func (r *Address) Reset() {
	r.value = 0
}
