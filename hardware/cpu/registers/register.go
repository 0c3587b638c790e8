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

// Register is an 8-bit register.
type Register struct {
	label string
	value uint8
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#02x", r.label, r.value)
}

// Label returns the name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// IsZero checks if register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register. Returns 1 if the addition carried out of the eighth
// bit and 0 otherwise.
func (r *Register) Add(val uint8) uint8 {
	v := r.value
	r.value += val
	if r.value < v {
		return 1
	}
	return 0
}

// Subtract value from register. Returns 1 if the subtraction borrowed and 0
// otherwise.
func (r *Register) Subtract(val uint8) uint8 {
	v := r.value
	r.value -= val
	if val > v {
		return 1
	}
	return 0
}

// ShiftRight shifts the register one bit to the right. Returns the bit
// shifted out.
func (r *Register) ShiftRight() uint8 {
	b := r.value & 0x01
	r.value >>= 1
	return b
}

// ShiftLeft shifts the register one bit to the left. Returns the bit shifted
// out.
func (r *Register) ShiftLeft() uint8 {
	b := r.value >> 7
	r.value <<= 1
	return b
}

// Reset register to zero.
func (r *Register) Reset() {
	r.value = 0
}
