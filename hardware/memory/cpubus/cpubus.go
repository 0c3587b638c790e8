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

// Package cpubus defines the interface to memory as seen by the CPU.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. All memory implementations must implement this interface.
type Memory interface {
	Read(address uint16) (uint8, error)
	Read16(address uint16) (uint16, error)
	Write(address uint16, data uint8) error
}
