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

// Package timing defines the time cost, in microseconds, of each family of
// instruction. The costs approximate the execution speed of the original
// COSMAC VIP interpreter and are used by the host to pace the emulation.
package timing

// Timing is the cost of each family of instruction. Values are in
// microseconds.
type Timing struct {
	// CLS
	ClearScreen int

	// RET, JP, CALL and JP V0
	Flow int

	// SE Vx, kk and SNE Vx, kk
	SkipImmediate int

	// SE Vx, Vy and SNE Vx, Vy
	SkipRegister int

	// LD Vx, kk
	LoadImmediate int

	// ADD Vx, kk
	AddImmediate int

	// LD Vx, Vy and the remaining 8xy* instructions
	ALU int

	// LD I, nnn
	LoadIndex int

	// RND Vx, kk
	Random int

	// DRW Vx, Vy, n costs DrawBase plus DrawRow for every row of the sprite
	DrawBase int
	DrawRow  int

	// SKP Vx and SKNP Vx
	SkipKey int

	// LD Vx, DT and LD DT, Vx and LD ST, Vx
	Timers int

	// ADD I, Vx
	AddIndex int

	// LD F, Vx
	Font int

	// LD B, Vx
	BCD int

	// LD [I], Vx and LD Vx, [I]
	RegisterBlock int

	// LD Vx, K. this is the cost of the instruction that enters the waiting
	// state and not the cost of the waiting itself
	KeyWait int

	// the cost of every step spent in the waiting state
	KeyWaitPoll int
}

// Default returns the default timing values.
func Default() Timing {
	return Timing{
		ClearScreen:   109,
		Flow:          105,
		SkipImmediate: 55,
		SkipRegister:  73,
		LoadImmediate: 27,
		AddImmediate:  45,
		ALU:           200,
		LoadIndex:     55,
		Random:        164,
		DrawBase:      10000,
		DrawRow:       1000,
		SkipKey:       73,
		Timers:        45,
		AddIndex:      86,
		Font:          91,
		BCD:           927,
		RegisterBlock: 605,
		KeyWait:       0,
		KeyWaitPoll:   100,
	}
}

// Draw returns the cost of drawing a sprite of the specified number of rows.
func (t Timing) Draw(rows int) int {
	return t.DrawBase + t.DrawRow*rows
}
