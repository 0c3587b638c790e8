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

package instructions

// Operator identifies the shape of a decoded instruction.
type Operator int

// List of operators. The comment shows the bit pattern of the opcode.
const (
	Invalid Operator = iota

	Cls        // 00E0
	Ret        // 00EE
	Jp         // 1nnn
	Call       // 2nnn
	SeImm      // 3xkk
	SneImm     // 4xkk
	SeReg      // 5xy0
	LdImm      // 6xkk
	AddImm     // 7xkk
	LdReg      // 8xy0
	Or         // 8xy1
	And        // 8xy2
	Xor        // 8xy3
	AddReg     // 8xy4
	Sub        // 8xy5
	Shr        // 8xy6
	Subn       // 8xy7
	Shl        // 8xyE
	SneReg     // 9xy0
	LdIndex    // Annn
	JpV0       // Bnnn
	Rnd        // Cxkk
	Drw        // Dxyn
	Skp        // Ex9E
	Sknp       // ExA1
	LdFromDT   // Fx07
	LdKey      // Fx0A
	LdToDT     // Fx15
	LdToST     // Fx18
	AddIndex   // Fx1E
	LdFont     // Fx29
	LdBCD      // Fx33
	StoreBlock // Fx55
	LoadBlock  // Fx65

	NumOperators
)

// Operands describes how the operands of an instruction are presented.
type Operands int

// List of operand forms.
const (
	NoOperands Operands = iota
	Addr       // nnn
	V0Addr     // V0, nnn
	VxByte     // Vx, kk
	VxVy       // Vx, Vy
	Vx         // Vx
	IndexAddr  // I, nnn
	VxVyN      // Vx, Vy, n
	VxDT       // Vx, DT
	VxK        // Vx, K
	DTVx       // DT, Vx
	STVx       // ST, Vx
	IndexVx    // I, Vx
	FontVx     // F, Vx
	BCDVx      // B, Vx
	BlockVx    // [I], Vx
	VxBlock    // Vx, [I]
	Raw        // the raw opcode
)

// Category of an instruction describes the effect it has on the flow of the
// program.
type Category int

// List of categories.
const (
	// the instruction does not change the program counter beyond moving it on
	// to the next instruction
	Modify Category = iota

	// the program counter is changed unconditionally
	Flow

	// the instruction calls or returns from a subroutine
	Subroutine

	// the next instruction might be skipped
	Skip

	// the instruction halts the CPU until a key is pressed
	Wait

	// the instruction cannot be executed
	Halt
)

func (c Category) String() string {
	switch c {
	case Modify:
		return "Modify"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Skip:
		return "Skip"
	case Wait:
		return "Wait"
	case Halt:
		return "Halt"
	}
	return "unknown category"
}

// Definition describes an Operator.
type Definition struct {
	Mnemonic string
	Operands Operands
	Category Category
}

// Definitions are indexed by Operator.
var Definitions = [NumOperators]Definition{
	Invalid:    {Mnemonic: "???", Operands: Raw, Category: Halt},
	Cls:        {Mnemonic: "CLS", Operands: NoOperands, Category: Modify},
	Ret:        {Mnemonic: "RET", Operands: NoOperands, Category: Subroutine},
	Jp:         {Mnemonic: "JP", Operands: Addr, Category: Flow},
	Call:       {Mnemonic: "CALL", Operands: Addr, Category: Subroutine},
	SeImm:      {Mnemonic: "SE", Operands: VxByte, Category: Skip},
	SneImm:     {Mnemonic: "SNE", Operands: VxByte, Category: Skip},
	SeReg:      {Mnemonic: "SE", Operands: VxVy, Category: Skip},
	LdImm:      {Mnemonic: "LD", Operands: VxByte, Category: Modify},
	AddImm:     {Mnemonic: "ADD", Operands: VxByte, Category: Modify},
	LdReg:      {Mnemonic: "LD", Operands: VxVy, Category: Modify},
	Or:         {Mnemonic: "OR", Operands: VxVy, Category: Modify},
	And:        {Mnemonic: "AND", Operands: VxVy, Category: Modify},
	Xor:        {Mnemonic: "XOR", Operands: VxVy, Category: Modify},
	AddReg:     {Mnemonic: "ADD", Operands: VxVy, Category: Modify},
	Sub:        {Mnemonic: "SUB", Operands: VxVy, Category: Modify},
	Shr:        {Mnemonic: "SHR", Operands: Vx, Category: Modify},
	Subn:       {Mnemonic: "SUBN", Operands: VxVy, Category: Modify},
	Shl:        {Mnemonic: "SHL", Operands: Vx, Category: Modify},
	SneReg:     {Mnemonic: "SNE", Operands: VxVy, Category: Skip},
	LdIndex:    {Mnemonic: "LD", Operands: IndexAddr, Category: Modify},
	JpV0:       {Mnemonic: "JP", Operands: V0Addr, Category: Flow},
	Rnd:        {Mnemonic: "RND", Operands: VxByte, Category: Modify},
	Drw:        {Mnemonic: "DRW", Operands: VxVyN, Category: Modify},
	Skp:        {Mnemonic: "SKP", Operands: Vx, Category: Skip},
	Sknp:       {Mnemonic: "SKNP", Operands: Vx, Category: Skip},
	LdFromDT:   {Mnemonic: "LD", Operands: VxDT, Category: Modify},
	LdKey:      {Mnemonic: "LD", Operands: VxK, Category: Wait},
	LdToDT:     {Mnemonic: "LD", Operands: DTVx, Category: Modify},
	LdToST:     {Mnemonic: "LD", Operands: STVx, Category: Modify},
	AddIndex:   {Mnemonic: "ADD", Operands: IndexVx, Category: Modify},
	LdFont:     {Mnemonic: "LD", Operands: FontVx, Category: Modify},
	LdBCD:      {Mnemonic: "LD", Operands: BCDVx, Category: Modify},
	StoreBlock: {Mnemonic: "LD", Operands: BlockVx, Category: Modify},
	LoadBlock:  {Mnemonic: "LD", Operands: VxBlock, Category: Modify},
}

// String returns the mnemonic of the operator.
func (op Operator) String() string {
	if op < 0 || op >= NumOperators {
		return Definitions[Invalid].Mnemonic
	}
	return Definitions[op].Mnemonic
}

// Definition returns the definition of the operator.
func (op Operator) Definition() Definition {
	if op < 0 || op >= NumOperators {
		return Definitions[Invalid]
	}
	return Definitions[op]
}
