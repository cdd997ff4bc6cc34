// This file is part of Megagopher.
//
// Megagopher is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Megagopher is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Megagopher.  If not, see <https://www.gnu.org/licenses/>.

package z80

// Register names a register in the Z80 engine. The shadow registers are
// suffixed with a 2.
type Register int

// List of valid Register values.
const (
	AF Register = iota
	BC
	DE
	HL
	IX
	IY
	PC
	SP
	AF2
	BC2
	DE2
	HL2
	IFF
	R
	I
	IM

	NumRegisters
)

var registerNames = [NumRegisters]string{
	"AF", "BC", "DE", "HL", "IX", "IY", "PC", "SP",
	"AF'", "BC'", "DE'", "HL'",
	"IFF", "R", "I", "IM",
}

func (r Register) String() string {
	if r < 0 || r >= NumRegisters {
		return "unknown"
	}
	return registerNames[r]
}

// Engine state bits. These are the bits used by the engine itself and are
// not the same as the status bits in the Registers type.
const (
	EngineRunning = 0x01
	EngineHalted  = 0x02
	EngineFaulted = 0x10
)

// Interrupt line bits.
const (
	IntLineIRQ = 0x01
	IntLineNMI = 0x80
)

// Engine is the instruction level Z80 emulation. The adapter only uses the
// engine through this interface.
type Engine interface {
	// register access by name. 8 bit registers are held in the low byte
	Register(reg Register) uint16
	SetRegister(reg Register, value uint16)

	// set every register to its power on value
	HardReset()

	State() uint8
	SetState(state uint8)
	IntLine() uint8
	SetIntLine(line uint8)
	IntVect() uint8
	SetIntVect(vector uint8)

	// instruction fetches from the 256 byte pages lowPage to highPage
	// (inclusive) come directly from mem
	AddFetch(lowPage uint8, highPage uint8, mem []uint8)

	// memory access for everything not covered by AddFetch()
	SetReadByte(read func(address uint16) uint8)
	SetWriteByte(write func(address uint16, data uint8))

	// run for the number of cycles. returns the number of cycles actually run
	Exec(cycles int) (int, error)

	// release any resources held by the engine
	Close() error
}

// EngineFactory creates a new engine. An engine is created every time the
// adapter is initialised.
type EngineFactory func() (Engine, error)
