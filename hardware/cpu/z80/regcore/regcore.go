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

// Package regcore is a Z80 engine that holds register state but does not
// decode instructions. It is used when a session is needed without a full
// Z80 interpreter, for example when inspecting or converting savestates.
//
// Exec() accounts for the requested cycles without changing any register.
package regcore

import (
	"fmt"

	"github.com/megagopher/megagopher/hardware/cpu/z80"
)

const pageSize = 0x100

// Core implements the z80.Engine interface.
type Core struct {
	regs [z80.NumRegisters]uint16

	state   uint8
	intLine uint8
	intVect uint8

	// instruction fetch pages
	fetch [256][]uint8

	read  func(address uint16) uint8
	write func(address uint16, data uint8)

	// total number of cycles accounted for by Exec() since the last
	// HardReset()
	Cycles int

	closed bool
}

// NewCore is the preferred method of initialisation for the Core type.
func NewCore() *Core {
	c := &Core{}
	c.HardReset()
	return c
}

// Factory creates a new Core. It can be used as a z80.EngineFactory.
func Factory() (z80.Engine, error) {
	return NewCore(), nil
}

func (c *Core) String() string {
	return fmt.Sprintf("PC=%04x SP=%04x AF=%04x state=%02x cycles=%d",
		c.regs[z80.PC], c.regs[z80.SP], c.regs[z80.AF], c.state, c.Cycles)
}

// the 8 bit registers are stored in the low byte.
func mask(reg z80.Register, value uint16) uint16 {
	if reg >= z80.IFF {
		return value & 0x00ff
	}
	return value
}

// Register implements the z80.Engine interface.
func (c *Core) Register(reg z80.Register) uint16 {
	if reg < 0 || reg >= z80.NumRegisters {
		return 0
	}
	return c.regs[reg]
}

// SetRegister implements the z80.Engine interface.
func (c *Core) SetRegister(reg z80.Register, value uint16) {
	if reg < 0 || reg >= z80.NumRegisters {
		return
	}
	c.regs[reg] = mask(reg, value)
}

// HardReset implements the z80.Engine interface. AF and SP are set to 0xffff
// and all other registers are zeroed. Interrupts are disabled and interrupt
// mode zero is selected.
func (c *Core) HardReset() {
	clear(c.regs[:])
	c.regs[z80.AF] = 0xffff
	c.regs[z80.SP] = 0xffff
	c.state = z80.EngineRunning
	c.intLine = 0
	c.intVect = 0xff
	c.Cycles = 0
}

// State implements the z80.Engine interface.
func (c *Core) State() uint8 {
	return c.state
}

// SetState implements the z80.Engine interface.
func (c *Core) SetState(state uint8) {
	c.state = state
}

// IntLine implements the z80.Engine interface.
func (c *Core) IntLine() uint8 {
	return c.intLine
}

// SetIntLine implements the z80.Engine interface.
func (c *Core) SetIntLine(line uint8) {
	c.intLine = line
}

// IntVect implements the z80.Engine interface.
func (c *Core) IntVect() uint8 {
	return c.intVect
}

// SetIntVect implements the z80.Engine interface.
func (c *Core) SetIntVect(vector uint8) {
	c.intVect = vector
}

// AddFetch implements the z80.Engine interface. Pages beyond the end of mem
// are not mapped.
func (c *Core) AddFetch(lowPage uint8, highPage uint8, mem []uint8) {
	for p := int(lowPage); p <= int(highPage); p++ {
		o := (p - int(lowPage)) * pageSize
		if o+pageSize > len(mem) {
			return
		}
		c.fetch[p] = mem[o : o+pageSize]
	}
}

// SetReadByte implements the z80.Engine interface.
func (c *Core) SetReadByte(read func(address uint16) uint8) {
	c.read = read
}

// SetWriteByte implements the z80.Engine interface.
func (c *Core) SetWriteByte(write func(address uint16, data uint8)) {
	c.write = write
}

// Fetch returns the byte at the address as an instruction fetch would see
// it. Mapped fetch pages are used before the read function.
func (c *Core) Fetch(address uint16) uint8 {
	if p := c.fetch[address>>8]; p != nil {
		return p[address&0xff]
	}
	if c.read != nil {
		return c.read(address)
	}
	return 0xff
}

// Exec implements the z80.Engine interface. No instructions are executed. A
// halted or faulted core does not account for any cycles.
func (c *Core) Exec(cycles int) (int, error) {
	if c.closed {
		return 0, fmt.Errorf("regcore: closed")
	}
	if cycles <= 0 || c.state&(z80.EngineHalted|z80.EngineFaulted) != 0 {
		return 0, nil
	}
	c.Cycles += cycles
	return cycles, nil
}

// Close implements the z80.Engine interface.
func (c *Core) Close() error {
	if c.closed {
		return fmt.Errorf("regcore: already closed")
	}
	c.closed = true
	c.read = nil
	c.write = nil
	clear(c.fetch[:])
	return nil
}
