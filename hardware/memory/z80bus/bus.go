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

package z80bus

import (
	"fmt"
)

// SoundChip is the YM2612 as seen from the Z80. The port is the low two bits
// of the address.
type SoundChip interface {
	Read(port uint8) uint8
	Write(port uint8, data uint8)
}

// VideoChip is the VDP as seen from the Z80. The offset is the low five bits
// of the address.
type VideoChip interface {
	Read(offset uint8) uint8
	Write(offset uint8, data uint8)
}

// M68KBus is the 68K address space. Addresses are 24 bits.
type M68KBus interface {
	Read(address uint32) uint8
	Write(address uint32, data uint8)
}

// BankAnchor is the value of the bank register after a reset.
const BankAnchor = uint32(0xff8000)

// the bank register only holds the top nine bits of a 24 bit address.
const bankMask = uint32(0xff8000)

// open bus value for unconnected areas.
const openBus = 0xff

// Bus decodes Z80 memory accesses. Collaborators that are nil read as open
// bus and ignore writes.
type Bus struct {
	ram  [RAMSize]uint8
	bank uint32

	ym   SoundChip
	vdp  VideoChip
	m68k M68KBus
}

// NewBus is the preferred method of initialisation for the Bus type. Any of
// the arguments can be nil.
func NewBus(ym SoundChip, vdp VideoChip, m68k M68KBus) *Bus {
	return &Bus{
		bank: BankAnchor,
		ym:   ym,
		vdp:  vdp,
		m68k: m68k,
	}
}

func (b *Bus) String() string {
	return fmt.Sprintf("bank=%06x", b.bank)
}

// Plumb new collaborators into the bus. Any of the arguments can be nil.
func (b *Bus) Plumb(ym SoundChip, vdp VideoChip, m68k M68KBus) {
	b.ym = ym
	b.vdp = vdp
	b.m68k = m68k
}

// RAM returns the Z80 RAM. The slice is the backing store of the bus and can
// be used by the Z80 engine for instruction fetches.
func (b *Bus) RAM() []uint8 {
	return b.ram[:]
}

// Bank returns the value of the bank register. The value is the base address
// of the 68K window.
func (b *Bus) Bank() uint32 {
	return b.bank
}

// SetBank sets the bank register directly. Used when restoring state.
func (b *Bus) SetBank(bank uint32) {
	b.bank = bank & bankMask
}

// ResetBank sets the bank register to BankAnchor.
func (b *Bus) ResetBank() {
	b.bank = BankAnchor
}

// WriteBank shifts bit zero of data into the top of the bank register. Nine
// writes are required to set the register fully. The first bit written ends
// up as address bit 15 and the last bit written as address bit 23.
func (b *Bus) WriteBank(data uint8) {
	b.bank = ((b.bank >> 1) | (uint32(data&0x01) << 23)) & bankMask
}

// Read the byte at the Z80 address.
func (b *Bus) Read(address uint16) uint8 {
	ma, area := MapAddress(address)

	switch area {
	case RAM:
		return b.ram[ma]
	case YM2612:
		if b.ym != nil {
			return b.ym.Read(uint8(ma))
		}
	case VDP:
		if b.vdp != nil {
			return b.vdp.Read(uint8(ma))
		}
	case M68K:
		if b.m68k != nil {
			return b.m68k.Read(b.bank + uint32(ma))
		}
	}

	return openBus
}

// Write the byte to the Z80 address.
func (b *Bus) Write(address uint16, data uint8) {
	ma, area := MapAddress(address)

	switch area {
	case RAM:
		b.ram[ma] = data
	case YM2612:
		if b.ym != nil {
			b.ym.Write(uint8(ma), data)
		}
	case Bank:
		b.WriteBank(data)
	case VDP:
		if b.vdp != nil {
			b.vdp.Write(uint8(ma), data)
		}
	case M68K:
		if b.m68k != nil {
			b.m68k.Write(b.bank+uint32(ma), data)
		}
	}
}
