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

package m68kbus

import (
	"fmt"

	"github.com/megagopher/megagopher/hardware/cpu/z80"
)

// IOChip is the console's I/O chip and the devices plugged into it.
type IOChip interface {
	Read(address uint32) uint8
	Write(address uint32, data uint8)

	// device registers outside the I/O chip, the Pico registers for example
	ReadPort(address uint32) (uint8, error)
}

// Z80Bus is the Z80 address space as seen from the 68K.
type Z80Bus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// SRam is battery backed RAM overlaid onto the cartridge area.
type SRam struct {
	Data     []uint8
	Start    uint32
	On       bool
	Writable bool
}

func (s SRam) contains(address uint32) bool {
	return s.On && address >= s.Start && address-s.Start < uint32(len(s.Data))
}

// open bus value for unconnected areas.
const openBus = 0xff

// Bus decodes 68K memory accesses. Collaborators that are nil read as open
// bus and ignore writes.
type Bus struct {
	cart []uint8
	ram  [RAMSize]uint8
	sram SRam

	io   IOChip
	z80  Z80Bus
	ctrl *z80.Control
}

// NewBus is the preferred method of initialisation for the Bus type. Any of
// the arguments can be nil.
func NewBus(io IOChip, zbus Z80Bus, ctrl *z80.Control) *Bus {
	return &Bus{
		io:   io,
		z80:  zbus,
		ctrl: ctrl,
	}
}

func (b *Bus) String() string {
	return fmt.Sprintf("cartridge=%d bytes sram=%d bytes", len(b.cart), len(b.sram.Data))
}

// Plumb new collaborators into the bus. Any of the arguments can be nil.
func (b *Bus) Plumb(io IOChip, zbus Z80Bus, ctrl *z80.Control) {
	b.io = io
	b.z80 = zbus
	b.ctrl = ctrl
}

// Insert cartridge data into the cartridge area. The data is not copied.
func (b *Bus) Insert(cart []uint8) {
	b.cart = cart
}

// SetSRam sets the SRAM overlay. The Data field is not copied.
func (b *Bus) SetSRam(sram SRam) {
	b.sram = sram
}

// RAM returns the 68K RAM. The slice is the backing store of the bus.
func (b *Bus) RAM() []uint8 {
	return b.ram[:]
}

// Reset clears 68K RAM.
func (b *Bus) Reset() {
	clear(b.ram[:])
}

// busGranted returns true if the 68K holds the Z80 bus.
func (b *Bus) busGranted() bool {
	return b.ctrl != nil && b.ctrl.State&(z80.StateBusReq|z80.StateReset) == z80.StateBusReq
}

// Read the byte at the 68K address.
func (b *Bus) Read(address uint32) uint8 {
	ma, area := MapAddress(address)

	switch area {
	case Cartridge:
		if b.sram.contains(ma) {
			return b.sram.Data[ma-b.sram.Start]
		}
		if ma < uint32(len(b.cart)) {
			return b.cart[ma]
		}
	case Pico:
		if b.io != nil {
			if v, err := b.io.ReadPort(ma); err == nil {
				return v
			}
		}
	case Z80:
		if b.z80 != nil && b.busGranted() {
			return b.z80.Read(uint16(ma))
		}
	case IO:
		if b.io != nil {
			return b.io.Read(ma)
		}
	case Z80Ctrl:
		// bit zero of the bus request register is clear when the bus has
		// been granted
		if ma == BusReq && b.busGranted() {
			return openBus &^ 0x01
		}
	case RAM:
		return b.ram[ma]
	}

	return openBus
}

// Write the byte to the 68K address.
func (b *Bus) Write(address uint32, data uint8) {
	ma, area := MapAddress(address)

	switch area {
	case Cartridge:
		if b.sram.contains(ma) && b.sram.Writable {
			b.sram.Data[ma-b.sram.Start] = data
		}
	case Z80:
		if b.z80 != nil && b.busGranted() {
			b.z80.Write(uint16(ma), data)
		}
	case IO:
		if b.io != nil {
			b.io.Write(ma, data)
		}
	case Z80Ctrl:
		if b.ctrl == nil {
			return
		}
		switch ma {
		case BusReq:
			if data&0x01 == 0x01 {
				b.ctrl.State |= z80.StateBusReq
			} else {
				b.ctrl.State &^= z80.StateBusReq
			}
			b.ctrl.LastBusReqSt = data & 0x01
			b.ctrl.LastBusReqCnt++
		case Z80Reset:
			// the reset line is active low
			if data&0x01 == 0x00 {
				b.ctrl.State |= z80.StateReset
			} else {
				b.ctrl.State &^= z80.StateReset
			}
		}
	case RAM:
		b.ram[ma] = data
	}
}

// ReadWord reads the big-endian word at the 68K address.
func (b *Bus) ReadWord(address uint32) uint16 {
	return uint16(b.Read(address))<<8 | uint16(b.Read(address+1))
}

// WriteWord writes the big-endian word to the 68K address.
func (b *Bus) WriteWord(address uint32, data uint16) {
	b.Write(address, uint8(data>>8))
	b.Write(address+1, uint8(data))
}
