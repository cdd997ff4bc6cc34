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

package savestate

import (
	"github.com/megagopher/megagopher/curated"
	"github.com/megagopher/megagopher/hardware/cpu/z80"
)

// Z80 register block offsets.
const (
	z80RegAF      = 0x00
	z80RegAF2     = 0x10
	z80RegIFF     = 0x18
	z80RegR       = 0x19
	z80RegI       = 0x1a
	z80RegIM      = 0x1b
	z80RegWZ      = 0x1c
	z80RegStatus  = 0x1e
	z80RegIntVect = 0x1f
)

// EncodeZ80Reg returns the Z80 register block for the registers. Multi-byte
// fields are in the specified order. The WZ register is always saved as zero.
func EncodeZ80Reg(r z80.Registers, order ByteOrder) []byte {
	data := make([]byte, BlockZ80Reg.Size())
	o := order.binary()

	main := [...]uint16{r.AF, r.BC, r.DE, r.HL, r.IX, r.IY, r.PC, r.SP}
	for i, v := range main {
		o.PutUint16(data[z80RegAF+i*2:], v)
	}
	shadow := [...]uint16{r.AF2, r.BC2, r.DE2, r.HL2}
	for i, v := range shadow {
		o.PutUint16(data[z80RegAF2+i*2:], v)
	}

	data[z80RegIFF] = r.IFF
	data[z80RegR] = r.R
	data[z80RegI] = r.I
	data[z80RegIM] = r.IM
	o.PutUint16(data[z80RegWZ:], 0)
	data[z80RegStatus] = r.Status
	data[z80RegIntVect] = r.IntVect

	return data
}

// DecodeZ80Reg is the reverse of EncodeZ80Reg. The WZ register is ignored.
func DecodeZ80Reg(data []byte, order ByteOrder) (z80.Registers, error) {
	var r z80.Registers
	if len(data) != BlockZ80Reg.Size() {
		return r, curated.Errorf(BadBlockSize, BlockZ80Reg, len(data), BlockZ80Reg.Size())
	}
	o := order.binary()

	main := [...]*uint16{&r.AF, &r.BC, &r.DE, &r.HL, &r.IX, &r.IY, &r.PC, &r.SP}
	for i, v := range main {
		*v = o.Uint16(data[z80RegAF+i*2:])
	}
	shadow := [...]*uint16{&r.AF2, &r.BC2, &r.DE2, &r.HL2}
	for i, v := range shadow {
		*v = o.Uint16(data[z80RegAF2+i*2:])
	}

	r.IFF = data[z80RegIFF]
	r.R = data[z80RegR]
	r.I = data[z80RegI]
	r.IM = data[z80RegIM]
	r.Status = data[z80RegStatus]
	r.IntVect = data[z80RegIntVect]

	return r, nil
}

// M68KRegisters is the content of the 68000 register block.
type M68KRegisters struct {
	D   [8]uint32
	A   [7]uint32
	SSP uint32
	USP uint32
	PC  uint32
	SR  uint16
}

// 68000 register block offsets. the two reserved fields follow SR.
const (
	m68kRegD   = 0x00
	m68kRegA   = 0x20
	m68kRegSSP = 0x3c
	m68kRegUSP = 0x40
	m68kRegPC  = 0x44
	m68kRegSR  = 0x48
)

// EncodeM68KReg returns the 68000 register block for the registers. The
// reserved fields are zero.
func EncodeM68KReg(r M68KRegisters, order ByteOrder) []byte {
	data := make([]byte, BlockM68KReg.Size())
	o := order.binary()

	for i, v := range r.D {
		o.PutUint32(data[m68kRegD+i*4:], v)
	}
	for i, v := range r.A {
		o.PutUint32(data[m68kRegA+i*4:], v)
	}
	o.PutUint32(data[m68kRegSSP:], r.SSP)
	o.PutUint32(data[m68kRegUSP:], r.USP)
	o.PutUint32(data[m68kRegPC:], r.PC)
	o.PutUint16(data[m68kRegSR:], r.SR)

	return data
}

// DecodeM68KReg is the reverse of EncodeM68KReg.
func DecodeM68KReg(data []byte, order ByteOrder) (M68KRegisters, error) {
	var r M68KRegisters
	if len(data) != BlockM68KReg.Size() {
		return r, curated.Errorf(BadBlockSize, BlockM68KReg, len(data), BlockM68KReg.Size())
	}
	o := order.binary()

	for i := range r.D {
		r.D[i] = o.Uint32(data[m68kRegD+i*4:])
	}
	for i := range r.A {
		r.A[i] = o.Uint32(data[m68kRegA+i*4:])
	}
	r.SSP = o.Uint32(data[m68kRegSSP:])
	r.USP = o.Uint32(data[m68kRegUSP:])
	r.PC = o.Uint32(data[m68kRegPC:])
	r.SR = o.Uint16(data[m68kRegSR:])

	return r, nil
}

// Z80Ctrl is the content of the Z80 control block.
type Z80Ctrl struct {
	BusReq bool
	Reset  bool

	// the nine bit bank number
	Bank uint16
}

// EncodeZ80Ctrl returns the Z80 control block.
func EncodeZ80Ctrl(c Z80Ctrl, order ByteOrder) []byte {
	data := make([]byte, BlockZ80Ctrl.Size())
	if c.BusReq {
		data[0] = 1
	}
	if c.Reset {
		data[1] = 1
	}
	order.binary().PutUint16(data[2:], c.Bank&0x1ff)
	return data
}

// DecodeZ80Ctrl is the reverse of EncodeZ80Ctrl.
func DecodeZ80Ctrl(data []byte, order ByteOrder) (Z80Ctrl, error) {
	if len(data) != BlockZ80Ctrl.Size() {
		return Z80Ctrl{}, curated.Errorf(BadBlockSize, BlockZ80Ctrl, len(data), BlockZ80Ctrl.Size())
	}
	return Z80Ctrl{
		BusReq: data[0] != 0,
		Reset:  data[1] != 0,
		Bank:   order.binary().Uint16(data[2:]) & 0x1ff,
	}, nil
}

// IOPort is the state of one port in the I/O block.
type IOPort struct {
	Ctrl    uint8
	Data    uint8
	SerTx   uint8
	SerRx   uint8
	SerCtrl uint8
}

// each port occupies eight bytes of the I/O block. the last three are
// reserved.
const ioPortSize = 8

// EncodeIO returns the I/O block for the three ports. The block has no
// multi-byte fields.
func EncodeIO(ports [3]IOPort) []byte {
	data := make([]byte, BlockIO.Size())
	for i, p := range ports {
		b := data[i*ioPortSize:]
		b[0] = p.Ctrl
		b[1] = p.Data
		b[2] = p.SerTx
		b[3] = p.SerRx
		b[4] = p.SerCtrl
	}
	return data
}

// DecodeIO is the reverse of EncodeIO.
func DecodeIO(data []byte) ([3]IOPort, error) {
	var ports [3]IOPort
	if len(data) != BlockIO.Size() {
		return ports, curated.Errorf(BadBlockSize, BlockIO, len(data), BlockIO.Size())
	}
	for i := range ports {
		b := data[i*ioPortSize:]
		ports[i] = IOPort{
			Ctrl:    b[0],
			Data:    b[1],
			SerTx:   b[2],
			SerRx:   b[3],
			SerCtrl: b[4],
		}
	}
	return ports, nil
}
