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

package savestate_test

import (
	"bytes"
	"testing"

	"github.com/megagopher/megagopher/curated"
	"github.com/megagopher/megagopher/hardware/cpu/z80"
	"github.com/megagopher/megagopher/savestate"
	"github.com/megagopher/megagopher/test"
)

var z80Regs = z80.Registers{
	AF:      0x1234,
	BC:      0x2345,
	DE:      0x3456,
	HL:      0x4567,
	IX:      0x5678,
	IY:      0x6789,
	PC:      0x789a,
	SP:      0x89ab,
	AF2:     0x9abc,
	BC2:     0xabcd,
	DE2:     0xbcde,
	HL2:     0xcdef,
	IFF:     0x03,
	R:       0x7f,
	I:       0x3f,
	IM:      2,
	Status:  z80.StatusHalted | z80.StatusNMIPending,
	IntVect: 0xff,
}

func TestZ80Reg(t *testing.T) {
	data := savestate.EncodeZ80Reg(z80Regs, savestate.BigEndian)
	test.ExpectEquality(t, len(data), savestate.BlockZ80Reg.Size())
	test.ExpectEquality(t, data[0], uint8(0x12))
	test.ExpectEquality(t, data[1], uint8(0x34))
	test.ExpectEquality(t, data[0x16], uint8(0xcd))
	test.ExpectEquality(t, data[0x1b], uint8(2))
	test.ExpectEquality(t, data[0x1e], uint8(0x09))
	test.ExpectEquality(t, data[0x1f], uint8(0xff))

	r, err := savestate.DecodeZ80Reg(data, savestate.BigEndian)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, z80Regs)

	le := savestate.EncodeZ80Reg(z80Regs, savestate.LittleEndian)
	test.ExpectEquality(t, le[0], uint8(0x34))
	test.ExpectEquality(t, le[1], uint8(0x12))

	_, err = savestate.DecodeZ80Reg(data[:31], savestate.BigEndian)
	test.ExpectSuccess(t, curated.Is(err, savestate.BadBlockSize))
}

func TestZ80RegWZ(t *testing.T) {
	regs := z80Regs
	regs.WZ = 0xbeef

	// WZ is not saved
	data := savestate.EncodeZ80Reg(regs, savestate.BigEndian)
	test.ExpectEquality(t, data[0x1c], uint8(0))
	test.ExpectEquality(t, data[0x1d], uint8(0))

	// and is ignored when loaded
	data[0x1c] = 0xbe
	data[0x1d] = 0xef
	r, err := savestate.DecodeZ80Reg(data, savestate.BigEndian)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.WZ, uint16(0))
}

func TestM68KReg(t *testing.T) {
	regs := savestate.M68KRegisters{
		SSP: 0x00fffe00,
		USP: 0x00ff0000,
		PC:  0x00000200,
		SR:  0x2700,
	}
	for i := range regs.D {
		regs.D[i] = 0x01020304 * uint32(i+1)
	}
	for i := range regs.A {
		regs.A[i] = 0x00ff0000 | uint32(i)
	}

	data := savestate.EncodeM68KReg(regs, savestate.BigEndian)
	test.ExpectEquality(t, len(data), savestate.BlockM68KReg.Size())
	test.ExpectSuccess(t, bytes.Equal(data[0:4], []byte{0x01, 0x02, 0x03, 0x04}))
	test.ExpectSuccess(t, bytes.Equal(data[0x44:0x48], []byte{0x00, 0x00, 0x02, 0x00}))
	test.ExpectSuccess(t, bytes.Equal(data[0x48:0x4a], []byte{0x27, 0x00}))

	// reserved fields
	test.ExpectSuccess(t, bytes.Equal(data[0x4a:], make([]byte, 6)))

	r, err := savestate.DecodeM68KReg(data, savestate.BigEndian)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, regs)

	_, err = savestate.DecodeM68KReg(data[:10], savestate.BigEndian)
	test.ExpectSuccess(t, curated.Is(err, savestate.BadBlockSize))
}

// a block encoded in one byte order and saved in that order is loaded in
// another byte order as if it were encoded in that order.
func TestCodecLayout(t *testing.T) {
	s := savestate.NewMemoryStore()

	m68k := savestate.M68KRegisters{PC: 0x00123456, SR: 0x2004}
	m68k.D[7] = 0xdeadbeef

	ctrl := savestate.Z80Ctrl{BusReq: true, Bank: 0x1a5}

	for _, tc := range []struct {
		kind savestate.BlockKind
		le   []byte
		be   []byte
	}{
		{
			kind: savestate.BlockZ80Reg,
			le:   savestate.EncodeZ80Reg(z80Regs, savestate.LittleEndian),
			be:   savestate.EncodeZ80Reg(z80Regs, savestate.BigEndian),
		},
		{
			kind: savestate.BlockM68KReg,
			le:   savestate.EncodeM68KReg(m68k, savestate.LittleEndian),
			be:   savestate.EncodeM68KReg(m68k, savestate.BigEndian),
		},
		{
			kind: savestate.BlockZ80Ctrl,
			le:   savestate.EncodeZ80Ctrl(ctrl, savestate.LittleEndian),
			be:   savestate.EncodeZ80Ctrl(ctrl, savestate.BigEndian),
		},
	} {
		s.Reopen(savestate.ModeSave)
		_, err := s.Save(tc.kind, savestate.LittleEndian, tc.le)
		test.ExpectSuccess(t, err, tc.kind)

		s.Reopen(savestate.ModeLoad)
		buf := make([]byte, tc.kind.Size())
		_, err = s.Load(tc.kind, savestate.BigEndian, buf)
		test.ExpectSuccess(t, err, tc.kind)
		test.ExpectSuccess(t, bytes.Equal(buf, tc.be), tc.kind)
	}
}

func TestZ80Ctrl(t *testing.T) {
	data := savestate.EncodeZ80Ctrl(savestate.Z80Ctrl{Reset: true, Bank: 0xffff}, savestate.BigEndian)
	test.ExpectSuccess(t, bytes.Equal(data, []byte{0x00, 0x01, 0x01, 0xff, 0x00, 0x00, 0x00, 0x00}))

	c, err := savestate.DecodeZ80Ctrl(data, savestate.BigEndian)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c, savestate.Z80Ctrl{Reset: true, Bank: 0x1ff})
}

func TestIO(t *testing.T) {
	ports := [3]savestate.IOPort{
		{Ctrl: 0x40, Data: 0x7f, SerTx: 0xff, SerRx: 0x00, SerCtrl: 0x00},
		{Ctrl: 0x00, Data: 0xff, SerTx: 0xff, SerRx: 0x00, SerCtrl: 0x38},
		{},
	}
	data := savestate.EncodeIO(ports)
	test.ExpectEquality(t, len(data), savestate.BlockIO.Size())
	test.ExpectEquality(t, data[0], uint8(0x40))
	test.ExpectEquality(t, data[12], uint8(0x38))

	p, err := savestate.DecodeIO(data)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ports)
}
