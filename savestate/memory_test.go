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
	"fmt"
	"testing"

	"github.com/megagopher/megagopher/curated"
	"github.com/megagopher/megagopher/savestate"
	"github.com/megagopher/megagopher/test"
)

func TestBlockSizes(t *testing.T) {
	for _, tc := range []struct {
		kind savestate.BlockKind
		size int
	}{
		{savestate.BlockVdpReg, 24},
		{savestate.BlockVdpCtrl8, 8},
		{savestate.BlockVdpCtrl16, 16},
		{savestate.BlockVRam, 65536},
		{savestate.BlockCRam, 128},
		{savestate.BlockVSRam, 80},
		{savestate.BlockVdpSAT, 640},
		{savestate.BlockPsgReg, 24},
		{savestate.BlockYM2612Reg, 528},
		{savestate.BlockZ80Mem, 8192},
		{savestate.BlockZ80Reg, 32},
		{savestate.BlockM68KMem, 65536},
		{savestate.BlockM68KReg, 80},
		{savestate.BlockIO, 24},
		{savestate.BlockZ80Ctrl, 8},
		{savestate.BlockTimeReg, 256},
		{savestate.BlockTMSSReg, 8},
	} {
		test.ExpectEquality(t, tc.kind.Size(), tc.size, tc.kind)
		test.ExpectFailure(t, tc.kind.Variable())
	}

	test.ExpectSuccess(t, savestate.BlockPreview.Variable())
	test.ExpectSuccess(t, savestate.BlockSRam.Variable())
	test.ExpectEquality(t, savestate.BlockSRam.Size(), 0)
}

func TestMemoryStore(t *testing.T) {
	s := savestate.NewMemoryStore()
	test.ExpectEquality(t, s.Mode(), savestate.ModeSave)

	mem := make([]byte, savestate.BlockZ80Mem.Size())
	for i := range mem {
		mem[i] = byte(i)
	}
	n, err := s.Save(savestate.BlockZ80Mem, savestate.BigEndian, mem)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, len(mem))

	// the store keeps a copy of the buffer
	mem[0] = 0xff

	_, err = s.Load(savestate.BlockZ80Mem, savestate.BigEndian, mem)
	test.ExpectSuccess(t, curated.Is(err, savestate.WrongMode))

	test.ExpectSuccess(t, s.Close())
	test.ExpectEquality(t, s.Mode(), savestate.ModeClosed)

	s.Reopen(savestate.ModeLoad)
	test.ExpectEquality(t, fmt.Sprint(s.Blocks()), "[Z80Mem]")

	n, err = s.Load(savestate.BlockZ80Mem, savestate.BigEndian, mem)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, len(mem))
	test.ExpectEquality(t, mem[0], uint8(0x00))
	test.ExpectEquality(t, mem[0x1234], uint8(0x34))

	_, err = s.Save(savestate.BlockZ80Mem, savestate.BigEndian, mem)
	test.ExpectSuccess(t, curated.Is(err, savestate.WrongMode))

	_, err = s.Load(savestate.BlockVRam, savestate.BigEndian, make([]byte, savestate.BlockVRam.Size()))
	test.ExpectSuccess(t, curated.Is(err, savestate.MissingBlock))

	// reopening for saving empties the store
	s.Reopen(savestate.ModeSave)
	test.ExpectEquality(t, len(s.Blocks()), 0)
}

func TestByteOrder(t *testing.T) {
	s := savestate.NewMemoryStore()

	// two bytes, one 16 bit value and one 32 bit value
	le := []byte{0x01, 0x00, 0x34, 0x12, 0x78, 0x56, 0x34, 0x12}
	_, err := s.Save(savestate.BlockZ80Ctrl, savestate.LittleEndian, le)
	test.DemandSuccess(t, err)

	s.Reopen(savestate.ModeLoad)

	be := make([]byte, 8)
	_, err = s.Load(savestate.BlockZ80Ctrl, savestate.BigEndian, be)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(be, []byte{0x01, 0x00, 0x12, 0x34, 0x12, 0x34, 0x56, 0x78}))

	// the caller's buffer is not changed by saving
	test.ExpectSuccess(t, bytes.Equal(le, []byte{0x01, 0x00, 0x34, 0x12, 0x78, 0x56, 0x34, 0x12}))

	back := make([]byte, 8)
	_, err = s.Load(savestate.BlockZ80Ctrl, savestate.LittleEndian, back)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(back, le))
}

func TestHostEndian(t *testing.T) {
	s := savestate.NewMemoryStore()

	cram := make([]byte, savestate.BlockCRam.Size())
	for i := range cram {
		cram[i] = byte(i * 3)
	}
	_, err := s.Save(savestate.BlockCRam, savestate.HostEndian, cram)
	test.DemandSuccess(t, err)

	s.Reopen(savestate.ModeLoad)

	host := make([]byte, len(cram))
	_, err = s.Load(savestate.BlockCRam, savestate.HostEndian, host)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(host, cram))
}

func TestBadBlockSize(t *testing.T) {
	s := savestate.NewMemoryStore()

	_, err := s.Save(savestate.BlockZ80Mem, savestate.BigEndian, make([]byte, 100))
	test.ExpectSuccess(t, curated.Is(err, savestate.BadBlockSize))
	test.ExpectEquality(t, len(s.Blocks()), 0)

	_, err = s.Save(savestate.BlockKind(-1), savestate.BigEndian, nil)
	test.ExpectSuccess(t, curated.Is(err, savestate.UnknownBlock))

	_, err = s.Save(savestate.BlockZ80Reg, savestate.BigEndian, make([]byte, savestate.BlockZ80Reg.Size()))
	test.DemandSuccess(t, err)

	s.Reopen(savestate.ModeLoad)

	// a failed load leaves the buffer untouched
	buf := bytes.Repeat([]byte{0xaa}, savestate.BlockZ80Reg.Size()-1)
	n, err := s.Load(savestate.BlockZ80Reg, savestate.BigEndian, buf)
	test.ExpectSuccess(t, curated.Is(err, savestate.BadBlockSize))
	test.ExpectEquality(t, n, 0)
	test.ExpectSuccess(t, bytes.Equal(buf, bytes.Repeat([]byte{0xaa}, len(buf))))
}

func TestVariableBlock(t *testing.T) {
	s := savestate.NewMemoryStore()

	sram := bytes.Repeat([]byte{0x5a}, 0x100)
	n, err := s.Save(savestate.BlockSRam, savestate.BigEndian, sram)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 0x100)

	s.Reopen(savestate.ModeLoad)

	// the remainder of a larger buffer is untouched
	large := make([]byte, 0x200)
	n, err = s.Load(savestate.BlockSRam, savestate.BigEndian, large)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 0x100)
	test.ExpectEquality(t, large[0xff], uint8(0x5a))
	test.ExpectEquality(t, large[0x100], uint8(0x00))

	_, err = s.Load(savestate.BlockSRam, savestate.BigEndian, make([]byte, 0x80))
	test.ExpectSuccess(t, curated.Is(err, savestate.BadBlockSize))
}

// store that supports nothing.
type emptyStore struct {
	savestate.Unsupported
}

func (emptyStore) Mode() savestate.Mode { return savestate.ModeSave }
func (emptyStore) Close() error { return nil }

func TestUnsupported(t *testing.T) {
	var s savestate.Store = emptyStore{}

	buf := bytes.Repeat([]byte{0xaa}, savestate.BlockVdpReg.Size())
	n, err := s.Load(savestate.BlockVdpReg, savestate.BigEndian, buf)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 0)
	test.ExpectSuccess(t, bytes.Equal(buf, bytes.Repeat([]byte{0xaa}, len(buf))))

	n, err = s.Save(savestate.BlockVdpReg, savestate.BigEndian, buf)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 0)
}
