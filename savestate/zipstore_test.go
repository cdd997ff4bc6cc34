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
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/megagopher/megagopher/curated"
	"github.com/megagopher/megagopher/logger"
	"github.com/megagopher/megagopher/savestate"
	"github.com/megagopher/megagopher/test"
	"github.com/megagopher/megagopher/version"
)

func TestZipStore(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "state.zomg")

	s, err := savestate.OpenZip(pth, savestate.ModeSave)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Mode(), savestate.ModeSave)

	mem := make([]byte, savestate.BlockZ80Mem.Size())
	for i := range mem {
		mem[i] = byte(i >> 4)
	}
	_, err = s.Save(savestate.BlockZ80Mem, savestate.BigEndian, mem)
	test.ExpectSuccess(t, err)

	m68k := savestate.M68KRegisters{PC: 0x000200, SR: 0x2700}
	m68k.A[6] = 0x00ff8000
	_, err = s.Save(savestate.BlockM68KReg, savestate.LittleEndian, savestate.EncodeM68KReg(m68k, savestate.LittleEndian))
	test.ExpectSuccess(t, err)

	sram := bytes.Repeat([]byte{0x12, 0x34}, 0x1000)
	_, err = s.Save(savestate.BlockSRam, savestate.BigEndian, sram)
	test.ExpectSuccess(t, err)

	// the file is not written until the store is closed
	_, err = os.Stat(pth)
	test.ExpectFailure(t, err)

	test.ExpectEquality(t, fmt.Sprint(s.Blocks()), "[Z80Mem M68KReg SRam]")
	test.DemandSuccess(t, s.Close())

	s, err = savestate.OpenZip(pth, savestate.ModeLoad)
	test.DemandSuccess(t, err)
	defer s.Close()

	test.ExpectEquality(t, s.System, savestate.SysMD)
	test.ExpectEquality(t, s.Format["Creator"], version.Creator())
	test.ExpectEquality(t, s.Format["Version"], savestate.FormatVersion)
	test.ExpectEquality(t, fmt.Sprint(s.Blocks()), "[Z80Mem M68KReg SRam]")

	buf := make([]byte, savestate.BlockZ80Mem.Size())
	n, err := s.Load(savestate.BlockZ80Mem, savestate.BigEndian, buf)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, len(buf))
	test.ExpectSuccess(t, bytes.Equal(buf, mem))

	buf = make([]byte, savestate.BlockM68KReg.Size())
	_, err = s.Load(savestate.BlockM68KReg, savestate.BigEndian, buf)
	test.ExpectSuccess(t, err)
	r, err := savestate.DecodeM68KReg(buf, savestate.BigEndian)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, m68k)

	buf = make([]byte, len(sram))
	_, err = s.Load(savestate.BlockSRam, savestate.BigEndian, buf)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(buf, sram))

	_, err = s.Load(savestate.BlockZ80Reg, savestate.BigEndian, make([]byte, savestate.BlockZ80Reg.Size()))
	test.ExpectSuccess(t, curated.Is(err, savestate.MissingBlock))

	_, err = s.Save(savestate.BlockZ80Mem, savestate.BigEndian, mem)
	test.ExpectSuccess(t, curated.Is(err, savestate.WrongMode))
}

func TestZipStoreEntries(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "state.zomg")

	s, err := savestate.OpenZip(pth, savestate.ModeSave)
	test.DemandSuccess(t, err)
	_, err = s.Save(savestate.BlockZ80Mem, savestate.BigEndian, make([]byte, savestate.BlockZ80Mem.Size()))
	test.ExpectSuccess(t, err)
	_, err = s.Save(savestate.BlockIO, savestate.BigEndian, make([]byte, savestate.BlockIO.Size()))
	test.ExpectSuccess(t, err)
	test.DemandSuccess(t, s.Close())

	r, err := zip.OpenReader(pth)
	test.DemandSuccess(t, err)
	defer r.Close()

	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	test.ExpectEquality(t, fmt.Sprint(names), "[FORMAT.ini common/Z80_mem.bin MD/IO.bin]")
}

func TestZipStoreUnsupported(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "state.zomg")

	s, err := savestate.OpenZip(pth, savestate.ModeSave)
	test.DemandSuccess(t, err)

	// the 8 bit VDP control block does not exist on the Mega Drive
	ctrl := bytes.Repeat([]byte{0xaa}, savestate.BlockVdpCtrl8.Size())
	n, err := s.Save(savestate.BlockVdpCtrl8, savestate.BigEndian, ctrl)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 0)
	test.ExpectEquality(t, len(s.Blocks()), 0)
	test.DemandSuccess(t, s.Close())

	s, err = savestate.OpenZip(pth, savestate.ModeLoad)
	test.DemandSuccess(t, err)
	defer s.Close()

	n, err = s.Load(savestate.BlockVdpCtrl8, savestate.BigEndian, ctrl)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 0)
	test.ExpectSuccess(t, bytes.Equal(ctrl, bytes.Repeat([]byte{0xaa}, len(ctrl))))
}

func TestZipStoreBadFormat(t *testing.T) {
	dir := t.TempDir()

	_, err := savestate.OpenZip(filepath.Join(dir, "missing.zomg"), savestate.ModeLoad)
	test.ExpectSuccess(t, curated.Is(err, savestate.BadFormat))

	// not a zip file
	pth := filepath.Join(dir, "text.zomg")
	test.DemandSuccess(t, os.WriteFile(pth, []byte("not a zip file"), 0o644))
	_, err = savestate.OpenZip(pth, savestate.ModeLoad)
	test.ExpectSuccess(t, curated.Is(err, savestate.BadFormat))

	// a zip file without FORMAT.ini
	var b bytes.Buffer
	w := zip.NewWriter(&b)
	f, err := w.Create(savestate.BlockZ80Mem.Entry())
	test.DemandSuccess(t, err)
	_, err = f.Write(make([]byte, savestate.BlockZ80Mem.Size()))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, w.Close())

	pth = filepath.Join(dir, "noformat.zomg")
	test.DemandSuccess(t, os.WriteFile(pth, b.Bytes(), 0o644))
	_, err = savestate.OpenZip(pth, savestate.ModeLoad)
	test.ExpectSuccess(t, curated.Is(err, savestate.BadFormat))

	_, err = savestate.OpenZip(pth, savestate.ModeClosed)
	test.ExpectFailure(t, err)
}

func TestZipStoreReplace(t *testing.T) {
	dir := t.TempDir()
	pth := filepath.Join(dir, "state.zomg")
	test.DemandSuccess(t, os.WriteFile(pth, []byte("previous contents"), 0o644))

	s, err := savestate.OpenZip(pth, savestate.ModeSave)
	test.DemandSuccess(t, err)
	_, err = s.Save(savestate.BlockZ80Mem, savestate.BigEndian, make([]byte, savestate.BlockZ80Mem.Size()))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, s.Close())

	// the container replaces the file and no temporary file remains
	entries, err := os.ReadDir(dir)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(entries), 1)
	test.ExpectEquality(t, entries[0].Name(), "state.zomg")

	s, err = savestate.OpenZip(pth, savestate.ModeLoad)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprint(s.Blocks()), "[Z80Mem]")
	test.DemandSuccess(t, s.Close())
}

func TestZipStoreFailedWrite(t *testing.T) {
	dir := t.TempDir()
	pth := filepath.Join(dir, "missing", "state.zomg")

	s, err := savestate.OpenZip(pth, savestate.ModeSave)
	test.DemandSuccess(t, err)
	_, err = s.Save(savestate.BlockZ80Mem, savestate.BigEndian, make([]byte, savestate.BlockZ80Mem.Size()))
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, s.Close())

	// nothing has been left behind
	_, err = os.Stat(pth)
	test.ExpectFailure(t, err)
	entries, err := os.ReadDir(dir)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(entries), 0)
}

func TestZipStoreLogPermission(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "state.zomg")
	log := &test.CompareWriter{}

	s, err := savestate.OpenZip(pth, savestate.ModeSave)
	test.DemandSuccess(t, err)
	s.SetLogPermission(logger.Deny)

	logger.Clear()
	_, err = s.Save(savestate.BlockVdpCtrl8, savestate.BigEndian, make([]byte, savestate.BlockVdpCtrl8.Size()))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, s.Close())
	logger.Write(log)
	test.ExpectEquality(t, log.String(), "")

	s, err = savestate.OpenZip(pth, savestate.ModeLoad)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, s.Close())
	logger.Write(log)
	test.ExpectEquality(t, log.String(), fmt.Sprintf("savestate: %s read\n", pth))
	logger.Clear()
}
