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
	"encoding/binary"
	"fmt"
)

// Mode of a Store.
type Mode int

// List of valid Mode values. A store is opened for either loading or saving
// and never both.
const (
	ModeClosed Mode = iota
	ModeLoad
	ModeSave
)

func (m Mode) String() string {
	switch m {
	case ModeClosed:
		return "closed"
	case ModeLoad:
		return "load"
	case ModeSave:
		return "save"
	}
	return "unknown mode"
}

// ByteOrder is the order of multi-byte fields in a buffer passed to a Store.
// The canonical order of every block is big-endian.
type ByteOrder int

// List of valid ByteOrder values.
const (
	BigEndian ByteOrder = iota
	LittleEndian
	HostEndian
)

func (o ByteOrder) String() string {
	switch o {
	case BigEndian:
		return "big-endian"
	case LittleEndian:
		return "little-endian"
	case HostEndian:
		return "host-endian"
	}
	return "unknown byte order"
}

// binary returns the encoding/binary equivalent of the byte order.
func (o ByteOrder) binary() binary.ByteOrder {
	switch o {
	case LittleEndian:
		return binary.LittleEndian
	case HostEndian:
		return binary.NativeEndian
	}
	return binary.BigEndian
}

// little resolves HostEndian.
func (o ByteOrder) little() bool {
	switch o {
	case LittleEndian:
		return true
	case HostEndian:
		return binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 0x0001
	}
	return false
}

// BlockKind identifies one independently transferable unit of machine state.
type BlockKind int

// List of valid BlockKind values.
const (
	BlockPreview BlockKind = iota
	BlockVdpReg
	BlockVdpCtrl8
	BlockVdpCtrl16
	BlockVRam
	BlockCRam
	BlockVSRam
	BlockVdpSAT
	BlockPsgReg
	BlockYM2612Reg
	BlockZ80Mem
	BlockZ80Reg
	BlockM68KMem
	BlockM68KReg
	BlockIO
	BlockZ80Ctrl
	BlockTimeReg
	BlockTMSSReg
	BlockSRam

	NumBlocks
)

// System is the machine that a block belongs to. Blocks common to every
// system are SysCommon.
type System string

// List of valid System values.
const (
	SysCommon System = "common"
	SysMD     System = "MD"
	SysSMS    System = "SMS"
)

type block struct {
	name   string
	entry  string
	system System
	layout layout
}

// the layout of a variable sized block is nil.
var blocks = [NumBlocks]block{
	BlockPreview:   {name: "Preview", entry: "preview.png", system: SysCommon},
	BlockVdpReg:    {name: "VdpReg", entry: "common/VdpReg.bin", system: SysCommon, layout: layout{{1, 24}}},
	BlockVdpCtrl8:  {name: "VdpCtrl8", entry: "SMS/VdpCtrl_8.bin", system: SysSMS, layout: layout{{1, 8}}},
	BlockVdpCtrl16: {name: "VdpCtrl16", entry: "MD/VdpCtrl_16.bin", system: SysMD, layout: layout{{2, 8}}},
	BlockVRam:      {name: "VRam", entry: "common/VRam.bin", system: SysCommon, layout: layout{{2, 32768}}},
	BlockCRam:      {name: "CRam", entry: "common/CRam.bin", system: SysCommon, layout: layout{{2, 64}}},
	BlockVSRam:     {name: "VSRam", entry: "MD/VSRam.bin", system: SysMD, layout: layout{{2, 40}}},
	BlockVdpSAT:    {name: "VdpSAT", entry: "MD/VdpSAT.bin", system: SysMD, layout: layout{{2, 320}}},
	BlockPsgReg:    {name: "PsgReg", entry: "common/psg.bin", system: SysCommon, layout: layout{{2, 8}, {1, 8}}},
	BlockYM2612Reg: {name: "YM2612Reg", entry: "MD/YM2612_reg.bin", system: SysMD, layout: layout{{1, 512}, {2, 8}}},
	BlockZ80Mem:    {name: "Z80Mem", entry: "common/Z80_mem.bin", system: SysCommon, layout: layout{{1, 8192}}},
	BlockZ80Reg:    {name: "Z80Reg", entry: "common/Z80_reg.bin", system: SysCommon, layout: layout{{2, 12}, {1, 4}, {2, 1}, {1, 2}}},
	BlockM68KMem:   {name: "M68KMem", entry: "MD/M68K_mem.bin", system: SysMD, layout: layout{{2, 32768}}},
	BlockM68KReg:   {name: "M68KReg", entry: "MD/M68K_reg.bin", system: SysMD, layout: layout{{4, 18}, {2, 2}, {4, 1}}},
	BlockIO:        {name: "IO", entry: "MD/IO.bin", system: SysMD, layout: layout{{1, 24}}},
	BlockZ80Ctrl:   {name: "Z80Ctrl", entry: "MD/Z80_ctrl.bin", system: SysMD, layout: layout{{1, 2}, {2, 1}, {4, 1}}},
	BlockTimeReg:   {name: "TimeReg", entry: "MD/TIME_reg.bin", system: SysMD, layout: layout{{1, 256}}},
	BlockTMSSReg:   {name: "TMSSReg", entry: "MD/TMSS_reg.bin", system: SysMD, layout: layout{{4, 1}, {1, 4}}},
	BlockSRam:      {name: "SRam", entry: "common/SRam.bin", system: SysCommon},
}

func (k BlockKind) valid() bool {
	return k >= 0 && k < NumBlocks
}

func (k BlockKind) String() string {
	if !k.valid() {
		return fmt.Sprintf("block %d", int(k))
	}
	return blocks[k].name
}

// Size returns the size in bytes of the block. Variable sized blocks return
// zero.
func (k BlockKind) Size() int {
	if !k.valid() {
		return 0
	}
	return blocks[k].layout.size()
}

// Variable returns true if the block has no fixed size.
func (k BlockKind) Variable() bool {
	return k.valid() && blocks[k].layout == nil
}

// Entry returns the name of the block inside a ZOMG container.
func (k BlockKind) Entry() string {
	if !k.valid() {
		return ""
	}
	return blocks[k].entry
}

// System returns the machine the block belongs to.
func (k BlockKind) System() System {
	if !k.valid() {
		return ""
	}
	return blocks[k].system
}

// blockFromEntry is the reverse of Entry.
func blockFromEntry(entry string) (BlockKind, bool) {
	for k := BlockKind(0); k < NumBlocks; k++ {
		if blocks[k].entry == entry {
			return k, true
		}
	}
	return 0, false
}
