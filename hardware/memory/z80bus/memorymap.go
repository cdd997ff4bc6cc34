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
	"strings"
)

// Area represents the different areas of the Z80 address space.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case YM2612:
		return "YM2612"
	case Bank:
		return "Bank"
	case Unused:
		return "Unused"
	case VDP:
		return "VDP"
	case M68K:
		return "68K"
	}

	return "undefined"
}

// The different memory areas seen by the Z80.
const (
	Undefined Area = iota
	RAM
	YM2612
	Bank
	Unused
	VDP
	M68K
)

// The origin and memory top for each area. Areas are listed in address order.
// Z80 RAM is 8KiB and is mirrored once in the 16KiB below OriginYM2612.
const (
	OriginRAM     = uint16(0x0000)
	MemtopRAM     = uint16(0x3fff)
	OriginYM2612  = uint16(0x4000)
	MemtopYM2612  = uint16(0x5fff)
	OriginBank    = uint16(0x6000)
	MemtopBank    = uint16(0x60ff)
	OriginUnused  = uint16(0x6100)
	MemtopUnused  = uint16(0x7eff)
	OriginVDP     = uint16(0x7f00)
	MemtopVDP     = uint16(0x7f1f)
	OriginUnused2 = uint16(0x7f20)
	MemtopUnused2 = uint16(0x7fff)
	OriginM68K    = uint16(0x8000)
	MemtopM68K    = uint16(0xffff)
)

// Masks applied to an address to normalise it within an area.
const (
	MaskRAM    = uint16(0x1fff)
	MaskYM2612 = uint16(0x0003)
	MaskVDP    = uint16(0x001f)
	MaskM68K   = uint16(0x7fff)
)

// RAMSize is the amount of RAM attached to the Z80.
const RAMSize = 8 * 1024

// MapAddress translates the address argument from mirror space to primary
// space and returns the area the address is in. An address in the 68K window
// is returned as an offset into the window. The bank register is needed to
// form the full 68K address.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= MemtopRAM:
		return address & MaskRAM, RAM
	case address <= MemtopYM2612:
		return address & MaskYM2612, YM2612
	case address <= MemtopBank:
		return address, Bank
	case address <= MemtopUnused:
		return address, Unused
	case address <= MemtopVDP:
		return address & MaskVDP, VDP
	case address <= MemtopUnused2:
		return address, Unused
	}
	return address & MaskM68K, M68K
}

// Summary returns a single multiline string detailing all the areas in memory.
// Useful for reference.
func Summary() string {
	var area, current Area
	var a, sa uint32

	s := strings.Builder{}

	// look up area of first address in memory
	_, current = MapAddress(0)

	// the loop counter is wider than the address space so that the loop can
	// terminate
	for a = 1; a <= uint32(MemtopM68K); a++ {
		_, area = MapAddress(uint16(a))

		if area != current {
			s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", sa, a-1, current.String()))
			current = area
			sa = a
		}
	}

	// write last line of summary
	s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", sa, a-1, area.String()))

	return s.String()
}
