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
	"strings"
)

// Area represents the different areas of the 68K address space.
type Area int

func (a Area) String() string {
	switch a {
	case Cartridge:
		return "Cartridge"
	case Unused:
		return "Unused"
	case Pico:
		return "Pico"
	case Z80:
		return "Z80"
	case IO:
		return "IO"
	case Z80Ctrl:
		return "Z80 Control"
	case RAM:
		return "RAM"
	}

	return "undefined"
}

// The different memory areas seen by the 68K.
const (
	Undefined Area = iota
	Cartridge
	Unused
	Pico
	Z80
	IO
	Z80Ctrl
	RAM
)

// The origin and memory top for each area. Areas are listed in address order.
// The Pico registers are only present when a Pico is plugged in. 68K RAM is
// 64KiB and is mirrored throughout the top 2MiB of the address space.
const (
	OriginCartridge = uint32(0x000000)
	MemtopCartridge = uint32(0x3fffff)
	OriginPico      = uint32(0x800000)
	MemtopPico      = uint32(0x80001f)
	OriginZ80       = uint32(0xa00000)
	MemtopZ80       = uint32(0xa0ffff)
	OriginIO        = uint32(0xa10000)
	MemtopIO        = uint32(0xa1001f)
	OriginZ80Ctrl   = uint32(0xa11100)
	MemtopZ80Ctrl   = uint32(0xa112ff)
	OriginRAM       = uint32(0xe00000)
	MemtopRAM       = uint32(0xffffff)
)

// Masks applied to an address to normalise it within an area.
const (
	MaskAddress = uint32(0xffffff)
	MaskZ80     = uint32(0x7fff)
	MaskIO      = uint32(0x1f)
	MaskRAM     = uint32(0xffff)
)

// RAMSize is the amount of RAM attached to the 68K.
const RAMSize = 64 * 1024

// Addresses in the Z80 control area.
const (
	BusReq   = uint32(0xa11100)
	Z80Reset = uint32(0xa11200)
)

// MapAddress translates the address argument from mirror space to primary
// space and returns the area the address is in. Only the low 24 bits of the
// address are used. Addresses in the Pico, IO and Z80 control areas are
// returned unchanged because the devices in those areas decode the address
// themselves.
func MapAddress(address uint32) (uint32, Area) {
	address &= MaskAddress

	switch {
	case address <= MemtopCartridge:
		return address, Cartridge
	case address < OriginPico:
		return address, Unused
	case address <= MemtopPico:
		return address, Pico
	case address < OriginZ80:
		return address, Unused
	case address <= MemtopZ80:
		return address & MaskZ80, Z80
	case address <= MemtopIO:
		return address, IO
	case address < OriginZ80Ctrl:
		return address, Unused
	case address <= MemtopZ80Ctrl:
		return address, Z80Ctrl
	case address < OriginRAM:
		return address, Unused
	}
	return address & MaskRAM, RAM
}

// Summary returns a single multiline string detailing all the areas in memory.
// Useful for reference.
func Summary() string {
	var area, current Area
	var a, sa uint32

	s := strings.Builder{}

	// look up area of first address in memory
	_, current = MapAddress(0)

	for a = 1; a <= MaskAddress; a++ {
		_, area = MapAddress(a)

		if area != current {
			s.WriteString(fmt.Sprintf("%06x -> %06x\t%s\n", sa, a-1, current.String()))
			current = area
			sa = a
		}
	}

	// write last line of summary
	s.WriteString(fmt.Sprintf("%06x -> %06x\t%s\n", sa, a-1, area.String()))

	return s.String()
}
