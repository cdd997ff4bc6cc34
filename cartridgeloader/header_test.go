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

package cartridgeloader_test

import (
	"testing"

	"github.com/megagopher/megagopher/cartridgeloader"
	"github.com/megagopher/megagopher/test"
)

func TestSpaceElim(t *testing.T) {
	for _, tc := range []struct {
		field    string
		expected string
	}{
		{"SONIC   THE  HEDGEHOG   ", "SONIC THE HEDGEHOG"},
		{"   LEADING", "LEADING"},
		{"TABS\t\tAND\x00NULS\x00\x00", "TABS AND NULS"},
		{"NOPADDING", "NOPADDING"},
		{"                ", ""},
		{"\x00\x00\x00\x00", ""},
		{"", ""},
		{"A", "A"},
		{" A ", "A"},
	} {
		test.ExpectEquality(t, cartridgeloader.SpaceElim([]byte(tc.field)), tc.expected, tc.field)
	}
}

func TestHeader(t *testing.T) {
	image := makeImage(0x20000)
	rom := loadImage(t, image)

	h := rom.Header()
	test.ExpectEquality(t, string(h.ConsoleName[:]), "SEGA MEGA DRIVE ")
	test.ExpectEquality(t, h.Checksum, uint16(0x264a))
	test.ExpectEquality(t, h.RomStart, uint32(0x000000))
	test.ExpectEquality(t, h.RomEnd, uint32(0x07ffff))
	test.ExpectEquality(t, h.RamStart, uint32(0xff0000))
	test.ExpectEquality(t, h.RamEnd, uint32(0xffffff))
	test.ExpectEquality(t, string(h.SerialNumber[:]), "GM 00001009-00")
	test.ExpectEquality(t, string(h.CountryCodes[:3]), "JUE")

	test.ExpectEquality(t, rom.RomNameJP(), "SONIC THE HEDGEHOG")
	test.ExpectEquality(t, rom.RomNameUS(), "SONIC THE HEDGEHOG")
}

func TestHeaderTooSmall(t *testing.T) {
	for _, size := range []int{0x10, 0x100} {
		image := makeImage(0x200)[:size]
		rom := loadImage(t, image)
		test.ExpectEquality(t, rom.Header(), cartridgeloader.MDHeader{}, size)
		test.ExpectEquality(t, rom.RomNameJP(), "", size)
		test.ExpectEquality(t, rom.RomNameUS(), "", size)
	}
}

func TestHeaderShort(t *testing.T) {
	// header covers the names but not the numeric fields
	image := makeImage(0x200)[:0x180]
	rom := loadImage(t, image)
	test.ExpectEquality(t, rom.RomNameUS(), "SONIC THE HEDGEHOG")
	test.ExpectEquality(t, rom.Header().Checksum, uint16(0))
	test.ExpectEquality(t, rom.Header().SRamInfo, uint32(0))
}
