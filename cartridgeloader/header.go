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

package cartridgeloader

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// MDHeader is the Mega Drive cartridge header found at offset 0x100 of a
// binary image. Numeric fields are in host order.
type MDHeader struct {
	ConsoleName  [16]byte
	Copyright    [16]byte
	RomNameJP    [48]byte
	RomNameUS    [48]byte
	SerialNumber [14]byte
	Checksum     uint16
	IOSupport    [16]byte
	RomStart     uint32
	RomEnd       uint32
	RamStart     uint32
	RamEnd       uint32
	SRamInfo     uint32
	SRamStart    uint32
	SRamEnd      uint32
	ModemInfo    [12]byte
	Notes        [40]byte
	CountryCodes [16]byte
}

// offset of the header in the image and its size
const (
	headerOrigin = 0x100
	headerSize   = 0x100
)

func (h MDHeader) String() string {
	return fmt.Sprintf("%s %s [%s] checksum=%04x sram=%08x %06x-%06x",
		SpaceElim(h.ConsoleName[:]), SpaceElim(h.RomNameUS[:]), SpaceElim(h.SerialNumber[:]),
		h.Checksum, h.SRamInfo, h.SRamStart, h.SRamEnd)
}

// parseHeader decodes the header from the first bytes of an image. Fields
// not covered by the image are left zero. An image of headerOrigin bytes or
// fewer has a blank header.
func parseHeader(image []byte) MDHeader {
	var h MDHeader

	if len(image) <= headerOrigin {
		return h
	}

	// copy into a full sized buffer so that a short header decodes as zero
	var b [headerSize]byte
	copy(b[:], image[headerOrigin:])

	copy(h.ConsoleName[:], b[0x00:])
	copy(h.Copyright[:], b[0x10:])
	copy(h.RomNameJP[:], b[0x20:])
	copy(h.RomNameUS[:], b[0x50:])
	copy(h.SerialNumber[:], b[0x80:])
	h.Checksum = binary.BigEndian.Uint16(b[0x8e:])
	copy(h.IOSupport[:], b[0x90:])
	h.RomStart = binary.BigEndian.Uint32(b[0xa0:])
	h.RomEnd = binary.BigEndian.Uint32(b[0xa4:])
	h.RamStart = binary.BigEndian.Uint32(b[0xa8:])
	h.RamEnd = binary.BigEndian.Uint32(b[0xac:])
	h.SRamInfo = binary.BigEndian.Uint32(b[0xb0:])
	h.SRamStart = binary.BigEndian.Uint32(b[0xb4:])
	h.SRamEnd = binary.BigEndian.Uint32(b[0xb8:])
	copy(h.ModemInfo[:], b[0xbc:])
	copy(h.Notes[:], b[0xc8:])
	copy(h.CountryCodes[:], b[0xf0:])

	return h
}

// isGraphic returns true for characters that are printed with ink. Bytes
// above 0x7f are treated as graphic because Japanese names use them.
func isGraphic(c byte) bool {
	return c > 0x20 && c != 0x7f
}

// SpaceElim collapses each run of non-graphic characters in a fixed width
// name field into a single space. Leading non-graphic characters are removed
// and so is a trailing space. A field without graphic characters becomes the
// empty string.
func SpaceElim(field []byte) string {
	s := strings.Builder{}
	s.Grow(len(field))

	lastGraphic := false
	for _, c := range field {
		if isGraphic(c) {
			s.WriteByte(c)
			lastGraphic = true
		} else if lastGraphic {
			s.WriteByte(' ')
			lastGraphic = false
		}
	}

	return strings.TrimSuffix(s.String(), " ")
}
