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
	"bytes"
)

// Format is the framing of a cartridge or disc image.
type Format int

// List of valid Format values. The disc formats are last.
const (
	FmtAuto Format = iota
	FmtBinary
	FmtSMD
	FmtSMDSplit
	FmtCDBin2352
	FmtCDBin2048
	FmtCDISO2352
	FmtCDISO2048
)

func (f Format) String() string {
	switch f {
	case FmtAuto:
		return "AUTO"
	case FmtBinary:
		return "BINARY"
	case FmtSMD:
		return "SMD"
	case FmtSMDSplit:
		return "SMD_SPLIT"
	case FmtCDBin2352:
		return "CD_BIN_2352"
	case FmtCDBin2048:
		return "CD_BIN_2048"
	case FmtCDISO2352:
		return "CD_ISO_2352"
	case FmtCDISO2048:
		return "CD_ISO_2048"
	}
	return "unknown"
}

// IsCD returns true if the format is a disc image.
func (f Format) IsCD() bool {
	return f >= FmtCDBin2352
}

// System is the hardware the image is intended for.
type System int

// List of valid System values.
const (
	SysAuto System = iota
	SysMD
	SysMCD
	Sys32X
)

func (s System) String() string {
	switch s {
	case SysAuto:
		return "AUTO"
	case SysMD:
		return "MD"
	case SysMCD:
		return "MCD"
	case Sys32X:
		return "32X"
	}
	return "unknown"
}

// HeaderSize is the number of bytes read from the start of an image for
// detection purposes.
const HeaderSize = 65536

var (
	// ISO-9660 volume descriptor identifier
	magicISO9660 = []byte("CD001")

	// volume label found at the start of Sega CD discs
	magicSegaCD = []byte("SEGADISCSYSTEM")

	magicSega = []byte("SEGA")
	magic32X  = []byte("32X")
	magicMars = []byte("MARS")
)

// at returns true if the magic bytes are found at the offset in the header.
func at(header []byte, offset int, magic []byte) bool {
	if offset+len(magic) > len(header) {
		return false
	}
	return bytes.Equal(header[offset:offset+len(magic)], magic)
}

// DetectFormat decides on the framing of an image from the first bytes of
// the image. The detection never fails. If nothing is recognised the image
// is assumed to be a plain binary.
func DetectFormat(header []byte) Format {
	if len(header) >= HeaderSize {
		// the offset of the ISO-9660 identifier decides the sector size
		switch {
		case at(header, 0x9311, magicISO9660):
			return FmtCDBin2352
		case at(header, 0x8011, magicISO9660):
			return FmtCDBin2048
		case at(header, 0x9301, magicISO9660):
			return FmtCDISO2352
		case at(header, 0x8001, magicISO9660):
			return FmtCDISO2048
		}

		// the sector size can not be found reliably from the volume label
		switch {
		case at(header, 0x0010, magicSegaCD):
			return FmtCDBin2352
		case at(header, 0x0000, magicSegaCD):
			return FmtCDISO2048
		}
	}

	// an SMD image has a 512 byte header followed by 16KiB blocks
	if len(header) >= 0x4200 && !at(header, 0x100, magicSega) {
		if (header[0x08] == 0xaa && header[0x09] == 0xbb && header[0x0a] == 0x06) ||
			(header[0x280] == 'E' && header[0x281] == 'A') {
			if header[0x02] == 0x00 {
				return FmtSMD
			}
			return FmtSMDSplit
		}
	}

	return FmtBinary
}

// DetectSystem decides on the intended hardware for an image. The detection
// never fails. If nothing is recognised the image is assumed to be for the
// Mega Drive.
func DetectSystem(header []byte, format Format) System {
	if format.IsCD() {
		return SysMCD
	}

	if format == FmtSMD {
		if len(header) >= 0x4200 && header[0x300] == 0xf9 {
			if (header[0x280] == '3' && header[0x281] == 'X') ||
				(header[0x407] == 'A' && header[0x408] == 'S') {
				return Sys32X
			}
		}
		return SysMD
	}

	if len(header) >= 0x412 && header[0x200] == 0x4e {
		if at(header, 0x105, magic32X) || at(header, 0x40e, magicMars) {
			return Sys32X
		}
	}

	return SysMD
}
