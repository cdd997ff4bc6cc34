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
	"fmt"

	"github.com/megagopher/megagopher/curated"
	"github.com/megagopher/megagopher/logger"
)

// SRamConfig is the position and state of battery backed RAM in the 68K
// address space.
type SRamConfig struct {
	Start    uint32
	End      uint32
	On       bool
	Writable bool
}

func (s SRamConfig) String() string {
	return fmt.Sprintf("%06x-%06x on=%v writable=%v", s.Start, s.End, s.On, s.Writable)
}

// Reset the configuration to the empty state.
func (s *SRamConfig) Reset() {
	*s = SRamConfig{}
}

// Size returns the number of bytes in the SRAM window.
func (s SRamConfig) Size() int {
	if s.End < s.Start {
		return 0
	}
	return int(s.End-s.Start) + 1
}

// magic number in the header SRAM info field. 'R' 'A' followed by the
// battery backed bit
const (
	sramMagic     = 0x52414000
	sramMagicMask = 0xffff4000
)

// default SRAM window used when the header has no SRAM information
const (
	sramDefaultStart = 0x200000
	sramDefaultEnd   = 0x203fff
	sramMaxSpan      = 0x3fff
)

// images this size or smaller always have SRAM enabled
const sramAlwaysOn = 0x200000

// InitSRam configures SRAM from the cartridge header.
func (rom *Rom) InitSRam(sram *SRamConfig) error {
	if !rom.IsOpen() {
		return curated.Errorf(NotOpened)
	}

	sram.Reset()

	var start, end uint32
	if rom.header.SRamInfo&sramMagicMask == sramMagic {
		start = rom.header.SRamStart & 0xf80000
		end = rom.header.SRamEnd & 0xffffff
	} else {
		start = sramDefaultStart
		end = sramDefaultEnd
	}

	if start > end || end-start > sramMaxSpan {
		end = start + sramMaxSpan
	}

	// start on an even byte and end on an odd byte
	start &^= 1
	end |= 1

	sram.Start = start
	sram.End = end

	// header information is unreliable for small images
	if rom.size <= sramAlwaysOn {
		sram.On = true
		sram.Writable = true
	}

	logger.Logf(rom.logPermission(), "cartridgeloader", "sram: %s", sram)

	return nil
}
