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
	"github.com/megagopher/megagopher/curated"
)

// EEPRomType identifies the EEPROM wiring of a cartridge. The meaning of the
// value belongs to the EEPRomDetector. Zero means no EEPROM.
type EEPRomType int

// NoEEPRom indicates that the cartridge has no EEPROM.
const NoEEPRom EEPRomType = 0

// EEPRomDetector decides on the EEPROM type of a cartridge from its header.
type EEPRomDetector interface {
	DetectEEPRomType(serial []byte, checksum uint16) EEPRomType
}

// NoDetector reports that no cartridge has an EEPROM.
type NoDetector struct{}

// DetectEEPRomType implements the EEPRomDetector interface.
func (NoDetector) DetectEEPRomType(_ []byte, _ uint16) EEPRomType {
	return NoEEPRom
}

// EEPRom is the EEPROM configuration of a cartridge.
type EEPRom struct {
	Type EEPRomType
}

// Reset the configuration to the empty state.
func (e *EEPRom) Reset() {
	*e = EEPRom{}
}

// InitEEPRom configures the EEPROM with the type decided when the image was
// loaded.
func (rom *Rom) InitEEPRom(eeprom *EEPRom) error {
	if !rom.IsOpen() {
		return curated.Errorf(NotOpened)
	}

	eeprom.Reset()
	eeprom.Type = rom.eepromType

	return nil
}
