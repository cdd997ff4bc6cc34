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

package z80

import (
	"fmt"
)

// Status bits in the Registers.Status field.
const (
	StatusHalted     = 0x01
	StatusFaulted    = 0x02
	StatusIntPending = 0x04
	StatusNMIPending = 0x08
)

// Registers is an engine independent copy of the Z80 registers. Values are
// in host order. Conversion to the order used by savestate files is done by
// the savestate package.
type Registers struct {
	AF uint16
	BC uint16
	DE uint16
	HL uint16
	IX uint16
	IY uint16
	PC uint16
	SP uint16

	AF2 uint16
	BC2 uint16
	DE2 uint16
	HL2 uint16

	IFF uint8
	R   uint8
	I   uint8
	IM  uint8

	// the internal memptr register. not all engines expose WZ so it is
	// always saved as zero and ignored on restore
	WZ uint16

	Status  uint8
	IntVect uint8
}

func (r Registers) String() string {
	return fmt.Sprintf("AF=%04x BC=%04x DE=%04x HL=%04x IX=%04x IY=%04x PC=%04x SP=%04x "+
		"AF'=%04x BC'=%04x DE'=%04x HL'=%04x IFF=%d R=%02x I=%02x IM=%d status=%02x vect=%02x",
		r.AF, r.BC, r.DE, r.HL, r.IX, r.IY, r.PC, r.SP,
		r.AF2, r.BC2, r.DE2, r.HL2, r.IFF, r.R, r.I, r.IM, r.Status, r.IntVect)
}

// the 16 bit registers in the order of the Register enumeration.
func (r *Registers) wide() [IFF]*uint16 {
	return [IFF]*uint16{
		&r.AF, &r.BC, &r.DE, &r.HL, &r.IX, &r.IY, &r.PC, &r.SP,
		&r.AF2, &r.BC2, &r.DE2, &r.HL2,
	}
}

// the 8 bit registers in the order of the Register enumeration.
func (r *Registers) narrow() [NumRegisters - IFF]*uint8 {
	return [NumRegisters - IFF]*uint8{&r.IFF, &r.R, &r.I, &r.IM}
}
