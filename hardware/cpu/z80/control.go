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

import "fmt"

// Bits in the Control.State field.
const (
	// the Z80 is present. set from outside the adapter and preserved by
	// Reinit()
	StatePresent = 0x01

	// the 68K holds the Z80 bus
	StateBusReq = 0x02

	// the Z80 is held in reset
	StateReset = 0x04
)

// Control is the Z80 control state that belongs to the 68K side of the
// console: the bus request and reset lines.
type Control struct {
	State uint8

	// bus request arbitration
	LastBusReqCnt int
	LastBusReqSt  uint8
}

func (c Control) String() string {
	return fmt.Sprintf("state=%02x busreq=%v reset=%v", c.State, c.State&StateBusReq != 0, c.State&StateReset != 0)
}
