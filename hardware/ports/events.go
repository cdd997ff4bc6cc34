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

package ports

import (
	"fmt"
)

// Event represents the actions that can be performed at one of the ports.
type Event string

// List of defined events.
const (
	NoEvent Event = "NoEvent" // nil

	// pressing and releasing buttons. the data is a button bit (uint16)
	ButtonPress   Event = "ButtonPress"
	ButtonRelease Event = "ButtonRelease"

	// pointer position. the data is a Pointer value
	PointerMove Event = "PointerMove"

	// set Pico storyware page directly. the data is the page number (int)
	PicoPageSet Event = "PicoPageSet"
)

// EventData is the value associated with the event.
type EventData interface{}

// Pointer is the data for the PointerMove event. Negative values mean the
// pointer is offscreen.
type Pointer struct {
	X int
	Y int
}

// HandleEvent applies an input event to the device. Button events latch a new
// button state in the same way as SetButtons(). Returns false if the event is
// not meaningful for the device.
func (d *Device) HandleEvent(ev Event, data EventData) (bool, error) {
	switch ev {
	case NoEvent:
		return true, nil

	case ButtonPress, ButtonRelease:
		b, ok := data.(uint16)
		if !ok {
			return false, fmt.Errorf("ports: unexpected data (%T) for %s", data, ev)
		}
		pending := d.Buttons
		if ev == ButtonPress {
			pending &^= b
		} else {
			pending |= b
		}
		d.SetButtons(pending)
		return true, nil

	case PointerMove:
		if d.pico == nil {
			return false, nil
		}
		p, ok := data.(Pointer)
		if !ok {
			return false, fmt.Errorf("ports: unexpected data (%T) for %s", data, ev)
		}
		d.SetPointer(p.X, p.Y)
		return true, nil

	case PicoPageSet:
		if d.pico == nil {
			return false, nil
		}
		pg, ok := data.(int)
		if !ok || pg < 0 || pg >= PicoMaxPages {
			return false, fmt.Errorf("ports: unexpected data (%v) for %s", data, ev)
		}
		d.SetPicoPage(uint8(pg))
		return true, nil
	}

	return false, nil
}
