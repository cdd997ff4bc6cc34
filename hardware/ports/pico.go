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
	"github.com/megagopher/megagopher/curated"
	"github.com/megagopher/megagopher/logger"
	"github.com/megagopher/megagopher/notifications"
)

// PicoMaxPages is the number of pages in a Pico storyware book, including
// the title page.
const PicoMaxPages = 8

// Pico button bits. The page buttons are mapped as buttons for convenience
// but are never visible on the data port.
//
//	PudBRLDU
const (
	PicoButtonRed      uint16 = 0x10
	PicoButtonPageDown uint16 = 0x20
	PicoButtonPageUp   uint16 = 0x40
	PicoButtonPen      uint16 = 0x80
)

// the page register is a growing run of set bits, not the page number.
var picoPageReg = [8]uint8{0x00, 0x01, 0x03, 0x07, 0x0f, 0x1f, 0x3f, 0x3f}

// the Pico registers occupy the odd addresses 0x800001 to 0x80000f.
const (
	picoPortMask = 0xfffff1
	picoPortBase = 0x800001
)

type picoState struct {
	page uint8

	// pointer position in a 1280x480 logical space
	absX int
	absY int

	// pointer position in hardware units
	adjX uint16
	adjY uint16
}

func resetPico(d *Device) {
	d.pico.page = 0
}

// the Pico is hard-wired into the console and is input only.
func latchPico(_ *Device, _ bool) {}

func updatePico(d *Device) {
	d.Ctrl = 0x00
	d.DeviceData = uint8(0xff & (d.Buttons | 0x60))

	// all eight bits are input so the latched data matches the device data
	d.MDData = d.DeviceData

	p := d.pico

	if d.ButtonsPrev&PicoButtonPageDown != 0 && d.Buttons&PicoButtonPageDown == 0 {
		if p.page < PicoMaxPages-1 {
			p.page++
			d.notifyPage(notifications.NotifyPicoPageDown)
		}
	}
	if d.ButtonsPrev&PicoButtonPageUp != 0 && d.Buttons&PicoButtonPageUp == 0 {
		if p.page > 0 {
			p.page--
			d.notifyPage(notifications.NotifyPicoPageUp)
		}
	}

	if p.absX < 0 || p.absY < 0 {
		// offscreen
		p.adjX = 0
		p.adjY = 0
		return
	}

	// x is [0, 1279] and maps to [0x3c, 0x13b]
	p.adjX = uint16(p.absX/5) + 0x3c

	// y is [0, 479] and maps to [0x1fc, 0x2f7] then [0x2f8, 0x3f3]. each
	// hardware range is 251 lines but only 240 lines are visible
	if p.absY < 240 {
		p.adjY = 0x1fc + uint16(p.absY)
	} else {
		p.adjY = 0x2f8 + uint16(p.absY-240)
	}
}

func (d *Device) notifyPage(notice notifications.Notice) {
	logger.Logf(d.perm, "ports", "pico page %d", d.pico.page)
	if err := d.notify.Notify(notice, int(d.pico.page)); err != nil {
		logger.Log(d.perm, "ports", err)
	}
}

func readPortPico(d *Device, address uint32) (uint8, error) {
	if address&picoPortMask != picoPortBase {
		return 0, curated.Errorf(UnmappedPort, address)
	}

	p := d.pico

	switch address & 0x0f {
	case 0x03:
		return d.DeviceData, nil
	case 0x05:
		return uint8(p.adjX >> 8), nil
	case 0x07:
		return uint8(p.adjX), nil
	case 0x09:
		return uint8(p.adjY >> 8), nil
	case 0x0b:
		return uint8(p.adjY), nil
	case 0x0d:
		return picoPageReg[p.page&0x07], nil
	}

	return 0, curated.Errorf(UnmappedPort, address)
}

// PicoPage returns the current storyware page. The second return value is
// false if the device is not a Pico.
func (d *Device) PicoPage() (uint8, bool) {
	if d.pico == nil {
		return 0, false
	}
	return d.pico.page & 0x07, true
}

// SetPicoPage sets the current storyware page directly. Page numbers outside
// the book are ignored. Setting the current page does nothing.
func (d *Device) SetPicoPage(page uint8) {
	if d.pico == nil || d.pico.page == page {
		return
	}
	if page < PicoMaxPages {
		d.pico.page = page
		d.notifyPage(notifications.NotifyPicoPageSet)
	}
}

// PicoPen returns the pointer position in hardware units.
func (d *Device) PicoPen() (uint16, uint16, bool) {
	if d.pico == nil {
		return 0, 0, false
	}
	return d.pico.adjX, d.pico.adjY, true
}
