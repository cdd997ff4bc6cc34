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

// Button bits in the Device.Buttons field. Buttons are active low.
const (
	ButtonUp    uint16 = 0x0001
	ButtonDown  uint16 = 0x0002
	ButtonLeft  uint16 = 0x0004
	ButtonRight uint16 = 0x0008
	ButtonB     uint16 = 0x0010
	ButtonC     uint16 = 0x0020
	ButtonA     uint16 = 0x0040
	ButtonStart uint16 = 0x0080
	ButtonZ     uint16 = 0x0100
	ButtonY     uint16 = 0x0200
	ButtonX     uint16 = 0x0400
	ButtonMode  uint16 = 0x0800
)

// the TH line is bit 6 of the data and control registers.
const pinTH = 0x40

// pad reads with TH high: ?1CBRLDU
func padTHHigh(b uint16) uint8 {
	return pinTH | uint8(b&0x3f)
}

// pad reads with TH low: ?0SA00DU
func padTHLow(b uint16) uint8 {
	return uint8(b&0x03) | uint8((b>>2)&0x30)
}

func resetPad(_ *Device) {}

// KindNone. nothing is plugged in and the input pins are pulled high.
func updateNone(d *Device) {
	d.DeviceData = 0xff
}

func latchNone(d *Device, _ bool) {
	d.DeviceData = 0xff
}

// Kind2Button. the Master System pad ignores TH.
func update2Button(d *Device) {
	d.DeviceData = 0xc0 | uint8(d.Buttons&0x3f)
}

func latch2Button(d *Device, _ bool) {
	update2Button(d)
}

// Kind3Button.
func update3Button(d *Device) {
	if d.th() {
		d.DeviceData = padTHHigh(d.Buttons)
	} else {
		d.DeviceData = padTHLow(d.Buttons)
	}
}

func latch3Button(d *Device, _ bool) {
	update3Button(d)
}

// Kind6Button. every change of the TH line advances a counter. the third
// and fourth TH cycles in a frame expose the extra buttons.
type sixButtonState struct {
	counter int
}

func reset6Button(d *Device) {
	d.sixButton.counter = 0
}

// the counter times out between frames.
func update6Button(d *Device) {
	d.sixButton.counter = 0
	sixButtonOutput(d)
}

func latch6Button(d *Device, prevTH bool) {
	if d.th() != prevTH {
		d.sixButton.counter = (d.sixButton.counter + 1) & 0x07
	}
	sixButtonOutput(d)
}

func sixButtonOutput(d *Device) {
	b := d.Buttons
	phase := d.sixButton.counter >> 1

	if d.th() {
		if phase == 3 {
			// ?1CBMXYZ
			d.DeviceData = pinTH | uint8(b&0x30) | uint8((b>>8)&0x0f)
		} else {
			d.DeviceData = padTHHigh(b)
		}
		return
	}

	switch phase {
	case 2:
		// ?0SA0000
		d.DeviceData = uint8((b >> 2) & 0x30)
	case 3:
		// ?0SA1111
		d.DeviceData = uint8((b>>2)&0x30) | 0x0f
	default:
		d.DeviceData = padTHLow(b)
	}
}
