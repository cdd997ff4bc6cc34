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
	"strings"

	"github.com/megagopher/megagopher/curated"
	"github.com/megagopher/megagopher/logger"
	"github.com/megagopher/megagopher/notifications"
)

// Sentinel error patterns returned by this package.
const (
	UnmappedPort = "ports: unmapped address (%#06x)"
	UnknownKind  = "ports: unknown device kind (%s)"
)

// Kind identifies the type of device plugged into a port.
type Kind int

// List of valid Kind values.
const (
	KindNone Kind = iota
	Kind3Button
	Kind6Button
	Kind2Button
	KindPico

	numKinds
)

var kindNames = [numKinds]string{"none", "3btn", "6btn", "2btn", "pico"}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "unknown"
	}
	return kindNames[k]
}

// KindFromString returns the Kind with the given name. Names are not case
// sensitive.
func KindFromString(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k := KindNone; k < numKinds; k++ {
		if kindNames[k] == s {
			return k, nil
		}
	}
	return KindNone, curated.Errorf(UnknownKind, s)
}

// kindOps is the implementation of one device kind.
type kindOps struct {
	// once per frame
	update func(d *Device)

	// power cycle. emulation wide state is not touched
	reset func(d *Device)

	// directly addressable registers beyond the data port
	readPort func(d *Device, address uint32) (uint8, error)

	// recalculate DeviceData after the console writes to the data or control
	// latches. the TH argument is the previous state of the TH line
	latch func(d *Device, prevTH bool)
}

// the dispatch table is indexed by Kind and covers every Kind.
var kinds [numKinds]kindOps

func init() {
	kinds = [numKinds]kindOps{
		KindNone:    {update: updateNone, reset: resetPad, readPort: noPort, latch: latchNone},
		Kind3Button: {update: update3Button, reset: resetPad, readPort: noPort, latch: latch3Button},
		Kind6Button: {update: update6Button, reset: reset6Button, readPort: noPort, latch: latch6Button},
		Kind2Button: {update: update2Button, reset: resetPad, readPort: noPort, latch: latch2Button},
		KindPico:    {update: updatePico, reset: resetPico, readPort: readPortPico, latch: latchPico},
	}
}

// Device is a peripheral plugged into one of the console's ports. The kind
// of device is fixed when it is created and kind specific state is held in
// the arm for that kind. Arms for other kinds are nil.
type Device struct {
	kind Kind

	// tristate control. a set bit means the corresponding pin is an output
	// from the console
	Ctrl uint8

	// data latched by the console
	MDData uint8

	// data presented by the device on its input pins
	DeviceData uint8

	// serial interface registers. these are latched but serial transfer is
	// not emulated
	SerCtrl uint8
	SerTx   uint8
	SerRx   uint8

	// button state for this frame and the previous frame. buttons are active
	// low so a released button is a set bit
	Buttons     uint16
	ButtonsPrev uint16

	pico      *picoState
	sixButton *sixButtonState

	notify notifications.Notify
	perm   logger.Permission
}

// NewDevice is the preferred method of initialisation for the Device type.
// The notify argument can be nil.
func NewDevice(kind Kind, notify notifications.Notify) (*Device, error) {
	if kind < 0 || kind >= numKinds {
		return nil, curated.Errorf(UnknownKind, fmt.Sprintf("%d", kind))
	}

	if notify == nil {
		notify = notifications.Discard{}
	}

	d := &Device{
		kind:   kind,
		notify: notify,
		perm:   logger.Allow,
	}

	switch kind {
	case KindPico:
		d.pico = &picoState{}
	case Kind6Button:
		d.sixButton = &sixButtonState{}
	}

	d.ResetDevice()

	return d, nil
}

func (d *Device) String() string {
	s := fmt.Sprintf("%s ctrl=%02x data=%02x buttons=%04x", d.kind, d.Ctrl, d.ReadData(), d.Buttons)
	if d.pico != nil {
		s = fmt.Sprintf("%s page=%d pen=%03x,%03x", s, d.pico.page, d.pico.adjX, d.pico.adjY)
	}
	return s
}

// Kind returns the kind of the device.
func (d *Device) Kind() Kind {
	return d.kind
}

// SetLogPermission changes the permission used when the device logs.
func (d *Device) SetLogPermission(perm logger.Permission) {
	d.perm = perm
}

// Update is called once per frame and recomputes the device output from the
// latched inputs.
func (d *Device) Update() {
	kinds[d.kind].update(d)
}

// ResetDevice clears device local state. It should be called on power cycle.
func (d *Device) ResetDevice() {
	d.Buttons = 0xffff
	d.ButtonsPrev = 0xffff
	d.Ctrl = 0x00
	d.MDData = 0xff
	d.SerCtrl = 0x00
	d.SerTx = 0xff
	d.SerRx = 0x00
	kinds[d.kind].reset(d)
	kinds[d.kind].update(d)
}

// ReadPort reads one of the device's directly addressable registers. Device
// kinds without such registers always return the UnmappedPort error. A
// failed read has no side effect.
func (d *Device) ReadPort(address uint32) (uint8, error) {
	return kinds[d.kind].readPort(d, address)
}

// SetButtons sets the button state for this frame. The state from the
// previous call is kept for edge detection.
func (d *Device) SetButtons(buttons uint16) {
	d.ButtonsPrev = d.Buttons
	d.Buttons = buttons
}

// SetPointer sets the absolute position of the pointer in a 1280x480 logical
// space. A negative value on either axis means the pointer is offscreen. Only
// pointer devices use this value.
func (d *Device) SetPointer(x, y int) {
	if d.pico != nil {
		d.pico.absX = x
		d.pico.absY = y
	}
}

// th returns the state of the TH line. when TH is an input it is pulled high.
func (d *Device) th() bool {
	return d.Ctrl&pinTH == 0 || d.MDData&pinTH == pinTH
}

// WriteCtrl is called when the console writes to the port's control register.
func (d *Device) WriteCtrl(data uint8) {
	prev := d.th()
	d.Ctrl = data
	kinds[d.kind].latch(d, prev)
}

// WriteData is called when the console writes to the port's data register.
func (d *Device) WriteData(data uint8) {
	prev := d.th()
	d.MDData = data
	kinds[d.kind].latch(d, prev)
}

// ReadData returns the value of the port's data register as seen by the
// console. Input pins come from the device and output pins come from the
// console's latch. Bit 7 is always the latched value.
func (d *Device) ReadData() uint8 {
	return (d.DeviceData & ^d.Ctrl & 0x7f) | (d.MDData & (d.Ctrl | 0x80))
}

func noPort(_ *Device, address uint32) (uint8, error) {
	return 0, curated.Errorf(UnmappedPort, address)
}

// Restore the console side registers of the device, as when loading a
// savestate. The device output is recalculated without a change of the TH
// line being seen.
func (d *Device) Restore(ctrl, data, serTx, serRx, serCtrl uint8) {
	d.Ctrl = ctrl
	d.MDData = data
	d.SerTx = serTx
	d.SerRx = serRx
	d.SerCtrl = serCtrl & 0xf8
	kinds[d.kind].latch(d, d.th())
}
