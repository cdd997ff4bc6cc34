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

	"github.com/megagopher/megagopher/logger"
	"github.com/megagopher/megagopher/notifications"
)

// PortID differentiates the ports that devices can be plugged into.
type PortID int

// List of valid PortID values.
const (
	Port1 PortID = iota
	Port2
	PortExt

	NumPorts
)

func (id PortID) String() string {
	switch id {
	case Port1:
		return "port 1"
	case Port2:
		return "port 2"
	case PortExt:
		return "ext"
	}
	return "unknown port"
}

// Version register bits.
const (
	VersionOverseas = 0x80
	VersionPAL      = 0x40
	VersionNoExpand = 0x20
)

// Ports is the console's I/O chip and the devices plugged into it.
type Ports struct {
	devices [NumPorts]*Device
	notify  notifications.Notify
	perm    logger.Permission

	// value of the version register
	Version uint8
}

// NewPorts is the preferred method of initialisation for the Ports type. All
// ports are empty. The notify argument can be nil.
func NewPorts(notify notifications.Notify) *Ports {
	if notify == nil {
		notify = notifications.Discard{}
	}
	p := &Ports{
		notify:  notify,
		perm:    logger.Allow,
		Version: VersionOverseas | VersionNoExpand,
	}
	for i := range p.devices {
		p.devices[i], _ = NewDevice(KindNone, notify)
	}
	return p
}

func (p *Ports) String() string {
	s := strings.Builder{}
	for i, d := range p.devices {
		s.WriteString(fmt.Sprintf("%s: %s\n", PortID(i), d))
	}
	return s.String()
}

// Plug a new device of the specified kind into a port. Any existing device is
// removed.
func (p *Ports) Plug(id PortID, kind Kind) error {
	if id < 0 || id >= NumPorts {
		return fmt.Errorf("ports: cannot plug into %s", id)
	}
	d, err := NewDevice(kind, p.notify)
	if err != nil {
		return err
	}
	d.SetLogPermission(p.perm)
	p.devices[id] = d
	logger.Logf(p.perm, "ports", "%s plugged into %s", kind, id)
	return nil
}

// SetLogPermission changes the permission used when the ports or any device
// plugged into them logs.
func (p *Ports) SetLogPermission(perm logger.Permission) {
	p.perm = perm
	for _, d := range p.devices {
		d.SetLogPermission(perm)
	}
}

// Device returns the device plugged into the port.
func (p *Ports) Device(id PortID) *Device {
	if id < 0 || id >= NumPorts {
		return nil
	}
	return p.devices[id]
}

// Update every device. Should be called once per frame.
func (p *Ports) Update() {
	for _, d := range p.devices {
		d.Update()
	}
}

// Reset every device. Should be called on power cycle.
func (p *Ports) Reset() {
	for _, d := range p.devices {
		d.ResetDevice()
	}
}

// ReadPort reads a device register outside of the I/O chip. The Pico
// registers are reached this way. The first device that maps the address is
// used.
func (p *Ports) ReadPort(address uint32) (uint8, error) {
	var err error
	for _, d := range p.devices {
		var v uint8
		v, err = d.ReadPort(address)
		if err == nil {
			return v, nil
		}
	}
	return 0, err
}

// register decodes an address in the I/O chip's 32 byte window. even
// addresses mirror the odd address above them.
func register(address uint32) (reg uint32, id PortID) {
	reg = (address & 0x1e) | 0x01
	switch {
	case reg >= 0x03 && reg <= 0x07:
		id = PortID((reg - 0x03) >> 1)
	case reg >= 0x09 && reg <= 0x0d:
		id = PortID((reg - 0x09) >> 1)
	case reg >= 0x0f && reg <= 0x1f:
		id = PortID((reg - 0x0f) / 6)
	}
	return reg, id
}

// Read the I/O chip register at the address. Only the low five bits of the
// address are used.
func (p *Ports) Read(address uint32) uint8 {
	reg, id := register(address)

	switch {
	case reg == 0x01:
		return p.Version
	case reg <= 0x07:
		return p.devices[id].ReadData()
	case reg <= 0x0d:
		return p.devices[id].Ctrl
	case reg <= 0x1f:
		d := p.devices[id]
		switch (reg - 0x0f) % 6 {
		case 0:
			return d.SerTx
		case 2:
			return d.SerRx
		case 4:
			return d.SerCtrl
		}
	}

	return 0xff
}

// Write to the I/O chip register at the address. Only the low five bits of
// the address are used.
func (p *Ports) Write(address uint32, data uint8) {
	reg, id := register(address)

	switch {
	case reg == 0x01:
		// version register is read only
	case reg <= 0x07:
		p.devices[id].WriteData(data)
	case reg <= 0x0d:
		p.devices[id].WriteCtrl(data)
	case reg <= 0x1f:
		d := p.devices[id]
		switch (reg - 0x0f) % 6 {
		case 0:
			d.SerTx = data
		case 2:
			// receive register is read only
		case 4:
			d.SerCtrl = data & 0xf8
		}
	}
}
