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

package ports_test

import (
	"testing"

	"github.com/megagopher/megagopher/curated"
	"github.com/megagopher/megagopher/hardware/ports"
	"github.com/megagopher/megagopher/test"
)

func TestPortsVersion(t *testing.T) {
	p := ports.NewPorts(nil)
	test.ExpectEquality(t, p.Read(0xa10001), uint8(ports.VersionOverseas|ports.VersionNoExpand))

	// even addresses mirror the odd address
	test.ExpectEquality(t, p.Read(0xa10000), p.Read(0xa10001))

	// read only
	p.Write(0xa10001, 0x00)
	test.ExpectEquality(t, p.Read(0xa10001), uint8(ports.VersionOverseas|ports.VersionNoExpand))
}

func TestPortsUnplugged(t *testing.T) {
	p := ports.NewPorts(nil)
	for _, address := range []uint32{0xa10003, 0xa10005, 0xa10007} {
		test.ExpectEquality(t, p.Read(address), uint8(0xff), address)
	}
	for _, id := range []ports.PortID{ports.Port1, ports.Port2, ports.PortExt} {
		test.ExpectEquality(t, p.Device(id).Kind(), ports.KindNone, id)
	}
	test.ExpectEquality(t, p.Device(ports.NumPorts) == nil, true)
}

func TestPortsPlug(t *testing.T) {
	p := ports.NewPorts(nil)
	test.ExpectSuccess(t, p.Plug(ports.Port2, ports.Kind3Button))
	test.ExpectFailure(t, p.Plug(ports.NumPorts, ports.Kind3Button))
	test.ExpectFailure(t, p.Plug(ports.Port1, ports.Kind(-1)))

	// control register for port 2
	p.Write(0xa1000b, 0x40)
	test.ExpectEquality(t, p.Read(0xa1000b), uint8(0x40))
	test.ExpectEquality(t, p.Device(ports.Port2).Ctrl, uint8(0x40))
	test.ExpectEquality(t, p.Device(ports.Port1).Ctrl, uint8(0x00))

	p.Device(ports.Port2).SetButtons(0xffff &^ ports.ButtonStart)
	p.Update()

	p.Write(0xa10005, 0x40)
	test.ExpectEquality(t, p.Read(0xa10005), uint8(0x7f))
	p.Write(0xa10005, 0x00)
	test.ExpectEquality(t, p.Read(0xa10005), uint8(0x13))

	// reset releases every button
	p.Reset()
	test.ExpectEquality(t, p.Device(ports.Port2).Buttons, uint16(0xffff))
	test.ExpectEquality(t, p.Device(ports.Port2).Ctrl, uint8(0x00))
}

func TestPortsSerial(t *testing.T) {
	p := ports.NewPorts(nil)

	test.ExpectEquality(t, p.Read(0xa1000f), uint8(0xff))
	p.Write(0xa1000f, 0x12)
	test.ExpectEquality(t, p.Device(ports.Port1).SerTx, uint8(0x12))

	// receive register is read only
	p.Write(0xa10017, 0x34)
	test.ExpectEquality(t, p.Read(0xa10017), uint8(0x00))

	// low bits of the serial control register are status bits
	p.Write(0xa1001f, 0xff)
	test.ExpectEquality(t, p.Device(ports.PortExt).SerCtrl, uint8(0xf8))
	test.ExpectEquality(t, p.Device(ports.Port1).SerCtrl, uint8(0x00))
}

func TestPortsReadPort(t *testing.T) {
	p := ports.NewPorts(nil)

	_, err := p.ReadPort(0x800003)
	test.ExpectSuccess(t, curated.Is(err, ports.UnmappedPort))

	test.DemandSuccess(t, p.Plug(ports.Port1, ports.KindPico))
	p.Device(ports.Port1).SetButtons(0xff &^ ports.PicoButtonRed)
	p.Update()

	v, err := p.ReadPort(0x800003)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xef))
}
