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

package z80_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/megagopher/megagopher/curated"
	"github.com/megagopher/megagopher/hardware/cpu/z80"
	"github.com/megagopher/megagopher/hardware/cpu/z80/regcore"
	"github.com/megagopher/megagopher/hardware/memory/z80bus"
	"github.com/megagopher/megagopher/hardware/preferences"
	"github.com/megagopher/megagopher/test"
)

func newAdapter(t *testing.T, enabled bool) (*z80.Adapter, *z80bus.Bus, *z80.Control) {
	t.Helper()

	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, prefs.Z80Enabled.Set(enabled))

	ctrl := &z80.Control{}
	a := z80.NewAdapter(prefs, regcore.Factory, ctrl)
	bus := z80bus.NewBus(nil, nil, nil)
	test.DemandSuccess(t, a.Init(bus))

	return a, bus, ctrl
}

var snapshot = z80.Registers{
	AF:      0x1234,
	BC:      0x2345,
	DE:      0x3456,
	HL:      0x4567,
	IX:      0x5678,
	IY:      0x6789,
	PC:      0x789a,
	SP:      0x89ab,
	AF2:     0x9abc,
	BC2:     0xabcd,
	DE2:     0xbcde,
	HL2:     0xcdef,
	IFF:     0x03,
	R:       0x7f,
	I:       0x80,
	IM:      0x02,
	Status:  z80.StatusHalted | z80.StatusNMIPending,
	IntVect: 0x38,
}

func TestRoundTrip(t *testing.T) {
	a, _, _ := newAdapter(t, true)

	for _, status := range []uint8{0x00, 0x01, 0x02, 0x04, 0x08, 0x0f, 0x05, 0x0a} {
		s := snapshot
		s.Status = status
		test.ExpectSuccess(t, a.RestoreRegisters(s))

		r, err := a.SaveRegisters()
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, r, s, status)
	}
}

func TestWZIgnored(t *testing.T) {
	a, _, _ := newAdapter(t, true)

	s := snapshot
	s.WZ = 0xbeef
	test.ExpectSuccess(t, a.RestoreRegisters(s))

	r, err := a.SaveRegisters()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.WZ, uint16(0))
	s.WZ = 0
	test.ExpectEquality(t, r, s)
}

func TestDisabled(t *testing.T) {
	a, _, _ := newAdapter(t, false)
	test.ExpectFailure(t, a.Enabled())

	r, err := a.SaveRegisters()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, z80.Registers{})

	test.ExpectSuccess(t, a.RestoreRegisters(snapshot))
	r, err = a.SaveRegisters()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, z80.Registers{})

	n, err := a.Exec(100)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 0)

	// interrupts are ignored
	a.Interrupt(0xff)
	a.NMI()
	a.ClearInterrupt()
}

func TestReinit(t *testing.T) {
	a, bus, ctrl := newAdapter(t, true)

	a.RAM()[0x100] = 0x55
	bus.Write(0x6000, 0x00)
	ctrl.State = z80.StatePresent | z80.StateBusReq | z80.StateReset
	ctrl.LastBusReqCnt = 100
	ctrl.LastBusReqSt = 1
	test.ExpectSuccess(t, a.RestoreRegisters(snapshot))

	test.ExpectSuccess(t, a.Reinit())

	test.ExpectEquality(t, a.RAM()[0x100], uint8(0))
	test.ExpectEquality(t, bus.Bank(), z80bus.BankAnchor)
	test.ExpectEquality(t, ctrl.State, uint8(z80.StatePresent))
	test.ExpectEquality(t, ctrl.LastBusReqCnt, 0)
	test.ExpectEquality(t, ctrl.LastBusReqSt, uint8(0))

	r, err := a.SaveRegisters()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.PC, uint16(0))
	test.ExpectEquality(t, r.SP, uint16(0xffff))

	// the present bit is not set by Reinit()
	ctrl.State = z80.StateBusReq
	test.ExpectSuccess(t, a.Reinit())
	test.ExpectEquality(t, ctrl.State, uint8(0))
}

func TestLifecycle(t *testing.T) {
	a := z80.NewAdapter(nil, regcore.Factory, nil)

	_, err := a.SaveRegisters()
	test.ExpectSuccess(t, curated.Is(err, z80.NotInitialised))
	test.ExpectSuccess(t, curated.Is(a.Reinit(), z80.NotInitialised))
	test.ExpectSuccess(t, curated.Is(a.Shutdown(), z80.NotInitialised))
	test.ExpectSuccess(t, curated.Is(a.RestoreRegisters(snapshot), z80.NotInitialised))

	bus := z80bus.NewBus(nil, nil, nil)
	test.ExpectSuccess(t, a.Init(bus))
	test.ExpectSuccess(t, curated.Is(a.Init(bus), z80.AlreadyInitialised))
	test.ExpectSuccess(t, a.Enabled())

	test.ExpectSuccess(t, a.Shutdown())
	test.ExpectFailure(t, a.Enabled())
	test.ExpectEquality(t, len(a.RAM()), 0)
	test.ExpectSuccess(t, curated.Is(a.Shutdown(), z80.NotInitialised))

	// a shut down adapter can be initialised again
	test.ExpectSuccess(t, a.Init(bus))
	test.ExpectSuccess(t, a.Shutdown())
}

func TestFactoryError(t *testing.T) {
	failing := func() (z80.Engine, error) {
		return nil, errors.New("no interpreter")
	}
	a := z80.NewAdapter(nil, failing, nil)
	err := a.Init(z80bus.NewBus(nil, nil, nil))
	test.ExpectSuccess(t, curated.Is(err, z80.NoEngine))

	a = z80.NewAdapter(nil, nil, nil)
	err = a.Init(z80bus.NewBus(nil, nil, nil))
	test.ExpectSuccess(t, curated.Is(err, z80.NoEngine))
}

func TestExec(t *testing.T) {
	a, _, ctrl := newAdapter(t, true)

	// not present
	n, err := a.Exec(100)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 0)

	ctrl.State = z80.StatePresent
	n, err = a.Exec(100)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 100)

	// the 68K has the bus
	ctrl.State |= z80.StateBusReq
	n, err = a.Exec(100)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 0)
}

func TestInterrupts(t *testing.T) {
	a, _, _ := newAdapter(t, true)

	a.Interrupt(0x38)
	r, err := a.SaveRegisters()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.Status, uint8(z80.StatusIntPending))
	test.ExpectEquality(t, r.IntVect, uint8(0x38))

	a.NMI()
	a.ClearInterrupt()
	r, err = a.SaveRegisters()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.Status, uint8(z80.StatusNMIPending))
}
