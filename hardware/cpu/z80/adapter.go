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

	"github.com/megagopher/megagopher/curated"
	"github.com/megagopher/megagopher/hardware/preferences"
	"github.com/megagopher/megagopher/logger"
)

// Sentinel error patterns returned by this package.
const (
	NotInitialised     = "z80: not initialised"
	AlreadyInitialised = "z80: already initialised"
	NoEngine           = "z80: no engine: %v"
)

// Bus is the Z80 memory as required by the adapter.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)

	// the memory backing Z80 RAM
	RAM() []uint8

	// reset the 68K window to its power on position
	ResetBank()
}

type lifecycle int

const (
	uninitialised lifecycle = iota
	initialised
	reinitialised
	shutdown
)

func (l lifecycle) String() string {
	switch l {
	case uninitialised:
		return "uninitialised"
	case initialised:
		return "initialised"
	case reinitialised:
		return "reinitialised"
	case shutdown:
		return "shut down"
	}
	return "unknown"
}

// Adapter owns the Z80 engine and translates between the engine's register
// representation and the Registers type.
//
// When the z80.enabled preference is false at the time of Init() no engine is
// created. In that state SaveRegisters() returns zeroed registers and
// RestoreRegisters() does nothing. Neither is an error.
type Adapter struct {
	prefs   *preferences.Preferences
	factory EngineFactory
	ctrl    *Control

	engine Engine
	bus    Bus

	lifecycle lifecycle
	perm      logger.Permission
}

// NewAdapter is the preferred method of initialisation for the Adapter type.
// The prefs argument can be nil, in which case the Z80 is enabled. The ctrl
// argument is shared with the 68K side of the emulation.
func NewAdapter(prefs *preferences.Preferences, factory EngineFactory, ctrl *Control) *Adapter {
	if ctrl == nil {
		ctrl = &Control{}
	}
	return &Adapter{
		prefs:   prefs,
		factory: factory,
		ctrl:    ctrl,
		perm:    logger.Allow,
	}
}

func (a *Adapter) String() string {
	if a.engine == nil {
		return fmt.Sprintf("z80: %s (no engine)", a.lifecycle)
	}
	return fmt.Sprintf("z80: %s", a.lifecycle)
}

// SetLogPermission changes the permission used when the adapter logs.
func (a *Adapter) SetLogPermission(perm logger.Permission) {
	a.perm = perm
}

func (a *Adapter) enabled() bool {
	if a.prefs == nil {
		return true
	}
	return a.prefs.Z80Enabled.Get().(bool)
}

func (a *Adapter) isInitialised() bool {
	return a.lifecycle == initialised || a.lifecycle == reinitialised
}

// Enabled returns true if the adapter has an engine.
func (a *Adapter) Enabled() bool {
	return a.engine != nil
}

// Control returns the control state shared with the 68K.
func (a *Adapter) Control() *Control {
	return a.ctrl
}

// Init creates the engine, maps Z80 RAM for instruction fetches and plumbs
// in the bus. Reinit() is called before returning.
func (a *Adapter) Init(bus Bus) error {
	if a.isInitialised() {
		return curated.Errorf(AlreadyInitialised)
	}
	if bus == nil {
		return curated.Errorf(NoEngine, "no bus")
	}

	if a.enabled() {
		if a.factory == nil {
			return curated.Errorf(NoEngine, "no engine factory")
		}

		engine, err := a.factory()
		if err != nil {
			return curated.Errorf(NoEngine, err)
		}

		// RAM is fetched from directly, both in its primary position and in
		// the mirror
		ram := bus.RAM()
		engine.AddFetch(0x00, 0x1f, ram)
		engine.AddFetch(0x20, 0x3f, ram)

		engine.SetReadByte(bus.Read)
		engine.SetWriteByte(bus.Write)

		a.engine = engine
	} else {
		logger.Log(a.perm, "z80", "emulation disabled. registers will not be saved or restored")
	}

	a.bus = bus
	a.lifecycle = initialised
	logger.Log(a.perm, "z80", "initialised")

	return a.Reinit()
}

// Reinit clears Z80 RAM, resets the bank register and the control state and
// hard resets the engine. The StatePresent bit in the control state is
// preserved.
func (a *Adapter) Reinit() error {
	if !a.isInitialised() {
		return curated.Errorf(NotInitialised)
	}

	clear(a.bus.RAM())
	a.bus.ResetBank()

	a.ctrl.State &= StatePresent
	a.ctrl.LastBusReqCnt = 0
	a.ctrl.LastBusReqSt = 0

	if a.engine != nil {
		a.engine.HardReset()
	}

	a.lifecycle = reinitialised

	return nil
}

// Shutdown releases the engine. The adapter can be initialised again.
func (a *Adapter) Shutdown() error {
	if !a.isInitialised() {
		return curated.Errorf(NotInitialised)
	}

	var err error
	if a.engine != nil {
		err = a.engine.Close()
		a.engine = nil
	}

	a.bus = nil
	a.lifecycle = shutdown
	logger.Log(a.perm, "z80", "shut down")

	if err != nil {
		return fmt.Errorf("z80: %w", err)
	}
	return nil
}

// SaveRegisters returns a copy of the engine's registers. WZ is always zero.
func (a *Adapter) SaveRegisters() (Registers, error) {
	var r Registers

	if !a.isInitialised() {
		return r, curated.Errorf(NotInitialised)
	}
	if a.engine == nil {
		return r, nil
	}

	for i, p := range r.wide() {
		*p = a.engine.Register(Register(i))
	}
	for i, p := range r.narrow() {
		*p = uint8(a.engine.Register(IFF + Register(i)))
	}

	state := a.engine.State()
	if state&EngineHalted == EngineHalted {
		r.Status |= StatusHalted
	}
	if state&EngineFaulted == EngineFaulted {
		r.Status |= StatusFaulted
	}

	line := a.engine.IntLine()
	if line&IntLineIRQ == IntLineIRQ {
		r.Status |= StatusIntPending
	}
	if line&IntLineNMI == IntLineNMI {
		r.Status |= StatusNMIPending
	}

	r.IntVect = a.engine.IntVect()

	return r, nil
}

// RestoreRegisters sets the engine's registers. The WZ field is ignored.
func (a *Adapter) RestoreRegisters(r Registers) error {
	if !a.isInitialised() {
		return curated.Errorf(NotInitialised)
	}
	if a.engine == nil {
		return nil
	}

	for i, p := range r.wide() {
		a.engine.SetRegister(Register(i), *p)
	}
	for i, p := range r.narrow() {
		a.engine.SetRegister(IFF+Register(i), uint16(*p))
	}

	var state uint8
	if r.Status&StatusHalted == StatusHalted {
		state |= EngineHalted
	}
	if r.Status&StatusFaulted == StatusFaulted {
		state |= EngineFaulted
	}
	a.engine.SetState(state)

	var line uint8
	if r.Status&StatusIntPending == StatusIntPending {
		line |= IntLineIRQ
	}
	if r.Status&StatusNMIPending == StatusNMIPending {
		line |= IntLineNMI
	}
	a.engine.SetIntLine(line)

	a.engine.SetIntVect(r.IntVect)

	return nil
}

// Exec runs the engine for the number of cycles. The Z80 only runs when it
// is present and is neither held in reset nor without the bus.
func (a *Adapter) Exec(cycles int) (int, error) {
	if !a.isInitialised() {
		return 0, curated.Errorf(NotInitialised)
	}
	if a.engine == nil || a.ctrl.State != StatePresent {
		return 0, nil
	}
	return a.engine.Exec(cycles)
}

// Interrupt raises the interrupt line with the vector placed on the data bus.
func (a *Adapter) Interrupt(vector uint8) {
	if a.engine == nil {
		return
	}
	a.engine.SetIntVect(vector)
	a.engine.SetIntLine(a.engine.IntLine() | IntLineIRQ)
}

// ClearInterrupt lowers the interrupt line.
func (a *Adapter) ClearInterrupt() {
	if a.engine == nil {
		return
	}
	a.engine.SetIntLine(a.engine.IntLine() &^ IntLineIRQ)
}

// NMI raises the non-maskable interrupt line.
func (a *Adapter) NMI() {
	if a.engine == nil {
		return
	}
	a.engine.SetIntLine(a.engine.IntLine() | IntLineNMI)
}

// RAM returns Z80 RAM. Returns nil if the adapter is not initialised.
func (a *Adapter) RAM() []uint8 {
	if a.bus == nil {
		return nil
	}
	return a.bus.RAM()
}
