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

package hardware

import (
	"fmt"

	"github.com/megagopher/megagopher/cartridgeloader"
	"github.com/megagopher/megagopher/curated"
	"github.com/megagopher/megagopher/hardware/cpu/z80"
	"github.com/megagopher/megagopher/hardware/instance"
	"github.com/megagopher/megagopher/hardware/memory/m68kbus"
	"github.com/megagopher/megagopher/hardware/memory/z80bus"
	"github.com/megagopher/megagopher/hardware/ports"
	"github.com/megagopher/megagopher/hardware/preferences"
	"github.com/megagopher/megagopher/logger"
	"github.com/megagopher/megagopher/notifications"
)

// NoCartridge is returned by operations that need a cartridge when none has
// been inserted.
const NoCartridge = "session: no cartridge inserted"

// Z80CyclesPerFrame is the number of Z80 cycles in an NTSC frame. 228 cycles
// for each of 262 lines.
const Z80CyclesPerFrame = 228 * 262

// Session is the root of the emulation and owns every piece of hardware
// state. There is no global state and more than one session can exist at
// once.
type Session struct {
	Instance *instance.Instance

	Z80    *z80.Adapter
	Z80Bus *z80bus.Bus
	Mem    *m68kbus.Bus
	Ports  *ports.Ports

	// the inserted cartridge. nil if no cartridge has been inserted
	Rom *cartridgeloader.Rom

	SRamConfig cartridgeloader.SRamConfig
	EEPRom     cartridgeloader.EEPRom

	// Z80 control lines. shared by the Z80 adapter and the 68K bus
	ctrl z80.Control

	cart []uint8
	sram []uint8

	// frames run since the last reset
	frameNum int

	notify notifications.Notify
}

// NewSession is the preferred method of initialisation for the Session type.
//
// The prefs argument can be nil, in which case the preferences are loaded
// from the default preferences file. The notify argument can be nil.
func NewSession(prefs *preferences.Preferences, factory z80.EngineFactory, notify notifications.Notify) (*Session, error) {
	return newSession(instance.Main, prefs, factory, notify)
}

// NewInspector creates a session that does not log. It is otherwise the same
// as a session created with NewSession().
func NewInspector(prefs *preferences.Preferences, factory z80.EngineFactory) (*Session, error) {
	return newSession(instance.Inspector, prefs, factory, nil)
}

func newSession(label instance.Label, prefs *preferences.Preferences, factory z80.EngineFactory, notify notifications.Notify) (*Session, error) {
	ins, err := instance.NewInstance(label, prefs)
	if err != nil {
		return nil, curated.Errorf("session: %v", err)
	}

	if notify == nil {
		notify = notifications.Discard{}
	}

	s := &Session{
		Instance: ins,
		notify:   notify,
	}

	// the Z80 is always present in a Mega Drive
	s.ctrl.State = z80.StatePresent

	s.Ports = ports.NewPorts(notify)
	s.Ports.SetLogPermission(ins)
	if err := s.plugPorts(); err != nil {
		return nil, err
	}

	s.Z80Bus = z80bus.NewBus(nil, nil, nil)
	s.Mem = m68kbus.NewBus(s.Ports, s.Z80Bus, &s.ctrl)
	s.Z80Bus.Plumb(nil, nil, s.Mem)

	s.Z80 = z80.NewAdapter(ins.Prefs, factory, &s.ctrl)
	s.Z80.SetLogPermission(ins)
	if err := s.Z80.Init(s.Z80Bus); err != nil {
		return nil, curated.Errorf("session: %v", err)
	}

	logger.Log(ins, "session", "created")

	return s, nil
}

func (s *Session) plugPorts() error {
	for _, p := range []struct {
		id   ports.PortID
		kind string
	}{
		{id: ports.Port1, kind: s.Instance.Prefs.Port1.Get().(string)},
		{id: ports.Port2, kind: s.Instance.Prefs.Port2.Get().(string)},
	} {
		kind, err := ports.KindFromString(p.kind)
		if err != nil {
			return curated.Errorf("session: %v", err)
		}
		if err := s.Ports.Plug(p.id, kind); err != nil {
			return curated.Errorf("session: %v", err)
		}
	}
	return nil
}

func (s *Session) String() string {
	if s.Rom == nil {
		return fmt.Sprintf("%s, no cartridge", s.Z80)
	}
	return fmt.Sprintf("%s, %s, sram %s", s.Z80, s.Rom, s.SRamConfig)
}

// Insert an opened cartridge into the session. The cartridge data is copied
// into the session, SRAM and EEPROM are configured from the cartridge header
// and the session is reset. The session takes ownership of the Rom and any
// previously inserted Rom is closed.
func (s *Session) Insert(rom *cartridgeloader.Rom) error {
	rom.SetLogPermission(s.Instance)

	cart := make([]uint8, rom.Size())
	if _, err := rom.LoadRom(cart); err != nil {
		return curated.Errorf("session: %v", err)
	}

	var sram cartridgeloader.SRamConfig
	if err := rom.InitSRam(&sram); err != nil {
		return curated.Errorf("session: %v", err)
	}

	var eeprom cartridgeloader.EEPRom
	if err := rom.InitEEPRom(&eeprom); err != nil {
		return curated.Errorf("session: %v", err)
	}

	if s.Rom != nil && s.Rom != rom {
		if err := s.Rom.Close(); err != nil {
			logger.Log(s.Instance, "session", err)
		}
	}

	s.Rom = rom
	s.cart = cart
	s.SRamConfig = sram
	s.EEPRom = eeprom
	s.sram = make([]uint8, sram.Size())

	s.Mem.Insert(s.cart)
	s.Mem.SetSRam(m68kbus.SRam{
		Data:     s.sram,
		Start:    sram.Start,
		On:       sram.On,
		Writable: sram.Writable,
	})

	logger.Logf(s.Instance, "session", "inserted %s", rom.ShortName())

	return s.Reset()
}

// SRam returns the battery backed RAM of the inserted cartridge.
func (s *Session) SRam() []uint8 {
	return s.sram
}

// Reset the session as though the console had been power cycled. SRAM is
// not cleared.
func (s *Session) Reset() error {
	if err := s.Z80.Reinit(); err != nil {
		return curated.Errorf("session: %v", err)
	}
	s.Mem.Reset()
	s.Ports.Reset()
	s.frameNum = 0
	return nil
}

// Frame runs the Z80 for one frame and updates the peripherals. Returns the
// number of Z80 cycles executed.
func (s *Session) Frame() (int, error) {
	if s.Rom == nil {
		return 0, curated.Errorf(NoCartridge)
	}

	s.Ports.Update()

	n, err := s.Z80.Exec(Z80CyclesPerFrame)
	if err != nil {
		return n, curated.Errorf("session: %v", err)
	}
	s.frameNum++

	return n, nil
}

// Close shuts down the Z80 and closes the inserted cartridge. The session
// cannot be used after it has been closed.
func (s *Session) Close() error {
	err := s.Z80.Shutdown()

	if s.Rom != nil {
		if rerr := s.Rom.Close(); rerr != nil && err == nil {
			err = rerr
		}
		s.Rom = nil
	}

	if err != nil {
		return curated.Errorf("session: %v", err)
	}

	logger.Log(s.Instance, "session", "closed")

	return nil
}
