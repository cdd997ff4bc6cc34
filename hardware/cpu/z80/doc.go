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

// Package z80 is the interface between a Z80 engine and the rest of the
// emulation. The engine itself is consumed through the Engine interface and
// is owned by an Adapter. The adapter is owned by an emulation session and
// there is no package level state.
//
// The Registers type is the engine independent copy of the Z80 registers.
// It is what is stored in savestates.
//
//	a := z80.NewAdapter(prefs, regcore.Factory, &ctrl)
//	err := a.Init(bus)
//	...
//	regs, err := a.SaveRegisters()
//
// The lifecycle of an adapter is: uninitialised, initialised (by Init()),
// reinitialised (by Reinit()) and shut down (by Shutdown()). A shut down
// adapter can be initialised again. Any other transition is an error.
package z80
