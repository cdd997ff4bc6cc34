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

// Package hardware is the base package for the Mega Drive emulation. It and
// its sub-packages contain everything required for a headless session.
//
// The Session type is the root of the emulation and contains references to
// all the sub-systems: the Z80 adapter and its bus, the 68K bus and the
// controller ports. A cartridge is inserted with Insert() and the emulation
// is advanced one frame at a time with Frame(), or continuously with Run().
//
// The complete state of a session can be written to and read from a
// savestate.Store with SaveState() and LoadState().
package hardware
