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

// Package m68kbus decodes memory accesses made to the 68K address space,
// whether by the 68K itself or by the Z80 through its bank window.
//
// Only the areas needed by the rest of the emulation are decoded: the
// cartridge with its SRAM overlay, the Pico registers, the Z80 address
// space, the I/O chip, the Z80 bus request and reset lines, and RAM.
// Everything else reads as open bus.
//
// The Z80 address space is only reachable from the 68K when the 68K holds
// the Z80 bus. Writing one to bit zero of BusReq requests the bus. Writing
// zero to bit zero of Z80Reset holds the Z80 in reset.
//
// Use Summary() for a reference of the address map.
package m68kbus
