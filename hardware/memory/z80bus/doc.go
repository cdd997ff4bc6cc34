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

// Package z80bus decodes memory accesses made by the Z80 sound processor.
//
// The Z80 sees its own 8KiB of RAM (mirrored once), the YM2612 and VDP
// register windows and a 32KiB window onto the 68K address space. The
// position of the 68K window is set by the bank register. The bank register
// is written one bit at a time, each write to the bank area shifting bit zero
// of the data into the top of the register.
//
// Use Summary() for a reference of the address map.
package z80bus
