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

// Package ports emulates the console's I/O chip and the devices that can be
// plugged into it.
//
// Each port holds one Device. The kind of the device is decided when it is
// created and its behaviour is selected from a table of functions indexed by
// Kind. The table covers every Kind so there is no fallback path.
//
// The I/O chip occupies a 32 byte window. Registers are on the odd bytes and
// the even bytes are mirrors.
//
//	01        version
//	03 05 07  data (port 1, port 2, ext)
//	09 0b 0d  control
//	0f-13     serial (port 1)
//	15-19     serial (port 2)
//	1b-1f     serial (ext)
//
// The Sega Pico does not use the I/O chip. Its registers are read with
// Ports.ReadPort() or Device.ReadPort().
package ports
