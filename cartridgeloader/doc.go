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

// Package cartridgeloader opens and classifies Mega Drive cartridge images
// and Mega CD disc images.
//
// The image is specified with NewRom() and opened with Load(). Load() decides
// on the format and the system of the image unless they are given, and parses
// the cartridge header. An image can be inside a zip, 7z, rar or gzip
// archive.
//
//	rom := cartridgeloader.NewRom("roms/Sonic.md", cartridgeloader.SysAuto, cartridgeloader.FmtAuto)
//	err := rom.Load()
//	if err != nil {
//		...
//	}
//	defer rom.Close()
//
// An image that fails to load is left unopened and every subsequent operation
// returns the NotOpened error. The format and system detection never fails;
// if nothing is recognised the image is a plain binary for the Mega Drive.
//
// The image data is copied out with LoadRom(). The SRAM and EEPROM
// configuration is found with InitSRam() and InitEEPRom().
//
// Images can be identified with a libretro RDB database. See Identify().
package cartridgeloader
