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

// Package prefs facilitates the storage of preferential values in the
// Megagopher system. It is intended to be used by other packages to store
// their own preferences.
//
// The Bool, String, Int and Float types are safe to read from any goroutine.
// Each type can have a pre and a post hook. The pre hook can refuse a new
// value by returning an error.
//
// A Disk instance associates preference values with keys and saves them to a
// preferences file. The file is plain text with one "key :: value" entry per
// line:
//
//	dsk, err := prefs.NewDisk(pth)
//	err = dsk.Add("z80.enabled", &p.Z80Enabled)
//	err = dsk.Load(true)
//
// Values can be overridden from the command line with
// PushCommandLineStack(). Overridden values take precedence over values
// loaded from disk.
package prefs
