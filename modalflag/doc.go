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

// Package modalflag wraps the flag package of the standard library so that a
// command line can be divided into modes, each mode with its own flags and
// arguments.
//
// Arguments are given with NewArgs() and consumed a layer at a time by
// Parse(). Before each call to Parse(), the flags and sub-modes for the
// layer are added:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("INFO", "STATE")
//	log := md.AddBool("log", false, "echo log to stdout")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "INFO":
//		md.NewMode()
//		...
//	}
//
// A sub-mode is the first argument after the flags of the layer. When no
// sub-mode is named the first sub-mode in the list is used. Sub-mode names
// are not case sensitive.
//
// Help is printed to Output automatically when the -help flag is seen.
package modalflag
