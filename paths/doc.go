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

// Package paths contains functions to prepare paths to Megagopher resources,
// such as the preferences file and the default directory for savestates.
//
// The ResourcePath() function returns the path of a file in a sub-path of
// the base resource directory. Sub-paths are created as required:
//
//	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// Development builds use the ".megagopher" directory in the current working
// directory. Builds with the "release" tag use the user's config directory as
// reported by os.UserConfigDir(). On a modern Linux system the example above
// returns:
//
//	/home/user/.config/megagopher/preferences
package paths
