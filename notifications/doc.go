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

// Package notifications allow communication from the hardware to the
// presentation layer. A notification is a Notice value and an integer
// parameter, for example the new page number of the Pico storyware.
//
// Notifications are usually passed onto the GUI to indicate to the user the
// event that has happened. The command line tool in this repository prints
// them.
package notifications
