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

// Package instance holds the parts of a session that identify it rather than
// emulate it: a label and the preferences in use.
//
// More than one session can exist at once. For example, a savestate can be
// inspected in a second session while the main session is running. Only the
// main session writes to the central log.
package instance

import (
	"github.com/megagopher/megagopher/hardware/preferences"
)

// Label indicates the purpose of the session.
type Label string

// List of valid Label values.
const (
	Main      Label = ""
	Inspector Label = "inspector"
)

// Instance identifies one session.
type Instance struct {
	Label Label

	// can be shared with other sessions
	Prefs *preferences.Preferences
}

// NewInstance is the preferred method of initialisation for the Instance type.
// If prefs is nil the preferences are loaded from the default file.
func NewInstance(label Label, prefs *preferences.Preferences) (*Instance, error) {
	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	return &Instance{
		Label: label,
		Prefs: prefs,
	}, nil
}

// AllowLogging implements the logger.Permission interface. Only the main
// instance is allowed to log.
func (ins *Instance) AllowLogging() bool {
	return ins.Label == Main
}
