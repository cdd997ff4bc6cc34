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

// Package preferences holds the emulation preferences for a session. Values
// are stored in the global preferences file under the "z80", "io" and
// "cartridge" keys.
package preferences

import (
	"fmt"

	"github.com/megagopher/megagopher/curated"
	"github.com/megagopher/megagopher/paths"
	"github.com/megagopher/megagopher/prefs"
)

// default maximum size of a ROM extracted from an archive.
const defaultMaxArchive = 8 * 1024 * 1024

// Preferences defines the hardware preferences for an emulation session.
type Preferences struct {
	dsk *prefs.Disk

	// whether the Z80 engine is present. when this is false the Z80 state
	// adapter saves zeroed registers and ignores restored registers
	Z80Enabled prefs.Bool

	// device kind plugged into the first and second controller ports
	Port1 prefs.String
	Port2 prefs.String

	// path to a libretro RDB file used to identify cartridges. the empty
	// string disables identification
	RomDatabase prefs.String

	// the largest ROM that will be extracted from a compressed archive
	MaxArchiveSize prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile creates preferences backed by the named file rather
// than the default preferences file. A missing file is not an error.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.MaxArchiveSize.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("maximum archive size must be positive")
		}
		return nil
	})

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("z80.enabled", &p.Z80Enabled)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("io.port1", &p.Port1)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("io.port2", &p.Port2)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cartridge.rdb", &p.RomDatabase)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cartridge.maxarchive", &p.MaxArchiveSize)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.Z80Enabled.Set(true)
	p.Port1.Set("3btn")
	p.Port2.Set("none")
	p.RomDatabase.Set("")
	p.MaxArchiveSize.Set(defaultMaxArchive)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
