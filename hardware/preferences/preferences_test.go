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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/megagopher/megagopher/hardware/preferences"
	"github.com/megagopher/megagopher/test"
)

func TestDefaultsAndPersistence(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	p, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Z80Enabled.Get().(bool), true)
	test.ExpectEquality(t, p.Port1.String(), "3btn")
	test.ExpectEquality(t, p.Port2.String(), "none")
	test.ExpectEquality(t, p.MaxArchiveSize.Get().(int), 8*1024*1024)

	// a non-positive archive size is refused
	test.ExpectFailure(t, p.MaxArchiveSize.Set(0))

	test.ExpectSuccess(t, p.Z80Enabled.Set(false))
	test.ExpectSuccess(t, p.Port1.Set("pico"))
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Z80Enabled.Get().(bool), false)
	test.ExpectEquality(t, q.Port1.String(), "pico")
}
