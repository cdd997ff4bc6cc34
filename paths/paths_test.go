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

package paths_test

import (
	"os"
	"strings"
	"testing"

	"github.com/megagopher/megagopher/paths"
	"github.com/megagopher/megagopher/test"
)

func TestPaths(t *testing.T) {
	t.Cleanup(func() {
		os.RemoveAll(".megagopher")
	})

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".megagopher/foo/bar/baz")

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".megagopher/foo/bar")

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".megagopher/baz")

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".megagopher")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("state", "Sonic The Hedgehog", ".zomg")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "state_Sonic_The_Hedgehog_"))
	test.ExpectSuccess(t, strings.HasSuffix(fn, ".zomg"))

	fn = paths.UniqueFilename("state", "", ".zomg")
	test.ExpectFailure(t, strings.Contains(fn, "__"))
}
