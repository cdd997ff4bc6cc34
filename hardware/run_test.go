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

package hardware_test

import (
	"fmt"
	"testing"

	"github.com/megagopher/megagopher/test"
)

func TestRunForFrameCount(t *testing.T) {
	s := newSession(t, newPrefs(t), nil)

	test.ExpectSuccess(t, s.RunForFrameCount(10, nil))
	test.ExpectEquality(t, s.FrameNum(), 10)

	// ended early
	err := s.RunForFrameCount(10, func(frame int) (bool, error) {
		return frame < 15, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.FrameNum(), 15)

	test.ExpectFailure(t, s.RunForFrameCount(-1, nil))

	test.DemandSuccess(t, s.Reset())
	test.ExpectEquality(t, s.FrameNum(), 0)
}

func TestRun(t *testing.T) {
	s := newSession(t, newPrefs(t), nil)

	err := s.Run(func(frame int) (bool, error) {
		return frame < 3, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.FrameNum(), 3)

	err = s.Run(func(frame int) (bool, error) {
		return true, fmt.Errorf("stop")
	})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, s.FrameNum(), 4)
}
