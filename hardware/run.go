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

package hardware

import (
	"github.com/megagopher/megagopher/curated"
)

// PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation.
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 100

// FrameNum returns the number of frames run since the session was last
// reset.
func (s *Session) FrameNum() int {
	return s.frameNum
}

// Run frames until continueCheck returns false or an error. The frame
// argument to continueCheck is the number of the frame that has just been
// run. A nil continueCheck runs forever.
func (s *Session) Run(continueCheck func(frame int) (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func(_ int) (bool, error) { return true, nil }
	}

	for {
		if _, err := s.Frame(); err != nil {
			return err
		}

		cont, err := continueCheck(s.frameNum)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

// RunForFrameCount runs the specified number of frames. The continueCheck
// function can end the run early and can be nil.
func (s *Session) RunForFrameCount(numFrames int, continueCheck func(frame int) (bool, error)) error {
	if numFrames < 0 {
		return curated.Errorf("session: negative frame count (%d)", numFrames)
	}

	target := s.frameNum + numFrames
	for s.frameNum != target {
		if _, err := s.Frame(); err != nil {
			return err
		}

		if continueCheck != nil {
			cont, err := continueCheck(s.frameNum)
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}
		}
	}

	return nil
}
