// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package hardware

// It can be expensive to do a full continue check after every instruction.
// PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
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

// Run sets the emulation running as quickly as possible. The continueCheck()
// function is called after every instruction and should return false when
// the emulation should stop. A nil continueCheck() runs until an error.
func (con *Console) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		if err := con.Step(); err != nil {
			return err
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

// RunForTicks runs the console for exactly the specified number of ticks.
// The CPU may be left part way through an instruction.
func (con *Console) RunForTicks(ticks uint64) error {
	target := con.Clock + ticks
	for con.Clock < target {
		if err := con.Tick(); err != nil {
			return err
		}
	}
	return nil
}

// RunForFrameCount runs the console until the display has completed the
// specified number of frames. Frames are counted at the start of the vblank
// so a display that is switched off never completes a frame. The
// continueCheck() function is called after every instruction and is given
// the current frame number; it can be nil.
func (con *Console) RunForFrameCount(numFrames int, continueCheck func(frame int) (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func(_ int) (bool, error) { return true, nil }
	}

	target := con.Display.Frame() + numFrames
	for con.Display.Frame() < target {
		if err := con.Step(); err != nil {
			return err
		}

		cont, err := continueCheck(con.Display.Frame())
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}

	return nil
}
