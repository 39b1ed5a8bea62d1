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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/hardware/clocks"
)

var timedOut = errors.New("performance timed out")

// the number of ticks between checks of the timer channel. checking the
// channel on every tick is noticeably expensive
const performanceBrake = 1000

// Check the performance of the emulator by running the console for the
// specified duration. The console should have been created and have a
// cartridge attached.
func Check(output io.Writer, profile Profile, console *hardware.Console, duration time.Duration) error {
	var startClock uint64
	var measured time.Duration
	var startTime time.Time

	runner := func() error {
		// true is sent when the measurement period has ended. false is sent
		// when the lead time has elapsed and measurement should begin
		timerChan := make(chan bool, 2)

		time.AfterFunc(time.Second, func() {
			timerChan <- false
			time.AfterFunc(duration, func() {
				timerChan <- true
			})
		})

		brake := 0

		return console.Run(func() (bool, error) {
			brake++
			if brake < performanceBrake {
				return true, nil
			}
			brake = 0

			select {
			case v := <-timerChan:
				if v {
					measured = time.Since(startTime)
					return false, timedOut
				}
				startClock = console.Clock
				startTime = time.Now()
			default:
			}

			return true, nil
		})
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	ticks := console.Clock - startClock
	rate, accuracy := CalcRate(ticks, measured.Seconds())
	fmt.Fprintf(output, "%.3f MHz (%d cycles in %.2f seconds) %.1f%%\n", rate/1000000, ticks, measured.Seconds(), accuracy)

	return nil
}

// CalcRate returns the number of machine cycles per second and the
// percentage of the nominal machine cycle rate that represents.
func CalcRate(ticks uint64, seconds float64) (rate float64, accuracy float64) {
	if seconds <= 0 {
		return 0, 0
	}
	rate = float64(ticks) / seconds
	accuracy = 100 * rate / clocks.MachineCycle
	return rate, accuracy
}
