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

// Package script implements an input device driven by a Lua script. The
// script is run as a coroutine and is resumed whenever the emulation polls
// the device and the script is not waiting.
//
// The following functions are available to the script:
//
//	press(button)     hold the named button down
//	release(button)   release the named button
//	releaseall()      release all buttons
//	wait(ticks)       pause the script for the number of machine cycles
//	waitframes(n)     pause the script for the number of video frames
//	peek(address)     read a byte from the console's memory
//	log(message)      add a message to the central log
//
// Button names are RIGHT, LEFT, UP, DOWN, A, B, SELECT and START, in any
// case. For example:
//
//	waitframes(60)
//	press("start")
//	wait(1000)
//	releaseall()
//	while peek(0xff44) ~= 144 do
//		wait(1)
//	end
//
// Buttons remain in the state left by the script after the script has
// finished. A script that never waits will run to completion on the first
// poll.
package script
