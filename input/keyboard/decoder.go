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

package keyboard

import (
	"github.com/jetsetilly/gopherboy/hardware/input"
)

type decoderState int

const (
	stateNormal decoderState = iota
	stateEsc
	stateCursor
)

// decoder converts a stream of bytes from the terminal into button presses.
// escape sequences can be split over more than one read.
type decoder struct {
	state decoderState
}

// feed a single byte to the decoder. returns the button pressed, if any, and
// whether the quit key was pressed.
func (d *decoder) feed(b byte) (input.Buttons, bool) {
	switch d.state {
	case stateEsc:
		if b == escCursor {
			d.state = stateCursor
		} else {
			d.state = stateNormal
		}
		return 0, false

	case stateCursor:
		d.state = stateNormal
		switch b {
		case cursorUp:
			return input.Up, false
		case cursorDown:
			return input.Down, false
		case cursorForward:
			return input.Right, false
		case cursorBackward:
			return input.Left, false
		}
		return 0, false
	}

	switch b {
	case keyEsc:
		d.state = stateEsc
	case 'w', 'W':
		return input.Up, false
	case 's', 'S':
		return input.Down, false
	case 'a', 'A':
		return input.Left, false
	case 'd', 'D':
		return input.Right, false
	case 'x', 'X':
		return input.A, false
	case 'z', 'Z':
		return input.B, false
	case keySpace, keyTab:
		return input.Select, false
	case keyCarriageReturn, keyLineFeed:
		return input.Start, false
	case 'q', 'Q':
		return 0, true
	}

	return 0, false
}
