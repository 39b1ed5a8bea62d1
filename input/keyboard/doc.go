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

// Package keyboard implements an input device that reads key presses from
// the controlling terminal. The terminal is put into cbreak mode for the
// lifetime of the device.
//
// Terminals do not report key releases so each key press holds the button
// down for a fixed number of machine cycles. Repeated key presses, from the
// terminal's key repeat, extend the hold.
//
//	cursor keys or WASD   directions
//	X                     A
//	Z                     B
//	space or tab          SELECT
//	return                START
//	Q                     quit
package keyboard
