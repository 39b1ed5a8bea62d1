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

// Package input implements the joypad register. The state of the eight
// buttons is read from a Device once per machine cycle and folded into the
// lower nibble of the P1 register according to the select bits written by the
// CPU. A joypad interrupt is requested whenever one of the visible lines
// transitions from high to low.
//
// In addition to a plugged Device, button events can be pushed from another
// goroutine with the Push() function. Pushed events are drained at the start
// of every Step().
package input
