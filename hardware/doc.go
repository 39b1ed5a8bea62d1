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

// Package hardware is the base package for the emulated console. The
// Console type gathers all the components of the console and defines the
// order in which they are stepped.
//
// A single Tick() of the console advances every component by one machine
// cycle, in the following order:
//
//	joypad
//	CPU (twice in double speed mode)
//	display
//	DMA
//	timer
//
// Each component sees the memory left by the components stepped before it in
// the same tick. The CPU checks for pending interrupts at the start of its
// own step so an interrupt requested by the timer in one tick is not serviced
// until the next tick at the earliest.
//
// Any error returned by a component is fatal. The error is wrapped in a Fault,
// which records the state of the CPU at the moment of failure, and the
// console will refuse to tick again until it is reset.
package hardware
