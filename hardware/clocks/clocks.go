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

// Package clocks defines the basic clock speeds of the hardware. Values are in
// Hz.
package clocks

// the master oscillator of the console.
const Master = 4194304.0

// Machine cycles are the basic unit of time in the emulation. One machine
// cycle is four ticks of the master oscillator.
const MachineCycle = Master / 4

// the number of machine cycles in a single video frame. 154 scanlines of 114
// machine cycles each.
const MachineCyclesPerFrame = 154 * 114

// FramesPerSecond is the nominal refresh rate of the display.
const FramesPerSecond = MachineCycle / MachineCyclesPerFrame
