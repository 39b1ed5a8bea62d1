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

// Package display implements the timing of the LCD controller. Pixels are not
// generated. Instead, the Display type keeps the LY and STAT registers up to
// date, requests the VBlank and LCDStat interrupts, and signals the h-blank
// window used by the DMA package.
//
// A frame is 154 scanlines of 114 machine cycles. Scanlines 0 to 143 are
// visible and each is divided into three modes: the OAM search (mode 2) of
// 20 cycles, the pixel transfer (mode 3) of 43 cycles and the h-blank (mode
// 0) for the remainder. Scanlines 144 to 153 are the v-blank (mode 1).
//
// Renderer implementations are notified at the start of every frame and at
// the end of the pixel transfer of every visible scanline. A renderer is
// free to read video memory through the Bus at that point.
package display
