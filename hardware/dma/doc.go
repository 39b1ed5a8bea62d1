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

// Package dma implements the block transfer engine.
//
// There are three types of transfer. An OAM transfer is started by writing
// the high byte of the source address to the DMA register. The 160 bytes are
// copied in one go once a fixed delay has elapsed.
//
// On the colour variant the HDMA registers specify a source and destination
// for copying to VRAM. Writing to HDMA5 with bit 7 clear copies the data
// immediately. With bit 7 set the data is copied in blocks of 16 bytes, one
// block per h-blank window signalled by the display.
//
// Only one OAM or h-blank transfer can be in flight at any one time.
// Starting another transfer while one is active is an error that is returned
// by the Step() function.
package dma
