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

// Package memory builds the complete address space of the console from the
// region types in the bus package and the cartridge.
//
// The Memory type offers mediated access with Read() and Write(), which is
// the access performed by the CPU, and direct access with Peek() and Poke(),
// which has no side effects and ignores masks. Direct access is used by the
// other hardware components when they update their own memory mapped
// registers and by tooling.
//
// Memory mapped registers that trigger behaviour (the DMA registers for
// example) have their callbacks attached with Attach(). Registers that reset
// when written to (DIV) use AttachReset().
//
// The layout of the address space depends on the console variant. Registers
// that only exist on the colour variant are unusable on the monochrome
// variant.
package memory
