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

// Package cartridge handles the loading of cartridge data and the bank
// controllers (mappers) found in cartridges.
//
// The cartridge header identifies the console variant the cartridge is
// intended for and the type of bank controller. Two controllers are supported:
// the simple cartridge with no bank switching and the general switchable bank
// controller, which comes in two flavours.
//
// The cartridge presents two regions to the address space. The ROM region
// covers 0x0000 to 0x7fff and is a Disjoint region: reads come from the ROM
// banks and writes are commands to the bank controller. The RAM region covers
// 0xa000 to 0xbfff.
package cartridge
