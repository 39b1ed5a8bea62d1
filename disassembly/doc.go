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

// Package disassembly creates a linear disassembly of a cartridge image.
//
// Each ROM bank is disassembled from its first byte to its last, in the
// address range the bank occupies when it is switched in. Bank zero is
// always at 0x0000 and every other bank appears at 0x4000. No attempt is
// made to follow the flow of the program so data in the ROM is disassembled
// as though it were code.
//
// The cartridge header is parsed and included in the output of Write().
package disassembly
