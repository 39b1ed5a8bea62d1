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

// Package registers implements the register file of the CPU.
//
// The Register type is the 8 bit register used for A, B, C, D, E, H and L.
// Arithmetic and bitwise operations return the carry and half-carry
// information so that the CPU can update the Flags register as required by
// the instruction. For example:
//
//	carry, half := a.Subtract(b.Value(), false)
//	f.Zero = a.IsZero()
//	f.Subtract = true
//	f.HalfCarry = half
//	f.Carry = carry
//
// The Flags register is implemented as a series of named booleans. The
// lower four bits of the flags register do not exist and always read as zero.
//
// Register16 is used for the stack pointer and the program counter. The Pair
// type is a 16 bit view over two 8 bit cells, used for AF, BC, DE and HL.
// There is no separate storage for a pair. Register16 and Pair both satisfy
// the Wide interface which allows the CPU to treat them interchangeably.
package registers
