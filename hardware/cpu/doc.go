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

// Package cpu emulates the processor of the handheld console. The instruction
// set is similar to the Z80 and the 8080 but is not the same as either.
//
// The CPU is stepped once per machine cycle by the Step() function. An
// instruction is executed in its entirety on the first cycle and the CPU
// then idles for the remaining cycles of the instruction. Interrupts are
// checked at the start of every cycle in which the CPU is not idle.
//
// Instructions are described by the Definition type. There are two tables
// of definitions, one for the primary opcodes and one for the opcodes
// following the 0xcb prefix byte. Each definition carries a function that
// performs the instruction. The function is given the CPU as an argument so
// the tables can be built once, when the package is initialised.
//
// The ExecuteInstruction() function is a convenience for testing and for
// tooling. It steps the CPU until exactly one instruction (or interrupt) has
// been dispatched.
//
// The CPU can be in one of four states. The HALT instruction moves the CPU
// to the Halted state, from which it leaves when any interrupt is requested,
// whether or not it is enabled. The interrupt is only serviced if IME is set
// and the interrupt is enabled. The STOP instruction moves the CPU to the Stopped state, from
// which it leaves when a joypad interrupt is requested. An unknown opcode
// moves the CPU to the Dead state, from which it never leaves.
//
// On the colour variant, STOP is also used to switch between the normal and
// double speed modes. The mode switch is requested by setting bit 0 of the
// KEY1 register before executing STOP.
package cpu
