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

// Package interrupts implements the interrupt controller.
//
// The request (IF) and enable (IE) registers are memory mapped and are
// accessed by the controller with direct access. The interrupt master enable
// flag (IME) is not memory mapped and is held by the controller.
//
// Interrupt sources call Request(). The CPU checks for a pending interrupt
// with Next() before every instruction and, if IME is set, services the
// interrupt after calling Acknowledge().
package interrupts
