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

package registers

import (
	"strings"
)

// Flags is the flag register. Only the upper four bits exist.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// Label returns the canonical label for the flags register.
func (f Flags) Label() string {
	return "F"
}

func (f Flags) String() string {
	var s strings.Builder
	s.WriteString("F=")
	flag := func(b bool, on rune, off rune) {
		if b {
			s.WriteRune(on)
		} else {
			s.WriteRune(off)
		}
	}
	flag(f.Zero, 'Z', 'z')
	flag(f.Subtract, 'N', 'n')
	flag(f.HalfCarry, 'H', 'h')
	flag(f.Carry, 'C', 'c')
	return s.String()
}

// Value returns the flags as an 8 bit value. Bits 3 to 0 are always zero.
func (f Flags) Value() uint8 {
	var v uint8
	if f.Zero {
		v |= 0x80
	}
	if f.Subtract {
		v |= 0x40
	}
	if f.HalfCarry {
		v |= 0x20
	}
	if f.Carry {
		v |= 0x10
	}
	return v
}

// Load flags from an 8 bit value. Bits 3 to 0 are ignored.
func (f *Flags) Load(v uint8) {
	f.Zero = v&0x80 == 0x80
	f.Subtract = v&0x40 == 0x40
	f.HalfCarry = v&0x20 == 0x20
	f.Carry = v&0x10 == 0x10
}

// Set all four flags at once.
func (f *Flags) Set(zero, subtract, half, carry bool) {
	f.Zero = zero
	f.Subtract = subtract
	f.HalfCarry = half
	f.Carry = carry
}

// Reset all flags to false.
func (f *Flags) Reset() {
	f.Load(0)
}
