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

package cpu

import (
	"fmt"
	"strings"
)

// Disassemble the instruction at address. The peek function should read
// memory without side effects. Returns the instruction as a string and the
// number of bytes it occupies.
//
// Opcodes without a definition are disassembled as a single data byte.
func Disassemble(peek func(address uint16) uint8, address uint16) (string, int) {
	opcode := peek(address)

	defn := Lookup(opcode, peek(address+1))
	if defn == nil {
		return fmt.Sprintf("DB $%02x", opcode), 1
	}

	if defn.Prefixed {
		return defn.Mnemonic, defn.Bytes
	}

	s := defn.Mnemonic
	lo := peek(address + 1)

	switch defn.Bytes {
	case 3:
		v := uint16(peek(address+2))<<8 | uint16(lo)
		s = strings.Replace(s, "d16", fmt.Sprintf("$%04x", v), 1)
		s = strings.Replace(s, "a16", fmt.Sprintf("$%04x", v), 1)
	case 2:
		switch {
		case strings.Contains(s, "d8"):
			s = strings.Replace(s, "d8", fmt.Sprintf("$%02x", lo), 1)
		case strings.Contains(s, "a8"):
			s = strings.Replace(s, "a8", fmt.Sprintf("$ff%02x", lo), 1)
		case strings.HasPrefix(s, "JR"):
			target := address + 2 + uint16(int8(lo))
			s = strings.Replace(s, "r8", fmt.Sprintf("$%04x", target), 1)
		case strings.Contains(s, "+r8"):
			s = strings.Replace(s, "+r8", fmt.Sprintf("%+d", int8(lo)), 1)
		case strings.Contains(s, "r8"):
			s = strings.Replace(s, "r8", fmt.Sprintf("%d", int8(lo)), 1)
		}
	}

	return s, defn.Bytes
}
