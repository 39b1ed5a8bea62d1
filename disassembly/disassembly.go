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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherboy/hardware/cpu"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
)

// Entry is a single disassembled instruction.
type Entry struct {
	Bank    int
	Address uint16
	Bytes   []uint8

	Mnemonic string
	Operand  string
}

func (e Entry) String() string {
	if e.Operand == "" {
		return e.Mnemonic
	}
	return fmt.Sprintf("%s %s", e.Mnemonic, e.Operand)
}

// Disassembly of an entire cartridge image.
type Disassembly struct {
	Header cartridge.Header

	// entries for each bank in address order
	Banks [][]Entry
}

// FromCartridge disassembles the cartridge data.
func FromCartridge(data []uint8) (*Disassembly, error) {
	h, err := cartridge.ParseHeader(data)
	if err != nil {
		return nil, fmt.Errorf("disassembly: %w", err)
	}

	dsm := &Disassembly{Header: h}

	for bank := 0; bank*memorymap.ROMBankSize < len(data); bank++ {
		o := bank * memorymap.ROMBankSize
		d := data[o:min(len(data), o+memorymap.ROMBankSize)]
		dsm.Banks = append(dsm.Banks, linear(bank, d))
	}

	return dsm, nil
}

// origin of the bank when it is visible to the CPU
func origin(bank int) uint16 {
	if bank == 0 {
		return 0x0000
	}
	return memorymap.ROMBankSize
}

func linear(bank int, data []uint8) []Entry {
	org := origin(bank)

	// reads past the end of the bank see zero
	peek := func(address uint16) uint8 {
		i := int(address - org)
		if i < 0 || i >= len(data) {
			return 0
		}
		return data[i]
	}

	var entries []Entry

	for i := 0; i < len(data); {
		address := org + uint16(i)
		s, n := cpu.Disassemble(peek, address)

		// an instruction that runs off the end of the bank is treated as data
		if i+n > len(data) {
			s = fmt.Sprintf("DB $%02x", data[i])
			n = 1
		}

		e := Entry{
			Bank:    bank,
			Address: address,
			Bytes:   data[i : i+n],
		}
		e.Mnemonic, e.Operand, _ = strings.Cut(s, " ")

		entries = append(entries, e)
		i += n
	}

	return entries
}

// Entry returns the entry at the address in the specified bank. Returns
// false if the address is not the start of an instruction.
func (dsm *Disassembly) Entry(bank int, address uint16) (Entry, bool) {
	if bank < 0 || bank >= len(dsm.Banks) {
		return Entry{}, false
	}
	for _, e := range dsm.Banks[bank] {
		if e.Address == address {
			return e, true
		}
		if e.Address > address {
			break
		}
	}
	return Entry{}, false
}
