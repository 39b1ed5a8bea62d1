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
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	fmt.Fprintf(output, "; %s\n", dsm.Header)
	for bank := range dsm.Banks {
		if err := dsm.WriteBank(output, attr, bank); err != nil {
			return err
		}
	}
	return nil
}

// WriteBank writes the disassembly of the selected bank to io.Writer.
func (dsm *Disassembly) WriteBank(output io.Writer, attr WriteAttr, bank int) error {
	if bank < 0 || bank >= len(dsm.Banks) {
		return fmt.Errorf("disassembly: no such bank (%d)", bank)
	}

	fmt.Fprintf(output, "--- bank %d ---\n", bank)
	for _, e := range dsm.Banks[bank] {
		dsm.WriteLine(output, attr, e)
	}

	return nil
}

// WriteLine writes a single entry to io.Writer.
func (dsm *Disassembly) WriteLine(output io.Writer, attr WriteAttr, e Entry) {
	fmt.Fprintf(output, "$%04x ", e.Address)

	if attr.ByteCode {
		var b strings.Builder
		for _, v := range e.Bytes {
			fmt.Fprintf(&b, "%02x ", v)
		}
		fmt.Fprintf(output, "%-9s ", b.String())
	}

	fmt.Fprintf(output, "%-5s %s\n", e.Mnemonic, e.Operand)
}
