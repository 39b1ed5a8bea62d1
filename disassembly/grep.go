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
	"bytes"
	"fmt"
	"io"
	"strings"
)

// GrepScope limits the scope of the search.
type GrepScope int

// List of available scopes.
const (
	GrepMnemonic GrepScope = iota
	GrepOperand
	GrepAll
)

// Grep searches the disassembly for the specified search string. Matching
// lines are written to output under a header for the bank. Returns the
// number of matches.
func (dsm *Disassembly) Grep(output io.Writer, scope GrepScope, search string, caseSensitive bool) int {
	if !caseSensitive {
		search = strings.ToUpper(search)
	}

	var matches int

	for bank := range dsm.Banks {
		bankHeader := false

		for _, e := range dsm.Banks[bank] {
			line := &bytes.Buffer{}
			dsm.WriteLine(line, WriteAttr{}, e)

			var s string
			switch scope {
			case GrepMnemonic:
				s = e.Mnemonic
			case GrepOperand:
				s = e.Operand
			case GrepAll:
				s = line.String()
			}

			if !caseSensitive {
				s = strings.ToUpper(s)
			}

			if strings.Contains(s, search) {
				if !bankHeader {
					fmt.Fprintf(output, "--- bank %d ---\n", bank)
					bankHeader = true
				}
				_, _ = output.Write(line.Bytes())
				matches++
			}
		}
	}

	return matches
}
