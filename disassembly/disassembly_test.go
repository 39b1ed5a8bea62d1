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

package disassembly_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherboy/disassembly"
	"github.com/jetsetilly/gopherboy/test"
)

func cartridge() []uint8 {
	data := make([]uint8, 0x8000)
	copy(data[0x150:], []uint8{
		0x01, 0x34, 0x12, // LD BC,$1234
		0x18, 0xfe, // JR -2
		0xc3, 0x50, 0x01, // JP $0150
		0xcb, 0x7c, // BIT 7,H
	})

	// instruction that runs off the end of the bank
	data[0x7fff] = 0xc3
	return data
}

func TestLinear(t *testing.T) {
	dsm, err := disassembly.FromCartridge(cartridge())
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(dsm.Banks), 2)

	e, ok := dsm.Entry(0, 0x150)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.String(), "LD BC,$1234")
	test.ExpectEquality(t, len(e.Bytes), 3)

	e, ok = dsm.Entry(0, 0x153)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.String(), "JR $0153")

	e, ok = dsm.Entry(0, 0x155)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Mnemonic, "JP")
	test.ExpectEquality(t, e.Operand, "$0150")

	e, ok = dsm.Entry(0, 0x158)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.String(), "BIT 7,H")

	// middle of an instruction
	_, ok = dsm.Entry(0, 0x151)
	test.ExpectFailure(t, ok)

	// second bank is at 0x4000
	e, ok = dsm.Entry(1, 0x4000)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.String(), "NOP")

	e, ok = dsm.Entry(1, 0x7fff)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.String(), "DB $c3")

	_, ok = dsm.Entry(2, 0x4000)
	test.ExpectFailure(t, ok)
}

func TestWrite(t *testing.T) {
	dsm, err := disassembly.FromCartridge(cartridge())
	test.DemandSuccess(t, err)

	var b bytes.Buffer
	test.ExpectSuccess(t, dsm.Write(&b, disassembly.WriteAttr{}))
	s := b.String()
	test.ExpectSuccess(t, strings.Contains(s, "--- bank 0 ---"))
	test.ExpectSuccess(t, strings.Contains(s, "--- bank 1 ---"))
	test.ExpectSuccess(t, strings.Contains(s, "$0150 LD    BC,$1234\n"))

	b.Reset()
	test.ExpectSuccess(t, dsm.WriteBank(&b, disassembly.WriteAttr{ByteCode: true}, 0))
	test.ExpectSuccess(t, strings.Contains(b.String(), "$0150 01 34 12 "))

	test.ExpectFailure(t, dsm.WriteBank(&b, disassembly.WriteAttr{}, 2))
}

func TestGrep(t *testing.T) {
	dsm, err := disassembly.FromCartridge(cartridge())
	test.DemandSuccess(t, err)

	var b bytes.Buffer
	test.ExpectEquality(t, dsm.Grep(&b, disassembly.GrepMnemonic, "jp", false), 1)
	test.ExpectEquality(t, dsm.Grep(&b, disassembly.GrepMnemonic, "jp", true), 0)
	test.ExpectEquality(t, dsm.Grep(&b, disassembly.GrepOperand, "$0153", true), 1)
	test.ExpectEquality(t, dsm.Grep(&b, disassembly.GrepAll, "$1234", true), 1)
}

func TestShortData(t *testing.T) {
	_, err := disassembly.FromCartridge(make([]uint8, 0x100))
	test.ExpectFailure(t, err)
}
