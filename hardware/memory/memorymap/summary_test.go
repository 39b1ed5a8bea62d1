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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherboy/test"
)

func TestSummary(t *testing.T) {
	expected := "0000 -> 7fff\tROM\n" +
		"8000 -> 9fff\tVRAM\n" +
		"a000 -> bfff\tCartridge RAM\n" +
		"c000 -> dfff\tWRAM\n" +
		"e000 -> fdff\tEcho\n" +
		"fe00 -> fe9f\tOAM\n" +
		"fea0 -> feff\tUnusable\n" +
		"ff00 -> ff7f\tIO\n" +
		"ff80 -> fffe\tHRAM\n" +
		"ffff -> ffff\tIE\n"

	test.ExpectEquality(t, memorymap.Summary(), expected)
}

func TestMapAddress(t *testing.T) {
	test.ExpectEquality(t, memorymap.MapAddress(0x4000), memorymap.ROM)
	test.ExpectEquality(t, memorymap.MapAddress(0xfe00), memorymap.OAM)
	test.ExpectEquality(t, memorymap.MapAddress(0xff0f), memorymap.IO)
	test.ExpectEquality(t, memorymap.MapAddress(0xffff), memorymap.IE)
}
