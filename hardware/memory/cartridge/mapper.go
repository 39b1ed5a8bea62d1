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

package cartridge

import (
	"github.com/jetsetilly/gopherboy/hardware/memory/bus"
)

// mapper is implemented by the bank controllers.
type mapper interface {
	ID() string

	// the ROM bank visible at 0x0000 and at 0x4000
	romBank0() int
	romBankN() int

	// the RAM bank visible at 0xa000 and whether RAM access is enabled
	ramBank() int
	ramEnabled() bool

	// the regions that receive writes to 0x0000 to 0x7fff. the lengths of the
	// regions must total 0x8000
	registers() []bus.Region

	reset()
}

// noMBC is a cartridge with no bank switching. The ROM is at most 32KiB and
// any RAM is always accessible.
type noMBC struct{}

func (m *noMBC) ID() string {
	return "ROM"
}

func (m *noMBC) romBank0() int {
	return 0
}

func (m *noMBC) romBankN() int {
	return 1
}

func (m *noMBC) ramBank() int {
	return 0
}

func (m *noMBC) ramEnabled() bool {
	return true
}

func (m *noMBC) registers() []bus.Region {
	return []bus.Region{bus.NewUnusable(0x8000)}
}

func (m *noMBC) reset() {
}
