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
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/memory/bus"
)

type flavour int

const (
	mbc1 flavour = iota
	mbc5
)

// mbc is the general switchable bank controller. The two flavours differ in
// the layout of the controller registers and the width of the bank numbers.
type mbc struct {
	flavour flavour

	ramEnable bool

	// for MBC1 bank1 is the 5 bit ROM bank register and bank2 is the 2 bit
	// register used as either the RAM bank or the upper ROM bits. mode
	// selects between the two uses of bank2
	//
	// for MBC5 bank1 is the 9 bit ROM bank and bank2 is the 4 bit RAM bank
	bank1 int
	bank2 int
	mode  int
}

func newMBC(f flavour) *mbc {
	m := &mbc{flavour: f}
	m.reset()
	return m
}

func (m *mbc) String() string {
	return fmt.Sprintf("%s rom=%d ram=%d enabled=%v", m.ID(), m.romBankN(), m.ramBank(), m.ramEnable)
}

func (m *mbc) ID() string {
	switch m.flavour {
	case mbc1:
		return "MBC1"
	case mbc5:
		return "MBC5"
	}
	return "MBC"
}

func (m *mbc) reset() {
	m.ramEnable = false
	m.bank1 = 1
	m.bank2 = 0
	m.mode = 0
}

func (m *mbc) romBank0() int {
	if m.flavour == mbc1 && m.mode == 1 {
		return m.bank2 << 5
	}
	return 0
}

func (m *mbc) romBankN() int {
	if m.flavour == mbc1 {
		return m.bank2<<5 | m.bank1
	}
	return m.bank1
}

func (m *mbc) ramBank() int {
	if m.flavour == mbc1 && m.mode == 0 {
		return 0
	}
	return m.bank2
}

func (m *mbc) ramEnabled() bool {
	return m.ramEnable
}

func (m *mbc) registers() []bus.Region {
	enable := bus.NewTrigger(0x2000, func(_ uint16, data uint8) {
		m.ramEnable = data&0x0f == 0x0a
	})

	switch m.flavour {
	case mbc5:
		return []bus.Region{
			enable,
			bus.NewTrigger(0x1000, func(_ uint16, data uint8) {
				m.bank1 = m.bank1&0x100 | int(data)
			}),
			bus.NewTrigger(0x1000, func(_ uint16, data uint8) {
				m.bank1 = m.bank1&0xff | int(data&0x01)<<8
			}),
			bus.NewTrigger(0x2000, func(_ uint16, data uint8) {
				m.bank2 = int(data & 0x0f)
			}),
			bus.NewUnusable(0x2000),
		}
	}

	return []bus.Region{
		enable,
		bus.NewTrigger(0x2000, func(_ uint16, data uint8) {
			m.bank1 = int(data & 0x1f)
			if m.bank1 == 0 {
				m.bank1 = 1
			}
		}),
		bus.NewTrigger(0x2000, func(_ uint16, data uint8) {
			m.bank2 = int(data & 0x03)
		}),
		bus.NewTrigger(0x2000, func(_ uint16, data uint8) {
			m.mode = int(data & 0x01)
		}),
	}
}
