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

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/memory/bus"
	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherboy/logger"
)

// UnsupportedCartridge is the pattern for errors caused by cartridge types
// that have no implementation.
const UnsupportedCartridge = "cartridge: unsupported cartridge type (%s)"

// Cartridge defines the information and operations for a cartridge.
type Cartridge struct {
	Header Header

	mapper mapper

	rom *bus.Disjoint

	// ram is nil if the cartridge has no RAM
	ram *bus.Banked
}

// NewCartridge creates a Cartridge from the cartridge data.
func NewCartridge(data []uint8) (*Cartridge, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	if !h.ChecksumValid {
		logger.Logf(logger.Allow, "cartridge", "header checksum mismatch for %s", h.Title)
	}

	cart := &Cartridge{Header: h}

	switch h.Type {
	case 0x00, 0x08, 0x09:
		cart.mapper = &noMBC{}
	case 0x01, 0x02, 0x03:
		cart.mapper = newMBC(mbc1)
	case 0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e:
		cart.mapper = newMBC(mbc5)
	default:
		return nil, curated.Errorf(UnsupportedCartridge, typeName(h.Type))
	}

	// divide data into banks. the final bank is padded if necessary and
	// there are always at least two banks
	numBanks := max(2, (len(data)+memorymap.ROMBankSize-1)/memorymap.ROMBankSize)
	banks := make([][]uint8, numBanks)
	for i := range banks {
		banks[i] = make([]uint8, memorymap.ROMBankSize)
		if o := i * memorymap.ROMBankSize; o < len(data) {
			copy(banks[i], data[o:])
		}
	}

	read, err := bus.NewSpace(0x8000,
		bus.NewBankedFrom(banks, memorymap.ROMBankSize, cart.mapper.romBank0),
		bus.NewBankedFrom(banks, memorymap.ROMBankSize, cart.mapper.romBankN),
	)
	if err != nil {
		return nil, fmt.Errorf("cartridge: %w", err)
	}

	write, err := bus.NewSpace(0x8000, cart.mapper.registers()...)
	if err != nil {
		return nil, fmt.Errorf("cartridge: %w", err)
	}

	cart.rom, err = bus.NewDisjoint(read, write)
	if err != nil {
		return nil, fmt.Errorf("cartridge: %w", err)
	}

	if h.HasRAM() {
		cart.ram = bus.NewBanked(memorymap.RAMBankSize, h.RAMSize/memorymap.RAMBankSize, cart.mapper.ramBank)
		cart.ram.SetToggle(cart.mapper.ramEnabled)
	}

	logger.Logf(logger.Allow, "cartridge", "%s: %d ROM banks, %d bytes RAM", h, numBanks, h.RAMSize)

	return cart, nil
}

func (cart *Cartridge) String() string {
	return cart.Header.String()
}

// ID returns the name of the bank controller.
func (cart *Cartridge) ID() string {
	return cart.mapper.ID()
}

// ROM returns the region that covers 0x0000 to 0x7fff.
func (cart *Cartridge) ROM() bus.Region {
	return cart.rom
}

// RAM returns the region that covers 0xa000 to 0xbfff.
func (cart *Cartridge) RAM() bus.Region {
	if cart.ram == nil {
		return bus.NewUnusable(memorymap.RAMBankSize)
	}
	return cart.ram
}

// BatteryRAM returns a copy of the battery backed RAM. Returns nil if the
// cartridge has no battery.
func (cart *Cartridge) BatteryRAM() []uint8 {
	if cart.ram == nil || !cart.Header.HasBattery() {
		return nil
	}
	d := make([]uint8, 0, cart.ram.NumBanks()*memorymap.RAMBankSize)
	for i := 0; i < cart.ram.NumBanks(); i++ {
		d = append(d, cart.ram.BankData(i)...)
	}
	return d
}

// Banks returns the currently selected ROM and RAM banks.
func (cart *Cartridge) Banks() (rom0 int, romN int, ram int) {
	return cart.mapper.romBank0(), cart.mapper.romBankN(), cart.mapper.ramBank()
}

// Reset the bank controller to its power-on state. RAM contents are
// preserved.
func (cart *Cartridge) Reset() {
	cart.mapper.reset()
}
