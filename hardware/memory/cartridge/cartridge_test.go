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

package cartridge_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/test"
)

// makeROM creates cartridge data of the specified number of 16KiB banks. The
// first byte of each bank is the bank number.
func makeROM(banks int, cartType uint8, ramCode uint8) []uint8 {
	data := make([]uint8, banks*0x4000)
	for b := 0; b < banks; b++ {
		data[b*0x4000] = uint8(b)
	}
	copy(data[0x134:], "TESTCART")
	data[0x147] = cartType
	data[0x149] = ramCode

	var x uint8
	for _, b := range data[0x134:0x14d] {
		x = x - b - 1
	}
	data[0x14d] = x

	return data
}

func TestHeader(t *testing.T) {
	data := makeROM(2, 0x03, 0x03)
	data[0x143] = 0x80

	h, err := cartridge.ParseHeader(data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Title, "TESTCART")
	test.ExpectSuccess(t, h.Colour)
	test.ExpectFailure(t, h.ColourOnly)
	test.ExpectSuccess(t, h.HasBattery())
	test.ExpectSuccess(t, h.HasRAM())
	test.ExpectEquality(t, h.RAMSize, 0x8000)

	// the colour byte is part of the checksum so it's now wrong
	test.ExpectFailure(t, h.ChecksumValid)

	_, err = cartridge.ParseHeader(data[:0x100])
	test.ExpectFailure(t, err)
}

func TestNoMBC(t *testing.T) {
	cart, err := cartridge.NewCartridge(makeROM(2, 0x00, 0x00))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, cart.Header.ChecksumValid)
	test.ExpectEquality(t, cart.ID(), "ROM")

	rom := cart.ROM()
	test.ExpectEquality(t, rom.Len(), 0x8000)
	test.ExpectEquality(t, rom.Read(0x4000, false), uint8(1))

	// writes are ignored
	rom.Write(0x2000, []uint8{0x05}, false)
	rom.Write(0x0000, []uint8{0x05}, false)
	test.ExpectEquality(t, rom.Read(0x0000, false), uint8(0))
	test.ExpectEquality(t, rom.Read(0x4000, false), uint8(1))

	// no RAM
	test.ExpectEquality(t, cart.RAM().Read(0, false), uint8(0xff))
	test.ExpectEquality(t, len(cart.BatteryRAM()), 0)
}

func TestMBC1(t *testing.T) {
	cart, err := cartridge.NewCartridge(makeROM(64, 0x03, 0x03))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.ID(), "MBC1")

	rom := cart.ROM()
	ram := cart.RAM()

	// bank 0 is mapped to bank 1
	rom.Write(0x2000, []uint8{0x00}, false)
	test.ExpectEquality(t, rom.Read(0x4000, false), uint8(1))

	rom.Write(0x2000, []uint8{0x05}, false)
	test.ExpectEquality(t, rom.Read(0x4000, false), uint8(5))

	// upper bits
	rom.Write(0x4000, []uint8{0x01}, false)
	test.ExpectEquality(t, rom.Read(0x4000, false), uint8(0x25))

	// bank 0 area only affected in mode 1
	test.ExpectEquality(t, rom.Read(0x0000, false), uint8(0))
	rom.Write(0x6000, []uint8{0x01}, false)
	test.ExpectEquality(t, rom.Read(0x0000, false), uint8(0x20))

	// RAM is disabled at power on
	ram.Write(0, []uint8{0x42}, false)
	test.ExpectEquality(t, ram.Read(0, false), uint8(0xff))

	rom.Write(0x0000, []uint8{0x0a}, false)
	ram.Write(0, []uint8{0x42}, false)
	test.ExpectEquality(t, ram.Read(0, false), uint8(0x42))

	// RAM bank 1 selected (mode 1, bank2 is 1)
	_, _, rb := cart.Banks()
	test.ExpectEquality(t, rb, 1)

	rom.Write(0x4000, []uint8{0x00}, false)
	test.ExpectEquality(t, ram.Read(0, false), uint8(0x00))

	battery := cart.BatteryRAM()
	test.DemandEquality(t, len(battery), 0x8000)
	test.ExpectEquality(t, battery[0x2000], uint8(0x42))

	cart.Reset()
	test.ExpectEquality(t, ram.Read(0, false), uint8(0xff))
	test.ExpectEquality(t, rom.Read(0x4000, false), uint8(1))
}

func TestMBC5(t *testing.T) {
	cart, err := cartridge.NewCartridge(makeROM(512, 0x1a, 0x04))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.ID(), "MBC5")

	rom := cart.ROM()

	// bank 0 is selectable in the switchable area
	rom.Write(0x2000, []uint8{0x00}, false)
	test.ExpectEquality(t, rom.Read(0x4000, false), uint8(0))

	rom.Write(0x2000, []uint8{0xff}, false)
	rom.Write(0x3000, []uint8{0x01}, false)
	_, rn, _ := cart.Banks()
	test.ExpectEquality(t, rn, 0x1ff)
	test.ExpectEquality(t, rom.Read(0x4000, false), uint8(0xff))

	// RAM banking
	ram := cart.RAM()
	rom.Write(0x0000, []uint8{0x0a}, false)
	rom.Write(0x4000, []uint8{0x03}, false)
	ram.Write(0x10, []uint8{0x99}, false)
	rom.Write(0x4000, []uint8{0x00}, false)
	test.ExpectEquality(t, ram.Read(0x10, false), uint8(0x00))
	rom.Write(0x4000, []uint8{0x03}, false)
	test.ExpectEquality(t, ram.Read(0x10, false), uint8(0x99))

	// no battery on this cartridge type
	test.ExpectEquality(t, len(cart.BatteryRAM()), 0)
}

func TestUnsupported(t *testing.T) {
	_, err := cartridge.NewCartridge(makeROM(2, 0x0f, 0x00))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cartridge.UnsupportedCartridge))
}
