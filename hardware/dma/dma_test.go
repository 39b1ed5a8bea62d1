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

package dma_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/dma"
	"github.com/jetsetilly/gopherboy/hardware/memory"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/memory/bus"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/test"
)

func newMemory(t *testing.T, colour bool) *memory.Memory {
	t.Helper()

	data := make([]uint8, 0x8000)
	if colour {
		data[0x143] = 0x80
	}

	cart, err := cartridge.NewCartridge(data)
	test.DemandSuccess(t, err)

	mem, err := memory.NewMemory(cart, nil, colour)
	test.DemandSuccess(t, err)

	// source pattern in WRAM
	for i := uint16(0); i < 0x200; i++ {
		mem.Write(0xc000+i, uint8(i)+1)
	}

	return mem
}

func TestOAM(t *testing.T) {
	for _, double := range []bool{false, true} {
		mem := newMemory(t, false)
		d, err := dma.NewDMA(mem, func() bool { return double })
		test.DemandSuccess(t, err)

		delay := dma.OAMDelay
		if double {
			delay = dma.OAMDelayDoubleSpeed
		}

		mem.Write(addresses.DMA, 0xc1)
		test.ExpectEquality(t, mem.Peek(addresses.DMA), uint8(0xc1))
		test.DemandFailure(t, d.Active() == nil)
		test.ExpectEquality(t, d.Active().Mode, dma.OAM)

		for i := 0; i < delay; i++ {
			test.DemandSuccess(t, d.Step(false))
			for j := uint16(0); j < 160; j++ {
				if mem.Peek(0xfe00+j) != 0x00 {
					t.Fatalf("OAM mutated on tick %d", i)
				}
			}
		}

		test.DemandSuccess(t, d.Step(false))
		for j := uint16(0); j < 160; j++ {
			test.ExpectEquality(t, mem.Peek(0xfe00+j), uint8(0x100+j)+1)
		}
		test.ExpectSuccess(t, d.Active() == nil)
	}
}

func TestOAMTwice(t *testing.T) {
	mem := newMemory(t, false)
	d, err := dma.NewDMA(mem, nil)
	test.DemandSuccess(t, err)

	mem.Write(addresses.DMA, 0xc0)
	test.ExpectSuccess(t, d.Step(false))
	mem.Write(addresses.DMA, 0xc1)
	err = d.Step(false)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, bus.IllegalDmaState))
}

func writeHDMA(mem *memory.Memory, src uint16, dst uint16) {
	mem.Write(addresses.HDMA1, uint8(src>>8))
	mem.Write(addresses.HDMA2, uint8(src))
	mem.Write(addresses.HDMA3, uint8(dst>>8))
	mem.Write(addresses.HDMA4, uint8(dst))
}

func TestAtomic(t *testing.T) {
	mem := newMemory(t, true)
	d, err := dma.NewDMA(mem, nil)
	test.DemandSuccess(t, err)

	// low nibble of the source and destination are ignored
	writeHDMA(mem, 0xc00f, 0x0105)
	mem.Write(addresses.HDMA5, 0x01)

	test.ExpectSuccess(t, d.Active() == nil)
	for i := uint16(0); i < 32; i++ {
		test.ExpectEquality(t, mem.Peek(0x8100+i), uint8(i)+1)
	}
	test.ExpectEquality(t, mem.Peek(0x8100+32), uint8(0x00))
	test.ExpectEquality(t, mem.Read(addresses.HDMA5), uint8(0xff))
}

func TestHBlank(t *testing.T) {
	mem := newMemory(t, true)
	d, err := dma.NewDMA(mem, nil)
	test.DemandSuccess(t, err)

	writeHDMA(mem, 0xc000, 0x8000)
	mem.Write(addresses.HDMA5, 0x82)
	test.DemandFailure(t, d.Active() == nil)
	test.ExpectEquality(t, d.Active().Remaining, 48)
	test.ExpectEquality(t, mem.Read(addresses.HDMA5), uint8(0x02))

	// nothing happens until the h-blank signal rises
	test.DemandSuccess(t, d.Step(false))
	test.ExpectEquality(t, mem.Peek(0x8000), uint8(0x00))

	test.DemandSuccess(t, d.Step(true))
	test.ExpectEquality(t, mem.Peek(0x8000), uint8(0x01))
	test.ExpectEquality(t, mem.Peek(0x800f), uint8(0x10))
	test.ExpectEquality(t, mem.Peek(0x8010), uint8(0x00))
	test.ExpectEquality(t, mem.Read(addresses.HDMA5), uint8(0x01))

	// signal held high does not transfer another block
	test.DemandSuccess(t, d.Step(true))
	test.ExpectEquality(t, mem.Peek(0x8010), uint8(0x00))

	test.DemandSuccess(t, d.Step(false))
	test.DemandSuccess(t, d.Step(true))
	test.ExpectEquality(t, mem.Peek(0x801f), uint8(0x20))
	test.ExpectEquality(t, d.Active().Remaining, 16)

	// cancel leaves the last block untouched
	mem.Write(addresses.HDMA5, 0x00)
	test.ExpectSuccess(t, d.Active() == nil)
	test.ExpectEquality(t, mem.Read(addresses.HDMA5), uint8(0x80))

	test.DemandSuccess(t, d.Step(false))
	test.DemandSuccess(t, d.Step(true))
	test.ExpectEquality(t, mem.Peek(0x8020), uint8(0x00))
}

func TestHBlankCompletes(t *testing.T) {
	mem := newMemory(t, true)
	d, err := dma.NewDMA(mem, nil)
	test.DemandSuccess(t, err)

	writeHDMA(mem, 0xc000, 0x9000)
	mem.Write(addresses.HDMA5, 0x80)
	test.DemandSuccess(t, d.Step(true))
	test.ExpectSuccess(t, d.Active() == nil)
	test.ExpectEquality(t, mem.Peek(0x900f), uint8(0x10))
	test.ExpectEquality(t, mem.Read(addresses.HDMA5), uint8(0xff))
}

func TestHBlankWhileOAM(t *testing.T) {
	mem := newMemory(t, true)
	d, err := dma.NewDMA(mem, nil)
	test.DemandSuccess(t, err)

	mem.Write(addresses.DMA, 0xc0)
	writeHDMA(mem, 0xc000, 0x8000)
	mem.Write(addresses.HDMA5, 0x80)
	err = d.Step(false)
	test.ExpectSuccess(t, curated.Has(err, bus.IllegalDmaState))
}
