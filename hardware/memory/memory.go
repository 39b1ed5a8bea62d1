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

package memory

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/memory/bus"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherboy/logger"
)

// Memory is the complete address space of the console.
type Memory struct {
	Cart *cartridge.Cartridge

	colour bool

	space   *bus.Space
	overlay *bus.Overlay

	// registers that have a different effect when written to than when read
	// from. the underlying storage is exposed so that the hardware
	// components can access the values as written
	DMA        *bus.Plain
	HDMA       *bus.Plain
	HDMAStatus *bus.Plain

	KEY1 *bus.Masked
	VBK  *bus.Masked
	SVBK *bus.Masked

	triggers map[uint16]*bus.Trigger
	resets   map[uint16]*bus.Resettable

	// the regions cleared by Reset(). cartridge memory is not included
	volatile []bus.Resetter
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The boot image can be nil, in which case there is no boot overlay.
func NewMemory(cart *cartridge.Cartridge, boot []uint8, colour bool) (*Memory, error) {
	mem := &Memory{
		Cart:     cart,
		colour:   colour,
		DMA:      bus.NewPlain(1),
		HDMA:     bus.NewPlain(4),
		KEY1:     bus.NewMasked(0x00, 0x01, 0x81),
		VBK:      bus.NewMasked(0x00, 0x01, 0x01),
		SVBK:     bus.NewMasked(0x00, 0x07, 0x07),
		triggers: make(map[uint16]*bus.Trigger),
		resets:   make(map[uint16]*bus.Resettable),
	}

	mem.HDMAStatus = bus.NewPlainFrom([]uint8{0xff})

	io, err := mem.buildIO()
	if err != nil {
		return nil, fmt.Errorf("memory: %w", err)
	}

	vramBanks := 1
	wramBanks := 1
	if colour {
		vramBanks = 2
		wramBanks = 7
	}

	vram := bus.NewBanked(memorymap.VRAMBankSize, vramBanks, func() int {
		return int(mem.VBK.Value() & 0x01)
	})

	wram, err := bus.NewSpace(memorymap.WRAMBankSize*2,
		bus.NewPlain(memorymap.WRAMBankSize),
		bus.NewBanked(memorymap.WRAMBankSize, wramBanks, mem.wramBank),
	)
	if err != nil {
		return nil, fmt.Errorf("memory: %w", err)
	}

	oam := bus.NewPlain(int(memorymap.MemtopOAM-memorymap.OriginOAM) + 1)
	hram := bus.NewPlain(int(memorymap.MemtopHRAM-memorymap.OriginHRAM) + 1)
	ie := bus.NewPlain(1)

	mem.space, err = bus.NewSpace(int(memorymap.Memtop)+1,
		cart.ROM(),
		vram,
		cart.RAM(),
		wram,
		bus.NewEcho(wram, int(memorymap.MemtopEcho-memorymap.OriginEcho)+1),
		oam,
		bus.NewUnusable(int(memorymap.MemtopUnusable-memorymap.OriginUnusable)+1),
		io,
		hram,
		ie,
	)
	if err != nil {
		return nil, fmt.Errorf("memory: %w", err)
	}

	// the colour registers are not part of the IO space on the monochrome
	// variant so they are listed separately
	mem.volatile = []bus.Resetter{vram, wram, oam, io, hram, ie, mem.KEY1, mem.VBK, mem.SVBK}

	mem.overlay = bus.NewOverlay(mem.space, boot)

	return mem, nil
}

// the WRAM bank visible at 0xd000. a bank number of zero selects bank one.
// bank numbers are adjusted because bank 0 is always visible at 0xc000
func (mem *Memory) wramBank() int {
	if !mem.colour {
		return 0
	}
	b := int(mem.SVBK.Value() & 0x07)
	if b == 0 {
		b = 1
	}
	return b - 1
}

// ioBuilder assembles the IO region, filling gaps between registers with
// unusable regions.
type ioBuilder struct {
	regions []bus.Region
	next    uint16
}

func (b *ioBuilder) add(address uint16, r bus.Region) {
	b.fill(address)
	b.regions = append(b.regions, r)
	b.next = address + uint16(r.Len())
}

func (b *ioBuilder) fill(address uint16) {
	if address > b.next {
		b.regions = append(b.regions, bus.NewUnusable(int(address-b.next)))
		b.next = address
	}
}

func (mem *Memory) trigger(address uint16, size int, callback func(offset uint16, data uint8)) *bus.Trigger {
	t := bus.NewTrigger(size, callback)
	mem.triggers[address] = t
	return t
}

func (mem *Memory) buildIO() (*bus.Space, error) {
	b := &ioBuilder{next: memorymap.OriginIO}

	b.add(addresses.P1, bus.NewMasked(0x0f, 0x30, 0x3f))
	b.add(addresses.SB, bus.NewPlain(1))
	if mem.colour {
		b.add(addresses.SC, bus.NewMasked(0x00, 0x83, 0x83))
	} else {
		b.add(addresses.SC, bus.NewMasked(0x00, 0x81, 0x81))
	}

	div := bus.NewResettable(0x00, nil)
	mem.resets[addresses.DIV] = div
	b.add(addresses.DIV, div)
	b.add(addresses.TIMA, bus.NewPlain(2))
	b.add(addresses.TAC, bus.NewMasked(0x00, 0x07, 0x07))
	b.add(addresses.IF, bus.NewMasked(0x00, 0x1f, 0x1f))

	// sound registers and wave RAM. sound is not emulated but the values are
	// stored so that they can be read back
	b.add(0xff10, bus.NewPlain(0x30))

	b.add(addresses.LCDC, bus.NewPlain(1))
	b.add(addresses.STAT, bus.NewMasked(0x00, 0x78, 0x7f))
	b.add(addresses.SCY, bus.NewPlain(2))
	b.add(addresses.LY, bus.NewMasked(0x00, 0x00, 0xff))
	b.add(addresses.LYC, bus.NewPlain(1))

	dma, err := bus.NewDisjoint(mem.DMA, mem.trigger(addresses.DMA, 1, nil))
	if err != nil {
		return nil, err
	}
	b.add(addresses.DMA, dma)

	b.add(addresses.BGP, bus.NewPlain(5))

	if mem.colour {
		b.add(addresses.KEY1, mem.KEY1)
		b.add(addresses.VBK, mem.VBK)
	}

	b.add(addresses.BOOT, bus.NewTrigger(1, func(_ uint16, _ uint8) {
		if mem.overlay.Active() {
			logger.Log(logger.Allow, "memory", "boot overlay disabled")
		}
		mem.overlay.Disable()
	}))

	if mem.colour {
		hdma, err := bus.NewDisjoint(bus.NewUnusable(4), mem.HDMA)
		if err != nil {
			return nil, err
		}
		b.add(addresses.HDMA1, hdma)

		hdma5, err := bus.NewDisjoint(mem.HDMAStatus, mem.trigger(addresses.HDMA5, 1, nil))
		if err != nil {
			return nil, err
		}
		b.add(addresses.HDMA5, hdma5)

		b.add(addresses.BCPS, bus.NewPlain(4))
		b.add(addresses.SVBK, mem.SVBK)
	}

	b.fill(memorymap.MemtopIO + 1)

	return bus.NewSpace(int(memorymap.MemtopIO-memorymap.OriginIO)+1, b.regions...)
}

// Reset returns RAM and the IO registers to their power-on state and resets
// the cartridge bank controller. Cartridge RAM is preserved. The boot overlay
// is not affected.
func (mem *Memory) Reset() {
	for _, r := range mem.volatile {
		r.Reset()
	}
	mem.HDMAStatus.Write(0, []uint8{0xff}, true)
	mem.Cart.Reset()
}

// Colour returns true if the memory has been created for the colour variant
// of the console.
func (mem *Memory) Colour() bool {
	return mem.colour
}

// BootActive returns true if the boot image is visible.
func (mem *Memory) BootActive() bool {
	return mem.overlay.Active()
}

// Region returns the complete address space as a single region.
func (mem *Memory) Region() bus.Region {
	return mem.overlay
}

// Attach a callback to a memory mapped trigger register. The callback is
// called when the CPU writes to the register.
func (mem *Memory) Attach(address uint16, callback func(data uint8)) error {
	t, ok := mem.triggers[address]
	if !ok {
		return fmt.Errorf("memory: no trigger register at %#04x", address)
	}
	t.SetCallback(func(_ uint16, data uint8) {
		callback(data)
	})
	return nil
}

// AttachReset attaches a callback to a resettable register. The callback is
// called after the CPU has written to the register.
func (mem *Memory) AttachReset(address uint16, callback func()) error {
	r, ok := mem.resets[address]
	if !ok {
		return fmt.Errorf("memory: no resettable register at %#04x", address)
	}
	r.SetCallback(callback)
	return nil
}

// Read is a mediated read of the address.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.overlay.Read(address, false)
}

// Write is a mediated write to the address.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.overlay.Write(address, []uint8{data}, false)
}

// ReadShort is a mediated read of a little-endian 16 bit value.
func (mem *Memory) ReadShort(address uint16) uint16 {
	return bus.ReadShort(mem.overlay, address, false)
}

// WriteShort is a mediated write of a little-endian 16 bit value. The low
// byte is written first.
func (mem *Memory) WriteShort(address uint16, data uint16) {
	mem.overlay.Write(address, []uint8{uint8(data)}, false)
	mem.overlay.Write(address+1, []uint8{uint8(data >> 8)}, false)
}

// Peek is a direct read of the address. There are no side effects.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.overlay.Read(address, true)
}

// Poke is a direct write to the address. Masks are ignored and there are no
// side effects.
func (mem *Memory) Poke(address uint16, data uint8) {
	mem.overlay.Write(address, []uint8{data}, true)
}

// ReadRange returns a copy of the inclusive address range. Direct access is
// used.
func (mem *Memory) ReadRange(lo uint16, hi uint16) []uint8 {
	return bus.ReadRange(mem.overlay, lo, hi)
}
