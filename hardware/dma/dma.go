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

package dma

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/memory"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/memory/bus"
	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherboy/logger"
)

// Mode of a transfer.
type Mode int

// List of valid Mode values.
const (
	OAM Mode = iota
	HBlank
)

func (m Mode) String() string {
	switch m {
	case OAM:
		return "OAM"
	case HBlank:
		return "HBlank"
	}
	return "unknown"
}

// Delays before an OAM transfer takes place, measured in ticks.
const (
	OAMDelay            = 640
	OAMDelayDoubleSpeed = 320
)

// the number of bytes in an OAM transfer
const oamLength = 160

// the number of bytes in a single block of a VRAM transfer
const blockLength = 16

// Transfer describes an in-flight transfer.
type Transfer struct {
	Mode        Mode
	Source      uint16
	Destination uint16
	Remaining   int

	// the tick on which the transfer was started and the number of ticks that
	// must elapse before an OAM transfer happens
	Start uint64
	Delay uint64
}

func (t Transfer) String() string {
	return fmt.Sprintf("%s %#04x -> %#04x (%d remaining)", t.Mode, t.Source, t.Destination, t.Remaining)
}

// DMA is the transfer engine.
type DMA struct {
	mem *memory.Memory

	// returns true if the CPU is in double speed mode
	doubleSpeed func() bool

	// the number of times Step() has been called
	ticks uint64

	active *Transfer

	// the h-blank signal on the previous tick. transfers happen on the rising
	// edge of the signal
	hblank bool

	// error caused by a register write. returned by the next call to Step()
	err error
}

// NewDMA is the preferred method of initialisation for the DMA type. The
// doubleSpeed function can be nil.
func NewDMA(mem *memory.Memory, doubleSpeed func() bool) (*DMA, error) {
	dma := &DMA{
		mem:         mem,
		doubleSpeed: doubleSpeed,
	}

	if dma.doubleSpeed == nil {
		dma.doubleSpeed = func() bool { return false }
	}

	err := mem.Attach(addresses.DMA, dma.startOAM)
	if err != nil {
		return nil, fmt.Errorf("dma: %w", err)
	}

	if mem.Colour() {
		err := mem.Attach(addresses.HDMA5, dma.startVRAM)
		if err != nil {
			return nil, fmt.Errorf("dma: %w", err)
		}
	}

	return dma, nil
}

func (dma *DMA) String() string {
	if dma.active == nil {
		return "idle"
	}
	return dma.active.String()
}

// Reset the DMA engine. Any transfer in progress is forgotten.
func (dma *DMA) Reset() {
	dma.ticks = 0
	dma.active = nil
	dma.hblank = false
	dma.err = nil
	dma.mem.HDMAStatus.Write(0, []uint8{0xff}, true)
}

// Active returns a copy of the transfer in flight. Returns nil if there is no
// transfer in progress.
func (dma *DMA) Active() *Transfer {
	if dma.active == nil {
		return nil
	}
	t := *dma.active
	return &t
}

// the callback for writes to the DMA register
func (dma *DMA) startOAM(data uint8) {
	dma.mem.DMA.Write(0, []uint8{data}, true)

	if dma.active != nil {
		dma.fault(fmt.Sprintf("OAM transfer started while %s transfer is active", dma.active.Mode))
		return
	}

	dma.active = &Transfer{
		Mode:        OAM,
		Source:      uint16(data) << 8,
		Destination: memorymap.OriginOAM,
		Remaining:   oamLength,
		Start:       dma.ticks,
		Delay:       OAMDelay,
	}
	if dma.doubleSpeed() {
		dma.active.Delay = OAMDelayDoubleSpeed
	}
}

// the callback for writes to the HDMA5 register
func (dma *DMA) startVRAM(data uint8) {
	if data&0x80 == 0x00 {
		if dma.active != nil && dma.active.Mode == HBlank {
			dma.cancel()
			return
		}
		dma.atomic(int(data&0x7f+1) * blockLength)
		return
	}

	if dma.active != nil {
		dma.fault(fmt.Sprintf("HBlank transfer started while %s transfer is active", dma.active.Mode))
		return
	}

	src, dst := dma.vramAddresses()
	dma.active = &Transfer{
		Mode:        HBlank,
		Source:      src,
		Destination: dst,
		Remaining:   int(data&0x7f+1) * blockLength,
		Start:       dma.ticks,
	}
	dma.updateStatus()
}

// the source and destination addresses as specified by the HDMA registers
func (dma *DMA) vramAddresses() (uint16, uint16) {
	r := dma.mem.HDMA.Data()
	src := (uint16(r[0])<<8 | uint16(r[1])) & 0xfff0
	dst := memorymap.OriginVRAM | (uint16(r[2])<<8|uint16(r[3]))&0x1ff0
	return src, dst
}

func (dma *DMA) atomic(length int) {
	src, dst := dma.vramAddresses()
	dma.copy(src, dst, length)
	dma.mem.HDMAStatus.Write(0, []uint8{0xff}, true)
}

func (dma *DMA) cancel() {
	logger.Logf(logger.Allow, "dma", "HBlank transfer cancelled with %d bytes remaining", dma.active.Remaining)
	blocks := dma.active.Remaining / blockLength
	dma.mem.HDMAStatus.Write(0, []uint8{0x80 | uint8(blocks-1)&0x7f}, true)
	dma.active = nil
}

func (dma *DMA) updateStatus() {
	if dma.active == nil || dma.active.Remaining <= 0 {
		dma.mem.HDMAStatus.Write(0, []uint8{0xff}, true)
		return
	}
	blocks := dma.active.Remaining / blockLength
	dma.mem.HDMAStatus.Write(0, []uint8{uint8(blocks-1) & 0x7f}, true)
}

func (dma *DMA) fault(detail string) {
	if dma.err == nil {
		dma.err = curated.Errorf(bus.IllegalDmaState, detail)
	}
}

// copy length bytes. reads from the source are mediated and writes to the
// destination are direct. VRAM destinations wrap inside VRAM
func (dma *DMA) copy(src uint16, dst uint16, length int) {
	for i := 0; i < length; i++ {
		d := dst + uint16(i)
		if dst >= memorymap.OriginVRAM && dst <= memorymap.MemtopVRAM {
			d = memorymap.OriginVRAM | (d & 0x1fff)
		}
		dma.mem.Poke(d, dma.mem.Read(src+uint16(i)))
	}
}

// Step the DMA engine forward one tick. The hblank argument is the state of
// the h-blank signal from the display.
func (dma *DMA) Step(hblank bool) error {
	defer func() {
		dma.ticks++
	}()

	if dma.err != nil {
		err := dma.err
		dma.err = nil
		return fmt.Errorf("dma: %w", err)
	}

	rising := hblank && !dma.hblank
	dma.hblank = hblank

	if dma.active == nil {
		return nil
	}

	switch dma.active.Mode {
	case OAM:
		if dma.ticks-dma.active.Start >= dma.active.Delay {
			dma.copy(dma.active.Source, dma.active.Destination, dma.active.Remaining)
			dma.active = nil
		}
	case HBlank:
		if rising {
			n := min(blockLength, dma.active.Remaining)
			dma.copy(dma.active.Source, dma.active.Destination, n)
			dma.active.Source += uint16(n)
			dma.active.Destination = memorymap.OriginVRAM | (dma.active.Destination+uint16(n))&0x1fff
			dma.active.Remaining -= n
			if dma.active.Remaining <= 0 {
				dma.active = nil
			}
			dma.updateStatus()
		}
	}

	return nil
}
