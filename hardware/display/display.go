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

package display

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
)

// Timing of the display, measured in machine cycles and scanlines.
const (
	CyclesPerScanline = 114
	ScanlinesPerFrame = 154
	VisibleScanlines  = 144

	oamCycles      = 20
	transferCycles = 43
)

// Mode of the display as reported by the lower two bits of STAT.
type Mode uint8

// List of valid Mode values.
const (
	ModeHBlank Mode = iota
	ModeVBlank
	ModeOAM
	ModeTransfer
)

func (m Mode) String() string {
	switch m {
	case ModeHBlank:
		return "hblank"
	case ModeVBlank:
		return "vblank"
	case ModeOAM:
		return "oam"
	case ModeTransfer:
		return "transfer"
	}
	return "unknown"
}

// bits in the STAT register
const (
	statMode        = 0x03
	statCoincidence = 0x04
	statHBlankInt   = 0x08
	statVBlankInt   = 0x10
	statOAMInt      = 0x20
	statLYCInt      = 0x40
)

// the display enable bit in LCDC
const lcdcEnable = 0x80

// Renderer implementations are notified of frame and scanline events.
type Renderer interface {
	// NewFrame is called at the start of the v-blank
	NewFrame(frameNum int) error

	// NewScanline is called at the start of the h-blank of every visible
	// scanline
	NewScanline(scanline int) error
}

// Bus is the memory interface required by the display.
type Bus interface {
	Peek(address uint16) uint8
	Poke(address uint16, data uint8)
}

// Requester is the interface to the interrupt controller.
type Requester interface {
	Request(k interrupts.Kind)
}

// Display is the timing component of the LCD controller.
type Display struct {
	mem Bus
	ic  Requester

	renderers []Renderer

	scanline int
	cycle    int
	mode     Mode

	// the number of frames since the display was last reset
	frameNum int

	// the combined STAT interrupt line. an interrupt is requested only on
	// the rising edge
	statLine bool
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay(mem Bus, ic Requester) *Display {
	dsp := &Display{
		mem: mem,
		ic:  ic,
	}
	dsp.Reset()
	return dsp
}

func (dsp *Display) String() string {
	return fmt.Sprintf("frame=%d scanline=%d cycle=%d mode=%s", dsp.frameNum, dsp.scanline, dsp.cycle, dsp.mode)
}

// AddRenderer adds a renderer to the list of renderers.
func (dsp *Display) AddRenderer(r Renderer) {
	for _, e := range dsp.renderers {
		if e == r {
			return
		}
	}
	dsp.renderers = append(dsp.renderers, r)
}

// RemoveRenderer removes a renderer from the list of renderers.
func (dsp *Display) RemoveRenderer(r Renderer) {
	for i, e := range dsp.renderers {
		if e == r {
			dsp.renderers = append(dsp.renderers[:i], dsp.renderers[i+1:]...)
			return
		}
	}
}

// Reset the display to the start of the first frame.
func (dsp *Display) Reset() {
	dsp.scanline = 0
	dsp.cycle = 0
	dsp.mode = ModeOAM
	dsp.frameNum = 0
	dsp.statLine = false
}

// Scanline returns the current scanline.
func (dsp *Display) Scanline() int {
	return dsp.scanline
}

// Frame returns the number of frames since the last reset.
func (dsp *Display) Frame() int {
	return dsp.frameNum
}

// Mode returns the current mode.
func (dsp *Display) Mode() Mode {
	return dsp.mode
}

// Enabled returns true if the display is switched on by LCDC.
func (dsp *Display) Enabled() bool {
	return dsp.mem.Peek(addresses.LCDC)&lcdcEnable == lcdcEnable
}

// HBlank returns true during the h-blank window of a visible scanline. Always
// false if the display is switched off.
func (dsp *Display) HBlank() bool {
	return dsp.Enabled() && dsp.mode == ModeHBlank && dsp.scanline < VisibleScanlines
}

// Step the display forward one machine cycle.
func (dsp *Display) Step() error {
	if !dsp.Enabled() {
		// with the display off, LY is held at zero and the mode is reported
		// as h-blank. the frame restarts when the display is switched on
		if dsp.scanline != 0 || dsp.cycle != 0 || dsp.mode != ModeHBlank {
			dsp.scanline = 0
			dsp.cycle = 0
			dsp.mode = ModeHBlank
			dsp.mem.Poke(addresses.LY, 0)
			dsp.updateStat(false)
		}
		return nil
	}

	// switched on after being switched off
	if dsp.scanline == 0 && dsp.cycle == 0 {
		dsp.mode = ModeOAM
		dsp.mem.Poke(addresses.LY, 0)
	}

	var mode Mode
	switch {
	case dsp.scanline >= VisibleScanlines:
		mode = ModeVBlank
	case dsp.cycle < oamCycles:
		mode = ModeOAM
	case dsp.cycle < oamCycles+transferCycles:
		mode = ModeTransfer
	default:
		mode = ModeHBlank
	}

	if mode != dsp.mode {
		dsp.mode = mode
		switch mode {
		case ModeHBlank:
			for _, r := range dsp.renderers {
				if err := r.NewScanline(dsp.scanline); err != nil {
					return fmt.Errorf("display: %w", err)
				}
			}
		case ModeVBlank:
			dsp.frameNum++
			dsp.ic.Request(interrupts.VBlank)
			for _, r := range dsp.renderers {
				if err := r.NewFrame(dsp.frameNum); err != nil {
					return fmt.Errorf("display: %w", err)
				}
			}
		}
	}

	dsp.updateStat(true)

	dsp.cycle++
	if dsp.cycle >= CyclesPerScanline {
		dsp.cycle = 0
		dsp.scanline++
		if dsp.scanline >= ScanlinesPerFrame {
			dsp.scanline = 0
		}
		dsp.mem.Poke(addresses.LY, uint8(dsp.scanline))
	}

	return nil
}

// update the mode and coincidence bits in STAT and request the LCDStat
// interrupt on the rising edge of the combined interrupt line
func (dsp *Display) updateStat(enabled bool) {
	stat := dsp.mem.Peek(addresses.STAT) &^ (statMode | statCoincidence)
	stat |= uint8(dsp.mode)

	if dsp.mem.Peek(addresses.LY) == dsp.mem.Peek(addresses.LYC) {
		stat |= statCoincidence
	}

	dsp.mem.Poke(addresses.STAT, stat)

	line := false
	if enabled {
		line = (stat&statLYCInt == statLYCInt && stat&statCoincidence == statCoincidence) ||
			(stat&statHBlankInt == statHBlankInt && dsp.mode == ModeHBlank) ||
			(stat&statVBlankInt == statVBlankInt && dsp.mode == ModeVBlank) ||
			(stat&statOAMInt == statOAMInt && dsp.mode == ModeOAM)
	}

	if line && !dsp.statLine {
		dsp.ic.Request(interrupts.LCDStat)
	}
	dsp.statLine = line
}
