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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/cpu"
	"github.com/jetsetilly/gopherboy/hardware/display"
	"github.com/jetsetilly/gopherboy/hardware/dma"
	"github.com/jetsetilly/gopherboy/hardware/input"
	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/memory"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/hardware/preferences"
	"github.com/jetsetilly/gopherboy/hardware/timer"
	"github.com/jetsetilly/gopherboy/logger"
)

// the value of the internal divider when the boot image hands over to the
// cartridge. DIV reads as 0xab
const postBootDivider = 0xabcc

// Console is the main container for the emulated components of the console.
type Console struct {
	Prefs *preferences.Preferences

	Mem        *memory.Memory
	Interrupts *interrupts.Controller
	CPU        *cpu.CPU
	Timer      *timer.Timer
	DMA        *dma.DMA
	Display    *display.Display
	Joypad     *input.Joypad

	// the number of ticks since the console was reset
	Clock uint64

	// true if the console is running as the colour variant
	Colour bool

	// the console was started with a boot image
	booted bool

	// non-nil after an unrecoverable error
	fault *Fault
}

// NewConsole creates a new console and everything associated with the
// hardware. The boot image can be nil, in which case the CPU is started in
// the state left by the boot image.
func NewConsole(prefs *preferences.Preferences, cartData []uint8, boot []uint8) (*Console, error) {
	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences("")
		if err != nil {
			return nil, fmt.Errorf("hardware: %w", err)
		}
	}

	cart, err := cartridge.NewCartridge(cartData)
	if err != nil {
		return nil, fmt.Errorf("hardware: %w", err)
	}

	con := &Console{
		Prefs:  prefs,
		Colour: cart.Header.Colour && !prefs.ForceDMG.Get().(bool),
		booted: len(boot) > 0,
	}

	con.Mem, err = memory.NewMemory(cart, boot, con.Colour)
	if err != nil {
		return nil, fmt.Errorf("hardware: %w", err)
	}

	con.Interrupts = interrupts.NewController(con.Mem, prefs)
	con.CPU = cpu.NewCPU(prefs, con.Mem, con.Interrupts, con.Colour)
	con.Timer = timer.NewTimer(con.Mem, con.Interrupts)
	con.Display = display.NewDisplay(con.Mem, con.Interrupts)
	con.Joypad = input.NewJoypad(con.Mem, con.Interrupts)

	err = con.Mem.AttachReset(addresses.DIV, con.Timer.ResetDivider)
	if err != nil {
		return nil, fmt.Errorf("hardware: %w", err)
	}

	con.DMA, err = dma.NewDMA(con.Mem, func() bool {
		return con.CPU.DoubleSpeed
	})
	if err != nil {
		return nil, fmt.Errorf("hardware: %w", err)
	}

	con.Reset()

	variant := "monochrome"
	if con.Colour {
		variant = "colour"
	}
	logger.Logf(logger.Allow, "hardware", "%s variant: %s", variant, cart)

	return con, nil
}

func (con *Console) String() string {
	return fmt.Sprintf("clock=%d %s", con.Clock, con.CPU)
}

// Reset the console to its power-on state. Cartridge RAM is retained.
func (con *Console) Reset() {
	con.Clock = 0
	con.fault = nil
	con.Mem.Reset()
	con.DMA.Reset()
	con.Display.Reset()
	con.Joypad.Reset()

	// the boot overlay can not be restored once it has been disabled
	if con.booted && con.Mem.BootActive() {
		con.CPU.Reset()
		con.Timer.ResetDivider()
	} else {
		con.CPU.PostBoot()
		con.Timer.SetDivider(postBootDivider)
	}
}

// Fault returns the most recent unrecoverable error. Returns nil if there
// has been no such error since the last reset.
func (con *Console) Fault() *Fault {
	return con.fault
}

// Plug an input device into the joypad.
func (con *Console) Plug(dev input.Device) {
	con.Joypad.Plug(dev)
}
