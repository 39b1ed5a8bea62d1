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

// Package timer implements the divider and the programmable timer.
//
// The divider is a free running 16 bit counter, incremented once per machine
// cycle. Only the upper 8 bits are visible, through the DIV register. Any
// write to DIV by the CPU resets the entire counter.
//
// The timer counter (TIMA) is incremented whenever the divider reaches a
// multiple of the rate selected by the TAC register. When the counter
// overflows it is reloaded from the modulo register (TMA) and a timer
// interrupt is requested.
package timer

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
)

// Rate is the number of machine cycles between increments of the timer
// counter.
type Rate uint16

// Rates are the four rates selectable by the lower two bits of TAC.
var Rates = [4]Rate{1024, 16, 64, 256}

// the enable bit in the TAC register
const tacEnable = 0x04

// Bus is the memory interface required by the timer.
type Bus interface {
	Peek(address uint16) uint8
	Poke(address uint16, data uint8)
}

// Requester is the interface to the interrupt controller.
type Requester interface {
	Request(k interrupts.Kind)
}

// Timer implements the divider and timer registers.
type Timer struct {
	mem Bus
	ic  Requester

	// the internal divider. DIV is the upper byte
	divider uint16
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer(mem Bus, ic Requester) *Timer {
	return &Timer{mem: mem, ic: ic}
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("div=%#04x TIMA=%#02x TMA=%#02x TAC=%#02x",
		tmr.divider,
		tmr.mem.Peek(addresses.TIMA),
		tmr.mem.Peek(addresses.TMA),
		tmr.mem.Peek(addresses.TAC),
	)
}

// Divider returns the value of the internal divider.
func (tmr *Timer) Divider() uint16 {
	return tmr.divider
}

// SetDivider changes the value of the internal divider. Used to set the
// post-boot state of the hardware.
func (tmr *Timer) SetDivider(v uint16) {
	tmr.divider = v
	tmr.mem.Poke(addresses.DIV, uint8(tmr.divider>>8))
}

// ResetDivider is called when the CPU writes to the DIV register.
func (tmr *Timer) ResetDivider() {
	tmr.SetDivider(0)
}

// Enabled returns true if the timer counter is running.
func (tmr *Timer) Enabled() bool {
	return tmr.mem.Peek(addresses.TAC)&tacEnable == tacEnable
}

// Rate returns the currently selected rate.
func (tmr *Timer) Rate() Rate {
	return Rates[tmr.mem.Peek(addresses.TAC)&0x03]
}

// Step the timer forward one machine cycle.
func (tmr *Timer) Step() {
	tmr.divider++
	tmr.mem.Poke(addresses.DIV, uint8(tmr.divider>>8))

	if !tmr.Enabled() {
		return
	}

	if tmr.divider%uint16(tmr.Rate()) != 0 {
		return
	}

	tima := tmr.mem.Peek(addresses.TIMA) + 1
	if tima == 0 {
		tima = tmr.mem.Peek(addresses.TMA)
		tmr.ic.Request(interrupts.Timer)
	}
	tmr.mem.Poke(addresses.TIMA, tima)
}
