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

package interrupts

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/preferences"
)

// Kind identifies the source of an interrupt. The order of the values is the
// priority order, highest first.
type Kind int

// List of valid Kind values.
const (
	VBlank Kind = iota
	LCDStat
	Timer
	Serial
	Joypad
	NumKinds
)

func (k Kind) String() string {
	switch k {
	case VBlank:
		return "VBlank"
	case LCDStat:
		return "LCDStat"
	case Timer:
		return "Timer"
	case Serial:
		return "Serial"
	case Joypad:
		return "Joypad"
	}
	return "unknown interrupt"
}

// Mask returns the bit in the IF and IE registers for the interrupt.
func (k Kind) Mask() uint8 {
	return 0x01 << k
}

// Vector returns the address of the interrupt handler.
func (k Kind) Vector() uint16 {
	return 0x0040 + uint16(k)*0x08
}

// the bits of IF and IE that are connected.
const bits = 0x1f

// Bus is the memory interface required by the controller.
type Bus interface {
	Peek(address uint16) uint8
	Poke(address uint16, data uint8)
}

// Controller is the interrupt controller.
type Controller struct {
	mem   Bus
	prefs *preferences.Preferences

	// interrupt master enable
	IME bool

	// the number of instruction boundaries before IME is set. the EI
	// instruction sets this to two so that IME becomes set after the
	// instruction following EI
	enableDelay int
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController(mem Bus, prefs *preferences.Preferences) *Controller {
	return &Controller{
		mem:   mem,
		prefs: prefs,
	}
}

func (ic *Controller) String() string {
	ime := 0
	if ic.IME {
		ime = 1
	}
	return fmt.Sprintf("IME=%d IE=%05b IF=%05b", ime, ic.Enabled(), ic.Requested())
}

// Reset the controller. The IF and IE registers are not affected.
func (ic *Controller) Reset() {
	ic.IME = false
	ic.enableDelay = 0
}

// Request an interrupt.
func (ic *Controller) Request(k Kind) {
	ic.mem.Poke(addresses.IF, ic.mem.Peek(addresses.IF)|k.Mask())
}

// Requested returns the request bits.
func (ic *Controller) Requested() uint8 {
	return ic.mem.Peek(addresses.IF) & bits
}

// Enabled returns the enable bits.
func (ic *Controller) Enabled() uint8 {
	return ic.mem.Peek(addresses.IE) & bits
}

// Pending returns the interrupts that are both requested and enabled. IME is
// not considered.
func (ic *Controller) Pending() uint8 {
	return ic.Requested() & ic.Enabled()
}

// Next returns the highest priority pending interrupt. Returns false if
// there is no pending interrupt. IME is not considered.
func (ic *Controller) Next() (Kind, bool) {
	p := ic.Pending()
	for k := VBlank; k < NumKinds; k++ {
		if p&k.Mask() != 0 {
			return k, true
		}
	}
	return NumKinds, false
}

// Acknowledge an interrupt that is about to be serviced. The request bit is
// cleared and IME is reset.
func (ic *Controller) Acknowledge(k Kind) {
	ic.mem.Poke(addresses.IF, ic.mem.Peek(addresses.IF)&^k.Mask())
	if ic.prefs != nil && ic.prefs.Live.LegacyAck.Load() {
		ic.mem.Poke(addresses.IE, ic.mem.Peek(addresses.IE)&^k.Mask())
	}
	ic.IME = false
	ic.enableDelay = 0
}

// EnableMaster sets IME. If delayed is true then IME is set after the next
// instruction has completed.
func (ic *Controller) EnableMaster(delayed bool) {
	if delayed {
		if !ic.IME && ic.enableDelay == 0 {
			ic.enableDelay = 2
		}
		return
	}
	ic.IME = true
	ic.enableDelay = 0
}

// DisableMaster resets IME immediately. Any delayed enable is cancelled.
func (ic *Controller) DisableMaster() {
	ic.IME = false
	ic.enableDelay = 0
}

// AfterInstruction should be called by the CPU at the end of every
// instruction.
func (ic *Controller) AfterInstruction() {
	if ic.enableDelay > 0 {
		ic.enableDelay--
		if ic.enableDelay == 0 {
			ic.IME = true
		}
	}
}
