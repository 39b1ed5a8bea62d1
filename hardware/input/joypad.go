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

package input

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/logger"
)

// Device is implemented by anything that can report the state of the
// buttons. Poll() is called once per machine cycle and so should not block.
type Device interface {
	Poll() (Buttons, error)
}

// Bus is the memory interface required by the joypad.
type Bus interface {
	Peek(address uint16) uint8
	Poke(address uint16, data uint8)
}

// Requester is the interface to the interrupt controller.
type Requester interface {
	Request(k interrupts.Kind)
}

// select bits of the P1 register. the bits are active low
const (
	selectDirections = 0x10
	selectActions    = 0x20
)

// Event is a single button press or release.
type Event struct {
	Button  Buttons
	Pressed bool
}

// Joypad folds the button state into the P1 register.
type Joypad struct {
	mem    Bus
	ic     Requester
	device Device

	// state reported by the device and state accumulated from pushed events
	polled Buttons
	pushed Buttons

	// events pushed from another goroutine
	events chan Event

	// the lower nibble of P1 as of the previous step
	lines uint8
}

// NewJoypad is the preferred method of initialisation for the Joypad type.
func NewJoypad(mem Bus, ic Requester) *Joypad {
	return &Joypad{
		mem:    mem,
		ic:     ic,
		events: make(chan Event, 64),
		lines:  0x0f,
	}
}

func (jp *Joypad) String() string {
	return fmt.Sprintf("P1=%#02x [%s]", jp.mem.Peek(addresses.P1), jp.State())
}

// Plug a Device into the joypad. A nil device unplugs the current device.
func (jp *Joypad) Plug(dev Device) {
	jp.device = dev
	jp.polled = 0
	if dev == nil {
		logger.Log(logger.Allow, "input", "device unplugged")
	} else {
		logger.Logf(logger.Allow, "input", "plugged %T", dev)
	}
}

// Reset releases all buttons.
func (jp *Joypad) Reset() {
	jp.polled = 0
	jp.pushed = 0
	jp.lines = 0x0f
	for {
		select {
		case <-jp.events:
		default:
			return
		}
	}
}

// State returns the buttons currently held down.
func (jp *Joypad) State() Buttons {
	return jp.polled | jp.pushed
}

// Push an event onto the queue. Will drop the event and return an error if
// the queue is full. Safe to call from any goroutine.
func (jp *Joypad) Push(ev Event) error {
	select {
	case jp.events <- ev:
	default:
		return fmt.Errorf("input: pushed event queue is full: input dropped")
	}
	return nil
}

func (jp *Joypad) drainPushed() {
	for {
		select {
		case ev := <-jp.events:
			if ev.Pressed {
				jp.pushed |= ev.Button
			} else {
				jp.pushed &^= ev.Button
			}
		default:
			return
		}
	}
}

// Step polls the plugged device and updates the P1 register.
func (jp *Joypad) Step() error {
	jp.drainPushed()

	if jp.device != nil {
		b, err := jp.device.Poll()
		if err != nil {
			return fmt.Errorf("input: %w", err)
		}
		jp.polled = b
	}

	state := jp.State()
	p1 := jp.mem.Peek(addresses.P1)
	sel := p1 & (selectDirections | selectActions)

	lines := uint8(0x0f)
	if sel&selectDirections == 0 {
		lines &^= uint8(state & directions)
	}
	if sel&selectActions == 0 {
		lines &^= uint8(state&actions) >> 4
	}

	jp.mem.Poke(addresses.P1, 0xc0|sel|lines)

	// high to low transition on any line
	if jp.lines&^lines != 0 {
		jp.ic.Request(interrupts.Joypad)
	}
	jp.lines = lines

	return nil
}
