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

package keyboard

import (
	"fmt"
	"math/bits"
	"os"
	"sync"

	"github.com/pkg/term"
	xterm "golang.org/x/term"

	"github.com/jetsetilly/gopherboy/hardware/clocks"
	"github.com/jetsetilly/gopherboy/hardware/input"
	"github.com/jetsetilly/gopherboy/logger"
)

// DefaultHold is the number of machine cycles a button is held for after a
// key press. Long enough to bridge the gap before the terminal starts
// repeating the key.
const DefaultHold = clocks.MachineCyclesPerFrame * 30

// Keyboard is an implementation of the input.Device interface.
type Keyboard struct {
	tty *term.Term

	presses chan input.Buttons

	quit     chan struct{}
	quitOnce sync.Once

	// the number of polls remaining for each button. indexed by bit number
	hold      [8]int
	holdTicks int
}

func newKeyboard(holdTicks int) *Keyboard {
	return &Keyboard{
		presses:   make(chan input.Buttons, 64),
		quit:      make(chan struct{}),
		holdTicks: holdTicks,
	}
}

// NewKeyboard opens the controlling terminal and puts it into cbreak mode.
// Fails if standard input is not a terminal.
func NewKeyboard(holdTicks int) (*Keyboard, error) {
	if !xterm.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("keyboard: standard input is not a terminal")
	}

	tty, err := term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		return nil, fmt.Errorf("keyboard: %w", err)
	}

	kb := newKeyboard(holdTicks)
	kb.tty = tty

	go kb.read()

	return kb, nil
}

// Close restores the terminal to the state it was in before NewKeyboard().
func (kb *Keyboard) Close() error {
	if kb.tty == nil {
		return nil
	}
	err := kb.tty.Restore()
	if cerr := kb.tty.Close(); err == nil {
		err = cerr
	}
	kb.tty = nil
	if err != nil {
		return fmt.Errorf("keyboard: %w", err)
	}
	return nil
}

// Quit returns a channel that is closed when the quit key is pressed.
func (kb *Keyboard) Quit() <-chan struct{} {
	return kb.quit
}

func (kb *Keyboard) signalQuit() {
	kb.quitOnce.Do(func() {
		close(kb.quit)
	})
}

// read from the terminal until an error. the error is expected when the
// terminal is closed
func (kb *Keyboard) read() {
	var d decoder
	buf := make([]byte, 16)
	for {
		n, err := kb.tty.Read(buf)
		if err != nil {
			logger.Logf(logger.Allow, "keyboard", "read ended: %v", err)
			return
		}
		kb.feed(&d, buf[:n])
	}
}

func (kb *Keyboard) feed(d *decoder, b []byte) {
	for _, c := range b {
		press, quit := d.feed(c)
		if quit {
			kb.signalQuit()
		}
		if press != 0 {
			select {
			case kb.presses <- press:
			default:
				// queue is full. the key will almost certainly repeat
			}
		}
	}
}

// Poll implements the input.Device interface.
func (kb *Keyboard) Poll() (input.Buttons, error) {
	for done := false; !done; {
		select {
		case b := <-kb.presses:
			kb.hold[bits.TrailingZeros8(uint8(b))] = kb.holdTicks
		default:
			done = true
		}
	}

	var state input.Buttons
	for i := range kb.hold {
		if kb.hold[i] > 0 {
			kb.hold[i]--
			state |= input.Buttons(1 << i)
		}
	}

	return state, nil
}
