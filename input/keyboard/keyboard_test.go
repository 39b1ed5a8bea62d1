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
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/input"
	"github.com/jetsetilly/gopherboy/test"
)

func TestDecoder(t *testing.T) {
	var d decoder

	feed := func(s string) input.Buttons {
		var b input.Buttons
		for _, c := range []byte(s) {
			p, _ := d.feed(c)
			b |= p
		}
		return b
	}

	test.ExpectEquality(t, feed("w"), input.Up)
	test.ExpectEquality(t, feed("D"), input.Right)
	test.ExpectEquality(t, feed("xz"), input.A|input.B)
	test.ExpectEquality(t, feed("\r"), input.Start)
	test.ExpectEquality(t, feed(" "), input.Select)
	test.ExpectEquality(t, feed("\x1b[A"), input.Up)
	test.ExpectEquality(t, feed("\x1b[D"), input.Left)

	// escape sequence split over two reads
	test.ExpectEquality(t, feed("\x1b"), input.Buttons(0))
	test.ExpectEquality(t, feed("[B"), input.Down)

	// unknown escape sequences are ignored
	test.ExpectEquality(t, feed("\x1bOw"), input.Up)
	test.ExpectEquality(t, feed("\x1b[Hx"), input.A)

	_, quit := d.feed('q')
	test.ExpectSuccess(t, quit)
}

func TestHold(t *testing.T) {
	kb := newKeyboard(3)
	var d decoder

	kb.feed(&d, []byte("x"))
	for i := 0; i < 3; i++ {
		b, err := kb.Poll()
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, b, input.A)
	}
	b, _ := kb.Poll()
	test.ExpectEquality(t, b, input.Buttons(0))

	// repeated key extends the hold
	kb.feed(&d, []byte("\x1b[C"))
	b, _ = kb.Poll()
	test.ExpectEquality(t, b, input.Right)
	kb.feed(&d, []byte("\x1b[C\r"))
	for i := 0; i < 3; i++ {
		b, _ = kb.Poll()
		test.ExpectEquality(t, b, input.Right|input.Start)
	}
	b, _ = kb.Poll()
	test.ExpectEquality(t, b, input.Buttons(0))
}

func TestQuit(t *testing.T) {
	kb := newKeyboard(1)
	var d decoder

	select {
	case <-kb.Quit():
		t.Fatalf("quit signalled too early")
	default:
	}

	kb.feed(&d, []byte("qq"))

	select {
	case <-kb.Quit():
	default:
		t.Fatalf("quit not signalled")
	}

	test.ExpectSuccess(t, kb.Close())
}
