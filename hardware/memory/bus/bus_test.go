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

package bus_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/memory/bus"
	"github.com/jetsetilly/gopherboy/test"
)

func TestPlain(t *testing.T) {
	r := bus.NewPlain(4)
	r.Write(1, []uint8{0x10, 0x20, 0x30, 0x40}, false)
	test.ExpectEquality(t, r.Read(0, false), uint8(0x00))
	test.ExpectEquality(t, r.Read(1, false), uint8(0x10))
	test.ExpectEquality(t, r.Read(3, true), uint8(0x30))

	// out of range
	test.ExpectEquality(t, r.Read(4, false), bus.Unconnected)

	test.ExpectEquality(t, bus.ReadShort(r, 1, false), uint16(0x2010))
}

func TestUnusable(t *testing.T) {
	r := bus.NewUnusable(0x60)
	r.Write(0, []uint8{0x00}, false)
	r.Write(0, []uint8{0x00}, true)
	test.ExpectEquality(t, r.Read(0, false), uint8(0xff))
	test.ExpectEquality(t, r.Read(0, true), uint8(0xff))
	test.ExpectEquality(t, r.Len(), 0x60)
}

func TestMasked(t *testing.T) {
	const writable = uint8(0x30)
	const readable = uint8(0x3f)

	for old := 0; old <= 0xff; old++ {
		for n := 0; n <= 0xff; n += 0x0b {
			r := bus.NewMasked(uint8(old), writable, readable)
			r.Write(0, []uint8{uint8(n)}, false)

			expected := (uint8(old) | (uint8(n) & writable)) & (uint8(n) | ^writable)
			test.ExpectEquality(t, r.Read(0, true), expected)

			// unreadable bits always read as one under mediated access
			test.ExpectEquality(t, r.Read(0, false)&^readable, ^readable)
			test.ExpectEquality(t, r.Read(0, false)&readable, expected&readable)
		}
	}

	// direct access ignores both masks
	r := bus.NewMasked(0x00, writable, readable)
	r.Write(0, []uint8{0xcf}, true)
	test.ExpectEquality(t, r.Read(0, true), uint8(0xcf))
	test.ExpectEquality(t, r.Value(), uint8(0xcf))
}

func TestResettable(t *testing.T) {
	var resets int
	r := bus.NewResettable(0xab, func() {
		resets++
	})
	test.ExpectEquality(t, r.Read(0, false), uint8(0xab))

	r.Write(0, []uint8{0x55}, false)
	test.ExpectEquality(t, r.Read(0, false), uint8(0x00))
	test.ExpectEquality(t, resets, 1)

	r.Write(0, []uint8{0x55}, true)
	test.ExpectEquality(t, r.Read(0, false), uint8(0x55))
	test.ExpectEquality(t, resets, 1)
}

func TestTrigger(t *testing.T) {
	var offsets []uint16
	var values []uint8
	r := bus.NewTrigger(2, func(offset uint16, data uint8) {
		offsets = append(offsets, offset)
		values = append(values, data)
	})

	r.Write(0, []uint8{0x01, 0x02, 0x03}, false)
	test.DemandEquality(t, len(offsets), 2)
	test.ExpectEquality(t, offsets[1], uint16(1))
	test.ExpectEquality(t, values[1], uint8(0x02))
	test.ExpectEquality(t, r.Read(0, false), uint8(0xff))

	// direct writes have no side effects
	r.Write(0, []uint8{0x01}, true)
	test.ExpectEquality(t, len(offsets), 2)
}

func TestBanked(t *testing.T) {
	bank := 0
	enabled := true
	r := bus.NewBanked(0x10, 4, func() int { return bank })
	r.SetToggle(func() bool { return enabled })

	r.Write(0, []uint8{0xaa}, false)
	bank = 1
	test.ExpectEquality(t, r.Read(0, false), uint8(0x00))
	r.Write(0, []uint8{0xbb}, false)

	// bank numbers wrap
	bank = 5
	test.ExpectEquality(t, r.Bank(), 1)
	test.ExpectEquality(t, r.Read(0, false), uint8(0xbb))

	bank = 0
	test.ExpectEquality(t, r.Read(0, false), uint8(0xaa))

	// toggle only affects mediated access
	enabled = false
	test.ExpectEquality(t, r.Read(0, false), uint8(0xff))
	test.ExpectEquality(t, r.Read(0, true), uint8(0xaa))
	r.Write(0, []uint8{0xcc}, false)
	test.ExpectEquality(t, r.Read(0, true), uint8(0xaa))
	r.Write(0, []uint8{0xcc}, true)
	test.ExpectEquality(t, r.Read(0, true), uint8(0xcc))
}

func TestEcho(t *testing.T) {
	target := bus.NewPlain(8)
	r := bus.NewEcho(target, 6)
	test.ExpectEquality(t, r.Len(), 6)

	r.Write(4, []uint8{1, 2, 3}, false)
	test.ExpectEquality(t, target.Read(4, false), uint8(1))
	test.ExpectEquality(t, target.Read(5, false), uint8(2))

	// echo is shorter than target so the third byte is dropped
	test.ExpectEquality(t, target.Read(6, false), uint8(0))

	target.Write(0, []uint8{0x77}, false)
	test.ExpectEquality(t, r.Read(0, false), uint8(0x77))
}

func TestDisjoint(t *testing.T) {
	_, err := bus.NewDisjoint(bus.NewPlain(1), bus.NewPlain(2))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, bus.IllegalDmaState))

	var triggered uint8
	read := bus.NewPlain(1)
	r, err := bus.NewDisjoint(read, bus.NewTrigger(1, func(_ uint16, data uint8) {
		triggered = data
	}))
	test.DemandSuccess(t, err)

	read.Write(0, []uint8{0x12}, false)
	r.Write(0, []uint8{0x34}, false)
	test.ExpectEquality(t, triggered, uint8(0x34))
	test.ExpectEquality(t, r.Read(0, false), uint8(0x12))
}

func TestSpace(t *testing.T) {
	a := bus.NewPlain(4)
	b := bus.NewPlain(4)
	c := bus.NewUnusable(8)

	_, err := bus.NewSpace(20, a, b, c)
	test.ExpectFailure(t, err)
	_, err = bus.NewSpace(12, a, b, c)
	test.ExpectFailure(t, err)

	s, err := bus.NewSpace(16, a, b, c)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Len(), 16)

	// write that spans two regions is split at the boundary
	s.Write(2, []uint8{1, 2, 3, 4}, false)
	test.ExpectEquality(t, a.Read(2, false), uint8(1))
	test.ExpectEquality(t, a.Read(3, false), uint8(2))
	test.ExpectEquality(t, b.Read(0, false), uint8(3))
	test.ExpectEquality(t, b.Read(1, false), uint8(4))

	test.ExpectEquality(t, s.Read(5, false), uint8(4))
	test.ExpectEquality(t, s.Read(9, false), uint8(0xff))

	r, addr, ok := s.Lookup(6)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, r, bus.Region(b))
	test.ExpectEquality(t, addr, uint16(2))

	// outside of the space
	r, addr, ok = s.Lookup(16)
	test.ExpectFailure(t, ok)
	test.ExpectSuccess(t, r == nil)
	test.ExpectEquality(t, addr, uint16(0))
	_, _, ok = s.Lookup(0xffff)
	test.ExpectFailure(t, ok)

	rng := bus.ReadRange(s, 2, 5)
	test.DemandEquality(t, len(rng), 4)
	test.ExpectEquality(t, rng[3], uint8(4))

	// nested spaces
	outer, err := bus.NewSpace(32, s, bus.NewPlain(16))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, outer.Read(4, false), uint8(3))
}

func TestReset(t *testing.T) {
	p := bus.NewPlain(2)
	m := bus.NewMasked(0x0f, 0x30, 0x3f)
	d := bus.NewResettable(0x12, nil)
	k := bus.NewBanked(2, 2, func() int { return 1 })
	trig := bus.NewTrigger(1, func(_ uint16, _ uint8) {})
	rb := bus.NewPlain(1)
	dj, err := bus.NewDisjoint(rb, trig)
	test.DemandSuccess(t, err)

	s, err := bus.NewSpace(7, p, m, d, k, dj)
	test.DemandSuccess(t, err)

	s.Write(0, []uint8{0xaa, 0xbb, 0x30, 0x01, 0xcc, 0xdd}, true)
	rb.Write(0, []uint8{0x99}, true)
	test.ExpectEquality(t, s.Read(6, true), uint8(0x99))
	test.ExpectEquality(t, s.Read(0, true), uint8(0xaa))
	test.ExpectEquality(t, s.Read(2, true), uint8(0x30))
	test.ExpectEquality(t, s.Read(3, true), uint8(0x01))
	test.ExpectEquality(t, s.Read(5, true), uint8(0xdd))

	s.Reset()
	test.ExpectEquality(t, s.Read(0, true), uint8(0x00))
	test.ExpectEquality(t, s.Read(1, true), uint8(0x00))
	test.ExpectEquality(t, s.Read(2, true), uint8(0x0f))
	test.ExpectEquality(t, s.Read(3, true), uint8(0x12))
	test.ExpectEquality(t, s.Read(4, true), uint8(0x00))
	test.ExpectEquality(t, s.Read(5, true), uint8(0x00))
	test.ExpectEquality(t, k.BankData(1)[1], uint8(0x00))
	test.ExpectEquality(t, s.Read(6, true), uint8(0x00))
}

func TestOverlay(t *testing.T) {
	cart := bus.NewPlain(0x400)
	for i := range cart.Data() {
		cart.Data()[i] = 0xc0
	}

	boot := make([]uint8, 0x900)
	for i := range boot {
		boot[i] = 0xb0
	}

	o := bus.NewOverlay(cart, boot)
	test.ExpectSuccess(t, o.Active())
	test.ExpectEquality(t, o.Read(0x0000, false), uint8(0xb0))

	// cartridge header is visible through the overlay
	test.ExpectEquality(t, o.Read(0x0100, false), uint8(0xc0))
	test.ExpectEquality(t, o.Read(0x01ff, false), uint8(0xc0))
	test.ExpectEquality(t, o.Read(0x0200, false), uint8(0xb0))

	// beyond the end of the boot image
	test.ExpectEquality(t, o.Read(0x3ff, false), uint8(0xb0))

	o.Disable()
	test.ExpectFailure(t, o.Active())
	test.ExpectEquality(t, o.Read(0x0000, false), uint8(0xc0))

	// small boot image shadows all of its addresses
	o = bus.NewOverlay(cart, boot[:0x100])
	test.ExpectEquality(t, o.Read(0x00ff, false), uint8(0xb0))
	test.ExpectEquality(t, o.Read(0x0100, false), uint8(0xc0))
}
