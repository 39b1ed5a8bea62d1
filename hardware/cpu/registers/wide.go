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

package registers

import "fmt"

// Wide is the interface shared by the 16 bit registers.
type Wide interface {
	Label() string
	Value() uint16
	Load(uint16)
	Increment(n int)
	Decrement(n int)
}

// Register16 is a 16 bit register. Used for the stack pointer and program
// counter.
type Register16 struct {
	label string
	value uint16
}

// NewRegister16 is the preferred method of initialisation for Register16.
func NewRegister16(val uint16, label string) *Register16 {
	return &Register16{value: val, label: label}
}

func (r Register16) String() string {
	return fmt.Sprintf("%s=%#04x", r.label, r.value)
}

// Label returns the register's label.
func (r Register16) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register16) Value() uint16 {
	return r.value
}

// Load a value into the register.
func (r *Register16) Load(val uint16) {
	r.value = val
}

// Increment the register by n. The result wraps.
func (r *Register16) Increment(n int) {
	r.value = uint16(int(r.value) + n)
}

// Decrement the register by n. Equivalent to Increment(65536-n).
func (r *Register16) Decrement(n int) {
	r.Increment(0x10000 - n)
}

// Pair is a 16 bit view of two 8 bit cells. The high cell is the first
// named.
type Pair struct {
	label string
	hi    Cell
	lo    Cell
}

// NewPair creates a Pair from two existing cells.
func NewPair(hi Cell, lo Cell) *Pair {
	return &Pair{
		label: hi.Label() + lo.Label(),
		hi:    hi,
		lo:    lo,
	}
}

func (p Pair) String() string {
	return fmt.Sprintf("%s=%#04x", p.label, p.Value())
}

// Label returns the combined label of the two cells.
func (p Pair) Label() string {
	return p.label
}

// Value returns the composed 16 bit value.
func (p Pair) Value() uint16 {
	return uint16(p.hi.Value())<<8 | uint16(p.lo.Value())
}

// Load writes the high byte to the high cell and then the low byte to the low
// cell.
func (p *Pair) Load(val uint16) {
	p.hi.Load(uint8(val >> 8))
	p.lo.Load(uint8(val))
}

// Increment the pair by n. The result wraps.
func (p *Pair) Increment(n int) {
	p.Load(uint16(int(p.Value()) + n))
}

// Decrement the pair by n. Equivalent to Increment(65536-n).
func (p *Pair) Decrement(n int) {
	p.Increment(0x10000 - n)
}
