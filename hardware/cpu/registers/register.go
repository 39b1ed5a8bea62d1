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

import (
	"fmt"
)

// Cell is the interface for 8 bit storage that can form one half of a Pair.
type Cell interface {
	Label() string
	Value() uint8
	Load(uint8)
}

// Register is an 8 bit register.
type Register struct {
	label string
	value uint8
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint8, label string) *Register {
	return &Register{
		value: val,
		label: label,
	}
}

// NewAnonRegister creates a register with no label. Useful for operations on
// memory values that should behave like a register.
func NewAnonRegister(val uint8) *Register {
	return NewRegister(val, "")
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#02x", r.label, r.value)
}

// Label returns the register's label.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// IsZero returns true if the register contains zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// Load a value into the register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Increment the register by n. Negative values of n and values outside the
// range of the register are allowed. The result wraps.
func (r *Register) Increment(n int) {
	r.value = uint8(int(r.value) + n)
}

// Decrement the register by n. Equivalent to Increment(256-n).
func (r *Register) Decrement(n int) {
	r.Increment(0x100 - n)
}

// Add value to register, with optional carry in. Returns carry out of bit 7
// and carry out of bit 3.
func (r *Register) Add(val uint8, carry bool) (rcarry bool, half bool) {
	var c uint16
	if carry {
		c = 1
	}
	v := uint16(r.value)
	half = (v&0x0f)+uint16(val&0x0f)+c > 0x0f
	sum := v + uint16(val) + c
	r.value = uint8(sum)
	return sum > 0xff, half
}

// Subtract value from register, with optional borrow in. Returns borrow from
// bit 8 and borrow from bit 4.
func (r *Register) Subtract(val uint8, borrow bool) (rborrow bool, half bool) {
	var c int
	if borrow {
		c = 1
	}
	v := int(r.value)
	half = (v&0x0f)-int(val&0x0f)-c < 0
	diff := v - int(val) - c
	r.value = uint8(diff)
	return diff < 0, half
}

// Compare returns the flags as though val had been subtracted from the
// register. The register is not changed.
func (r Register) Compare(val uint8) (zero bool, borrow bool, half bool) {
	borrow, half = r.Subtract(val, false)
	return r.value == 0, borrow, half
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// OR value with register.
func (r *Register) OR(val uint8) {
	r.value |= val
}

// XOR value with register.
func (r *Register) XOR(val uint8) {
	r.value ^= val
}

// RLC rotates left. Bit 7 goes to both bit 0 and carry.
func (r *Register) RLC() bool {
	carry := r.value&0x80 == 0x80
	r.value = r.value<<1 | r.value>>7
	return carry
}

// RRC rotates right. Bit 0 goes to both bit 7 and carry.
func (r *Register) RRC() bool {
	carry := r.value&0x01 == 0x01
	r.value = r.value>>1 | r.value<<7
	return carry
}

// RL rotates left through carry.
func (r *Register) RL(carry bool) bool {
	rcarry := r.value&0x80 == 0x80
	r.value <<= 1
	if carry {
		r.value |= 0x01
	}
	return rcarry
}

// RR rotates right through carry.
func (r *Register) RR(carry bool) bool {
	rcarry := r.value&0x01 == 0x01
	r.value >>= 1
	if carry {
		r.value |= 0x80
	}
	return rcarry
}

// SLA is an arithmetic shift left.
func (r *Register) SLA() bool {
	carry := r.value&0x80 == 0x80
	r.value <<= 1
	return carry
}

// SRA is an arithmetic shift right. Bit 7 is preserved.
func (r *Register) SRA() bool {
	carry := r.value&0x01 == 0x01
	r.value = r.value>>1 | r.value&0x80
	return carry
}

// SRL is a logical shift right.
func (r *Register) SRL() bool {
	carry := r.value&0x01 == 0x01
	r.value >>= 1
	return carry
}

// Swap the upper and lower nibbles.
func (r *Register) Swap() {
	r.value = r.value<<4 | r.value>>4
}
