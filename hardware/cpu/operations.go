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

package cpu

import "github.com/jetsetilly/gopherboy/hardware/cpu/registers"

// 8 bit arithmetic and logic on the accumulator

func (mc *CPU) add(v uint8) {
	carry, half := mc.A.Add(v, false)
	mc.F.Set(mc.A.IsZero(), false, half, carry)
}

func (mc *CPU) adc(v uint8) {
	carry, half := mc.A.Add(v, mc.F.Carry)
	mc.F.Set(mc.A.IsZero(), false, half, carry)
}

func (mc *CPU) sub(v uint8) {
	borrow, half := mc.A.Subtract(v, false)
	mc.F.Set(mc.A.IsZero(), true, half, borrow)
}

func (mc *CPU) sbc(v uint8) {
	borrow, half := mc.A.Subtract(v, mc.F.Carry)
	mc.F.Set(mc.A.IsZero(), true, half, borrow)
}

func (mc *CPU) and(v uint8) {
	mc.A.AND(v)
	mc.F.Set(mc.A.IsZero(), false, true, false)
}

func (mc *CPU) xor(v uint8) {
	mc.A.XOR(v)
	mc.F.Set(mc.A.IsZero(), false, false, false)
}

func (mc *CPU) or(v uint8) {
	mc.A.OR(v)
	mc.F.Set(mc.A.IsZero(), false, false, false)
}

func (mc *CPU) cp(v uint8) {
	zero, borrow, half := mc.A.Compare(v)
	mc.F.Set(zero, true, half, borrow)
}

// single byte operand operations. used with CPU.modify()

func inc(mc *CPU, r *registers.Register) {
	_, half := r.Add(1, false)
	mc.F.Zero = r.IsZero()
	mc.F.Subtract = false
	mc.F.HalfCarry = half
}

func dec(mc *CPU, r *registers.Register) {
	_, half := r.Subtract(1, false)
	mc.F.Zero = r.IsZero()
	mc.F.Subtract = true
	mc.F.HalfCarry = half
}

func rlc(mc *CPU, r *registers.Register) {
	c := r.RLC()
	mc.F.Set(r.IsZero(), false, false, c)
}

func rrc(mc *CPU, r *registers.Register) {
	c := r.RRC()
	mc.F.Set(r.IsZero(), false, false, c)
}

func rl(mc *CPU, r *registers.Register) {
	c := r.RL(mc.F.Carry)
	mc.F.Set(r.IsZero(), false, false, c)
}

func rr(mc *CPU, r *registers.Register) {
	c := r.RR(mc.F.Carry)
	mc.F.Set(r.IsZero(), false, false, c)
}

func sla(mc *CPU, r *registers.Register) {
	c := r.SLA()
	mc.F.Set(r.IsZero(), false, false, c)
}

func sra(mc *CPU, r *registers.Register) {
	c := r.SRA()
	mc.F.Set(r.IsZero(), false, false, c)
}

func swap(mc *CPU, r *registers.Register) {
	r.Swap()
	mc.F.Set(r.IsZero(), false, false, false)
}

func srl(mc *CPU, r *registers.Register) {
	c := r.SRL()
	mc.F.Set(r.IsZero(), false, false, c)
}

// 16 bit arithmetic

// addHL adds v to HL. the zero flag is not affected. half carry is the
// carry out of bit 11
func (mc *CPU) addHL(v uint16) {
	hl := mc.HL.Value()
	sum := uint32(hl) + uint32(v)
	mc.F.Subtract = false
	mc.F.HalfCarry = (hl&0x0fff)+(v&0x0fff) > 0x0fff
	mc.F.Carry = sum > 0xffff
	mc.HL.Load(uint16(sum))
}

// spOffset fetches a signed 8 bit operand and returns the result of adding it
// to SP. the flags are set from the unsigned addition of the operand to the
// low byte of SP
func (mc *CPU) spOffset() uint16 {
	e := mc.fetch8()
	sp := mc.SP.Value()
	mc.F.Set(false, false,
		(sp&0x0f)+uint16(e&0x0f) > 0x0f,
		(sp&0xff)+uint16(e) > 0xff,
	)
	return uint16(int(sp) + int(int8(e)))
}

// decimal adjust the accumulator after a BCD addition or subtraction
func (mc *CPU) daa() {
	a := mc.A.Value()
	carry := mc.F.Carry

	if !mc.F.Subtract {
		if mc.F.Carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if mc.F.HalfCarry || a&0x0f > 0x09 {
			a += 0x06
		}
	} else {
		if mc.F.Carry {
			a -= 0x60
		}
		if mc.F.HalfCarry {
			a -= 0x06
		}
	}

	mc.A.Load(a)
	mc.F.Zero = a == 0
	mc.F.HalfCarry = false
	mc.F.Carry = carry
}
