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

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/cpu/registers"
)

// the rotate and shift operations of the second table in opcode order
var shiftOps = [8]struct {
	name string
	op   func(mc *CPU, r *registers.Register)
}{
	{"RLC", rlc},
	{"RRC", rrc},
	{"RL", rl},
	{"RR", rr},
	{"SLA", sla},
	{"SRA", sra},
	{"SWAP", swap},
	{"SRL", srl},
}

func init() {
	t := &definitionsCB

	for i := uint8(0); i < 8; i++ {
		// operations on (HL) take longer because of the memory access
		c := 2
		cBit := 2
		if i == operandHL {
			c = 4
			cBit = 3
		}

		for s := uint8(0); s < 8; s++ {
			shift := shiftOps[s]
			define(t, s<<3|i, fmt.Sprintf("%s %s", shift.name, operandNames[i]), 2, c, func(mc *CPU) {
				mc.modify(i, shift.op, true)
			})
		}

		for b := uint8(0); b < 8; b++ {
			mask := uint8(0x01) << b

			define(t, 0x40|b<<3|i, fmt.Sprintf("BIT %d,%s", b, operandNames[i]), 2, cBit, func(mc *CPU) {
				mc.modify(i, func(mc *CPU, r *registers.Register) {
					mc.F.Zero = r.Value()&mask == 0x00
					mc.F.Subtract = false
					mc.F.HalfCarry = true
				}, false)
			})
			define(t, 0x80|b<<3|i, fmt.Sprintf("RES %d,%s", b, operandNames[i]), 2, c, func(mc *CPU) {
				mc.modify(i, func(_ *CPU, r *registers.Register) {
					r.Load(r.Value() &^ mask)
				}, true)
			})
			define(t, 0xc0|b<<3|i, fmt.Sprintf("SET %d,%s", b, operandNames[i]), 2, c, func(mc *CPU) {
				mc.modify(i, func(_ *CPU, r *registers.Register) {
					r.Load(r.Value() | mask)
				}, true)
			})
		}
	}
}
