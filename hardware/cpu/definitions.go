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

// Definition describes a single instruction.
type Definition struct {
	Opcode uint8

	// the instruction is in the second table and is preceded by the prefix
	// byte
	Prefixed bool

	// mnemonic and operands. operands that are read from the instruction
	// stream are named by a placeholder: d8, d16, a8, a16, r8
	Mnemonic string

	// number of bytes including the opcode (and prefix)
	Bytes int

	// number of machine cycles
	Cycles int

	// number of machine cycles if the condition of a conditional instruction
	// holds. zero for all other instructions
	CyclesBranch int

	exec func(mc *CPU)
}

func (defn Definition) String() string {
	return defn.Mnemonic
}

// Conditional returns true if the instruction's cycle count depends on a
// condition.
func (defn Definition) Conditional() bool {
	return defn.CyclesBranch > 0
}

// instruction tables. nil entries are opcodes with no definition
var definitions [256]*Definition
var definitionsCB [256]*Definition

// Lookup the definition for the opcode. If the opcode is the prefix byte
// then the second argument is used to look up the definition in the second
// table. Returns nil if there is no definition.
func Lookup(opcode uint8, next uint8) *Definition {
	if opcode == prefixCB {
		return definitionsCB[next]
	}
	return definitions[opcode]
}

func define(table *[256]*Definition, opcode uint8, mnemonic string, bytes int, cycles int, exec func(mc *CPU)) *Definition {
	if table[opcode] != nil {
		panic(fmt.Sprintf("cpu: duplicate definition for opcode %#02x (%s and %s)", opcode, table[opcode], mnemonic))
	}
	defn := &Definition{
		Opcode:   opcode,
		Prefixed: table == &definitionsCB,
		Mnemonic: mnemonic,
		Bytes:    bytes,
		Cycles:   cycles,
		exec:     exec,
	}
	table[opcode] = defn
	return defn
}

// names of the single byte operands in opcode order
var operandNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// the operand index that refers to the memory address in HL
const operandHL = 6

func (mc *CPU) wide(i uint8) registers.Wide {
	switch i {
	case 0:
		return mc.BC
	case 1:
		return mc.DE
	case 2:
		return mc.HL
	}
	return mc.SP
}

// PUSH and POP use AF in place of SP
func (mc *CPU) stacked(i uint8) registers.Wide {
	if i == 3 {
		return mc.AF
	}
	return mc.wide(i)
}

var wideNames = [4]string{"BC", "DE", "HL", "SP"}
var stackedNames = [4]string{"BC", "DE", "HL", "AF"}

// the four conditions used by conditional instructions, in opcode order
var conditions = [4]struct {
	name string
	test func(f *registers.Flags) bool
}{
	{"NZ", func(f *registers.Flags) bool { return !f.Zero }},
	{"Z", func(f *registers.Flags) bool { return f.Zero }},
	{"NC", func(f *registers.Flags) bool { return !f.Carry }},
	{"C", func(f *registers.Flags) bool { return f.Carry }},
}

// the indirect addresses used by the LD (rr),A and LD A,(rr) instructions
var indirects = [4]struct {
	name    string
	address func(mc *CPU) uint16
}{
	{"(BC)", func(mc *CPU) uint16 { return mc.BC.Value() }},
	{"(DE)", func(mc *CPU) uint16 { return mc.DE.Value() }},
	{"(HL+)", func(mc *CPU) uint16 {
		a := mc.HL.Value()
		mc.HL.Increment(1)
		return a
	}},
	{"(HL-)", func(mc *CPU) uint16 {
		a := mc.HL.Value()
		mc.HL.Decrement(1)
		return a
	}},
}

// the accumulator operations in opcode order
var accumulatorOps = [8]struct {
	name string
	op   func(mc *CPU, v uint8)
}{
	{"ADD A,", (*CPU).add},
	{"ADC A,", (*CPU).adc},
	{"SUB ", (*CPU).sub},
	{"SBC A,", (*CPU).sbc},
	{"AND ", (*CPU).and},
	{"XOR ", (*CPU).xor},
	{"OR ", (*CPU).or},
	{"CP ", (*CPU).cp},
}

func init() {
	t := &definitions

	define(t, 0x00, "NOP", 1, 1, func(mc *CPU) {})
	define(t, 0x10, "STOP", 2, 1, (*CPU).stop)
	define(t, 0x76, "HALT", 1, 1, (*CPU).halt)
	define(t, 0xf3, "DI", 1, 1, func(mc *CPU) { mc.ic.DisableMaster() })
	define(t, 0xfb, "EI", 1, 1, func(mc *CPU) { mc.ic.EnableMaster(true) })

	// 16 bit loads and arithmetic
	for i := uint8(0); i < 4; i++ {
		define(t, 0x01|i<<4, fmt.Sprintf("LD %s,d16", wideNames[i]), 3, 3, func(mc *CPU) {
			mc.wide(i).Load(mc.fetch16())
		})
		define(t, 0x03|i<<4, "INC "+wideNames[i], 1, 2, func(mc *CPU) {
			mc.wide(i).Increment(1)
		})
		define(t, 0x0b|i<<4, "DEC "+wideNames[i], 1, 2, func(mc *CPU) {
			mc.wide(i).Decrement(1)
		})
		define(t, 0x09|i<<4, "ADD HL,"+wideNames[i], 1, 2, func(mc *CPU) {
			mc.addHL(mc.wide(i).Value())
		})
		define(t, 0xc1|i<<4, "POP "+stackedNames[i], 1, 3, func(mc *CPU) {
			mc.stacked(i).Load(mc.pop())
		})
		define(t, 0xc5|i<<4, "PUSH "+stackedNames[i], 1, 4, func(mc *CPU) {
			mc.push(mc.stacked(i).Value())
		})

		ind := indirects[i]
		define(t, 0x02|i<<4, fmt.Sprintf("LD %s,A", ind.name), 1, 2, func(mc *CPU) {
			mc.mem.Write(ind.address(mc), mc.A.Value())
		})
		define(t, 0x0a|i<<4, fmt.Sprintf("LD A,%s", ind.name), 1, 2, func(mc *CPU) {
			mc.A.Load(mc.mem.Read(ind.address(mc)))
		})
	}

	define(t, 0x08, "LD (a16),SP", 3, 5, func(mc *CPU) {
		a := mc.fetch16()
		mc.mem.Write(a, uint8(mc.SP.Value()))
		mc.mem.Write(a+1, uint8(mc.SP.Value()>>8))
	})
	define(t, 0xf9, "LD SP,HL", 1, 2, func(mc *CPU) {
		mc.SP.Load(mc.HL.Value())
	})
	define(t, 0xe8, "ADD SP,r8", 2, 4, func(mc *CPU) {
		mc.SP.Load(mc.spOffset())
	})
	define(t, 0xf8, "LD HL,SP+r8", 2, 3, func(mc *CPU) {
		mc.HL.Load(mc.spOffset())
	})

	// 8 bit increment, decrement and immediate load
	for i := uint8(0); i < 8; i++ {
		c := 1
		if i == operandHL {
			c = 3
		}
		define(t, 0x04|i<<3, "INC "+operandNames[i], 1, c, func(mc *CPU) {
			mc.modify(i, inc, true)
		})
		define(t, 0x05|i<<3, "DEC "+operandNames[i], 1, c, func(mc *CPU) {
			mc.modify(i, dec, true)
		})

		c = 2
		if i == operandHL {
			c = 3
		}
		define(t, 0x06|i<<3, fmt.Sprintf("LD %s,d8", operandNames[i]), 2, c, func(mc *CPU) {
			mc.writeOperand(i, mc.fetch8())
		})
	}

	// register to register loads. LD (HL),(HL) is HALT
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			if dst == operandHL && src == operandHL {
				continue
			}
			c := 1
			if dst == operandHL || src == operandHL {
				c = 2
			}
			define(t, 0x40|dst<<3|src, fmt.Sprintf("LD %s,%s", operandNames[dst], operandNames[src]), 1, c, func(mc *CPU) {
				mc.writeOperand(dst, mc.readOperand(src))
			})
		}
	}

	// accumulator operations
	for o := uint8(0); o < 8; o++ {
		acc := accumulatorOps[o]
		for src := uint8(0); src < 8; src++ {
			c := 1
			if src == operandHL {
				c = 2
			}
			define(t, 0x80|o<<3|src, acc.name+operandNames[src], 1, c, func(mc *CPU) {
				acc.op(mc, mc.readOperand(src))
			})
		}
		define(t, 0xc6|o<<3, acc.name+"d8", 2, 2, func(mc *CPU) {
			acc.op(mc, mc.fetch8())
		})
	}

	// rotates of the accumulator always clear the zero flag
	define(t, 0x07, "RLCA", 1, 1, func(mc *CPU) {
		mc.F.Set(false, false, false, mc.A.RLC())
	})
	define(t, 0x0f, "RRCA", 1, 1, func(mc *CPU) {
		mc.F.Set(false, false, false, mc.A.RRC())
	})
	define(t, 0x17, "RLA", 1, 1, func(mc *CPU) {
		mc.F.Set(false, false, false, mc.A.RL(mc.F.Carry))
	})
	define(t, 0x1f, "RRA", 1, 1, func(mc *CPU) {
		mc.F.Set(false, false, false, mc.A.RR(mc.F.Carry))
	})

	define(t, 0x27, "DAA", 1, 1, (*CPU).daa)
	define(t, 0x2f, "CPL", 1, 1, func(mc *CPU) {
		mc.A.Load(^mc.A.Value())
		mc.F.Subtract = true
		mc.F.HalfCarry = true
	})
	define(t, 0x37, "SCF", 1, 1, func(mc *CPU) {
		mc.F.Subtract = false
		mc.F.HalfCarry = false
		mc.F.Carry = true
	})
	define(t, 0x3f, "CCF", 1, 1, func(mc *CPU) {
		mc.F.Subtract = false
		mc.F.HalfCarry = false
		mc.F.Carry = !mc.F.Carry
	})

	// high memory loads
	define(t, 0xe0, "LDH (a8),A", 2, 3, func(mc *CPU) {
		mc.mem.Write(0xff00|uint16(mc.fetch8()), mc.A.Value())
	})
	define(t, 0xf0, "LDH A,(a8)", 2, 3, func(mc *CPU) {
		mc.A.Load(mc.mem.Read(0xff00 | uint16(mc.fetch8())))
	})
	define(t, 0xe2, "LD (C),A", 1, 2, func(mc *CPU) {
		mc.mem.Write(0xff00|uint16(mc.C.Value()), mc.A.Value())
	})
	define(t, 0xf2, "LD A,(C)", 1, 2, func(mc *CPU) {
		mc.A.Load(mc.mem.Read(0xff00 | uint16(mc.C.Value())))
	})
	define(t, 0xea, "LD (a16),A", 3, 4, func(mc *CPU) {
		mc.mem.Write(mc.fetch16(), mc.A.Value())
	})
	define(t, 0xfa, "LD A,(a16)", 3, 4, func(mc *CPU) {
		mc.A.Load(mc.mem.Read(mc.fetch16()))
	})

	// flow control
	define(t, 0x18, "JR r8", 2, 3, func(mc *CPU) {
		e := int8(mc.fetch8())
		mc.PC.Increment(int(e))
	})
	define(t, 0xc3, "JP a16", 3, 4, func(mc *CPU) {
		mc.PC.Load(mc.fetch16())
	})
	define(t, 0xe9, "JP (HL)", 1, 1, func(mc *CPU) {
		mc.PC.Load(mc.HL.Value())
	})
	define(t, 0xcd, "CALL a16", 3, 6, func(mc *CPU) {
		mc.call(mc.fetch16())
	})
	define(t, 0xc9, "RET", 1, 4, (*CPU).ret)
	define(t, 0xd9, "RETI", 1, 4, func(mc *CPU) {
		mc.ret()
		mc.ic.EnableMaster(false)
	})

	for i, cc := range conditions {
		n := uint8(i) << 3

		define(t, 0x20|n, fmt.Sprintf("JR %s,r8", cc.name), 2, 2, func(mc *CPU) {
			e := int8(mc.fetch8())
			if cc.test(mc.F) {
				mc.PC.Increment(int(e))
				mc.branched = true
			}
		}).CyclesBranch = 3

		define(t, 0xc2|n, fmt.Sprintf("JP %s,a16", cc.name), 3, 3, func(mc *CPU) {
			a := mc.fetch16()
			if cc.test(mc.F) {
				mc.PC.Load(a)
				mc.branched = true
			}
		}).CyclesBranch = 4

		define(t, 0xc4|n, fmt.Sprintf("CALL %s,a16", cc.name), 3, 3, func(mc *CPU) {
			a := mc.fetch16()
			if cc.test(mc.F) {
				mc.call(a)
				mc.branched = true
			}
		}).CyclesBranch = 6

		define(t, 0xc0|n, fmt.Sprintf("RET %s", cc.name), 1, 2, func(mc *CPU) {
			if cc.test(mc.F) {
				mc.ret()
				mc.branched = true
			}
		}).CyclesBranch = 5
	}

	for i := uint8(0); i < 8; i++ {
		target := uint16(i) << 3
		define(t, 0xc7|i<<3, fmt.Sprintf("RST $%02x", target), 1, 4, func(mc *CPU) {
			mc.call(target)
		})
	}
}
