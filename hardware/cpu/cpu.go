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

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/cpu/callstack"
	"github.com/jetsetilly/gopherboy/hardware/cpu/registers"
	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/preferences"
	"github.com/jetsetilly/gopherboy/logger"
)

// UnknownOpcode is the pattern for errors caused by an opcode that has no
// definition.
const UnknownOpcode = "unknown opcode: %#02x at %#04x"

// Memory is the interface to the address space required by the CPU.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
	Peek(address uint16) uint8
	Poke(address uint16, data uint8)
}

// State of the CPU.
type State int

// List of valid State values.
const (
	Normal State = iota
	Halted
	Stopped
	Dead
)

func (s State) String() string {
	switch s {
	case Normal:
		return "normal"
	case Halted:
		return "halted"
	case Stopped:
		return "stopped"
	case Dead:
		return "dead"
	}
	return "unknown"
}

// the number of cycles required to service an interrupt
const interruptCycles = 5

// Result describes the most recent instruction or interrupt dispatched by
// the CPU.
type Result struct {
	// address of the instruction. for an interrupt this is the address that
	// will be returned to
	Address uint16

	// definition of the instruction. nil if Interrupted is true
	Defn *Definition

	// number of cycles used. for conditional instructions this depends on
	// whether the branch was taken
	Cycles int

	// an interrupt was serviced instead of an instruction being executed
	Interrupted bool
	Kind        interrupts.Kind
}

func (r Result) String() string {
	if r.Interrupted {
		return fmt.Sprintf("interrupt %s (from %#04x)", r.Kind, r.Address)
	}
	if r.Defn == nil {
		return "none"
	}
	return fmt.Sprintf("%#04x %s (%d cycles)", r.Address, r.Defn, r.Cycles)
}

// CPU is the processor of the console.
type CPU struct {
	*registers.File

	prefs *preferences.Preferences
	mem   Memory
	ic    *interrupts.Controller

	colour bool

	// instruction trace. follows the hardware.trace preference
	trace logger.Permission

	State State

	// CPU is running at twice the speed of the rest of the console. the CPU
	// will be stepped twice per tick when this is true
	DoubleSpeed bool

	// number of cycles still to be spent on the current instruction
	idle int

	// set by conditional instructions when the condition holds
	branched bool

	// the next opcode fetch will not increment the program counter
	haltBug bool

	// the eight single byte operands in opcode order. the sixth entry is nil
	// because it refers to the memory address in HL
	operands [8]*registers.Register

	// some operations work on memory values as though they were registers
	acc8 *registers.Register

	LastResult Result

	// tracks CALL and RET instructions when the callstack preference is set
	CallStack *callstack.CallStack
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// colour argument says whether the CPU is in the colour variant of the
// console.
func NewCPU(prefs *preferences.Preferences, mem Memory, ic *interrupts.Controller, colour bool) *CPU {
	mc := &CPU{
		File:      registers.NewFile(),
		prefs:     prefs,
		mem:       mem,
		ic:        ic,
		colour:    colour,
		acc8:      registers.NewAnonRegister(0),
		CallStack: callstack.NewCallStack(),
	}
	mc.trace = logger.PermissionFunc(prefs.Live.Trace.Load)
	mc.operands = [8]*registers.Register{mc.B, mc.C, mc.D, mc.E, mc.H, mc.L, nil, mc.A}
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s %s [%s]", mc.File.Snapshot(), mc.F, mc.State)
}

// Reset the CPU to its power-on state. All registers are zero and the
// program counter points to the start of the boot image.
func (mc *CPU) Reset() {
	mc.File.Reset()
	mc.State = Normal
	mc.DoubleSpeed = false
	mc.idle = 0
	mc.branched = false
	mc.haltBug = false
	mc.LastResult = Result{}
	mc.CallStack.Reset()
	mc.ic.Reset()
}

// PostBoot sets the registers to the values left by the boot image. Used
// when the console is started without a boot image.
func (mc *CPU) PostBoot() {
	mc.Reset()
	if mc.colour {
		mc.AF.Load(0x1180)
		mc.BC.Load(0x0000)
		mc.DE.Load(0xff56)
		mc.HL.Load(0x000d)
	} else {
		mc.AF.Load(0x01b0)
		mc.BC.Load(0x0013)
		mc.DE.Load(0x00d8)
		mc.HL.Load(0x014d)
	}
	mc.SP.Load(0xfffe)
	mc.PC.Load(addresses.Entry)
}

// Busy returns true if the CPU is still spending cycles on the most recent
// instruction.
func (mc *CPU) Busy() bool {
	return mc.idle > 0
}

// Step the CPU forward one machine cycle.
func (mc *CPU) Step() error {
	if mc.idle > 0 {
		mc.idle--
		return nil
	}

	switch mc.State {
	case Dead:
		return nil
	case Halted:
		// any request wakes the CPU. whether it is serviced depends on IME
		// and the enable bits
		if mc.ic.Requested() == 0 {
			return nil
		}
		mc.State = Normal
	case Stopped:
		if mc.ic.Requested()&interrupts.Joypad.Mask() == 0 {
			return nil
		}
		mc.State = Normal
	}

	if mc.ic.IME {
		if k, ok := mc.ic.Next(); ok {
			mc.service(k)
			return nil
		}
	}

	return mc.dispatch()
}

// ExecuteInstruction steps the CPU until the next instruction or interrupt
// has been dispatched. Cycles remaining from the previous instruction are
// used up first.
//
// If the CPU is halted or stopped then only one cycle is consumed.
func (mc *CPU) ExecuteInstruction() error {
	for mc.idle > 0 {
		mc.idle--
	}
	return mc.Step()
}

func (mc *CPU) service(k interrupts.Kind) {
	mc.ic.Acknowledge(k)

	ret := mc.PC.Value()
	mc.push(ret)
	mc.PC.Load(k.Vector())
	mc.idle = interruptCycles - 1

	mc.LastResult = Result{
		Address:     ret,
		Cycles:      interruptCycles,
		Interrupted: true,
		Kind:        k,
	}

	mc.trackCall(k.Vector(), ret)

	logger.Logf(mc.trace, "trace", "interrupt %s -> %#04x", k, k.Vector())
}

// the prefix byte for the second table of opcodes
const prefixCB = 0xcb

func (mc *CPU) dispatch() error {
	address := mc.PC.Value()

	opcode := mc.mem.Read(address)
	if mc.haltBug {
		mc.haltBug = false
	} else {
		mc.PC.Increment(1)
	}

	var defn *Definition
	if opcode == prefixCB {
		defn = definitionsCB[mc.fetch8()]
	} else {
		defn = definitions[opcode]
	}

	if defn == nil {
		mc.State = Dead
		return curated.Errorf(UnknownOpcode, opcode, address)
	}

	if mc.trace.AllowLogging() {
		s, _ := Disassemble(mc.mem.Peek, address)
		logger.Logf(mc.trace, "trace", "%#04x %-16s %s", address, s, mc)
	}

	mc.branched = false
	defn.exec(mc)

	cycles := defn.Cycles
	if mc.branched {
		cycles = defn.CyclesBranch
	}
	mc.idle = cycles - 1

	mc.LastResult = Result{
		Address: address,
		Defn:    defn,
		Cycles:  cycles,
	}

	mc.ic.AfterInstruction()

	return nil
}

func (mc *CPU) fetch8() uint8 {
	v := mc.mem.Read(mc.PC.Value())
	mc.PC.Increment(1)
	return v
}

func (mc *CPU) fetch16() uint16 {
	lo := mc.fetch8()
	hi := mc.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) push(v uint16) {
	mc.SP.Decrement(1)
	mc.mem.Write(mc.SP.Value(), uint8(v>>8))
	mc.SP.Decrement(1)
	mc.mem.Write(mc.SP.Value(), uint8(v))
}

func (mc *CPU) pop() uint16 {
	lo := mc.mem.Read(mc.SP.Value())
	mc.SP.Increment(1)
	hi := mc.mem.Read(mc.SP.Value())
	mc.SP.Increment(1)
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) call(target uint16) {
	ret := mc.PC.Value()
	mc.push(ret)
	mc.PC.Load(target)
	mc.trackCall(target, ret)
}

func (mc *CPU) ret() {
	mc.PC.Load(mc.pop())
	if mc.prefs.Live.CallStack.Load() {
		if err := mc.CallStack.Return(mc.PC.Value()); err != nil {
			logger.Log(logger.Allow, "callstack", err)
		}
	}
}

func (mc *CPU) trackCall(target uint16, ret uint16) {
	if mc.prefs.Live.CallStack.Load() {
		mc.CallStack.SetMaxDepth(int(mc.prefs.Live.CallStackDepth.Load()))
		if err := mc.CallStack.Call(target, ret); err != nil {
			logger.Log(logger.Allow, "callstack", err)
		}
	}
}

// operand returns the value of the single byte operand. an index of six
// reads the memory address in HL
func (mc *CPU) readOperand(i uint8) uint8 {
	if r := mc.operands[i]; r != nil {
		return r.Value()
	}
	return mc.mem.Read(mc.HL.Value())
}

func (mc *CPU) writeOperand(i uint8, v uint8) {
	if r := mc.operands[i]; r != nil {
		r.Load(v)
		return
	}
	mc.mem.Write(mc.HL.Value(), v)
}

// modify reads the operand into the accumulator, applies the operation and
// optionally writes the result back to the operand
func (mc *CPU) modify(i uint8, op func(mc *CPU, r *registers.Register), writeBack bool) {
	mc.acc8.Load(mc.readOperand(i))
	op(mc, mc.acc8)
	if writeBack {
		mc.writeOperand(i, mc.acc8.Value())
	}
}

func (mc *CPU) halt() {
	// the halt bug. HALT is skipped and the next opcode is read twice
	if !mc.ic.IME && mc.ic.Pending() != 0 {
		mc.haltBug = true
		return
	}
	mc.State = Halted
}

func (mc *CPU) stop() {
	// STOP is two bytes long. the second byte is ignored
	mc.fetch8()

	if mc.colour && mc.prefs.Live.DoubleSpeed.Load() {
		key1 := mc.mem.Peek(addresses.KEY1)
		if key1&0x01 == 0x01 {
			mc.DoubleSpeed = !mc.DoubleSpeed
			key1 = 0x00
			if mc.DoubleSpeed {
				key1 = 0x80
			}
			mc.mem.Poke(addresses.KEY1, key1)
			logger.Logf(logger.Allow, "cpu", "double speed mode: %v", mc.DoubleSpeed)
			return
		}
	}

	// the divider is reset by STOP
	mc.mem.Write(addresses.DIV, 0x00)

	mc.State = Stopped
}
