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

package hardware_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/hardware/cpu"
	"github.com/jetsetilly/gopherboy/hardware/input"
	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/test"
)

// cartridge with no bank controller and the program placed at the entry
// address. the rest of the cartridge is filled with NOP instructions
func newCartridge(program ...uint8) []uint8 {
	data := make([]uint8, 0x8000)
	data[0x147] = 0x00
	data[0x148] = 0x00
	data[0x149] = 0x00
	copy(data[addresses.Entry:], program)
	return data
}

func newConsole(t *testing.T, boot []uint8, program ...uint8) *hardware.Console {
	t.Helper()
	con, err := hardware.NewConsole(nil, newCartridge(program...), boot)
	test.DemandSuccess(t, err)
	return con
}

type mockDevice struct {
	state input.Buttons
}

func (m *mockDevice) Poll() (input.Buttons, error) {
	return m.state, nil
}

func TestEndToEnd(t *testing.T) {
	// LD BC,$1234 ; JR +5
	con := newConsole(t, nil, 0x01, 0x34, 0x12, 0x18, 0x05)

	test.ExpectSuccess(t, con.Step())
	test.ExpectSuccess(t, con.Step())

	test.ExpectEquality(t, con.CPU.BC.Value(), uint16(0x1234))
	test.ExpectEquality(t, con.CPU.PC.Value(), addresses.Entry+3+5+2)
	test.ExpectEquality(t, con.Clock, uint64(6))
}

func TestPostBoot(t *testing.T) {
	con := newConsole(t, nil)
	test.ExpectEquality(t, con.CPU.PC.Value(), addresses.Entry)
	test.ExpectEquality(t, con.CPU.SP.Value(), uint16(0xfffe))
	test.ExpectEquality(t, con.Timer.Divider(), uint16(0xabcc))
	test.ExpectEquality(t, con.Mem.Peek(addresses.DIV), uint8(0xab))
	test.ExpectFailure(t, con.Colour)
}

func TestBootImage(t *testing.T) {
	// NOPs followed by LD A,$01 ; LDH ($50),A
	boot := make([]uint8, 0x100)
	copy(boot[0xfc:], []uint8{0x3e, 0x01, 0xe0, 0x50})

	con := newConsole(t, boot)
	test.ExpectEquality(t, con.CPU.PC.Value(), uint16(0x0000))
	test.ExpectSuccess(t, con.Mem.BootActive())

	err := con.Run(func() (bool, error) {
		return con.CPU.PC.Value() != addresses.Entry, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, con.Mem.BootActive())
	test.ExpectEquality(t, con.CPU.A.Value(), uint8(0x01))

	// the overlay has gone so the console resets to the post-boot state
	con.Reset()
	test.ExpectEquality(t, con.CPU.PC.Value(), addresses.Entry)
	test.ExpectEquality(t, con.Clock, uint64(0))
}

func TestDividerReset(t *testing.T) {
	// LDH ($04),A ; JR -2
	con := newConsole(t, nil, 0xe0, 0x04, 0x18, 0xfe)
	test.ExpectSuccess(t, con.Step())
	test.ExpectEquality(t, con.Timer.Divider(), uint16(3))
	test.ExpectEquality(t, con.Mem.Peek(addresses.DIV), uint8(0))
}

func TestTimerInterrupt(t *testing.T) {
	program := []uint8{
		0x3e, 0x04, // LD A,$04
		0xe0, 0xff, // LDH ($ff),A
		0x3e, 0x05, // LD A,$05
		0xe0, 0x07, // LDH ($07),A
		0xfb,       // EI
		0x18, 0xfe, // JR -2
	}
	data := newCartridge(program...)

	// interrupt handler. LD A,$42 ; HALT
	copy(data[interrupts.Timer.Vector():], []uint8{0x3e, 0x42, 0x76})

	con, err := hardware.NewConsole(nil, data, nil)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, con.RunForTicks(1000))
	test.ExpectEquality(t, con.CPU.A.Value(), uint8(0x05))
	test.ExpectEquality(t, con.CPU.State, cpu.Normal)

	// 256 increments at a rate of 16 cycles
	test.ExpectSuccess(t, con.RunForTicks(4000))
	test.ExpectEquality(t, con.CPU.A.Value(), uint8(0x42))
	test.ExpectEquality(t, con.CPU.State, cpu.Halted)
	test.ExpectEquality(t, con.Interrupts.Requested()&interrupts.Timer.Mask(), uint8(0))
}

func TestJoypad(t *testing.T) {
	// LD A,$10 ; LDH ($00),A ; JR -2
	con := newConsole(t, nil, 0x3e, 0x10, 0xe0, 0x00, 0x18, 0xfe)
	con.Plug(&mockDevice{state: input.Start})

	test.ExpectSuccess(t, con.Step())
	test.ExpectSuccess(t, con.Step())
	test.ExpectSuccess(t, con.Tick())

	test.ExpectEquality(t, con.Mem.Peek(addresses.P1), uint8(0xd7))
	test.ExpectInequality(t, con.Interrupts.Requested()&interrupts.Joypad.Mask(), uint8(0))
}

func TestFault(t *testing.T) {
	// LD B,$99 ; illegal opcode
	con := newConsole(t, nil, 0x06, 0x99, 0xd3)

	test.ExpectSuccess(t, con.Step())
	err := con.Step()
	test.DemandFailure(t, err)

	var fault *hardware.Fault
	test.DemandSuccess(t, errors.As(err, &fault))
	test.ExpectSuccess(t, curated.Has(err, cpu.UnknownOpcode))
	test.ExpectEquality(t, fault.State, cpu.Dead)
	test.ExpectEquality(t, fault.Registers.BC>>8, uint16(0x99))
	test.ExpectEquality(t, fault.Registers.PC, addresses.Entry+3)
	test.ExpectEquality(t, con.Fault(), fault)

	// the console will not continue after a fault
	clock := con.Clock
	test.ExpectFailure(t, con.Tick())
	test.ExpectEquality(t, con.Clock, clock)

	var b bytes.Buffer
	fault.Report(&b)
	test.ExpectSuccess(t, bytes.Contains(b.Bytes(), []byte("unknown opcode")))

	b.Reset()
	fault.Visualise(&b)
	test.ExpectSuccess(t, b.Len() > 0)

	con.Reset()
	test.ExpectSuccess(t, con.Fault() == nil)
	test.ExpectSuccess(t, con.Tick())
}

func TestReset(t *testing.T) {
	// MBC1 with RAM and eight ROM banks
	data := make([]uint8, 0x20000)
	data[0x147] = 0x02
	data[0x148] = 0x02
	data[0x149] = 0x02
	copy(data[addresses.Entry:], []uint8{0x18, 0xfe})

	con, err := hardware.NewConsole(nil, data, nil)
	test.DemandSuccess(t, err)

	con.Mem.Write(0x2000, 0x03)
	con.Mem.Write(0x0000, 0x0a)
	con.Mem.Write(0xa000, 0x77)
	con.Mem.Write(addresses.TAC, 0x05)
	con.Mem.Write(addresses.IE, 0x1f)
	con.Mem.Write(0xc000, 0x99)
	con.Mem.Write(0x9800, 0x12)
	con.Mem.Write(0xff80, 0x34)
	test.ExpectSuccess(t, con.RunForTicks(300))

	_, romN, _ := con.Mem.Cart.Banks()
	test.ExpectEquality(t, romN, 3)

	con.Reset()

	_, romN, _ = con.Mem.Cart.Banks()
	test.ExpectEquality(t, romN, 1)
	test.ExpectEquality(t, con.Mem.Peek(addresses.TAC), uint8(0x00))
	test.ExpectEquality(t, con.Mem.Peek(addresses.IE), uint8(0x00))
	test.ExpectEquality(t, con.Mem.Peek(0xc000), uint8(0x00))
	test.ExpectEquality(t, con.Mem.Peek(0x9800), uint8(0x00))
	test.ExpectEquality(t, con.Mem.Peek(0xff80), uint8(0x00))
	test.ExpectEquality(t, con.Mem.Peek(addresses.DIV), uint8(0xab))
	test.ExpectEquality(t, con.Clock, uint64(0))
	test.ExpectEquality(t, con.CPU.PC.Value(), addresses.Entry)

	// cartridge RAM survives the reset but is disabled again
	test.ExpectEquality(t, con.Mem.Read(0xa000), uint8(0xff))
	con.Mem.Write(0x0000, 0x0a)
	test.ExpectEquality(t, con.Mem.Read(0xa000), uint8(0x77))
}

func TestRunForFrameCount(t *testing.T) {
	// LD A,$80 ; LDH ($40),A ; JR -2
	con := newConsole(t, nil, 0x3e, 0x80, 0xe0, 0x40, 0x18, 0xfe)
	test.ExpectSuccess(t, con.RunForFrameCount(2, nil))
	test.ExpectEquality(t, con.Display.Frame(), 2)

	// stopped early by the continue check
	test.ExpectSuccess(t, con.RunForFrameCount(10, func(frame int) (bool, error) {
		return frame < 3, nil
	}))
	test.ExpectEquality(t, con.Display.Frame(), 3)
}
