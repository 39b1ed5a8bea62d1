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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/cpu"
	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/preferences"
	"github.com/jetsetilly/gopherboy/test"
)

// mockMem is a flat 64KiB address space. there are no side effects.
type mockMem struct {
	data [0x10000]uint8
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.data[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.data[address] = data
}

func (mem *mockMem) Peek(address uint16) uint8 {
	return mem.data[address]
}

func (mem *mockMem) Poke(address uint16, data uint8) {
	mem.data[address] = data
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.data[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.data[address] != value {
		t.Errorf("memory assert failed (%#02x - wanted %#02x at address %#04x)", mem.data[address], value, address)
	}
}

type harness struct {
	prefs *preferences.Preferences
	mem   *mockMem
	ic    *interrupts.Controller
	mc    *cpu.CPU
}

func newHarness(t *testing.T, colour bool) *harness {
	t.Helper()

	prefs, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)

	h := &harness{
		prefs: prefs,
		mem:   &mockMem{},
	}
	h.ic = interrupts.NewController(h.mem, prefs)
	h.mc = cpu.NewCPU(prefs, h.mem, h.ic, colour)
	h.mc.Reset()
	h.mc.SP.Load(0xfffe)

	return h
}

// run places the instructions at the origin and executes n instructions
func (h *harness) run(t *testing.T, origin uint16, n int, bytes ...uint8) {
	t.Helper()
	h.mem.putInstructions(origin, bytes...)
	h.mc.PC.Load(origin)
	for i := 0; i < n; i++ {
		test.DemandSuccess(t, h.mc.ExecuteInstruction())
	}
}
