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

// File is the complete register file of the CPU.
type File struct {
	A *Register
	F *Flags
	B *Register
	C *Register
	D *Register
	E *Register
	H *Register
	L *Register

	SP *Register16
	PC *Register16

	AF *Pair
	BC *Pair
	DE *Pair
	HL *Pair
}

// NewFile returns a register file with every register set to zero.
func NewFile() *File {
	f := &File{
		A:  NewRegister(0, "A"),
		F:  &Flags{},
		B:  NewRegister(0, "B"),
		C:  NewRegister(0, "C"),
		D:  NewRegister(0, "D"),
		E:  NewRegister(0, "E"),
		H:  NewRegister(0, "H"),
		L:  NewRegister(0, "L"),
		SP: NewRegister16(0, "SP"),
		PC: NewRegister16(0, "PC"),
	}
	f.AF = NewPair(f.A, f.F)
	f.BC = NewPair(f.B, f.C)
	f.DE = NewPair(f.D, f.E)
	f.HL = NewPair(f.H, f.L)
	return f
}

// Reset every register to zero.
func (f *File) Reset() {
	f.AF.Load(0)
	f.BC.Load(0)
	f.DE.Load(0)
	f.HL.Load(0)
	f.SP.Load(0)
	f.PC.Load(0)
}

// Snapshot is a copy of the register file at a point in time.
type Snapshot struct {
	AF uint16
	BC uint16
	DE uint16
	HL uint16
	SP uint16
	PC uint16
}

func (s Snapshot) String() string {
	return fmt.Sprintf("AF=%#04x BC=%#04x DE=%#04x HL=%#04x SP=%#04x PC=%#04x", s.AF, s.BC, s.DE, s.HL, s.SP, s.PC)
}

// Snapshot returns a copy of the current register values.
func (f *File) Snapshot() Snapshot {
	return Snapshot{
		AF: f.AF.Value(),
		BC: f.BC.Value(),
		DE: f.DE.Value(),
		HL: f.HL.Value(),
		SP: f.SP.Value(),
		PC: f.PC.Value(),
	}
}

// Restore register values from a snapshot.
func (f *File) Restore(s Snapshot) {
	f.AF.Load(s.AF)
	f.BC.Load(s.BC)
	f.DE.Load(s.DE)
	f.HL.Load(s.HL)
	f.SP.Load(s.SP)
	f.PC.Load(s.PC)
}

func (f *File) String() string {
	return fmt.Sprintf("%s %s %s", f.Snapshot(), f.F, f.A)
}
