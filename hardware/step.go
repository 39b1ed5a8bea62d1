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

package hardware

// Tick advances the console by one machine cycle. The components are stepped
// in a fixed order. See the package documentation.
//
// An error is always of type *Fault. Once a fault has occurred the console
// will not tick again until Reset() is called.
func (con *Console) Tick() error {
	if con.fault != nil {
		return con.fault
	}

	if err := con.Joypad.Step(); err != nil {
		return con.failed(err)
	}

	if err := con.CPU.Step(); err != nil {
		return con.failed(err)
	}

	// the DoubleSpeed field may have changed during the previous step. the
	// switch takes effect immediately
	if con.CPU.DoubleSpeed {
		if err := con.CPU.Step(); err != nil {
			return con.failed(err)
		}
	}

	if err := con.Display.Step(); err != nil {
		return con.failed(err)
	}

	if err := con.DMA.Step(con.Display.HBlank()); err != nil {
		return con.failed(err)
	}

	con.Timer.Step()

	con.Clock++

	return nil
}

// Step the console until the CPU has executed exactly one instruction, or
// serviced one interrupt. If the CPU is halted or stopped the console is
// ticked only once.
//
// Any cycles still owed by a partially executed instruction are run first.
func (con *Console) Step() error {
	for con.CPU.Busy() {
		if err := con.Tick(); err != nil {
			return err
		}
	}

	if err := con.Tick(); err != nil {
		return err
	}

	for con.CPU.Busy() {
		if err := con.Tick(); err != nil {
			return err
		}
	}

	return nil
}
