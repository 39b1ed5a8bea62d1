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

import (
	"fmt"
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherboy/hardware/cpu"
	"github.com/jetsetilly/gopherboy/hardware/cpu/registers"
	"github.com/jetsetilly/gopherboy/logger"
)

// Fault is the error returned by the console when a component fails. It
// records the state of the CPU at the moment of failure.
type Fault struct {
	Registers registers.Snapshot
	Flags     string
	State     cpu.State

	// the instruction that was executed immediately before the fault
	LastResult cpu.Result

	// the value of the console clock when the fault occurred
	Clock uint64

	Err error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("hardware: fault at tick %d: %v", f.Clock, f.Err)
}

// Unwrap returns the error that caused the fault.
func (f *Fault) Unwrap() error {
	return f.Err
}

// Report writes a multi-line description of the fault suitable for a
// postmortem.
func (f *Fault) Report(w io.Writer) {
	fmt.Fprintf(w, "%v\n", f.Err)
	fmt.Fprintf(w, "tick:  %d\n", f.Clock)
	fmt.Fprintf(w, "state: %s\n", f.State)
	fmt.Fprintf(w, "regs:  %s\n", f.Registers)
	fmt.Fprintf(w, "flags: %s\n", f.Flags)
	if f.LastResult.Defn != nil {
		fmt.Fprintf(w, "last:  %s\n", f.LastResult)
	}
}

// Visualise writes a graphviz representation of the fault.
func (f *Fault) Visualise(w io.Writer) {
	memviz.Map(w, f)
}

func (con *Console) failed(err error) error {
	con.fault = &Fault{
		Registers:  con.CPU.Snapshot(),
		Flags:      con.CPU.F.String(),
		State:      con.CPU.State,
		LastResult: con.CPU.LastResult,
		Clock:      con.Clock,
		Err:        err,
	}
	logger.Log(logger.Allow, "hardware", con.fault)
	return con.fault
}
