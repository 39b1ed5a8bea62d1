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

// Package callstack tracks the CALL and RET instructions executed by the CPU.
// Servicing of an interrupt counts as a call and RETI as a return.
//
// The tracker is optional tooling and does not affect emulation. If the
// stack becomes inconsistent, for example because the program has
// manipulated the stack pointer directly, an error is returned and the
// tracker disables itself until it is reset.
package callstack

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopherboy/curated"
)

// InconsistentCallStackState is the pattern for errors returned when a
// return does not match the most recent call.
const InconsistentCallStackState = "inconsistent call stack state: %v"

// DefaultMaxDepth is the number of frames stored before the tracker disables
// itself. a program that calls without returning will otherwise grow the
// stack forever
const DefaultMaxDepth = 256

// Frame is a single entry in the call stack.
type Frame struct {
	// the address of the function called
	Target uint16

	// the expected return address
	Return uint16
}

func (f Frame) String() string {
	return fmt.Sprintf("%#04x (returns to %#04x)", f.Target, f.Return)
}

// CallStack is the record of calls that have not yet returned.
type CallStack struct {
	frames   []Frame
	maxDepth int
	disabled bool
}

// NewCallStack is the preferred method of initialisation for the CallStack
// type.
func NewCallStack() *CallStack {
	return &CallStack{
		frames:   make([]Frame, 0, 16),
		maxDepth: DefaultMaxDepth,
	}
}

// SetMaxDepth changes the number of frames stored before the tracker disables
// itself. Values less than one are ignored.
func (cs *CallStack) SetMaxDepth(depth int) {
	if depth < 1 {
		return
	}
	cs.maxDepth = depth
}

// Reset clears the stack and enables the tracker.
func (cs *CallStack) Reset() {
	cs.frames = cs.frames[:0]
	cs.disabled = false
}

// Disabled returns true if the tracker has disabled itself.
func (cs *CallStack) Disabled() bool {
	return cs.disabled
}

// Depth returns the number of frames in the stack.
func (cs *CallStack) Depth() int {
	return len(cs.frames)
}

// Frames returns a copy of the stack. The most recent call is last.
func (cs *CallStack) Frames() []Frame {
	f := make([]Frame, len(cs.frames))
	copy(f, cs.frames)
	return f
}

// Call records a call to target. The ret argument is the address that the
// call is expected to return to.
func (cs *CallStack) Call(target uint16, ret uint16) error {
	if cs.disabled {
		return nil
	}
	if len(cs.frames) >= cs.maxDepth {
		cs.disabled = true
		return curated.Errorf(InconsistentCallStackState, fmt.Sprintf("call depth exceeds %d", cs.maxDepth))
	}
	cs.frames = append(cs.frames, Frame{Target: target, Return: ret})
	return nil
}

// Return records a return to the address. The address must match the
// return address of the most recent call.
func (cs *CallStack) Return(address uint16) error {
	if cs.disabled {
		return nil
	}
	if len(cs.frames) == 0 {
		cs.disabled = true
		return curated.Errorf(InconsistentCallStackState, fmt.Sprintf("return to %#04x with empty stack", address))
	}
	f := cs.frames[len(cs.frames)-1]
	if f.Return != address {
		cs.disabled = true
		return curated.Errorf(InconsistentCallStackState, fmt.Sprintf("return to %#04x does not match call to %s", address, f))
	}
	cs.frames = cs.frames[:len(cs.frames)-1]
	return nil
}

// Write the call stack to io.Writer. The most recent call is written first.
func (cs *CallStack) Write(w io.Writer) {
	for i := len(cs.frames) - 1; i >= 0; i-- {
		fmt.Fprintln(w, cs.frames[i])
	}
}
