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

package callstack_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/cpu/callstack"
	"github.com/jetsetilly/gopherboy/test"
)

func TestCallReturn(t *testing.T) {
	cs := callstack.NewCallStack()
	test.ExpectSuccess(t, cs.Call(0x2000, 0x0103))
	test.ExpectSuccess(t, cs.Call(0x3000, 0x2005))
	test.ExpectEquality(t, cs.Depth(), 2)

	w := &test.Writer{}
	cs.Write(w)
	test.ExpectSuccess(t, w.Compare("0x3000 (returns to 0x2005)\n0x2000 (returns to 0x0103)\n"))

	test.ExpectSuccess(t, cs.Return(0x2005))
	test.ExpectSuccess(t, cs.Return(0x0103))
	test.ExpectEquality(t, cs.Depth(), 0)
	test.ExpectFailure(t, cs.Disabled())
}

func TestInconsistent(t *testing.T) {
	cs := callstack.NewCallStack()
	test.ExpectSuccess(t, cs.Call(0x2000, 0x0103))

	err := cs.Return(0x1234)
	test.ExpectSuccess(t, curated.Is(err, callstack.InconsistentCallStackState))
	test.ExpectSuccess(t, cs.Disabled())

	// disabled tracker ignores everything
	test.ExpectSuccess(t, cs.Return(0x0000))
	test.ExpectSuccess(t, cs.Call(0x2000, 0x0103))
	test.ExpectEquality(t, cs.Depth(), 1)

	cs.Reset()
	test.ExpectFailure(t, cs.Disabled())
	test.ExpectEquality(t, cs.Depth(), 0)

	err = cs.Return(0x0000)
	test.ExpectSuccess(t, curated.Is(err, callstack.InconsistentCallStackState))
}

func TestMaxDepth(t *testing.T) {
	cs := callstack.NewCallStack()
	cs.SetMaxDepth(2)
	test.ExpectSuccess(t, cs.Call(0x2000, 0x0103))
	test.ExpectSuccess(t, cs.Call(0x3000, 0x2005))

	err := cs.Call(0x4000, 0x3005)
	test.ExpectSuccess(t, curated.Is(err, callstack.InconsistentCallStackState))
	test.ExpectSuccess(t, cs.Disabled())
	test.ExpectEquality(t, cs.Depth(), 2)

	// ignored
	cs.SetMaxDepth(0)
	cs.Reset()
	test.ExpectSuccess(t, cs.Call(0x2000, 0x0103))
	test.ExpectSuccess(t, cs.Call(0x3000, 0x2005))
	test.ExpectFailure(t, cs.Call(0x4000, 0x3005))
}
