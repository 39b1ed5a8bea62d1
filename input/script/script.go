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

package script

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/jetsetilly/gopherboy/hardware/clocks"
	"github.com/jetsetilly/gopherboy/hardware/input"
	"github.com/jetsetilly/gopherboy/logger"
)

// Memory is the interface used by the peek() function. Reads should have no
// side effects.
type Memory interface {
	Peek(address uint16) uint8
}

// Script is an implementation of the input.Device interface.
type Script struct {
	name string
	mem  Memory

	L  *lua.LState
	co *lua.LState
	fn *lua.LFunction

	state input.Buttons

	// number of polls before the script is resumed
	wait int

	done bool
}

// NewScript compiles the script source. The name is used in log entries and
// error messages. The mem argument can be nil, in which case calls to peek()
// from the script will fail.
func NewScript(name string, source string, mem Memory) (*Script, error) {
	scr := &Script{
		name: name,
		mem:  mem,
		L:    lua.NewState(),
	}

	var err error
	scr.fn, err = scr.L.LoadString(source)
	if err != nil {
		scr.L.Close()
		return nil, fmt.Errorf("script: %s: %w", name, err)
	}

	scr.co, _ = scr.L.NewThread()

	scr.L.SetGlobal("press", scr.L.NewFunction(scr.press))
	scr.L.SetGlobal("release", scr.L.NewFunction(scr.release))
	scr.L.SetGlobal("releaseall", scr.L.NewFunction(scr.releaseAll))
	scr.L.SetGlobal("wait", scr.L.NewFunction(scr.waitTicks))
	scr.L.SetGlobal("waitframes", scr.L.NewFunction(scr.waitFrames))
	scr.L.SetGlobal("peek", scr.L.NewFunction(scr.peek))
	scr.L.SetGlobal("log", scr.L.NewFunction(scr.log))

	return scr, nil
}

// LoadScript reads and compiles a script from a file.
func LoadScript(filename string, mem Memory) (*Script, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return NewScript(filename, string(b), mem)
}

func (scr *Script) String() string {
	return fmt.Sprintf("script %s [%s]", scr.name, scr.state)
}

// Close the script. The script can not be used after closing.
func (scr *Script) Close() {
	scr.done = true
	scr.L.Close()
}

// Done returns true if the script has finished.
func (scr *Script) Done() bool {
	return scr.done
}

// Poll implements the input.Device interface.
func (scr *Script) Poll() (input.Buttons, error) {
	for scr.wait == 0 && !scr.done {
		st, err, _ := scr.L.Resume(scr.co, scr.fn)
		switch st {
		case lua.ResumeError:
			scr.done = true
			return scr.state, fmt.Errorf("script: %s: %w", scr.name, err)
		case lua.ResumeOK:
			scr.done = true
			logger.Logf(logger.Allow, "script", "%s: finished", scr.name)
		}
	}

	if scr.wait > 0 {
		scr.wait--
	}

	return scr.state, nil
}

func (scr *Script) button(L *lua.LState) input.Buttons {
	name := L.CheckString(1)
	b, ok := input.ParseButton(name)
	if !ok {
		L.ArgError(1, fmt.Sprintf("unknown button: %s", name))
	}
	return b
}

func (scr *Script) press(L *lua.LState) int {
	scr.state |= scr.button(L)
	return 0
}

func (scr *Script) release(L *lua.LState) int {
	scr.state &^= scr.button(L)
	return 0
}

func (scr *Script) releaseAll(L *lua.LState) int {
	scr.state = 0
	return 0
}

func (scr *Script) yield(L *lua.LState, ticks int) int {
	scr.wait = max(1, ticks)
	return L.Yield()
}

func (scr *Script) waitTicks(L *lua.LState) int {
	return scr.yield(L, L.OptInt(1, 1))
}

func (scr *Script) waitFrames(L *lua.LState) int {
	return scr.yield(L, L.OptInt(1, 1)*clocks.MachineCyclesPerFrame)
}

func (scr *Script) peek(L *lua.LState) int {
	address := L.CheckInt(1)
	if address < 0 || address > 0xffff {
		L.ArgError(1, fmt.Sprintf("address out of range: %#x", address))
	}
	if scr.mem == nil {
		L.RaiseError("no memory available to peek")
	}
	L.Push(lua.LNumber(scr.mem.Peek(uint16(address))))
	return 1
}

func (scr *Script) log(L *lua.LState) int {
	logger.Logf(logger.Allow, "script", "%s: %s", scr.name, L.CheckString(1))
	return 0
}
