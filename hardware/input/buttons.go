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

package input

import (
	"strings"
)

// Buttons is a bitmask of the buttons currently held down. The direction
// buttons occupy the lower nibble and the action buttons the upper nibble.
type Buttons uint8

// List of valid Buttons values.
const (
	Right Buttons = 1 << iota
	Left
	Up
	Down
	A
	B
	Select
	Start
)

const (
	directions = Right | Left | Up | Down
	actions    = A | B | Select | Start
)

var buttonNames = []struct {
	b    Buttons
	name string
}{
	{Right, "RIGHT"},
	{Left, "LEFT"},
	{Up, "UP"},
	{Down, "DOWN"},
	{A, "A"},
	{B, "B"},
	{Select, "SELECT"},
	{Start, "START"},
}

func (b Buttons) String() string {
	var s strings.Builder
	for _, n := range buttonNames {
		if b&n.b == n.b {
			if s.Len() > 0 {
				s.WriteRune('+')
			}
			s.WriteString(n.name)
		}
	}
	if s.Len() == 0 {
		return "none"
	}
	return s.String()
}

// ParseButton returns the Buttons value for the named button. Names are case
// insensitive.
func ParseButton(name string) (Buttons, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for _, n := range buttonNames {
		if n.name == name {
			return n.b, true
		}
	}
	return 0, false
}
