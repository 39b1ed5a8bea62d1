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

// Package modalflag wraps the flag package in the standard library and adds
// the notion of program modes. A mode is a special command line argument which
// selects a different mode of operation, each mode having its own set of
// flags.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "PERFORMANCE", "DISASM")
//	p, err := md.Parse()
//
// The first sub-mode is the default and is selected when the first argument
// after the flags does not name a mode. Mode comparisons are case insensitive
// and Mode() always returns the upper case name.
//
// Once a mode has been selected, NewMode() prepares for flags specific to that
// mode and Parse() is called again. The Path() function returns the chain of
// modes separated by a forward slash.
package modalflag
