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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is what identifies a curated error. The emulation packages
// define their sentinal patterns as exported string constants, for example:
//
//	const UnknownOpcode = "cpu: unknown opcode (%#02x) at (%#04x)"
//
//	err := curated.Errorf(cpu.UnknownOpcode, 0xd3, 0x0150)
//
//	if curated.Is(err, cpu.UnknownOpcode) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain:
//
//	f := curated.Errorf("console: %v", err)
//
//	if curated.Has(f, cpu.UnknownOpcode) {
//		fmt.Println("true")
//	}
//
// Curated errors that wrap another error (any value in the value list that
// is itself an error) support the Unwrap() convention of the standard
// library. This means that errors.Is() and errors.As() from the errors
// package will see through a curated error.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For example, the following:
//
//	a := curated.Errorf("dma: %v", curated.Errorf("dma: illegal state"))
//
// will print as:
//
//	dma: illegal state
//
// and not:
//
//	dma: dma: illegal state
//
// For the purposes of this package we think of chains as being composed of
// parts separted by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
package curated
