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

// Package digest contains an implementation of the display.Renderer interface
// that produces a cryptographic hash of the video state of the console. The
// hash can be used to compare the output of subsequent emulation runs. If a
// new hash differs from a previously recorded value then something has
// changed.
//
// No pixels are generated by the emulation so the hash is built from the
// video memory, the object attribute memory and the display registers as
// they are at the end of every visible scanline.
package digest

// Digest implementations return a cryptographic hash with Hash().
type Digest interface {
	Hash() string
	ResetDigest()
}
