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

package bus

// Plain is simple storage. There is no difference between direct and mediated
// access.
type Plain struct {
	data []uint8
}

// NewPlain creates a Plain region of the specified size. The region is
// cleared to zero.
func NewPlain(size int) *Plain {
	return &Plain{data: make([]uint8, size)}
}

// NewPlainFrom creates a Plain region that uses the supplied slice for
// storage.
func NewPlainFrom(data []uint8) *Plain {
	return &Plain{data: data}
}

func (r *Plain) Read(address uint16, _ bool) uint8 {
	if int(address) >= len(r.data) {
		return Unconnected
	}
	return r.data[address]
}

func (r *Plain) Write(address uint16, data []uint8, _ bool) {
	if int(address) >= len(r.data) {
		return
	}
	copy(r.data[address:], data)
}

func (r *Plain) Len() int {
	return len(r.data)
}

// Reset clears the region to zero.
func (r *Plain) Reset() {
	clear(r.data)
}

// Data returns the underlying storage.
func (r *Plain) Data() []uint8 {
	return r.data
}

// Unusable is a region that is not connected to anything. Reads return 0xff
// and writes are discarded.
type Unusable struct {
	size int
}

// NewUnusable creates an Unusable region of the specified size.
func NewUnusable(size int) *Unusable {
	return &Unusable{size: size}
}

func (r *Unusable) Read(_ uint16, _ bool) uint8 {
	return Unconnected
}

func (r *Unusable) Write(_ uint16, _ []uint8, _ bool) {
}

func (r *Unusable) Len() int {
	return r.size
}
