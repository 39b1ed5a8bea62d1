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

import (
	"fmt"
)

// Space is a composite of non-overlapping regions. The regions are laid out
// in the order they are supplied and must exactly fill the space.
type Space struct {
	regions []Region
	origins []int
	index   []uint8
}

// NewSpace creates a Space of the specified length. The sum of the region
// lengths must equal the length.
func NewSpace(length int, regions ...Region) (*Space, error) {
	if length > 0x10000 {
		return nil, fmt.Errorf("bus: space too large (%d)", length)
	}
	if len(regions) > 0x100 {
		return nil, fmt.Errorf("bus: too many regions in space (%d)", len(regions))
	}

	s := &Space{
		regions: regions,
		origins: make([]int, len(regions)),
		index:   make([]uint8, length),
	}

	var origin int
	for i, r := range regions {
		if origin+r.Len() > length {
			return nil, fmt.Errorf("bus: regions exceed length of space (%d)", length)
		}
		s.origins[i] = origin
		for a := origin; a < origin+r.Len(); a++ {
			s.index[a] = uint8(i)
		}
		origin += r.Len()
	}

	if origin != length {
		return nil, fmt.Errorf("bus: regions do not fill space (%d of %d)", origin, length)
	}

	return s, nil
}

// MustNewSpace is like NewSpace but panics if the space cannot be created.
// Only for use in tables where the layout is fixed.
func MustNewSpace(length int, regions ...Region) *Space {
	s, err := NewSpace(length, regions...)
	if err != nil {
		panic(err)
	}
	return s
}

// Lookup returns the region containing the address and the address relative
// to the start of that region. Returns false if the address is outside the
// space.
func (s *Space) Lookup(address uint16) (Region, uint16, bool) {
	if int(address) >= len(s.index) {
		return nil, 0, false
	}
	i := s.index[address]
	return s.regions[i], address - uint16(s.origins[i]), true
}

func (s *Space) Read(address uint16, direct bool) uint8 {
	r, a, ok := s.Lookup(address)
	if !ok {
		return Unconnected
	}
	return r.Read(a, direct)
}

// Write data starting at address. Writes that span more than one region are
// split at the region boundary.
func (s *Space) Write(address uint16, data []uint8, direct bool) {
	for len(data) > 0 && int(address) < len(s.index) {
		i := s.index[address]
		r := s.regions[i]
		a := address - uint16(s.origins[i])

		n := min(r.Len()-int(a), len(data))
		r.Write(a, data[:n], direct)

		data = data[n:]
		address += uint16(n)

		// address has wrapped around
		if address == 0 {
			return
		}
	}
}

func (s *Space) Len() int {
	return len(s.index)
}

// Reset every region in the space that can be reset.
func (s *Space) Reset() {
	for _, r := range s.regions {
		if rs, ok := r.(Resetter); ok {
			rs.Reset()
		}
	}
}
