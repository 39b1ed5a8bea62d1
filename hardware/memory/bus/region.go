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

// Region is implemented by every type that can be part of the address space.
// Addresses are relative to the start of the region.
type Region interface {
	Read(address uint16, direct bool) uint8

	// Write data starting at address. Implementations may ignore some or all
	// of the data.
	Write(address uint16, data []uint8, direct bool)

	// Len returns the number of addresses covered by the region.
	Len() int
}

// Resetter is implemented by regions that can be returned to their power-on
// state.
type Resetter interface {
	Reset()
}

// the value read from addresses that are not connected to anything.
const Unconnected = uint8(0xff)

// IllegalDmaState is the pattern for errors caused by an impossible transfer
// configuration. This includes a Disjoint region composed from regions of
// different lengths, the only use of which is for transfer trigger registers.
const IllegalDmaState = "illegal dma state: %v"

// ReadShort reads a little-endian 16 bit value.
func ReadShort(r Region, address uint16, direct bool) uint16 {
	lo := r.Read(address, direct)
	hi := r.Read(address+1, direct)
	return uint16(hi)<<8 | uint16(lo)
}

// ReadRange returns a copy of the inclusive range lo to hi. The range is read
// with direct access.
func ReadRange(r Region, lo uint16, hi uint16) []uint8 {
	if hi < lo {
		return []uint8{}
	}
	d := make([]uint8, 0, int(hi-lo)+1)
	for a := int(lo); a <= int(hi); a++ {
		d = append(d, r.Read(uint16(a), true))
	}
	return d
}
