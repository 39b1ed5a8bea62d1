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
	"github.com/jetsetilly/gopherboy/curated"
)

// Disjoint regions read from one region and write to another. Used where the
// effect of writing a value is different to what is read back.
type Disjoint struct {
	read  Region
	write Region
}

// NewDisjoint creates a Disjoint region. Both regions must be the same
// length.
func NewDisjoint(read Region, write Region) (*Disjoint, error) {
	if read.Len() != write.Len() {
		return nil, curated.Errorf(IllegalDmaState, curated.Errorf("mismatched region lengths (%d and %d)", read.Len(), write.Len()))
	}
	return &Disjoint{read: read, write: write}, nil
}

func (r *Disjoint) Read(address uint16, direct bool) uint8 {
	return r.read.Read(address, direct)
}

func (r *Disjoint) Write(address uint16, data []uint8, direct bool) {
	r.write.Write(address, data, direct)
}

func (r *Disjoint) Len() int {
	return r.read.Len()
}

// Reset both the read and write regions if they can be reset.
func (r *Disjoint) Reset() {
	if rs, ok := r.read.(Resetter); ok {
		rs.Reset()
	}
	if rs, ok := r.write.(Resetter); ok {
		rs.Reset()
	}
}
