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

// Masked is a single byte register where only some of the bits can be
// written by the CPU and only some of the bits can be read. Unreadable bits
// read as one. Direct access ignores both masks.
type Masked struct {
	value    uint8
	initial  uint8
	writable uint8
	readable uint8
}

// NewMasked creates a Masked register.
func NewMasked(value uint8, writable uint8, readable uint8) *Masked {
	return &Masked{value: value, initial: value, writable: writable, readable: readable}
}

// Value returns the stored value, without applying the readable mask.
func (r *Masked) Value() uint8 {
	return r.value
}

// Load the stored value, bypassing the writable mask.
func (r *Masked) Load(v uint8) {
	r.value = v
}

func (r *Masked) Read(_ uint16, direct bool) uint8 {
	if direct {
		return r.value
	}
	return r.value | ^r.readable
}

func (r *Masked) Write(_ uint16, data []uint8, direct bool) {
	if len(data) == 0 {
		return
	}
	if direct {
		r.value = data[0]
		return
	}
	n := data[0]
	r.value = (r.value | (n & r.writable)) & (n | ^r.writable)
}

func (r *Masked) Len() int {
	return 1
}

// Reset restores the value the register was created with.
func (r *Masked) Reset() {
	r.value = r.initial
}

// Resettable is a single byte register that is reset to zero by any mediated
// write. Direct writes store the value.
type Resettable struct {
	value   uint8
	initial uint8
	onReset func()
}

// NewResettable creates a Resettable register. The onReset function is called
// after every mediated write and can be nil.
func NewResettable(value uint8, onReset func()) *Resettable {
	return &Resettable{value: value, initial: value, onReset: onReset}
}

// SetCallback changes the function called after a mediated write.
func (r *Resettable) SetCallback(onReset func()) {
	r.onReset = onReset
}

// Value returns the stored value.
func (r *Resettable) Value() uint8 {
	return r.value
}

func (r *Resettable) Read(_ uint16, _ bool) uint8 {
	return r.value
}

func (r *Resettable) Write(_ uint16, data []uint8, direct bool) {
	if len(data) == 0 {
		return
	}
	if direct {
		r.value = data[0]
		return
	}
	r.value = 0
	if r.onReset != nil {
		r.onReset()
	}
}

func (r *Resettable) Len() int {
	return 1
}

// Reset restores the value the register was created with. The callback is
// not called.
func (r *Resettable) Reset() {
	r.value = r.initial
}
