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

// Trigger regions store nothing. A mediated write calls the callback with the
// offset of the address in the region and the value written. Reads return
// 0xff.
type Trigger struct {
	size     int
	callback func(offset uint16, data uint8)
}

// NewTrigger creates a Trigger region. The callback can be nil and attached
// later with SetCallback().
func NewTrigger(size int, callback func(offset uint16, data uint8)) *Trigger {
	return &Trigger{size: size, callback: callback}
}

// SetCallback changes the function called on mediated writes.
func (r *Trigger) SetCallback(callback func(offset uint16, data uint8)) {
	r.callback = callback
}

func (r *Trigger) Read(_ uint16, _ bool) uint8 {
	return Unconnected
}

// Write calls the callback once for each byte of data. Direct writes are
// ignored.
func (r *Trigger) Write(address uint16, data []uint8, direct bool) {
	if direct || r.callback == nil {
		return
	}
	for i, d := range data {
		if int(address)+i >= r.size {
			return
		}
		r.callback(address+uint16(i), d)
	}
}

func (r *Trigger) Len() int {
	return r.size
}

// Echo forwards all access to another region. The echo can be shorter than
// the region it forwards to.
type Echo struct {
	target Region
	size   int
}

// NewEcho creates an Echo of the target region. If size is greater than the
// length of the target then the length of the target is used.
func NewEcho(target Region, size int) *Echo {
	return &Echo{target: target, size: min(size, target.Len())}
}

func (r *Echo) Read(address uint16, direct bool) uint8 {
	if int(address) >= r.size {
		return Unconnected
	}
	return r.target.Read(address, direct)
}

func (r *Echo) Write(address uint16, data []uint8, direct bool) {
	if int(address) >= r.size {
		return
	}
	if int(address)+len(data) > r.size {
		data = data[:r.size-int(address)]
	}
	r.target.Write(address, data, direct)
}

func (r *Echo) Len() int {
	return r.size
}
