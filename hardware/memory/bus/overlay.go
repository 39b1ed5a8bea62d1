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

// Overlay places a boot image over the start of another region. While the
// overlay is active, reads of addresses covered by the boot image are served
// from the boot image. Writes always go to the underlying region.
type Overlay struct {
	under  Region
	boot   []uint8
	active bool

	// addresses in the window fall through to the underlying region even
	// while the overlay is active
	windowLo int
	windowHi int
}

// NewOverlay creates an active overlay. Boot images larger than 0x100 bytes
// do not shadow the cartridge header at 0x100 to 0x1ff.
func NewOverlay(under Region, boot []uint8) *Overlay {
	o := &Overlay{
		under:  under,
		boot:   boot,
		active: len(boot) > 0,
	}
	if len(boot) > 0x100 {
		o.windowLo = 0x100
		o.windowHi = 0x200
	}
	return o
}

// Active returns true if the boot image is visible.
func (o *Overlay) Active() bool {
	return o.active
}

// Disable the overlay. There is no way to reactivate the overlay.
func (o *Overlay) Disable() {
	o.active = false
}

func (o *Overlay) Read(address uint16, direct bool) uint8 {
	a := int(address)
	if o.active && a < len(o.boot) && (a < o.windowLo || a >= o.windowHi) {
		return o.boot[a]
	}
	return o.under.Read(address, direct)
}

func (o *Overlay) Write(address uint16, data []uint8, direct bool) {
	o.under.Write(address, data, direct)
}

func (o *Overlay) Len() int {
	return o.under.Len()
}
