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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/display"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
)

// Bus is the memory interface required by the Video digest. Reads should have
// no side effects.
type Bus interface {
	Peek(address uint16) uint8
}

// the display registers that affect the rendering of a scanline
var scanlineRegisters = []uint16{
	addresses.LCDC,
	addresses.SCY,
	addresses.SCX,
	addresses.BGP,
	addresses.OBP0,
	addresses.OBP1,
	addresses.WY,
	addresses.WX,
}

// Video is an implementation of the display.Renderer interface. The hash is
// updated at the start of every frame and is chained so that it depends on
// every frame since the digest was last reset.
type Video struct {
	mem Bus

	digest [sha1.Size]byte

	// the previous digest followed by the register values of every scanline
	// followed by VRAM and OAM
	data []byte

	frameNum int
}

const (
	vramLength = int(memorymap.MemtopVRAM-memorymap.OriginVRAM) + 1
	oamLength  = int(memorymap.MemtopOAM-memorymap.OriginOAM) + 1
)

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo(mem Bus) *Video {
	l := sha1.Size
	l += display.VisibleScanlines * len(scanlineRegisters)
	l += vramLength + oamLength
	return &Video{
		mem:  mem,
		data: make([]byte, l),
	}
}

func (dig *Video) String() string {
	return fmt.Sprintf("frame %d: %s", dig.frameNum, dig.Hash())
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	clear(dig.data)
}

// Frame returns the frame number of the most recent hash.
func (dig *Video) Frame() int {
	return dig.frameNum
}

// NewFrame implements the display.Renderer interface.
func (dig *Video) NewFrame(frameNum int) error {
	i := copy(dig.data, dig.digest[:])
	i += display.VisibleScanlines * len(scanlineRegisters)

	for a := memorymap.OriginVRAM; a <= memorymap.MemtopVRAM; a++ {
		dig.data[i] = dig.mem.Peek(a)
		i++
	}
	for a := memorymap.OriginOAM; a <= memorymap.MemtopOAM; a++ {
		dig.data[i] = dig.mem.Peek(a)
		i++
	}

	dig.digest = sha1.Sum(dig.data)
	dig.frameNum = frameNum
	return nil
}

// NewScanline implements the display.Renderer interface.
func (dig *Video) NewScanline(scanline int) error {
	if scanline < 0 || scanline >= display.VisibleScanlines {
		return fmt.Errorf("digest: scanline out of range (%d)", scanline)
	}
	i := sha1.Size + scanline*len(scanlineRegisters)
	for _, a := range scanlineRegisters {
		dig.data[i] = dig.mem.Peek(a)
		i++
	}
	return nil
}
