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

package cartridge

import (
	"fmt"
	"strings"
)

// the minimum size of data that contains a complete header.
const headerEnd = 0x0150

// location of the header fields.
const (
	headerTitle       = 0x0134
	headerColour      = 0x0143
	headerType        = 0x0147
	headerROMSize     = 0x0148
	headerRAMSize     = 0x0149
	headerChecksum    = 0x014d
	headerChecksumLo  = 0x0134
	headerChecksumHi  = 0x014c
	headerTitleLength = 16
)

// Header contains the information found in the cartridge header.
type Header struct {
	Title string

	// cartridge supports the colour variant of the console. if ColourOnly is
	// true then the cartridge will not work on the monochrome variant
	Colour     bool
	ColourOnly bool

	// the cartridge type byte. identifies the bank controller and whether
	// the cartridge has RAM and a battery
	Type uint8

	ROMSize int
	RAMSize int

	Checksum      uint8
	ChecksumValid bool
}

func (h Header) String() string {
	return fmt.Sprintf("%s [%s]", h.Title, typeName(h.Type))
}

var ramSizes = map[uint8]int{
	0x00: 0,
	0x01: 0x2000, // 2KiB in the header but treated as a full bank
	0x02: 0x2000,
	0x03: 0x8000,
	0x04: 0x20000,
	0x05: 0x10000,
}

// ParseHeader returns the header information from the cartridge data.
func ParseHeader(data []uint8) (Header, error) {
	var h Header

	if len(data) < headerEnd {
		return h, fmt.Errorf("cartridge: data too short for header (%d bytes)", len(data))
	}

	h.Colour = data[headerColour]&0x80 == 0x80
	h.ColourOnly = data[headerColour] == 0xc0

	title := data[headerTitle : headerTitle+headerTitleLength]
	if h.Colour {
		title = title[:headerTitleLength-1]
	}
	if i := strings.IndexByte(string(title), 0); i >= 0 {
		title = title[:i]
	}
	h.Title = strings.TrimSpace(string(title))

	h.Type = data[headerType]
	h.ROMSize = 0x8000 << (data[headerROMSize] & 0x0f)

	var ok bool
	h.RAMSize, ok = ramSizes[data[headerRAMSize]]
	if !ok {
		return h, fmt.Errorf("cartridge: unknown RAM size code (%#02x)", data[headerRAMSize])
	}

	var x uint8
	for _, b := range data[headerChecksumLo : headerChecksumHi+1] {
		x = x - b - 1
	}
	h.Checksum = data[headerChecksum]
	h.ChecksumValid = x == h.Checksum

	return h, nil
}

// HasBattery returns true if the cartridge type indicates battery backed RAM.
func (h Header) HasBattery() bool {
	switch h.Type {
	case 0x03, 0x09, 0x1b, 0x1e:
		return true
	}
	return false
}

// HasRAM returns true if the cartridge type indicates that RAM is present.
func (h Header) HasRAM() bool {
	switch h.Type {
	case 0x02, 0x03, 0x08, 0x09, 0x1a, 0x1b, 0x1d, 0x1e:
		return h.RAMSize > 0
	}
	return false
}

func typeName(t uint8) string {
	switch t {
	case 0x00:
		return "ROM ONLY"
	case 0x01:
		return "MBC1"
	case 0x02:
		return "MBC1+RAM"
	case 0x03:
		return "MBC1+RAM+BATTERY"
	case 0x08:
		return "ROM+RAM"
	case 0x09:
		return "ROM+RAM+BATTERY"
	case 0x19:
		return "MBC5"
	case 0x1a:
		return "MBC5+RAM"
	case 0x1b:
		return "MBC5+RAM+BATTERY"
	case 0x1c:
		return "MBC5+RUMBLE"
	case 0x1d:
		return "MBC5+RUMBLE+RAM"
	case 0x1e:
		return "MBC5+RUMBLE+RAM+BATTERY"
	}
	return fmt.Sprintf("unknown (%#02x)", t)
}
