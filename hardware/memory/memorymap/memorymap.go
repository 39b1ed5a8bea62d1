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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case ROM:
		return "ROM"
	case VRAM:
		return "VRAM"
	case CartRAM:
		return "Cartridge RAM"
	case WRAM:
		return "WRAM"
	case Echo:
		return "Echo"
	case OAM:
		return "OAM"
	case Unusable:
		return "Unusable"
	case IO:
		return "IO"
	case HRAM:
		return "HRAM"
	case IE:
		return "IE"
	}

	return "undefined"
}

// List of valid Area values.
const (
	Undefined Area = iota
	ROM
	VRAM
	CartRAM
	WRAM
	Echo
	OAM
	Unusable
	IO
	HRAM
	IE
)

// The origin and memory top for each area of memory.
const (
	OriginROM      = uint16(0x0000)
	MemtopROM      = uint16(0x7fff)
	OriginROMBank0 = uint16(0x0000)
	MemtopROMBank0 = uint16(0x3fff)
	OriginROMBankN = uint16(0x4000)
	MemtopROMBankN = uint16(0x7fff)
	OriginVRAM     = uint16(0x8000)
	MemtopVRAM     = uint16(0x9fff)
	OriginCartRAM  = uint16(0xa000)
	MemtopCartRAM  = uint16(0xbfff)
	OriginWRAM     = uint16(0xc000)
	MemtopWRAM     = uint16(0xdfff)
	OriginWRAMN    = uint16(0xd000)
	OriginEcho     = uint16(0xe000)
	MemtopEcho     = uint16(0xfdff)
	OriginOAM      = uint16(0xfe00)
	MemtopOAM      = uint16(0xfe9f)
	OriginUnusable = uint16(0xfea0)
	MemtopUnusable = uint16(0xfeff)
	OriginIO       = uint16(0xff00)
	MemtopIO       = uint16(0xff7f)
	OriginHRAM     = uint16(0xff80)
	MemtopHRAM     = uint16(0xfffe)
	OriginIE       = uint16(0xffff)
	MemtopIE       = uint16(0xffff)
)

// Size of the individual banks of banked memory.
const (
	ROMBankSize  = 0x4000
	VRAMBankSize = 0x2000
	RAMBankSize  = 0x2000
	WRAMBankSize = 0x1000
)

// Memtop is the top most address of memory.
const Memtop = uint16(0xffff)

// MapAddress returns the area of memory the address belongs to.
func MapAddress(address uint16) Area {
	switch {
	case address <= MemtopROM:
		return ROM
	case address <= MemtopVRAM:
		return VRAM
	case address <= MemtopCartRAM:
		return CartRAM
	case address <= MemtopWRAM:
		return WRAM
	case address <= MemtopEcho:
		return Echo
	case address <= MemtopOAM:
		return OAM
	case address <= MemtopUnusable:
		return Unusable
	case address <= MemtopIO:
		return IO
	case address <= MemtopHRAM:
		return HRAM
	}
	return IE
}
