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

package addresses

// Entry is the address the CPU begins executing cartridge code from.
const Entry = uint16(0x0100)

// Memory mapped registers.
const (
	P1   = uint16(0xff00)
	SB   = uint16(0xff01)
	SC   = uint16(0xff02)
	DIV  = uint16(0xff04)
	TIMA = uint16(0xff05)
	TMA  = uint16(0xff06)
	TAC  = uint16(0xff07)
	IF   = uint16(0xff0f)
	LCDC = uint16(0xff40)
	STAT = uint16(0xff41)
	SCY  = uint16(0xff42)
	SCX  = uint16(0xff43)
	LY   = uint16(0xff44)
	LYC  = uint16(0xff45)
	DMA  = uint16(0xff46)
	BGP  = uint16(0xff47)
	OBP0 = uint16(0xff48)
	OBP1 = uint16(0xff49)
	WY   = uint16(0xff4a)
	WX   = uint16(0xff4b)
	KEY1 = uint16(0xff4d)
	VBK  = uint16(0xff4f)
	BOOT = uint16(0xff50)

	HDMA1 = uint16(0xff51)
	HDMA2 = uint16(0xff52)
	HDMA3 = uint16(0xff53)
	HDMA4 = uint16(0xff54)
	HDMA5 = uint16(0xff55)

	BCPS = uint16(0xff68)
	BCPD = uint16(0xff69)
	OCPS = uint16(0xff6a)
	OCPD = uint16(0xff6b)
	SVBK = uint16(0xff70)
	IE   = uint16(0xffff)
)

// Canonical is a map of memory mapped register addresses to their canonical
// names.
var Canonical = map[uint16]string{
	P1:    "P1",
	SB:    "SB",
	SC:    "SC",
	DIV:   "DIV",
	TIMA:  "TIMA",
	TMA:   "TMA",
	TAC:   "TAC",
	IF:    "IF",
	LCDC:  "LCDC",
	STAT:  "STAT",
	SCY:   "SCY",
	SCX:   "SCX",
	LY:    "LY",
	LYC:   "LYC",
	DMA:   "DMA",
	BGP:   "BGP",
	OBP0:  "OBP0",
	OBP1:  "OBP1",
	WY:    "WY",
	WX:    "WX",
	KEY1:  "KEY1",
	VBK:   "VBK",
	BOOT:  "BOOT",
	HDMA1: "HDMA1",
	HDMA2: "HDMA2",
	HDMA3: "HDMA3",
	HDMA4: "HDMA4",
	HDMA5: "HDMA5",
	BCPS:  "BCPS",
	BCPD:  "BCPD",
	OCPS:  "OCPS",
	OCPD:  "OCPD",
	SVBK:  "SVBK",
	IE:    "IE",
}
