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

// Package bus defines the Region interface and the closed set of region types
// from which the address space of the console is composed.
//
// Every region is addressed relative to its own origin, starting at zero. The
// Space type maps a flat address to the region that owns it with a
// precomputed index and is itself a Region, which means composites can be
// nested.
//
// All access has a direct flag. Mediated access (direct is false) is the
// access performed by the emulated CPU and can trigger side effects, apply
// masks or be ignored. Direct access never has side effects visible to the
// running program and bypasses toggles and masks. It is used by DMA
// bookkeeping, register producers such as the timer, and by tooling.
package bus
