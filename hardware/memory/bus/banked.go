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

// Banked storage is a set of equally sized banks, only one of which is
// visible at any one time. The visible bank is chosen by the selector
// function on every access.
type Banked struct {
	banks    [][]uint8
	bankSize int
	selector func() int

	// if enabled is not nil then mediated access is only possible when it
	// returns true
	enabled func() bool
}

// NewBanked creates count banks of bankSize bytes. Bank numbers returned by
// the selector wrap around the number of banks.
func NewBanked(bankSize int, count int, selector func() int) *Banked {
	r := &Banked{
		banks:    make([][]uint8, count),
		bankSize: bankSize,
		selector: selector,
	}
	for i := range r.banks {
		r.banks[i] = make([]uint8, bankSize)
	}
	return r
}

// NewBankedFrom creates a Banked region from existing bank data. Every bank
// must be bankSize bytes long.
func NewBankedFrom(banks [][]uint8, bankSize int, selector func() int) *Banked {
	return &Banked{
		banks:    banks,
		bankSize: bankSize,
		selector: selector,
	}
}

// SetToggle attaches an enable toggle. When the toggle returns false mediated
// reads return 0xff and mediated writes are ignored.
func (r *Banked) SetToggle(enabled func() bool) {
	r.enabled = enabled
}

// Bank returns the index of the currently selected bank.
func (r *Banked) Bank() int {
	b := r.selector() % len(r.banks)
	if b < 0 {
		b += len(r.banks)
	}
	return b
}

// NumBanks returns the number of banks in the region.
func (r *Banked) NumBanks() int {
	return len(r.banks)
}

// BankData returns the storage of the numbered bank.
func (r *Banked) BankData(bank int) []uint8 {
	return r.banks[bank]
}

func (r *Banked) Read(address uint16, direct bool) uint8 {
	if int(address) >= r.bankSize {
		return Unconnected
	}
	if !direct && r.enabled != nil && !r.enabled() {
		return Unconnected
	}
	return r.banks[r.Bank()][address]
}

func (r *Banked) Write(address uint16, data []uint8, direct bool) {
	if int(address) >= r.bankSize {
		return
	}
	if !direct && r.enabled != nil && !r.enabled() {
		return
	}
	copy(r.banks[r.Bank()][address:], data)
}

func (r *Banked) Len() int {
	return r.bankSize
}

// Reset clears every bank to zero.
func (r *Banked) Reset() {
	for _, b := range r.banks {
		clear(b)
	}
}
