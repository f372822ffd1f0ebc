// This file is part of FF6MusEd.
//
// FF6MusEd is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// FF6MusEd is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with FF6MusEd.  If not, see <https://www.gnu.org/licenses/>.

package memorymap

// BankSize is the size of an address bank. Pointers stored in tracks are 16
// bits wide and so are relative to a bank.
const BankSize = 0x010000

// BankMask isolates the bank part of a 24bit address.
const BankMask = 0xff0000

// OffsetMask isolates the bank-relative part of a 24bit address.
const OffsetMask = 0x00ffff

// hiromMask removes the mirror bits from a HiROM bus address. ROM is mapped
// at 0x400000 and at 0xc00000.
const hiromMask = 0x3fffff

// ReadLE returns the little-endian value of up to four bytes.
func ReadLE(b []byte) uint32 {
	var v uint32
	for i := len(b) - 1; i >= 0; i-- {
		v = (v << 8) | uint32(b[i])
	}
	return v
}

// HiROMToNormal converts a HiROM bus address to an offset into the ROM
// image. Addresses already in normal address space are unchanged.
func HiROMToNormal(address uint32) uint32 {
	return address & hiromMask
}

// BankOf returns the bank number of the address.
func BankOf(address uint32) uint8 {
	return uint8((address & BankMask) >> 16)
}

// SameBank returns true if both addresses are in the same bank.
func SameBank(a, b uint32) bool {
	return a&BankMask == b&BankMask
}
