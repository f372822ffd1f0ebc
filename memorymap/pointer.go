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

// LastByteAddress returns the address of the final byte of a track. The
// declared length is the value stored in the first two bytes of the track,
// which does not count the two length bytes themselves.
func LastByteAddress(trackAddress uint32, declaredLength uint32) uint32 {
	return trackAddress + declaredLength + 1
}

// ResolvePointer converts a 16bit pointer found inside a track into an
// absolute 24bit address.
//
// The pointer is assumed to share a bank with the start of the track. Tracks
// can straddle a bank boundary however, in which case a pointer into the
// tail of the track refers to the following bank. The correction is a single
// step in either direction because a track is never longer than a bank.
func ResolvePointer(raw []byte, trackAddress uint32, lastByteAddress uint32) uint32 {
	pointer := (ReadLE(raw) & OffsetMask) | (trackAddress & BankMask)

	if pointer < trackAddress {
		pointer += BankSize
	} else if pointer > lastByteAddress {
		pointer -= BankSize
	}

	return pointer
}
