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

// Package memorymap deals with the address spaces of the SNES ROM image.
//
// Addresses are held as uint32 values with only the lower 24 bits being
// significant. Two address spaces are used: the HiROM bus address space, as
// used by the pointer tables in the game itself, and "normal" address space,
// which is a simple offset into the ROM image (without a copier header).
//
// The ResolvePointer() function is the important part of the package. Music
// tracks contain 16bit pointers that are relative to the bank containing the
// start of the track, except when the track crosses into the following bank.
// For example, a track starting at 0x08fe43 and ending at 0x090a10 might
// contain a channel pointer of 0x0123, which must resolve to 0x090123 and
// not 0x080123.
package memorymap
