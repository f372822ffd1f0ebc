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

// Package songtable reads the table of songs from the ROM image.
//
// The song table is made of three parts: a byte holding the number of songs,
// a table of three byte track pointers and a table of instrument sets. The
// location of each part is specified by the Layout type. DefaultLayout is
// correct for the North American release of the game.
//
// The table is parsed once, by NewTable(). Songs can then be disassembled
// and their instrument sets edited. Edits are made to the ROM image passed to
// NewTable(), which can then be saved with the romloader package.
package songtable
