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

// Package romloader is used to load the ROM image containing the music data.
//
// The Load() function handles loading of data from different sources.
// Currently local files and data over HTTP are supported.
//
// SNES ROM dumps are sometimes prefixed with a 512 byte header added by the
// copier device that created them. The header is detected by the size of the
// file and is stored separately from the ROM data. The Save() function writes
// the header back so that a modified image can be used wherever the original
// could be.
//
// The simplest instance of the Loader type:
//
//	rl := romloader.NewLoader("roms/ff3.smc")
//	err := rl.Load()
package romloader
