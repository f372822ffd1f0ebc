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

// Package instruments maps the one byte instrument ids used by the music
// engine to human readable names.
//
// The mapping for a particular ROM is not stored in the ROM itself and must
// be supplied by the user as a JSON file (see Load()). Without a JSON file
// the Default() table can be used, in which every id has a placeholder name.
//
// Id zero is special and always means that an instrument slot is unused. It
// is named with the Nothing sentinal.
package instruments
