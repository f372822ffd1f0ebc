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

package disassembly

import "fmt"

// Hex formats a value as upper case hexadecimal, padded with a leading zero
// to an even number of digits. This is the format used for addresses
// throughout the transcript.
func Hex(v uint32) string {
	s := fmt.Sprintf("%X", v)
	if len(s)%2 != 0 {
		s = "0" + s
	}
	return s
}
