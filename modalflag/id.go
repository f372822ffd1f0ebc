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

package modalflag

import (
	"strconv"
	"strings"

	"github.com/jetsetilly/ff6mused/curated"
)

// Sentinal error patterns.
const (
	InvalidID = "modalflag: invalid id (%s)"
)

// ParseID parses a command line argument that identifies a song or
// instrument. Hexadecimal values are written with a $ or 0x prefix. Values
// without a prefix are decimal.
func ParseID(s string) (int, error) {
	t := strings.TrimSpace(s)

	base := 10
	switch {
	case strings.HasPrefix(t, "$"):
		t = t[1:]
		base = 16
	case strings.HasPrefix(t, "0x"), strings.HasPrefix(t, "0X"):
		t = t[2:]
		base = 16
	}

	v, err := strconv.ParseUint(t, base, 16)
	if err != nil {
		return 0, curated.Errorf(InvalidID, s)
	}

	return int(v), nil
}
