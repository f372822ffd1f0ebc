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

import (
	"fmt"
	"strings"
)

// the number of spaces used for each level of repeat nesting
const indentWidth = 4

// Entry is a single decoded step of a track. Entries are created in the order
// they appear in the track and are not changed once created.
type Entry struct {
	// absolute address of the opcode
	Address uint32

	// offset of the opcode from the start of the track
	Offset int

	Opcode   uint8
	Operands []uint8

	// the repeat nesting level before the opcode takes effect. the level can
	// be negative if a track ends more repeat blocks than it starts
	Level int

	// channels that begin at this entry, in channel order. most entries will
	// have an empty list
	Channels []int

	Description string
}

// IsNote returns true if the entry is a note or rest rather than a control
// opcode.
func (e *Entry) IsNote() bool {
	return !IsOpcode(e.Opcode)
}

func (e *Entry) indent() string {
	if e.Level <= 0 {
		return ""
	}
	return strings.Repeat(" ", e.Level*indentWidth)
}

// String returns the transcript line for the entry, not including any
// channel banners or a terminating newline.
func (e *Entry) String() string {
	return fmt.Sprintf("%s: %s  %s%s", Hex(e.Address), Hex(uint32(e.Opcode)), e.indent(), e.Description)
}

// operandString returns the operand bytes in hex, separated by a space.
func (e *Entry) operandString() string {
	s := make([]string, len(e.Operands))
	for i, o := range e.Operands {
		s[i] = Hex(uint32(o))
	}
	return strings.Join(s, " ")
}
