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

package disassembly_test

import (
	"testing"

	"github.com/jetsetilly/ff6mused/disassembly"
	"github.com/jetsetilly/ff6mused/test"
)

func TestNoteBijection(t *testing.T) {
	for b := 0; b <= disassembly.NoteLimit; b++ {
		p, d, ok := disassembly.DecodeNote(uint8(b))
		test.DemandSuccess(t, ok, b)
		test.ExpectEquality(t, disassembly.EncodeNote(p, d), uint8(b), b)
	}

	_, _, ok := disassembly.DecodeNote(disassembly.NoteLimit + 1)
	test.ExpectFailure(t, ok)
}

func TestNoteValues(t *testing.T) {
	p, d, _ := disassembly.DecodeNote(0x00)
	test.ExpectEquality(t, p, disassembly.PitchC)
	test.ExpectEquality(t, d, disassembly.DurationWhole)

	p, d, _ = disassembly.DecodeNote(0xc3)
	test.ExpectEquality(t, p, disassembly.PitchRest)
	test.ExpectEquality(t, d, disassembly.DurationSixtyFourth)
	test.ExpectEquality(t, p.String(), "Rest")
	test.ExpectEquality(t, d.String(), "1/64")

	p, d, _ = disassembly.DecodeNote(0x2d)
	test.ExpectEquality(t, p.String(), "Eb")
	test.ExpectEquality(t, d.String(), "3/8")

	test.ExpectEquality(t, disassembly.EncodeNote(disassembly.PitchTie, disassembly.DurationEighth), uint8(0xaf))
	test.ExpectEquality(t, disassembly.DurationQuarter.Ticks(), uint8(0x30))
}

func TestLengthName(t *testing.T) {
	for d := disassembly.DurationWhole; d < disassembly.NumDurations; d++ {
		test.ExpectEquality(t, disassembly.LengthName(d.Ticks()), d.String(), d)
	}
	test.ExpectEquality(t, disassembly.LengthName(0xc0), "1/1")
	test.ExpectEquality(t, disassembly.LengthName(0x03), "1/64")
	test.ExpectEquality(t, disassembly.LengthName(0x05), "5 ticks")
}
