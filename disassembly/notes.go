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

// NoteLimit is the highest byte value that is a note or rest. Higher values
// are control opcodes.
const NoteLimit = 0xc3

// Pitch of a note event. Tie and Rest are treated as pitches by the music
// engine.
type Pitch int

// List of valid Pitch values.
const (
	PitchC Pitch = iota
	PitchCSharp
	PitchD
	PitchEFlat
	PitchE
	PitchF
	PitchFSharp
	PitchG
	PitchGSharp
	PitchA
	PitchASharp
	PitchB
	PitchTie
	PitchRest
	NumPitches
)

var pitchNames = [NumPitches]string{
	"C", "C#", "D", "Eb", "E", "F", "F#", "G", "G#", "A", "A#", "B", "Tie", "Rest",
}

func (p Pitch) String() string {
	if p < 0 || p >= NumPitches {
		return fmt.Sprintf("pitch(%d)", int(p))
	}
	return pitchNames[p]
}

// Duration of a note event.
type Duration int

// List of valid Duration values.
const (
	DurationWhole Duration = iota
	DurationHalf
	DurationHalfTriplet
	DurationDottedQuarter
	DurationQuarter
	DurationQuarterTriplet
	DurationDottedEighth
	DurationEighth
	DurationEighthTriplet
	DurationSixteenth
	DurationSixteenthTriplet
	DurationThirtySecond
	DurationThirtySecondTriplet
	DurationSixtyFourth
	NumDurations
)

var durationNames = [NumDurations]string{
	"1/1", "1/2", "1/3", "3/8", "1/4", "1/6", "3/16", "1/8", "1/12", "1/16", "1/24", "1/32", "1/48", "1/64",
}

// durationTicks is the length of each duration in engine ticks. the ramp
// opcodes specify their length in ticks, see LengthName()
var durationTicks = [NumDurations]uint8{
	0xc0, 0x60, 0x40, 0x48, 0x30, 0x20, 0x24, 0x18, 0x10, 0x0c, 0x08, 0x06, 0x04, 0x03,
}

func (d Duration) String() string {
	if d < 0 || d >= NumDurations {
		return fmt.Sprintf("duration(%d)", int(d))
	}
	return durationNames[d]
}

// Ticks returns the length of the duration in engine ticks.
func (d Duration) Ticks() uint8 {
	if d < 0 || d >= NumDurations {
		return 0
	}
	return durationTicks[d]
}

// DecodeNote splits a note byte into its pitch and duration. Returns false
// if the byte is a control opcode.
func DecodeNote(b uint8) (Pitch, Duration, bool) {
	if b > NoteLimit {
		return 0, 0, false
	}
	return Pitch(b / uint8(NumDurations)), Duration(b % uint8(NumDurations)), true
}

// EncodeNote is the inverse of DecodeNote.
func EncodeNote(p Pitch, d Duration) uint8 {
	return uint8(int(p)*int(NumDurations) + int(d))
}

// LengthName returns the duration name for a length given in ticks, as used
// by the ramp opcodes. Lengths that do not correspond to a note duration are
// returned as a tick count.
func LengthName(ticks uint8) string {
	for d, t := range durationTicks {
		if t == ticks {
			return durationNames[d]
		}
	}
	return fmt.Sprintf("%d ticks", ticks)
}

func describeNote(b uint8) string {
	p, d, _ := DecodeNote(b)
	return fmt.Sprintf("%s [%s]", p, d)
}
