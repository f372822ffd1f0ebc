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
	"strings"
	"testing"

	"github.com/jetsetilly/ff6mused/ansi"
	"github.com/jetsetilly/ff6mused/disassembly"
	"github.com/jetsetilly/ff6mused/instruments"
	"github.com/jetsetilly/ff6mused/test"
)

const testAddress = 0x05c000

// makeTrack creates a track at the address. channel offsets are relative to
// the start of the track and the body is placed immediately after the
// header.
func makeTrack(address uint32, offsets [disassembly.NumChannels]int, body ...uint8) []uint8 {
	track := make([]uint8, disassembly.HeaderSize, disassembly.HeaderSize+len(body))
	track = append(track, body...)

	declared := len(track) - 2
	track[0] = uint8(declared)
	track[1] = uint8(declared >> 8)

	for c, o := range offsets {
		p := (address + uint32(o)) & 0xffff
		track[0x06+c*2] = uint8(p)
		track[0x07+c*2] = uint8(p >> 8)
	}

	return track
}

// allAt returns channel offsets with channel 1 at the first offset and every
// other channel at the second offset.
func allAt(first int, rest int) [disassembly.NumChannels]int {
	o := [disassembly.NumChannels]int{first}
	for c := 1; c < len(o); c++ {
		o[c] = rest
	}
	return o
}

func testNames(t *testing.T) *instruments.Table {
	t.Helper()
	tbl, err := instruments.Load(strings.NewReader(`{"01": "Piano", "1B": "Church Organ"}`))
	test.DemandSuccess(t, err)
	return tbl
}

func instrumentSet(ids ...uint8) []uint8 {
	set := make([]uint8, disassembly.InstrumentSetSize)
	for i, id := range ids {
		set[i*2] = id
	}
	return set
}

// a track too short to hold the header is decoded as though the missing
// bytes are zero. the channel pointers all point outside the track so only
// the header block is written
func TestShortTrack(t *testing.T) {
	dsm := disassembly.FromTrack(testAddress, "Short", []uint8{0x04, 0x00, 0x00, 0xeb}, make([]uint8, disassembly.InstrumentSetSize), nil)
	test.ExpectSuccess(t, dsm.Truncated)
	test.ExpectEquality(t, dsm.Header.DeclaredLength, 4)
	test.ExpectEquality(t, len(dsm.Entries), 0)

	for c := 0; c < disassembly.NumChannels; c++ {
		test.ExpectEquality(t, dsm.Header.Channels[c], 0x060000, c)
	}

	w := &test.CompareWriter{}
	test.DemandSuccess(t, dsm.WriteHeader(w, disassembly.WriteAttr{}))
	test.ExpectEquality(t, dsm.String(), w.String())
	test.ExpectFailure(t, strings.Contains(w.String(), "channel 1 ]-"))

	// an empty track is treated in the same way
	dsm = disassembly.FromTrack(testAddress, "Empty", nil, nil, nil)
	test.ExpectSuccess(t, dsm.Truncated)
	test.ExpectEquality(t, len(dsm.Entries), 0)
}

func TestTranscript(t *testing.T) {
	track := makeTrack(testAddress, allAt(0x16, 0x17), 0x00, 0xeb)

	dsm := disassembly.FromTrack(testAddress, "Test", track, instrumentSet(0x00, 0x01), testNames(t))

	rule := strings.Repeat("=", 52)

	var expected strings.Builder
	expected.WriteString(rule + "\n")
	expected.WriteString("-[ 05C000: Test ]-\n")
	expected.WriteString(rule + "\n")
	expected.WriteString("-[ Header ]-----------------------------------------\n")
	expected.WriteString("Length: $16\n")
	expected.WriteString("Channel 1: 05C016\n")
	for c := 2; c <= 8; c++ {
		expected.WriteString("Channel " + string(rune('0'+c)) + ": 05C017\n")
	}
	expected.WriteString("\n")
	expected.WriteString("-[ Instruments ]------------------------------------\n")
	expected.WriteString("$21: Piano\n")
	expected.WriteString("\n" + rule + "\n-[ Test: channel 1 ]-\n" + rule + "\n")
	expected.WriteString("05C016: 00  C [1/1]\n")
	for c := 2; c <= 8; c++ {
		expected.WriteString("\n" + rule + "\n-[ Test: channel " + string(rune('0'+c)) + " ]-\n" + rule + "\n")
	}
	expected.WriteString("05C017: EB  End script\n")

	test.ExpectEquality(t, dsm.String(), expected.String())
	test.ExpectEquality(t, len(dsm.Entries), 2)
	test.ExpectEquality(t, dsm.Truncated, false)
}

func TestCoincidingChannels(t *testing.T) {
	o := [disassembly.NumChannels]int{0x16, 0x16, 0x17, 0x16, 0x18, 0x18, 0x18, 0x18}
	track := makeTrack(testAddress, o, 0x0e, 0x1c, 0xb6)

	dsm := disassembly.FromTrack(testAddress, "Test", track, nil, nil)
	test.DemandEquality(t, len(dsm.Entries), 3)

	channels := func(e *disassembly.Entry) string {
		var s strings.Builder
		for _, c := range e.Channels {
			s.WriteRune(rune('0' + c))
		}
		return s.String()
	}

	test.ExpectEquality(t, channels(dsm.Entries[0]), "124")
	test.ExpectEquality(t, channels(dsm.Entries[1]), "3")
	test.ExpectEquality(t, channels(dsm.Entries[2]), "5678")

	test.ExpectEquality(t, dsm.Entries[0].Description, "C# [1/1]")
	test.ExpectEquality(t, dsm.Entries[1].Description, "D [1/1]")
	test.ExpectEquality(t, dsm.Entries[2].Description, "Rest [1/1]")

	// the banners for channels 1, 2 and 4 all precede the first entry
	s := dsm.String()
	one := strings.Index(s, "-[ Test: channel 1 ]-")
	two := strings.Index(s, "-[ Test: channel 2 ]-")
	four := strings.Index(s, "-[ Test: channel 4 ]-")
	first := strings.Index(s, "05C016: 0E")
	test.ExpectSuccess(t, one < two && two < four && four < first)

	test.ExpectEquality(t, len(dsm.ChannelEntries(1)), 1)
	test.ExpectEquality(t, len(dsm.ChannelEntries(4)), 1)
	test.ExpectEquality(t, len(dsm.ChannelEntries(3)), 1)
	test.ExpectEquality(t, len(dsm.ChannelEntries(8)), 1)
	test.ExpectEquality(t, len(dsm.ChannelEntries(9)), 0)
}

func TestNesting(t *testing.T) {
	track := makeTrack(testAddress, allAt(0x16, 0x16), 0xe2, 0x02, 0x00, 0xe3, 0x00, 0xe3, 0x00)

	dsm := disassembly.FromTrack(testAddress, "Test", track, nil, nil)
	test.DemandEquality(t, len(dsm.Entries), 6)

	expected := []string{
		"05C016: E2  Repeat 3 times",
		"05C018: 00      C [1/1]",
		"05C019: E3      End block of repetition",
		"05C01A: 00  C [1/1]",
		"05C01B: E3  End block of repetition",
		"05C01C: 00  C [1/1]",
	}
	levels := []int{0, 1, 1, 0, 0, -1}

	for i, e := range dsm.Entries {
		test.ExpectEquality(t, e.String(), expected[i], i)
		test.ExpectEquality(t, e.Level, levels[i], i)
	}
}

func TestBranchTargets(t *testing.T) {
	// this track straddles the boundary between bank 08 and bank 09
	const address = 0x08fe43

	track := makeTrack(address, allAt(0x16, 0x16),
		0xf6, 0x00, 0x01,
		0xf5, 0x03, 0x00, 0x01,
		0xfc, 0x50, 0xfe,
	)

	// the declared length is larger than the buffer
	track[0] = 0x00
	track[1] = 0x10

	dsm := disassembly.FromTrack(address, "Test", track, nil, nil)
	test.DemandEquality(t, len(dsm.Entries), 3)

	test.ExpectEquality(t, dsm.Header.Channels[0], uint32(0x08fe59))
	test.ExpectEquality(t, dsm.Entries[0].Description, "Branches to 090100")
	test.ExpectEquality(t, dsm.Entries[1].Description, "Branches to 090100 after 3 repetitions")
	test.ExpectEquality(t, dsm.Entries[2].Description, "Conditionally branches to 08FE50")
}

func TestInstrumentSelection(t *testing.T) {
	track := makeTrack(testAddress, allAt(0x16, 0x16),
		0xdc, 0x21,
		0xdc, 0x05,
		0xdc, 0x20,
		0xdc, 0x2f,
		0xdc, 0x30,
	)

	dsm := disassembly.FromTrack(testAddress, "Test", track, instrumentSet(0x00, 0x01), testNames(t))
	test.DemandEquality(t, len(dsm.Entries), 5)

	test.ExpectEquality(t, dsm.Entries[0].Description, "Set instrument to Piano")
	test.ExpectEquality(t, dsm.Entries[1].Description, "Set instrument to sound effect $05")
	test.ExpectEquality(t, dsm.Entries[2].Description, "Set instrument to Nothing")
	test.ExpectEquality(t, dsm.Entries[3].Description, "Set instrument to Nothing")
	test.ExpectEquality(t, dsm.Entries[4].Description, "Set instrument to unassigned slot $30")

	test.ExpectEquality(t, dsm.Header.Instruments[1], "Piano")
	test.ExpectEquality(t, dsm.Header.Instruments[0], instruments.Nothing)
}

func TestOperandDescriptions(t *testing.T) {
	track := makeTrack(testAddress, allAt(0x16, 0x16),
		0xc5, 0x30, 0x64,
		0xc8, 0x05, 0x02,
		0xf7, 0x10, 0x20,
		0xf8, 0x01, 0x02,
		0xc9, 0x01, 0x02, 0x03,
		0xcd, 0x04, 0x05,
		0xe8, 0x06,
	)

	dsm := disassembly.FromTrack(testAddress, "Test", track, nil, nil)
	test.DemandEquality(t, len(dsm.Entries), 7)

	test.ExpectEquality(t, dsm.Entries[0].Description, "Set volume to 100 over [1/4]")
	test.ExpectEquality(t, dsm.Entries[1].Description, "Change pitch by 2 over [5 ticks]")
	test.ExpectEquality(t, dsm.Entries[2].Description, "Set echo feedback to 32 over 16 frames")
	test.ExpectEquality(t, dsm.Entries[3].Description, "Set filter's (??) to 2 and (??) to 1")
	test.ExpectEquality(t, dsm.Entries[4].Description, "Enable vibrato (delay: 1, duration: 2 amplitude: 3)")
	test.ExpectEquality(t, dsm.Entries[5].Description, "Enable pansweep (delay: 4, cycle duration: 5)")
	test.ExpectEquality(t, dsm.Entries[6].Description, "Add 6 to note duration")
}

func TestTruncated(t *testing.T) {
	track := makeTrack(testAddress, allAt(0x16, 0x16), 0x00, 0xc9, 0x01)

	dsm := disassembly.FromTrack(testAddress, "Test", track, nil, nil)
	test.DemandEquality(t, len(dsm.Entries), 2)

	test.ExpectSuccess(t, dsm.Truncated)
	test.ExpectEquality(t, len(dsm.Entries[1].Operands), 3)
	test.ExpectEquality(t, dsm.Entries[1].Description, "Enable vibrato (delay: 1, duration: 0 amplitude: 0)")
}

func TestEndScriptContinues(t *testing.T) {
	track := makeTrack(testAddress, allAt(0x16, 0x16), 0xeb, 0xff, 0x00)

	dsm := disassembly.FromTrack(testAddress, "Test", track, nil, nil)
	test.DemandEquality(t, len(dsm.Entries), 3)
	test.ExpectEquality(t, dsm.Entries[2].Description, "C [1/1]")
}

func TestDeterminism(t *testing.T) {
	track := makeTrack(testAddress, allAt(0x16, 0x18), 0xd6, 0x04, 0x2e, 0xe2, 0x01, 0x3c, 0xe3, 0xf6, 0x16, 0xc0)
	set := instrumentSet(0x01, 0x1b)
	names := testNames(t)

	a := disassembly.FromTrack(testAddress, "Test", track, set, names)

	// changes to the source data must not affect an existing disassembly
	s := a.String()
	track[0x16] = 0xca
	set[0] = 0x00
	test.ExpectEquality(t, a.String(), s)

	track[0x16] = 0xd6
	set[0] = 0x01
	b := disassembly.FromTrack(testAddress, "Test", track, set, names)
	test.ExpectEquality(t, b.String(), s)
}

func TestWriteAttr(t *testing.T) {
	track := makeTrack(testAddress, allAt(0x16, 0x16), 0xc4, 0x64, 0x00)

	dsm := disassembly.FromTrack(testAddress, "Test", track, nil, nil)

	w := &test.CompareWriter{}
	err := dsm.Write(w, disassembly.WriteAttr{Operands: true})
	test.DemandSuccess(t, err)

	lines := w.Lines()
	test.DemandSuccess(t, len(lines) > 2)
	test.ExpectEquality(t, lines[len(lines)-2], "05C016: C4  Set volume to 100 ; 64")
	test.ExpectEquality(t, lines[len(lines)-1], "05C018: 00  C [1/1]")
	test.ExpectFailure(t, strings.Contains(w.String(), ansi.NormalPen))

	w.Clear()
	err = dsm.Write(w, disassembly.WriteAttr{Color: true})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(w.String(), ansi.Pens["blue"]))
	test.ExpectSuccess(t, strings.Contains(w.String(), ansi.NormalPen))

	// entry lines are never coloured
	lines = w.Lines()
	test.ExpectEquality(t, lines[len(lines)-1], "05C018: 00  C [1/1]")
}

func TestChannelOutsideTrack(t *testing.T) {
	o := allAt(0x40, 0x16)
	track := makeTrack(testAddress, o, 0x00, 0x0e)

	dsm := disassembly.FromTrack(testAddress, "Test", track, nil, nil)

	// decoding starts immediately after the header
	test.DemandEquality(t, len(dsm.Entries), 2)
	test.ExpectEquality(t, dsm.Entries[0].Offset, disassembly.HeaderSize)
}

func TestNestedRepeat(t *testing.T) {
	track := makeTrack(testAddress, allAt(0x16, 0x16), 0xe2, 0x01, 0xe2, 0x03, 0x2a, 0xe3, 0xe3)

	dsm := disassembly.FromTrack(testAddress, "Test", track, nil, nil)
	test.DemandEquality(t, len(dsm.Entries), 5)

	test.ExpectEquality(t, dsm.Entries[0].String(), "05C016: E2  Repeat 2 times")
	test.ExpectEquality(t, dsm.Entries[1].String(), "05C018: E2      Repeat 4 times")
	test.ExpectEquality(t, dsm.Entries[2].String(), "05C01A: 2A          Eb [1/1]")
	test.ExpectEquality(t, dsm.Entries[3].String(), "05C01B: E3          End block of repetition")
	test.ExpectEquality(t, dsm.Entries[4].String(), "05C01C: E3      End block of repetition")
}
