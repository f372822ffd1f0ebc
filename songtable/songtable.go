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

package songtable

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/jetsetilly/ff6mused/curated"
	"github.com/jetsetilly/ff6mused/disassembly"
	"github.com/jetsetilly/ff6mused/instruments"
	"github.com/jetsetilly/ff6mused/logger"
	"github.com/jetsetilly/ff6mused/memorymap"
)

// Sentinal error patterns.
const (
	InvalidIndex       = "songtable: invalid song index (%d)"
	OutOfBounds        = "songtable: %s out of bounds (%s)"
	InstrumentNotInSet = "songtable: instrument $%02X is not used by song $%02X"
	InvalidInstrument  = "songtable: invalid instrument ($%02X)"
)

// the size of each entry in the track pointer table
const pointerSize = 3

// Layout specifies where the song tables are found in the ROM image. All
// addresses are offsets into the image without a copier header.
type Layout struct {
	// address of the single byte holding the number of songs
	SongCount uint32

	// address of the table of three byte track pointers. the pointers are
	// HiROM bus addresses
	TrackPointers uint32

	// address of the table of instrument sets
	InstrumentSets uint32
}

// DefaultLayout is the layout of the North American release of the game.
var DefaultLayout = Layout{
	SongCount:      0x053c5e,
	TrackPointers:  0x053e96,
	InstrumentSets: 0x053f95,
}

// Song is the information in the song table for a single song.
type Song struct {
	Index int

	// the value in the track pointer table
	Pointer uint32

	// the pointer converted to an offset in the ROM image
	TrackAddress uint32

	// the value stored in the first two bytes of the track. the length of
	// the track data is two bytes longer than this
	Length uint32

	// the track continues into the bank following the one it starts in.
	// pointers in the track are resolved relative to both banks
	CrossesBank bool

	InstrumentSetAddress uint32

	// the even bytes of the instrument set
	Instruments [disassembly.NumSlots]uint8
}

func (s Song) String() string {
	return fmt.Sprintf("$%02X: %s", s.Index, disassembly.Hex(s.TrackAddress))
}

// Table is the parsed song table of a ROM image. Changes made with
// ReplaceInstrument() are made directly to the ROM image.
type Table struct {
	crit sync.Mutex

	rom    []byte
	layout Layout
	songs  []Song
}

// NewTable parses the song table in the ROM image.
func NewTable(rom []byte, layout Layout) (*Table, error) {
	tbl := &Table{
		rom:    rom,
		layout: layout,
	}

	if int(layout.SongCount) >= len(rom) {
		return nil, curated.Errorf(OutOfBounds, "song count", disassembly.Hex(layout.SongCount))
	}

	n := int(rom[layout.SongCount])

	if !tbl.inBounds(layout.TrackPointers, uint32(n*pointerSize)) {
		return nil, curated.Errorf(OutOfBounds, "track pointer table", disassembly.Hex(layout.TrackPointers))
	}

	if !tbl.inBounds(layout.InstrumentSets, uint32(n*disassembly.InstrumentSetSize)) {
		return nil, curated.Errorf(OutOfBounds, "instrument set table", disassembly.Hex(layout.InstrumentSets))
	}

	tbl.songs = make([]Song, n)
	for i := range tbl.songs {
		err := tbl.parseSong(i)
		if err != nil {
			return nil, err
		}
	}

	logger.Logf(logger.Allow, "songtable", "%d songs", n)

	return tbl, nil
}

func (tbl *Table) inBounds(address uint32, length uint32) bool {
	return uint64(address)+uint64(length) <= uint64(len(tbl.rom))
}

func (tbl *Table) parseSong(i int) error {
	s := Song{
		Index: i,
	}

	p := tbl.layout.TrackPointers + uint32(i*pointerSize)
	s.Pointer = memorymap.ReadLE(tbl.rom[p : p+pointerSize])
	s.TrackAddress = memorymap.HiROMToNormal(s.Pointer)

	if !tbl.inBounds(s.TrackAddress, 2) {
		return curated.Errorf(OutOfBounds, fmt.Sprintf("track for song $%02X", i), disassembly.Hex(s.TrackAddress))
	}

	s.Length = memorymap.ReadLE(tbl.rom[s.TrackAddress : s.TrackAddress+2])
	if !tbl.inBounds(s.TrackAddress, s.Length+2) {
		return curated.Errorf(OutOfBounds, fmt.Sprintf("track for song $%02X", i), disassembly.Hex(s.TrackAddress))
	}

	last := memorymap.LastByteAddress(s.TrackAddress, s.Length)
	if !memorymap.SameBank(s.TrackAddress, last) {
		s.CrossesBank = true
		logger.Logf(logger.Allow, "songtable", "track for song $%02X crosses into bank $%02X", i, memorymap.BankOf(last))
	}

	s.InstrumentSetAddress = tbl.layout.InstrumentSets + uint32(i*disassembly.InstrumentSetSize)
	tbl.refreshInstruments(&s)

	tbl.songs[i] = s

	return nil
}

func (tbl *Table) refreshInstruments(s *Song) {
	for slot := range s.Instruments {
		s.Instruments[slot] = tbl.rom[s.InstrumentSetAddress+uint32(slot*2)]
	}
}

// NumSongs returns the number of songs in the table.
func (tbl *Table) NumSongs() int {
	return len(tbl.songs)
}

// ValidateIndex returns an error if the song index is not in the table.
func (tbl *Table) ValidateIndex(i int) error {
	if i < 0 || i >= len(tbl.songs) {
		return curated.Errorf(InvalidIndex, i)
	}
	return nil
}

// Song returns the table entry for the song.
func (tbl *Table) Song(i int) (Song, error) {
	if err := tbl.ValidateIndex(i); err != nil {
		return Song{}, err
	}

	tbl.crit.Lock()
	defer tbl.crit.Unlock()

	return tbl.songs[i], nil
}

// Songs returns a copy of every entry in the table.
func (tbl *Table) Songs() []Song {
	tbl.crit.Lock()
	defer tbl.crit.Unlock()

	s := make([]Song, len(tbl.songs))
	copy(s, tbl.songs)
	return s
}

// Track returns a copy of the song's track data, including the two length
// bytes.
func (tbl *Table) Track(i int) ([]byte, error) {
	s, err := tbl.Song(i)
	if err != nil {
		return nil, err
	}

	tbl.crit.Lock()
	defer tbl.crit.Unlock()

	return append([]byte(nil), tbl.rom[s.TrackAddress:s.TrackAddress+s.Length+2]...), nil
}

// InstrumentSet returns a copy of the song's instrument set.
func (tbl *Table) InstrumentSet(i int) ([]byte, error) {
	s, err := tbl.Song(i)
	if err != nil {
		return nil, err
	}

	tbl.crit.Lock()
	defer tbl.crit.Unlock()

	a := s.InstrumentSetAddress
	return append([]byte(nil), tbl.rom[a:a+disassembly.InstrumentSetSize]...), nil
}

// ReplaceInstrument changes the first slot in the song's instrument set that
// holds the old instrument to the new instrument. The names argument is used
// to check that both instruments are known and for logging.
func (tbl *Table) ReplaceInstrument(i int, oldID uint8, newID uint8, names instruments.Names) error {
	if err := tbl.ValidateIndex(i); err != nil {
		return err
	}

	if names == nil {
		names = instruments.Default()
	}

	// an empty slot cannot be replaced
	if oldID == 0x00 || names.Name(oldID) == "" {
		return curated.Errorf(InvalidInstrument, oldID)
	}
	if names.Name(newID) == "" {
		return curated.Errorf(InvalidInstrument, newID)
	}

	tbl.crit.Lock()
	defer tbl.crit.Unlock()

	s := &tbl.songs[i]

	for slot, id := range s.Instruments {
		if id == oldID {
			tbl.rom[s.InstrumentSetAddress+uint32(slot*2)] = newID
			tbl.refreshInstruments(s)
			logger.Logf(logger.Allow, "songtable", "%s was replaced by %s", names.Name(oldID), names.Name(newID))
			return nil
		}
	}

	return curated.Errorf(InstrumentNotInSet, oldID, i)
}

// Disassemble the song's track. The name is used in the transcript.
func (tbl *Table) Disassemble(i int, name string, names instruments.Names) (*disassembly.Disassembly, error) {
	s, err := tbl.Song(i)
	if err != nil {
		return nil, err
	}

	track, err := tbl.Track(i)
	if err != nil {
		return nil, err
	}

	set, err := tbl.InstrumentSet(i)
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = fmt.Sprintf("Song $%02X", i)
	}

	return disassembly.FromTrack(s.TrackAddress, name, track, set, names), nil
}

// List writes a summary of every song in the table to io.Writer.
func (tbl *Table) List(output io.Writer, names instruments.Names) error {
	if names == nil {
		names = instruments.Default()
	}

	for _, s := range tbl.Songs() {
		l := make([]string, 0, len(s.Instruments))
		for _, id := range s.Instruments {
			if id == 0x00 {
				continue
			}
			l = append(l, fmt.Sprintf("%s ($%s)", names.Name(id), instruments.Key(id)))
		}

		_, err := io.WriteString(output, fmt.Sprintf("$%02X  track %s  length $%s  instruments %s  [%s]\n",
			s.Index, disassembly.Hex(s.TrackAddress), disassembly.Hex(s.Length),
			disassembly.Hex(s.InstrumentSetAddress), strings.Join(l, ", ")))
		if err != nil {
			return err
		}
	}

	return nil
}
