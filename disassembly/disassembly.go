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
	"github.com/jetsetilly/ff6mused/instruments"
	"github.com/jetsetilly/ff6mused/logger"
	"github.com/jetsetilly/ff6mused/memorymap"
)

// NumChannels is the number of channels in every track.
const NumChannels = 8

// NumSlots is the number of instrument slots available to a track.
const NumSlots = 16

// HeaderSize is the number of bytes at the start of a track before the
// first possible channel data.
const HeaderSize = 0x16

// InstrumentSetSize is the size in bytes of a track's instrument set.
const InstrumentSetSize = NumSlots * 2

// the first instrument slot is selected by this value
const slotBase = 0x20

// the location of the first channel pointer in the track header. each
// pointer is two bytes
const channelPointers = 0x06

// Header contains information about the track taken from the track header
// and the instrument set.
type Header struct {
	TrackAddress uint32
	Song         string

	// the value stored in the first two bytes of the track
	DeclaredLength uint32

	// absolute address of each channel
	Channels [NumChannels]uint32

	// the instrument name for each slot. unassigned slots are given the
	// instruments.Nothing name
	Instruments [NumSlots]string
}

// Disassembly is the decoded form of a single track.
type Disassembly struct {
	Header Header

	// the offset of each channel from the start of the track
	ChannelOffsets [NumChannels]int

	Entries []*Entry

	// Truncated is true if the track is too short to hold the full header
	// or if the final opcode of the track required operand bytes beyond the
	// end of the track
	Truncated bool
}

// FromTrack decodes the track data. The track should include the two length
// bytes and the rest of the track header. The instrument set is the track's
// block of instrument slots, only the even bytes of which are used.
//
// The names argument can be nil, in which case placeholder names are used.
//
// Any header bytes missing from a short track are read as zero. The
// disassembly is flagged as Truncated in that case.
//
// Neither the track nor the instrument set are retained by the disassembly.
func FromTrack(trackAddress uint32, songName string, track []byte, instrumentSet []byte, names instruments.Names) *Disassembly {
	if names == nil {
		names = instruments.Default()
	}

	// work on copies so that the caller can change the underlying data
	// without affecting the disassembly
	track = append([]byte(nil), track...)
	instrumentSet = append([]byte(nil), instrumentSet...)

	dsm := &Disassembly{}
	dsm.Header.TrackAddress = trackAddress
	dsm.Header.Song = songName

	// header fields are read from a zero padded view of the track
	header := make([]byte, HeaderSize)
	if copy(header, track) < HeaderSize {
		dsm.Truncated = true
		logger.Logf(logger.Allow, "disassembly", "%s: track is too short for header (%d bytes)", songName, len(track))
	}

	dsm.Header.DeclaredLength = memorymap.ReadLE(header[0:2])

	lastByte := memorymap.LastByteAddress(trackAddress, dsm.Header.DeclaredLength)

	for c := 0; c < NumChannels; c++ {
		p := channelPointers + c*2
		addr := memorymap.ResolvePointer(header[p:p+2], trackAddress, lastByte)
		dsm.Header.Channels[c] = addr
		dsm.ChannelOffsets[c] = int(int64(addr) - int64(trackAddress))
	}

	for s := 0; s < NumSlots; s++ {
		var id uint8
		if s*2 < len(instrumentSet) {
			id = instrumentSet[s*2]
		}
		if id == 0x00 {
			dsm.Header.Instruments[s] = instruments.Nothing
		} else {
			dsm.Header.Instruments[s] = names.Name(id)
		}
	}

	dec := &decoder{
		trackAddress:    trackAddress,
		lastByteAddress: lastByte,
		instruments:     &dsm.Header.Instruments,
	}

	dsm.decode(dec, track)

	return dsm
}

// start returns the offset at which decoding begins. this is normally the
// channel 1 offset but a corrupt pointer can place the first channel outside
// the track, in which case decoding starts immediately after the header.
func (dsm *Disassembly) start(track []byte) int {
	start := dsm.ChannelOffsets[0]
	if start < 0 || start > len(track) {
		logger.Logf(logger.Allow, "disassembly", "%s: channel 1 address (%s) is outside of track", dsm.Header.Song, Hex(dsm.Header.Channels[0]))
		return HeaderSize
	}
	return start
}

func (dsm *Disassembly) decode(dec *decoder, track []byte) {
	var level int

	cursor := dsm.start(track)
	for cursor < len(track) {
		b := track[cursor]

		e := &Entry{
			Address: dec.trackAddress + uint32(cursor),
			Offset:  cursor,
			Opcode:  b,
			Level:   level,
		}

		for c := 0; c < NumChannels; c++ {
			if dsm.ChannelOffsets[c] == cursor {
				e.Channels = append(e.Channels, c+1)
			}
		}

		if IsOpcode(b) {
			op := operations[b-OpcodeBase]

			e.Operands = make([]uint8, op.operands)
			n := copy(e.Operands, track[cursor+1:])
			if n < op.operands {
				dsm.Truncated = true
				logger.Logf(logger.Allow, "disassembly", "%s: operands for %s at %s are truncated", dsm.Header.Song, Hex(uint32(b)), Hex(e.Address))
			}

			e.Description = op.describe(dec, e.Operands)
			level += op.nesting
		} else {
			e.Description = describeNote(b)
		}

		dsm.Entries = append(dsm.Entries, e)
		cursor += 1 + len(e.Operands)
	}
}

// ChannelEntries returns the entries belonging to the channel. A channel
// runs from its own entry up to the entry at which the next channel in the
// track begins. Channel numbers start at one.
func (dsm *Disassembly) ChannelEntries(channel int) []*Entry {
	if channel < 1 || channel > NumChannels {
		return nil
	}

	begin := -1
	for i, e := range dsm.Entries {
		if begin == -1 {
			for _, c := range e.Channels {
				if c == channel {
					begin = i
				}
			}
			continue
		}
		if len(e.Channels) > 0 {
			return dsm.Entries[begin:i]
		}
	}

	if begin == -1 {
		return nil
	}
	return dsm.Entries[begin:]
}
