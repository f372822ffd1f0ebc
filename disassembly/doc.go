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

// Package disassembly decodes the music tracks found in the Final Fantasy VI
// ROM into a human readable transcript.
//
// A track begins with a two byte length and a table of eight channel
// pointers. The remainder of the track is a stream of note bytes and control
// opcodes. Decoding is linear, starting at the first channel and continuing
// to the end of the track. Branch opcodes are annotated with their target
// address but are not followed, and the End script opcodes do not stop the
// decoding.
//
// Use FromTrack() to create a Disassembly. The Write() function produces the
// transcript, with options controlled by the WriteAttr type:
//
//	dsm := disassembly.FromTrack(addr, "Terra", track, set, names)
//	dsm.Write(os.Stdout, disassembly.WriteAttr{Operands: true})
//
// Notes are bytes 0x00 to 0xc3 and combine a pitch and a duration. See
// DecodeNote() and EncodeNote(). All other byte values are control opcodes
// with between zero and three operand bytes.
package disassembly
