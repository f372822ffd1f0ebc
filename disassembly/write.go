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
	"io"
	"strings"

	"github.com/jetsetilly/ff6mused/ansi"
	"github.com/jetsetilly/ff6mused/instruments"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	// append the raw operand bytes to each line
	Operands bool

	// colour banners and headings with ANSI sequences. should only be used
	// when the output is a terminal
	Color bool
}

// width of the rules and section headings
const ruleWidth = 52

var rule = strings.Repeat("=", ruleWidth)

// sectionHeading pads the heading with dashes to the full rule width.
func sectionHeading(heading string) string {
	s := fmt.Sprintf("-[ %s ]", heading)
	if len(s) < ruleWidth {
		s += strings.Repeat("-", ruleWidth-len(s))
	}
	return s
}

// transcript accumulates output and remembers the first write error.
type transcript struct {
	output io.Writer
	attr   WriteAttr
	err    error
}

func (t *transcript) write(s string) {
	if t.err != nil {
		return
	}
	_, t.err = io.WriteString(t.output, s)
}

func (t *transcript) pen(pen string, s string) {
	if t.attr.Color {
		t.write(pen)
		t.write(s)
		t.write(ansi.NormalPen)
	} else {
		t.write(s)
	}
	t.write("\n")
}

// Write the header and every entry to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	t := &transcript{output: output, attr: attr}

	dsm.writeHeader(t)
	for _, e := range dsm.Entries {
		dsm.writeEntry(t, e)
	}

	return t.err
}

// WriteHeader writes just the header block to io.Writer.
func (dsm *Disassembly) WriteHeader(output io.Writer, attr WriteAttr) error {
	t := &transcript{output: output, attr: attr}
	dsm.writeHeader(t)
	return t.err
}

// WriteEntry writes a single entry to io.Writer, preceded by the banner of
// any channel beginning at the entry.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) error {
	t := &transcript{output: output, attr: attr}
	dsm.writeEntry(t, e)
	return t.err
}

func (dsm *Disassembly) writeHeader(t *transcript) {
	h := dsm.Header

	t.pen(ansi.Pens["blue"], rule)
	t.pen(ansi.Pens["yellow"], fmt.Sprintf("-[ %s: %s ]-", Hex(h.TrackAddress), h.Song))
	t.pen(ansi.Pens["blue"], rule)
	t.pen(ansi.PenStyles["bold"], sectionHeading("Header"))

	t.write(fmt.Sprintf("Length: $%s\n", Hex(h.DeclaredLength)))
	for c, addr := range h.Channels {
		t.write(fmt.Sprintf("Channel %d: %s\n", c+1, Hex(addr)))
	}

	t.write("\n")
	t.pen(ansi.PenStyles["bold"], sectionHeading("Instruments"))

	for s, name := range h.Instruments {
		if name == instruments.Nothing {
			continue
		}
		t.write(fmt.Sprintf("$%s: %s\n", Hex(uint32(s+slotBase)), name))
	}
}

func (dsm *Disassembly) writeEntry(t *transcript, e *Entry) {
	for _, c := range e.Channels {
		t.write("\n")
		t.pen(ansi.Pens["blue"], rule)
		t.pen(ansi.Pens["green"], fmt.Sprintf("-[ %s: channel %d ]-", dsm.Header.Song, c))
		t.pen(ansi.Pens["blue"], rule)
	}

	t.write(e.String())
	if t.attr.Operands && len(e.Operands) > 0 {
		t.write(" ; ")
		t.write(e.operandString())
	}
	t.write("\n")
}

// String returns the complete transcript without colour or operand bytes.
func (dsm *Disassembly) String() string {
	s := &strings.Builder{}
	_ = dsm.Write(s, WriteAttr{})
	return s.String()
}
