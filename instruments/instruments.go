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

package instruments

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/ff6mused/curated"
)

// Nothing is the name given to the unassigned instrument id.
const Nothing = "Nothing"

// NumInstruments is the number of possible instrument ids.
const NumInstruments = 0x100

// Sentinal error patterns.
const (
	UnresolvedInstrument = "instruments: unknown instrument (%s)"
	InvalidTable         = "instruments: %v"
)

// Names is the interface required by code that needs a display name for an
// instrument id.
type Names interface {
	Name(id uint8) string
}

// Table maps instrument ids to display names and display names back to ids.
// A Table is not modified after it has been created and can be shared freely.
type Table struct {
	names [NumInstruments]string

	// lower case names. if more than one id has the same name then the lowest
	// id is used
	reverse map[string]uint8
}

// Key returns the string used to index the instrument JSON file for the
// instrument id.
func Key(id uint8) string {
	return fmt.Sprintf("%02X", id)
}

func defaultName(id uint8) string {
	if id == 0x00 {
		return Nothing
	}
	return fmt.Sprintf("Instrument $%02X", id)
}

// Default returns a table with placeholder names for every id. Id zero is
// named Nothing.
func Default() *Table {
	tbl := &Table{}
	for i := range tbl.names {
		tbl.names[i] = defaultName(uint8(i))
	}
	tbl.buildReverse()
	return tbl
}

func (tbl *Table) buildReverse() {
	tbl.reverse = make(map[string]uint8, NumInstruments)
	for i := len(tbl.names) - 1; i >= 0; i-- {
		tbl.reverse[strings.ToLower(tbl.names[i])] = uint8(i)
	}
}

// Load instrument names from a JSON object. The keys of the object are two
// digit hexadecimal instrument ids, the values are the display names. For
// example:
//
//	{ "00": "Nothing", "01": "Piano", "1B": "Church Organ" }
//
// Ids missing from the object keep their default name.
func Load(r io.Reader) (*Table, error) {
	var m map[string]string

	err := json.NewDecoder(r).Decode(&m)
	if err != nil {
		return nil, curated.Errorf(InvalidTable, err)
	}

	tbl := Default()
	for k, v := range m {
		id, err := strconv.ParseUint(k, 16, 8)
		if err != nil {
			return nil, curated.Errorf(InvalidTable, fmt.Sprintf("bad instrument id (%s)", k))
		}
		v = strings.TrimSpace(v)
		if v == "" {
			return nil, curated.Errorf(InvalidTable, fmt.Sprintf("empty name for instrument id (%s)", k))
		}
		tbl.names[id] = v
	}
	tbl.buildReverse()

	return tbl, nil
}

// LoadFile is a wrapper for Load() that opens the named file.
func LoadFile(filename string) (*Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(InvalidTable, err)
	}
	defer f.Close()
	return Load(f)
}

// Name implements the Names interface.
func (tbl *Table) Name(id uint8) string {
	return tbl.names[id]
}

// Has returns true if the id has been given a name other than Nothing.
func (tbl *Table) Has(id uint8) bool {
	return tbl.names[id] != Nothing
}

// ID returns the instrument id for a display name. The name is not case
// sensitive. Hexadecimal literals of the form $1B and 0x1B are also
// accepted.
func (tbl *Table) ID(name string) (uint8, error) {
	s := strings.TrimSpace(name)

	if id, ok := parseLiteral(s); ok {
		return id, nil
	}

	if id, ok := tbl.reverse[strings.ToLower(s)]; ok {
		return id, nil
	}

	return 0, curated.Errorf(UnresolvedInstrument, name)
}

func parseLiteral(s string) (uint8, bool) {
	var h string
	switch {
	case strings.HasPrefix(s, "$"):
		h = s[1:]
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		h = s[2:]
	default:
		return 0, false
	}

	v, err := strconv.ParseUint(h, 16, 8)
	if err != nil {
		return 0, false
	}
	return uint8(v), true
}

// Write a listing of every named instrument. Unassigned ids are skipped.
func (tbl *Table) Write(output io.Writer) error {
	for i := range tbl.names {
		if !tbl.Has(uint8(i)) {
			continue
		}
		if _, err := io.WriteString(output, fmt.Sprintf("$%s: %s\n", Key(uint8(i)), tbl.names[i])); err != nil {
			return err
		}
	}
	return nil
}
