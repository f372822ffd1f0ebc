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

package instruments_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/ff6mused/curated"
	"github.com/jetsetilly/ff6mused/instruments"
	"github.com/jetsetilly/ff6mused/test"
)

const testJSON = `{
	"00": "Nothing",
	"01": "Piano",
	"1B": "Church Organ",
	"1c": "Choir"
}`

func TestDefault(t *testing.T) {
	tbl := instruments.Default()
	test.ExpectEquality(t, tbl.Name(0x00), instruments.Nothing)
	test.ExpectEquality(t, tbl.Name(0x1b), "Instrument $1B")
	test.ExpectFailure(t, tbl.Has(0x00))
	test.ExpectSuccess(t, tbl.Has(0xff))
	test.ExpectEquality(t, instruments.Key(0x0a), "0A")
}

func TestLoad(t *testing.T) {
	tbl, err := instruments.Load(strings.NewReader(testJSON))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, tbl.Name(0x01), "Piano")
	test.ExpectEquality(t, tbl.Name(0x1b), "Church Organ")
	test.ExpectEquality(t, tbl.Name(0x1c), "Choir")

	// ids not in the JSON keep their default name
	test.ExpectEquality(t, tbl.Name(0x02), "Instrument $02")
}

func TestLoadErrors(t *testing.T) {
	_, err := instruments.Load(strings.NewReader(`{"100": "Too Big"}`))
	test.ExpectSuccess(t, curated.Is(err, instruments.InvalidTable))

	_, err = instruments.Load(strings.NewReader(`{"01": ""}`))
	test.ExpectSuccess(t, curated.Is(err, instruments.InvalidTable))

	_, err = instruments.Load(strings.NewReader(`not json`))
	test.ExpectSuccess(t, curated.Is(err, instruments.InvalidTable))

	_, err = instruments.LoadFile("testdata/does_not_exist.json")
	test.ExpectSuccess(t, curated.Is(err, instruments.InvalidTable))
}

func TestID(t *testing.T) {
	tbl, err := instruments.Load(strings.NewReader(testJSON))
	test.DemandSuccess(t, err)

	id, err := tbl.ID("church organ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, id, 0x1b)

	id, err = tbl.ID("  CHOIR ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, id, 0x1c)

	id, err = tbl.ID("$2a")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, id, 0x2a)

	id, err = tbl.ID("0x01")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, id, 0x01)

	_, err = tbl.ID("kazoo")
	test.ExpectSuccess(t, curated.Is(err, instruments.UnresolvedInstrument))
	test.ExpectEquality(t, err.Error(), "instruments: unknown instrument (kazoo)")

	// a hex literal that is too large is treated as a name
	_, err = tbl.ID("$100")
	test.ExpectSuccess(t, curated.Is(err, instruments.UnresolvedInstrument))
}

func TestWrite(t *testing.T) {
	tbl, err := instruments.Load(strings.NewReader(testJSON))
	test.DemandSuccess(t, err)

	tw := &test.CompareWriter{}
	test.ExpectSuccess(t, tbl.Write(tw))

	lines := tw.Lines()
	test.ExpectEquality(t, len(lines), 0xff)
	test.ExpectEquality(t, lines[0], "$01: Piano")
	test.ExpectEquality(t, lines[0x1a], "$1B: Church Organ")
}
