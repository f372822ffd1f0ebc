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

package curated_test

import (
	"errors"
	"os"
	"testing"

	"github.com/jetsetilly/ff6mused/curated"
	"github.com/jetsetilly/ff6mused/test"
)

const testPattern = "songtable: invalid song index (%d)"
const wrapPattern = "songtable: %v"

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf(testPattern, 300)
	test.ExpectEquality(t, e.Error(), "songtable: invalid song index (300)")

	// wrapping with the same prefix does not duplicate the prefix
	f := curated.Errorf(wrapPattern, e)
	test.ExpectEquality(t, f.Error(), "songtable: invalid song index (300)")

	g := curated.Errorf("disasm: %v", f)
	test.ExpectEquality(t, g.Error(), "disasm: songtable: invalid song index (300)")
}

func TestIsAndHas(t *testing.T) {
	e := curated.Errorf(testPattern, 1)
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectSuccess(t, curated.Has(e, testPattern))

	f := curated.Errorf("disasm: %v", e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))

	// plain errors are never curated
	p := errors.New("plain")
	test.ExpectFailure(t, curated.IsAny(p))
	test.ExpectFailure(t, curated.Is(p, testPattern))
	test.ExpectFailure(t, curated.Has(p, testPattern))

	// nil is never anything
	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
	test.ExpectFailure(t, curated.Has(nil, testPattern))
}

func TestUnwrap(t *testing.T) {
	_, err := os.Open("this/file/does/not/exist.smc")
	test.ExpectFailure(t, err)

	e := curated.Errorf("romloader: %v", err)
	test.ExpectSuccess(t, errors.Is(e, os.ErrNotExist))
}
