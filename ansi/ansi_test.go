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

package ansi_test

import (
	"testing"

	"github.com/jetsetilly/ff6mused/ansi"
	"github.com/jetsetilly/ff6mused/test"
)

func TestColorBuild(t *testing.T) {
	s, err := ansi.ColorBuild("red", true, "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[91m")

	s, err = ansi.ColorBuild("cyan", false, "bold")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[36;1m")

	_, err = ansi.ColorBuild("mauve", false, "")
	test.ExpectFailure(t, err)

	_, err = ansi.ColorBuild("", false, "blink")
	test.ExpectFailure(t, err)
}

func TestPens(t *testing.T) {
	test.ExpectEquality(t, ansi.Pens["yellow"], "\033[93m")
	test.ExpectEquality(t, ansi.DimPens["yellow"], "\033[33m")
	test.ExpectEquality(t, ansi.PenStyles["bold"], "\033[1m")
	test.ExpectEquality(t, ansi.NormalPen, "\033[0m")
}
