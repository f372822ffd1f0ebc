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

//go:build !nostatsview
// +build !nostatsview

package statsview_test

import (
	"testing"

	"github.com/jetsetilly/ff6mused/statsview"
	"github.com/jetsetilly/ff6mused/test"
)

func TestAvailable(t *testing.T) {
	test.ExpectSuccess(t, statsview.Available())
	test.ExpectEquality(t, statsview.Address, "localhost:12600")
}
