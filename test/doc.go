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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions compare two values
// of the same comparable type and report an error via the testing.T
// instance if the expectation fails. The Demand*() variants stop the test
// immediately with a call to Fatalf().
//
// The ExpectSuccess() and ExpectFailure() functions interpret a value of
// type bool or error. For a bool, success is true. For an error, success is
// nil.
//
//	test.ExpectSuccess(t, err)
//	test.ExpectFailure(t, curated.Is(err, songtable.InvalidIndex))
//
// The optional tags arguments are printed before the failure message and
// are useful when the test is part of a loop:
//
//	for op := 0xc4; op <= 0xff; op++ {
//		test.ExpectEquality(t, consumed, expected[op], op)
//	}
//
// The CompareWriter type is an io.Writer that accumulates everything
// written to it, useful for testing functions that write transcripts.
package test
