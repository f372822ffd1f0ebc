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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Patterns that callers are expected to test for are
// stored as exported const strings in the package that creates them. For
// example, the songtable package declares:
//
//	const InvalidIndex = "songtable: invalid song index (%d)"
//
// and a caller can check for it with:
//
//	_, err := tbl.Song(idx)
//	if curated.Is(err, songtable.InvalidIndex) {
//		fmt.Println("no such song")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf(songtable.InvalidIndex, 300)
//	f := curated.Errorf("disasm: %v", e)
//
//	curated.Has(f, songtable.InvalidIndex)	// true
//	curated.Is(f, songtable.InvalidIndex)	// false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. This means a function can prefix its package
// name to an error without worrying whether the error it received already
// has that prefix:
//
//	songtable: songtable: invalid song index (300)
//
// is printed as:
//
//	songtable: invalid song index (300)
//
// Chains are thought of as being composed of parts separated by the
// sub-string ': ' as suggested on p239 of "The Go Programming Language"
// (Donovan, Kernighan).
//
// Curated errors that wrap a plain error (an os.PathError for example)
// support the Unwrap() convention so errors.Is() and errors.As() from the
// standard library continue to work.
package curated
