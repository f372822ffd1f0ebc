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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes, where the first non-flag argument
// selects what the program does and each mode has its own set of flags.
//
// Arguments are given to NewArgs() and then parsed with Parse(). Modes are
// added with AddSubModes() before parsing, the first of which is the default
// mode. For example:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("LIST", "DISASM", "REPLACE")
//	p, err := md.Parse()
//
// After a successful Parse() the selected mode is returned by Mode(). The
// arguments for the mode are parsed by calling NewMode(), adding the flags for
// the mode and calling Parse() again:
//
//	switch md.Mode() {
//	case "DISASM":
//		md.NewMode()
//		operands := md.AddBool("operands", false, "show operand bytes")
//		p, err := md.Parse()
//		...
//		disasm(md.RemainingArgs(), *operands)
//	}
//
// Path() returns every mode selected so far and is used in help and error
// messages.
//
// Song indexes and instrument ids are often written in hexadecimal. ParseID()
// accepts decimal and the two common hexadecimal notations.
package modalflag
