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

// Package logger is the central log repository for ff6mused. Log entries are
// made up of a tag and a detail string. By convention the tag is the name of
// the package making the entry:
//
//	logger.Logf(logger.Allow, "songtable", "%d songs in table", n)
//
// Consecutive identical entries are collapsed into a single entry with a
// repeat count. The central log holds a fixed number of entries, older
// entries are dropped as new entries are added.
//
// The log is not printed anywhere unless SetEcho() has been called or the
// Write() and Tail() functions are used explicitly. The ff6mused command
// echoes the log to stderr when the -log flag is given.
package logger
