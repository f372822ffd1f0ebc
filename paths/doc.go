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

// Package paths contains functions to prepare paths to ff6mused resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following returns the path to the instrument names file:
//
//	p := paths.ResourcePath("instruments.json")
//
// The policy of ResourcePath() is simple: if the base resource path, currently
// defined to be ".ff6mused", is present in the program's current directory
// then that is the base path that will used. If it is not present then the
// user's config directory is used, as returned by os.UserConfigDir().
//
// On a modern Linux system the path in the example above will be:
//
//	/home/user/.config/ff6mused/instruments.json
//
// ModifiedFilename() and UniqueFilename() create names for edited ROM images
// that do not overwrite existing files.
package paths
