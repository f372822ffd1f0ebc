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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/ff6mused/curated"
	"github.com/jetsetilly/ff6mused/logger"
)

// Sentinal error patterns.
const (
	LoaderError = "romloader: %v"
)

// CopierHeaderSize is the size of the header added to ROM dumps by some
// copier devices.
const CopierHeaderSize = 0x200

// the size of the blocks a ROM image is made from. an image with a copier
// header will be CopierHeaderSize bytes longer than a multiple of this
// value
const romBlockSize = 0x8000

// Loader is used to specify the ROM image to load.
type Loader struct {
	// filename of ROM image to load. can also be an http or https URL
	Filename string

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	//
	// the hash is of the complete file, including any copier header
	Hash string

	// the copier header, if one was found. the header is not part of Data
	Header []byte

	// the ROM image without the copier header. this is the data that the
	// song table addresses refer to
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// FileExtensions is the list of file extensions that are normally used for
// SNES ROM images.
var FileExtensions = [...]string{".SMC", ".SFC", ".FIG", ".SWC", ".BIN"}

// ShortName returns a shortened version of the Loader filename.
func (rl Loader) ShortName() string {
	shortName := path.Base(rl.Filename)
	shortName = strings.TrimSuffix(shortName, path.Ext(rl.Filename))
	return shortName
}

// HasROMExtension returns true if the filename has one of the extensions in
// the FileExtensions list. The comparison is not case sensitive.
func (rl Loader) HasROMExtension() bool {
	ext := strings.ToUpper(path.Ext(rl.Filename))
	for _, e := range FileExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// HasLoaded returns true if Load() has been successfully called.
func (rl Loader) HasLoaded() bool {
	return len(rl.Data) > 0
}

// HasHeader returns true if the loaded file contained a copier header.
func (rl Loader) HasHeader() bool {
	return len(rl.Header) > 0
}

// Load the ROM data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (rl *Loader) Load() error {
	if rl.HasLoaded() {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(rl.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	var data []byte

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(rl.Filename)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoaderError, fmt.Sprintf("unexpected HTTP status (%s)", resp.Status))
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}

	case "file":
		fallthrough

	case "":
		data, err = os.ReadFile(rl.Filename)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}

	default:
		return curated.Errorf(LoaderError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if len(data) == 0 {
		return curated.Errorf(LoaderError, "file is empty")
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(data))

	// check for hash consistency
	if rl.Hash != "" && rl.Hash != hash {
		return curated.Errorf(LoaderError, "unexpected hash value")
	}

	rl.Hash = hash
	logger.Logf(logger.Allow, "romloader", "%s: sha1 %s", rl.ShortName(), hash)

	if len(data)%romBlockSize == CopierHeaderSize {
		rl.Header = data[:CopierHeaderSize]
		rl.Data = data[CopierHeaderSize:]
		logger.Logf(logger.Allow, "romloader", "%s: removed copier header", rl.ShortName())
	} else {
		rl.Header = nil
		rl.Data = data
	}

	return nil
}

// Save the ROM data to the named file. The copier header is written back if
// one was present in the original file.
func (rl Loader) Save(filename string) error {
	if !rl.HasLoaded() {
		return curated.Errorf(LoaderError, "nothing to save")
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(LoaderError, err)
	}

	if _, err := f.Write(rl.Header); err != nil {
		f.Close()
		return curated.Errorf(LoaderError, err)
	}

	if _, err := f.Write(rl.Data); err != nil {
		f.Close()
		return curated.Errorf(LoaderError, err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf(LoaderError, err)
	}

	logger.Logf(logger.Allow, "romloader", "saved to %s", filename)

	return nil
}
