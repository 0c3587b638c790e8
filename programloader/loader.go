// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package programloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// Sentinel error patterns.
const (
	EmptyProgram    = "programloader: program is empty (%s)"
	ProgramTooLarge = "programloader: program is too large (%d bytes with a maximum of %d)"
	UnexpectedHash  = "programloader: unexpected hash value (%s)"
)

// Loader is used to specify the program to load into the interpreter.
type Loader struct {
	// filename or URL of the program to load
	Filename string

	// expected hash of the loaded program. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the program filename. The path and
// the file extension are removed.
func (ld Loader) ShortName() string {
	n := filepath.Base(ld.Filename)
	return strings.TrimSuffix(n, filepath.Ext(n))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the program data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil && len(u.Scheme) > 1 {
		scheme = u.Scheme
	}

	var data []byte

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf("programloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("programloader: %v", resp.Status)
		}

		// read one byte more than the maximum so that oversized programs
		// can be detected
		data, err = io.ReadAll(io.LimitReader(resp.Body, memory.MaxProgramSize+1))
		if err != nil {
			return curated.Errorf("programloader: %v", err)
		}

	case "file":
		f, err := os.Open(ld.Filename)
		if err != nil {
			return curated.Errorf("programloader: %v", err)
		}
		defer f.Close()

		data, err = io.ReadAll(io.LimitReader(f, memory.MaxProgramSize+1))
		if err != nil {
			return curated.Errorf("programloader: %v", err)
		}

	default:
		return curated.Errorf("programloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if len(data) == 0 {
		return curated.Errorf(EmptyProgram, ld.Filename)
	}
	if len(data) > memory.MaxProgramSize {
		return curated.Errorf(ProgramTooLarge, len(data), memory.MaxProgramSize)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(UnexpectedHash, hash)
	}

	ld.Hash = hash
	ld.Data = data

	return nil
}
