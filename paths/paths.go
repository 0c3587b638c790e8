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

package paths

import (
	"os"
	"path/filepath"
)

// ResourcePath returns the path to a resource file. The directory containing
// the file is created if it does not exist.
//
// Both dir and file can be empty. If file is empty the returned string is the
// path to the directory.
func ResourcePath(dir string, file string) (string, error) {
	base, err := baseDir()
	if err != nil {
		return "", err
	}

	pth := filepath.Join(base, dir)
	err = os.MkdirAll(pth, 0o700)
	if err != nil {
		return "", err
	}

	return filepath.Join(pth, file), nil
}
