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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/test"
)

func TestPaths(t *testing.T) {
	test.TempWorkingDir(t)

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopher8", "foo", "bar", "baz"))

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopher8", "foo", "bar"))

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopher8", "baz"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopher8")

	_, err = os.Stat(filepath.Join(".gopher8", "foo", "bar"))
	test.ExpectSuccess(t, err)
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("wav", "roms/PONG.ch8")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "wav_PONG_"))

	fn = paths.UniqueFilename("wav", "")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "wav_"))
	test.ExpectEquality(t, len(fn), len("wav_YYYYMMDD_HHMMSS"))
}
