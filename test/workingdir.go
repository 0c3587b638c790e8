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

package test

import (
	"os"
	"testing"
)

// TempWorkingDir changes the working directory to a new temporary directory.
// The original working directory is restored when the test completes.
//
// Useful for tests that create resource files, which are created relative to
// the working directory in development builds.
func TempWorkingDir(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("cannot get working directory: %v", err)
	}
	err = os.Chdir(t.TempDir())
	if err != nil {
		t.Fatalf("cannot change working directory: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})
}
