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

// Package version reports the version of the program. The version number is
// set at build time with the linker:
//
//	go build -ldflags "-X github.com/jetsetilly/gopher8/version.number=v0.1.0"
//
// Without a version number the version is reported as "unreleased" if the
// build includes VCS information, or "local" otherwise.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name of the program.
const ApplicationName = "Gopher8"

// set by the linker
var number string

var revision string
var version string

// Version returns the version string and the VCS revision. The boolean is
// true if the version is a release version.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns the application name and version as a single string.
func String() string {
	return fmt.Sprintf("%s %s", ApplicationName, version)
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	revision = vcsRevision
	if revision == "" {
		revision = "no revision information"
	} else if vcsModified {
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
