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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Profile specifies which profiles are to be written by RunProfiler().
type Profile int

// List of valid Profile values. Profiles can be combined.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << iota
	ProfileMem
	ProfileTrace
	ProfileAll = ProfileCPU | ProfileMem | ProfileTrace
)

// ParseProfileString parses a comma separated list of profile names. Valid
// names are NONE, CPU, MEM, TRACE and ALL.
func ParseProfileString(s string) (Profile, error) {
	var p Profile

	for _, n := range strings.Split(s, ",") {
		switch strings.ToUpper(strings.TrimSpace(n)) {
		case "", "NONE":
		case "CPU":
			p |= ProfileCPU
		case "MEM":
			p |= ProfileMem
		case "TRACE":
			p |= ProfileTrace
		case "ALL":
			p |= ProfileAll
		default:
			return ProfileNone, curated.Errorf("profile: unknown profile type (%s)", n)
		}
	}

	return p, nil
}

func (p Profile) String() string {
	if p == ProfileNone {
		return "NONE"
	}

	var s []string
	if p&ProfileCPU == ProfileCPU {
		s = append(s, "CPU")
	}
	if p&ProfileMem == ProfileMem {
		s = append(s, "MEM")
	}
	if p&ProfileTrace == ProfileTrace {
		s = append(s, "TRACE")
	}
	return strings.Join(s, ",")
}

// RunProfiler runs the supplied function through the profilers specified in
// the Profile value. Profile files are named with the filenameHeader followed
// by the type of profile.
func RunProfiler(profile Profile, filenameHeader string, run func() error) (rerr error) {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(fmt.Sprintf("%s_cpu.profile", filenameHeader))
		if err != nil {
			return curated.Errorf("profile: %v", err)
		}
		defer func() {
			err := f.Close()
			if err != nil && rerr == nil {
				rerr = curated.Errorf("profile: %v", err)
			}
		}()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf("profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	if profile&ProfileTrace == ProfileTrace {
		f, err := os.Create(fmt.Sprintf("%s_trace.profile", filenameHeader))
		if err != nil {
			return curated.Errorf("profile: %v", err)
		}
		defer func() {
			err := f.Close()
			if err != nil && rerr == nil {
				rerr = curated.Errorf("profile: %v", err)
			}
		}()

		err = trace.Start(f)
		if err != nil {
			return curated.Errorf("profile: %v", err)
		}
		defer trace.Stop()
	}

	err := run()
	if err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		f, err := os.Create(fmt.Sprintf("%s_mem.profile", filenameHeader))
		if err != nil {
			return curated.Errorf("profile: %v", err)
		}
		defer func() {
			err := f.Close()
			if err != nil && rerr == nil {
				rerr = curated.Errorf("profile: %v", err)
			}
		}()

		runtime.GC()
		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return curated.Errorf("profile: %v", err)
		}
	}

	return nil
}
