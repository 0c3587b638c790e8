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

package performance_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/test"
)

func TestProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu, mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "CPU,MEM")

	p, err = performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)
	test.ExpectEquality(t, p.String(), "NONE")

	p, err = performance.ParseProfileString("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "CPU,MEM,TRACE")

	_, err = performance.ParseProfileString("cpu,gpu")
	test.ExpectFailure(t, err)
}

func TestCalcRate(t *testing.T) {
	perSecond, ratio := performance.CalcRate(1000, 2*time.Second, time.Second)
	test.ExpectApproximate(t, perSecond, 1000.0, 0.001)
	test.ExpectApproximate(t, ratio, 2.0, 0.001)

	perSecond, ratio = performance.CalcRate(1000, time.Second, 0)
	test.ExpectEquality(t, perSecond, 0.0)
	test.ExpectEquality(t, ratio, 0.0)
}

func TestCheck(t *testing.T) {
	test.TempWorkingDir(t)
	performance.Leadtime = 10 * time.Millisecond

	out := &strings.Builder{}

	// JP $200
	err := performance.Check(out, performance.ProfileNone, []uint8{0x12, 0x00}, "50ms")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out.String(), "instructions per second"))

	err = performance.Check(out, performance.ProfileNone, []uint8{0x12, 0x00}, "fifty")
	test.ExpectFailure(t, err)

	// a fault ends the check early
	err = performance.Check(out, performance.ProfileNone, []uint8{0x00, 0x00}, "50ms")
	test.ExpectSuccess(t, curated.Has(err, cpu.IllegalInstruction))
}

func TestProfiler(t *testing.T) {
	test.TempWorkingDir(t)

	var called bool
	err := performance.RunProfiler(performance.ProfileMem, "test", func() error {
		called = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, called)
}
