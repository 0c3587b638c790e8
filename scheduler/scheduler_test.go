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

package scheduler_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/scheduler"
	"github.com/jetsetilly/gopher8/test"
)

const mockFault = "mock fault"

type mockStepper struct {
	cost   int
	steps  int
	ticks  int
	faultN int
}

func (m *mockStepper) InstructionStep() (int, error) {
	m.steps++
	if m.faultN > 0 && m.steps == m.faultN {
		return 0, curated.Errorf(mockFault)
	}
	return m.cost, nil
}

func (m *mockStepper) FrequencyStep() {
	m.ticks++
}

func TestFrame(t *testing.T) {
	m := &mockStepper{cost: 100}
	sch := scheduler.NewScheduler(m)

	// 1000us requires exactly ten steps
	test.ExpectSuccess(t, sch.Frame(time.Millisecond))
	test.ExpectEquality(t, m.steps, 10)
	test.ExpectEquality(t, m.ticks, 1)
	test.ExpectEquality(t, sch.Surplus(), 0)

	// 950us requires ten steps with 50us carried over
	test.ExpectSuccess(t, sch.Frame(950*time.Microsecond))
	test.ExpectEquality(t, m.steps, 20)
	test.ExpectEquality(t, sch.Surplus(), 50*time.Microsecond)

	// the carried time means that 50us is enough for no steps at all
	test.ExpectSuccess(t, sch.Frame(50*time.Microsecond))
	test.ExpectEquality(t, m.steps, 20)
	test.ExpectEquality(t, m.ticks, 3)
	test.ExpectEquality(t, sch.Frames(), 3)
	test.ExpectEquality(t, sch.Steps(), 20)
}

func TestFramePaused(t *testing.T) {
	m := &mockStepper{cost: 100}
	sch := scheduler.NewScheduler(m)
	sch.SetPaused(true)
	test.ExpectSuccess(t, sch.Paused())

	test.ExpectSuccess(t, sch.Frame(time.Second))
	test.ExpectEquality(t, m.steps, 0)
	test.ExpectEquality(t, m.ticks, 1)

	// single stepping does not accumulate a debt of wall time
	test.ExpectSuccess(t, sch.Step())
	test.ExpectEquality(t, m.steps, 1)
	test.ExpectEquality(t, sch.Surplus(), 0)

	// unpausing does not cause a burst of instructions
	sch.SetPaused(false)
	test.ExpectSuccess(t, sch.Frame(200*time.Microsecond))
	test.ExpectEquality(t, m.steps, 3)
}

func TestFrameFault(t *testing.T) {
	m := &mockStepper{cost: 100, faultN: 3}
	sch := scheduler.NewScheduler(m)

	err := sch.Frame(time.Millisecond)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, mockFault))
	test.ExpectEquality(t, m.steps, 3)
	test.ExpectEquality(t, m.ticks, 0)
}

func TestFrameZeroCost(t *testing.T) {
	m := &mockStepper{cost: 0}
	sch := scheduler.NewScheduler(m)

	test.ExpectSuccess(t, sch.Frame(time.Millisecond))
	test.ExpectEquality(t, m.steps, scheduler.MaxStepsPerFrame)
	test.ExpectEquality(t, m.ticks, 1)
	test.ExpectEquality(t, sch.Surplus(), 0)
}

func TestReset(t *testing.T) {
	m := &mockStepper{cost: 300}
	sch := scheduler.NewScheduler(m)

	test.ExpectSuccess(t, sch.Frame(time.Millisecond))
	test.ExpectInequality(t, sch.Surplus(), 0)
	sch.Reset()
	test.ExpectEquality(t, sch.Surplus(), 0)
	test.ExpectEquality(t, sch.Frames(), 0)
}

func TestResync(t *testing.T) {
	m := &mockStepper{cost: 100, faultN: 3}
	sch := scheduler.NewScheduler(m)

	// the fault on the third step leaves 800us of wall time outstanding
	test.ExpectFailure(t, sch.Frame(time.Millisecond))
	test.ExpectEquality(t, m.steps, 3)
	test.ExpectEquality(t, sch.Surplus(), -800*time.Microsecond)

	sch.Resync()
	test.ExpectEquality(t, sch.Surplus(), 0)

	// only the new elapsed time is executed
	test.ExpectSuccess(t, sch.Frame(200*time.Microsecond))
	test.ExpectEquality(t, m.steps, 5)
}
