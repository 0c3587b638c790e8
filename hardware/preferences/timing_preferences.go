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

package preferences

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/timing"
	"github.com/jetsetilly/gopher8/prefs"
)

// TimingPreferences are the time costs of each instruction family. The CPU
// does not read these values directly. Instead it uses the timing.Timing
// value returned by Live(), which is refreshed with instance.UpdateTiming().
type TimingPreferences struct {
	ClearScreen   prefs.Int
	Flow          prefs.Int
	SkipImmediate prefs.Int
	SkipRegister  prefs.Int
	LoadImmediate prefs.Int
	AddImmediate  prefs.Int
	ALU           prefs.Int
	LoadIndex     prefs.Int
	Random        prefs.Int
	DrawBase      prefs.Int
	DrawRow       prefs.Int
	SkipKey       prefs.Int
	Timers        prefs.Int
	AddIndex      prefs.Int
	Font          prefs.Int
	BCD           prefs.Int
	RegisterBlock prefs.Int
	KeyWait       prefs.Int
	KeyWaitPoll   prefs.Int
}

// the list of keys and the preference they refer to
func (p *TimingPreferences) keys() map[string]*prefs.Int {
	return map[string]*prefs.Int{
		"timing.cls":          &p.ClearScreen,
		"timing.flow":         &p.Flow,
		"timing.skip.imm":     &p.SkipImmediate,
		"timing.skip.reg":     &p.SkipRegister,
		"timing.load.imm":     &p.LoadImmediate,
		"timing.add.imm":      &p.AddImmediate,
		"timing.alu":          &p.ALU,
		"timing.load.index":   &p.LoadIndex,
		"timing.rnd":          &p.Random,
		"timing.draw.base":    &p.DrawBase,
		"timing.draw.row":     &p.DrawRow,
		"timing.skip.key":     &p.SkipKey,
		"timing.timers":       &p.Timers,
		"timing.add.index":    &p.AddIndex,
		"timing.font":         &p.Font,
		"timing.bcd":          &p.BCD,
		"timing.block":        &p.RegisterBlock,
		"timing.keywait":      &p.KeyWait,
		"timing.keywait.poll": &p.KeyWaitPoll,
	}
}

// the timing preferences are added to the disk instance of the parent
// Preferences type
func newTimingPreferences(dsk *prefs.Disk) (*TimingPreferences, error) {
	p := &TimingPreferences{}
	p.SetDefaults()

	for k, v := range p.keys() {
		// a negative cost makes no sense
		v.SetHookPre(func(v prefs.Value) error {
			if v.(int) < 0 {
				return curated.Errorf("timing: cost cannot be negative")
			}
			return nil
		})

		err := dsk.Add(k, v)
		if err != nil {
			return nil, curated.Errorf("timing: %v", err)
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *TimingPreferences) SetDefaults() {
	d := timing.Default()
	p.ClearScreen.Set(d.ClearScreen)
	p.Flow.Set(d.Flow)
	p.SkipImmediate.Set(d.SkipImmediate)
	p.SkipRegister.Set(d.SkipRegister)
	p.LoadImmediate.Set(d.LoadImmediate)
	p.AddImmediate.Set(d.AddImmediate)
	p.ALU.Set(d.ALU)
	p.LoadIndex.Set(d.LoadIndex)
	p.Random.Set(d.Random)
	p.DrawBase.Set(d.DrawBase)
	p.DrawRow.Set(d.DrawRow)
	p.SkipKey.Set(d.SkipKey)
	p.Timers.Set(d.Timers)
	p.AddIndex.Set(d.AddIndex)
	p.Font.Set(d.Font)
	p.BCD.Set(d.BCD)
	p.RegisterBlock.Set(d.RegisterBlock)
	p.KeyWait.Set(d.KeyWait)
	p.KeyWaitPoll.Set(d.KeyWaitPoll)
}

// Live returns the current timing values.
func (p *TimingPreferences) Live() timing.Timing {
	return timing.Timing{
		ClearScreen:   p.ClearScreen.Get().(int),
		Flow:          p.Flow.Get().(int),
		SkipImmediate: p.SkipImmediate.Get().(int),
		SkipRegister:  p.SkipRegister.Get().(int),
		LoadImmediate: p.LoadImmediate.Get().(int),
		AddImmediate:  p.AddImmediate.Get().(int),
		ALU:           p.ALU.Get().(int),
		LoadIndex:     p.LoadIndex.Get().(int),
		Random:        p.Random.Get().(int),
		DrawBase:      p.DrawBase.Get().(int),
		DrawRow:       p.DrawRow.Get().(int),
		SkipKey:       p.SkipKey.Get().(int),
		Timers:        p.Timers.Get().(int),
		AddIndex:      p.AddIndex.Get().(int),
		Font:          p.Font.Get().(int),
		BCD:           p.BCD.Get().(int),
		RegisterBlock: p.RegisterBlock.Get().(int),
		KeyWait:       p.KeyWait.Get().(int),
		KeyWaitPoll:   p.KeyWaitPoll.Get().(int),
	}
}
