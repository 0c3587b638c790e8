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
	"sync/atomic"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/prefs"
)

// Live values of the boolean preferences. For performance critical situations
// these values should be preferred to the prefs.Bool values in Preferences.
// The live values are updated automatically when the corresponding prefs
// value is updated.
type Live struct {
	WrapSprites       atomic.Bool
	RandomState       atomic.Bool
	TraceInstructions atomic.Bool
	TraceAccess       atomic.Bool
}

// Preferences defines and collates all the preference values used by the
// interpreter hardware.
type Preferences struct {
	dsk *prefs.Disk

	// prefer live values in performance critical code
	Live Live

	// sprites that are drawn beyond the edge of the display wrap around to
	// the opposite edge. the default is to clip the sprite
	WrapSprites prefs.Bool

	// initialise the general purpose registers and the unused areas of memory
	// to random values on reset
	RandomState prefs.Bool

	// log every executed instruction
	TraceInstructions prefs.Bool

	// log every memory, display and keyboard access
	TraceAccess prefs.Bool

	// the time cost of each instruction family
	Timing *TimingPreferences
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	p.WrapSprites.SetHookPost(func(v prefs.Value) error {
		p.Live.WrapSprites.Store(v.(bool))
		return nil
	})
	p.RandomState.SetHookPost(func(v prefs.Value) error {
		p.Live.RandomState.Store(v.(bool))
		return nil
	})
	p.TraceInstructions.SetHookPost(func(v prefs.Value) error {
		p.Live.TraceInstructions.Store(v.(bool))
		return nil
	})
	p.TraceAccess.SetHookPost(func(v prefs.Value) error {
		p.Live.TraceAccess.Store(v.(bool))
		return nil
	})

	p.SetDefaults()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	err = p.dsk.Add("hardware.wrapsprites", &p.WrapSprites)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = p.dsk.Add("hardware.randstate", &p.RandomState)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = p.dsk.Add("hardware.trace.instructions", &p.TraceInstructions)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = p.dsk.Add("hardware.trace.access", &p.TraceAccess)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	p.Timing, err = newTimingPreferences(p.dsk)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.WrapSprites.Set(false)
	p.RandomState.Set(false)
	p.TraceInstructions.Set(false)
	p.TraceAccess.Set(false)
	if p.Timing != nil {
		p.Timing.SetDefaults()
	}
}

// Set the named preference to the value. The value is not saved to disk until
// Save() is called.
func (p *Preferences) Set(key string, value prefs.Value) error {
	return p.dsk.Set(key, value)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
