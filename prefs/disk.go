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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// DefaultPrefsFile is the default filename of the preferences file.
const DefaultPrefsFile = "preferences"

// the separator between key and value in a preferences file.
const keySep = " :: "

// Sentinel error patterns.
const (
	NoPrefsFile      = "prefs: no prefs file (%v)"
	InvalidPrefsFile = "prefs: not a valid prefs file (%v)"
	UnknownKey       = "prefs: unknown key (%s)"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk Disk) String() string {
	keys := dsk.keys()

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		entries: make(map[string]pref),
	}
	return dsk, nil
}

// sorted list of keys.
func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the value in the preferences file.
//
// If a value has been pushed to the command line stack with that key then the
// value is set immediately.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("prefs: cannot add pref with an empty key")
	}
	if strings.Contains(key, keySep) {
		return fmt.Errorf("prefs: illegal key (%s)", key)
	}

	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}

	return nil
}

// Has returns true if the key has been added to the Disk instance.
func (dsk *Disk) Has(key string) bool {
	_, ok := dsk.entries[key]
	return ok
}

// Set the value of the preference with the key. The value is not saved until
// Save() is called.
func (dsk *Disk) Set(key string, v Value) error {
	p, ok := dsk.entries[key]
	if !ok {
		return curated.Errorf(UnknownKey, key)
	}
	if err := p.Set(v); err != nil {
		return curated.Errorf("prefs: %v: %v", key, err)
	}
	return nil
}

// Reset all entries to their default values.
func (dsk *Disk) Reset() error {
	for _, v := range dsk.entries {
		if err := v.Reset(); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}
	return nil
}

// read the prefs file and return the entries as strings. entries in the file
// that are not in the Disk instance are returned as well.
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	entries := make(map[string]string)

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(InvalidPrefsFile, dsk.path)
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		k, v, ok := strings.Cut(line, keySep)
		if !ok {
			continue
		}

		k = strings.TrimSpace(k)
		if isDefunct(k) {
			continue
		}

		entries[k] = v
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	return entries, nil
}

// Save current preference values to disk. Entries in the existing file that
// are not part of this Disk instance are preserved.
func (dsk *Disk) Save() error {
	entries, err := dsk.read()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		entries = make(map[string]string)
	}

	for k, v := range dsk.entries {
		entries[k] = v.String()
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, keySep, entries[k])
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. The saveOnFirstUse argument is useful
// when loading preferences from disk for the first time. If the preferences
// file does not exist then the current values are saved, creating the file.
func (dsk *Disk) Load(saveOnFirstUse bool) error {
	entries, err := dsk.read()
	if err != nil {
		if curated.Is(err, NoPrefsFile) {
			if saveOnFirstUse {
				return dsk.Save()
			}
			return nil
		}
		return err
	}

	for k, v := range entries {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	// command line values take priority over values on disk
	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	return nil
}
