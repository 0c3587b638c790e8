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
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value is the Go value of a preference as passed to Set() and returned by
// Get().
type Value = any

// pref is satisfied by every preference type that can be added to a Disk.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hooks are called either side of a call to Set(). They are called whether or
// not the value actually changes.
type hooks struct {
	pre  func(Value) error
	post func(Value) error
}

// SetHookPre registers a function to be called before the value is changed.
// If the function returns an error the value is left as it is.
func (h *hooks) SetHookPre(f func(Value) error) {
	h.pre = f
}

// SetHookPost registers a function to be called after the value is changed.
func (h *hooks) SetHookPost(f func(Value) error) {
	h.post = f
}

func commit[T any](h *hooks, nv T, store func(T)) error {
	if h.pre != nil {
		if err := h.pre(nv); err != nil {
			return err
		}
	}
	store(nv)
	if h.post != nil {
		return h.post(nv)
	}
	return nil
}

// Bool is a boolean preference.
type Bool struct {
	hooks
	value atomic.Bool
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.value.Load())
}

// Set accepts a bool or a string. Any string other than "true", ignoring case
// and surrounding space, is false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return commit(&p.hooks, v, p.value.Store)
	case string:
		return commit(&p.hooks, strings.EqualFold(strings.TrimSpace(v), "true"), p.value.Store)
	}
	return fmt.Errorf("prefs: %T is not a valid value for a boolean", v)
}

func (p *Bool) Get() Value {
	return p.value.Load()
}

func (p *Bool) Reset() error {
	return p.Set(false)
}

// Int is an integer preference.
type Int struct {
	hooks
	value atomic.Int64
}

func (p *Int) String() string {
	return strconv.FormatInt(p.value.Load(), 10)
}

// Set accepts any of the signed integer types or a string in base ten.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int:
		nv = v
	case int64:
		nv = int(v)
	case int32:
		nv = int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("prefs: %q is not a valid value for an integer", v)
		}
		nv = n
	default:
		return fmt.Errorf("prefs: %T is not a valid value for an integer", v)
	}
	return commit(&p.hooks, nv, func(n int) { p.value.Store(int64(n)) })
}

// Get returns the value as an int.
func (p *Int) Get() Value {
	return int(p.value.Load())
}

func (p *Int) Reset() error {
	return p.Set(0)
}

// String is a free text preference. Values that are not strings are
// formatted with the %v verb.
type String struct {
	hooks
	value atomic.Pointer[string]
}

func (p *String) String() string {
	if s := p.value.Load(); s != nil {
		return *s
	}
	return ""
}

func (p *String) Set(v Value) error {
	return commit(&p.hooks, fmt.Sprintf("%v", v), func(s string) { p.value.Store(&s) })
}

func (p *String) Get() Value {
	return p.String()
}

func (p *String) Reset() error {
	return p.Set("")
}
