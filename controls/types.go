// This file is part of Gopherscope.
//
// Gopherscope is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherscope is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherscope.  If not, see <https://www.gnu.org/licenses/>.

package controls

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go control value.
type Value interface{}

// Control is implemented by all types in the controls package.
type Control interface {
	fmt.Stringer
	Name() string
	Set(value Value) error
	Get() Value
	Reset() error
}

// Hook functions are called when a control is set. Note that even if the value
// hasn't changed, the hook will be called.
type Hook func(value Value) error

// hooks are shared by all control types
type hooks struct {
	pre  atomic.Pointer[Hook]
	post atomic.Pointer[Hook]
}

// SetHookPre sets the callback function to be called just before the control
// value is updated. An error from the hook prevents the update.
func (h *hooks) SetHookPre(f Hook) {
	if f == nil {
		h.pre.Store(nil)
		return
	}
	h.pre.Store(&f)
}

// SetHookPost sets the callback function to be called just after the control
// value is updated.
func (h *hooks) SetHookPost(f Hook) {
	if f == nil {
		h.post.Store(nil)
		return
	}
	h.post.Store(&f)
}

func (h *hooks) set(nv Value, store func()) error {
	if f := h.pre.Load(); f != nil {
		if err := (*f)(nv); err != nil {
			return err
		}
	}

	store()

	if f := h.post.Load(); f != nil {
		if err := (*f)(nv); err != nil {
			return err
		}
	}

	return nil
}

// Potentiometer is a continuous control in the range [0,1]. Values outside of
// the range are clamped.
type Potentiometer struct {
	hooks
	name  string
	def   float64
	value atomic.Uint64 // float64 bits
}

// NewPotentiometer is the preferred method of initialisation for the
// Potentiometer type.
func NewPotentiometer(name string, def float64) *Potentiometer {
	p := &Potentiometer{name: name, def: clamp(def)}
	p.value.Store(math.Float64bits(p.def))
	return p
}

func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

// Name implements the Control interface.
func (p *Potentiometer) Name() string {
	return p.name
}

func (p *Potentiometer) String() string {
	return fmt.Sprintf("%.3f", p.Float())
}

// Set new value. New value can be a float64, float32, int or a string
// representation of a float.
func (p *Potentiometer) Set(v Value) error {
	var nv float64
	switch v := v.(type) {
	case float64:
		nv = v
	case float32:
		nv = float64(v)
	case int:
		nv = float64(v)
	case string:
		var err error
		nv, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%s: cannot convert %q to potentiometer value: %w", p.name, v, err)
		}
	default:
		return fmt.Errorf("%s: cannot convert %T to potentiometer value", p.name, v)
	}

	nv = clamp(nv)
	return p.set(nv, func() {
		p.value.Store(math.Float64bits(nv))
	})
}

// Get returns the raw value as a float64.
func (p *Potentiometer) Get() Value {
	return p.Float()
}

// Float returns the current position of the potentiometer.
func (p *Potentiometer) Float() float64 {
	return math.Float64frombits(p.value.Load())
}

// Reset returns the potentiometer to its default position.
func (p *Potentiometer) Reset() error {
	return p.Set(p.def)
}

// Selector is a control with a fixed number of labelled positions.
type Selector struct {
	hooks
	name   string
	labels []string
	def    int
	value  atomic.Int64
}

// NewSelector is the preferred method of initialisation for the Selector type.
// The list of labels must not be empty.
func NewSelector(name string, def int, labels ...string) *Selector {
	if len(labels) == 0 {
		panic(fmt.Sprintf("%s: selector has no positions", name))
	}
	s := &Selector{name: name, labels: labels}
	s.def = s.clamp(def)
	s.value.Store(int64(s.def))
	return s
}

func (s *Selector) clamp(v int) int {
	return max(0, min(len(s.labels)-1, v))
}

// Name implements the Control interface.
func (s *Selector) Name() string {
	return s.name
}

func (s *Selector) String() string {
	return s.labels[s.Index()]
}

// Len returns the number of selectable positions.
func (s *Selector) Len() int {
	return len(s.labels)
}

// Labels returns a copy of the position labels.
func (s *Selector) Labels() []string {
	return append([]string{}, s.labels...)
}

// Set new value. An int selects the position by index, which is clamped to
// the valid range. A string selects the position by label (case insensitive)
// or, if no label matches, by index.
func (s *Selector) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int:
		nv = s.clamp(v)
	case string:
		v = strings.TrimSpace(v)
		nv = -1
		for i, l := range s.labels {
			if strings.EqualFold(l, v) {
				nv = i
				break
			}
		}
		if nv == -1 {
			i, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: no position labelled %q", s.name, v)
			}
			if i < 0 || i >= len(s.labels) {
				return fmt.Errorf("%s: position %d out of range", s.name, i)
			}
			nv = i
		}
	default:
		return fmt.Errorf("%s: cannot convert %T to selector position", s.name, v)
	}

	return s.set(nv, func() {
		s.value.Store(int64(nv))
	})
}

// Get returns the selected index as an int.
func (s *Selector) Get() Value {
	return s.Index()
}

// Index returns the selected position.
func (s *Selector) Index() int {
	return int(s.value.Load())
}

// Step moves the selector by delta positions, stopping at either end.
func (s *Selector) Step(delta int) error {
	return s.Set(s.Index() + delta)
}

// Cycle moves the selector to the next position, wrapping around to the first.
func (s *Selector) Cycle() error {
	return s.Set((s.Index() + 1) % len(s.labels))
}

// Reset returns the selector to its default position.
func (s *Selector) Reset() error {
	return s.Set(s.def)
}

// Switch is an on/off control.
type Switch struct {
	hooks
	name  string
	def   bool
	value atomic.Bool
}

// NewSwitch is the preferred method of initialisation for the Switch type.
func NewSwitch(name string, def bool) *Switch {
	s := &Switch{name: name, def: def}
	s.value.Store(def)
	return s
}

// Name implements the Control interface.
func (s *Switch) Name() string {
	return s.name
}

func (s *Switch) String() string {
	if s.On() {
		return "on"
	}
	return "off"
}

// Set new value. New value must be of type bool or string. The strings
// "true", "on" and "1" (case insensitive) turn the switch on. Any other string
// turns it off.
func (s *Switch) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "on", "1":
			nv = true
		default:
			nv = false
		}
	default:
		return fmt.Errorf("%s: cannot convert %T to switch value", s.name, v)
	}

	return s.set(nv, func() {
		s.value.Store(nv)
	})
}

// Get returns the raw value as a bool.
func (s *Switch) Get() Value {
	return s.On()
}

// On returns true if the switch is on.
func (s *Switch) On() bool {
	return s.value.Load()
}

// Toggle flips the switch.
func (s *Switch) Toggle() error {
	return s.Set(!s.On())
}

// Reset returns the switch to its default state.
func (s *Switch) Reset() error {
	return s.Set(s.def)
}
