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
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownControl is returned when a name does not match any control in a
// registry.
var ErrUnknownControl = errors.New("unknown control")

// Registry is a collection of named controls.
type Registry struct {
	crit     sync.Mutex
	controls map[string]Control
}

// NewRegistry is the preferred method of initialisation for the Registry type.
func NewRegistry() *Registry {
	return &Registry{
		controls: make(map[string]Control),
	}
}

// Add controls to the registry. The name of each control is prefixed with the
// supplied prefix and a dot, unless the prefix is empty. Adding a control with
// a name that already exists replaces the earlier control.
func (r *Registry) Add(prefix string, ctrls ...Control) {
	r.crit.Lock()
	defer r.crit.Unlock()
	for _, c := range ctrls {
		name := c.Name()
		if prefix != "" {
			name = fmt.Sprintf("%s.%s", prefix, name)
		}
		r.controls[name] = c
	}
}

// Lookup returns the named control.
func (r *Registry) Lookup(name string) (Control, error) {
	r.crit.Lock()
	defer r.crit.Unlock()
	c, ok := r.controls[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownControl, name)
	}
	return c, nil
}

// Set the named control to a value.
func (r *Registry) Set(name string, value Value) error {
	c, err := r.Lookup(name)
	if err != nil {
		return err
	}
	return c.Set(value)
}

// Apply parses an assignment string and sets each of the named controls.
// Processing stops on the first error.
func (r *Registry) Apply(assignments string) error {
	for _, a := range ParseAssignments(assignments) {
		if err := r.Set(a.Key, a.Value); err != nil {
			return err
		}
	}
	return nil
}

// Names returns the names of all controls in the registry, sorted.
func (r *Registry) Names() []string {
	r.crit.Lock()
	defer r.crit.Unlock()
	n := make([]string, 0, len(r.controls))
	for k := range r.controls {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

// Reset all controls to their default values.
func (r *Registry) Reset() error {
	for _, n := range r.Names() {
		c, err := r.Lookup(n)
		if err != nil {
			return err
		}
		if err := c.Reset(); err != nil {
			return err
		}
	}
	return nil
}
