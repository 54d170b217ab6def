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

package bench

import (
	"fmt"
	"sort"

	"github.com/jetsetilly/gopherscope/circuit"
	"github.com/jetsetilly/gopherscope/generator"
	"github.com/jetsetilly/gopherscope/scope"
	"github.com/jetsetilly/gopherscope/signal"
	"github.com/pkg/errors"
)

// Instrument is a device on the bench along with its named connectors.
type Instrument struct {
	name    string
	device  any
	inputs  map[string]*signal.Provider
	outputs map[string]*signal.Provider
	close   func()
}

func (ins *Instrument) String() string {
	return fmt.Sprintf("%s (%v)", ins.name, ins.device)
}

// Name returns the name of the instrument on the bench.
func (ins *Instrument) Name() string {
	return ins.name
}

// Device returns the underlying device. One of *generator.Generator,
// *scope.Scope or circuit.Model.
func (ins *Instrument) Device() any {
	return ins.device
}

// Inputs returns the sorted names of the input connectors.
func (ins *Instrument) Inputs() []string {
	return sortedKeys(ins.inputs)
}

// Outputs returns the sorted names of the output connectors.
func (ins *Instrument) Outputs() []string {
	return sortedKeys(ins.outputs)
}

// Input returns the named input connector.
func (ins *Instrument) Input(name string) (*signal.Provider, error) {
	if p, ok := ins.inputs[name]; ok {
		return p, nil
	}
	return nil, errors.Wrapf(ErrUnknownConnector, "%s has no input %q", ins.name, name)
}

// Output returns the named output connector.
func (ins *Instrument) Output(name string) (*signal.Provider, error) {
	if p, ok := ins.outputs[name]; ok {
		return p, nil
	}
	return nil, errors.Wrapf(ErrUnknownConnector, "%s has no output %q", ins.name, name)
}

func sortedKeys(m map[string]*signal.Provider) []string {
	k := make([]string, 0, len(m))
	for n := range m {
		k = append(k, n)
	}
	sort.Strings(k)
	return k
}

func newGeneratorInstrument(name string, gen *generator.Generator) *Instrument {
	return &Instrument{
		name:   name,
		device: gen,
		outputs: map[string]*signal.Provider{
			"out":  gen.Output(),
			"trig": gen.TriggerOutput(),
		},
		close: func() {},
	}
}

func newScopeInstrument(name string, sc *scope.Scope) *Instrument {
	return &Instrument{
		name:   name,
		device: sc,
		inputs: map[string]*signal.Provider{
			"ch1":  sc.Ch1.Input(),
			"ch2":  sc.Ch2.Input(),
			"trig": sc.Trigger.Input(),
		},
		close: sc.Close,
	}
}

// circuit outputs are named by their providers
func newCircuitInstrument(name string, m circuit.Model) *Instrument {
	ins := &Instrument{
		name:    name,
		device:  m,
		inputs:  map[string]*signal.Provider{"in": m.Input()},
		outputs: make(map[string]*signal.Provider),
		close:   m.Close,
	}
	for _, p := range m.Outputs() {
		ins.outputs[p.String()] = p
	}
	return ins
}
