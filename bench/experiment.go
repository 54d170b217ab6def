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
	"math"
	"strings"

	"github.com/jetsetilly/gopherscope/notifications"
	"github.com/jetsetilly/gopherscope/scope"
	"github.com/pkg/errors"
)

// Experiment is a preset arrangement of instruments, control positions and
// wires.
type Experiment struct {
	Name        string
	Description string

	setup func(b *Bench) error
}

func (e Experiment) String() string {
	return e.Name
}

var experiments = []Experiment{
	{
		Name:        "general",
		Description: "two function generators connected to the scope",
		setup:       setupGeneral,
	},
	{
		Name:        "diode",
		Description: "diode characteristic in XY mode",
		setup:       setupDiode,
	},
	{
		Name:        "capacitor",
		Description: "voltages across the capacitor and resistor of an RC circuit",
		setup:       setupCapacitor,
	},
	{
		Name:        "resonant",
		Description: "resistor voltage of a series resonant circuit near resonance",
		setup:       setupResonant,
	},
}

// Experiments returns the list of experiments.
func Experiments() []Experiment {
	return append([]Experiment{}, experiments...)
}

// Lookup returns the named experiment. The name is not case sensitive.
func Lookup(name string) (Experiment, error) {
	for _, e := range experiments {
		if strings.EqualFold(e.Name, strings.TrimSpace(name)) {
			return e, nil
		}
	}
	return Experiment{}, errors.Wrap(ErrUnknownExperiment, name)
}

// Build a new bench for the experiment. The scope is switched off.
func (e Experiment) Build(notify notifications.Notify) (*Bench, error) {
	b := New(e.Name, notify)
	if _, err := b.AddScope(scope.DefaultWidth, scope.DefaultHeight); err != nil {
		b.Close()
		return nil, err
	}
	if err := e.setup(b); err != nil {
		b.Close()
		return nil, errors.Wrapf(err, "experiment %s", e.Name)
	}
	return b, nil
}

// settings applied to the scope by all experiments
const scopeCommon = "ch1.pos::0.5; ch1.coupling::DC; ch2.pos::0.5; ch2.coupling::DC"

func connect(b *Bench, wires ...Wire) error {
	for _, w := range wires {
		if err := b.Connect(w.From, w.To); err != nil {
			return err
		}
	}
	return nil
}

func setupGeneral(b *Bench) error {
	if _, err := b.AddGenerator("gen1"); err != nil {
		return err
	}
	if _, err := b.AddGenerator("gen2"); err != nil {
		return err
	}

	r := b.Registry()
	if err := r.Apply(scopeCommon + "; horizontal.pos::0.5; ch1.volts::1V; ch2.volts::1V"); err != nil {
		return err
	}
	if err := r.Apply("gen1.ampl::0.18; gen1.freq::10; gen1.power::on"); err != nil {
		return err
	}
	if err := r.Apply("gen2.ampl::0.18; gen2.freq::10; gen2.power::on"); err != nil {
		return err
	}
	if err := r.Set("gen2.fine", math.Log10(3)); err != nil {
		return err
	}

	return connect(b,
		Wire{From: "gen1.out", To: "scope.ch1"},
		Wire{From: "gen2.out", To: "scope.ch2"},
	)
}

func setupDiode(b *Bench) error {
	if _, err := b.AddGenerator("gen1"); err != nil {
		return err
	}
	if _, err := b.AddDiode("diode"); err != nil {
		return err
	}

	r := b.Registry()
	if err := r.Apply(scopeCommon + "; horizontal.pos::0.5; ch1.volts::200mV; ch2.volts::500mV; ch2.inv::on"); err != nil {
		return err
	}
	if err := r.Apply("gen1.ampl::0.18; gen1.freq::10; gen1.power::on"); err != nil {
		return err
	}

	return connect(b,
		Wire{From: "gen1.out", To: "diode.in"},
		Wire{From: "diode.ud", To: "scope.ch1"},
		Wire{From: "diode.ur", To: "scope.ch2"},
	)
}

func setupCapacitor(b *Bench) error {
	if _, err := b.AddGenerator("gen1"); err != nil {
		return err
	}
	if _, err := b.AddRC("rc"); err != nil {
		return err
	}

	r := b.Registry()
	if err := r.Apply(scopeCommon + "; ch1.volts::500mV; ch2.volts::50mV; ch2.inv::on; mode::DUAL"); err != nil {
		return err
	}
	if err := r.Apply("trigger.mode::AUTO; trigger.source::EXT; trigger.level::0.5; horizontal.timebase::8"); err != nil {
		return err
	}
	if err := r.Apply("gen1.ampl::0.18; gen1.freq::100; gen1.power::on"); err != nil {
		return err
	}

	return connect(b,
		Wire{From: "gen1.out", To: "rc.in"},
		Wire{From: "rc.uc", To: "scope.ch1"},
		Wire{From: "rc.ur", To: "scope.ch2"},
		Wire{From: "gen1.trig", To: "scope.trig"},
	)
}

func setupResonant(b *Bench) error {
	if _, err := b.AddGenerator("gen1"); err != nil {
		return err
	}
	if _, err := b.AddRLC("rlc"); err != nil {
		return err
	}

	r := b.Registry()
	if err := r.Apply(scopeCommon + "; ch1.volts::500mV; ch2.volts::500mV; mode::DUAL"); err != nil {
		return err
	}
	if err := r.Apply("trigger.mode::AUTO; trigger.source::EXT; trigger.level::0.5; horizontal.timebase::12"); err != nil {
		return err
	}
	if err := r.Apply("gen1.ampl::0.2; gen1.freq::1k; gen1.power::on"); err != nil {
		return err
	}
	if err := r.Set("gen1.fine", math.Log10(1.591)); err != nil {
		return err
	}

	return connect(b,
		Wire{From: "gen1.out", To: "rlc.in"},
		Wire{From: "gen1.out", To: "scope.ch1"},
		Wire{From: "rlc.ur", To: "scope.ch2"},
		Wire{From: "gen1.trig", To: "scope.trig"},
	)
}
