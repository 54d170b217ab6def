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

package generator

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/gopherscope/controls"
	"github.com/jetsetilly/gopherscope/logger"
	"github.com/jetsetilly/gopherscope/signal"
)

// MaxAmplitude is the amplitude in volts with the amplitude control at its
// maximum position. It is also the maximum offset.
const MaxAmplitude = 10

// List of valid values for the Form control.
const (
	FormSine      = "SINE"
	FormSquare    = "SQUARE"
	FormTriangle  = "TRIANGLE"
	FormSawtooth  = "SAWTOOTH"
	FormArbitrary = "ARBITRARY"
)

var decades = []float64{1, 10, 100, 1000, 10000, 100000}

// the trigger output swings between 0 and twice this value
const triggerAmplitude = 2.5

// Generator is a function generator.
type Generator struct {
	name string

	Power     *controls.Switch
	Form      *controls.Selector
	Frequency *controls.Selector
	Fine      *controls.Potentiometer
	Amplitude *controls.Potentiometer
	Offset    *controls.Potentiometer
	Phase     *controls.Potentiometer

	out  *signal.Provider
	trig *signal.Provider

	arbitrary atomic.Pointer[signal.Table]

	// serialises updates so that the outputs are set in the order the
	// controls were changed
	crit sync.Mutex
}

// NewGenerator is the preferred method of initialisation for the Generator
// type. The generator is switched off.
func NewGenerator(name string) *Generator {
	gen := &Generator{
		name:      name,
		Power:     controls.NewSwitch("power", false),
		Form:      controls.NewSelector("form", 0, FormSine, FormSquare, FormTriangle, FormSawtooth, FormArbitrary),
		Frequency: controls.NewSelector("freq", 0, "1", "10", "100", "1k", "10k", "100k"),
		Fine:      controls.NewPotentiometer("fine", 0),
		Amplitude: controls.NewPotentiometer("ampl", 0),
		Offset:    controls.NewPotentiometer("offset", 0.5),
		Phase:     controls.NewPotentiometer("phase", 0),
		out:       signal.NewProvider("out"),
		trig:      signal.NewProvider("trig"),
	}

	// the trigger output does not depend on the form or level of the signal
	both := func(_ controls.Value) error {
		gen.update(true)
		return nil
	}
	signalOnly := func(_ controls.Value) error {
		gen.update(false)
		return nil
	}

	gen.Power.SetHookPost(both)
	gen.Frequency.SetHookPost(both)
	gen.Fine.SetHookPost(both)
	gen.Phase.SetHookPost(signalOnly)
	gen.Form.SetHookPost(signalOnly)
	gen.Amplitude.SetHookPost(signalOnly)
	gen.Offset.SetHookPost(signalOnly)

	gen.update(true)

	return gen
}

// Name returns the name of the generator.
func (gen *Generator) Name() string {
	return gen.name
}

func (gen *Generator) String() string {
	if !gen.Power.On() {
		return fmt.Sprintf("%s (off)", gen.name)
	}
	return fmt.Sprintf("%s (%s %.4gHz)", gen.name, gen.Form, gen.FrequencyHz())
}

// Output returns the provider for the signal output.
func (gen *Generator) Output() *signal.Provider {
	return gen.out
}

// TriggerOutput returns the provider for the trigger output.
func (gen *Generator) TriggerOutput() *signal.Provider {
	return gen.trig
}

// Outputs returns the providers for both outputs.
func (gen *Generator) Outputs() []*signal.Provider {
	return []*signal.Provider{gen.out, gen.trig}
}

// Controls returns all front panel controls.
func (gen *Generator) Controls() []controls.Control {
	return []controls.Control{gen.Power, gen.Form, gen.Frequency, gen.Fine, gen.Amplitude, gen.Offset, gen.Phase}
}

// FrequencyHz returns the frequency selected by the frequency controls.
func (gen *Generator) FrequencyHz() float64 {
	return decades[gen.Frequency.Index()] * 1.001 * math.Pow(10, gen.Fine.Float())
}

// Omega returns the angular frequency selected by the frequency controls.
func (gen *Generator) Omega() float64 {
	return 2 * math.Pi * gen.FrequencyHz()
}

// SetArbitrary sets the waveform used by the ARBITRARY form. The table should
// be normalised so that full scale is one. A nil table removes the waveform.
func (gen *Generator) SetArbitrary(tbl *signal.Table) {
	gen.arbitrary.Store(tbl)
	gen.update(false)
}

func (gen *Generator) update(trigger bool) {
	gen.crit.Lock()
	defer gen.crit.Unlock()

	if !gen.Power.On() {
		gen.out.SetSignal(signal.Ground)
		if trigger {
			gen.trig.SetSignal(signal.Ground)
		}
		return
	}

	omega := gen.Omega()
	phase := gen.Phase.Float() * 2 * math.Pi
	ampl := gen.Amplitude.Float() * MaxAmplitude
	offset := (gen.Offset.Float() - 0.5) * 2 * MaxAmplitude

	var out signal.Periodic
	switch gen.Form.String() {
	case FormSine:
		out = signal.NewSine(ampl, omega, phase, offset)
	case FormSquare:
		out = signal.NewSquare(ampl, omega, phase, offset)
	case FormTriangle:
		out = signal.NewTriangle(ampl, omega, phase, offset)
	case FormSawtooth:
		out = signal.NewSawtooth(ampl, omega, phase, offset)
	case FormArbitrary:
		out = gen.arbitraryOutput(omega, phase, ampl, offset)
	}
	gen.out.SetSignal(out)

	if trigger {
		gen.trig.SetSignal(signal.NewSquare(triggerAmplitude, omega, 0, triggerAmplitude))
	}
}

func (gen *Generator) arbitraryOutput(omega float64, phase float64, ampl float64, offset float64) signal.Periodic {
	tbl := gen.arbitrary.Load()
	if tbl == nil {
		logger.Logf(logger.Allow, "generator", "%s: no arbitrary waveform", gen.name)
		return signal.Ground
	}

	period := 2 * math.Pi / omega
	t, err := tbl.Transform(period, ampl, offset)
	if err != nil {
		logger.Log(logger.Allow, "generator", fmt.Errorf("%s: %w", gen.name, err))
		return signal.Ground
	}

	return t.Shift(phase / omega)
}
