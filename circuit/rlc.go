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

package circuit

import (
	"math"
	"strconv"

	"github.com/jetsetilly/gopherscope/controls"
	"github.com/jetsetilly/gopherscope/logger"
	"github.com/jetsetilly/gopherscope/notifications"
	"github.com/jetsetilly/gopherscope/numeric"
	"github.com/jetsetilly/gopherscope/signal"
	"github.com/jetsetilly/gopherscope/worker"
)

// the resistances available to the RLC circuit
var rlcResistors = []string{"100", "500", "1000"}

// RLC is a series resonant circuit. The output is the voltage across the
// resistor.
type RLC struct {
	model

	// inductance in henries, capacitance in farads and the resistance of the
	// inductor coil in ohms
	L  float64
	C  float64
	RL float64

	// the resistance in ohms
	Resistor *controls.Selector

	// force numeric integration even if the input is a sinusoid
	Numeric *controls.Switch

	ur *signal.Provider
}

// NewRLC is the preferred method of initialisation for the RLC type. The
// queue and notify arguments can be nil.
func NewRLC(queue *worker.Queue, notify notifications.Notify) *RLC {
	rlc := &RLC{
		L:        0.1,
		C:        100e-9,
		RL:       100,
		Resistor: controls.NewSelector("resistor", 0, rlcResistors...),
		Numeric:  controls.NewSwitch("numeric", false),
		ur:       signal.NewProvider("ur"),
	}
	rlc.init("rlc", queue, notify, rlc.recompute)
	rlc.watch(rlc.Resistor)
	rlc.watch(rlc.Numeric)
	rlc.changed()
	return rlc
}

// Outputs implements the Model interface.
func (rlc *RLC) Outputs() []*signal.Provider {
	return []*signal.Provider{rlc.ur}
}

// Controls implements the Model interface.
func (rlc *RLC) Controls() []controls.Control {
	return []controls.Control{rlc.Resistor, rlc.Numeric}
}

// VoltageResistor returns the provider for the voltage across the resistor.
func (rlc *RLC) VoltageResistor() *signal.Provider {
	return rlc.ur
}

// R returns the currently selected resistance.
func (rlc *RLC) R() float64 {
	r, err := strconv.ParseFloat(rlc.Resistor.String(), 64)
	if err != nil {
		return 100
	}
	return r
}

// Resonance returns the resonant frequency in hertz.
func (rlc *RLC) Resonance() float64 {
	return 1 / (2 * math.Pi * math.Sqrt(rlc.L*rlc.C))
}

func (rlc *RLC) recompute() {
	in := rlc.input.Signal()

	// the capacitor blocks a constant input
	if math.IsInf(in.Period(), 0) {
		rlc.ur.SetSignal(signal.Ground)
		return
	}

	r := rlc.R()

	if s, ok := in.Sinusoid(); ok && !rlc.Numeric.On() {
		rlc.closedForm(s, r)
		return
	}

	rlc.integrate(in, r)
}

func (rlc *RLC) closedForm(s signal.SineParams, r float64) {
	logger.Log(rlc, "rlc", "closed form")

	w := s.Omega
	x := w*rlc.L - 1/(w*rlc.C)
	ampl := s.Amplitude * r / math.Sqrt((r+rlc.RL)*(r+rlc.RL)+x*x)
	phase := s.Phase - math.Atan(x/(r+rlc.RL))

	rlc.ur.SetSignal(signal.NewSine(ampl, w, phase, 0))
}

// integrate solves L·i'' = uin' − (R+RL)·i' − i/C with the semi-implicit Euler
// method. The integration starts from the current and its derivative that
// repeat from one period to the next so that no start-up transient is left in
// the result
func (rlc *RLC) integrate(in signal.Periodic, r float64) {
	period := in.Period()
	natural := 2 * math.Pi * math.Sqrt(rlc.L*rlc.C)
	decay := 2 * rlc.L / (r + rlc.RL)

	points := integrationPoints(period, natural, 10000)
	passes := integrationPasses(period, decay)

	logger.Logf(rlc, "rlc", "integrating %d points over %d periods (f0=%.1fHz)", points, passes, rlc.Resonance())

	dt := period / float64(points)

	// the derivative of the input is the backward difference of the samples.
	// the sample before the first is the last sample of the period
	samples := signal.Sample(in, points)
	slope := make([]float64, points)
	for j, u := range samples {
		slope[j] = (u - samples[(j+points-1)%points]) / dt
	}

	ur := make([]float64, points)

	// one period of integration from the state (i, di/dt). the samples are
	// only kept if record is true
	pass := func(x numeric.Vec2, record bool) numeric.Vec2 {
		i, didt := x[0], x[1]
		for j, du := range slope {
			if record {
				ur[j] = i * r
			}
			d2idt2 := (du - (r+rlc.RL)*didt - i/rlc.C) / rlc.L
			didt += d2idt2 * dt
			i += didt * dt
		}
		return numeric.Vec2{i, didt}
	}

	x, ok := numeric.FixedPoint2(func(x numeric.Vec2) numeric.Vec2 {
		return pass(x, false)
	})
	if !ok {
		x = numeric.Vec2{}
	}

	for range passes {
		x = pass(x, true)
	}

	sig, err := signal.NewLinearTable(period, ur)
	if err != nil {
		logger.Log(rlc, "rlc", err)
		return
	}
	rlc.ur.SetSignal(sig)
}
