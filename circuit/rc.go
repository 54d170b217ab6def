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

	"github.com/jetsetilly/gopherscope/controls"
	"github.com/jetsetilly/gopherscope/logger"
	"github.com/jetsetilly/gopherscope/notifications"
	"github.com/jetsetilly/gopherscope/numeric"
	"github.com/jetsetilly/gopherscope/signal"
	"github.com/jetsetilly/gopherscope/worker"
)

// limits of the numeric integration
const (
	minPoints = 1000
	maxPoints = 100000
	minPasses = 3
	maxPasses = 8
)

// integrationPoints returns the number of points per period. the number
// grows with the ratio of the period to the time constant of the circuit
func integrationPoints(period float64, tc float64, scale float64) int {
	points := int(period / tc * scale)
	return max(minPoints, min(maxPoints, points))
}

// integrationPasses returns the number of periods to integrate over so that
// the transient has decayed before the final period
func integrationPasses(period float64, decay float64) int {
	passes := int(math.Ceil(8 * decay / period))
	return max(minPasses, min(maxPasses, passes))
}

// RC is a capacitor in series with a resistor.
type RC struct {
	model

	// resistance in ohms and capacitance in farads
	R float64
	C float64

	// force numeric integration even if the input is a sinusoid
	Numeric *controls.Switch

	uc *signal.Provider
	ur *signal.Provider
}

// NewRC is the preferred method of initialisation for the RC type. The queue
// and notify arguments can be nil.
func NewRC(queue *worker.Queue, notify notifications.Notify) *RC {
	rc := &RC{
		R:       1000,
		C:       100e-9,
		Numeric: controls.NewSwitch("numeric", false),
		uc:      signal.NewProvider("uc"),
		ur:      signal.NewProvider("ur"),
	}
	rc.init("rc", queue, notify, rc.recompute)
	rc.watch(rc.Numeric)
	rc.changed()
	return rc
}

// Outputs implements the Model interface.
func (rc *RC) Outputs() []*signal.Provider {
	return []*signal.Provider{rc.uc, rc.ur}
}

// Controls implements the Model interface.
func (rc *RC) Controls() []controls.Control {
	return []controls.Control{rc.Numeric}
}

// VoltageCapacitor returns the provider for the voltage across the capacitor.
func (rc *RC) VoltageCapacitor() *signal.Provider {
	return rc.uc
}

// VoltageResistor returns the provider for the voltage across the resistor.
func (rc *RC) VoltageResistor() *signal.Provider {
	return rc.ur
}

// Tau returns the time constant of the network.
func (rc *RC) Tau() float64 {
	return rc.R * rc.C
}

func (rc *RC) recompute() {
	in := rc.input.Signal()

	if math.IsInf(in.Period(), 0) {
		// the capacitor charges to a constant input
		rc.uc.SetSignal(constant(in.V(0)))
		rc.ur.SetSignal(signal.Ground)
		return
	}

	if s, ok := in.Sinusoid(); ok && !rc.Numeric.On() {
		rc.closedForm(s)
		return
	}

	rc.integrate(in)
}

func (rc *RC) closedForm(s signal.SineParams) {
	logger.Log(rc, "rc", "closed form")

	wt := s.Omega * rc.Tau()
	uc := s.Amplitude / math.Sqrt(1+wt*wt)
	ur := s.Amplitude * wt / math.Sqrt(1+wt*wt)
	phase := s.Phase - math.Atan(wt)

	rc.uc.SetSignal(signal.NewSine(uc, s.Omega, phase, s.Offset))
	rc.ur.SetSignal(signal.NewSine(-ur, s.Omega, phase+math.Pi/2, 0))
}

// integrate solves τ·uc' = uin − uc with the forward Euler method. The
// integration starts from the capacitor voltage that repeats from one period
// to the next so that no start-up transient is left in the result
func (rc *RC) integrate(in signal.Periodic) {
	tau := rc.Tau()
	period := in.Period()
	points := integrationPoints(period, tau, 1000)
	passes := integrationPasses(period, tau)

	logger.Logf(rc, "rc", "integrating %d points over %d periods", points, passes)

	samples := signal.Sample(in, points)
	uc := make([]float64, points)
	ur := make([]float64, points)
	k := period / float64(points) / tau

	// one period of integration from the capacitor voltage v. the samples are
	// only kept if record is true
	pass := func(v float64, record bool) float64 {
		for i, u := range samples {
			if record {
				uc[i] = v
				ur[i] = v - u
			}
			v += (u - v) * k
		}
		return v
	}

	v, ok := numeric.FixedPoint(func(v float64) float64 {
		return pass(v, false)
	})
	if !ok {
		v = in.Mean()
	}

	for range passes {
		v = pass(v, true)
	}

	ucSig, err := signal.NewLinearTable(period, uc)
	if err != nil {
		logger.Log(rc, "rc", err)
		return
	}
	urSig, err := signal.NewLinearTable(period, ur)
	if err != nil {
		logger.Log(rc, "rc", err)
		return
	}

	rc.uc.SetSignal(ucSig)
	rc.ur.SetSignal(urSig)
}
