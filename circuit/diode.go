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
	"sync"

	"github.com/jetsetilly/gopherscope/controls"
	"github.com/jetsetilly/gopherscope/logger"
	"github.com/jetsetilly/gopherscope/notifications"
	"github.com/jetsetilly/gopherscope/numeric"
	"github.com/jetsetilly/gopherscope/signal"
	"github.com/jetsetilly/gopherscope/worker"
)

// DiodeParams are the parameters of the diode and its series resistor.
type DiodeParams struct {
	// series resistance in ohms
	R float64

	// saturation current in amps
	IS float64

	// emission coefficient
	N float64

	// thermal voltage in volts
	UT float64
}

// DefaultDiode is a small signal silicon diode with a 1kΩ series resistor.
var DefaultDiode = DiodeParams{
	R:  1000,
	IS: 1e-10,
	N:  1.5,
	UT: 0.025,
}

// the tolerance and starting estimate of the Newton solve
const (
	diodeEpsilon = 1e-4
	diodeGuess   = 0.6
)

// Residual of the diode equation for diode voltage ud and total voltage uGes.
// It is zero for the correct ud.
func (p DiodeParams) Residual(ud float64, uGes float64) float64 {
	return p.R*p.IS*math.Exp(ud/(p.N*p.UT)) + ud - uGes
}

// total returns the total voltage for the diode voltage. this is the inverse
// of the function the model needs
func (p DiodeParams) total(ud float64) float64 {
	return p.R*p.IS*math.Exp(ud/(p.N*p.UT)) + ud
}

func (p DiodeParams) derivative(ud float64) float64 {
	return p.R*p.IS/(p.N*p.UT)*math.Exp(ud/(p.N*p.UT)) + 1
}

// Solve returns the diode voltage and the current for the total voltage
// across the diode and resistor. A negative total voltage is entirely across
// the diode and no current flows.
//
// The final return value is false if the solver reached its iteration cap.
// The voltage and current are still the best available estimate.
func (p DiodeParams) Solve(uGes float64) (ud float64, i float64, ok bool) {
	if uGes < 0 {
		return uGes, 0, true
	}
	ud, ok = p.solveFrom(uGes, diodeGuess)
	return ud, (uGes - ud) / p.R, ok
}

func (p DiodeParams) solveFrom(uGes float64, guess float64) (float64, bool) {
	return numeric.Newton(func(ud float64) float64 {
		return p.total(ud) - uGes
	}, p.derivative, guess, diodeEpsilon)
}

// List of valid values for the diode method control.
const (
	DiodeInverse = "inverse"
	DiodeTable   = "table"
)

// the number of samples per period for the DiodeTable method
const diodeTablePoints = 200

// the range and number of points of the inverse table used by the
// DiodeInverse method. the range covers the full swing of the function
// generator
const (
	diodeInverseMax    = 20
	diodeInversePoints = 2000
)

// Diode is a diode in series with a resistor.
type Diode struct {
	model
	params DiodeParams

	// the method used to compute the outputs
	Method *controls.Selector

	ud *signal.Provider
	ur *signal.Provider

	inverseOnce sync.Once
	inverse     *numeric.LinearTable
}

// NewDiode is the preferred method of initialisation for the Diode type. The
// queue and notify arguments can be nil.
func NewDiode(params DiodeParams, queue *worker.Queue, notify notifications.Notify) *Diode {
	d := &Diode{
		params: params,
		Method: controls.NewSelector("method", 0, DiodeInverse, DiodeTable),
		ud:     signal.NewProvider("ud"),
		ur:     signal.NewProvider("ur"),
	}
	d.init("diode", queue, notify, d.recompute)
	d.watch(d.Method)
	d.changed()
	return d
}

// Outputs implements the Model interface.
func (d *Diode) Outputs() []*signal.Provider {
	return []*signal.Provider{d.ud, d.ur}
}

// Controls implements the Model interface.
func (d *Diode) Controls() []controls.Control {
	return []controls.Control{d.Method}
}

// VoltageDiode returns the provider for the voltage across the diode.
func (d *Diode) VoltageDiode() *signal.Provider {
	return d.ud
}

// VoltageResistor returns the provider for the voltage across the resistor.
func (d *Diode) VoltageResistor() *signal.Provider {
	return d.ur
}

func (d *Diode) recompute() {
	in := d.input.Signal()

	switch d.Method.String() {
	case DiodeTable:
		d.periodTable(in)
	default:
		d.inverseFunction(in)
	}
}

// periodTable solves the diode equation at evenly spaced points of one period
// of the input
func (d *Diode) periodTable(in signal.Periodic) {
	logger.Log(d, "diode", "recalculate period table")

	period := in.Period()
	if math.IsInf(period, 0) {
		ud, _, _ := d.params.Solve(in.V(0))
		d.ud.SetSignal(constant(ud))
		d.ur.SetSignal(constant(ud - in.V(0)))
		return
	}

	ud := make([]float64, diodeTablePoints)
	ur := make([]float64, diodeTablePoints)
	var capped int
	for i := range ud {
		uGes := in.V(period * float64(i) / diodeTablePoints)
		v, _, ok := d.params.Solve(uGes)
		if !ok {
			capped++
		}
		ud[i] = v
		ur[i] = v - uGes
	}
	if capped > 0 {
		logger.Logf(d, "diode", "%d points reached the iteration cap", capped)
	}

	udSig, err := signal.NewCubicTable(period, ud)
	if err != nil {
		logger.Log(d, "diode", err)
		return
	}
	urSig, err := signal.NewCubicTable(period, ur)
	if err != nil {
		logger.Log(d, "diode", err)
		return
	}

	d.ud.SetSignal(udSig)
	d.ur.SetSignal(urSig)
}

// inverseFunction creates outputs that are functions of the input signal. the
// inverse of the diode equation is tabulated once
func (d *Diode) inverseFunction(in signal.Periodic) {
	d.inverseOnce.Do(func() {
		logger.Log(d, "diode", "creating inverse table")
		var capped int
		var err error
		d.inverse, capped, err = numeric.NewInverseTable(d.params.total, d.params.derivative,
			0, diodeInverseMax, diodeInversePoints, 0, diodeEpsilon)
		if err != nil {
			logger.Log(d, "diode", err)
		}
		if capped > 0 {
			logger.Logf(d, "diode", "%d points of inverse table reached the iteration cap", capped)
		}
	})

	inv := d.inverse
	params := d.params
	ud := func(uGes float64) float64 {
		if uGes < 0 {
			return uGes
		}
		if inv == nil || uGes > diodeInverseMax {
			v, _, _ := params.Solve(uGes)
			return v
		}
		return inv.Value(uGes)
	}

	d.ud.SetSignal(signal.Func(in, ud))
	d.ur.SetSignal(signal.Func(in, func(uGes float64) float64 {
		return ud(uGes) - uGes
	}))
}
