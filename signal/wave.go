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

package signal

import (
	"fmt"
	"math"

	"github.com/jetsetilly/gopherscope/numeric"
)

// Shape of a Wave.
type Shape int

// List of valid Shape values.
const (
	ShapeSine Shape = iota
	ShapeSquare
	ShapeTriangle
	ShapeSawtooth
)

func (s Shape) String() string {
	switch s {
	case ShapeSine:
		return "sine"
	case ShapeSquare:
		return "square"
	case ShapeTriangle:
		return "triangle"
	case ShapeSawtooth:
		return "sawtooth"
	}
	return "unknown shape"
}

// Wave is one of the primitive wave shapes. The Amplitude, Omega, Phase and
// Offset fields have the same meaning for every shape. The shape is placed in
// the cycle by the argument (Omega*t+Phase)/2π.
//
// A Wave with an Omega of zero is a constant signal.
type Wave struct {
	Shape Shape
	SineParams
}

// NewSine returns a sine wave.
func NewSine(amplitude, omega, phase, offset float64) Wave {
	return Wave{Shape: ShapeSine, SineParams: SineParams{Amplitude: amplitude, Omega: omega, Phase: phase, Offset: offset}}
}

// NewSquare returns a square wave. The value is +amplitude for the first half
// of the cycle.
func NewSquare(amplitude, omega, phase, offset float64) Wave {
	return Wave{Shape: ShapeSquare, SineParams: SineParams{Amplitude: amplitude, Omega: omega, Phase: phase, Offset: offset}}
}

// NewTriangle returns a triangle wave. The value is -amplitude at the start
// of the cycle and +amplitude half way through the cycle.
func NewTriangle(amplitude, omega, phase, offset float64) Wave {
	return Wave{Shape: ShapeTriangle, SineParams: SineParams{Amplitude: amplitude, Omega: omega, Phase: phase, Offset: offset}}
}

// NewSawtooth returns a sawtooth wave that ramps from -amplitude to
// +amplitude over each cycle.
func NewSawtooth(amplitude, omega, phase, offset float64) Wave {
	return Wave{Shape: ShapeSawtooth, SineParams: SineParams{Amplitude: amplitude, Omega: omega, Phase: phase, Offset: offset}}
}

func (w Wave) String() string {
	return fmt.Sprintf("%s %.3gV %.4gHz", w.Shape, w.Amplitude, w.Omega/(2*math.Pi))
}

// V implements the Periodic interface.
func (w Wave) V(t float64) float64 {
	if w.Shape == ShapeSine {
		return w.Amplitude*math.Sin(w.Omega*t+w.Phase) + w.Offset
	}

	arg := (w.Omega*t + w.Phase) / (2 * math.Pi)
	frac := arg - math.Floor(arg)

	switch w.Shape {
	case ShapeSquare:
		if frac < 0.5 {
			return w.Amplitude + w.Offset
		}
		return -w.Amplitude + w.Offset
	case ShapeTriangle:
		if frac < 0.5 {
			return w.Amplitude*(4*frac-1) + w.Offset
		}
		return w.Amplitude*(4*(1-frac)-1) + w.Offset
	case ShapeSawtooth:
		return w.Amplitude*(2*frac-1) + w.Offset
	}

	return w.Offset
}

// Period implements the Periodic interface.
func (w Wave) Period() float64 {
	if w.Omega == 0 {
		return math.Inf(1)
	}
	return 2 * math.Pi / math.Abs(w.Omega)
}

// Mean implements the Periodic interface.
func (w Wave) Mean() float64 {
	if w.Omega == 0 {
		return w.V(0)
	}
	return w.Offset
}

// Sinusoid implements the Periodic interface.
func (w Wave) Sinusoid() (SineParams, bool) {
	if w.Shape != ShapeSine || w.Omega == 0 {
		return SineParams{}, false
	}
	return w.SineParams, true
}

// Table is a signal defined by samples spanning exactly one period. Values
// between samples are interpolated.
type Table struct {
	period  float64
	samples []float64
	cubic   bool

	// added to the time before the table is sampled
	shift float64

	// applied after interpolation. the mean is of the transformed signal
	gain   float64
	offset float64
	mean   float64
}

func newTable(period float64, samples []float64, cubic bool) (*Table, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("signal: table has no samples")
	}
	if !(period > 0) || math.IsInf(period, 0) {
		return nil, fmt.Errorf("signal: invalid table period (%g)", period)
	}

	t := &Table{
		period:  period,
		samples: append([]float64{}, samples...),
		cubic:   cubic,
		gain:    1,
	}

	var sum float64
	for _, s := range t.samples {
		sum += s
	}
	t.mean = sum / float64(len(t.samples))

	return t, nil
}

// NewLinearTable creates a signal that interpolates linearly between samples.
// The samples are copied.
func NewLinearTable(period float64, samples []float64) (*Table, error) {
	return newTable(period, samples, false)
}

// NewCubicTable creates a signal that interpolates between samples with a
// cubic Hermite polynomial. The samples are copied.
func NewCubicTable(period float64, samples []float64) (*Table, error) {
	return newTable(period, samples, true)
}

// Transform returns a new table with the same samples but with a different
// period, gain and offset. The samples are shared between both tables.
func (t *Table) Transform(period float64, gain float64, offset float64) (*Table, error) {
	if !(period > 0) || math.IsInf(period, 0) {
		return nil, fmt.Errorf("signal: invalid table period (%g)", period)
	}
	n := *t
	n.period = period
	n.shift = t.shift * period / t.period
	n.gain = t.gain * gain
	n.offset = t.offset*gain + offset
	n.mean = t.mean*gain + offset
	return &n, nil
}

// Shift returns a new table that is advanced in time by dt seconds. The
// samples are shared between both tables.
func (t *Table) Shift(dt float64) *Table {
	n := *t
	n.shift = t.shift + dt
	return &n
}

func (t *Table) String() string {
	interp := "linear"
	if t.cubic {
		interp = "cubic"
	}
	return fmt.Sprintf("%s table of %d samples %.4gHz", interp, len(t.samples), 1/t.period)
}

// Len returns the number of samples in the table.
func (t *Table) Len() int {
	return len(t.samples)
}

// V implements the Periodic interface.
func (t *Table) V(tm float64) float64 {
	phase := numeric.Wrap(tm+t.shift, t.period)
	var v float64
	if t.cubic {
		v = numeric.PeriodicHermite(t.samples, phase)
	} else {
		v = numeric.PeriodicLinear(t.samples, phase)
	}
	return v*t.gain + t.offset
}

// Period implements the Periodic interface.
func (t *Table) Period() float64 {
	return t.period
}

// Mean implements the Periodic interface.
func (t *Table) Mean() float64 {
	return t.mean
}

// Sinusoid implements the Periodic interface. A table is never treated as a
// sinusoid even if the samples describe one.
func (t *Table) Sinusoid() (SineParams, bool) {
	return SineParams{}, false
}

// Sample evaluates one period of the signal at n evenly spaced points
// starting at time zero.
func Sample(s Periodic, n int) []float64 {
	p := s.Period()
	if math.IsInf(p, 0) {
		p = 1
	}
	v := make([]float64, n)
	for i := range v {
		v[i] = s.V(p * float64(i) / float64(n))
	}
	return v
}
