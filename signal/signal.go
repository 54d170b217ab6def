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

// Package signal contains the periodic signals carried by the wires of the
// simulated bench.
//
// A Periodic signal is an immutable value. A function generator creates a new
// signal whenever one of its controls changes and circuit models create new
// signals whenever their input changes. Signals are never mutated so they can
// be shared freely between the goroutine that creates them and the render
// loop.
//
// The Provider type is the single slot that holds the current signal of a
// connector. Providers notify their observers whenever the signal changes.
package signal

// SineParams describe a pure sinusoid:
//
//	v(t) = Amplitude * sin(Omega*t + Phase) + Offset
type SineParams struct {
	Amplitude float64
	Omega     float64
	Phase     float64
	Offset    float64
}

// Periodic is a function of time that repeats with a fixed period.
type Periodic interface {
	// the value of the signal at time t (in seconds)
	V(t float64) float64

	// the period of the signal in seconds. a constant signal returns +Inf
	Period() float64

	// the average value of the signal over one period
	Mean() float64

	// circuit models use the descriptor to compute outputs in closed form.
	// the second return value is false if the signal is not a pure sinusoid
	Sinusoid() (SineParams, bool)
}

// ground is the zero signal
type ground struct{}

// Ground is the zero signal. It is the signal of every unconnected connector.
var Ground Periodic = ground{}

func (_ ground) V(_ float64) float64 {
	return 0
}

func (_ ground) Period() float64 {
	return 1
}

func (_ ground) Mean() float64 {
	return 0
}

func (_ ground) Sinusoid() (SineParams, bool) {
	return SineParams{}, false
}

func (_ ground) String() string {
	return "ground"
}
