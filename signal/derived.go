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
)

// periods closer than this (relative) are considered to be the same
const periodTolerance = 1e-9

// sum is the pointwise addition of two signals
type sum struct {
	a, b   Periodic
	period float64
}

// Sum returns the signal a+b.
//
// The period of the sum is the average of the two periods if they are the
// same. Otherwise the period is the beat period p1*p2/|p1-p2|. A constant
// signal (infinite period) does not change the period of the other signal.
//
// If both signals are sinusoids with the same angular frequency then the
// result is also a sinusoid.
func Sum(a, b Periodic) Periodic {
	pa := a.Period()
	pb := b.Period()

	s := &sum{a: a, b: b}

	switch {
	case math.IsInf(pa, 0) && math.IsInf(pb, 0):
		s.period = math.Inf(1)
	case math.IsInf(pa, 0):
		s.period = pb
	case math.IsInf(pb, 0):
		s.period = pa
	case math.Abs(pa-pb) <= periodTolerance*math.Max(pa, pb):
		s.period = (pa + pb) / 2
	default:
		s.period = pa * pb / math.Abs(pa-pb)
	}

	return s
}

func (s *sum) String() string {
	return fmt.Sprintf("(%v + %v)", s.a, s.b)
}

func (s *sum) V(t float64) float64 {
	return s.a.V(t) + s.b.V(t)
}

func (s *sum) Period() float64 {
	return s.period
}

func (s *sum) Mean() float64 {
	return s.a.Mean() + s.b.Mean()
}

func (s *sum) Sinusoid() (SineParams, bool) {
	sa, oka := s.a.Sinusoid()
	sb, okb := s.b.Sinusoid()
	if !oka || !okb || sa.Omega != sb.Omega {
		return SineParams{}, false
	}

	// phasor addition
	x := sa.Amplitude*math.Cos(sa.Phase) + sb.Amplitude*math.Cos(sb.Phase)
	y := sa.Amplitude*math.Sin(sa.Phase) + sb.Amplitude*math.Sin(sb.Phase)

	return SineParams{
		Amplitude: math.Hypot(x, y),
		Omega:     sa.Omega,
		Phase:     math.Atan2(y, x),
		Offset:    sa.Offset + sb.Offset,
	}, true
}

// the number of points used to find the mean of a Func signal
const meanSamples = 1000

type function struct {
	src  Periodic
	f    func(float64) float64
	mean float64
}

// Func returns the signal f(src(t)). The function should be pure. It will be
// called from whichever goroutine evaluates the signal.
//
// The mean of the new signal is found by sampling one period of the source.
func Func(src Periodic, f func(float64) float64) Periodic {
	s := &function{src: src, f: f}

	p := src.Period()
	if math.IsInf(p, 0) {
		s.mean = f(src.V(0))
	} else {
		var m float64
		for i := range meanSamples {
			m += f(src.V(p * float64(i) / meanSamples))
		}
		s.mean = m / meanSamples
	}

	return s
}

func (s *function) String() string {
	return fmt.Sprintf("f(%v)", s.src)
}

func (s *function) V(t float64) float64 {
	return s.f(s.src.V(t))
}

func (s *function) Period() float64 {
	return s.src.Period()
}

func (s *function) Mean() float64 {
	return s.mean
}

func (s *function) Sinusoid() (SineParams, bool) {
	return SineParams{}, false
}
