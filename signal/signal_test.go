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

package signal_test

import (
	"math"
	"sync"
	"testing"

	"github.com/jetsetilly/gopherscope/signal"
	"github.com/jetsetilly/gopherscope/test"
)

func TestGround(t *testing.T) {
	test.ExpectEquality(t, signal.Ground.V(123.4), 0.0)
	test.ExpectEquality(t, signal.Ground.Mean(), 0.0)
	_, ok := signal.Ground.Sinusoid()
	test.ExpectFailure(t, ok)
}

func TestPeriodicity(t *testing.T) {
	omega := 2 * math.Pi * 50
	waves := []signal.Wave{
		signal.NewSine(2, omega, 0.3, 1),
		signal.NewSquare(2, omega, 0.3, 1),
		signal.NewTriangle(2, omega, 0.3, 1),
		signal.NewSawtooth(2, omega, 0.3, 1),
	}

	for _, w := range waves {
		p := w.Period()
		test.ExpectApproximate(t, p, 0.02, 1e-12, w.Shape)
		for i := range 50 {
			tm := float64(i) * 0.00037
			test.ExpectWithin(t, w.V(tm+p), w.V(tm), 1e-9, w.Shape)
			test.ExpectWithin(t, w.V(tm+3*p), w.V(tm), 1e-9, w.Shape)
		}
		test.ExpectEquality(t, w.Mean(), 1.0, w.Shape)
	}
}

func TestShapes(t *testing.T) {
	// at t=0 with zero phase the argument of the wave is zero
	omega := 2 * math.Pi
	test.ExpectWithin(t, signal.NewSine(1, omega, 0, 0).V(0.25), 1.0, 1e-12)
	test.ExpectEquality(t, signal.NewSquare(1, omega, 0, 0).V(0.1), 1.0)
	test.ExpectEquality(t, signal.NewSquare(1, omega, 0, 0).V(0.6), -1.0)
	test.ExpectWithin(t, signal.NewTriangle(1, omega, 0, 0).V(0), -1.0, 1e-12)
	test.ExpectWithin(t, signal.NewTriangle(1, omega, 0, 0).V(0.25), 0.0, 1e-12)
	test.ExpectWithin(t, signal.NewTriangle(1, omega, 0, 0).V(0.5), 1.0, 1e-12)
	test.ExpectWithin(t, signal.NewSawtooth(1, omega, 0, 0).V(0), -1.0, 1e-12)
	test.ExpectWithin(t, signal.NewSawtooth(1, omega, 0, 0).V(0.75), 0.5, 1e-12)

	// only sine waves are sinusoids
	_, ok := signal.NewSine(1, omega, 0, 0).Sinusoid()
	test.ExpectSuccess(t, ok)
	_, ok = signal.NewSquare(1, omega, 0, 0).Sinusoid()
	test.ExpectFailure(t, ok)
}

func TestConstantWave(t *testing.T) {
	w := signal.NewSine(2, 0, math.Pi/2, 1)
	test.ExpectSuccess(t, math.IsInf(w.Period(), 1))
	test.ExpectWithin(t, w.V(10), 3.0, 1e-12)
	test.ExpectWithin(t, w.Mean(), 3.0, 1e-12)
	_, ok := w.Sinusoid()
	test.ExpectFailure(t, ok)
}

func TestTableInterpolation(t *testing.T) {
	const n = 200
	const period = 0.01

	samples := make([]float64, n)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * float64(i) / n)
	}

	cubic, err := signal.NewCubicTable(period, samples)
	test.DemandSuccess(t, err)

	// cubic interpolation of a 200 point sine is very close to the sine
	for i := range 1000 {
		tm := period * float64(i) / 997
		test.ExpectWithin(t, cubic.V(tm), math.Sin(2*math.Pi*tm/period), 2e-4)
	}

	// linear interpolation is less accurate but still good
	linear, err := signal.NewLinearTable(period, samples)
	test.DemandSuccess(t, err)
	for i := range 1000 {
		tm := period * float64(i) / 997
		test.ExpectWithin(t, linear.V(tm), math.Sin(2*math.Pi*tm/period), 2e-3)
	}

	test.ExpectWithin(t, cubic.Mean(), 0.0, 1e-9)
	test.ExpectEquality(t, cubic.Len(), n)

	// periodic in both directions
	test.ExpectWithin(t, cubic.V(-period*0.75), cubic.V(period*0.25), 1e-12)
}

func TestTableSamplesCopied(t *testing.T) {
	samples := []float64{1, 2, 3, 4}
	tbl, err := signal.NewLinearTable(1, samples)
	test.DemandSuccess(t, err)
	samples[0] = 100
	test.ExpectEquality(t, tbl.V(0), 1.0)
}

func TestTableTransform(t *testing.T) {
	tbl, err := signal.NewLinearTable(1, []float64{0, 1, 0, -1})
	test.DemandSuccess(t, err)

	tr, err := tbl.Transform(0.5, 2, 3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tr.Period(), 0.5)
	test.ExpectWithin(t, tr.V(0.125), 5.0, 1e-12)
	test.ExpectWithin(t, tr.Mean(), 3.0, 1e-12)

	// original is unchanged
	test.ExpectWithin(t, tbl.V(0.25), 1.0, 1e-12)

	_, err = tbl.Transform(0, 1, 0)
	test.ExpectFailure(t, err)
}

func TestTableErrors(t *testing.T) {
	_, err := signal.NewLinearTable(1, nil)
	test.ExpectFailure(t, err)
	_, err = signal.NewCubicTable(0, []float64{1})
	test.ExpectFailure(t, err)
	_, err = signal.NewCubicTable(math.Inf(1), []float64{1})
	test.ExpectFailure(t, err)
	_, err = signal.NewCubicTable(math.NaN(), []float64{1})
	test.ExpectFailure(t, err)
}

func TestSumPeriod(t *testing.T) {
	a := signal.NewSine(1, 2*math.Pi*100, 0, 0)
	b := signal.NewSine(1, 2*math.Pi*100, 1, 0)
	test.ExpectApproximate(t, signal.Sum(a, b).Period(), 0.01, 1e-9)

	// beat period
	c := signal.NewSine(1, 2*math.Pi*110, 0, 0)
	test.ExpectApproximate(t, signal.Sum(a, c).Period(), 0.1, 1e-9)

	// constants do not change the period
	test.ExpectApproximate(t, signal.Sum(a, signal.NewSine(0, 0, 0, 5)).Period(), 0.01, 1e-9)
	test.ExpectSuccess(t, math.IsInf(signal.Sum(signal.NewSine(1, 0, 0, 0), signal.NewSine(1, 0, 0, 0)).Period(), 1))
}

func TestSumValue(t *testing.T) {
	a := signal.NewSine(1, 2*math.Pi*100, 0, 1)
	b := signal.NewSquare(2, 2*math.Pi*30, 0, -0.5)
	s := signal.Sum(a, b)
	for i := range 100 {
		tm := float64(i) * 0.00123
		test.ExpectWithin(t, s.V(tm), a.V(tm)+b.V(tm), 1e-12)
	}
	test.ExpectWithin(t, s.Mean(), 0.5, 1e-12)
}

func TestSumSinusoid(t *testing.T) {
	omega := 2 * math.Pi * 100
	a := signal.NewSine(1, omega, 0, 1)
	b := signal.NewSine(1, omega, math.Pi/2, 2)
	s := signal.Sum(a, b)

	p, ok := s.Sinusoid()
	test.DemandSuccess(t, ok)
	test.ExpectApproximate(t, p.Amplitude, math.Sqrt2, 1e-12)
	test.ExpectApproximate(t, p.Phase, math.Pi/4, 1e-12)
	test.ExpectEquality(t, p.Offset, 3.0)

	for i := range 50 {
		tm := float64(i) * 0.00031
		v := p.Amplitude*math.Sin(p.Omega*tm+p.Phase) + p.Offset
		test.ExpectWithin(t, v, s.V(tm), 1e-9)
	}

	// different frequencies do not make a sinusoid
	_, ok = signal.Sum(a, signal.NewSine(1, omega*2, 0, 0)).Sinusoid()
	test.ExpectFailure(t, ok)
}

func TestFunc(t *testing.T) {
	src := signal.NewSine(1, 2*math.Pi*50, 0, 0)

	// full wave rectification has a mean of 2/π
	f := signal.Func(src, math.Abs)
	test.ExpectApproximate(t, f.Mean(), 2/math.Pi, 1e-3)
	test.ExpectEquality(t, f.Period(), src.Period())
	test.ExpectWithin(t, f.V(0.015), 1.0, 1e-9)

	_, ok := f.Sinusoid()
	test.ExpectFailure(t, ok)
}

func TestSample(t *testing.T) {
	v := signal.Sample(signal.NewSawtooth(1, 2*math.Pi, 0, 0), 4)
	test.DemandEquality(t, len(v), 4)
	test.ExpectWithin(t, v[0], -1.0, 1e-12)
	test.ExpectWithin(t, v[2], 0.0, 1e-12)
}

func TestProvider(t *testing.T) {
	p := signal.NewProvider("gen")
	test.ExpectEquality(t, p.String(), "gen")
	test.ExpectEquality(t, p.Signal(), signal.Ground)

	var seen []signal.Periodic
	remove := p.Observe(func(s signal.Periodic) {
		seen = append(seen, s)
	})

	var order []int
	p.Observe(func(_ signal.Periodic) { order = append(order, 1) })
	p.Observe(func(_ signal.Periodic) { order = append(order, 2) })
	test.ExpectEquality(t, p.NumObservers(), 3)

	w := signal.NewSine(1, 1, 0, 0)
	p.SetSignal(w)
	test.ExpectEquality(t, p.Signal(), signal.Periodic(w))
	test.DemandEquality(t, len(seen), 1)
	test.ExpectEquality(t, seen[0], signal.Periodic(w))
	test.DemandEquality(t, len(order), 2)
	test.ExpectEquality(t, order[0], 1)
	test.ExpectEquality(t, order[1], 2)

	remove()
	remove()
	test.ExpectEquality(t, p.NumObservers(), 2)

	// nil is ground
	p.SetSignal(nil)
	test.ExpectEquality(t, p.Signal(), signal.Ground)
	test.ExpectEquality(t, len(seen), 1)
}

func TestProviderConcurrent(t *testing.T) {
	p := signal.NewProvider("concurrent")

	var last signal.Periodic
	p.Observe(func(s signal.Periodic) {
		last = s
	})

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				p.SetSignal(signal.NewSine(float64(i), float64(j), 0, 0))
				_ = p.Signal().V(0)
			}
		}()
	}
	wg.Wait()

	// the last notification is always the current signal
	test.ExpectEquality(t, last, p.Signal())
}

func TestTableShift(t *testing.T) {
	tbl, err := signal.NewLinearTable(1, []float64{0, 1, 0, -1})
	test.DemandSuccess(t, err)

	sh := tbl.Shift(0.25)
	test.ExpectWithin(t, sh.V(0), 1.0, 1e-12)
	test.ExpectWithin(t, sh.V(0.25), 0.0, 1e-12)
	test.ExpectWithin(t, tbl.V(0), 0.0, 1e-12)
}

func TestProviderFollow(t *testing.T) {
	src := signal.NewProvider("src")
	dst := signal.NewProvider("dst")

	w := signal.NewSine(1, 1, 0, 0)
	src.SetSignal(w)

	remove := src.Follow(dst.SetSignal)
	test.ExpectEquality(t, dst.Signal(), signal.Periodic(w))

	v := signal.NewSquare(2, 1, 0, 0)
	src.SetSignal(v)
	test.ExpectEquality(t, dst.Signal(), signal.Periodic(v))

	remove()
	src.SetSignal(nil)
	test.ExpectEquality(t, dst.Signal(), signal.Periodic(v))
	test.ExpectEquality(t, src.NumObservers(), 0)
}
