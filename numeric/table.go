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

package numeric

import (
	"fmt"
	"math"
)

// Table is a function sampled at evenly spaced points over a range. Values
// outside of the range are clamped to the range.
type Table interface {
	Value(x float64) float64
	Range() (float64, float64)
}

// sampled is the common part of the table types
type sampled struct {
	xmin  float64
	xmax  float64
	dx    float64
	value []float64
}

func newSampled(f Function, xmin float64, xmax float64, points int) (sampled, error) {
	if points < 2 {
		return sampled{}, fmt.Errorf("numeric: table needs at least two points (%d)", points)
	}
	if !(xmax > xmin) {
		return sampled{}, fmt.Errorf("numeric: empty table range [%g, %g]", xmin, xmax)
	}

	s := sampled{
		xmin:  xmin,
		xmax:  xmax,
		dx:    (xmax - xmin) / float64(points-1),
		value: make([]float64, points),
	}
	for i := range s.value {
		s.value[i] = f(s.x(i))
	}
	return s, nil
}

func (s *sampled) x(i int) float64 {
	return s.xmin + float64(i)*s.dx
}

// locate returns the index of the interval containing x and the fractional
// position within that interval. x is clamped to the table range
func (s *sampled) locate(x float64) (int, float64) {
	if x <= s.xmin {
		return 0, 0
	}
	last := len(s.value) - 2
	if x >= s.xmax {
		return last, 1
	}
	p := (x - s.xmin) / s.dx
	i := int(p)
	if i > last {
		i = last
	}
	return i, p - float64(i)
}

// Range implements the Table interface.
func (s *sampled) Range() (float64, float64) {
	return s.xmin, s.xmax
}

// LinearTable interpolates linearly between sampled points.
type LinearTable struct {
	sampled
}

// NewLinearTable samples f at the given number of points over [xmin,xmax].
func NewLinearTable(f Function, xmin float64, xmax float64, points int) (*LinearTable, error) {
	s, err := newSampled(f, xmin, xmax, points)
	if err != nil {
		return nil, err
	}
	return &LinearTable{sampled: s}, nil
}

// Value implements the Table interface.
func (t *LinearTable) Value(x float64) float64 {
	i, f := t.locate(x)
	return t.value[i] + (t.value[i+1]-t.value[i])*f
}

// CubicTable interpolates between sampled points with a cubic Hermite
// polynomial, using the sampled derivative of the function at each point.
type CubicTable struct {
	sampled
	deriv []float64
}

// NewCubicTable samples f and its derivative df at the given number of points
// over [xmin,xmax].
func NewCubicTable(f Function, df Function, xmin float64, xmax float64, points int) (*CubicTable, error) {
	s, err := newSampled(f, xmin, xmax, points)
	if err != nil {
		return nil, err
	}
	t := &CubicTable{sampled: s, deriv: make([]float64, points)}
	for i := range t.deriv {
		// derivative per interval rather than per unit of x
		t.deriv[i] = df(t.x(i)) * t.dx
	}
	return t, nil
}

// Value implements the Table interface.
func (t *CubicTable) Value(x float64) float64 {
	i, f := t.locate(x)
	return hermite(t.value[i], t.value[i+1], t.deriv[i], t.deriv[i+1], f)
}

// hermite evaluates the cubic with values v0 and v1 and derivatives g0 and g1
// at the start and end of the unit interval
func hermite(v0, v1, g0, g1, f float64) float64 {
	a := g0 + g1 + 2*(v0-v1)
	b := -2*g0 - g1 - 3*(v0-v1)
	return ((a*f+b)*f+g0)*f + v0
}

// NewInverseTable creates a LinearTable for the inverse of f over the range
// [ymin,ymax] of f. Each point is solved with Newton's method starting from
// the solution of the previous point, the first point starting from x0.
//
// The number of points that reached the iteration cap is returned. The table
// is still usable in that case but is less accurate.
func NewInverseTable(f Function, df Function, ymin float64, ymax float64, points int, x0 float64, eps float64) (*LinearTable, int, error) {
	var capped int
	x := x0
	inv := func(y float64) float64 {
		var ok bool
		x, ok = Newton(func(x float64) float64 {
			return f(x) - y
		}, df, x, eps)
		if !ok {
			capped++
		}
		return x
	}

	t, err := NewLinearTable(inv, ymin, ymax, points)
	if err != nil {
		return nil, 0, err
	}
	return t, capped, nil
}

// clampIndex is used by periodic tables to wrap an index into range
func clampIndex(i int, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Wrap returns the fractional part of x/period as a value in [0,1). It is
// the phase of x within a periodic function.
func Wrap(x float64, period float64) float64 {
	p := x / period
	p -= math.Floor(p)
	if p >= 1 {
		p = 0
	}
	return p
}

// PeriodicHermite interpolates a periodic sequence of samples v with a cubic
// Hermite polynomial. The derivative at each sample is estimated from its
// neighbours. The phase argument is in the range [0,1).
func PeriodicHermite(v []float64, phase float64) float64 {
	n := len(v)
	p := phase * float64(n)
	i := int(p)
	f := p - float64(i)
	i0 := clampIndex(i, n)
	i1 := clampIndex(i+1, n)
	g0 := (v[clampIndex(i0+1, n)] - v[clampIndex(i0-1, n)]) / 2
	g1 := (v[clampIndex(i1+1, n)] - v[clampIndex(i1-1, n)]) / 2
	return hermite(v[i0], v[i1], g0, g1, f)
}

// PeriodicLinear interpolates a periodic sequence of samples v linearly. The
// phase argument is in the range [0,1).
func PeriodicLinear(v []float64, phase float64) float64 {
	n := len(v)
	p := phase * float64(n)
	i := int(p)
	f := p - float64(i)
	i0 := clampIndex(i, n)
	i1 := clampIndex(i+1, n)
	return v[i0] + (v[i1]-v[i0])*f
}
