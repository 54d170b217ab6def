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

import "math"

// FixedPoint returns the fixed point of an affine map f(x) = a·x + b. The map
// is evaluated at zero and one to find a and b.
//
// The second return value is false if the map has no unique fixed point.
func FixedPoint(f Function) (float64, bool) {
	b := f(0)
	a := f(1) - b

	d := 1 - a
	if math.Abs(d) < 1e-12 || math.IsNaN(d) {
		return 0, false
	}
	return b / d, true
}

// Vec2 is a state with two components.
type Vec2 [2]float64

// FixedPoint2 returns the fixed point of an affine map f(x) = A·x + b of two
// variables. The map is evaluated at zero and at the two unit vectors to find
// A and b. The fixed point is the solution of (I−A)·x = b.
//
// The second return value is false if I−A is singular.
func FixedPoint2(f func(Vec2) Vec2) (Vec2, bool) {
	b := f(Vec2{})
	c0 := f(Vec2{1, 0})
	c1 := f(Vec2{0, 1})

	// I−A, with the columns of A recovered from the unit vectors
	m00 := 1 - (c0[0] - b[0])
	m10 := -(c0[1] - b[1])
	m01 := -(c1[0] - b[0])
	m11 := 1 - (c1[1] - b[1])

	det := m00*m11 - m01*m10
	if math.Abs(det) < 1e-12 || math.IsNaN(det) {
		return Vec2{}, false
	}

	return Vec2{
		(b[0]*m11 - m01*b[1]) / det,
		(m00*b[1] - m10*b[0]) / det,
	}, true
}
