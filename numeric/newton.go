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

// Function is a function of one variable.
type Function func(x float64) float64

// MaxIterations is the maximum number of iterations Newton() will make before
// accepting the current estimate.
const MaxIterations = 40

// Newton finds a root of the function f, with derivative df, starting at the
// estimate x. Iteration stops when the size of the correction is less than
// eps.
//
// The function always returns an estimate. The second return value is false if
// the iteration cap was reached or if the derivative vanished.
func Newton(f Function, df Function, x float64, eps float64) (float64, bool) {
	for range MaxIterations {
		d := df(x)
		if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return x, false
		}

		delta := f(x) / d
		x -= delta
		if math.Abs(delta) < eps {
			return x, true
		}
	}
	return x, false
}
