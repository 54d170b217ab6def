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

package scope

import (
	"math"

	"github.com/jetsetilly/gopherscope/signal"
)

// MaxTriggerSteps is the maximum number of samples taken by WasTrig(). Wider
// windows are scanned with a proportionally larger step.
const MaxTriggerSteps = 100000

// LinePeriod is the period of the mains supply used by the LINE trigger
// source.
const LinePeriod = 0.02

// WasTrig scans the signal between t0 and t1 in steps of timePerPixel and
// returns the time of the first crossing of the level that matches the slope.
// If no crossing is found the function returns t0 and false.
func WasTrig(s signal.Periodic, timePerPixel float64, t0 float64, t1 float64, level float64, slope Slope) (float64, bool) {
	if t1 <= t0 || timePerPixel <= 0 {
		return t0, false
	}

	step := timePerPixel
	if (t1-t0)/step > MaxTriggerSteps {
		step = (t1 - t0) / MaxTriggerSteps
	}

	above := s.V(t0) > level
	for i := 1; ; i++ {
		t := t0 + float64(i)*step
		if t > t1 {
			break
		}
		a := s.V(t) > level
		if a != above {
			if a == (slope == SlopeRising) {
				return t, true
			}
			above = a
		}
	}

	return t0, false
}

// LineTrigger returns the first mains zero crossing after t.
func LineTrigger(t float64) float64 {
	return (math.Floor(t/LinePeriod) + 1) * LinePeriod
}
