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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherscope/scope"
	"github.com/jetsetilly/gopherscope/scope/limiter"
)

// the tick rate is only measured once per second so the first measurement
// is not available until the leadtime has passed
const leadtime = 1100 * time.Millisecond

// Result of a call to Check().
type Result struct {
	Duration time.Duration

	// the measured rate at the end of the run and the rate as a percentage
	// of the ideal rate
	TickRate float32
	Accuracy float32
}

func (r Result) String() string {
	return fmt.Sprintf("%.1f ticks per second (%.1f%%) over %s", r.TickRate, r.Accuracy, r.Duration)
}

// Check powers on the scope and lets it run for the specified duration. A
// leadtime is added to the duration if it is too short for the tick rate to
// be measured. The power is switched off when the check ends.
//
// The stop channel can be used to end the check early. It can be nil.
func Check(output io.Writer, sc *scope.Scope, duration time.Duration, stop <-chan struct{}) (Result, error) {
	duration = max(duration, leadtime)

	if err := sc.Power.Set(true); err != nil {
		return Result{}, fmt.Errorf("performance: %w", err)
	}

	start := time.Now()
	select {
	case <-time.After(duration):
	case <-stop:
	}

	res := Result{
		Duration: time.Since(start).Round(time.Millisecond),
		TickRate: sc.TickRate(),
	}
	res.Accuracy = 100 * res.TickRate / limiter.DefaultRate
	desc := sc.String()

	if err := sc.Power.Set(false); err != nil {
		return res, fmt.Errorf("performance: %w", err)
	}

	if output != nil {
		fmt.Fprintf(output, "%s: %s\n", desc, res)
	}

	return res, nil
}
