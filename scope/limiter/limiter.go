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

package limiter

import (
	"sync/atomic"
	"time"
)

// DefaultRate is the render rate of the scope in ticks per second.
const DefaultRate = 50

// Limiter paces the render loop and measures the rate at which ticks are
// actually completed.
type Limiter struct {
	// the ideal number of ticks per second. the pulse is set to this rate
	// when SetLimit() is called
	Ideal atomic.Value // float32

	// pulse that performs the limiting
	pulse *time.Ticker

	// pulse that performs the measurement
	measuringPulse *time.Ticker

	// the measured rate is the number of ticks divided by the amount of
	// elapsed time since the previous measurement
	measureTime time.Time
	measureCt   int

	// the measured number of ticks per second
	Measured atomic.Value // float32
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The measurement interval is the time between updates to the Measured
// field.
func NewLimiter(rate float32, measurement time.Duration) *Limiter {
	lmtr := &Limiter{}
	lmtr.Measured.Store(float32(0.0))
	lmtr.pulse = time.NewTicker(time.Second)
	lmtr.measuringPulse = time.NewTicker(measurement)
	lmtr.SetLimit(rate)
	return lmtr
}

// SetLimit changes the number of ticks per second. Values of zero or less
// are replaced with the default rate.
func (lmtr *Limiter) SetLimit(rate float32) {
	if rate <= 0.0 {
		rate = DefaultRate
	}
	lmtr.Ideal.Store(rate)
	lmtr.pulse.Reset(time.Duration(float32(time.Second) / rate))

	// restart measurement
	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// Pulse returns the channel that should be waited on before every tick.
func (lmtr *Limiter) Pulse() <-chan time.Time {
	return lmtr.pulse.C
}

// CheckTick should be called once every tick, after the tick has completed.
func (lmtr *Limiter) CheckTick() {
	lmtr.measureCt++
}

// Wait blocks until the next pulse and then counts the tick.
func (lmtr *Limiter) Wait() {
	<-lmtr.pulse.C
	lmtr.CheckTick()
}

// MeasureActual updates the Measured field on every pulse of the measuring
// ticker. It does nothing between pulses.
func (lmtr *Limiter) MeasureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		m := float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds())
		lmtr.Measured.Store(m)

		// reset time and count ready for next measurement
		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}

// Stop the tickers. The limiter should not be used after Stop().
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
	lmtr.measuringPulse.Stop()
}
