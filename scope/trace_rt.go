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

	"github.com/jetsetilly/gopherscope/screen"
	"github.com/jetsetilly/gopherscope/signal"
)

// the minimum number of segments drawn by one real-time update
const minSubSteps = 20

// realTime draws the trace as the beam would move across the screen. It is
// used when the sweep is slower than the render loop.
//
// The model is either searching for a trigger, in which case only the time
// since the previous tick is scanned, or sweeping, in which case the section
// of the trace since the previous tick is drawn.
type realTime struct {
	started  bool
	sweeping bool

	// the time up to which the signal has been scanned or drawn
	last float64

	// the time of the start of the current sweep
	start float64
}

func (m *realTime) Kind() Kind {
	return KindRealTime
}

func (m *realTime) Update(scr *screen.Screen, in Inputs, now float64) {
	scr.Darken()

	tr := in.Settings.Trigger
	if unimplementedTrigger(tr) {
		return
	}

	if !m.started || now < m.last {
		m.started = true
		m.sweeping = false
		m.last = now
		return
	}

	width := scr.Width()
	tpp := in.Settings.Horizontal.TimePerPixel(width)

	if !m.sweeping {
		var trig float64
		var found bool
		if tr.Source == SourceLine {
			trig = LineTrigger(m.last)
			found = trig < now
		} else {
			s, level := in.triggerSignal()
			trig, found = WasTrig(s, tpp, m.last, now, level, tr.Slope)
		}

		if !found {
			if tr.Mode != TriggerAuto {
				m.last = now
				return
			}
			trig = now
		}

		m.sweeping = true
		m.start = trig
		m.last = trig
	}

	// nothing beyond the right edge of the screen is drawn
	end := min(now, m.start+float64(width+1)*tpp)

	for _, t := range in.traces() {
		sweep(scr, t.sig, t.pos, m.start, m.last, end, tpp)
	}
	m.last = end

	if (now-m.start)/tpp > float64(width) {
		m.sweeping = false
		m.last = now
	}
}

// sweep draws the signal between t1 and t2 for a sweep that began at t0
func sweep(scr *screen.Screen, s signal.Periodic, pos float64, t0, t1, t2 float64, tpp float64) {
	if t2 <= t1 {
		return
	}

	height := scr.Height()

	dt := tpp
	if (t2-t1)/dt < minSubSteps {
		dt = (t2 - t1) / minSubSteps
	}
	n := int(math.Ceil((t2 - t1) / dt))

	x0 := int((t1 - t0) / tpp)
	y0 := YToScreen(s.V(t1), pos, height)

	for i := 1; i <= n; i++ {
		ta := t1 + float64(i-1)*dt
		tb := min(t1+float64(i)*dt, t2)

		ym := YToScreen(s.V((ta+tb)/2), pos, height)
		x1 := int((tb - t0) / tpp)
		y1 := YToScreen(s.V(tb), pos, height)

		// a midpoint that agrees with neither end means the straight line
		// is a poor estimate of the signal
		if ym != y0 && ym != y1 {
			scr.DrawBrightTrace(x0, y0, x1, y1)
		} else {
			scr.DrawTrace(x0, y0, x1, y1)
		}

		x0 = x1
		y0 = y1
	}
}
