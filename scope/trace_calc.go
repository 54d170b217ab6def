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
	"github.com/jetsetilly/gopherscope/screen"
)

// calc redraws the entire trace every tick. It is used when the sweep is much
// faster than the render loop, in which case the trace appears stable.
type calc struct{}

func (m *calc) Kind() Kind {
	return KindCalc
}

func (m *calc) Update(scr *screen.Screen, in Inputs, now float64) {
	scr.Clear()

	tr := in.Settings.Trigger
	if unimplementedTrigger(tr) {
		return
	}

	width := scr.Width()
	height := scr.Height()
	tpp := in.Settings.Horizontal.TimePerPixel(width)
	screenTime := tpp * float64(width)

	var trig float64
	var found bool
	if tr.Source == SourceLine {
		trig, found = LineTrigger(now), true
	} else {
		s, level := in.triggerSignal()
		trig, found = WasTrig(s, tpp, now, now+window(s.Period(), screenTime), level, tr.Slope)
	}

	if !found && tr.Mode != TriggerAuto {
		return
	}

	start := trig - in.Settings.Horizontal.Pos*screenTime

	for _, t := range in.traces() {
		// a signal with a period shorter than two pixels would be drawn as
		// a beat pattern rather than as a filled band
		if t.sig.Period() < 2*tpp {
			continue
		}

		y0 := YToScreen(t.sig.V(start), t.pos, height)
		for x := range width {
			y1 := YToScreen(t.sig.V(start+float64(x+1)*tpp), t.pos, height)
			scr.DrawTrace(x-1, y0, x, y1)
			y0 = y1
		}
	}
}
