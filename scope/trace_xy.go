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
)

const (
	// the largest step used to integrate the XY trace
	maxXYStep = 1e-4

	// the number of steps per period of the slower signal
	xyStepsPerPeriod = 1000

	// the maximum number of steps in one tick
	maxXYSteps = 10000
)

// xy plots channel one against channel two. There is no trigger.
type xy struct {
	started bool
	last    float64
}

func (m *xy) Kind() Kind {
	return KindXY
}

func (m *xy) Update(scr *screen.Screen, in Inputs, now float64) {
	scr.Darken()

	if !m.started || now <= m.last {
		m.started = true
		m.last = now
		return
	}

	width := scr.Width()
	height := scr.Height()

	fx := in.frontend1()
	fy := in.frontend2()
	xpos := in.Settings.Horizontal.Pos
	ypos := in.Settings.Ch2.Pos

	dt := min(max(fx.Period(), fy.Period())/xyStepsPerPeriod, maxXYStep)
	if (now-m.last)/dt > maxXYSteps {
		dt = (now - m.last) / maxXYSteps
	}
	n := int(math.Ceil((now - m.last) / dt))

	x0 := XToScreen(fx.V(m.last), xpos, width)
	y0 := YToScreen(fy.V(m.last), ypos, height)
	for i := 1; i <= n; i++ {
		t := min(m.last+float64(i)*dt, now)
		x1 := XToScreen(fx.V(t), xpos, width)
		y1 := YToScreen(fy.V(t), ypos, height)
		scr.DrawTrace(x0, y0, x1, y1)
		x0 = x1
		y0 = y1
	}

	m.last = now
}
