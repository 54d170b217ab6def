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

package scope_test

import (
	"math"
	"testing"

	"github.com/jetsetilly/gopherscope/scope"
	"github.com/jetsetilly/gopherscope/screen"
	"github.com/jetsetilly/gopherscope/signal"
	"github.com/jetsetilly/gopherscope/test"
)

// settings with both channels DC coupled at 1V/div and centred
func dcSettings(timebase float64) scope.Settings {
	ch := scope.ChannelSettings{VoltsPerDiv: 1, Coupling: scope.CouplingDC, Pos: 0.5}
	return scope.Settings{
		Ch1:        ch,
		Ch2:        ch,
		Horizontal: scope.HorizontalSettings{Timebase: timebase},
		Trigger: scope.TriggerSettings{
			Mode:   scope.TriggerAuto,
			Source: scope.SourceCh1,
			Slope:  scope.SlopeRising,
			Level:  0.5,
		},
		Mode: scope.ModeCh1,
	}
}

// returns the lowest and highest lit row and the highest lit column
func extent(scr *screen.Screen) (ymin int, ymax int, xmax int) {
	ymin = scr.Height()
	ymax = -1
	xmax = -1
	for x := range scr.Width() {
		for y := range scr.Height() {
			if scr.At(x, y) != screen.Idle {
				ymin = min(ymin, y)
				ymax = max(ymax, y)
				xmax = max(xmax, x)
			}
		}
	}
	return ymin, ymax, xmax
}

func columnLit(scr *screen.Screen, x int) bool {
	for y := range scr.Height() {
		if scr.At(x, y) != screen.Idle {
			return true
		}
	}
	return false
}

func TestCalcSine(t *testing.T) {
	scr := screen.NewScreen(400, 320)
	in := scope.Inputs{
		Settings: dcSettings(0.1),
		Ch1:      signal.NewSine(1, 2*math.Pi, 0, 0),
	}

	m := scope.NewTraceModel(scope.KindCalc)
	test.ExpectEquality(t, m.Kind(), scope.KindCalc)
	m.Update(scr, in, 0)

	// the sine starts at zero so the rising trigger is found one pixel later
	tpp := in.Settings.Horizontal.TimePerPixel(400)
	start := tpp

	for x := range 400 {
		y := scope.YToScreen(in.Ch1.V(start+float64(x+1)*tpp), 0.5, 320)
		if !test.ExpectInequality(t, scr.At(x, y), screen.Idle, x, y) {
			break
		}
	}

	// one volt either side of the centre line
	ymin, ymax, xmax := extent(scr)
	test.ExpectWithin(t, ymin, 120, 1)
	test.ExpectWithin(t, ymax, 200, 1)
	test.ExpectEquality(t, xmax, 399)
}

func TestCalcNormal(t *testing.T) {
	scr := screen.NewScreen(400, 320)
	in := scope.Inputs{Settings: dcSettings(0.001)}
	in.Settings.Trigger.Mode = scope.TriggerNorm

	// no trigger is found for an unconnected input
	m := scope.NewTraceModel(scope.KindCalc)
	m.Update(scr, in, 0)
	test.ExpectEquality(t, scr.Lit(), 0)

	// but the AUTO mode draws a flat line
	in.Settings.Trigger.Mode = scope.TriggerAuto
	m.Update(scr, in, 0)
	test.ExpectInequality(t, scr.At(200, 160), screen.Idle)
	ymin, ymax, _ := extent(scr)
	test.ExpectEquality(t, ymin, 160)
	test.ExpectEquality(t, ymax, 160)
}

func TestCalcClears(t *testing.T) {
	scr := screen.NewScreen(400, 320)
	in := scope.Inputs{Settings: dcSettings(0.001)}
	m := scope.NewTraceModel(scope.KindCalc)
	m.Update(scr, in, 0)
	test.DemandSuccess(t, scr.Lit() > 0)

	in.Settings.Trigger.Mode = scope.TriggerNorm
	m.Update(scr, in, 0)
	test.ExpectEquality(t, scr.Lit(), 0)
}

func TestCalcAntiBeat(t *testing.T) {
	scr := screen.NewScreen(400, 320)
	in := scope.Inputs{
		Settings: dcSettings(0.001),
		Ch1:      signal.NewSine(1, 2*math.Pi*100000, 0, 0),
	}
	m := scope.NewTraceModel(scope.KindCalc)
	m.Update(scr, in, 0)
	test.ExpectEquality(t, scr.Lit(), 0)
}

func TestCalcVerticalModes(t *testing.T) {
	scr := screen.NewScreen(400, 320)
	in := scope.Inputs{
		Settings: dcSettings(0.001),
		Ch1:      signal.NewSine(0, 0, 0, 1),
		Ch2:      signal.NewSine(0, 0, 0, 0.5),
	}
	m := scope.NewTraceModel(scope.KindCalc)

	in.Settings.Mode = scope.ModeCh2
	m.Update(scr, in, 0)
	test.ExpectInequality(t, scr.At(200, 180), screen.Idle)
	test.ExpectEquality(t, scr.At(200, 200), screen.Idle)

	in.Settings.Mode = scope.ModeDual
	m.Update(scr, in, 0)
	test.ExpectInequality(t, scr.At(200, 180), screen.Idle)
	test.ExpectInequality(t, scr.At(200, 200), screen.Idle)

	// the sum is drawn with the position of channel one
	in.Settings.Mode = scope.ModeAdd
	in.Settings.Ch2.Pos = 1.0
	m.Update(scr, in, 0)
	test.ExpectInequality(t, scr.At(200, 220), screen.Idle)
	test.ExpectEquality(t, scr.At(200, 180), screen.Idle)
	test.ExpectEquality(t, scr.At(200, 200), screen.Idle)
}

func TestCalcTriggerSources(t *testing.T) {
	scr := screen.NewScreen(400, 320)
	in := scope.Inputs{Settings: dcSettings(0.001)}
	in.Settings.Trigger.Mode = scope.TriggerNorm
	m := scope.NewTraceModel(scope.KindCalc)

	in.Settings.Trigger.Source = scope.SourceLine
	m.Update(scr, in, 0)
	test.ExpectInequality(t, scr.At(200, 160), screen.Idle)

	// the external trigger input is unconnected
	in.Settings.Trigger.Source = scope.SourceExt
	m.Update(scr, in, 0)
	test.ExpectEquality(t, scr.Lit(), 0)

	// the rising edge is half way through the first period
	in.TriggerIn = signal.NewSquare(2.5, 2*math.Pi*50, math.Pi, 2.5)
	m.Update(scr, in, 0)
	test.ExpectInequality(t, scr.At(200, 160), screen.Idle)
}

func TestTVTriggerUnimplemented(t *testing.T) {
	scr := screen.NewScreen(400, 320)
	in := scope.Inputs{Settings: dcSettings(0.001)}
	in.Settings.Trigger.Mode = scope.TriggerTVH

	m := scope.NewTraceModel(scope.KindCalc)
	test.ExpectPanic(t, func() {
		m.Update(scr, in, 0)
	})

	in.Settings.Horizontal.Timebase = 0.1
	m = scope.NewTraceModel(scope.KindRealTime)
	test.ExpectPanic(t, func() {
		m.Update(scr, in, 0)
	})
}

func TestRealTimeSweep(t *testing.T) {
	scr := screen.NewScreen(400, 320)
	in := scope.Inputs{
		Settings: dcSettings(0.1),
		Ch1:      signal.NewSine(1, 2*math.Pi, 0, 0),
	}
	in.Settings.Trigger.Mode = scope.TriggerNorm

	m := scope.NewTraceModel(scope.KindRealTime)
	test.ExpectEquality(t, m.Kind(), scope.KindRealTime)

	// the first update starts the clock
	m.Update(scr, in, 0)
	test.ExpectEquality(t, scr.Lit(), 0)

	// half a screen has been swept by 0.5s
	m.Update(scr, in, 0.5)
	ymin, ymax, xmax := extent(scr)
	test.ExpectSuccess(t, xmax >= 195 && xmax <= 200, xmax)
	test.ExpectWithin(t, ymax, 200, 1)
	test.ExpectWithin(t, ymin, 160, 1)
	test.ExpectSuccess(t, columnLit(scr, 50))

	// the sweep finishes at the right edge of the screen
	m.Update(scr, in, 1.2)
	test.ExpectSuccess(t, columnLit(scr, 399))
	test.ExpectSuccess(t, columnLit(scr, 50))
	ymin, _, _ = extent(scr)
	test.ExpectWithin(t, ymin, 120, 1)

	// the next trigger is two seconds into the signal. until then the screen
	// fades
	m.Update(scr, in, 1.9)
	m.Update(scr, in, 1.95)
	m.Update(scr, in, 1.99)
	m.Update(scr, in, 1.995)
	m.Update(scr, in, 1.999)
	m.Update(scr, in, 1.9999)
	m.Update(scr, in, 1.99999)
	test.ExpectEquality(t, scr.Lit(), 0)
}

func TestRealTimeAuto(t *testing.T) {
	scr := screen.NewScreen(400, 320)
	in := scope.Inputs{Settings: dcSettings(0.1)}

	m := scope.NewTraceModel(scope.KindRealTime)
	m.Update(scr, in, 0)
	m.Update(scr, in, 0.1)

	// there is no trigger so the sweep starts at the time of the update
	m.Update(scr, in, 0.35)
	_, _, xmax := extent(scr)
	test.ExpectSuccess(t, xmax >= 98 && xmax <= 100, xmax)
	test.ExpectInequality(t, scr.At(50, 160), screen.Idle)
}

func TestXY(t *testing.T) {
	scr := screen.NewScreen(400, 320)
	in := scope.Inputs{
		Settings: dcSettings(0),
		Ch1:      signal.NewSine(1, 2*math.Pi*100, 0, 0),
		Ch2:      signal.NewSine(1, 2*math.Pi*100, math.Pi/2, 0),
	}
	in.Settings.Horizontal.Pos = 0.5

	m := scope.NewTraceModel(scope.KindXY)
	test.ExpectEquality(t, m.Kind(), scope.KindXY)
	m.Update(scr, in, 0)
	m.Update(scr, in, 0.02)

	// a circle with a radius of one division
	test.ExpectSuccess(t, scr.Lit() > 0)
	ymin, ymax, xmax := extent(scr)
	test.ExpectWithin(t, ymin, 120, 1)
	test.ExpectWithin(t, ymax, 200, 1)
	test.ExpectWithin(t, xmax, 240, 1)
	test.ExpectEquality(t, scr.At(200, 160), screen.Idle)
}

func TestXYLongTick(t *testing.T) {
	scr := screen.NewScreen(400, 320)
	in := scope.Inputs{Settings: dcSettings(0)}
	in.Settings.Horizontal.Pos = 0.5

	// a very long time between updates is limited in the number of steps
	m := scope.NewTraceModel(scope.KindXY)
	m.Update(scr, in, 0)
	m.Update(scr, in, 1e6)
	test.ExpectInequality(t, scr.At(200, 160), screen.Idle)
	test.ExpectEquality(t, scr.Lit(), 1)
}
