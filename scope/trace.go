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
	"fmt"
	"math"

	"github.com/jetsetilly/gopherscope/assert"
	"github.com/jetsetilly/gopherscope/screen"
	"github.com/jetsetilly/gopherscope/signal"
)

// Inputs is everything a trace model needs for one tick. The signals are
// those connected to the channel and trigger inputs, before the frontend has
// been applied.
type Inputs struct {
	Settings  Settings
	Ch1       signal.Periodic
	Ch2       signal.Periodic
	TriggerIn signal.Periodic
}

// TraceModel implementations draw onto the screen buffer once per tick.
// Models may keep state between ticks and so an instance should only be used
// with one screen.
type TraceModel interface {
	Kind() Kind

	// Update the screen for the current time. Time is in seconds and must
	// not run backwards between calls, otherwise the model restarts.
	Update(scr *screen.Screen, in Inputs, now float64)
}

// NewTraceModel creates a new trace model of the specified kind.
func NewTraceModel(k Kind) TraceModel {
	switch k {
	case KindRealTime:
		return &realTime{}
	case KindXY:
		return &xy{}
	}
	return &calc{}
}

// a signal to be drawn with the position trim that applies to it
type trace struct {
	sig signal.Periodic
	pos float64
}

func (in Inputs) frontend1() Frontend {
	return NewFrontend(nonNil(in.Ch1), in.Settings.Ch1)
}

func (in Inputs) frontend2() Frontend {
	return NewFrontend(nonNil(in.Ch2), in.Settings.Ch2)
}

// traces returns the signals to draw for the vertical mode. In the ADD mode
// the sum is drawn with the position of the first channel
func (in Inputs) traces() []trace {
	switch in.Settings.Mode {
	case ModeCh2:
		return []trace{{sig: in.frontend2(), pos: in.Settings.Ch2.Pos}}
	case ModeDual:
		return []trace{
			{sig: in.frontend1(), pos: in.Settings.Ch1.Pos},
			{sig: in.frontend2(), pos: in.Settings.Ch2.Pos},
		}
	case ModeAdd:
		return []trace{{sig: signal.Sum(in.frontend1(), in.frontend2()), pos: in.Settings.Ch1.Pos}}
	}
	return []trace{{sig: in.frontend1(), pos: in.Settings.Ch1.Pos}}
}

// triggerSignal returns the signal and level to scan for the CH1, CH2 and EXT
// sources. The level of the EXT source is the mean of the trigger input
func (in Inputs) triggerSignal() (signal.Periodic, float64) {
	switch in.Settings.Trigger.Source {
	case SourceCh2:
		return in.frontend2(), in.Settings.Trigger.LevelDivs()
	case SourceExt:
		s := nonNil(in.TriggerIn)
		return s, s.Mean()
	}
	return in.frontend1(), in.Settings.Trigger.LevelDivs()
}

// unimplementedTrigger returns true if the trigger mode cannot be honoured.
// panics when running under test
func unimplementedTrigger(tr TriggerSettings) bool {
	switch tr.Mode {
	case TriggerTVV, TriggerTVH:
		assert.Unimplemented(fmt.Sprintf("%s trigger", tr.Mode))
		return true
	}
	return false
}

func nonNil(s signal.Periodic) signal.Periodic {
	if s == nil {
		return signal.Ground
	}
	return s
}

// window returns the length of time to scan for a trigger given the period of
// the trigger signal
func window(period float64, screenTime float64) float64 {
	if math.IsInf(period, 1) {
		return screenTime
	}
	return min(period, 2*screenTime)
}
