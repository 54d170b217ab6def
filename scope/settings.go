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

// The screen is divided into a fixed number of divisions in both directions.
const (
	DivisionsX = 10
	DivisionsY = 8
)

// RealTimeThreshold is the time/div above which the sweep is slower than the
// render loop and the trace is drawn in real time.
const RealTimeThreshold = 0.009

// ChannelSettings is the state of a Channel panel at the start of a tick.
type ChannelSettings struct {
	VoltsPerDiv float64
	Coupling    Coupling
	Invert      bool
	Var         float64
	Pos         float64
	Mag5        bool
}

// Gain returns the multiplier that converts volts into screen divisions.
func (ch ChannelSettings) Gain() float64 {
	g := (1 + 2*ch.Var) / ch.VoltsPerDiv
	if ch.Mag5 {
		g *= 5
	}
	if ch.Invert {
		g = -g
	}
	return g
}

// HorizontalSettings is the state of the Horizontal panel at the start of a
// tick.
type HorizontalSettings struct {
	// the value of the timebase selector, before VAR and MAG10 are applied.
	// zero indicates the XY mode
	Timebase float64

	Pos   float64
	Var   float64
	Mag10 bool
}

// TimePerDiv returns the effective time/div.
func (hz HorizontalSettings) TimePerDiv() float64 {
	t := hz.Timebase / (1 + 2*hz.Var)
	if hz.Mag10 {
		t /= 10
	}
	return t
}

// TimePerPixel returns the time covered by one pixel column on a screen of
// the specified width.
func (hz HorizontalSettings) TimePerPixel(width int) float64 {
	return hz.TimePerDiv() * DivisionsX / float64(width)
}

// TriggerSettings is the state of the Trigger panel at the start of a tick.
type TriggerSettings struct {
	Mode   TriggerMode
	Source TriggerSource
	Slope  Slope
	Level  float64
}

// LevelDivs returns the trigger level in screen divisions.
func (tr TriggerSettings) LevelDivs() float64 {
	return (tr.Level - 0.5) * 2 * DivisionsY
}

// Settings is an immutable copy of every front panel control, taken once at
// the start of a tick. Trace models work only from a Settings instance and
// never read the controls directly.
type Settings struct {
	Ch1        ChannelSettings
	Ch2        ChannelSettings
	Horizontal HorizontalSettings
	Trigger    TriggerSettings
	Mode       Mode
}

// Kind identifies a trace model.
type Kind int

// List of valid Kind values.
const (
	KindCalc Kind = iota
	KindRealTime
	KindXY
)

func (k Kind) String() string {
	switch k {
	case KindCalc:
		return "calculated"
	case KindRealTime:
		return "real-time"
	case KindXY:
		return "XY"
	}
	return "unknown"
}

// SelectKind returns the trace model suitable for the horizontal settings.
// The selection is made on the timebase selector value so that turning the
// VAR control never switches the trace model.
func SelectKind(hz HorizontalSettings) Kind {
	switch {
	case hz.Timebase == 0:
		return KindXY
	case hz.Timebase > RealTimeThreshold:
		return KindRealTime
	}
	return KindCalc
}
