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

	"github.com/jetsetilly/gopherscope/controls"
	"github.com/jetsetilly/gopherscope/signal"
)

// Coupling of a channel input.
type Coupling int

// List of valid Coupling values. The order is the order of the coupling
// selector.
const (
	CouplingAC Coupling = iota
	CouplingGND
	CouplingDC
)

var couplingLabels = []string{"AC", "GND", "DC"}

func (c Coupling) String() string {
	if int(c) < len(couplingLabels) {
		return couplingLabels[c]
	}
	return fmt.Sprintf("coupling(%d)", int(c))
}

// the volts/div selector. the values must be in the same order as the labels
var voltsLabels = []string{"5V", "2V", "1V", "500mV", "200mV", "100mV", "50mV", "20mV", "10mV", "5mV"}
var voltsValues = []float64{5, 2, 1, 0.5, 0.2, 0.1, 0.05, 0.02, 0.01, 0.005}

// Channel is the vertical amplifier panel for one input.
type Channel struct {
	name string

	Volts    *controls.Selector
	Coupling *controls.Selector
	Invert   *controls.Switch
	Var      *controls.Potentiometer
	Pos      *controls.Potentiometer
	Mag5     *controls.Switch

	input *signal.Provider
}

func newChannel(name string, connector string) *Channel {
	return &Channel{
		name:     name,
		Volts:    controls.NewSelector("volts", 0, voltsLabels...),
		Coupling: controls.NewSelector("coupling", int(CouplingGND), couplingLabels...),
		Invert:   controls.NewSwitch("inv", false),
		Var:      controls.NewPotentiometer("var", 0),
		Pos:      controls.NewPotentiometer("pos", 0.5),
		Mag5:     controls.NewSwitch("mag5", false),
		input:    signal.NewProvider(connector),
	}
}

// Name returns the name of the channel.
func (ch *Channel) Name() string {
	return ch.name
}

func (ch *Channel) String() string {
	return fmt.Sprintf("%s: %s/div %s", ch.name, ch.Volts, ch.Coupling)
}

// Input returns the provider connected to the channel input.
func (ch *Channel) Input() *signal.Provider {
	return ch.input
}

// Controls returns all channel controls.
func (ch *Channel) Controls() []controls.Control {
	return []controls.Control{ch.Volts, ch.Coupling, ch.Invert, ch.Var, ch.Pos, ch.Mag5}
}

// Settings returns the current state of the channel controls.
func (ch *Channel) Settings() ChannelSettings {
	return ChannelSettings{
		VoltsPerDiv: voltsValues[ch.Volts.Index()],
		Coupling:    Coupling(ch.Coupling.Index()),
		Invert:      ch.Invert.On(),
		Var:         ch.Var.Float(),
		Pos:         ch.Pos.Float(),
		Mag5:        ch.Mag5.On(),
	}
}

// the time/div selector. a value of zero is the XY mode
var timebaseLabels = []string{
	"XY", "500ms", "200ms", "100ms", "50ms", "20ms", "10ms", "5ms", "2ms", "1ms",
	"500us", "200us", "100us", "50us", "20us", "10us", "5us", "2us", "1us",
	"500ns", "200ns",
}
var timebaseValues = []float64{
	0, 0.5, 0.2, 0.1, 0.05, 0.02, 0.01, 0.005, 0.002, 0.001,
	5e-4, 2e-4, 1e-4, 5e-5, 2e-5, 1e-5, 5e-6, 2e-6, 1e-6,
	5e-7, 2e-7,
}

// Horizontal is the timebase panel.
type Horizontal struct {
	Timebase *controls.Selector
	Pos      *controls.Potentiometer
	Var      *controls.Potentiometer
	Mag10    *controls.Switch
}

func newHorizontal() *Horizontal {
	return &Horizontal{
		Timebase: controls.NewSelector("timebase", 0, timebaseLabels...),
		Pos:      controls.NewPotentiometer("pos", 0),
		Var:      controls.NewPotentiometer("var", 0),
		Mag10:    controls.NewSwitch("mag10", false),
	}
}

func (hz *Horizontal) String() string {
	return fmt.Sprintf("horizontal: %s/div", hz.Timebase)
}

// Controls returns all horizontal controls.
func (hz *Horizontal) Controls() []controls.Control {
	return []controls.Control{hz.Timebase, hz.Pos, hz.Var, hz.Mag10}
}

// Settings returns the current state of the horizontal controls.
func (hz *Horizontal) Settings() HorizontalSettings {
	return HorizontalSettings{
		Timebase: timebaseValues[hz.Timebase.Index()],
		Pos:      hz.Pos.Float(),
		Var:      hz.Var.Float(),
		Mag10:    hz.Mag10.On(),
	}
}

// TriggerMode selects when a trace is shown.
type TriggerMode int

// List of valid TriggerMode values.
const (
	TriggerNorm TriggerMode = iota
	TriggerAuto
	TriggerTVV
	TriggerTVH
)

var triggerModeLabels = []string{"NORM", "AUTO", "TV-V", "TV-H"}

func (m TriggerMode) String() string {
	if int(m) < len(triggerModeLabels) {
		return triggerModeLabels[m]
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// TriggerSource selects the signal that is scanned for a trigger.
type TriggerSource int

// List of valid TriggerSource values.
const (
	SourceCh1 TriggerSource = iota
	SourceCh2
	SourceLine
	SourceExt
)

var triggerSourceLabels = []string{"CH1", "CH2", "LINE", "EXT"}

func (s TriggerSource) String() string {
	if int(s) < len(triggerSourceLabels) {
		return triggerSourceLabels[s]
	}
	return fmt.Sprintf("source(%d)", int(s))
}

// Slope of the trigger crossing.
type Slope int

// List of valid Slope values.
const (
	SlopeRising Slope = iota
	SlopeFalling
)

var slopeLabels = []string{"+", "-"}

func (s Slope) String() string {
	if int(s) < len(slopeLabels) {
		return slopeLabels[s]
	}
	return fmt.Sprintf("slope(%d)", int(s))
}

// Trigger is the trigger panel, including the external trigger connector.
type Trigger struct {
	Mode   *controls.Selector
	Source *controls.Selector
	Slope  *controls.Selector
	Level  *controls.Potentiometer

	input *signal.Provider
}

func newTrigger() *Trigger {
	return &Trigger{
		Mode:   controls.NewSelector("mode", int(TriggerNorm), triggerModeLabels...),
		Source: controls.NewSelector("source", int(SourceCh1), triggerSourceLabels...),
		Slope:  controls.NewSelector("slope", int(SlopeRising), slopeLabels...),
		Level:  controls.NewPotentiometer("level", 0.5),
		input:  signal.NewProvider("trig in"),
	}
}

func (tr *Trigger) String() string {
	return fmt.Sprintf("trigger: %s %s %s", tr.Mode, tr.Source, tr.Slope)
}

// Input returns the provider connected to the external trigger input.
func (tr *Trigger) Input() *signal.Provider {
	return tr.input
}

// Controls returns all trigger controls.
func (tr *Trigger) Controls() []controls.Control {
	return []controls.Control{tr.Mode, tr.Source, tr.Slope, tr.Level}
}

// Settings returns the current state of the trigger controls.
func (tr *Trigger) Settings() TriggerSettings {
	return TriggerSettings{
		Mode:   TriggerMode(tr.Mode.Index()),
		Source: TriggerSource(tr.Source.Index()),
		Slope:  Slope(tr.Slope.Index()),
		Level:  tr.Level.Float(),
	}
}

// Mode is the vertical mode. It selects which traces are drawn.
type Mode int

// List of valid Mode values.
const (
	ModeCh1 Mode = iota
	ModeCh2
	ModeDual
	ModeAdd
)

var modeLabels = []string{"CH1", "CH2", "DUAL", "ADD"}

func (m Mode) String() string {
	if int(m) < len(modeLabels) {
		return modeLabels[m]
	}
	return fmt.Sprintf("vertical(%d)", int(m))
}
