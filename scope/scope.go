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
	"sync"
	"time"

	"github.com/jetsetilly/gopherscope/assert"
	"github.com/jetsetilly/gopherscope/controls"
	"github.com/jetsetilly/gopherscope/logger"
	"github.com/jetsetilly/gopherscope/notifications"
	"github.com/jetsetilly/gopherscope/scope/limiter"
	"github.com/jetsetilly/gopherscope/screen"
)

// Default screen size.
const (
	DefaultWidth  = 400
	DefaultHeight = 320
)

// how often the measured tick rate is updated
const measurementInterval = time.Second

// Scope is the oscilloscope. It is made up of the front panels, the screen
// buffer and the render loop that runs while the power is on.
type Scope struct {
	Ch1        *Channel
	Ch2        *Channel
	Horizontal *Horizontal
	Trigger    *Trigger
	Mode       *controls.Selector
	Power      *controls.Switch

	screen *screen.Screen
	notify notifications.Notify

	// ticks are serialised. the model is only accessed in a tick
	tick  sync.Mutex
	model TraceModel

	// power changes are serialised. the limiter exists only while the
	// render loop is running
	power sync.Mutex
	lmtr  *limiter.Limiter
	quit  chan struct{}
	done  chan struct{}

	// the render loop should always be the same goroutine for the duration
	// of a power cycle
	renderer assert.Goroutine
}

// NewScope is the preferred method of initialisation for the Scope type. The
// power is off.
func NewScope(width int, height int, notify notifications.Notify) *Scope {
	if notify == nil {
		notify = notifications.Discard
	}

	sc := &Scope{
		Ch1:        newChannel("ch1", "Ch1/X"),
		Ch2:        newChannel("ch2", "Ch2/Y"),
		Horizontal: newHorizontal(),
		Trigger:    newTrigger(),
		Mode:       controls.NewSelector("mode", int(ModeCh1), modeLabels...),
		Power:      controls.NewSwitch("power", false),
		screen:     screen.NewScreen(width, height),
		notify:     notify,
	}

	sc.Power.SetHookPost(func(_ controls.Value) error {
		if sc.Power.On() {
			sc.start()
		} else {
			sc.stop()
		}
		return nil
	})

	return sc
}

func (sc *Scope) String() string {
	if !sc.Power.On() {
		return "scope (off)"
	}
	return fmt.Sprintf("scope (%s %s/div)", sc.Mode, sc.Horizontal.Timebase)
}

// Screen returns the screen buffer.
func (sc *Scope) Screen() *screen.Screen {
	return sc.screen
}

// Register adds all scope controls to the registry. Panel controls are
// prefixed with the name of the panel.
func (sc *Scope) Register(r *controls.Registry, prefix string) {
	join := func(s string) string {
		if prefix == "" {
			return s
		}
		return fmt.Sprintf("%s.%s", prefix, s)
	}
	r.Add(join(sc.Ch1.Name()), sc.Ch1.Controls()...)
	r.Add(join(sc.Ch2.Name()), sc.Ch2.Controls()...)
	r.Add(join("horizontal"), sc.Horizontal.Controls()...)
	r.Add(join("trigger"), sc.Trigger.Controls()...)
	r.Add(prefix, sc.Mode, sc.Power)
}

// Settings returns a copy of the current state of the front panel.
func (sc *Scope) Settings() Settings {
	return Settings{
		Ch1:        sc.Ch1.Settings(),
		Ch2:        sc.Ch2.Settings(),
		Horizontal: sc.Horizontal.Settings(),
		Trigger:    sc.Trigger.Settings(),
		Mode:       Mode(sc.Mode.Index()),
	}
}

// Model returns the kind of the current trace model. The boolean is false if
// no tick has been run since the power was switched on.
func (sc *Scope) Model() (Kind, bool) {
	sc.tick.Lock()
	defer sc.tick.Unlock()
	if sc.model == nil {
		return KindCalc, false
	}
	return sc.model.Kind(), true
}

// Tick draws the screen for the specified time in seconds. It is called by
// the render loop while the power is on but can be called directly to drive
// the scope deterministically.
//
// A panic in a trace model is logged and the tick abandoned. The next tick
// runs normally.
func (sc *Scope) Tick(now float64) {
	sc.tick.Lock()
	defer sc.tick.Unlock()

	defer func() {
		if r := recover(); r != nil {
			logger.Log(logger.Allow, "scope", fmt.Errorf("recovered from panic in tick: %v", r))
		}
	}()

	in := Inputs{
		Settings:  sc.Settings(),
		Ch1:       sc.Ch1.Input().Signal(),
		Ch2:       sc.Ch2.Input().Signal(),
		TriggerIn: sc.Trigger.Input().Signal(),
	}

	kind := SelectKind(in.Settings.Horizontal)
	if sc.model == nil || sc.model.Kind() != kind {
		sc.model = NewTraceModel(kind)
		sc.screen.Clear()
		sc.notify.Notify(notifications.NotifyTraceModelChanged)
	}

	sc.model.Update(sc.screen, in, now)
	sc.notify.Notify(notifications.NotifyScreenUpdated)
}

// TickRate returns the measured number of ticks per second of the render
// loop. Returns zero if the power is off.
func (sc *Scope) TickRate() float32 {
	sc.power.Lock()
	defer sc.power.Unlock()
	if sc.lmtr == nil {
		return 0
	}
	return sc.lmtr.Measured.Load().(float32)
}

func (sc *Scope) start() {
	sc.power.Lock()
	defer sc.power.Unlock()

	if sc.quit != nil {
		return
	}

	sc.tick.Lock()
	sc.model = nil
	sc.tick.Unlock()

	sc.lmtr = limiter.NewLimiter(limiter.DefaultRate, measurementInterval)
	sc.quit = make(chan struct{})
	sc.done = make(chan struct{})
	sc.renderer.Reset()

	go sc.run(sc.lmtr, sc.quit, sc.done)

	sc.notify.Notify(notifications.NotifyPowerOn)
}

func (sc *Scope) stop() {
	sc.power.Lock()
	defer sc.power.Unlock()

	if sc.quit == nil {
		return
	}

	close(sc.quit)
	<-sc.done
	sc.lmtr.Stop()

	sc.lmtr = nil
	sc.quit = nil
	sc.done = nil

	sc.screen.Clear()
	sc.notify.Notify(notifications.NotifyPowerOff)
}

// run is the render loop. the time passed to Tick() is measured from the
// start of the loop
func (sc *Scope) run(lmtr *limiter.Limiter, quit chan struct{}, done chan struct{}) {
	defer close(done)

	begin := time.Now()
	for {
		select {
		case <-quit:
			return
		case <-lmtr.Pulse():
		}

		if !sc.renderer.Check() {
			logger.Log(logger.Allow, "scope", "render loop has changed goroutine")
		}

		sc.Tick(time.Since(begin).Seconds())
		lmtr.CheckTick()
		lmtr.MeasureActual()
	}
}

// Close switches off the power and waits for the render loop to end.
func (sc *Scope) Close() {
	_ = sc.Power.Set(false)
}
