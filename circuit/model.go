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

package circuit

import (
	"sync/atomic"

	"github.com/jetsetilly/gopherscope/controls"
	"github.com/jetsetilly/gopherscope/notifications"
	"github.com/jetsetilly/gopherscope/signal"
	"github.com/jetsetilly/gopherscope/worker"
)

// Model is implemented by all circuit models.
type Model interface {
	Name() string

	// the provider for the input connector
	Input() *signal.Provider

	// the providers for the output connectors. the name of each provider is
	// the name of the connector
	Outputs() []*signal.Provider

	Controls() []controls.Control

	// Close detaches the model from its input and controls. The outputs keep
	// their last value
	Close()
}

// model is embedded by the concrete models. it handles the observation of
// the input and the scheduling of recomputation
type model struct {
	name      string
	input     *signal.Provider
	queue     *worker.Queue
	notify    notifications.Notify
	recompute func()

	remove func()
	closed atomic.Bool
	quiet  atomic.Bool
}

func (m *model) init(name string, queue *worker.Queue, notify notifications.Notify, recompute func()) {
	if notify == nil {
		notify = notifications.Discard
	}
	m.name = name
	m.input = signal.NewProvider("in")
	m.queue = queue
	m.notify = notify
	m.recompute = recompute
	m.remove = m.input.Observe(func(_ signal.Periodic) {
		m.changed()
	})
}

// watch a control for changes
func (m *model) watch(c interface{ SetHookPost(controls.Hook) }) {
	c.SetHookPost(func(_ controls.Value) error {
		m.changed()
		return nil
	})
}

// changed schedules a recomputation. the recomputation always reads the
// current input and control values so it does not matter which change
// caused it
func (m *model) changed() {
	if m.closed.Load() {
		return
	}
	if m.queue == nil || !m.queue.Submit(m, m.run) {
		m.run()
	}
}

func (m *model) run() {
	m.recompute()
	m.notify.Notify(notifications.NotifyRecomputed)
}

// Name implements the Model interface.
func (m *model) Name() string {
	return m.name
}

func (m *model) String() string {
	return m.name
}

// Input implements the Model interface.
func (m *model) Input() *signal.Provider {
	return m.input
}

// Close implements the Model interface.
func (m *model) Close() {
	if m.closed.CompareAndSwap(false, true) {
		m.remove()
	}
}

// AllowLogging implements the logger.Permission interface.
func (m *model) AllowLogging() bool {
	return !m.quiet.Load()
}

// SetQuiet suppresses log entries from the model.
func (m *model) SetQuiet(quiet bool) {
	m.quiet.Store(quiet)
}

// constant returns a signal that is v at all times
func constant(v float64) signal.Periodic {
	if v == 0 {
		return signal.Ground
	}
	return signal.NewSine(0, 0, 0, v)
}
