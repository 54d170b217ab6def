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

package signal

import (
	"sync"
	"sync/atomic"
)

// Observer is called by a Provider whenever the signal changes. The new signal
// is passed as the argument.
type Observer func(Periodic)

type observer struct {
	id int
	f  Observer
}

// Provider holds the current signal of a connector. The signal can be read
// from any goroutine at any time.
//
// Observers are notified synchronously, in the order they were added, by the
// goroutine that called SetSignal(). An observer must not call SetSignal() on
// the Provider that is notifying it.
type Provider struct {
	name    string
	current atomic.Value

	// serialises changes so that observers see signals in the order they were
	// set
	set sync.Mutex

	crit      sync.Mutex
	observers []observer
	nextID    int
}

// wraps the Periodic interface so that atomic.Value sees the same concrete
// type on every store
type holder struct {
	s Periodic
}

// NewProvider is the preferred method of initialisation for the Provider type.
// The initial signal is Ground.
func NewProvider(name string) *Provider {
	p := &Provider{name: name}
	p.current.Store(holder{s: Ground})
	return p
}

func (p *Provider) String() string {
	return p.name
}

// Signal returns the current signal.
func (p *Provider) Signal() Periodic {
	return p.current.Load().(holder).s
}

// SetSignal changes the current signal and notifies all observers. A nil
// signal is the same as Ground.
func (p *Provider) SetSignal(s Periodic) {
	if s == nil {
		s = Ground
	}

	p.set.Lock()
	defer p.set.Unlock()

	p.current.Store(holder{s: s})

	p.crit.Lock()
	obs := make([]Observer, 0, len(p.observers))
	for _, o := range p.observers {
		obs = append(obs, o.f)
	}
	p.crit.Unlock()

	for _, f := range obs {
		f(s)
	}
}

// Observe adds an observer to the provider. The returned function removes the
// observer. Calling the remove function more than once has no effect.
//
// The observer is not called with the current signal.
func (p *Provider) Observe(f Observer) (remove func()) {
	p.crit.Lock()
	defer p.crit.Unlock()

	id := p.nextID
	p.nextID++
	p.observers = append(p.observers, observer{id: id, f: f})

	return func() {
		p.crit.Lock()
		defer p.crit.Unlock()
		for i := range p.observers {
			if p.observers[i].id == id {
				p.observers = append(p.observers[:i], p.observers[i+1:]...)
				return
			}
		}
	}
}

// Follow is like Observe except that the observer is called immediately with
// the current signal. No change to the signal can happen between the first
// call and the observer being added.
func (p *Provider) Follow(f Observer) (remove func()) {
	p.set.Lock()
	defer p.set.Unlock()
	f(p.Signal())
	return p.Observe(f)
}

// NumObservers returns the number of observers currently attached.
func (p *Provider) NumObservers() int {
	p.crit.Lock()
	defer p.crit.Unlock()
	return len(p.observers)
}
