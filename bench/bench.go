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

package bench

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jetsetilly/gopherscope/circuit"
	"github.com/jetsetilly/gopherscope/controls"
	"github.com/jetsetilly/gopherscope/generator"
	"github.com/jetsetilly/gopherscope/logger"
	"github.com/jetsetilly/gopherscope/notifications"
	"github.com/jetsetilly/gopherscope/scope"
	"github.com/jetsetilly/gopherscope/worker"
	"github.com/pkg/errors"
)

// Sentinel errors returned by bench functions. Use errors.Is() or
// errors.Cause() to test for them.
var (
	ErrUnknownInstrument   = errors.New("unknown instrument")
	ErrDuplicateInstrument = errors.New("duplicate instrument")
	ErrUnknownConnector    = errors.New("unknown connector")
	ErrMalformedConnector  = errors.New("connector must be of the form instrument.connector")
	ErrFeedback            = errors.New("wiring creates a feedback loop")
	ErrUnknownExperiment   = errors.New("unknown experiment")
)

// the name of the scope instrument
const scopeName = "scope"

// Wire describes a connection between an output and an input connector.
type Wire struct {
	From string
	To   string
}

func (w Wire) String() string {
	return fmt.Sprintf("%s -> %s", w.From, w.To)
}

type wire struct {
	Wire
	remove func()
}

// Bench is a collection of instruments and the wires between them.
type Bench struct {
	name     string
	notify   notifications.Notify
	queue    *worker.Queue
	registry *controls.Registry

	crit        sync.Mutex
	instruments map[string]*Instrument
	order       []string
	wires       map[string]*wire
	scope       *scope.Scope
}

// New is the preferred method of initialisation for the Bench type. The
// notify argument can be nil.
func New(name string, notify notifications.Notify) *Bench {
	if notify == nil {
		notify = notifications.Discard
	}
	return &Bench{
		name:        name,
		notify:      notify,
		queue:       worker.NewQueue(name),
		registry:    controls.NewRegistry(),
		instruments: make(map[string]*Instrument),
		wires:       make(map[string]*wire),
	}
}

func (b *Bench) String() string {
	b.crit.Lock()
	defer b.crit.Unlock()
	return fmt.Sprintf("%s: %s", b.name, strings.Join(b.order, ", "))
}

// Name returns the name of the bench. For benches created by an experiment
// this is the name of the experiment.
func (b *Bench) Name() string {
	return b.name
}

// Registry returns the registry containing the controls of every instrument.
func (b *Bench) Registry() *controls.Registry {
	return b.registry
}

// Queue returns the worker queue used by the circuit models. Call Wait() on
// the queue to wait for all circuit outputs to be up to date.
func (b *Bench) Queue() *worker.Queue {
	return b.queue
}

func (b *Bench) add(ins *Instrument) error {
	b.crit.Lock()
	defer b.crit.Unlock()

	if strings.Contains(ins.name, ".") || ins.name == "" {
		return errors.Wrapf(ErrMalformedConnector, "instrument name %q", ins.name)
	}
	if _, ok := b.instruments[ins.name]; ok {
		return errors.Wrap(ErrDuplicateInstrument, ins.name)
	}
	b.instruments[ins.name] = ins
	b.order = append(b.order, ins.name)
	return nil
}

// AddGenerator adds a function generator to the bench.
func (b *Bench) AddGenerator(name string) (*generator.Generator, error) {
	gen := generator.NewGenerator(name)
	if err := b.add(newGeneratorInstrument(name, gen)); err != nil {
		return nil, err
	}
	b.registry.Add(name, gen.Controls()...)
	return gen, nil
}

// AddScope adds the oscilloscope to the bench. There can be only one scope
// and it is always called "scope".
func (b *Bench) AddScope(width int, height int) (*scope.Scope, error) {
	sc := scope.NewScope(width, height, b.notify)
	if err := b.add(newScopeInstrument(scopeName, sc)); err != nil {
		return nil, err
	}
	sc.Register(b.registry, "")

	b.crit.Lock()
	b.scope = sc
	b.crit.Unlock()

	return sc, nil
}

func (b *Bench) addCircuit(name string, m circuit.Model) error {
	if err := b.add(newCircuitInstrument(name, m)); err != nil {
		m.Close()
		return err
	}
	b.registry.Add(name, m.Controls()...)
	return nil
}

// AddDiode adds the diode circuit to the bench.
func (b *Bench) AddDiode(name string) (*circuit.Diode, error) {
	d := circuit.NewDiode(circuit.DefaultDiode, b.queue, b.notify)
	if err := b.addCircuit(name, d); err != nil {
		return nil, err
	}
	return d, nil
}

// AddRC adds the RC circuit to the bench.
func (b *Bench) AddRC(name string) (*circuit.RC, error) {
	rc := circuit.NewRC(b.queue, b.notify)
	if err := b.addCircuit(name, rc); err != nil {
		return nil, err
	}
	return rc, nil
}

// AddRLC adds the resonant circuit to the bench.
func (b *Bench) AddRLC(name string) (*circuit.RLC, error) {
	rlc := circuit.NewRLC(b.queue, b.notify)
	if err := b.addCircuit(name, rlc); err != nil {
		return nil, err
	}
	return rlc, nil
}

// Scope returns the oscilloscope. Returns nil if there is no scope on the
// bench.
func (b *Bench) Scope() *scope.Scope {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.scope
}

// Instrument returns the named instrument.
func (b *Bench) Instrument(name string) (*Instrument, error) {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.instrument(name)
}

// the critical section must be held
func (b *Bench) instrument(name string) (*Instrument, error) {
	if ins, ok := b.instruments[name]; ok {
		return ins, nil
	}
	return nil, errors.Wrap(ErrUnknownInstrument, name)
}

// Instruments returns all instruments in the order they were added.
func (b *Bench) Instruments() []*Instrument {
	b.crit.Lock()
	defer b.crit.Unlock()
	l := make([]*Instrument, 0, len(b.order))
	for _, n := range b.order {
		l = append(l, b.instruments[n])
	}
	return l
}

// Generator returns the named function generator.
func (b *Bench) Generator(name string) (*generator.Generator, error) {
	ins, err := b.Instrument(name)
	if err != nil {
		return nil, err
	}
	gen, ok := ins.device.(*generator.Generator)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownInstrument, "%s is not a generator", name)
	}
	return gen, nil
}

// split a connector name into the instrument and connector parts
func splitConnector(s string) (string, string, error) {
	ins, conn, ok := strings.Cut(strings.TrimSpace(s), ".")
	if !ok || ins == "" || conn == "" {
		return "", "", errors.Wrap(ErrMalformedConnector, s)
	}
	return ins, conn, nil
}

// Connect an output connector to an input connector. An existing wire to the
// input is replaced. The input carries the signal of the output immediately.
func (b *Bench) Connect(from string, to string) error {
	fromIns, fromConn, err := splitConnector(from)
	if err != nil {
		return errors.Wrap(err, "connect")
	}
	toIns, toConn, err := splitConnector(to)
	if err != nil {
		return errors.Wrap(err, "connect")
	}
	if fromIns == toIns {
		return errors.Wrapf(ErrFeedback, "connect %s to %s", from, to)
	}

	b.crit.Lock()
	defer b.crit.Unlock()

	src, err := b.instrument(fromIns)
	if err != nil {
		return errors.Wrap(err, "connect")
	}
	out, err := src.Output(fromConn)
	if err != nil {
		return errors.Wrap(err, "connect")
	}
	dst, err := b.instrument(toIns)
	if err != nil {
		return errors.Wrap(err, "connect")
	}
	in, err := dst.Input(toConn)
	if err != nil {
		return errors.Wrap(err, "connect")
	}

	if path, ok := b.downstream(toIns, fromIns); ok {
		return errors.Wrapf(ErrFeedback, "connect %s to %s: %s", from, to, strings.Join(path, " -> "))
	}

	key := fmt.Sprintf("%s.%s", toIns, toConn)
	if w, ok := b.wires[key]; ok {
		w.remove()
	}

	w := &wire{
		Wire:   Wire{From: fmt.Sprintf("%s.%s", fromIns, fromConn), To: key},
		remove: out.Follow(in.SetSignal),
	}
	b.wires[key] = w

	logger.Logf(logger.Allow, "bench", "wired %s", w.Wire)
	b.notify.Notify(notifications.NotifyWiringChanged)

	return nil
}

// downstream follows the wires leaving the start instrument and returns the
// chain of instruments that leads to the target. every output of an instrument
// is taken to depend on all of its inputs.
//
// the critical section must be held
func (b *Bench) downstream(start string, target string) ([]string, bool) {
	// the instrument each instrument was reached from
	from := map[string]string{start: ""}
	queue := []string{start}

	for len(queue) > 0 {
		ins := queue[0]
		queue = queue[1:]

		if ins == target {
			var path []string
			for ; ins != ""; ins = from[ins] {
				path = append([]string{ins}, path...)
			}
			return path, true
		}

		for _, w := range b.wires {
			src, _, _ := strings.Cut(w.From, ".")
			if src != ins {
				continue
			}
			dst, _, _ := strings.Cut(w.To, ".")
			if _, ok := from[dst]; !ok {
				from[dst] = ins
				queue = append(queue, dst)
			}
		}
	}

	return nil, false
}

// Disconnect removes the wire connected to the input. The input returns to
// ground. It is not an error to disconnect an input with no wire.
func (b *Bench) Disconnect(to string) error {
	toIns, toConn, err := splitConnector(to)
	if err != nil {
		return errors.Wrap(err, "disconnect")
	}

	b.crit.Lock()
	defer b.crit.Unlock()

	dst, err := b.instrument(toIns)
	if err != nil {
		return errors.Wrap(err, "disconnect")
	}
	in, err := dst.Input(toConn)
	if err != nil {
		return errors.Wrap(err, "disconnect")
	}

	key := fmt.Sprintf("%s.%s", toIns, toConn)
	if w, ok := b.wires[key]; ok {
		w.remove()
		delete(b.wires, key)
		logger.Logf(logger.Allow, "bench", "unwired %s", w.Wire)
	}

	in.SetSignal(nil)
	b.notify.Notify(notifications.NotifyWiringChanged)

	return nil
}

// Wires returns all wires sorted by the input connector.
func (b *Bench) Wires() []Wire {
	b.crit.Lock()
	defer b.crit.Unlock()
	l := make([]Wire, 0, len(b.wires))
	for _, w := range b.wires {
		l = append(l, w.Wire)
	}
	sort.Slice(l, func(i, j int) bool {
		return l[i].To < l[j].To
	})
	return l
}

// Close removes all wires, switches off the scope and stops the worker
// queue. The bench should not be used after Close().
func (b *Bench) Close() {
	b.crit.Lock()
	for k, w := range b.wires {
		w.remove()
		delete(b.wires, k)
	}
	instruments := make([]*Instrument, 0, len(b.order))
	for _, n := range b.order {
		instruments = append(instruments, b.instruments[n])
	}
	b.crit.Unlock()

	for _, ins := range instruments {
		ins.close()
	}
	b.queue.Stop()
}
