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

package worker_test

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/jetsetilly/gopherscope/logger"
	"github.com/jetsetilly/gopherscope/test"
	"github.com/jetsetilly/gopherscope/worker"
)

func TestCoalesce(t *testing.T) {
	q := worker.NewQueue("test")
	defer q.Stop()

	release := make(chan struct{})
	started := make(chan struct{})

	var runs atomic.Int32
	var last atomic.Int32

	// the first job blocks the worker so that the following jobs have to wait
	q.Submit("circuit", func() {
		runs.Add(1)
		close(started)
		<-release
	})
	<-started

	for i := range 100 {
		q.Submit("circuit", func() {
			runs.Add(1)
			last.Store(int32(i))
		})
	}
	test.ExpectEquality(t, q.Pending(), 1)

	close(release)
	q.Wait()

	test.ExpectEquality(t, runs.Load(), int32(2))
	test.ExpectEquality(t, last.Load(), int32(99))
	test.ExpectEquality(t, q.Pending(), 0)
}

func TestOrder(t *testing.T) {
	q := worker.NewQueue("test")
	defer q.Stop()

	release := make(chan struct{})
	started := make(chan struct{})
	q.Submit("block", func() {
		close(started)
		<-release
	})
	<-started

	var crit sync.Mutex
	var order []string
	add := func(s string) func() {
		return func() {
			crit.Lock()
			defer crit.Unlock()
			order = append(order, s)
		}
	}

	q.Submit("a", add("a1"))
	q.Submit("b", add("b"))
	q.Submit("a", add("a2"))
	q.Submit("c", add("c"))

	close(release)
	q.Wait()

	// a2 replaces a1 but keeps its place in the queue
	test.ExpectEquality(t, strings.Join(order, ","), "a2,b,c")
}

func TestPanic(t *testing.T) {
	logger.Clear()

	q := worker.NewQueue("panicky")
	defer q.Stop()

	var ran atomic.Bool
	q.Submit(1, func() {
		panic("job failed")
	})
	q.Submit(2, func() {
		ran.Store(true)
	})
	q.Wait()

	test.ExpectSuccess(t, ran.Load())

	w := &strings.Builder{}
	logger.Write(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "worker: panicky: recovered from panic: job failed"))
}

func TestStop(t *testing.T) {
	q := worker.NewQueue("test")

	var runs atomic.Int32
	q.Submit(1, func() { runs.Add(1) })
	q.Wait()
	test.ExpectEquality(t, runs.Load(), int32(1))

	q.Stop()
	q.Stop()

	test.ExpectFailure(t, q.Submit(1, func() { runs.Add(1) }))
	q.Wait()
	test.ExpectEquality(t, runs.Load(), int32(1))
}

func TestWaitOnEmptyQueue(t *testing.T) {
	q := worker.NewQueue("test")
	defer q.Stop()
	q.Wait()
	test.ExpectEquality(t, q.String(), "test")
}
