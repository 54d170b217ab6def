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

package worker

import (
	"fmt"
	"sync"

	"github.com/jetsetilly/gopherscope/logger"
)

// Queue is a coalescing job queue with a single worker goroutine.
type Queue struct {
	name string

	crit    sync.Mutex
	idle    *sync.Cond
	pending map[any]func()
	order   []any
	running bool
	stopped bool

	// wake has a buffer of one. a submission that finds the buffer full does
	// not need to send because the worker is yet to drain the queue
	wake chan struct{}
	quit chan struct{}
	done chan struct{}

	stopOnce sync.Once
}

// NewQueue is the preferred method of initialisation for the Queue type. The
// worker goroutine is started immediately.
func NewQueue(name string) *Queue {
	q := &Queue{
		name:    name,
		pending: make(map[any]func()),
		wake:    make(chan struct{}, 1),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	q.idle = sync.NewCond(&q.crit)
	go q.loop()
	return q
}

func (q *Queue) String() string {
	return q.name
}

// Submit adds a job to the queue. If a job with the same key is waiting then
// it is replaced by the new job. The key must be comparable.
//
// Returns false if the queue has been stopped. The job is not run in that
// case and the caller should decide whether to run it inline.
func (q *Queue) Submit(key any, job func()) bool {
	q.crit.Lock()
	if q.stopped {
		q.crit.Unlock()
		return false
	}
	if _, ok := q.pending[key]; !ok {
		q.order = append(q.order, key)
	}
	q.pending[key] = job
	q.crit.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}

	return true
}

// Pending returns the number of jobs waiting to be run.
func (q *Queue) Pending() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return len(q.order)
}

// Wait blocks until the queue is empty and no job is running. Returns
// immediately if the queue has been stopped.
func (q *Queue) Wait() {
	q.crit.Lock()
	defer q.crit.Unlock()
	for !q.stopped && (len(q.order) > 0 || q.running) {
		q.idle.Wait()
	}
}

// Stop the worker goroutine. Jobs that are waiting are discarded. A job that
// is running is allowed to finish and Stop() does not return until it has.
//
// Safe to call more than once.
func (q *Queue) Stop() {
	q.stopOnce.Do(func() {
		q.crit.Lock()
		q.stopped = true
		discarded := len(q.order)
		clear(q.pending)
		q.order = q.order[:0]
		q.idle.Broadcast()
		q.crit.Unlock()

		if discarded > 0 {
			logger.Logf(logger.Allow, "worker", "%s: stopped with %d jobs discarded", q.name, discarded)
		}

		close(q.quit)
	})
	<-q.done
}

func (q *Queue) loop() {
	defer close(q.done)
	for {
		select {
		case <-q.quit:
			return
		case <-q.wake:
		}

		for {
			job := q.next()
			if job == nil {
				break
			}
			q.run(job)
		}
	}
}

// next removes the job at the head of the queue. returns nil if there is
// nothing to do, in which case the queue is marked as idle
func (q *Queue) next() func() {
	q.crit.Lock()
	defer q.crit.Unlock()

	if q.stopped || len(q.order) == 0 {
		q.running = false
		q.idle.Broadcast()
		return nil
	}

	key := q.order[0]
	q.order = q.order[1:]
	job := q.pending[key]
	delete(q.pending, key)
	q.running = true

	return job
}

func (q *Queue) run(job func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log(logger.Allow, "worker", fmt.Errorf("%s: recovered from panic: %v", q.name, r))
		}
	}()
	job()
}
