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

// Package worker implements a coalescing background queue. Circuit models use
// it to move slow recomputation off the goroutine that changed a control or a
// wire.
//
// Jobs are submitted with a key. If a job with the same key is already waiting
// to run then the new job replaces it, keeping its place in the queue. A job
// that has already started is never interrupted. This means that a control
// that is being dragged produces at most one running and one waiting job for
// the circuit that depends on it, and that the most recent job always runs.
//
// Jobs run one at a time, in submission order, on a single goroutine. A job
// that panics is recovered and logged and does not stop the queue.
package worker
