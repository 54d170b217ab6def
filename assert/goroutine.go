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

package assert

import (
	"bytes"
	"runtime"
	"strconv"
	"sync/atomic"
)

// GetGoRoutineID returns an identify for a goroutine. it returns a result that
// is (a) different between goroutines and (b) consistent for a given
// goroutine. It should only ever be used for debugging or testing purposes.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Goroutine records the first goroutine to call Check() and reports whether
// subsequent calls come from the same goroutine. The zero value is ready to
// use.
type Goroutine struct {
	id atomic.Uint64
}

// Check returns false if the calling goroutine is not the goroutine that
// first called Check() since the most recent Reset().
func (g *Goroutine) Check() bool {
	id := GetGoRoutineID()
	if g.id.CompareAndSwap(0, id) {
		return true
	}
	return g.id.Load() == id
}

// Reset forgets the recorded goroutine.
func (g *Goroutine) Reset() {
	g.id.Store(0)
}
