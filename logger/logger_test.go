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

package logger_test

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherscope/logger"
	"github.com/jetsetilly/gopherscope/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	test.ExpectFailure(t, log.Write(w))
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	w.Reset()
	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "scope", "tick")
	log.Log(logger.Allow, "scope", "tick")
	log.Log(logger.Allow, "scope", "tick")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "scope: tick (repeat x3)\n")

	w.Reset()
	log.Log(logger.Allow, "scope", "tock")
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "scope: tock\n")
}

func TestDetailTypes(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "err", errors.New("an error"))
	log.Log(logger.Allow, "int", 10)
	log.Logf(logger.Allow, "fmt", "%.2f volts", 1.5)
	log.Log(logger.Allow, "newline", "line\nbreak")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "err: an error\nint: 10\nfmt: 1.50 volts\nnewline: linebreak\n")
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(10)
	for i := range 20 {
		log.Log(logger.Allow, "tag", fmt.Sprintf("%d", i))
	}

	var n int
	var first string
	log.BorrowLog(func(e []logger.Entry) {
		n = len(e)
		first = e[0].Detail
	})
	test.ExpectEquality(t, n, 10)
	test.ExpectEquality(t, first, "10")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}
	log.SetEcho(w)
	log.Log(logger.Allow, "echo", "on")
	log.SetEcho(nil)
	log.Log(logger.Allow, "echo", "off")
	test.ExpectEquality(t, w.String(), "echo: on\n")
}

// test permissions by randomising whether logging is allowed or not
type prohibitLogging struct {
	allow int
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow > 50
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	var p prohibitLogging

	for range 100 {
		p.allow = rand.IntN(100)
		log.Clear()
		w.Reset()
		log.Log(p, "tag", "detail")
		log.Write(w)
		if p.AllowLogging() {
			test.ExpectEquality(t, w.String(), "tag: detail\n")
		} else {
			test.ExpectEquality(t, w.String(), "")
		}
	}

	log.Clear()
	w.Reset()
	log.Log(logger.Deny, "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")
}
