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

package terminal_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherscope/notifications"
	"github.com/jetsetilly/gopherscope/scope"
	"github.com/jetsetilly/gopherscope/terminal"
	"github.com/jetsetilly/gopherscope/test"
)

func TestKeys(t *testing.T) {
	sc := scope.NewScope(40, 32, nil)
	defer sc.Close()

	press := func(k byte) bool {
		t.Helper()
		quit, err := terminal.Key(sc, k)
		test.ExpectSuccess(t, err)
		return quit
	}

	test.ExpectFailure(t, press('t'))
	test.ExpectFailure(t, press('t'))
	test.ExpectEquality(t, sc.Horizontal.Timebase.Index(), 2)
	press('T')
	test.ExpectEquality(t, sc.Horizontal.Timebase.Index(), 1)

	// the volts selector stops at the first position
	press('V')
	test.ExpectEquality(t, sc.Ch1.Volts.Index(), 0)
	press('v')
	test.ExpectEquality(t, sc.Ch1.Volts.String(), "2V")

	for range 4 {
		press('m')
	}
	test.ExpectEquality(t, scope.Mode(sc.Mode.Index()), scope.ModeCh1)
	press('m')
	test.ExpectEquality(t, scope.Mode(sc.Mode.Index()), scope.ModeCh2)

	press('p')
	test.ExpectSuccess(t, sc.Power.On())
	press('p')
	test.ExpectFailure(t, sc.Power.On())

	// unknown keys do nothing
	test.ExpectFailure(t, press('x'))

	test.ExpectSuccess(t, press('q'))
	test.ExpectSuccess(t, press(terminal.KeyCtrlC))
	test.ExpectSuccess(t, press(terminal.KeyEsc))
}

func TestViewRun(t *testing.T) {
	notices := notifications.NewChannel(10)
	sc := scope.NewScope(40, 32, notices)
	defer sc.Close()

	w := &strings.Builder{}
	_, err := terminal.NewView(sc, notices, w, 20, 1)
	test.ExpectFailure(t, err)

	v, err := terminal.NewView(sc, notices, w, 20, 6)
	test.DemandSuccess(t, err)

	keys := make(chan byte, 10)
	for _, k := range []byte("ttmq") {
		keys <- k
	}
	test.ExpectSuccess(t, v.Run(keys))

	test.ExpectEquality(t, sc.Horizontal.Timebase.Index(), 2)
	test.ExpectEquality(t, scope.Mode(sc.Mode.Index()), scope.ModeCh2)

	// one draw at the start and one for each key before the quit
	out := w.String()
	test.ExpectEquality(t, strings.Count(out, "\x1b[H"), 4)
	test.ExpectEquality(t, strings.Count(out, "▀"), 4*20*5)
	test.ExpectSuccess(t, strings.Contains(out, "scope (off)"))
}

func TestViewClosedKeys(t *testing.T) {
	notices := notifications.NewChannel(10)
	sc := scope.NewScope(40, 32, notices)
	defer sc.Close()

	v, err := terminal.NewView(sc, notices, &strings.Builder{}, 20, 6)
	test.DemandSuccess(t, err)

	keys := make(chan byte)
	close(keys)
	test.ExpectSuccess(t, v.Run(keys))
}
