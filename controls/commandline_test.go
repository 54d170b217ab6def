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

package controls_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopherscope/controls"
	"github.com/jetsetilly/gopherscope/test"
)

func TestParseAssignments(t *testing.T) {
	// empty string
	test.ExpectEquality(t, len(controls.ParseAssignments("")), 0)

	// single value
	a := controls.ParseAssignments("foo::bar")
	test.ExpectEquality(t, controls.FormatAssignments(a), "foo::bar")

	// single value but with additional space
	a = controls.ParseAssignments("   foo:: bar ")
	test.ExpectEquality(t, controls.FormatAssignments(a), "foo::bar")

	// more than one key/value. formatted string is sorted but parsed order is
	// preserved
	a = controls.ParseAssignments("foo::bar; baz::qux")
	test.ExpectEquality(t, controls.FormatAssignments(a), "baz::qux; foo::bar")
	test.ExpectEquality(t, a[0].Key, "foo")

	// invalid string
	a = controls.ParseAssignments("foo_bar")
	test.ExpectEquality(t, controls.FormatAssignments(a), "")

	// partially invalid string
	a = controls.ParseAssignments("foo_bar;baz::qux")
	test.ExpectEquality(t, controls.FormatAssignments(a), "baz::qux")

	// repeated keys
	a = controls.ParseAssignments("foo::bar;foo::baz")
	test.DemandEquality(t, len(a), 1)
	test.ExpectEquality(t, a[0].Value, "baz")
}

func TestRegistry(t *testing.T) {
	r := controls.NewRegistry()

	volts := controls.NewSelector("volts", 2, "5", "2", "1")
	pos := controls.NewPotentiometer("pos", 0.5)
	power := controls.NewSwitch("power", false)
	r.Add("ch1", volts, pos)
	r.Add("", power)

	test.ExpectEquality(t, len(r.Names()), 3)
	test.ExpectEquality(t, r.Names()[0], "ch1.pos")

	test.ExpectSuccess(t, r.Apply("ch1.volts::5; ch1.pos::0.25; power::on"))
	test.ExpectEquality(t, volts.Index(), 0)
	test.ExpectEquality(t, pos.Float(), 0.25)
	test.ExpectSuccess(t, power.On())

	err := r.Apply("ch2.volts::5")
	test.ExpectSuccess(t, errors.Is(err, controls.ErrUnknownControl))

	test.ExpectFailure(t, r.Set("ch1.pos", "high"))

	test.ExpectSuccess(t, r.Reset())
	test.ExpectEquality(t, volts.Index(), 2)
	test.ExpectFailure(t, power.On())
}
