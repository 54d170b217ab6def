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


package statsview_test

import (
	"testing"

	"github.com/jetsetilly/gopherscope/statsview"
	"github.com/jetsetilly/gopherscope/test"
)

func TestLaunch(t *testing.T) {
	w := &test.CompareWriter{}

	stop := statsview.Launch(w, "localhost:0")
	test.DemandSuccess(t, stop != nil)
	defer stop()

	if statsview.Available() {
		test.ExpectSuccess(t, w.Compare("stats server available at localhost:0/debug/statsview\n"))
	} else {
		test.ExpectSuccess(t, w.Compare("stats server not available. build with the statsview tag\n"))
	}
}
