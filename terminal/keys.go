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

package terminal

import (
	"github.com/jetsetilly/gopherscope/scope"
)

// list of ASCII codes for non-alphanumeric characters
const (
	KeyCtrlC = 3
	KeyEsc   = 27
)

// Help is a one line summary of the keys understood by Key().
const Help = "q quit  t/T timebase  v/V ch1 volts  m mode  p power"

// Key applies the key press to the scope controls. The quit return value is
// true if the key asks for the view to end. Unknown keys are ignored.
func Key(sc *scope.Scope, key byte) (quit bool, err error) {
	switch key {
	case 'q', KeyCtrlC, KeyEsc:
		return true, nil
	case 't':
		err = sc.Horizontal.Timebase.Step(1)
	case 'T':
		err = sc.Horizontal.Timebase.Step(-1)
	case 'v':
		err = sc.Ch1.Volts.Step(1)
	case 'V':
		err = sc.Ch1.Volts.Step(-1)
	case 'm':
		err = sc.Mode.Cycle()
	case 'p':
		err = sc.Power.Toggle()
	}
	return false, err
}
