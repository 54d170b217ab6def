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

package scope

import (
	"fmt"

	"github.com/jetsetilly/gopherscope/signal"
)

// Frontend is the signal after it has passed through a channel's coupling and
// amplifier. Values are in screen divisions.
//
// Frontend implements the signal.Periodic interface.
type Frontend struct {
	in       signal.Periodic
	coupling Coupling
	gain     float64
	removed  float64
}

// NewFrontend is the preferred method of initialisation for the Frontend type.
func NewFrontend(in signal.Periodic, ch ChannelSettings) Frontend {
	fe := Frontend{
		in:       in,
		coupling: ch.Coupling,
		gain:     ch.Gain(),
	}
	if fe.coupling == CouplingAC {
		fe.removed = in.Mean()
	}
	return fe
}

func (fe Frontend) String() string {
	return fmt.Sprintf("%v %s x%.3g", fe.in, fe.coupling, fe.gain)
}

// V implements the signal.Periodic interface.
func (fe Frontend) V(t float64) float64 {
	if fe.coupling == CouplingGND {
		return 0
	}
	return (fe.in.V(t) - fe.removed) * fe.gain
}

// Period implements the signal.Periodic interface.
func (fe Frontend) Period() float64 {
	return fe.in.Period()
}

// Mean implements the signal.Periodic interface.
func (fe Frontend) Mean() float64 {
	if fe.coupling != CouplingDC {
		return 0
	}
	return fe.in.Mean() * fe.gain
}

// Sinusoid implements the signal.Periodic interface.
func (fe Frontend) Sinusoid() (signal.SineParams, bool) {
	if fe.coupling == CouplingGND {
		return signal.SineParams{}, false
	}
	p, ok := fe.in.Sinusoid()
	if !ok {
		return signal.SineParams{}, false
	}
	return signal.SineParams{
		Amplitude: p.Amplitude * fe.gain,
		Omega:     p.Omega,
		Phase:     p.Phase,
		Offset:    (p.Offset - fe.removed) * fe.gain,
	}, true
}

// YToScreen maps a value in divisions to a pixel row. Row zero is the bottom
// of the screen. The position trim moves the trace by up to ten divisions in
// either direction and the result is clamped to one screen height beyond the
// edges.
func YToScreen(v float64, pos float64, height int) int {
	div := v + DivisionsY/2 + (pos-0.5)*20
	div = min(max(div, -DivisionsY), 2*DivisionsY)
	return int(div * float64(height) / DivisionsY)
}

// XToScreen maps a value in divisions to a pixel column. Used by the XY trace
// model.
func XToScreen(v float64, pos float64, width int) int {
	div := v + DivisionsX/2 + (pos-0.5)*20
	div = min(max(div, -DivisionsX), 2*DivisionsX)
	return int(div * float64(width) / DivisionsX)
}
