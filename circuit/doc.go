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

// Package circuit contains the models of the circuits on the bench: a diode
// with a series resistor, an RC network and an RLC resonant circuit.
//
// Each model owns an input provider and one or more output providers. The
// model observes its input and its controls and recomputes the outputs
// whenever any of them change. Outputs are computed in closed form when the
// input is a pure sinusoid and numerically otherwise.
//
// Recomputation can be slow so models are normally given a worker.Queue. A
// model without a queue recomputes on the goroutine that caused the change.
//
// Voltages across the resistor follow the probe convention of the bench: the
// probe ground is at the node between the resistor and the other component.
// For the diode and the RC network the resistor output is therefore the
// component voltage minus the input voltage. The RLC resistor output is the
// resistor current multiplied by the resistance.
package circuit
