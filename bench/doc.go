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

// Package bench assembles instruments into an experiment. A Bench holds the
// function generators, the oscilloscope and the circuits under test, along
// with the wires that connect them.
//
// Connectors are named with the name of the instrument and the name of the
// connector separated by a dot. For example:
//
//	gen1.out -> scope.ch1
//	rc.uc    -> scope.ch2
//
// A wire connects an output connector to an input connector. An input can
// carry at most one wire and connecting a new wire to an input replaces the
// existing wire. When a wire is removed the input returns to ground.
//
// The controls of every instrument are added to a controls.Registry. Scope
// controls are registered without a prefix (ch1.volts, trigger.mode) and
// the controls of all other instruments are prefixed with the instrument
// name (gen1.freq, rlc.resistor).
//
// Experiments are presets of control positions and wires. A bench file is a
// YAML document that names an experiment and lists extra control settings
// and wires. For example:
//
//	experiment: capacitor
//	controls:
//	  ch1.volts: 2
//	  gen1.form: SQUARE
//	wires:
//	  gen1.out: scope.ch2
package bench
