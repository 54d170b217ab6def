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

// Package generator implements the function generator on the bench.
//
// The generator has two outputs. The signal output carries the waveform
// selected by the front panel controls. The trigger output carries a square
// wave at the same frequency that swings between 0V and 5V. Both outputs are
// ground when the generator is switched off.
//
// Controls:
//
//	power    on/off
//	form     SINE, SQUARE, TRIANGLE, SAWTOOTH or ARBITRARY
//	freq     frequency decade: 1, 10, 100, 1k, 10k or 100k Hz
//	fine     frequency multiplier of 10^fine
//	ampl     amplitude of up to 10V
//	offset   offset of ±10V, zero at the centre position
//	phase    phase of up to one full cycle
//
// The ARBITRARY form plays a waveform loaded with the waveform package. It is
// ground until a waveform has been set.
package generator
