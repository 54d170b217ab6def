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

// Package controls holds the front panel values of the simulated instruments.
// Every control is safe to read from one goroutine while being set from
// another. The render loop reads controls once per tick and the shell sets
// them whenever the user turns a knob.
//
// There are three types of control. A Potentiometer is a continuous value in
// the range [0,1]. A Selector is an index into a list of labelled options. A
// Switch is on or off.
//
// Controls can be given a name and collected in a Registry. Named controls can
// be set from strings, which is how bench files and the command line change
// them.
package controls
