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

// Package terminal shows the oscilloscope screen in an ANSI terminal and
// maps single key presses to front panel controls.
//
// Each character cell is drawn with the upper half block character so that
// one cell covers two rows of the downsampled screen. The foreground colour
// is the upper row and the background colour is the lower row. Colours are
// written as 24-bit SGR sequences.
//
// The raw mode terminal is opened with github.com/pkg/term. The View type
// does not read from the terminal directly. It is given a channel of key
// presses, which the Terminal type can supply with the Keys() function.
package terminal
