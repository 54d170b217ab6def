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

// Package screen implements the phosphor screen of the oscilloscope.
//
// The screen is a fixed size pixel buffer. Traces are drawn as straight line
// segments. The colour of a segment depends on its length: a beam that moves
// quickly across the screen leaves a dim trace and a beam that moves slowly
// leaves a bright trace. The Darken() function models the decay of the
// phosphor. Each call reduces every pixel towards the idle colour of the
// screen.
//
// Screen coordinates have their origin at the bottom left of the screen with
// y increasing upwards. The Snapshot() function returns an image in the usual
// image coordinates with the origin at the top left.
//
// All functions are safe to call from any goroutine.
package screen
