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

package terminal_test

import (
	"image"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherscope/screen"
	"github.com/jetsetilly/gopherscope/terminal"
	"github.com/jetsetilly/gopherscope/test"
)

func idleImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, screen.Idle)
		}
	}
	return img
}

func TestRenderSingleCell(t *testing.T) {
	w := &strings.Builder{}
	err := terminal.Render(w, idleImage(2, 2), 1, 1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w.String(), "\x1b[H\x1b[38;2;0;86;0m\x1b[48;2;0;86;0m▀\x1b[0m\r\n")
}

func TestRenderBrightestWins(t *testing.T) {
	img := idleImage(4, 4)
	img.SetRGBA(1, 1, screen.Bright)

	w := &strings.Builder{}
	err := terminal.Render(w, img, 2, 1)
	test.DemandSuccess(t, err)

	// the first cell has a bright upper half. the second cell only changes
	// the foreground colour
	test.ExpectEquality(t, w.String(),
		"\x1b[H"+
			"\x1b[38;2;0;255;0m\x1b[48;2;0;86;0m▀"+
			"\x1b[38;2;0;86;0m▀"+
			"\x1b[0m\r\n")
}

func TestRenderRows(t *testing.T) {
	w := &strings.Builder{}
	err := terminal.Render(w, idleImage(40, 32), 10, 4)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Count(w.String(), "\r\n"), 4)
	test.ExpectEquality(t, strings.Count(w.String(), "▀"), 40)

	// more cells than pixels
	w.Reset()
	err = terminal.Render(w, idleImage(2, 2), 4, 4)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Count(w.String(), "▀"), 16)
}

func TestRenderErrors(t *testing.T) {
	w := &strings.Builder{}
	test.ExpectFailure(t, terminal.Render(w, idleImage(2, 2), 0, 1))
	test.ExpectFailure(t, terminal.Render(w, idleImage(2, 2), 1, 0))
	test.ExpectEquality(t, w.String(), "")
}
