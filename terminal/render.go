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
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
)

// CSI sequences.
const (
	cursorHome = "\x1b[H"
	clearLine  = "\x1b[K"
	resetPen   = "\x1b[0m"
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
	clearTerm  = "\x1b[2J"
)

const halfBlock = "▀"

// sample returns the brightest pixel in the rectangle. thin traces would
// disappear if the pixels were averaged
func sample(img *image.RGBA, r image.Rectangle) color.RGBA {
	r = r.Intersect(img.Rect)
	if r.Empty() {
		return color.RGBA{}
	}

	best := img.RGBAAt(r.Min.X, r.Min.Y)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if int(c.R)+int(c.G)+int(c.B) > int(best.R)+int(best.G)+int(best.B) {
				best = c
			}
		}
	}
	return best
}

// cell returns the rectangle of the image covered by the virtual pixel at
// (x, y) in a grid of w by h virtual pixels
func cell(img *image.RGBA, x, y, w, h int) image.Rectangle {
	b := img.Rect
	x0 := b.Min.X + x*b.Dx()/w
	x1 := b.Min.X + (x+1)*b.Dx()/w
	y0 := b.Min.Y + y*b.Dy()/h
	y1 := b.Min.Y + (y+1)*b.Dy()/h
	return image.Rect(x0, y0, max(x1, x0+1), max(y1, y0+1))
}

// Render writes the image to the writer as rows of coloured half blocks.
// The output starts with the cursor home sequence and each row ends with a
// carriage return and newline so that it is correct in raw mode.
//
// Colour sequences are only written when the colour changes.
func Render(w io.Writer, img *image.RGBA, cols int, rows int) error {
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("terminal: cannot render to %dx%d cells", cols, rows)
	}

	b := bufio.NewWriter(w)
	b.WriteString(cursorHome)

	var fg, bg color.RGBA
	for r := range rows {
		first := true
		for c := range cols {
			top := sample(img, cell(img, c, r*2, cols, rows*2))
			bot := sample(img, cell(img, c, r*2+1, cols, rows*2))
			if first || top != fg {
				fmt.Fprintf(b, "\x1b[38;2;%d;%d;%dm", top.R, top.G, top.B)
				fg = top
			}
			if first || bot != bg {
				fmt.Fprintf(b, "\x1b[48;2;%d;%d;%dm", bot.R, bot.G, bot.B)
				bg = bot
			}
			first = false
			b.WriteString(halfBlock)
		}
		b.WriteString(resetPen)
		b.WriteString("\r\n")
	}

	return b.Flush()
}
