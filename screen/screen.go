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

package screen

import (
	"image"
	"image/color"
	"math"
	"sync"
)

// Idle is the colour of the screen when no trace has been drawn.
var Idle = color.RGBA{R: 0, G: 86, B: 0, A: 255}

// Bright is the colour of segments drawn with DrawBrightTrace().
var Bright = color.RGBA{R: 0, G: 255, B: 0, A: 255}

// MinTraceBrightness is how much brighter than the idle colour the dimmest
// trace is.
const MinTraceBrightness = 30

// the amount each channel is reduced by a call to Darken()
const decay = 40

// PaletteSize is the number of colours in the speed palette.
const PaletteSize = 256

// Palette is the speed palette. Index zero is the colour of a segment that
// does not move and the last index is the colour of any segment with a
// squared length of PaletteSize-1 pixels or more.
var Palette [PaletteSize]color.RGBA

// darkenLUT is indexed by channel (red, green, blue) and channel value
var darkenLUT [3][256]uint8

func init() {
	c0 := float64(Idle.G) + MinTraceBrightness
	for d := range Palette {
		g := 255 - math.Sqrt(float64(d))*(255-c0)/math.Sqrt(PaletteSize-1)
		Palette[d] = color.RGBA{G: uint8(g), A: 255}
	}

	for c, idle := range []uint8{Idle.R, Idle.G, Idle.B} {
		for v := range 256 {
			if v <= int(idle) {
				darkenLUT[c][v] = uint8(v)
			} else {
				darkenLUT[c][v] = uint8(max(int(idle), v-decay))
			}
		}
	}
}

// Screen is the pixel buffer of the oscilloscope.
type Screen struct {
	crit   sync.Mutex
	img    *image.RGBA
	width  int
	height int
}

// NewScreen is the preferred method of initialisation for the Screen type. The
// screen is cleared to the idle colour.
func NewScreen(width int, height int) *Screen {
	scr := &Screen{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		width:  width,
		height: height,
	}
	scr.Clear()
	return scr
}

// Width of the screen in pixels.
func (scr *Screen) Width() int {
	return scr.width
}

// Height of the screen in pixels.
func (scr *Screen) Height() int {
	return scr.height
}

// Clear the screen to the idle colour.
func (scr *Screen) Clear() {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	for i := 0; i < len(scr.img.Pix); i += 4 {
		scr.img.Pix[i] = Idle.R
		scr.img.Pix[i+1] = Idle.G
		scr.img.Pix[i+2] = Idle.B
		scr.img.Pix[i+3] = Idle.A
	}
}

// Darken every pixel towards the idle colour. No channel is reduced below
// its idle value.
func (scr *Screen) Darken() {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	for i := 0; i < len(scr.img.Pix); i += 4 {
		scr.img.Pix[i] = darkenLUT[0][scr.img.Pix[i]]
		scr.img.Pix[i+1] = darkenLUT[1][scr.img.Pix[i+1]]
		scr.img.Pix[i+2] = darkenLUT[2][scr.img.Pix[i+2]]
	}
}

func (scr *Screen) onScreen(x int, y int) bool {
	return x >= 0 && x < scr.width && y >= 0 && y < scr.height
}

// DrawTrace draws a line segment in a colour that depends on its length. The
// segment is only drawn if at least one end is on the screen.
func (scr *Screen) DrawTrace(x0, y0, x1, y1 int) {
	if !scr.onScreen(x0, y0) && !scr.onScreen(x1, y1) {
		return
	}
	dx := x1 - x0
	dy := y1 - y0
	d := min(dx*dx+dy*dy, PaletteSize-1)

	scr.crit.Lock()
	defer scr.crit.Unlock()
	scr.line(x0, y0, x1, y1, Palette[d])
}

// DrawBrightTrace draws a line segment in the brightest colour. The segment
// is only drawn if at least one end is on the screen.
func (scr *Screen) DrawBrightTrace(x0, y0, x1, y1 int) {
	if !scr.onScreen(x0, y0) && !scr.onScreen(x1, y1) {
		return
	}

	scr.crit.Lock()
	defer scr.crit.Unlock()
	scr.line(x0, y0, x1, y1, Bright)
}

// line draws with Bresenham's algorithm. pixels off the screen are skipped.
// the critical section must be held
func (scr *Screen) line(x0, y0, x1, y1 int, col color.RGBA) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy > 0 {
		dy = -dy
	}
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		scr.plot(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// plot a single pixel in screen coordinates. the critical section must be
// held
func (scr *Screen) plot(x int, y int, col color.RGBA) {
	if !scr.onScreen(x, y) {
		return
	}
	i := scr.img.PixOffset(x, scr.height-1-y)
	scr.img.Pix[i] = col.R
	scr.img.Pix[i+1] = col.G
	scr.img.Pix[i+2] = col.B
	scr.img.Pix[i+3] = col.A
}

// At returns the colour of the pixel at the screen coordinates. Coordinates
// off the screen return the zero colour.
func (scr *Screen) At(x int, y int) color.RGBA {
	if !scr.onScreen(x, y) {
		return color.RGBA{}
	}
	scr.crit.Lock()
	defer scr.crit.Unlock()
	return scr.img.RGBAAt(x, scr.height-1-y)
}

// Lit returns the number of pixels that are not the idle colour.
func (scr *Screen) Lit() int {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	var n int
	for i := 0; i < len(scr.img.Pix); i += 4 {
		if scr.img.Pix[i] != Idle.R || scr.img.Pix[i+1] != Idle.G || scr.img.Pix[i+2] != Idle.B {
			n++
		}
	}
	return n
}

// Snapshot returns a copy of the screen. The origin of the image is at the
// top left.
func (scr *Screen) Snapshot() *image.RGBA {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	img := image.NewRGBA(scr.img.Rect)
	copy(img.Pix, scr.img.Pix)
	return img
}
