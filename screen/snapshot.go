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
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ErrFileExists is returned by SavePNG() if the file already exists.
var ErrFileExists = errors.New("file already exists")

// the number of divisions on the graticule
const (
	DivisionsX = 10
	DivisionsY = 8
)

// Graticule is the colour of the graticule lines in a still image.
var Graticule = color.RGBA{R: 40, G: 130, B: 40, A: 255}

// the height of the strip below the screen containing the caption
const captionHeight = 20

// Image returns a copy of the screen with the graticule drawn over it. If
// the caption is not empty then the image is extended at the bottom with a
// strip containing the caption.
func (scr *Screen) Image(caption string) *image.RGBA {
	snap := scr.Snapshot()
	b := snap.Bounds()

	h := b.Dy()
	if caption != "" {
		h += captionHeight
	}
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{A: 255}), image.Point{}, draw.Src)
	draw.Draw(img, b, snap, image.Point{}, draw.Src)

	for i := 0; i <= DivisionsX; i++ {
		x := i * (b.Dx() - 1) / DivisionsX
		for y := 0; y < b.Dy(); y++ {
			lighten(img, x, y, Graticule)
		}
	}
	for j := 0; j <= DivisionsY; j++ {
		y := j * (b.Dy() - 1) / DivisionsY
		for x := 0; x < b.Dx(); x++ {
			lighten(img, x, y, Graticule)
		}
	}

	if caption != "" {
		dr := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(Bright),
			Face: basicfont.Face7x13,
			Dot:  fixed.Point26_6{X: fixed.I(4), Y: fixed.I(b.Dy() + captionHeight - 5)},
		}
		dr.DrawString(caption)
	}

	return img
}

// lighten sets each channel of the pixel to the brighter of the current value
// and the colour
func lighten(img *image.RGBA, x int, y int, col color.RGBA) {
	c := img.RGBAAt(x, y)
	img.SetRGBA(x, y, color.RGBA{
		R: max(c.R, col.R),
		G: max(c.G, col.G),
		B: max(c.B, col.B),
		A: 255,
	})
}

// SavePNG writes a still image of the screen to a new PNG file. The file must
// not already exist.
func (scr *Screen) SavePNG(filename string, caption string) (rerr error) {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("screen: %w: %s", ErrFileExists, filename)
		}
		return fmt.Errorf("screen: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("screen: %w", err)
		}
	}()

	err = png.Encode(f, scr.Image(caption))
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}

	return nil
}
