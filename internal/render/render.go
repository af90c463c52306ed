// Package render is an ambient debugging aid: it rasterizes a matrix
// snapshot to a PNG so a failing test or bench run can be inspected
// visually instead of squinting at packed hex rows. It has no bearing on
// search correctness. Text labels are drawn with golang.org/x/image's
// font.Drawer, the teacher's headless-compatible half of the font stack
// internal/ui/font.go otherwise pairs with Ebitengine.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/iitalics/botris-battle-bluefin/internal/matrix"
)

const (
	cellSize = 20
	gutterPx = 32
)

var (
	bgColor     = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	filledColor = color.RGBA{R: 44, G: 92, B: 196, A: 255}
	gutterText  = color.RGBA{R: 20, G: 20, B: 20, A: 255}
)

// WriteMatrix rasterizes mat (bottom row first, in keeping with the core's
// convention) to w as a PNG, one cellSize square per column, with a
// row-index gutter on the left.
func WriteMatrix(w io.Writer, mat matrix.Matrix) error {
	rows := mat.Len()
	if rows == 0 {
		rows = 1
	}

	width := gutterPx + matrix.Cols*cellSize
	height := rows * cellSize
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fillRect(img, 0, 0, width, height, bgColor)

	for y := 0; y < rows; y++ {
		bits := mat.Get(y)
		py := height - (y+1)*cellSize

		for x := 0; x < matrix.Cols; x++ {
			if bits&(1<<uint(x)) == 0 {
				continue
			}
			fillRect(img, gutterPx+x*cellSize+1, py+1, cellSize-2, cellSize-2, filledColor)
		}

		drawLabel(img, 2, py+cellSize-5, fmt.Sprintf("%d", y))
	}

	return png.Encode(w, img)
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.Color) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			img.Set(px, py, c)
		}
	}
}

func drawLabel(img *image.RGBA, x, y int, text string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(gutterText),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
