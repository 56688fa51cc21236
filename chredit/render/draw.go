package render

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	Black = color.RGBA{0, 0, 0, 0xFF}
	White = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
)

// Contrast returns black or white, whichever stands out on c.
func Contrast(c color.Color) color.RGBA {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return White
	}
	l, _, _ := cf.Lab()
	if l > 0.5 {
		return Black
	}
	return White
}

// Fill paints rect with c.
func Fill(img *image.RGBA, rect image.Rectangle, c color.RGBA) {
	rect = rect.Intersect(img.Rect)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// Outline draws a one pixel border along the inside of rect.
func Outline(img *image.RGBA, rect image.Rectangle, c color.RGBA) {
	if rect.Empty() {
		return
	}
	Fill(img, image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+1), c)
	Fill(img, image.Rect(rect.Min.X, rect.Max.Y-1, rect.Max.X, rect.Max.Y), c)
	Fill(img, image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+1, rect.Max.Y), c)
	Fill(img, image.Rect(rect.Max.X-1, rect.Min.Y, rect.Max.X, rect.Max.Y), c)
}

// Cells returns the pixel rectangle of cell (col, row) in a grid of square
// cells of the given side.
func Cells(col, row, side int) image.Rectangle {
	return image.Rect(col*side, row*side, (col+1)*side, (row+1)*side)
}
