package render

import (
	"image"
	"image/color"
)

// UpperHalfBlock is drawn with the top pixel as foreground and the bottom
// pixel as background, packing two pixel rows in one text row.
const UpperHalfBlock = '▀'

// Cell is one terminal cell of a half-block rendering.
type Cell struct {
	Rune rune
	Fg   color.RGBA
	Bg   color.RGBA
}

// HalfBlocks converts an image to rows of cells, two pixel rows per cell row.
// An odd last pixel row is paired with black.
func HalfBlocks(img *image.RGBA) [][]Cell {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	black := color.RGBA{0, 0, 0, 0xFF}

	rows := make([][]Cell, (height+1)/2)
	for row := range rows {
		rows[row] = make([]Cell, width)
		for x := 0; x < width; x++ {
			top := img.RGBAAt(bounds.Min.X+x, bounds.Min.Y+row*2)
			bottom := black
			if row*2+1 < height {
				bottom = img.RGBAAt(bounds.Min.X+x, bounds.Min.Y+row*2+1)
			}

			cell := Cell{Rune: UpperHalfBlock, Fg: top, Bg: bottom}
			if top == bottom {
				cell.Rune = ' '
			}
			rows[row][x] = cell
		}
	}

	return rows
}
