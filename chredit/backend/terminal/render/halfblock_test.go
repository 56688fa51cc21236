package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHalfBlocks(t *testing.T) {
	red := color.RGBA{0xFF, 0, 0, 0xFF}
	blue := color.RGBA{0, 0, 0xFF, 0xFF}
	black := color.RGBA{0, 0, 0, 0xFF}

	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	img.SetRGBA(0, 0, red)
	img.SetRGBA(0, 1, blue)
	img.SetRGBA(1, 0, red)
	img.SetRGBA(1, 1, red)
	img.SetRGBA(0, 2, blue)
	img.SetRGBA(1, 2, black)

	rows := HalfBlocks(img)
	require.Len(t, rows, 2)
	require.Len(t, rows[0], 2)

	assert.Equal(t, Cell{Rune: UpperHalfBlock, Fg: red, Bg: blue}, rows[0][0])
	assert.Equal(t, Cell{Rune: ' ', Fg: red, Bg: red}, rows[0][1])
	assert.Equal(t, Cell{Rune: UpperHalfBlock, Fg: blue, Bg: black}, rows[1][0])
	assert.Equal(t, ' ', rows[1][1].Rune)
}
