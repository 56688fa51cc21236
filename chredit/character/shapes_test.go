package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePoints(t *testing.T) {
	tests := []struct {
		name     string
		from, to Point
		expected []Point
	}{
		{"single point", Point{3, 3}, Point{3, 3}, []Point{{3, 3}}},
		{"horizontal", Point{0, 0}, Point{3, 0}, []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"vertical upwards", Point{1, 2}, Point{1, 0}, []Point{{1, 2}, {1, 1}, {1, 0}}},
		{"diagonal", Point{0, 0}, Point{2, 2}, []Point{{0, 0}, {1, 1}, {2, 2}}},
		{"shallow slope", Point{0, 0}, Point{4, 2}, []Point{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Line.Points(tt.from, tt.to))
		})
	}
}

func TestRectanglePoints(t *testing.T) {
	frame := RectangleFrame.Points(Point{2, 2}, Point{0, 0})
	assert.Len(t, frame, 8)
	assert.NotContains(t, frame, Point{1, 1})

	fill := RectangleFill.Points(Point{0, 0}, Point{2, 2})
	assert.Len(t, fill, 9)
	assert.Contains(t, fill, Point{1, 1})
}

func TestEllipsePoints(t *testing.T) {
	frame := EllipseFrame.Points(Point{0, 0}, Point{4, 4})

	for _, pt := range []Point{{0, 2}, {4, 2}, {2, 0}, {2, 4}} {
		assert.Contains(t, frame, pt)
	}
	for _, pt := range frame {
		assert.True(t, pt.X >= 0 && pt.X <= 4 && pt.Y >= 0 && pt.Y <= 4, "point %v inside the box", pt)
		// symmetric around the center
		assert.Contains(t, frame, Point{4 - pt.X, pt.Y})
		assert.Contains(t, frame, Point{pt.X, 4 - pt.Y})
	}
	assert.NotContains(t, frame, Point{2, 2})
	assert.NotContains(t, frame, Point{0, 0})

	fill := EllipseFill.Points(Point{4, 4}, Point{0, 0})
	assert.Contains(t, fill, Point{2, 2})
	for _, pt := range frame {
		assert.Contains(t, fill, pt)
	}

	assert.Equal(t, []Point{{5, 5}}, EllipseFrame.Points(Point{5, 5}, Point{5, 5}))
}

func TestPlotClipsAndSyncsRender(t *testing.T) {
	b := New()

	// line across the bank split and off the bottom edge
	n, err := b.Plot(Line, Point{126, 126}, Point{130, 130}, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Equal(t, uint8(3), b.At(Pixel{Bank: 0, X: 126, Y: 126}))
	assert.Equal(t, uint8(3), b.At(Pixel{Bank: 0, X: 127, Y: 127}))

	render := b.RenderImage()
	assert.Equal(t, uint8(255), render.GrayAt(127, 127).Y)

	n, err = b.Plot(RectangleFill, Point{127, 0}, Point{128, 1}, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, uint8(1), b.At(Pixel{Bank: 1, X: 0, Y: 1}))
	assert.Equal(t, uint8(85), b.RenderImage().GrayAt(128, 1).Y)

	_, err = b.Plot(Line, Point{0, 0}, Point{1, 1}, 9)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "ellipse fill", EllipseFill.String())
	assert.Equal(t, "shape(42)", Shape(42).String())
}
