package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapToSurface(t *testing.T) {
	size := Vec2{100, 50}

	tests := []struct {
		name     string
		point    Vec2
		position Vec2
		zoom     float64
		expected Vec2
	}{
		{
			name:     "center maps to the middle",
			point:    Vec2{0, 0},
			position: Vec2{0, 0},
			zoom:     1,
			expected: Vec2{0.5, 0.5},
		},
		{
			name:     "near top-left corner",
			point:    Vec2{-49, -24},
			position: Vec2{0, 0},
			zoom:     1,
			expected: Vec2{0.01, 0.02},
		},
		{
			name:     "vertical position is flipped",
			point:    Vec2{0, -10},
			position: Vec2{0, 10},
			zoom:     1,
			expected: Vec2{0.5, 0.5},
		},
		{
			name:     "zoom widens the box",
			point:    Vec2{75, 0},
			position: Vec2{0, 0},
			zoom:     2,
			expected: Vec2{0.875, 0.5},
		},
		{
			name:     "edge is outside",
			point:    Vec2{50, 0},
			position: Vec2{0, 0},
			zoom:     1,
			expected: Outside,
		},
		{
			name:     "outside vertically only",
			point:    Vec2{0, 30},
			position: Vec2{0, 0},
			zoom:     1,
			expected: Outside,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MapToSurface(tt.point, tt.position, size, tt.zoom)
			assert.InDelta(t, tt.expected.X, result.X, 1e-9)
			assert.InDelta(t, tt.expected.Y, result.Y, 1e-9)
		})
	}
}

func TestMapToSurfaceSentinel(t *testing.T) {
	size := Vec2{10, 10}

	for _, zoom := range []float64{1, 2.5, 24} {
		half := size.X / 2 * zoom
		for _, p := range []Vec2{{half + 0.01, 0}, {0, half + 0.01}, {-half - 0.01, 0}, {0, -half - 1}} {
			assert.True(t, MapToSurface(p, Vec2{}, size, zoom).IsOutside(), "zoom %v point %v", zoom, p)
		}

		for _, p := range []Vec2{{half - 0.01, 0}, {0, half - 0.01}, {-half + 0.01, -half + 0.01}} {
			m := MapToSurface(p, Vec2{}, size, zoom)
			assert.False(t, m.IsOutside())
			assert.True(t, m.X >= 0 && m.X <= 1, "x in range: %v", m.X)
			assert.True(t, m.Y >= 0 && m.Y <= 1, "y in range: %v", m.Y)
		}
	}
}

func TestBoxOfMatchesMapToSurface(t *testing.T) {
	position := Vec2{10, 5}
	size := Vec2{20, 10}
	box := BoxOf(position, size, 2)

	assert.Equal(t, Vec2{-10, -15}, box.Min)
	assert.Equal(t, Vec2{30, 5}, box.Max)

	p := Vec2{0, -10}
	assert.Equal(t, MapToSurface(p, position, size, 2), box.Map(p))
	assert.True(t, box.Map(Vec2{31, 0}).IsOutside())
}

type fakeSurface struct {
	position, size Vec2
	zoom           float64
}

func (f *fakeSurface) Position() Vec2          { return f.position }
func (f *fakeSurface) Size() Vec2              { return f.size }
func (f *fakeSurface) Click(Vec2) bool         { return false }
func (f *fakeSurface) Release(Vec2) bool       { return false }
func (f *fakeSurface) Draw(Target, Vec2) error { return nil }
func (f *fakeSurface) Zoom() float64           { return f.zoom }

func TestHitUsesZoom(t *testing.T) {
	s := &fakeSurface{position: Vec2{2, 0}, size: Vec2{10, 10}, zoom: 2}

	// Zoom-adjusted center is (4, 0), extent 20.
	m := Hit(s, Vec2{4, 0})
	assert.InDelta(t, 0.5, m.X, 1e-9)
	assert.InDelta(t, 0.5, m.Y, 1e-9)
	assert.Equal(t, BoxOf(Vec2{4, 0}, Vec2{10, 10}, 2), Bounds(s))
}
