package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewZoomClamp(t *testing.T) {
	v := NewView(Vec2{})
	assert.Equal(t, MinZoom, v.ZoomLevel())

	for i := 0; i < 20; i++ {
		v.Zoom(100)
		assert.LessOrEqual(t, v.ZoomLevel(), MaxZoom)
	}
	assert.Equal(t, MaxZoom, v.ZoomLevel())

	for i := 0; i < 20; i++ {
		v.Zoom(-100)
		assert.GreaterOrEqual(t, v.ZoomLevel(), MinZoom)
	}
	assert.Equal(t, MinZoom, v.ZoomLevel())
}

func TestViewZoomStep(t *testing.T) {
	v := NewView(Vec2{})
	v.Zoom(10)
	assert.InDelta(t, 1.5, v.ZoomLevel(), 1e-9)

	v.SetZoom(v.ZoomLevel() + 1)
	assert.InDelta(t, 2.5, v.ZoomLevel(), 1e-9)

	v.SetZoom(0.2)
	assert.Equal(t, MinZoom, v.ZoomLevel())
}

func TestViewPan(t *testing.T) {
	v := NewView(Vec2{0, 0})
	v.Pan(Vec2{4, 2})
	assert.Equal(t, Vec2{4, -2}, v.Position())

	v.SetZoom(4)
	v.Pan(Vec2{4, 2})
	assert.Equal(t, Vec2{5, -2.5}, v.Position())
}
