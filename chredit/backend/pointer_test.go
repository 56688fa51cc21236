package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/valerio/go-chredit/chredit/surface"
)

func TestPointerTracker(t *testing.T) {
	tests := []struct {
		name     string
		feed     func(p *PointerTracker)
		pressed  bool
		released bool
		down     bool
	}{
		{
			name:    "press",
			feed:    func(p *PointerTracker) { p.Primary(true) },
			pressed: true,
			down:    true,
		},
		{
			name:     "click within one frame",
			feed:     func(p *PointerTracker) { p.Primary(true); p.Primary(false) },
			pressed:  true,
			released: true,
		},
		{
			name: "repeated up is not a release",
			feed: func(p *PointerTracker) { p.Primary(false); p.Primary(false) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p PointerTracker
			tt.feed(&p)

			state := p.Frame()
			assert.Equal(t, tt.pressed, state.Pressed)
			assert.Equal(t, tt.released, state.Released)
			assert.Equal(t, tt.down, state.Down)
		})
	}
}

func TestPointerTrackerFrameClearsEdges(t *testing.T) {
	var p PointerTracker
	p.Move(0.25, 1.5)
	p.Primary(true)
	p.Scroll(1)
	p.Scroll(2)
	p.Drag(true)

	first := p.Frame()
	assert.Equal(t, surface.Vec2{X: 0.25, Y: 1}, first.Position)
	assert.True(t, first.Pressed)
	assert.Equal(t, 3.0, first.Scroll)

	second := p.Frame()
	assert.False(t, second.Pressed)
	assert.True(t, second.Down, "held state persists across frames")
	assert.True(t, second.Drag)
	assert.Zero(t, second.Scroll)
	assert.Equal(t, first.Position, second.Position)

	p.Primary(false)
	third := p.Frame()
	assert.True(t, third.Released)
	assert.False(t, third.Down)
}
