package backend

import (
	"github.com/valerio/go-chredit/chredit/input"
	"github.com/valerio/go-chredit/chredit/surface"
)

// PointerTracker folds platform mouse events into the per-frame pointer state.
// Backends feed it during polling and call Frame once per Update.
type PointerTracker struct {
	state input.Pointer
}

// Move records a new window-normalized position. Coordinates are clamped.
func (p *PointerTracker) Move(x, y float64) {
	p.state.Position = surface.Vec2{X: clamp01(x), Y: clamp01(y)}
}

// Primary records the primary button state, flagging edges.
func (p *PointerTracker) Primary(down bool) {
	if down && !p.state.Down {
		p.state.Pressed = true
	}
	if !down && p.state.Down {
		p.state.Released = true
	}
	p.state.Down = down
}

// Drag records whether the pan gesture is held.
func (p *PointerTracker) Drag(held bool) {
	p.state.Drag = held
}

// Scroll accumulates wheel movement.
func (p *PointerTracker) Scroll(delta float64) {
	p.state.Scroll += delta
}

// Frame returns the pointer state for the frame and clears the edge flags
// and the scroll accumulator.
func (p *PointerTracker) Frame() input.Pointer {
	state := p.state
	p.state.Pressed = false
	p.state.Released = false
	p.state.Scroll = 0
	return state
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
