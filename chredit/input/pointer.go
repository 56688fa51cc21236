package input

import "github.com/valerio/go-chredit/chredit/surface"

// Pointer is the mouse state collected by a backend during one frame.
type Pointer struct {
	// Position is window-normalized, [0,1]x[0,1] with the origin at the
	// top-left corner, already clamped.
	Position surface.Vec2

	Pressed  bool // primary button went down this frame
	Released bool // primary button went up this frame
	Down     bool // primary button is held at the end of the frame

	// Drag is true while the pan gesture (drag key or secondary button) is
	// held.
	Drag bool

	// Scroll is the signed wheel delta accumulated this frame.
	Scroll float64
}
