package surface

const (
	MinZoom = 1.0
	MaxZoom = 24.0

	// ZoomFactor scales raw scroll deltas into zoom increments.
	ZoomFactor = 0.05
)

// View holds the zoom factor and world position of a zoomable surface.
// It is mutated by scroll and drag gestures and read when hit-testing and
// rendering.
type View struct {
	zoom     float64
	position Vec2
}

// NewView creates a view at the given position with zoom 1.
func NewView(position Vec2) *View {
	return &View{
		zoom:     MinZoom,
		position: position,
	}
}

// Zoom applies a scroll delta: zoom = clamp(zoom + delta*ZoomFactor).
func (v *View) Zoom(delta float64) {
	v.SetZoom(v.zoom + delta*ZoomFactor)
}

// SetZoom sets an absolute zoom factor, clamped to [MinZoom, MaxZoom].
func (v *View) SetZoom(zoom float64) {
	switch {
	case zoom < MinZoom:
		zoom = MinZoom
	case zoom > MaxZoom:
		zoom = MaxZoom
	}
	v.zoom = zoom
}

// Pan moves the view by a world-space pointer displacement. The displacement
// is divided by the zoom and the vertical axis is flipped.
func (v *View) Pan(displacement Vec2) {
	d := displacement.Scale(1 / v.zoom)
	v.position = v.position.Add(Vec2{d.X, -d.Y})
}

func (v *View) ZoomLevel() float64 {
	return v.zoom
}

func (v *View) Position() Vec2 {
	return v.position
}
