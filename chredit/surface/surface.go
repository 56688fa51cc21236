// Package surface maps world-space points onto rectangular interactive
// regions (the canvas, the palette, the sample strip, buttons) and holds the
// zoom/pan state of zoomable views.
//
// Two spaces are involved:
//
//	World:   continuous 2D space, X grows right and Y grows down. The pointer
//	         is delivered in this space.
//	Surface: normalized [0,1]x[0,1] local coordinates of a surface, (0,0) at
//	         its top-left corner.
//
// Surface positions are stored with Y growing up (the renderer's convention),
// so the vertical axis of a position is flipped before comparing it to a
// world point.
package surface

import (
	"image"
	"math"
)

// Vec2 is a 2D vector in world or surface space.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// Outside is the sentinel returned by MapToSurface for points that miss the
// surface. Callers check IsOutside (X == -1) before using the coordinate.
var Outside = Vec2{-1, -1}

// IsOutside reports whether v is the "no hit" sentinel.
func (v Vec2) IsOutside() bool {
	return v.X == -1
}

// MapToSurface converts a world point into normalized coordinates of the
// surface centered at position with the given size scaled by zoom.
// For zoomable surfaces position must already be zoom-adjusted by the caller.
// Points on or beyond the edge return Outside.
func MapToSurface(point, position, size Vec2, zoom float64) Vec2 {
	position.Y = -position.Y

	dist := point.Sub(position)
	extent := size.Scale(zoom)

	if math.Abs(dist.X) < extent.X/2 && math.Abs(dist.Y) < extent.Y/2 {
		return Vec2{
			X: (dist.X + extent.X/2) / extent.X,
			Y: (dist.Y + extent.Y/2) / extent.Y,
		}
	}

	return Outside
}

// Box is an axis-aligned world-space rectangle.
type Box struct {
	Min, Max Vec2
}

// BoxOf returns the world-space box covered by a surface, using the same
// conventions as MapToSurface.
func BoxOf(position, size Vec2, zoom float64) Box {
	center := Vec2{position.X, -position.Y}
	half := size.Scale(zoom / 2)
	return Box{Min: center.Sub(half), Max: center.Add(half)}
}

// Size returns the extent of the box.
func (b Box) Size() Vec2 {
	return b.Max.Sub(b.Min)
}

// Center returns the center of the box in world space.
func (b Box) Center() Vec2 {
	return b.Min.Add(b.Size().Scale(0.5))
}

// Map returns the normalized coordinate of p inside the box, or Outside.
func (b Box) Map(p Vec2) Vec2 {
	c := b.Center()
	return MapToSurface(p, Vec2{c.X, -c.Y}, b.Size(), 1)
}

// Surface is a rectangular interactive region participating in hit-testing
// and drawing. Click and Release receive normalized surface coordinates and
// report whether the event changed any state.
type Surface interface {
	Position() Vec2
	Size() Vec2
	Click(at Vec2) bool
	Release(at Vec2) bool
	Draw(target Target, cursor Vec2) error
}

// Zoomable is implemented by surfaces whose position and size are scaled by
// a view zoom factor (the tile canvas).
type Zoomable interface {
	Zoom() float64
}

// Target receives the images produced by surfaces when drawing.
type Target interface {
	DrawImage(box Box, img image.Image)
}

// ZoomOf returns the zoom a surface is hit-tested and drawn with.
func ZoomOf(s Surface) float64 {
	if z, ok := s.(Zoomable); ok {
		return z.Zoom()
	}
	return 1
}

// Hit maps a world point onto the surface, accounting for zoom.
func Hit(s Surface, point Vec2) Vec2 {
	zoom := ZoomOf(s)
	return MapToSurface(point, s.Position().Scale(zoom), s.Size(), zoom)
}

// Bounds returns the world-space box a surface currently covers.
func Bounds(s Surface) Box {
	zoom := ZoomOf(s)
	return BoxOf(s.Position().Scale(zoom), s.Size(), zoom)
}
