package display

import "github.com/valerio/go-chredit/chredit/surface"

// RGBA pixel format constants
const (
	// RGBABytesPerPixel is the number of bytes per pixel in RGBA format
	RGBABytesPerPixel = 4
	// FullAlpha is the alpha value for fully opaque pixels
	FullAlpha = 255
)

// Window constants
const (
	// DefaultWindowWidth is the default window width in pixels
	DefaultWindowWidth = 960
	// DefaultWindowHeight is the default window height in pixels
	DefaultWindowHeight = 720
	// Aspect is the height/width ratio the world is laid out for
	Aspect = float64(DefaultWindowHeight) / float64(DefaultWindowWidth)
)

// World space constants. The visible world spans [-FrustumWidth, FrustumWidth]
// horizontally and [-FrustumHeight, FrustumHeight] vertically.
const (
	FrustumWidth  = 50.0
	FrustumHeight = FrustumWidth * Aspect
)

// World returns the visible world-space box.
func World() surface.Box {
	return surface.Box{
		Min: surface.Vec2{X: -FrustumWidth, Y: -FrustumHeight},
		Max: surface.Vec2{X: FrustumWidth, Y: FrustumHeight},
	}
}

// WindowToWorld converts a window-normalized point ([0,1]x[0,1], origin at the
// top-left corner) to world space. The input is clamped first.
func WindowToWorld(p surface.Vec2) surface.Vec2 {
	x := clamp01(p.X)
	y := clamp01(p.Y)
	return surface.Vec2{
		X: x*FrustumWidth*2 - FrustumWidth,
		Y: y*FrustumHeight*2 - FrustumHeight,
	}
}

// WorldToWindow is the inverse of WindowToWorld, without clamping.
func WorldToWindow(p surface.Vec2) surface.Vec2 {
	return surface.Vec2{
		X: (p.X + FrustumWidth) / (FrustumWidth * 2),
		Y: (p.Y + FrustumHeight) / (FrustumHeight * 2),
	}
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
