package display

import "github.com/valerio/go-chredit/chredit/surface"

// Surface layout. Positions are surface centers with Y growing up, the
// convention expected by surface.MapToSurface.
var (
	// CanvasSize covers the whole frustum width: both banks side by side at
	// zoom 1.
	CanvasSize     = surface.Vec2{X: FrustumWidth * 2, Y: FrustumWidth}
	CanvasPosition = surface.Vec2{}

	// PaletteSize is a third of the world width, 16x4 square cells.
	PaletteSize     = surface.Vec2{X: FrustumWidth * 2 / 3, Y: FrustumWidth * 2 / 3 / 16 * 4}
	PalettePosition = surface.Vec2{
		X: -FrustumWidth + PaletteSize.X/2,
		Y: -FrustumHeight + PaletteSize.Y/2,
	}

	// SamplesSize is a third of the world width, two rows of 13 cells.
	SamplesSize     = surface.Vec2{X: FrustumWidth * 2 / 3, Y: FrustumWidth * 2 / 3 / 13 * 2}
	SamplesPosition = surface.Vec2{
		X: FrustumWidth - SamplesSize.X/2,
		Y: -FrustumHeight + SamplesSize.Y/2,
	}

	// ButtonSize is the side of a square tool button.
	ButtonSize = surface.Vec2{X: FrustumWidth * 2 / 32, Y: FrustumWidth * 2 / 32}

	// PreviewZoom is the scale of the character sheet shown outside
	// character mode.
	PreviewZoom = 0.5
)

// ButtonPosition returns the center of the button in slot index. Buttons are
// laid out left to right between the palette and the sample strip, along the
// bottom edge.
func ButtonPosition(index int) surface.Vec2 {
	return surface.Vec2{
		X: -FrustumWidth + ButtonSize.X/2 + ButtonSize.X*float64(index) + PaletteSize.X,
		Y: -FrustumHeight + ButtonSize.Y/2,
	}
}

// PreviewPosition is the center of the character sheet preview, anchored to
// the bottom-left corner.
func PreviewPosition() surface.Vec2 {
	size := CanvasSize.Scale(PreviewZoom)
	return surface.Vec2{
		X: -FrustumWidth + size.X/2,
		Y: -FrustumHeight + size.Y/2,
	}
}
