package chredit

import (
	"image"
	"log/slog"

	"github.com/valerio/go-chredit/chredit/character"
	"github.com/valerio/go-chredit/chredit/display"
	"github.com/valerio/go-chredit/chredit/surface"
)

// Canvas is the zoomable surface showing both banks side by side. Clicks
// paint with the pixel tool or start a shape; releases commit the shape.
type Canvas struct {
	editor *Editor
	view   *surface.View
	img    *image.RGBA
}

var (
	_ surface.Surface  = (*Canvas)(nil)
	_ surface.Zoomable = (*Canvas)(nil)
)

func newCanvas(e *Editor) *Canvas {
	return &Canvas{
		editor: e,
		view:   surface.NewView(display.CanvasPosition),
		img:    image.NewRGBA(image.Rect(0, 0, character.RenderWidth, character.RenderHeight)),
	}
}

func (c *Canvas) Position() surface.Vec2 { return c.view.Position() }
func (c *Canvas) Size() surface.Vec2     { return display.CanvasSize }
func (c *Canvas) Zoom() float64          { return c.view.ZoomLevel() }

// Click paints the pixel under at with the pixel tool. With a shape tool a
// fresh press records the start point of the shape.
func (c *Canvas) Click(at surface.Vec2) bool {
	e := c.editor

	if _, ok := e.tool.Shape(); ok {
		if !e.pressed || e.plotting {
			return true
		}
		p, err := character.Resolve(at.X, at.Y)
		if err != nil {
			slog.Debug("Shape start outside the sheet", "error", err)
			return true
		}
		e.plotStart = p.Point()
		e.plotting = true
		return true
	}

	p, err := e.buf.Paint(at.X, at.Y, e.pal.EditColor())
	if err != nil {
		slog.Warn("Failed to paint pixel", "error", err)
		return true
	}
	slog.Debug("Painted pixel", "bank", p.Bank, "x", p.X, "y", p.Y)
	return true
}

// Release commits the shape in progress, ending at at.
func (c *Canvas) Release(at surface.Vec2) bool {
	e := c.editor
	if !e.plotting {
		return false
	}
	shape, ok := e.tool.Shape()
	if !ok {
		return false
	}

	end, err := character.Resolve(at.X, at.Y)
	if err != nil {
		slog.Debug("Shape end outside the sheet", "error", err)
		return true
	}

	written, err := e.buf.Plot(shape, e.plotStart, end.Point(), e.pal.EditColor())
	if err != nil {
		slog.Warn("Failed to plot shape", "shape", shape, "error", err)
		return true
	}
	slog.Debug("Plotted shape", "shape", shape, "from", e.plotStart, "to", end.Point(), "pixels", written)
	return true
}

// Draw renders the sheet through the active sub-palette. While a shape is
// being plotted its outline up to the cursor is drawn on top.
func (c *Canvas) Draw(target surface.Target, cursor surface.Vec2) error {
	c.paint()

	e := c.editor
	if shape, ok := e.tool.Shape(); ok && e.plotting {
		at := surface.Hit(c, cursor)
		if end, err := character.Resolve(at.X, at.Y); err == nil {
			c.overlay(shape, e.plotStart, end.Point())
		}
	}

	target.DrawImage(surface.Bounds(c), c.img)
	return nil
}

// DrawPreview renders the sheet, unzoomed and scaled down, in the bottom-left
// corner.
func (c *Canvas) DrawPreview(target surface.Target) {
	c.paint()
	target.DrawImage(surface.BoxOf(display.PreviewPosition(), display.CanvasSize, display.PreviewZoom), c.img)
}

func (c *Canvas) paint() {
	colors := c.editor.pal.ActivePalette()
	render := c.editor.buf.Render()
	for i, v := range render {
		col := colors[v/character.Intensity]
		c.img.Pix[i*4] = col.R
		c.img.Pix[i*4+1] = col.G
		c.img.Pix[i*4+2] = col.B
		c.img.Pix[i*4+3] = display.FullAlpha
	}
}

func (c *Canvas) overlay(shape character.Shape, from, to character.Point) {
	col := c.editor.pal.ActivePalette()[c.editor.pal.EditColor()]
	for _, pt := range shape.Points(from, to) {
		if pt.Valid() {
			c.img.SetRGBA(pt.X, pt.Y, col)
		}
	}
}
