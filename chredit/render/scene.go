// Package render composes the images drawn by surfaces into a single frame.
//
// Surfaces draw into world space: each image is attached to the world box
// it covers. Backends rasterize the scene at whatever resolution they have
// (a terminal grid, a window texture, a PNG snapshot) with nearest-neighbor
// sampling, so the same scene serves every output.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/valerio/go-chredit/chredit/surface"
)

// Layer is an image placed over a world-space box.
type Layer struct {
	Box   surface.Box
	Image image.Image
}

// Scene is an ordered list of layers, drawn back to front.
type Scene struct {
	world      surface.Box
	background color.RGBA
	layers     []Layer
	caption    string
}

var _ surface.Target = (*Scene)(nil)

// NewScene creates an empty scene covering the given world box.
func NewScene(world surface.Box) *Scene {
	return &Scene{
		world:      world,
		background: color.RGBA{0, 0, 0, 0xFF},
	}
}

func (s *Scene) World() surface.Box {
	return s.world
}

func (s *Scene) Layers() []Layer {
	return s.layers
}

// Clear drops all layers, keeping the world box and caption.
func (s *Scene) Clear() {
	s.layers = s.layers[:0]
}

// Caption is a one line summary of the editor state shown by backends in a
// title or status bar.
func (s *Scene) Caption() string {
	return s.caption
}

func (s *Scene) SetCaption(caption string) {
	s.caption = caption
}

// DrawImage implements surface.Target.
func (s *Scene) DrawImage(box surface.Box, img image.Image) {
	if img == nil || img.Bounds().Empty() {
		return
	}
	s.layers = append(s.layers, Layer{Box: box, Image: img})
}

// Rasterize renders the scene into a width x height image. Fully transparent
// source pixels leave the layers below visible.
func (s *Scene) Rasterize(width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return dst
	}

	for i := 0; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = s.background.R
		dst.Pix[i+1] = s.background.G
		dst.Pix[i+2] = s.background.B
		dst.Pix[i+3] = s.background.A
	}

	for _, layer := range s.layers {
		s.drawLayer(dst, layer)
	}

	return dst
}

// PixelToWorld returns the world point at the center of pixel (x, y) of a
// width x height rasterization.
func (s *Scene) PixelToWorld(x, y, width, height int) surface.Vec2 {
	size := s.world.Size()
	return surface.Vec2{
		X: s.world.Min.X + (float64(x)+0.5)/float64(width)*size.X,
		Y: s.world.Min.Y + (float64(y)+0.5)/float64(height)*size.Y,
	}
}

func (s *Scene) drawLayer(dst *image.RGBA, layer Layer) {
	width, height := dst.Rect.Dx(), dst.Rect.Dy()
	world := s.world.Size()
	box := layer.Box.Size()
	if box.X <= 0 || box.Y <= 0 {
		return
	}

	// Destination pixel range covered by the layer.
	x0 := max(0, int(math.Floor((layer.Box.Min.X-s.world.Min.X)/world.X*float64(width))))
	x1 := min(width, int(math.Ceil((layer.Box.Max.X-s.world.Min.X)/world.X*float64(width))))
	y0 := max(0, int(math.Floor((layer.Box.Min.Y-s.world.Min.Y)/world.Y*float64(height))))
	y1 := min(height, int(math.Ceil((layer.Box.Max.Y-s.world.Min.Y)/world.Y*float64(height))))

	src := layer.Image.Bounds()
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p := s.PixelToWorld(x, y, width, height)
			u := (p.X - layer.Box.Min.X) / box.X
			v := (p.Y - layer.Box.Min.Y) / box.Y
			if u < 0 || u >= 1 || v < 0 || v >= 1 {
				continue
			}

			sx := src.Min.X + int(u*float64(src.Dx()))
			sy := src.Min.Y + int(v*float64(src.Dy()))
			c := color.RGBAModel.Convert(layer.Image.At(sx, sy)).(color.RGBA)
			if c.A == 0 {
				continue
			}
			dst.SetRGBA(x, y, c)
		}
	}
}
