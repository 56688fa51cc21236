// Package character holds the editable tile data of both banks.
//
// The indexed buffer stores one 2-bit color value per pixel in storage order
// and is the source of truth. The render buffer is derived from it: one
// intensity byte (value * 85) per pixel with both banks side by side, ready
// to be uploaded as a 256x128 single-channel image. Every mutation updates
// both before returning.
package character

import (
	"errors"
	"fmt"
	"image"
	"math"
)

var (
	// ErrInvalidBufferSize is returned when a buffer of the wrong length is supplied.
	ErrInvalidBufferSize = errors.New("invalid buffer size")
	// ErrOutOfRange is returned for coordinates outside the character.
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrInvalidValue is returned for color values above MaxValue.
	ErrInvalidValue = errors.New("invalid color value")
)

// Buffer is the character: two banks of 256 tiles.
type Buffer struct {
	indexed []byte
	render  []byte
}

// New creates an empty character, every pixel set to 0.
func New() *Buffer {
	return &Buffer{
		indexed: make([]byte, IndexedSize),
		render:  make([]byte, RenderSize),
	}
}

// Edit writes value into the pixel at (localX, localY) of the tile at
// (tileX, tileY) in the given bank.
func (b *Buffer) Edit(bank, tileX, tileY, localX, localY int, value uint8) error {
	if tileX < 0 || tileX >= TilesPerRow || tileY < 0 || tileY >= TilesPerRow ||
		localX < 0 || localX >= TileSize || localY < 0 || localY >= TileSize {
		return fmt.Errorf("tile (%d, %d) pixel (%d, %d): %w", tileX, tileY, localX, localY, ErrOutOfRange)
	}

	ref := TileRef{Bank: bank, Col: tileX, Row: tileY}
	return b.Set(ref.Pixel(localX, localY), value)
}

// Set writes value into a pixel and updates its render byte.
func (b *Buffer) Set(p Pixel, value uint8) error {
	if !p.Valid() {
		return fmt.Errorf("pixel %+v: %w", p, ErrOutOfRange)
	}
	if value > MaxValue {
		return fmt.Errorf("value %d: %w", value, ErrInvalidValue)
	}

	b.indexed[p.Address()] = value
	b.render[p.RenderOffset()] = Intensity * value
	return nil
}

// At returns the color value of a pixel, 0 for pixels outside the character.
func (b *Buffer) At(p Pixel) uint8 {
	if !p.Valid() {
		return 0
	}
	return b.indexed[p.Address()]
}

// Resolve maps a normalized canvas coordinate, covering both banks side by
// side, to a pixel. The right half of the canvas is bank 1.
func Resolve(nx, ny float64) (Pixel, error) {
	if nx < 0 || nx > 1 || ny < 0 || ny > 1 {
		return Pixel{}, fmt.Errorf("canvas coordinate (%v, %v): %w", nx, ny, ErrOutOfRange)
	}

	bank := 0
	localX := nx
	if nx > 0.5 {
		bank = 1
		localX = nx - 0.5
	}
	localX *= 2

	p := Pixel{
		Bank: bank,
		X:    int(math.Floor(localX * BankWidth)),
		Y:    int(math.Floor(ny * BankHeight)),
	}
	if !p.Valid() {
		return Pixel{}, fmt.Errorf("canvas coordinate (%v, %v): %w", nx, ny, ErrOutOfRange)
	}

	return p, nil
}

// Paint resolves a normalized canvas coordinate and writes value into it.
func (b *Buffer) Paint(nx, ny float64, value uint8) (Pixel, error) {
	p, err := Resolve(nx, ny)
	if err != nil {
		return Pixel{}, err
	}
	return p, b.Set(p, value)
}

// Load replaces the whole indexed buffer and regenerates the render buffer.
// Nothing is modified if raw has the wrong length or holds invalid values.
func (b *Buffer) Load(raw []byte) error {
	if len(raw) != IndexedSize {
		return fmt.Errorf("got %d bytes, expected %d: %w", len(raw), IndexedSize, ErrInvalidBufferSize)
	}
	for i, v := range raw {
		if v > MaxValue {
			return fmt.Errorf("value %d at address %d: %w", v, i, ErrInvalidValue)
		}
	}

	copy(b.indexed, raw)
	b.refresh()
	return nil
}

// Export returns a copy of the indexed buffer.
func (b *Buffer) Export() []byte {
	out := make([]byte, IndexedSize)
	copy(out, b.indexed)
	return out
}

// Render returns a copy of the render buffer.
func (b *Buffer) Render() []byte {
	out := make([]byte, RenderSize)
	copy(out, b.render)
	return out
}

// RenderImage returns a copy of the render buffer as a grayscale image.
func (b *Buffer) RenderImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, RenderWidth, RenderHeight))
	copy(img.Pix, b.render)
	return img
}

// refresh regenerates the whole render buffer from the indexed buffer.
func (b *Buffer) refresh() {
	for bank := 0; bank < Banks; bank++ {
		for y := 0; y < BankHeight; y++ {
			for x := 0; x < BankWidth; x++ {
				p := Pixel{Bank: bank, X: x, Y: y}
				b.render[p.RenderOffset()] = Intensity * b.indexed[p.Address()]
			}
		}
	}
}
