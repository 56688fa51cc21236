package character

// The character data lives in two coordinate spaces that must never be
// mixed up:
//
//	Storage (indexed) space: bank-major. Address = bank*BankSize + y*BankWidth + x.
//	Both banks are stored one after the other, each as a 128x128 image.
//	Render space: the two banks side by side in one 256x128 image.
//	RenderOffset = y*RenderWidth + bank*BankWidth + x.
//
// Pixel is the bank-local coordinate shared by both; Address and
// RenderOffset are the only conversions into the flat buffers.

const (
	Banks        = 2
	TileSize     = 8
	TilesPerRow  = 16
	TilesPerBank = TilesPerRow * TilesPerRow
	TileCount    = TilesPerBank * Banks

	BankWidth  = TilesPerRow * TileSize
	BankHeight = TilesPerRow * TileSize
	BankSize   = BankWidth * BankHeight

	// IndexedSize is the length of the indexed (storage) buffer.
	IndexedSize = BankSize * Banks

	RenderWidth  = BankWidth * Banks
	RenderHeight = BankHeight
	RenderSize   = RenderWidth * RenderHeight

	// MaxValue is the largest 2-bit color value a pixel can hold.
	MaxValue = 3

	// Intensity is the render buffer step between two color values.
	Intensity = 255 / MaxValue
)

// Address is an offset into the indexed (storage) buffer.
type Address int

// RenderOffset is an offset into the side-by-side render buffer.
type RenderOffset int

// Pixel is a bank-local pixel coordinate, X and Y in [0, 128).
type Pixel struct {
	Bank int
	X, Y int
}

// Valid reports whether the pixel lies inside the character.
func (p Pixel) Valid() bool {
	return p.Bank >= 0 && p.Bank < Banks &&
		p.X >= 0 && p.X < BankWidth &&
		p.Y >= 0 && p.Y < BankHeight
}

// Address returns the storage offset of the pixel.
func (p Pixel) Address() Address {
	return Address(p.Bank*BankSize + p.Y*BankWidth + p.X)
}

// RenderOffset returns the render buffer offset of the pixel.
func (p Pixel) RenderOffset() RenderOffset {
	return RenderOffset(p.Y*RenderWidth + p.Bank*BankWidth + p.X)
}

// Point returns the pixel in render space coordinates.
func (p Pixel) Point() Point {
	return Point{X: p.Bank*BankWidth + p.X, Y: p.Y}
}

// Tile returns the tile containing the pixel and the pixel's offset inside it.
func (p Pixel) Tile() (ref TileRef, localX, localY int) {
	ref = TileRef{Bank: p.Bank, Col: p.X / TileSize, Row: p.Y / TileSize}
	return ref, p.X % TileSize, p.Y % TileSize
}

// PixelAt converts a storage address back into a pixel.
func PixelAt(addr Address) Pixel {
	a := int(addr)
	return Pixel{
		Bank: a / BankSize,
		X:    a % BankWidth,
		Y:    (a % BankSize) / BankWidth,
	}
}

// Point is a pixel coordinate in render space, X in [0, 256) and Y in [0, 128).
type Point struct {
	X, Y int
}

// Valid reports whether the point lies inside render space.
func (pt Point) Valid() bool {
	return pt.X >= 0 && pt.X < RenderWidth && pt.Y >= 0 && pt.Y < RenderHeight
}

// Pixel converts a render space point into a bank-local pixel.
func (pt Point) Pixel() Pixel {
	return Pixel{Bank: pt.X / BankWidth, X: pt.X % BankWidth, Y: pt.Y}
}

// TileRef addresses a tile by bank and its column/row in the bank's 16x16 grid.
type TileRef struct {
	Bank     int
	Col, Row int
}

// TileAt returns the tile with the given index (0-511, row-major per bank).
func TileAt(index int) TileRef {
	return TileRef{
		Bank: index / TilesPerBank,
		Col:  index % TilesPerRow,
		Row:  (index % TilesPerBank) / TilesPerRow,
	}
}

// Index returns the tile index (0-511).
func (t TileRef) Index() int {
	return t.Bank*TilesPerBank + t.Row*TilesPerRow + t.Col
}

// Pixel returns the pixel at the given offset inside the tile.
func (t TileRef) Pixel(localX, localY int) Pixel {
	return Pixel{
		Bank: t.Bank,
		X:    t.Col*TileSize + localX,
		Y:    t.Row*TileSize + localY,
	}
}
