package chr

import (
	"github.com/valerio/go-chredit/chredit/bit"
	"github.com/valerio/go-chredit/chredit/character"
)

// TileRow represents one row of a tile pattern (8 pixels).
//
// Each pixel is a 2-bit color value split across two bit planes:
//
//	Plane 0: provides bit 0 of each pixel's color
//	Plane 1: provides bit 1 of each pixel's color
//
// Bit 7 represents the leftmost pixel, bit 0 the rightmost:
//
//	Bit:     7 6 5 4 3 2 1 0
//	Pixel:   0 1 2 3 4 5 6 7
//
// Example: plane bytes $3C and $7E represent a row:
//
//	Plane 0 (0x3C): 0 0 1 1 1 1 0 0
//	Plane 1 (0x7E): 0 1 1 1 1 1 1 0
//	               -----------------
//	Colors:         0 2 3 3 3 3 2 0
type TileRow struct {
	Plane0 byte
	Plane1 byte
}

// Pixel extracts the color value (0-3) of the pixel at column x (0-7).
func (r TileRow) Pixel(x int) uint8 {
	return bit.FromPlanes(bit.Column(x), r.Plane0, r.Plane1)
}

// Plane returns the byte of the given plane (0 or 1).
func (r TileRow) Plane(plane int) byte {
	if plane == 0 {
		return r.Plane0
	}
	return r.Plane1
}

// RowFromPixels packs 8 color values into a planar row. Values above 3 set
// no bits.
func RowFromPixels(pixels [TileSize]uint8) TileRow {
	var row TileRow
	for x, v := range pixels {
		if v > character.MaxValue {
			continue
		}
		if bit.PlaneBit(v, 0) {
			row.Plane0 = bit.Set(bit.Column(x), row.Plane0)
		}
		if bit.PlaneBit(v, 1) {
			row.Plane1 = bit.Set(bit.Column(x), row.Plane1)
		}
	}
	return row
}

// Tile represents a complete 8x8 tile pattern.
//
// On disk a tile occupies 16 bytes: the 8 plane 0 bytes of rows 0-7
// followed by the 8 plane 1 bytes of rows 0-7. This differs from formats
// interleaving both planes row by row.
type Tile struct {
	Rows [TileSize]TileRow
}

// Pixel returns the color value at (x, y), 0 outside the tile.
func (t *Tile) Pixel(x, y int) uint8 {
	if y < 0 || y >= TileSize || x < 0 || x >= TileSize {
		return 0
	}
	return t.Rows[y].Pixel(x)
}

// Bytes returns the 16 byte planar encoding of the tile.
func (t *Tile) Bytes() []byte {
	out := make([]byte, 0, TileBytes)
	for plane := 0; plane < 2; plane++ {
		for y := 0; y < TileSize; y++ {
			out = append(out, t.Rows[y].Plane(plane))
		}
	}
	return out
}

// TileFromBytes decodes a tile from its planar encoding. Missing bytes of a
// short slice read as zero.
func TileFromBytes(data []byte) Tile {
	at := func(i int) byte {
		if i < len(data) {
			return data[i]
		}
		return 0
	}

	var tile Tile
	for y := 0; y < TileSize; y++ {
		tile.Rows[y] = TileRow{
			Plane0: at(y),
			Plane1: at(TileSize + y),
		}
	}
	return tile
}
