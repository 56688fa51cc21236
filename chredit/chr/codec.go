// Package chr converts the character between its indexed form and the
// planar CHR binary format: 512 tiles of 16 bytes, bank 0 first, tiles
// row-major inside each bank.
package chr

import (
	"fmt"

	"github.com/valerio/go-chredit/chredit/character"
)

const (
	TileSize  = character.TileSize
	TileBytes = TileSize * 2

	// FileSize is the size of a complete CHR image (8KB).
	FileSize = character.TileCount * TileBytes
)

// Encode serializes an indexed buffer. Bytes are produced in the fixed order
// bank, tile row, tile column, plane, pixel row.
func Encode(indexed []byte) ([]byte, error) {
	if len(indexed) != character.IndexedSize {
		return nil, fmt.Errorf("encode: got %d bytes, expected %d: %w", len(indexed), character.IndexedSize, character.ErrInvalidBufferSize)
	}

	out := make([]byte, 0, FileSize)
	for bank := 0; bank < character.Banks; bank++ {
		for row := 0; row < character.TilesPerRow; row++ {
			for col := 0; col < character.TilesPerRow; col++ {
				tile := readTile(indexed, character.TileRef{Bank: bank, Col: col, Row: row})
				out = append(out, tile.Bytes()...)
			}
		}
	}

	return out, nil
}

// Decode rebuilds an indexed buffer from CHR bytes. Tiles are placed back
// using storage addressing, the same as Encode. Data shorter than FileSize
// leaves the missing pixels at 0; extra bytes are ignored.
func Decode(data []byte) []byte {
	indexed := make([]byte, character.IndexedSize)

	for t := 0; t < character.TileCount; t++ {
		offset := t * TileBytes
		if offset >= len(data) {
			break
		}
		end := offset + TileBytes
		if end > len(data) {
			end = len(data)
		}

		tile := TileFromBytes(data[offset:end])
		writeTile(indexed, character.TileAt(t), &tile)
	}

	return indexed
}

func readTile(indexed []byte, ref character.TileRef) Tile {
	var tile Tile
	for y := 0; y < TileSize; y++ {
		var pixels [TileSize]uint8
		for x := 0; x < TileSize; x++ {
			pixels[x] = indexed[ref.Pixel(x, y).Address()]
		}
		tile.Rows[y] = RowFromPixels(pixels)
	}
	return tile
}

func writeTile(indexed []byte, ref character.TileRef, tile *Tile) {
	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			indexed[ref.Pixel(x, y).Address()] = tile.Pixel(x, y)
		}
	}
}
