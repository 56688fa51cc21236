package chr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valerio/go-chredit/chredit/character"
)

func TestEncodeValueMapping(t *testing.T) {
	tests := []struct {
		value  uint8
		plane0 byte
		plane1 byte
	}{
		{0, 0x00, 0x00},
		{1, 0x80, 0x00},
		{2, 0x00, 0x80},
		{3, 0x80, 0x80},
	}

	for _, tt := range tests {
		buf := character.New()
		require.NoError(t, buf.Edit(0, 0, 0, 0, 0, tt.value))

		data, err := Encode(buf.Export())
		require.NoError(t, err)
		require.Len(t, data, FileSize)

		assert.Equal(t, tt.plane0, data[0], "value %d plane 0", tt.value)
		assert.Equal(t, tt.plane1, data[8], "value %d plane 1", tt.value)
	}
}

func TestEncodeByteOrder(t *testing.T) {
	tests := []struct {
		name                       string
		bank, tileX, tileY, lx, ly int
		offset                     int
		mask                       byte
	}{
		{"first tile", 0, 0, 0, 0, 0, 0, 0x80},
		{"second tile column", 0, 1, 0, 0, 0, 16, 0x80},
		{"second tile row", 0, 0, 1, 0, 0, 16 * 16, 0x80},
		{"pixel row", 0, 0, 0, 0, 3, 3, 0x80},
		{"rightmost pixel", 0, 0, 0, 7, 0, 0, 0x01},
		{"last tile bank 0", 0, 15, 15, 0, 7, 255*16 + 7, 0x80},
		{"first tile bank 1", 1, 0, 0, 0, 0, 256 * 16, 0x80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := character.New()
			require.NoError(t, buf.Edit(tt.bank, tt.tileX, tt.tileY, tt.lx, tt.ly, 1))

			data, err := Encode(buf.Export())
			require.NoError(t, err)

			for i, b := range data {
				if i == tt.offset {
					assert.Equal(t, tt.mask, b, "byte %d", i)
				} else if b != 0 {
					t.Fatalf("unexpected non-zero byte %#02x at %d", b, i)
				}
			}
		})
	}
}

func TestEncodeRejectsWrongSize(t *testing.T) {
	_, err := Encode(make([]byte, 10))
	assert.ErrorIs(t, err, character.ErrInvalidBufferSize)
}

func TestRoundTrip(t *testing.T) {
	indexed := make([]byte, character.IndexedSize)
	for i := range indexed {
		indexed[i] = byte((i*7 + i/128) % 4)
	}

	data, err := Encode(indexed)
	require.NoError(t, err)

	assert.Equal(t, indexed, Decode(data))
}

func TestDecodeTruncated(t *testing.T) {
	data := make([]byte, 20)
	data[0] = 0x80  // tile 0, row 0, leftmost pixel: bit 0
	data[8] = 0x80  // ...and bit 1
	data[16] = 0x01 // tile 1, row 0, rightmost pixel

	indexed := Decode(data)
	require.Len(t, indexed, character.IndexedSize)

	assert.Equal(t, byte(3), indexed[0])
	assert.Equal(t, byte(1), indexed[15])

	nonZero := 0
	for _, v := range indexed {
		if v != 0 {
			nonZero++
		}
	}
	assert.Equal(t, 2, nonZero)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	buf := character.New()
	require.NoError(t, buf.Edit(1, 3, 9, 2, 5, 2))
	require.NoError(t, buf.Edit(0, 15, 0, 7, 7, 3))
	require.NoError(t, Save(path, buf))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(FileSize), info.Size())

	loaded := character.New()
	require.NoError(t, Load(path, loaded))
	assert.Equal(t, buf.Export(), loaded.Export())
	assert.Equal(t, buf.Render(), loaded.Render())
}

func TestLoadMissingFileIsNoop(t *testing.T) {
	buf := character.New()
	require.NoError(t, buf.Edit(0, 0, 0, 0, 0, 3))
	before := buf.Export()

	err := Load(filepath.Join(t.TempDir(), "missing.chr"), buf)

	assert.NoError(t, err)
	assert.Equal(t, before, buf.Export())
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.chr"))
	assert.ErrorIs(t, err, ErrFileUnavailable)
}

func TestSaveUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", FileName)
	err := Save(path, character.New())
	assert.ErrorIs(t, err, ErrFileUnavailable)
}
