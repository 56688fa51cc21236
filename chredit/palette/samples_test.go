package palette

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSamples(t *testing.T) {
	want := SampleSet{
		1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 0,
		13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 0,
	}
	assert.Equal(t, want, DefaultSamples())
}

func TestIsTerminal(t *testing.T) {
	for i := 0; i < Entries; i++ {
		assert.Equal(t, i == 12 || i == 25, IsTerminal(i), "index %d", i)
	}
}

func TestMasterTable(t *testing.T) {
	assert.Equal(t, uint8(101), Master[0x00].R)
	assert.Equal(t, uint8(0), Master[0x0F].R)
	assert.Equal(t, Master[0x30], Master[0x20])
	assert.Equal(t, Master[0x01], Color(0x41))
	assert.Equal(t, uint8(0x3F), Cell(3, 15))
}

func TestDecodeSamples(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{"valid", make([]byte, Entries), false},
		{"short", make([]byte, Entries-1), true},
		{"long", make([]byte, Entries+1), true},
		{"empty", nil, true},
		{"value past table", append(make([]byte, Entries-1), 64), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSamples(tt.data)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSampleFile)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveLoadSamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), SampleFileName)

	s := DefaultSamples()
	s[3] = 0x2A
	s[25] = 0x0F
	require.NoError(t, SaveSamples(path, s))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, s[:], raw)

	loaded, err := LoadSamples(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestLoadSamplesMissing(t *testing.T) {
	_, err := LoadSamples(filepath.Join(t.TempDir(), SampleFileName))
	assert.ErrorIs(t, err, ErrFileUnavailable)
}
