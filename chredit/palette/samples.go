package palette

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"os"
)

const (
	// GroupSize is the number of entries in one sample group. The last entry
	// of each group is the reserved "none" slot.
	GroupSize = 13
	Groups    = 2

	// Entries is the length of a SampleSet and of the sample file.
	Entries = GroupSize * Groups

	// SamplesPerGroup is the number of sub-palettes carved from a group.
	SamplesPerGroup = 4
	SampleCount     = SamplesPerGroup * Groups

	// SampleFileName is the fixed name of the sample file.
	SampleFileName = "samples.sam"
)

var (
	// ErrFileUnavailable is returned when the sample file cannot be opened.
	ErrFileUnavailable = errors.New("file unavailable")

	// ErrInvalidSampleFile is returned for a sample file that is not exactly
	// Entries bytes long or holds a value outside the master table.
	ErrInvalidSampleFile = errors.New("invalid sample file")
)

// SampleSet holds two groups of 13 master table indices.
type SampleSet [Entries]uint8

// DefaultSamples returns the startup sample set: 1-12 then 13-24, each group
// closed by its empty terminal slot.
func DefaultSamples() SampleSet {
	var s SampleSet
	for i := 0; i < GroupSize-1; i++ {
		s[i] = uint8(i + 1)
		s[GroupSize+i] = uint8(GroupSize + i)
	}
	return s
}

// IsTerminal reports whether index is the reserved last slot of a group.
func IsTerminal(index int) bool {
	return index == GroupSize-1 || index == Entries-1
}

// SubPalette returns the four colors used to display sub-palette n (0-7).
// Value 0 shows the group's terminal entry, values 1-3 the three entries of
// the sub-palette.
func (s *SampleSet) SubPalette(n int) [4]color.RGBA {
	group := (n / SamplesPerGroup) % Groups
	first := group*GroupSize + (n%SamplesPerGroup)*3

	return [4]color.RGBA{
		Color(s[group*GroupSize+GroupSize-1]),
		Color(s[first]),
		Color(s[first+1]),
		Color(s[first+2]),
	}
}

// DecodeSamples validates raw sample file content.
func DecodeSamples(data []byte) (SampleSet, error) {
	var s SampleSet
	if len(data) != Entries {
		return s, fmt.Errorf("expected %d bytes, got %d: %w", Entries, len(data), ErrInvalidSampleFile)
	}
	for i, v := range data {
		if v >= Size {
			return s, fmt.Errorf("entry %d holds %d, past the %d color table: %w", i, v, Size, ErrInvalidSampleFile)
		}
		s[i] = v
	}
	return s, nil
}

// LoadSamples reads the sample file at path. A missing file is reported as
// ErrFileUnavailable so callers can keep their current set.
func LoadSamples(path string) (SampleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SampleSet{}, fmt.Errorf("read %s: %w: %v", path, ErrFileUnavailable, err)
	}

	slog.Info("Reading samples from file", "path", path)
	return DecodeSamples(data)
}

// SaveSamples writes the set as one byte per entry.
func SaveSamples(path string, s SampleSet) error {
	slog.Info("Writing samples to file", "path", path)
	if err := os.WriteFile(path, s[:], 0644); err != nil {
		return fmt.Errorf("write %s: %w: %v", path, ErrFileUnavailable, err)
	}
	slog.Info("Finished writing sample file", "path", path)
	return nil
}
