// Package palette resolves clicks on the sample strip and on the master color
// table into the selection used for painting.
//
// A SampleSet holds 26 master table indices in two groups of 13. Each group
// is carved into four sub-palettes of three entries; the 13th entry of a
// group is a reserved slot. The active color (an index into the set) decides
// both the sub-palette used for display and the 2-bit value written into
// tiles, see ResolveEditColor.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/valerio/go-chredit/chredit/surface"
)

// ErrOutOfRange is returned for normalized coordinates outside [0,1].
var ErrOutOfRange = errors.New("coordinate out of range")

// Selection is the transient active state of the sample strip.
type Selection struct {
	ActiveColor  int // index into the SampleSet
	ActiveSample int // sub-palette 0-7
}

// Indirection owns the sample set and the active selection.
type Indirection struct {
	samples   SampleSet
	selection Selection
}

// New creates an Indirection holding the default samples with entry 0
// selected.
func New() *Indirection {
	return &Indirection{samples: DefaultSamples()}
}

func (p *Indirection) Samples() SampleSet {
	return p.samples
}

// SetSamples replaces the whole set. The selection is kept.
func (p *Indirection) SetSamples(s SampleSet) {
	p.samples = s
}

func (p *Indirection) Selection() Selection {
	return p.selection
}

// ClickSample selects the sample strip entry under at. The strip is two
// stacked rows of 13 entries split at y = 0.5. Selecting a terminal slot
// changes the active color but keeps the previous sub-palette.
func (p *Indirection) ClickSample(at surface.Vec2) (Selection, error) {
	if !inUnit(at) {
		return p.selection, fmt.Errorf("sample click at (%v, %v): %w", at.X, at.Y, ErrOutOfRange)
	}

	second := at.Y > 0.5
	offset, groupOffset := 0, 0
	if second {
		offset, groupOffset = GroupSize, SamplesPerGroup
	}

	active := offset + int(at.X*Entries/2)
	if active >= Entries {
		active = Entries - 1
	}
	p.selection.ActiveColor = active

	if !IsTerminal(active) {
		p.selection.ActiveSample = (active%GroupSize)/3 + groupOffset
	}

	return p.selection, nil
}

// ClickPaletteCell resolves a click on the 4x16 master table to its index and
// assigns it to the active sample entry.
func (p *Indirection) ClickPaletteCell(at surface.Vec2) (uint8, error) {
	if !inUnit(at) {
		return 0, fmt.Errorf("palette click at (%v, %v): %w", at.X, at.Y, ErrOutOfRange)
	}

	row := min(int(math.Floor(at.Y*Rows)), Rows-1)
	col := min(int(at.X*Columns), Columns-1)
	index := Cell(row, col)

	p.samples[p.selection.ActiveColor] = index
	return index, nil
}

// EditColor is the 2-bit value painted with the current selection.
func (p *Indirection) EditColor() uint8 {
	return ResolveEditColor(p.selection.ActiveColor)
}

// ActivePalette returns the display colors of the active sub-palette.
func (p *Indirection) ActivePalette() [4]color.RGBA {
	return p.samples.SubPalette(p.selection.ActiveSample)
}

// ResolveEditColor maps an active color index to the value written into
// tiles: 0 for either terminal slot, otherwise activeColor mod 3 + 1. The
// second group starts at 13, so its entries do not line up with their
// sub-palette positions.
func ResolveEditColor(activeColor int) uint8 {
	if IsTerminal(activeColor) {
		return 0
	}
	return uint8(activeColor%3 + 1)
}

func inUnit(v surface.Vec2) bool {
	return v.X >= 0 && v.X <= 1 && v.Y >= 0 && v.Y <= 1
}
