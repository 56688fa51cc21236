package chredit

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/valerio/go-chredit/chredit/display"
	"github.com/valerio/go-chredit/chredit/input/action"
	"github.com/valerio/go-chredit/chredit/palette"
	"github.com/valerio/go-chredit/chredit/render"
	"github.com/valerio/go-chredit/chredit/surface"
)

// cellSide is the pixel side of one cell in the chrome images.
const cellSide = 8

// PaletteSurface shows the 4x16 master table. Clicking a cell assigns it to
// the active sample entry.
type PaletteSurface struct {
	pal *palette.Indirection
	img *image.RGBA
}

func newPaletteSurface(pal *palette.Indirection) *PaletteSurface {
	return &PaletteSurface{
		pal: pal,
		img: image.NewRGBA(image.Rect(0, 0, palette.Columns*cellSide, palette.Rows*cellSide)),
	}
}

func (p *PaletteSurface) Position() surface.Vec2 { return display.PalettePosition }
func (p *PaletteSurface) Size() surface.Vec2     { return display.PaletteSize }

func (p *PaletteSurface) Click(at surface.Vec2) bool {
	index, err := p.pal.ClickPaletteCell(at)
	if err != nil {
		slog.Warn("Failed to pick palette color", "error", err)
		return false
	}
	slog.Debug("Assigned palette color", "entry", p.pal.Selection().ActiveColor, "index", index)
	return true
}

func (p *PaletteSurface) Release(surface.Vec2) bool { return false }

// Draw outlines the cell holding the active entry's color.
func (p *PaletteSurface) Draw(target surface.Target, _ surface.Vec2) error {
	samples := p.pal.Samples()
	active := samples[p.pal.Selection().ActiveColor]

	for row := 0; row < palette.Rows; row++ {
		for col := 0; col < palette.Columns; col++ {
			index := palette.Cell(row, col)
			cell := render.Cells(col, row, cellSide)
			render.Fill(p.img, cell, palette.Color(index))
			if index == active {
				render.Outline(p.img, cell, render.Contrast(palette.Color(index)))
			}
		}
	}

	target.DrawImage(surface.Bounds(p), p.img)
	return nil
}

// SamplesSurface shows the 26 sample entries, two groups of 13, one per row.
type SamplesSurface struct {
	pal *palette.Indirection
	img *image.RGBA
}

func newSamplesSurface(pal *palette.Indirection) *SamplesSurface {
	return &SamplesSurface{
		pal: pal,
		img: image.NewRGBA(image.Rect(0, 0, palette.GroupSize*cellSide, palette.Groups*cellSide)),
	}
}

func (s *SamplesSurface) Position() surface.Vec2 { return display.SamplesPosition }
func (s *SamplesSurface) Size() surface.Vec2     { return display.SamplesSize }

func (s *SamplesSurface) Click(at surface.Vec2) bool {
	sel, err := s.pal.ClickSample(at)
	if err != nil {
		slog.Warn("Failed to select sample", "error", err)
		return false
	}
	slog.Debug("Selected sample", "color", sel.ActiveColor, "sample", sel.ActiveSample)
	return true
}

func (s *SamplesSurface) Release(surface.Vec2) bool { return false }

// Draw outlines the active entry.
func (s *SamplesSurface) Draw(target surface.Target, _ surface.Vec2) error {
	samples := s.pal.Samples()
	active := s.pal.Selection().ActiveColor

	for i, index := range samples {
		cell := render.Cells(i%palette.GroupSize, i/palette.GroupSize, cellSide)
		render.Fill(s.img, cell, palette.Color(index))
		if i == active {
			render.Outline(s.img, cell, render.Contrast(palette.Color(index)))
		}
	}

	target.DrawImage(surface.Bounds(s), s.img)
	return nil
}

// Button fires its action when the primary button is released over it.
type Button struct {
	editor *Editor
	index  int
	act    action.Action
	icon   [8]string
	img    *image.RGBA
}

func newButton(e *Editor, index int, act action.Action) *Button {
	return &Button{
		editor: e,
		index:  index,
		act:    act,
		icon:   icons[act],
		img:    image.NewRGBA(image.Rect(0, 0, len(icons[act][0]), len(icons[act]))),
	}
}

func (b *Button) Position() surface.Vec2 { return display.ButtonPosition(b.index) }
func (b *Button) Size() surface.Vec2     { return display.ButtonSize }

// Click consumes the press so nothing under the button reacts.
func (b *Button) Click(surface.Vec2) bool { return true }

func (b *Button) Release(surface.Vec2) bool {
	slog.Debug("Button released", "action", b.act)
	b.editor.HandleAction(b.act)
	return true
}

var (
	buttonFace    = color.RGBA{0x30, 0x30, 0x30, 0xFF}
	buttonActive  = color.RGBA{0x20, 0x60, 0xA0, 0xFF}
	buttonHovered = color.RGBA{0x50, 0x50, 0x50, 0xFF}
)

// Draw highlights the button of the active tool and the one under the cursor.
func (b *Button) Draw(target surface.Target, cursor surface.Vec2) error {
	bg := buttonFace
	switch {
	case b.editor.toolAction() == b.act:
		bg = buttonActive
	case !surface.Hit(b, cursor).IsOutside():
		bg = buttonHovered
	}

	for y, line := range b.icon {
		for x, ch := range line {
			c := bg
			if ch == '#' {
				c = render.White
			}
			b.img.SetRGBA(x, y, c)
		}
	}

	target.DrawImage(surface.Bounds(b), b.img)
	return nil
}

// buttonActions lists the buttons left to right.
var buttonActions = []action.Action{
	action.ToolPencil,
	action.ToolLine,
	action.ToolRectangle,
	action.ToolEllipse,
	action.EditorAbout,
	action.SaveCharacter,
	action.LoadCharacter,
}

var icons = map[action.Action][8]string{
	action.ToolPencil: {
		"......#.",
		".....#.#",
		"....#.#.",
		"...#.#..",
		"..#.#...",
		".##.....",
		".###....",
		"........",
	},
	action.ToolLine: {
		"........",
		"......#.",
		".....#..",
		"....#...",
		"...#....",
		"..#.....",
		".#......",
		"........",
	},
	action.ToolRectangle: {
		"........",
		".######.",
		".#....#.",
		".#....#.",
		".#....#.",
		".#....#.",
		".######.",
		"........",
	},
	action.ToolEllipse: {
		"........",
		"..####..",
		".#....#.",
		".#....#.",
		".#....#.",
		".#....#.",
		"..####..",
		"........",
	},
	action.EditorAbout: {
		"...##...",
		"........",
		"..###...",
		"...##...",
		"...##...",
		"...##...",
		"..####..",
		"........",
	},
	action.SaveCharacter: {
		"...##...",
		"...##...",
		"...##...",
		".######.",
		"..####..",
		"...##...",
		"#......#",
		"########",
	},
	action.LoadCharacter: {
		"...##...",
		"..####..",
		".######.",
		"...##...",
		"...##...",
		"...##...",
		"#......#",
		"########",
	},
}
