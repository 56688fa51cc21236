package chredit

import (
	"fmt"

	"github.com/valerio/go-chredit/chredit/character"
)

// Mode selects what the editor shows and which surfaces receive input.
type Mode int

const (
	// ModeCharacter edits the tile sheet. It is the only interactive mode.
	ModeCharacter Mode = iota
	// ModeNametable and ModeAttributeTable show a preview of the sheet.
	ModeNametable
	ModeAttributeTable
)

func (m Mode) String() string {
	switch m {
	case ModeCharacter:
		return "character"
	case ModeNametable:
		return "nametable"
	case ModeAttributeTable:
		return "attribute table"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Tool is the active drawing tool.
type Tool int

const (
	ToolPixel Tool = iota
	ToolLine
	ToolRectangleFrame
	ToolRectangleFill
	ToolEllipseFrame
	ToolEllipseFill
)

func (t Tool) String() string {
	switch t {
	case ToolPixel:
		return "pixel"
	case ToolLine:
		return "line"
	case ToolRectangleFrame:
		return "rectangle frame"
	case ToolRectangleFill:
		return "rectangle fill"
	case ToolEllipseFrame:
		return "ellipse frame"
	case ToolEllipseFill:
		return "ellipse fill"
	default:
		return fmt.Sprintf("tool(%d)", int(t))
	}
}

// Shape returns the figure plotted by a shape tool. The pixel tool has none.
func (t Tool) Shape() (character.Shape, bool) {
	switch t {
	case ToolLine:
		return character.Line, true
	case ToolRectangleFrame:
		return character.RectangleFrame, true
	case ToolRectangleFill:
		return character.RectangleFill, true
	case ToolEllipseFrame:
		return character.EllipseFrame, true
	case ToolEllipseFill:
		return character.EllipseFill, true
	default:
		return 0, false
	}
}

// toggle returns the tool selected when t is picked while current is
// active. Rectangle and ellipse alternate between frame and fill.
func toggle(current, t Tool) Tool {
	switch {
	case t == ToolRectangleFrame && current == ToolRectangleFrame:
		return ToolRectangleFill
	case t == ToolEllipseFrame && current == ToolEllipseFrame:
		return ToolEllipseFill
	}
	return t
}
