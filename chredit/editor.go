// Package chredit is the editor core: it owns the character, the palette
// selection and the view, dispatches pointer input to the surfaces and
// composes the scene drawn by backends.
package chredit

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/valerio/go-chredit/chredit/character"
	"github.com/valerio/go-chredit/chredit/chr"
	"github.com/valerio/go-chredit/chredit/debug"
	"github.com/valerio/go-chredit/chredit/display"
	"github.com/valerio/go-chredit/chredit/input"
	"github.com/valerio/go-chredit/chredit/input/action"
	"github.com/valerio/go-chredit/chredit/input/event"
	"github.com/valerio/go-chredit/chredit/palette"
	"github.com/valerio/go-chredit/chredit/render"
	"github.com/valerio/go-chredit/chredit/surface"
)

// Config holds the editor settings.
type Config struct {
	// Dir is the directory holding the CHR and sample files. Empty means the
	// working directory.
	Dir string
}

// Editor is the root struct holding all editor state. It is driven by one
// Tick per frame from a single goroutine.
type Editor struct {
	config Config

	buf *character.Buffer
	pal *palette.Indirection

	canvas   *Canvas
	palette  *PaletteSurface
	samples  *SamplesSurface
	buttons  []*Button
	surfaces []surface.Surface // dispatch order, topmost first

	scene *render.Scene

	mode Mode
	tool Tool

	pressed   bool // primary button went down this tick
	plotting  bool
	plotStart character.Point
	last      surface.Vec2 // world position of the pointer on the previous tick

	quit bool
}

// New creates an editor with an empty character and the default samples.
func New(config Config) *Editor {
	e := &Editor{
		config: config,
		buf:    character.New(),
		pal:    palette.New(),
		scene:  render.NewScene(display.World()),
	}

	e.canvas = newCanvas(e)
	e.palette = newPaletteSurface(e.pal)
	e.samples = newSamplesSurface(e.pal)
	for i, act := range buttonActions {
		e.buttons = append(e.buttons, newButton(e, i, act))
	}

	// Chrome is drawn over the canvas, so it gets the pointer first.
	e.surfaces = []surface.Surface{e.palette, e.samples}
	for _, b := range e.buttons {
		e.surfaces = append(e.surfaces, b)
	}
	e.surfaces = append(e.surfaces, e.canvas)

	e.compose(e.last)
	return e
}

func (e *Editor) Buffer() *character.Buffer     { return e.buf }
func (e *Editor) Palette() *palette.Indirection { return e.pal }
func (e *Editor) View() *surface.View           { return e.canvas.view }
func (e *Editor) Scene() *render.Scene          { return e.scene }
func (e *Editor) Mode() Mode                    { return e.mode }
func (e *Editor) Tool() Tool                    { return e.tool }
func (e *Editor) Plotting() bool                { return e.plotting }

// Done reports whether the editor was asked to quit.
func (e *Editor) Done() bool { return e.quit }

// Quit stops the editor after the current tick.
func (e *Editor) Quit() { e.quit = true }

// CharacterPath is the location of the CHR file.
func (e *Editor) CharacterPath() string {
	return filepath.Join(e.config.Dir, chr.FileName)
}

// SamplesPath is the location of the sample file.
func (e *Editor) SamplesPath() string {
	return filepath.Join(e.config.Dir, palette.SampleFileName)
}

// Tick applies one frame of pointer input and redraws the scene.
//
// Scroll zooms and the drag gesture pans the canvas unless a shape is being
// plotted. While the primary button is held, the topmost surface under the
// pointer receives a click every tick; on release it receives the release.
// Only character mode dispatches to surfaces.
func (e *Editor) Tick(p input.Pointer) error {
	world := display.WindowToWorld(p.Position)
	delta := world.Sub(e.last)
	e.last = world

	if e.mode == ModeCharacter {
		if p.Scroll != 0 && !e.plotting {
			e.canvas.view.Zoom(p.Scroll)
		}
		if p.Drag && !e.plotting {
			e.canvas.view.Pan(delta)
		}

		e.pressed = p.Pressed
		if p.Down || p.Pressed {
			e.dispatch(world, surface.Surface.Click)
		}
		if p.Released {
			e.dispatch(world, surface.Surface.Release)
			e.plotting = false
		}
		e.pressed = false
	}

	return e.compose(world)
}

// dispatch hands the event to the topmost surface under the pointer.
func (e *Editor) dispatch(world surface.Vec2, handle func(surface.Surface, surface.Vec2) bool) {
	for _, s := range e.surfaces {
		at := surface.Hit(s, world)
		if at.IsOutside() {
			continue
		}
		handle(s, at)
		return
	}
}

// compose redraws the scene, back to front.
func (e *Editor) compose(cursor surface.Vec2) error {
	e.scene.Clear()
	e.scene.SetCaption(e.caption())

	if e.mode != ModeCharacter {
		e.canvas.DrawPreview(e.scene)
		return nil
	}

	if err := e.canvas.Draw(e.scene, cursor); err != nil {
		return fmt.Errorf("failed to draw canvas: %w", err)
	}
	for i := len(e.surfaces) - 1; i >= 0; i-- {
		s := e.surfaces[i]
		if s == surface.Surface(e.canvas) {
			continue
		}
		if err := s.Draw(e.scene, cursor); err != nil {
			return fmt.Errorf("failed to draw surface: %w", err)
		}
	}
	return nil
}

func (e *Editor) caption() string {
	sel := e.pal.Selection()
	return fmt.Sprintf("%s | %s | zoom %.2f | color %d | sample %d",
		e.mode, e.tool, e.canvas.view.ZoomLevel(), sel.ActiveColor, sel.ActiveSample)
}

// SetMode switches the editor mode. A shape in progress is dropped.
func (e *Editor) SetMode(m Mode) {
	if e.mode == m {
		return
	}
	slog.Info("Mode changed", "from", e.mode, "to", m)
	e.mode = m
	e.plotting = false
}

// SelectTool picks a tool. Picking the active rectangle or ellipse tool
// switches between its frame and fill variants.
func (e *Editor) SelectTool(t Tool) {
	next := toggle(e.tool, t)
	if next != e.tool {
		slog.Debug("Tool changed", "from", e.tool, "to", next)
	}
	e.tool = next
}

// toolAction returns the action whose button selects the active tool.
func (e *Editor) toolAction() action.Action {
	switch e.tool {
	case ToolLine:
		return action.ToolLine
	case ToolRectangleFrame, ToolRectangleFill:
		return action.ToolRectangle
	case ToolEllipseFrame, ToolEllipseFill:
		return action.ToolEllipse
	default:
		return action.ToolPencil
	}
}

// SaveCharacter writes the CHR file.
func (e *Editor) SaveCharacter() error {
	return chr.Save(e.CharacterPath(), e.buf)
}

// LoadCharacter reads the CHR file. A missing file leaves the character as
// it is.
func (e *Editor) LoadCharacter() error {
	return chr.Load(e.CharacterPath(), e.buf)
}

// SaveSamples writes the sample file.
func (e *Editor) SaveSamples() error {
	return palette.SaveSamples(e.SamplesPath(), e.pal.Samples())
}

// LoadSamples reads the sample file. A missing or malformed file leaves the
// current samples untouched.
func (e *Editor) LoadSamples() error {
	samples, err := palette.LoadSamples(e.SamplesPath())
	if errors.Is(err, palette.ErrFileUnavailable) {
		slog.Warn("Sample file not loaded", "path", e.SamplesPath(), "error", err)
		return nil
	}
	if err != nil {
		return err
	}
	e.pal.SetSamples(samples)
	return nil
}

// HandleAction applies an editor action. File errors are logged and do not
// stop the editor.
func (e *Editor) HandleAction(act action.Action) {
	var err error

	switch act {
	case action.SaveCharacter:
		err = e.SaveCharacter()
	case action.LoadCharacter:
		err = e.LoadCharacter()
	case action.SaveSamples:
		err = e.SaveSamples()
	case action.LoadSamples:
		err = e.LoadSamples()
	case action.ModeCharacter:
		e.SetMode(ModeCharacter)
	case action.ModeNametable:
		e.SetMode(ModeNametable)
	case action.ModeAttributeTable:
		e.SetMode(ModeAttributeTable)
	case action.ZoomIn:
		e.canvas.view.SetZoom(e.canvas.view.ZoomLevel() + 1)
	case action.ZoomOut:
		e.canvas.view.SetZoom(e.canvas.view.ZoomLevel() - 1)
	case action.ToolPencil:
		e.SelectTool(ToolPixel)
	case action.ToolLine:
		e.SelectTool(ToolLine)
	case action.ToolRectangle:
		e.SelectTool(ToolRectangleFrame)
	case action.ToolEllipse:
		e.SelectTool(ToolEllipseFrame)
	case action.EditorAbout:
		slog.Info("chredit, a tile editor for 2bpp planar character data",
			"character", e.CharacterPath(), "samples", e.SamplesPath())
	case action.EditorSnapshot:
		debug.TakeSnapshot(e.scene, e.buf)
	case action.EditorQuit:
		e.Quit()
	default:
		slog.Debug("Unhandled action", "action", act)
	}

	if err != nil {
		slog.Error("Action failed", "action", act, "error", err)
	}
}

// editorActions are the actions the editor registers with the input manager.
var editorActions = []action.Action{
	action.SaveCharacter,
	action.SaveSamples,
	action.LoadCharacter,
	action.LoadSamples,
	action.ModeCharacter,
	action.ModeNametable,
	action.ModeAttributeTable,
	action.ZoomIn,
	action.ZoomOut,
	action.ToolPencil,
	action.ToolLine,
	action.ToolRectangle,
	action.ToolEllipse,
	action.EditorAbout,
	action.EditorSnapshot,
	action.EditorQuit,
}

// Bind registers the editor's key actions with the input manager.
func (e *Editor) Bind(m *input.Manager) {
	for _, act := range editorActions {
		m.On(act, event.Press, func() {
			e.HandleAction(act)
		})
	}
}
