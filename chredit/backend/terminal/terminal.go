package terminal

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/valerio/go-chredit/chredit/backend"
	"github.com/valerio/go-chredit/chredit/backend/terminal/render"
	"github.com/valerio/go-chredit/chredit/display"
	"github.com/valerio/go-chredit/chredit/input"
	"github.com/valerio/go-chredit/chredit/input/action"
	"github.com/valerio/go-chredit/chredit/input/event"
	scene "github.com/valerio/go-chredit/chredit/render"
)

const (
	logPanelWidth = 44
	minTermWidth  = 80
	minTermHeight = 24
	logCapacity   = 200
)

// Backend implements the Backend interface using tcell for terminal rendering.
// The scene is drawn with half-block characters in true color; the mouse
// drives the pointer (left button paints, right button pans, wheel zooms).
type Backend struct {
	screen    tcell.Screen
	running   bool
	logBuffer *render.LogBuffer
	logLevel  slog.Level
	config    backend.BackendConfig

	mu         sync.Mutex
	eventQueue []backend.InputEvent // Collect events to return

	pointer backend.PointerTracker

	// Cells the scene occupies on the last render
	area image.Rectangle
}

// New creates a new terminal backend
func New() *Backend {
	return &Backend{
		logLevel: slog.LevelInfo,
	}
}

// Init initializes the terminal backend
func (t *Backend) Init(config backend.BackendConfig) error {
	t.config = config
	t.logLevel = config.LogLevel

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %v", err)
	}

	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %v", err)
	}

	t.screen = screen
	t.running = true

	// Create log buffer and set up logging. Everything is captured, the
	// panel filters by t.logLevel.
	t.logBuffer = render.NewLogBuffer(logCapacity)
	handler := render.NewLogBufferHandler(t.logBuffer, slog.LevelDebug)
	slog.SetDefault(slog.New(handler))

	t.screen.EnableMouse()
	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()

	slog.Info("Terminal backend initialized")

	// Set up signal handling for graceful shutdown
	go t.handleSignals()

	return nil
}

// Update renders the scene and processes events
func (t *Backend) Update(s *scene.Scene) (backend.Input, error) {
	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			t.processKeyEvent(ev)
		case *tcell.EventMouse:
			t.processMouseEvent(ev)
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}

	in := backend.Input{
		Events:  t.drainEvents(),
		Pointer: t.pointer.Frame(),
	}

	if !t.running {
		return in, nil
	}

	t.render(s)
	t.screen.Show()

	return in, nil
}

// Cleanup cleans up terminal resources
func (t *Backend) Cleanup() error {
	if t.screen != nil {
		slog.Info("Cleaning up terminal backend")
		t.screen.Fini()
	}
	return nil
}

// HandleAction processes backend-specific actions
func (t *Backend) HandleAction(act action.Action) {
	switch act {
	case action.DebugLogLevelIncrease:
		t.changeLogLevel(1)
	case action.DebugLogLevelDecrease:
		t.changeLogLevel(-1)
	}
}

func (t *Backend) handleSignals() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)

	<-signals
	t.queue(action.EditorQuit)
}

func (t *Backend) queue(act action.Action) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.eventQueue = append(t.eventQueue, backend.InputEvent{Action: act, Type: event.Press})
}

func (t *Backend) drainEvents() []backend.InputEvent {
	t.mu.Lock()
	defer t.mu.Unlock()
	events := t.eventQueue
	t.eventQueue = nil
	return events
}

// tcellKeyNameMap converts tcell keys to key names used in default mappings
var tcellKeyNameMap = map[tcell.Key]string{
	tcell.KeyEscape: "Escape",
	tcell.KeyF1:     "F1",
	tcell.KeyF12:    "F12",
}

// buildKeyMapping creates the key mapping from default mappings
func buildKeyMapping() map[tcell.Key]action.Action {
	mapping := make(map[tcell.Key]action.Action)

	for key, keyName := range tcellKeyNameMap {
		if act, ok := input.GetDefaultMapping(keyName); ok {
			mapping[key] = act
		}
	}

	mapping[tcell.KeyCtrlC] = action.EditorQuit

	return mapping
}

// keyMapping maps tcell keys to actions
var keyMapping = buildKeyMapping()

func (t *Backend) processKeyEvent(ev *tcell.EventKey) {
	act, ok := keyMapping[ev.Key()]
	if !ok && ev.Key() == tcell.KeyRune {
		// Runes are their own key names in the default mapping
		act, ok = input.GetDefaultMapping(string(ev.Rune()))
	}
	if !ok {
		return
	}

	if act == action.EditorQuit {
		t.running = false
	}
	slog.Debug("Key event", "key", ev.Name(), "action", act)
	t.queue(act)
}

// processMouseEvent folds a tcell mouse event into the pointer. Terminals
// have no key up events, so the pan gesture uses the secondary button.
func (t *Backend) processMouseEvent(ev *tcell.EventMouse) {
	x, y := ev.Position()
	if !t.area.Empty() {
		t.pointer.Move(cellToWindow(x, y, t.area))
	}

	buttons := ev.Buttons()
	t.pointer.Primary(buttons&tcell.Button1 != 0)
	t.pointer.Drag(buttons&tcell.Button2 != 0)

	if buttons&tcell.WheelUp != 0 {
		t.pointer.Scroll(1)
	}
	if buttons&tcell.WheelDown != 0 {
		t.pointer.Scroll(-1)
	}
}

// cellToWindow maps the center of a cell to window-normalized coordinates of
// the scene area. A cell is two pixel rows tall; its center is the boundary
// between them.
func cellToWindow(x, y int, area image.Rectangle) (float64, float64) {
	nx := (float64(x-area.Min.X) + 0.5) / float64(area.Dx())
	ny := (float64(y-area.Min.Y) + 0.5) / float64(area.Dy())
	return nx, ny
}

// sceneArea returns the largest region of cells, starting at origin and
// fitting in avail, that keeps the world aspect ratio with two pixel rows per
// cell.
func sceneArea(origin image.Point, availWidth, availHeight int) image.Rectangle {
	width := availWidth
	pixelHeight := int(float64(width) * display.Aspect)
	if pixelHeight > availHeight*2 {
		pixelHeight = availHeight * 2
		width = int(float64(pixelHeight) / display.Aspect)
	}
	height := (pixelHeight + 1) / 2

	return image.Rect(origin.X, origin.Y, origin.X+width, origin.Y+height)
}

func (t *Backend) changeLogLevel(direction int) {
	oldLevel := t.logLevel
	switch direction {
	case -1:
		switch t.logLevel {
		case slog.LevelDebug:
			t.logLevel = slog.LevelInfo
		case slog.LevelInfo:
			t.logLevel = slog.LevelWarn
		case slog.LevelWarn:
			t.logLevel = slog.LevelError
		}
	case 1:
		switch t.logLevel {
		case slog.LevelError:
			t.logLevel = slog.LevelWarn
		case slog.LevelWarn:
			t.logLevel = slog.LevelInfo
		case slog.LevelInfo:
			t.logLevel = slog.LevelDebug
		}
	}
	if oldLevel != t.logLevel {
		slog.Info("Log filter changed", "from", oldLevel, "to", t.logLevel)
	}
}

func (t *Backend) render(s *scene.Scene) {
	termWidth, termHeight := t.screen.Size()
	if termWidth < minTermWidth || termHeight < minTermHeight {
		t.screen.Clear()
		t.area = image.Rectangle{}
		style := tcell.StyleDefault.Foreground(tcell.ColorRed)
		msg := fmt.Sprintf("Terminal too small! Need at least %dx%d", minTermWidth, minTermHeight)
		t.drawText(0, termHeight/2, termWidth, msg, style)
		return
	}

	t.screen.Clear()

	dividerX := termWidth - logPanelWidth - 1
	t.area = sceneArea(image.Pt(0, 1), dividerX, termHeight-2)

	t.drawBorders(s, termWidth, termHeight, dividerX)
	t.drawScene(s)
	t.drawLogs(dividerX+1, 1, logPanelWidth, termHeight)
}

func (t *Backend) drawBorders(s *scene.Scene, termWidth, termHeight, dividerX int) {
	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)

	for y := 0; y < termHeight; y++ {
		t.screen.SetContent(dividerX, y, '│', nil, borderStyle)
	}

	title := fmt.Sprintf(" %s ", t.config.Title)
	if caption := s.Caption(); caption != "" {
		title = fmt.Sprintf(" %s | %s ", t.config.Title, caption)
	}
	t.drawText(1, 0, dividerX-1, title, titleStyle)

	levelStr := "INFO"
	switch t.logLevel {
	case slog.LevelDebug:
		levelStr = "DEBUG"
	case slog.LevelWarn:
		levelStr = "WARN"
	case slog.LevelError:
		levelStr = "ERROR"
	}
	t.drawText(dividerX+2, 0, termWidth-dividerX-2, fmt.Sprintf(" Logs [%s] (-/+ filter) ", levelStr), titleStyle)

	help := " S/L save/load chr  Z/X save/load samples  1-3 mode  0/9 zoom  right drag pan  F12 snapshot  Q quit "
	t.drawText(0, termHeight-1, dividerX, help, borderStyle)
}

func (t *Backend) drawScene(s *scene.Scene) {
	img := s.Rasterize(t.area.Dx(), t.area.Dy()*2)

	for row, cells := range render.HalfBlocks(img) {
		for col, cell := range cells {
			style := tcell.StyleDefault.Foreground(toTcell(cell.Fg)).Background(toTcell(cell.Bg))
			t.screen.SetContent(t.area.Min.X+col, t.area.Min.Y+row, cell.Rune, nil, style)
		}
	}
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (t *Backend) drawText(x, y, width int, text string, style tcell.Style) {
	i := 0
	for _, ch := range text {
		if i >= width {
			return
		}
		t.screen.SetContent(x+i, y, ch, nil, style)
		i++
	}
}

func (t *Backend) drawLogs(startX, startY, width, termHeight int) {
	if width <= 0 || startY >= termHeight {
		return
	}

	availableHeight := termHeight - startY - 1
	if availableHeight <= 0 {
		return
	}

	debugStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	infoStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	warnStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	errStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	for i, logEntry := range t.logBuffer.GetRecent(availableHeight, t.logLevel) {
		style := infoStyle
		switch logEntry.Level {
		case slog.LevelDebug:
			style = debugStyle
		case slog.LevelWarn:
			style = warnStyle
		case slog.LevelError:
			style = errStyle
		}

		logText := render.FormatLogEntry(logEntry)
		if len(logText) > width && width > 3 {
			logText = logText[:width-3] + "..."
		}

		t.drawText(startX, startY+i, width, logText, style)
	}
}
