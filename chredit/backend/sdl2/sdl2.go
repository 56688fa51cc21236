//go:build sdl2

package sdl2

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/valerio/go-chredit/chredit/backend"
	"github.com/valerio/go-chredit/chredit/display"
	"github.com/valerio/go-chredit/chredit/input"
	"github.com/valerio/go-chredit/chredit/input/action"
	"github.com/valerio/go-chredit/chredit/input/event"
	"github.com/valerio/go-chredit/chredit/render"
)

const (
	windowWidth  = display.DefaultWindowWidth
	windowHeight = display.DefaultWindowHeight
)

// Backend implements the Backend interface using SDL2 bindings
// Note: building this requires SDL2 development libraries installed.
// Default builds skip this and use a stubbed renderer, see build tags (sdl2)
type Backend struct {
	window    *sdl.Window
	renderer  *sdl.Renderer
	texture   *sdl.Texture
	running   bool
	callbacks backend.BackendCallbacks
	config    backend.BackendConfig

	events  []backend.InputEvent
	pointer backend.PointerTracker
	caption string

	pixels []byte
}

// New creates a new SDL2 backend
func New() *Backend {
	return &Backend{
		pixels: make([]byte, windowWidth*windowHeight*display.RGBABytesPerPixel),
	}
}

// Init initializes the SDL2 backend
func (s *Backend) Init(config backend.BackendConfig) error {
	s.config = config
	s.callbacks = config.Callbacks

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("failed to initialize SDL2: %v", err)
	}

	window, err := sdl.CreateWindow(
		config.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(float64(windowWidth)*scaleOf(config)),
		int32(float64(windowHeight)*scaleOf(config)),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("failed to create window: %v", err)
	}
	s.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to create renderer: %v", err)
	}
	s.renderer = renderer

	// The scene is rasterized at the default window size and stretched
	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGBA8888,
		sdl.TEXTUREACCESS_STREAMING,
		windowWidth,
		windowHeight,
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to create texture: %v", err)
	}
	s.texture = texture

	s.running = true
	slog.Info("SDL2 backend initialized")

	return nil
}

func scaleOf(config backend.BackendConfig) float64 {
	if config.Scale <= 0 {
		return 1
	}
	return float64(config.Scale)
}

// Update renders the scene and processes events
func (s *Backend) Update(scene *render.Scene) (backend.Input, error) {
	if !s.running {
		return backend.Input{}, nil
	}

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		s.handleEvent(ev)
	}

	in := backend.Input{
		Events:  s.events,
		Pointer: s.pointer.Frame(),
	}
	s.events = nil

	if !s.running {
		return in, nil
	}

	if caption := scene.Caption(); caption != s.caption {
		s.caption = caption
		s.window.SetTitle(fmt.Sprintf("%s - %s", s.config.Title, caption))
	}

	s.renderScene(scene)

	return in, nil
}

// Cleanup cleans up SDL2 resources
func (s *Backend) Cleanup() error {
	slog.Info("Cleaning up SDL2 backend")

	if s.texture != nil {
		s.texture.Destroy()
	}
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.Quit()

	return nil
}

func (s *Backend) handleEvent(ev sdl.Event) {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		s.running = false
		if s.callbacks.OnQuit != nil {
			s.callbacks.OnQuit()
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN {
			s.handleKeyDown(e.Keysym.Sym, e.Repeat)
		} else if e.Type == sdl.KEYUP {
			s.handleKeyUp(e.Keysym.Sym)
		}

	case *sdl.MouseMotionEvent:
		s.movePointer(e.X, e.Y)

	case *sdl.MouseButtonEvent:
		s.movePointer(e.X, e.Y)
		if e.Button == sdl.BUTTON_LEFT {
			s.pointer.Primary(e.State == sdl.PRESSED)
		}

	case *sdl.MouseWheelEvent:
		delta := float64(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			delta = -delta
		}
		s.pointer.Scroll(delta)
	}
}

func (s *Backend) movePointer(x, y int32) {
	w, h := s.window.GetSize()
	if w == 0 || h == 0 {
		return
	}
	s.pointer.Move(float64(x)/float64(w), float64(y)/float64(h))
}

// keyMapping maps SDL2 keys to actions
var keyMapping = buildKeyMapping()

// buildKeyMapping resolves the default key names through SDL so every backend
// shares the same bindings.
func buildKeyMapping() map[sdl.Keycode]action.Action {
	mapping := make(map[sdl.Keycode]action.Action)
	for name, act := range input.DefaultKeyMap {
		code := sdl.GetKeyFromName(name)
		if code == sdl.K_UNKNOWN {
			continue
		}
		mapping[code] = act
	}
	return mapping
}

// dragKey pans the canvas while held.
var dragKey sdl.Keycode = sdl.K_SPACE

func (s *Backend) handleKeyDown(key sdl.Keycode, repeat uint8) {
	// Ignore key repeat events
	if repeat != 0 {
		return
	}

	if key == dragKey {
		s.pointer.Drag(true)
		return
	}

	if act, exists := keyMapping[key]; exists {
		if act == action.EditorQuit {
			s.running = false
		}
		s.events = append(s.events, backend.InputEvent{Action: act, Type: event.Press})
	}
}

func (s *Backend) handleKeyUp(key sdl.Keycode) {
	if key == dragKey {
		s.pointer.Drag(false)
		return
	}
	if act, exists := keyMapping[key]; exists {
		s.events = append(s.events, backend.InputEvent{Action: act, Type: event.Release})
	}
}

func (s *Backend) renderScene(scene *render.Scene) {
	img := scene.Rasterize(windowWidth, windowHeight)

	// Convert to ABGR byte order for little-endian RGBA8888
	for i := 0; i+3 < len(img.Pix); i += display.RGBABytesPerPixel {
		s.pixels[i] = display.FullAlpha // Alpha (first byte)
		s.pixels[i+1] = img.Pix[i+2]    // Blue
		s.pixels[i+2] = img.Pix[i+1]    // Green
		s.pixels[i+3] = img.Pix[i]      // Red (last byte)
	}

	if err := s.texture.Update(nil, unsafe.Pointer(&s.pixels[0]), windowWidth*display.RGBABytesPerPixel); err != nil {
		slog.Warn("Failed to update texture", "error", err)
		return
	}

	s.renderer.SetDrawColor(0, 0, 0, display.FullAlpha)
	s.renderer.Clear()
	s.renderer.Copy(s.texture, nil, nil)
	s.renderer.Present()
}
