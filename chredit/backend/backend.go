package backend

import (
	"log/slog"

	"github.com/valerio/go-chredit/chredit/input"
	"github.com/valerio/go-chredit/chredit/input/action"
	"github.com/valerio/go-chredit/chredit/input/event"
	"github.com/valerio/go-chredit/chredit/render"
)

// Backend represents a complete editor platform (rendering + input).
// Backends are responsible for:
// - Rendering the composed scene to their specific output (terminal, SDL window, PNG files)
// - Translating platform-specific input to Actions and to the frame's pointer state
// - Handling backend-specific features (log panel, window title)
type Backend interface {
	// Init configures the backend with the provided configuration.
	// This is a required step before calling Update.
	Init(config BackendConfig) error

	// Update handles rendering the scene and processing platform events.
	// Backends should:
	// 1. Poll for platform-specific events (keyboard, mouse, window events)
	// 2. Translate key events to InputEvents and fold mouse events into the Pointer
	// 3. Render the provided scene
	Update(scene *render.Scene) (Input, error)

	// Cleanup resources when shutting down
	Cleanup() error
}

// ActionHandler is implemented by backends that react to actions themselves,
// such as changing the level of their log panel.
type ActionHandler interface {
	HandleAction(act action.Action)
}

// InputEvent is a key level action produced by a backend.
type InputEvent struct {
	Action action.Action
	Type   event.Type
}

// Input is everything a backend collected during one frame.
type Input struct {
	Events  []InputEvent
	Pointer input.Pointer
}

// BackendConfig holds configuration for backends
type BackendConfig struct {
	Title     string
	Scale     int
	LogLevel  slog.Level       // Minimum level of the log handler a backend installs
	Callbacks BackendCallbacks // Callbacks for backend communication
}

// BackendCallbacks allows backends to communicate with the editor
type BackendCallbacks struct {
	// Control callbacks
	OnQuit func() // Backend requests shutdown (e.g., window close)
}
