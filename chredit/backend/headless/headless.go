package headless

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/valerio/go-chredit/chredit/backend"
	"github.com/valerio/go-chredit/chredit/debug"
	"github.com/valerio/go-chredit/chredit/input"
	"github.com/valerio/go-chredit/chredit/input/action"
	"github.com/valerio/go-chredit/chredit/input/event"
	"github.com/valerio/go-chredit/chredit/render"
)

// Backend implements the Backend interface for automated testing and batch
// processing. Pointer input can be scripted, one state per frame.
type Backend struct {
	config         backend.BackendConfig
	frameCount     int
	maxFrames      int
	snapshotConfig SnapshotConfig
	script         []input.Pointer
	events         map[int][]backend.InputEvent
	last           input.Pointer
}

// SnapshotConfig holds configuration for frame snapshots
type SnapshotConfig struct {
	Enabled   bool
	Interval  int    // Save snapshot every N frames
	Directory string // Directory to save snapshots
}

func New(maxFrames int, snapshotConfig SnapshotConfig) *Backend {
	return &Backend{
		maxFrames:      maxFrames,
		snapshotConfig: snapshotConfig,
		events:         make(map[int][]backend.InputEvent),
	}
}

// Script queues pointer states, consumed one per frame starting with the
// next Update. Once the script runs out the pointer stays where it was with
// no button held.
func (h *Backend) Script(pointers ...input.Pointer) {
	h.script = append(h.script, pointers...)
}

// At queues a key action to be reported on the given frame (1-based).
func (h *Backend) At(frame int, act action.Action) {
	h.events[frame] = append(h.events[frame], backend.InputEvent{Action: act, Type: event.Press})
}

func (h *Backend) Init(config backend.BackendConfig) error {
	h.config = config

	slog.Info("Running headless mode",
		"frames", h.maxFrames,
		"snapshot_interval", h.snapshotConfig.Interval,
		"snapshot_dir", h.snapshotConfig.Directory)

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.LogLevel,
	})
	slog.SetDefault(slog.New(handler))

	return nil
}

// Update records the scene for snapshots and replays scripted input.
func (h *Backend) Update(scene *render.Scene) (backend.Input, error) {
	h.frameCount++

	in := backend.Input{
		Events:  h.events[h.frameCount],
		Pointer: h.nextPointer(),
	}

	// Save snapshot if needed
	if h.snapshotConfig.Enabled && h.frameCount%h.snapshotConfig.Interval == 0 {
		h.saveSnapshot(scene)
	}

	// Log progress periodically
	if h.frameCount%10 == 0 {
		slog.Debug("Frame progress", "completed", h.frameCount, "total", h.maxFrames)
	}

	// Check if we've reached the target frame count
	if h.frameCount >= h.maxFrames {
		// Save final snapshot if enabled and we haven't just saved one
		if h.snapshotConfig.Enabled && h.frameCount%h.snapshotConfig.Interval != 0 {
			h.saveSnapshot(scene)
		}

		if h.snapshotConfig.Enabled {
			slog.Info("Headless execution completed", "frames", h.maxFrames, "png_snapshots_saved_to", h.snapshotConfig.Directory)
		} else {
			slog.Info("Headless execution completed", "frames", h.maxFrames)
		}

		// Signal completion via quit event
		in.Events = append(in.Events, backend.InputEvent{Action: action.EditorQuit, Type: event.Press})
	}

	return in, nil
}

func (h *Backend) Cleanup() error {
	return nil
}

// Frames returns the number of frames processed so far.
func (h *Backend) Frames() int {
	return h.frameCount
}

func (h *Backend) nextPointer() input.Pointer {
	if len(h.script) == 0 {
		return input.Pointer{Position: h.last.Position}
	}

	p := h.script[0]
	h.script = h.script[1:]
	h.last = p
	return p
}

// CreateSnapshotConfig creates a snapshot configuration from CLI parameters
func CreateSnapshotConfig(interval int, directory string) (SnapshotConfig, error) {
	config := SnapshotConfig{
		Enabled:  interval > 0,
		Interval: interval,
	}

	if !config.Enabled {
		return config, nil
	}

	// Set up snapshot directory
	if directory == "" {
		tempDir, err := os.MkdirTemp("", "chredit-snapshots-*")
		if err != nil {
			return config, fmt.Errorf("failed to create snapshot directory: %v", err)
		}
		config.Directory = tempDir
	} else {
		if err := os.MkdirAll(directory, 0755); err != nil {
			return config, fmt.Errorf("failed to create snapshot directory: %v", err)
		}
		config.Directory = directory
	}

	return config, nil
}

// saveSnapshot saves a PNG snapshot of the current scene
func (h *Backend) saveSnapshot(scene *render.Scene) {
	if scene == nil {
		return
	}
	baseName := fmt.Sprintf("chredit_frame_%d", h.frameCount)

	if _, err := debug.SaveScenePNGToDir(scene, baseName, h.snapshotConfig.Directory); err != nil {
		slog.Error("Failed to save PNG snapshot", "frame", h.frameCount, "error", err)
	}
}
