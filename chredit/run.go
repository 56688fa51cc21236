package chredit

import (
	"fmt"
	"log/slog"

	"github.com/valerio/go-chredit/chredit/backend"
	"github.com/valerio/go-chredit/chredit/input"
	"github.com/valerio/go-chredit/chredit/input/action"
	"github.com/valerio/go-chredit/chredit/input/event"
	"github.com/valerio/go-chredit/chredit/timing"
)

// Run drives the editor with the given backend until the editor quits.
// Key events go through a debounced input manager; pointer state is applied
// with one Tick per frame.
func Run(b backend.Backend, config backend.BackendConfig, e *Editor, limiter timing.Limiter) error {
	if limiter == nil {
		limiter = timing.NewNoOpLimiter()
	}
	if config.Callbacks.OnQuit == nil {
		config.Callbacks.OnQuit = e.Quit
	}

	if err := b.Init(config); err != nil {
		return fmt.Errorf("failed to initialize backend: %w", err)
	}
	defer func() {
		if err := b.Cleanup(); err != nil {
			slog.Warn("Backend cleanup failed", "error", err)
		}
	}()

	manager := input.NewManager()
	e.Bind(manager)

	if h, ok := b.(backend.ActionHandler); ok {
		for _, act := range []action.Action{action.DebugLogLevelIncrease, action.DebugLogLevelDecrease} {
			manager.On(act, event.Press, func() {
				h.HandleAction(act)
			})
		}
	}

	slog.Info("Editor started", "character", e.CharacterPath(), "samples", e.SamplesPath())

	limiter.Reset()
	for !e.Done() {
		in, err := b.Update(e.Scene())
		if err != nil {
			return fmt.Errorf("backend update failed: %w", err)
		}

		for _, ev := range in.Events {
			manager.Trigger(ev.Action, ev.Type)
		}

		if err := e.Tick(in.Pointer); err != nil {
			return err
		}

		limiter.WaitForNextFrame()
	}

	slog.Info("Editor stopped")
	return nil
}
