package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/valerio/go-chredit/chredit"
	"github.com/valerio/go-chredit/chredit/backend"
	"github.com/valerio/go-chredit/chredit/backend/headless"
	"github.com/valerio/go-chredit/chredit/backend/sdl2"
	"github.com/valerio/go-chredit/chredit/backend/terminal"
	"github.com/valerio/go-chredit/chredit/input/action"
	"github.com/valerio/go-chredit/chredit/timing"
)

func main() {
	app := cli.NewApp()
	app.Name = "chredit"
	app.Description = "A tile editor for 2bpp planar character data"
	app.Usage = "chredit [options]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "dir",
			Usage: "Directory holding data.chr and samples.sam (default: working directory)",
		},
		cli.StringFlag{
			Name:  "backend",
			Usage: "Backend to use: terminal or sdl2",
			Value: "terminal",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run the editor without a display (for testing)",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
			Value: 0,
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save scene snapshots every N frames in headless mode (0 = disabled)",
			Value: 0,
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory to save scene snapshots (default: temp directory)",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "Minimum log level: debug, info, warn or error",
			Value: "info",
		},
		cli.BoolFlag{
			Name:  "load",
			Usage: "Load the character and samples on startup",
		},
	}
	app.Action = runEditor

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running editor", "error", err)
		os.Exit(1)
	}
}

func runEditor(c *cli.Context) error {
	level, err := parseLevel(c.String("log-level"))
	if err != nil {
		return err
	}

	editor := chredit.New(chredit.Config{Dir: c.String("dir")})
	if c.Bool("load") {
		editor.HandleAction(action.LoadCharacter)
		editor.HandleAction(action.LoadSamples)
	}

	config := backend.BackendConfig{
		Title:    "chredit",
		Scale:    1,
		LogLevel: level,
	}

	if c.Bool("headless") {
		frames := c.Int("frames")
		if frames <= 0 {
			return errors.New("headless mode requires --frames option with a positive value")
		}

		snapshotConfig, err := headless.CreateSnapshotConfig(c.Int("snapshot-interval"), c.String("snapshot-dir"))
		if err != nil {
			return err
		}

		return chredit.Run(headless.New(frames, snapshotConfig), config, editor, timing.NewNoOpLimiter())
	}

	var b backend.Backend
	switch c.String("backend") {
	case "terminal":
		b = terminal.New()
	case "sdl2":
		b = sdl2.New()
	default:
		return fmt.Errorf("unknown backend %q", c.String("backend"))
	}

	limiter := timing.NewTickerLimiter()
	defer limiter.Stop()

	return chredit.Run(b, config, editor, limiter)
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return level, fmt.Errorf("invalid log level %q: %v", s, err)
	}
	return level, nil
}
