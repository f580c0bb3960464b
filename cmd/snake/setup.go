package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/canvas-snake/internal/config"
	"github.com/vovakirdan/canvas-snake/internal/core"
	"github.com/vovakirdan/canvas-snake/internal/snake"
	"github.com/vovakirdan/canvas-snake/internal/storage"
)

// appDir is the per-user directory for logs, screenshots and the database.
const appDir = "~/.snake"

// newLogger creates a logger writing to w at the level given by --log-level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, nil
}

// openLogFile opens ~/.snake/snake.log for appending.
// Interactive play logs there while the alternate screen is active.
func openLogFile() (*os.File, error) {
	path, err := storage.ExpandHome(filepath.Join(appDir, "snake.log"))
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// sessionOptions converts the loaded configuration into engine options.
// Collaborators are left for the caller.
func sessionOptions(cfg config.SnakeConfig) snake.Options {
	opts := snake.DefaultOptions()
	opts.Grid = cfg.CellGrid()
	opts.FrameTimeout = cfg.FrameTimeout()
	opts.ObstacleCount = cfg.Obstacles.Count
	opts.StartCol = cfg.Start.CellX
	opts.StartRow = cfg.Start.CellY
	opts.MaxSpawnAttempts = cfg.Spawn.MaxAttempts
	opts.HighScoreKey = cfg.Storage.HighScoreKey
	opts.Seed = flagSeed
	opts.Palette = snake.Palette{
		Background: core.Color(cfg.Colors.Background),
		Head:       core.Color(cfg.Colors.Head),
		Body:       core.Color(cfg.Colors.Body),
		Apple:      core.Color(cfg.Colors.Apple),
		Obstacle:   core.Color(cfg.Colors.Obstacle),
	}
	return opts
}

// exitf prints an error and exits with status 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
