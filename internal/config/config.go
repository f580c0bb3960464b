// Package config provides YAML-based configuration loading for the snake
// game: canvas geometry, timing, spawning, colors and storage keys.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/canvas-snake/internal/core"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Canvas    CanvasConfig    `yaml:"canvas"`
	Grid      GridConfig      `yaml:"grid"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Timing    TimingConfig    `yaml:"timing"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Start     StartConfig     `yaml:"start"`
	Colors    ColorsConfig    `yaml:"colors"`
	Storage   StorageConfig   `yaml:"storage"`
}

// CanvasConfig is the drawing surface size in pixels.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GridConfig defines the cell size in pixels.
type GridConfig struct {
	CellSize int `yaml:"cell_size"`
}

// ObstaclesConfig defines how many obstacles each round places.
type ObstaclesConfig struct {
	Count int `yaml:"count"`
}

// TimingConfig defines the tick period.
type TimingConfig struct {
	FrameTimeoutMS int `yaml:"frame_timeout_ms"`
}

// SpawnConfig bounds the random draws used to place the apple and obstacles.
type SpawnConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// StartConfig is the snake's start cell in grid coordinates.
type StartConfig struct {
	CellX int `yaml:"cell_x"`
	CellY int `yaml:"cell_y"`
}

// ColorsConfig holds hex colors for each drawn element.
type ColorsConfig struct {
	Background string `yaml:"background"`
	Head       string `yaml:"head"`
	Body       string `yaml:"body"`
	Apple      string `yaml:"apple"`
	Obstacle   string `yaml:"obstacle"`
}

// StorageConfig names the key/value entries the game uses.
type StorageConfig struct {
	HighScoreKey string `yaml:"high_score_key"`
}

var (
	ErrCanvasSize   = errors.New("config: canvas width and height must be positive")
	ErrCellSize     = errors.New("config: cell size must be positive")
	ErrGridTooSmall = errors.New("config: grid must be at least 2x2 cells")
	ErrFrameTimeout = errors.New("config: frame timeout must be positive")
)

// Grid returns the cell grid implied by the canvas and cell size.
func (c SnakeConfig) CellGrid() core.Grid {
	return core.NewGrid(c.Canvas.Width, c.Canvas.Height, c.Grid.CellSize)
}

// FrameTimeout returns the tick period as a duration.
func (c SnakeConfig) FrameTimeout() time.Duration {
	return time.Duration(c.Timing.FrameTimeoutMS) * time.Millisecond
}

// Validate reports the first problem that would prevent a session from
// starting with this configuration.
func (c SnakeConfig) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return ErrCanvasSize
	}
	if c.Grid.CellSize <= 0 {
		return ErrCellSize
	}
	g := c.CellGrid()
	if g.Cols < 2 || g.Rows < 2 {
		return fmt.Errorf("%w: got %dx%d", ErrGridTooSmall, g.Cols, g.Rows)
	}
	if c.Timing.FrameTimeoutMS <= 0 {
		return ErrFrameTimeout
	}
	if c.Obstacles.Count < 0 || c.Obstacles.Count > g.Cells()/2 {
		return fmt.Errorf("config: obstacle count %d must be between 0 and %d", c.Obstacles.Count, g.Cells()/2)
	}
	if c.Spawn.MaxAttempts < 0 {
		return fmt.Errorf("config: spawn max_attempts %d must not be negative", c.Spawn.MaxAttempts)
	}
	if c.Start.CellX < 0 || c.Start.CellX >= g.Cols || c.Start.CellY < 0 || c.Start.CellY >= g.Rows {
		return fmt.Errorf("config: start cell (%d, %d) is outside the %dx%d grid", c.Start.CellX, c.Start.CellY, g.Cols, g.Rows)
	}

	colors := []struct {
		name  string
		value string
	}{
		{"background", c.Colors.Background},
		{"head", c.Colors.Head},
		{"body", c.Colors.Body},
		{"apple", c.Colors.Apple},
		{"obstacle", c.Colors.Obstacle},
	}
	for _, col := range colors {
		if _, err := core.ParseColor(col.value); err != nil {
			return fmt.Errorf("config: colors.%s: %w", col.name, err)
		}
	}
	return nil
}
