package config

import (
	_ "embed"

	"github.com/vovakirdan/canvas-snake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration:
// a 640x640 canvas of 16px cells, 5 obstacles and a 100ms tick.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Canvas: CanvasConfig{
			Width:  640,
			Height: 640,
		},
		Grid: GridConfig{
			CellSize: 16,
		},
		Obstacles: ObstaclesConfig{
			Count: 5,
		},
		Timing: TimingConfig{
			FrameTimeoutMS: 100,
		},
		Spawn: SpawnConfig{
			MaxAttempts: 1000,
		},
		Start: StartConfig{
			CellX: 10,
			CellY: 10,
		},
		Colors: ColorsConfig{
			Background: string(core.ColorBackground),
			Head:       string(core.ColorHead),
			Body:       string(core.ColorBody),
			Apple:      string(core.ColorApple),
			Obstacle:   string(core.ColorObstacle),
		},
		Storage: StorageConfig{
			HighScoreKey: "high-score",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
