package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/canvas-snake/internal/config"
	"github.com/vovakirdan/canvas-snake/internal/metrics"
	"github.com/vovakirdan/canvas-snake/internal/platform/tui"
	"github.com/vovakirdan/canvas-snake/internal/storage"
)

var flagMetricsFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Start an interactive round.

Controls:
  Arrows/WASD  - Steer (no reversing)
  Space        - Pause/resume, restart after game over
  Enter        - Restart after game over
  Ctrl+S       - Save a PNG screenshot to ~/.snake/screenshots
  Q/Ctrl+C     - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --config ./my-snake.yaml
  snake play --metrics-file /var/lib/node_exporter/snake.prom`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMetricsFile, "metrics-file", "", "Write Prometheus metrics to this file on exit")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		exitf("%v", err)
	}

	logFile, err := openLogFile()
	if err != nil {
		exitf("cannot open log file: %v", err)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		exitf("%v", err)
	}

	opts := tui.Options{
		Session: sessionOptions(cfg),
		Logger:  logger,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database, high score will not persist", "error", err)
		// Continue without persistence - game still works
		opts.Session.Store = storage.NewMemoryStore()
	} else {
		defer store.Close()
		opts.Session.Store = store
		opts.Rounds = store
	}

	if dir, err := storage.ExpandHome(filepath.Join(appDir, "screenshots")); err == nil {
		opts.ScreenshotDir = dir
	}

	var recorder *metrics.Recorder
	if flagMetricsFile != "" {
		recorder = metrics.NewRecorder()
		opts.Session.Observer = recorder
	}

	final, runErr := tui.Run(opts)
	if runErr != nil {
		exitf("running game: %v", runErr)
	}

	if recorder != nil {
		recorder.SetHighScore(final.HighScore)
		if err := recorder.WriteTextfile(flagMetricsFile); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	fmt.Printf("Score: %d  High score: %d\n", final.Score, final.HighScore)
}
