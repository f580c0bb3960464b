// snake is a grid snake game for the terminal.
//
// Usage:
//
//	snake play              - Play interactively
//	snake scores            - Show round history and the high score
//	snake frame             - Simulate ticks headlessly and write a PNG frame
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible rounds
//	--db <path>          - Set database path (default: ~/.snake/scores.db)
//	--config <path>      - Use a custom YAML config
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer a growing snake around a wrapping grid",
	Long: `Snake is a grid snake game for the terminal. Eat apples to grow,
avoid obstacles and your own body. The field wraps at every edge.

Available commands:
  play     - Play interactively
  scores   - View round history and the high score
  frame    - Render a frame headlessly

Examples:
  snake play
  snake play --seed 42 --metrics-file snake.prom
  snake scores
  snake frame --ticks 50 --keys "10:down,20:left" --out frame.png`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(frameCmd)
}
