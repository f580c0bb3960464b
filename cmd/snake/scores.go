package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/canvas-snake/internal/config"
	"github.com/vovakirdan/canvas-snake/internal/platform/tui"
	"github.com/vovakirdan/canvas-snake/internal/storage"
)

var (
	flagClear  bool
	flagBrowse bool
	flagLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show round history and the high score",
	Long: `Display the best recorded rounds, the stored high score and totals.

Examples:
  snake scores
  snake scores --limit 20
  snake scores --browse
  snake scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the round history and the high score")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse the history interactively")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to list")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		exitf("%v", err)
	}
	key := cfg.Storage.HighScoreKey

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRounds(); err != nil {
			exitf("%v", err)
		}
		if err := store.Delete(key); err != nil {
			exitf("%v", err)
		}
		fmt.Println("Round history and high score cleared.")
		return
	}

	highScore := 0
	if v, ok, err := store.Get(key); err == nil && ok {
		if n, convErr := strconv.Atoi(v); convErr == nil && n > 0 {
			highScore = n
		}
	}

	if flagBrowse {
		// Get terminal size for the table layout
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, highScore, width, height); err != nil {
			exitf("%v", err)
		}
		return
	}

	rounds, err := store.TopRounds(flagLimit)
	if err != nil {
		exitf("retrieving rounds: %v", err)
	}

	fmt.Println("High Scores - Snake")
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "Rank", "Score", "Ticks", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "----", "-----", "-----", "----")

	for i, r := range rounds {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-8d  %s\n", i+1, r.Score, r.Ticks, dateStr)
	}

	fmt.Println()
	fmt.Printf("HIGH SCORE: %d\n", highScore)

	if stats, err := store.GetStats(); err == nil {
		fmt.Printf("Rounds: %d  Average: %.1f  Total apples: %d\n", stats.Rounds, stats.AvgScore, stats.TotalScore)
		if !stats.LastPlayed.IsZero() {
			fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
		}
	}
}
