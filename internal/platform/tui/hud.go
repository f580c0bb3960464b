package tui

import "fmt"

// HUD holds the text shown around the grid.
// It implements snake.Display.
type HUD struct {
	score     int
	highScore int
	gameOver  bool
	paused    bool
}

func (h *HUD) SetScore(v int) {
	h.score = v
}

func (h *HUD) SetHighScore(v int) {
	h.highScore = v
}

func (h *HUD) SetGameOver(v bool) {
	h.gameOver = v
}

func (h *HUD) SetPaused(v bool) {
	h.paused = v
}

// ScoreLabel returns the score text.
func (h *HUD) ScoreLabel() string {
	return fmt.Sprintf("SCORE: %d", h.score)
}

// HighScoreLabel returns the high score text.
func (h *HUD) HighScoreLabel() string {
	return fmt.Sprintf("HIGH SCORE: %d", h.highScore)
}

// Banner returns the state message, or "" while playing.
func (h *HUD) Banner() string {
	switch {
	case h.gameOver:
		return "GAME OVER - press enter or space"
	case h.paused:
		return "PAUSED - press space"
	}
	return ""
}
