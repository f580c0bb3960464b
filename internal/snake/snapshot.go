package snake

import (
	"fmt"
	"strings"
)

// Snapshot captures the session state for determinism testing and reporting.
type Snapshot struct {
	Round     string
	Ticks     uint64
	State     State
	Score     int
	HighScore int
	SnakeLen  int
	HeadX     int
	HeadY     int
	Dir       Direction
	AppleX    int
	AppleY    int
	Obstacles int
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	headX, headY := 0, 0
	if len(s.snake) > 0 {
		headX = s.snake[0].X
		headY = s.snake[0].Y
	}

	return Snapshot{
		Round:     s.roundID,
		Ticks:     s.ticks,
		State:     s.state,
		Score:     s.scores.Score(),
		HighScore: s.scores.HighScore(),
		SnakeLen:  len(s.snake),
		HeadX:     headX,
		HeadY:     headY,
		Dir:       s.direction,
		AppleX:    s.apple.X,
		AppleY:    s.apple.Y,
		Obstacles: len(s.obstacles),
	}
}

// String renders the snapshot as a short multi-line report.
func (sn Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ticks: %d, State: %s, Score: %d, High: %d\n", sn.Ticks, sn.State, sn.Score, sn.HighScore)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Head: (%d, %d)\n", sn.SnakeLen, sn.Dir, sn.HeadX, sn.HeadY)
	fmt.Fprintf(&b, "Apple: (%d, %d), Obstacles: %d", sn.AppleX, sn.AppleY, sn.Obstacles)
	return b.String()
}
