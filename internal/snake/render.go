package snake

import "github.com/vovakirdan/canvas-snake/internal/core"

// Canvas is the draw target the session renders into.
type Canvas interface {
	// Size returns the drawable surface in pixels.
	Size() (w, h int)
	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h int, c core.Color)
}

// Display shows the text elements around the canvas.
type Display interface {
	SetScore(score int)
	SetHighScore(high int)
	SetGameOver(visible bool)
	SetPaused(visible bool)
}

// Palette holds the colors used when drawing a frame.
type Palette struct {
	Background core.Color
	Head       core.Color
	Body       core.Color
	Apple      core.Color
	Obstacle   core.Color
}

// DefaultPalette returns the classic dark palette.
func DefaultPalette() Palette {
	return Palette{
		Background: core.ColorBackground,
		Head:       core.ColorHead,
		Body:       core.ColorBody,
		Apple:      core.ColorApple,
		Obstacle:   core.ColorObstacle,
	}
}

// DrawTo renders the current state into dst.
// Order: background, head, body, apple, obstacles.
func (s *Session) DrawTo(dst Canvas) {
	if dst == nil {
		return
	}
	cell := s.grid.CellSize
	w, h := dst.Size()
	dst.FillRect(0, 0, w, h, s.palette.Background)

	if len(s.snake) > 0 {
		head := s.snake[0]
		dst.FillRect(head.X, head.Y, cell, cell, s.palette.Head)
		for _, seg := range s.snake[1:] {
			dst.FillRect(seg.X, seg.Y, cell, cell, s.palette.Body)
		}
	}

	dst.FillRect(s.apple.X, s.apple.Y, cell, cell, s.palette.Apple)

	for _, obs := range s.obstacles {
		dst.FillRect(obs.X, obs.Y, cell, cell, s.palette.Obstacle)
	}
}

type nopCanvas struct{}

func (nopCanvas) Size() (int, int) { return 0, 0 }

func (nopCanvas) FillRect(_, _, _, _ int, _ core.Color) {}

type nopDisplay struct{}

func (nopDisplay) SetScore(int) {}

func (nopDisplay) SetHighScore(int) {}

func (nopDisplay) SetGameOver(bool) {}

func (nopDisplay) SetPaused(bool) {}
