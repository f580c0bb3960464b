package snake

import "github.com/vovakirdan/canvas-snake/internal/core"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Offset returns the pixel offset of one step of the given size.
func (d Direction) Offset(step int) core.Point {
	switch d {
	case DirUp:
		return core.Point{Y: -step}
	case DirDown:
		return core.Point{Y: step}
	case DirLeft:
		return core.Point{X: -step}
	default:
		return core.Point{X: step}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// directionForKey maps arrow keys to directions.
func directionForKey(k core.Key) (Direction, bool) {
	switch k {
	case core.KeyArrowLeft:
		return DirLeft, true
	case core.KeyArrowUp:
		return DirUp, true
	case core.KeyArrowRight:
		return DirRight, true
	case core.KeyArrowDown:
		return DirDown, true
	}
	return 0, false
}
