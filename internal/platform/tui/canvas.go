package tui

import (
	"github.com/vovakirdan/canvas-snake/internal/core"
)

// halfBlock draws the upper grid row in the foreground color and the lower
// one in the background color, so one terminal line holds two grid rows.
const halfBlock = '▀'

// CellCanvas implements snake.Canvas on a core.Screen.
// Pixel rectangles are snapped to grid cells; each cell is one column wide
// and half a line tall.
type CellCanvas struct {
	screen *core.Screen
	grid   core.Grid
	width  int
	height int
}

// NewCellCanvas creates a canvas for a width x height pixel surface.
func NewCellCanvas(width, height, cellSize int) *CellCanvas {
	g := core.NewGrid(width, height, cellSize)
	return &CellCanvas{
		screen: core.NewScreen(g.Cols, core.CeilDiv(g.Rows, 2)),
		grid:   g,
		width:  width,
		height: height,
	}
}

// Size returns the pixel size of the surface.
func (c *CellCanvas) Size() (int, int) {
	return c.width, c.height
}

// FillRect paints every grid cell the rectangle touches.
func (c *CellCanvas) FillRect(x, y, w, h int, col core.Color) {
	if w <= 0 || h <= 0 || c.grid.CellSize <= 0 {
		return
	}
	cs := c.grid.CellSize
	col0 := max(x, 0) / cs
	row0 := max(y, 0) / cs
	col1 := min(core.CeilDiv(x+w, cs), c.grid.Cols)
	row1 := min(core.CeilDiv(y+h, cs), c.grid.Rows)

	for row := row0; row < row1; row++ {
		for cx := col0; cx < col1; cx++ {
			c.setHalf(cx, row, col)
		}
	}
}

func (c *CellCanvas) setHalf(col, row int, color core.Color) {
	sy := row / 2
	cell := c.screen.GetCell(col, sy)
	cell.Rune = halfBlock
	if row%2 == 0 {
		cell.Color = color
	} else {
		cell.Background = color
	}
	c.screen.SetCell(col, sy, cell)
}

// ColorAt returns the color last painted into grid cell (col, row).
func (c *CellCanvas) ColorAt(col, row int) core.Color {
	cell := c.screen.GetCell(col, row/2)
	if row%2 == 0 {
		return cell.Color
	}
	return cell.Background
}

// Screen returns the backing screen buffer.
func (c *CellCanvas) Screen() *core.Screen {
	return c.screen
}
