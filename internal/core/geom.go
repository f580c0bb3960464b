// Package core provides fundamental types and utilities shared by the game
// engine and its platform bindings. It imports no Bubble Tea packages.
package core

// Point is a position on the canvas in pixel units.
// Points produced by the engine are always multiples of the grid cell size.
type Point struct {
	X, Y int
}

// Add returns the sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// ToGridCount returns how many whole cells of cellSize fit into size.
func ToGridCount(size, cellSize int) int {
	if cellSize <= 0 || size <= 0 {
		return 0
	}
	return size / cellSize
}

// Grid describes the cell layout of the canvas.
type Grid struct {
	CellSize int // Cell edge in pixels
	Cols     int // Cells along the x axis
	Rows     int // Cells along the y axis
}

// NewGrid derives a grid from canvas dimensions and a cell size.
func NewGrid(canvasW, canvasH, cellSize int) Grid {
	return Grid{
		CellSize: cellSize,
		Cols:     ToGridCount(canvasW, cellSize),
		Rows:     ToGridCount(canvasH, cellSize),
	}
}

// Width returns the grid extent along x in pixels.
func (g Grid) Width() int {
	return g.Cols * g.CellSize
}

// Height returns the grid extent along y in pixels.
func (g Grid) Height() int {
	return g.Rows * g.CellSize
}

// Cells returns the total number of cells.
func (g Grid) Cells() int {
	return g.Cols * g.Rows
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width() && p.Y >= 0 && p.Y < g.Height()
}

// CellToPixel converts cell coordinates to the pixel position of the cell.
func (g Grid) CellToPixel(col, row int) Point {
	return Point{X: col * g.CellSize, Y: row * g.CellSize}
}

// PixelToCell converts a pixel position to the coordinates of its cell.
func (g Grid) PixelToCell(p Point) (col, row int) {
	if g.CellSize <= 0 {
		return 0, 0
	}
	return p.X / g.CellSize, p.Y / g.CellSize
}

// Wrap maps a point that left the grid by at most one cell back inside it.
// Each axis is handled on its own.
func (g Grid) Wrap(p Point) Point {
	return Point{
		X: WrapAxis(p.X, g.Width(), g.CellSize),
		Y: WrapAxis(p.Y, g.Height(), g.CellSize),
	}
}

// WrapAxis wraps a single coordinate into [0, extent).
// Movement never exceeds one cell per tick, so one conditional is enough.
func WrapAxis(v, extent, step int) int {
	if v < 0 {
		return extent - step
	}
	if v >= extent {
		return 0
	}
	return v
}

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// CeilDiv divides a by b rounding up. b must be positive.
func CeilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
