package snake

import (
	"math/rand"

	"github.com/vovakirdan/canvas-snake/internal/core"
)

// DefaultMaxSpawnAttempts bounds random placement retries.
const DefaultMaxSpawnAttempts = 1000

// RandomGridPoint picks a uniformly random cell and returns its pixel position.
// The axes are sampled independently.
func RandomGridPoint(rng *rand.Rand, grid core.Grid) core.Point {
	return grid.CellToPixel(rng.Intn(grid.Cols), rng.Intn(grid.Rows))
}

// generateObstacles places count distinct obstacles, none on reserved.
// Gives up after maxAttempts draws per obstacle and returns what it placed.
func generateObstacles(rng *rand.Rand, grid core.Grid, count int, reserved core.Point, maxAttempts int) []core.Point {
	obstacles := make([]core.Point, 0, count)
	budget := count * maxAttempts
	for len(obstacles) < count && budget > 0 {
		budget--
		p := RandomGridPoint(rng, grid)
		if p == reserved || CheckCollision(p, obstacles) {
			continue
		}
		obstacles = append(obstacles, p)
	}
	return obstacles
}

// spawnResult describes how an apple position was chosen.
type spawnResult struct {
	Point    core.Point
	Attempts int  // Random draws made
	Fallback bool // Random draws exhausted, scanned for a free cell
}

// spawnApple draws random cells until one is free of obstacles.
// After maxAttempts draws it takes the first free cell in scan order.
func spawnApple(rng *rand.Rand, grid core.Grid, obstacles []core.Point, maxAttempts int) spawnResult {
	var last core.Point
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		last = RandomGridPoint(rng, grid)
		if !CheckCollision(last, obstacles) {
			return spawnResult{Point: last, Attempts: attempt}
		}
	}

	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			p := grid.CellToPixel(col, row)
			if !CheckCollision(p, obstacles) {
				return spawnResult{Point: p, Attempts: maxAttempts, Fallback: true}
			}
		}
	}

	// Every cell is an obstacle; configuration validation rules this out.
	return spawnResult{Point: last, Attempts: maxAttempts, Fallback: true}
}
