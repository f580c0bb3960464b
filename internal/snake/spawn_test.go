package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/canvas-snake/internal/core"
)

func TestRandomGridPoint(t *testing.T) {
	grid := core.NewGrid(640, 320, 16)
	rng := rand.New(rand.NewSource(1))
	seen := make(map[core.Point]bool)

	for _i := 0; _i < 5000; _i++ {
		p := RandomGridPoint(rng, grid)
		if !grid.Contains(p) {
			t.Fatalf("RandomGridPoint() = %v outside %dx%d grid", p, grid.Cols, grid.Rows)
		}
		if p.X%16 != 0 || p.Y%16 != 0 {
			t.Fatalf("RandomGridPoint() = %v not aligned to cells", p)
		}
		seen[p] = true
	}

	// 5000 draws over 800 cells should reach most of them.
	if len(seen) < grid.Cells()/2 {
		t.Errorf("only %d distinct cells drawn out of %d", len(seen), grid.Cells())
	}
}

func TestGenerateObstacles(t *testing.T) {
	grid := core.NewGrid(640, 640, 16)
	rng := rand.New(rand.NewSource(3))
	reserved := pt(160, 160)

	obstacles := generateObstacles(rng, grid, 50, reserved, DefaultMaxSpawnAttempts)

	if len(obstacles) != 50 {
		t.Fatalf("len = %d, expected 50", len(obstacles))
	}
	seen := make(map[core.Point]bool)
	for _, o := range obstacles {
		if o == reserved {
			t.Errorf("obstacle placed on reserved cell %v", o)
		}
		if seen[o] {
			t.Errorf("duplicate obstacle %v", o)
		}
		seen[o] = true
	}
}

func TestGenerateObstaclesBounded(t *testing.T) {
	// 2x2 grid with one reserved cell has room for only three obstacles.
	grid := core.NewGrid(32, 32, 16)
	rng := rand.New(rand.NewSource(5))

	obstacles := generateObstacles(rng, grid, 4, pt(0, 0), 10)
	if len(obstacles) > 3 {
		t.Errorf("len = %d, expected at most 3", len(obstacles))
	}
}

func TestSpawnAppleAvoidsObstacles(t *testing.T) {
	grid := core.NewGrid(640, 640, 16)
	rng := rand.New(rand.NewSource(9))
	obstacles := generateObstacles(rng, grid, 200, pt(-1, -1), DefaultMaxSpawnAttempts)

	for _i := 0; _i < 1000; _i++ {
		res := spawnApple(rng, grid, obstacles, DefaultMaxSpawnAttempts)
		if CheckCollision(res.Point, obstacles) {
			t.Fatalf("apple spawned on obstacle %v", res.Point)
		}
		if res.Attempts < 1 || res.Attempts > DefaultMaxSpawnAttempts {
			t.Fatalf("attempts = %d out of range", res.Attempts)
		}
	}
}

func TestSpawnAppleFallback(t *testing.T) {
	grid := core.NewGrid(64, 64, 16)
	free := pt(48, 32)

	var obstacles []core.Point
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			if p := grid.CellToPixel(col, row); p != free {
				obstacles = append(obstacles, p)
			}
		}
	}

	// Either the single draw or the scan has to land on the one free cell.
	res := spawnApple(rand.New(rand.NewSource(11)), grid, obstacles, 1)
	if res.Point != free {
		t.Errorf("apple = %v, expected the only free cell %v", res.Point, free)
	}
	if res.Attempts != 1 {
		t.Errorf("attempts = %d, expected 1", res.Attempts)
	}
}
