package snake

import "github.com/vovakirdan/canvas-snake/internal/core"

// CheckCollision reports whether p exactly equals any point in set.
func CheckCollision(p core.Point, set []core.Point) bool {
	for _, q := range set {
		if q == p {
			return true
		}
	}
	return false
}
