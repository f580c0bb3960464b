package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/canvas-snake/internal/core"
)

type colorPair struct {
	fg, bg core.Color
}

// styleFor returns a lipgloss style for a foreground/background pair.
// Hex colors are passed through; lipgloss downsamples for the terminal.
func styleFor(p colorPair, cache map[colorPair]lipgloss.Style) lipgloss.Style {
	if st, ok := cache[p]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if p.fg != "" {
		st = st.Foreground(lipgloss.Color(p.fg))
	}
	if p.bg != "" {
		st = st.Background(lipgloss.Color(p.bg))
	}
	cache[p] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	cache := make(map[colorPair]lipgloss.Style)
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := colorPair{cell.Color, cell.Background}

			// Collect consecutive cells with same colors
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colorPair{cell.Color, cell.Background}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (colorPair{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(start, cache).Render(run.String()))
		}
	}
	return sb.String()
}
