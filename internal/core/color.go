package core

import (
	"fmt"
	"regexp"
)

// Color is a hex RGB color in "#RRGGBB" form.
// Both lipgloss and gg accept this form directly.
type Color string

// Default palette colors.
const (
	ColorBackground Color = "#090D18"
	ColorHead       Color = "#6FDB49"
	ColorBody       Color = "#4BAB53"
	ColorApple      Color = "#EB3534"
	ColorObstacle   Color = "#F0F3F9"
	ColorText       Color = "#F0F3F9"
	ColorMuted      Color = "#6B7280"
)

var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Valid reports whether c is a well-formed "#RRGGBB" value.
func (c Color) Valid() bool {
	return hexColorRe.MatchString(string(c))
}

// ParseColor validates s and returns it as a Color.
func ParseColor(s string) (Color, error) {
	c := Color(s)
	if !c.Valid() {
		return "", fmt.Errorf("core: invalid color %q (want #RRGGBB)", s)
	}
	return c, nil
}
