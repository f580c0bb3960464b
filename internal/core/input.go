package core

import "strings"

// Key identifies a discrete input event delivered to the game.
type Key string

const (
	KeyNone       Key = ""
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowRight Key = "ArrowRight"
	KeyArrowDown  Key = "ArrowDown"
	KeyEnter      Key = "Enter"
	KeySpace      Key = "Space"
)

// String returns the key identifier.
func (k Key) String() string {
	if k == KeyNone {
		return "None"
	}
	return string(k)
}

// IsArrow reports whether k is one of the four direction keys.
func (k Key) IsArrow() bool {
	switch k {
	case KeyArrowLeft, KeyArrowUp, KeyArrowRight, KeyArrowDown:
		return true
	}
	return false
}

// keyAliases maps lowercase names accepted on the command line to keys.
var keyAliases = map[string]Key{
	"arrowleft":  KeyArrowLeft,
	"left":       KeyArrowLeft,
	"l":          KeyArrowLeft,
	"arrowup":    KeyArrowUp,
	"up":         KeyArrowUp,
	"u":          KeyArrowUp,
	"arrowright": KeyArrowRight,
	"right":      KeyArrowRight,
	"r":          KeyArrowRight,
	"arrowdown":  KeyArrowDown,
	"down":       KeyArrowDown,
	"d":          KeyArrowDown,
	"enter":      KeyEnter,
	"space":      KeySpace,
}

// ParseKey resolves a key identifier or alias. Unknown names yield KeyNone.
func ParseKey(s string) Key {
	if s == " " {
		return KeySpace
	}
	if k, ok := keyAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k
	}
	return KeyNone
}
