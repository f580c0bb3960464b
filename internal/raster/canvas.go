// Package raster draws game frames into an in-memory RGBA image using
// fogleman/gg. It backs headless frame rendering and screenshots.
package raster

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/canvas-snake/internal/core"
)

// Canvas is a pixel canvas backed by a gg.Context.
// It implements snake.Canvas.
type Canvas struct {
	dc     *gg.Context
	width  int
	height int
	fills  int
}

// New creates a canvas of the given pixel size, cleared to background.
func New(width, height int, background core.Color) *Canvas {
	c := &Canvas{
		dc:     gg.NewContext(width, height),
		width:  width,
		height: height,
	}
	c.FillRect(0, 0, width, height, background)
	c.fills = 0
	return c
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// FillRect fills an axis-aligned rectangle with a solid color.
func (c *Canvas) FillRect(x, y, w, h int, col core.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	c.dc.SetHexColor(string(col))
	c.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	c.dc.Fill()
	c.fills++
}

// Fills returns how many rectangles have been drawn since creation.
func (c *Canvas) Fills() int {
	return c.fills
}

// Image returns the underlying image.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the current frame as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the current frame to path, creating parent directories.
func (c *Canvas) SavePNG(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("raster: cannot create directory %s: %w", dir, err)
		}
	}
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("raster: save %s: %w", path, err)
	}
	return nil
}
