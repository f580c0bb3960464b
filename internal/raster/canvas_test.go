package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/canvas-snake/internal/core"
)

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func TestNewCanvasClearedToBackground(t *testing.T) {
	c := New(64, 32, core.ColorBackground)

	w, h := c.Size()
	if w != 64 || h != 32 {
		t.Fatalf("Size() = %dx%d, want 64x32", w, h)
	}
	if c.Fills() != 0 {
		t.Errorf("Fills() = %d after New, want 0", c.Fills())
	}

	want := color.RGBA{0x09, 0x0D, 0x18, 0xFF}
	for _, p := range [][2]int{{0, 0}, {63, 31}, {30, 10}} {
		if got := rgba(c.Image().At(p[0], p[1])); got != want {
			t.Errorf("pixel %v = %v, want %v", p, got, want)
		}
	}
}

func TestFillRect(t *testing.T) {
	c := New(64, 64, core.ColorBackground)
	c.FillRect(16, 16, 16, 16, core.ColorApple)

	apple := color.RGBA{0xEB, 0x35, 0x34, 0xFF}
	if got := rgba(c.Image().At(20, 20)); got != apple {
		t.Errorf("inside pixel = %v, want %v", got, apple)
	}
	if got := rgba(c.Image().At(40, 40)); got == apple {
		t.Error("pixel outside the rectangle was filled")
	}

	// Degenerate rectangles are ignored
	c.FillRect(0, 0, 0, 10, core.ColorHead)
	if c.Fills() != 1 {
		t.Errorf("Fills() = %d, want 1", c.Fills())
	}
}

func TestSavePNG(t *testing.T) {
	c := New(32, 32, core.ColorBackground)
	c.FillRect(0, 0, 16, 16, core.ColorHead)

	path := filepath.Join(t.TempDir(), "shots", "frame.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open saved file: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Errorf("decoded bounds = %v, want 32x32", b)
	}
}

func TestEncodePNG(t *testing.T) {
	c := New(8, 8, core.ColorObstacle)

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}
