package sink

import (
	"image"
	"image/color"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
)

func TestTerminalFramebufferSize(t *testing.T) {
	w, h := NewTerminal(80, 24).FramebufferSize()
	if w != 80 || h != 48 {
		t.Errorf("FramebufferSize() = %dx%d, want 80x48", w, h)
	}
}

func TestTerminalDraw(t *testing.T) {
	img := testImage()
	scr := uv.NewScreenBuffer(4, 2)
	term := NewTerminal(4, 2)
	term.Draw(scr, uv.Rect(1, 0, 3, 2), img)

	tests := []struct {
		x, y   int
		fg, bg color.Color
	}{
		{1, 0, color.RGBA{255, 0, 0, 255}, color.RGBA{0, 0, 255, 255}},
		{2, 0, color.RGBA{0, 255, 0, 255}, color.RGBA{10, 20, 30, 128}},
	}
	for _, tt := range tests {
		cell := scr.CellAt(tt.x, tt.y)
		if cell == nil || cell.Content != halfBlock {
			t.Fatalf("cell (%d, %d) = %+v, want half block", tt.x, tt.y, cell)
		}
		if cell.Style.Fg != tt.fg || cell.Style.Bg != tt.bg {
			t.Errorf("cell (%d, %d) fg/bg = %v/%v, want %v/%v", tt.x, tt.y, cell.Style.Fg, cell.Style.Bg, tt.fg, tt.bg)
		}
	}

	// The image is two pixel rows tall, so the second cell row and the
	// column past the image stay empty.
	for _, p := range []image.Point{{1, 1}, {3, 0}, {0, 0}} {
		if cell := scr.CellAt(p.X, p.Y); cell != nil && cell.Content == halfBlock {
			t.Errorf("cell %v was drawn", p)
		}
	}
}

func TestTerminalDrawOddHeight(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{1, 2, 3, 255})
	scr := uv.NewScreenBuffer(1, 1)
	NewTerminal(1, 1).Draw(scr, scr.Bounds(), img)

	cell := scr.CellAt(0, 0)
	if cell == nil || cell.Style.Bg != nil {
		t.Errorf("cell = %+v, want no background below the last row", cell)
	}
}
