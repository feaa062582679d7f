package sink

import (
	"image"
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// halfBlock is drawn with the top pixel as foreground and the bottom pixel
// as background, so each cell shows two rows.
const halfBlock = "▀"

// Terminal draws images into a terminal screen using half-block cells.
type Terminal struct {
	Cols int
	Rows int
}

// NewTerminal creates a terminal sink for a cols x rows cell area.
func NewTerminal(cols, rows int) *Terminal {
	return &Terminal{Cols: cols, Rows: rows}
}

// FramebufferSize returns the image size that fills the terminal exactly:
// one pixel per column and two per row.
func (t *Terminal) FramebufferSize() (width, height int) {
	return t.Cols, t.Rows * 2
}

// Draw paints img into area of scr. Pixel row 2k maps to the top half of
// cell row area.Min.Y+k. Cells past the image edge are left untouched.
func (t *Terminal) Draw(scr uv.Screen, area uv.Rectangle, img *image.RGBA) {
	b := img.Bounds()
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := b.Min.Y + (row-area.Min.Y)*2
		if topY >= b.Max.Y {
			break
		}
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X; col++ {
			x := b.Min.X + col - area.Min.X
			if x >= b.Max.X {
				break
			}

			bottom := color.Color(nil)
			if botY < b.Max.Y {
				bottom = rgbaToColor(img.RGBAAt(x, botY))
			}

			scr.SetCell(col, row, &uv.Cell{
				Content: halfBlock,
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(img.RGBAAt(x, topY)),
					Bg: bottom,
				},
			})
		}
	}
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}
