package sink

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// CaptionFont is the font used by Caption.
var CaptionFont tinyfont.Fonter = &proggy.TinySZ8pt7b

const (
	captionHeight   = 12
	captionBaseline = 9
	captionPad      = 2
)

// Present draws img to d and flushes it.
func Present(d drivers.Displayer, img *image.RGBA) error {
	Draw(d, img)
	return d.Display()
}

// Draw copies img to d pixel by pixel, clipped to the display size,
// without flushing.
func Draw(d drivers.Displayer, img *image.RGBA) {
	dw, dh := d.Size()
	b := img.Bounds()
	w := min(b.Dx(), int(dw))
	h := min(b.Dy(), int(dh))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d.SetPixel(int16(x), int16(y), img.RGBAAt(b.Min.X+x, b.Min.Y+y))
		}
	}
}

// Caption writes text along the bottom edge of d on a darkened strip. The
// strip is a blend of fg toward black so the text stays readable over any
// frame. It does not flush the display.
func Caption(d drivers.Displayer, text string, fg color.RGBA) {
	w, h := d.Size()
	if h < captionHeight {
		return
	}
	top := h - captionHeight

	c, _ := colorful.MakeColor(fg)
	strip := toRGBA(c.BlendLab(colorful.Color{}, 0.85))
	for y := top; y < h; y++ {
		for x := int16(0); x < w; x++ {
			d.SetPixel(x, y, strip)
		}
	}
	tinyfont.WriteLine(d, CaptionFont, captionPad, top+captionBaseline, text, fg)
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
