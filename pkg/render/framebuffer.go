package render

import (
	"image"
	"image/color"

	"github.com/taigrr/tinyray/pkg/math3d"
)

// Framebuffer holds one frame of linear, not yet tone mapped, colours.
type Framebuffer[T math3d.Float] struct {
	Width  int
	Height int
	Pixels []math3d.Vec3[T] // Row-major pixel data
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
func NewFramebuffer[T math3d.Float](width, height int) *Framebuffer[T] {
	return &Framebuffer[T]{
		Width:  width,
		Height: height,
		Pixels: make([]math3d.Vec3[T], width*height),
	}
}

// ToImage tone maps the framebuffer into a standard Go image.RGBA.
func (fb *Framebuffer[T]) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	fb.ToneMapInto(img)
	return img
}

// ToneMapInto tone maps the framebuffer into an existing image, which must
// be at least as large as the framebuffer.
func (fb *Framebuffer[T]) ToneMapInto(img *image.RGBA) {
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, ToneMap(fb.Pixels[y*fb.Width+x]))
		}
	}
}

// PixelFunc receives one finished pixel.
type PixelFunc func(x, y int, c color.RGBA)
