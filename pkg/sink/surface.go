package sink

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*Surface)(nil)

// Surface is an in-memory display. It satisfies drivers.Displayer so the
// same drawing code can target a real panel or a desktop window.
type Surface struct {
	img     *image.RGBA
	front   *image.RGBA
	flushes int
}

// NewSurface creates a width x height surface.
func NewSurface(width, height int) *Surface {
	r := image.Rect(0, 0, width, height)
	return &Surface{
		img:   image.NewRGBA(r),
		front: image.NewRGBA(r),
	}
}

func (s *Surface) Size() (x, y int16) {
	b := s.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (s *Surface) SetPixel(x, y int16, c color.RGBA) {
	s.img.SetRGBA(int(x), int(y), c)
}

// Display publishes the back buffer. Pixels set since the last call become
// visible through Image.
func (s *Surface) Display() error {
	copy(s.front.Pix, s.img.Pix)
	s.flushes++
	return nil
}

func (s *Surface) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	r := image.Rect(int(x), int(y), int(x)+int(width), int(y)+int(height)).Intersect(s.img.Bounds())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			s.img.SetRGBA(px, py, c)
		}
	}
	return nil
}

// Image returns the last displayed frame. The image is reused between
// frames.
func (s *Surface) Image() *image.RGBA {
	return s.front
}

// Frames returns how many times Display has been called.
func (s *Surface) Frames() int {
	return s.flushes
}
