package render

import (
	"image/color"

	"github.com/taigrr/tinyray/pkg/math3d"
)

// ToneMap converts an unbounded linear colour to an opaque 8-bit pixel.
//
// A colour whose brightest channel exceeds 1 is first scaled down uniformly,
// which keeps its hue; each channel is then clamped to [0, 1] and truncated
// to a byte. The order matters: clamping first would turn (2, 1, 0) into
// yellow instead of orange.
func ToneMap[T math3d.Float](v math3d.Vec3[T]) color.RGBA {
	if m := v.MaxComponent(); m > 1 {
		v = v.Scale(1 / m)
	}
	return color.RGBA{
		R: quantize(v.X),
		G: quantize(v.Y),
		B: quantize(v.Z),
		A: 255,
	}
}

// quantize maps a channel to [0, 255], treating NaN as black.
func quantize[T math3d.Float](c T) uint8 {
	if !(c > 0) {
		return 0
	}
	if c >= 1 {
		return 255
	}
	return uint8(255 * c)
}
