package render

import (
	"github.com/taigrr/tinyray/pkg/math3d"
	"github.com/taigrr/tinyray/pkg/scene"
)

// Camera is a pinhole camera at the origin looking down -Z.
//
// The image plane sits one unit in front of the camera. Row 0 is the top of
// the image, and the aspect ratio stretches the horizontal axis only.
type Camera[T math3d.Float] struct {
	Width  int
	Height int
	FOV    T // vertical field of view in radians

	tanHalf T
}

// NewCamera creates a camera for a width x height image.
func NewCamera[T math3d.Float](width, height int, fov T) Camera[T] {
	return Camera[T]{
		Width:   width,
		Height:  height,
		FOV:     fov,
		tanHalf: math3d.Tan(fov / 2),
	}
}

// Direction returns the unit direction of the primary ray through pixel
// (i, j).
func (c Camera[T]) Direction(i, j int) math3d.Vec3[T] {
	w, h := T(c.Width), T(c.Height)
	x := (2*(T(i)+0.5)/w - 1) * c.tanHalf * w / h
	y := -(2*(T(j)+0.5)/h - 1) * c.tanHalf
	return math3d.V3(x, y, -1).Normalize()
}

// Ray returns the primary ray through pixel (i, j).
func (c Camera[T]) Ray(i, j int) scene.Ray[T] {
	return scene.Ray[T]{
		Origin:    math3d.Zero3[T](),
		Direction: c.Direction(i, j),
	}
}
