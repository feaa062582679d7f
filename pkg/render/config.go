// Package render turns a scene into pixels: primary rays from a fixed
// pinhole camera, Phong shading with hard shadows, and tone mapping to
// 8-bit colour.
package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/taigrr/tinyray/pkg/math3d"
	"github.com/taigrr/tinyray/pkg/scene"
)

var ErrInvalidConfig = errors.New("invalid render config")

// Config holds the per-render constants. It is passed by value and never
// modified by the renderer.
type Config[T math3d.Float] struct {
	Width  int // image width in pixels
	Height int // image height in pixels

	// FOV is the vertical field of view in radians.
	FOV T

	// Background is the linear colour of rays that hit nothing.
	Background math3d.Vec3[T]

	// MaxDistance culls hits at or beyond this distance.
	MaxDistance T

	// ShadowBias offsets shadow ray origins off the surface to avoid
	// self-intersection.
	ShadowBias T
}

// DefaultConfig returns a 1024x768 render with a 90 degree field of view
// and a pale blue background.
func DefaultConfig[T math3d.Float]() Config[T] {
	return Config[T]{
		Width:       1024,
		Height:      768,
		FOV:         math.Pi / 2,
		Background:  math3d.V3[T](0.2, 0.7, 0.8),
		MaxDistance: scene.DefaultMaxDistance,
		ShadowBias:  1e-3,
	}
}

// WithSize returns a copy of c with new image dimensions.
func (c Config[T]) WithSize(width, height int) Config[T] {
	c.Width = width
	c.Height = height
	return c
}

// WithFOV returns a copy of c with a new vertical field of view.
func (c Config[T]) WithFOV(fov T) Config[T] {
	c.FOV = fov
	return c
}

// Validate checks the config for values the renderer cannot work with.
func (c Config[T]) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case !(c.FOV > 0 && c.FOV < math.Pi):
		return fmt.Errorf("%w: field of view %v rad", ErrInvalidConfig, c.FOV)
	case !(c.MaxDistance > 0):
		return fmt.Errorf("%w: max distance %v", ErrInvalidConfig, c.MaxDistance)
	case !(c.ShadowBias >= 0):
		return fmt.Errorf("%w: shadow bias %v", ErrInvalidConfig, c.ShadowBias)
	}
	return nil
}
