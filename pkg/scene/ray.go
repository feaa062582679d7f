// Package scene holds the geometry, materials and lights tinyray traces,
// along with the ray/primitive intersection tests.
package scene

import "github.com/taigrr/tinyray/pkg/math3d"

// Ray is a half-line starting at Origin.
// Direction is expected to be unit length; every distance reported by the
// intersection routines is measured in units of it.
type Ray[T math3d.Float] struct {
	Origin    math3d.Vec3[T]
	Direction math3d.Vec3[T]
}

// At returns the point at distance t along the ray.
func (r Ray[T]) At(t T) math3d.Vec3[T] {
	return r.Origin.Add(r.Direction.Scale(t))
}
