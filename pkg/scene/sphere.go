package scene

import "github.com/taigrr/tinyray/pkg/math3d"

// Sphere is the only primitive tinyray traces.
type Sphere[T math3d.Float] struct {
	Center   math3d.Vec3[T]
	Radius   T
	Material Material[T]
}

// NewSphere creates a sphere. Radius must be positive.
func NewSphere[T math3d.Float](center math3d.Vec3[T], radius T, material Material[T]) Sphere[T] {
	return Sphere[T]{Center: center, Radius: radius, Material: material}
}

// RayIntersect returns the distance along ray to the sphere surface.
//
// From outside the sphere this is the entry distance; from inside it is the
// exit distance. ok is false when the ray misses or the sphere lies entirely
// behind the origin.
func (s Sphere[T]) RayIntersect(ray Ray[T]) (dist T, ok bool) {
	l := s.Center.Sub(ray.Origin)
	tca := l.Dot(ray.Direction)
	d2 := l.Dot(l) - tca*tca
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return 0, false
	}

	thc := math3d.Sqrt(r2 - d2)
	t0 := tca - thc
	if t0 < 0 {
		t0 = tca + thc
	}
	if t0 < 0 {
		return 0, false
	}
	return t0, true
}

// NormalAt returns the outward unit normal at a point on the surface.
func (s Sphere[T]) NormalAt(p math3d.Vec3[T]) math3d.Vec3[T] {
	return p.Sub(s.Center).Normalize()
}
