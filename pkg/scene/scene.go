package scene

import (
	"errors"
	"fmt"

	"github.com/taigrr/tinyray/pkg/math3d"
)

// DefaultMaxDistance is the distance beyond which hits are ignored.
const DefaultMaxDistance = 1000

var (
	ErrInvalidSphere = errors.New("invalid sphere")
	ErrInvalidLight  = errors.New("invalid light")
)

// Scene is an ordered set of spheres lit by point lights.
//
// Scenes are read-only while a frame renders. Sphere order is significant:
// when two spheres are hit at exactly the same distance the earlier one wins.
type Scene[T math3d.Float] struct {
	Name    string
	Spheres []Sphere[T]
	Lights  []Light[T]

	// FOV is the vertical field of view suggested by the scene source, in
	// radians. Zero means the scene has no opinion.
	FOV T
}

// New creates an empty scene.
func New[T math3d.Float](name string) *Scene[T] {
	return &Scene[T]{Name: name}
}

// AddSphere appends a sphere and returns the scene for chaining.
func (s *Scene[T]) AddSphere(sp Sphere[T]) *Scene[T] {
	s.Spheres = append(s.Spheres, sp)
	return s
}

// AddLight appends a light and returns the scene for chaining.
func (s *Scene[T]) AddLight(l Light[T]) *Scene[T] {
	s.Lights = append(s.Lights, l)
	return s
}

// Hit describes the nearest surface a ray reached.
type Hit[T math3d.Float] struct {
	Point    math3d.Vec3[T]
	Normal   math3d.Vec3[T] // outward unit normal, never flipped toward the ray
	Material Material[T]
	Distance T
}

// Intersect finds the nearest sphere along ray.
// Hits at or beyond maxDist are treated as misses.
func (s *Scene[T]) Intersect(ray Ray[T], maxDist T) (Hit[T], bool) {
	nearest := math3d.MaxValue[T]()
	idx := -1

	for i := range s.Spheres {
		if d, ok := s.Spheres[i].RayIntersect(ray); ok && d < nearest {
			nearest = d
			idx = i
		}
	}

	if idx < 0 || nearest >= maxDist {
		return Hit[T]{}, false
	}

	sp := &s.Spheres[idx]
	p := ray.At(nearest)
	return Hit[T]{
		Point:    p,
		Normal:   sp.NormalAt(p),
		Material: sp.Material,
		Distance: nearest,
	}, true
}

// Validate reports the first sphere or light that breaks the scene
// invariants. Rendering never checks these itself; call Validate on scenes
// that come from outside the program.
func (s *Scene[T]) Validate() error {
	for i, sp := range s.Spheres {
		if !(sp.Radius > 0) {
			return fmt.Errorf("sphere %d: radius %v: %w", i, sp.Radius, ErrInvalidSphere)
		}
		if sp.Material.SpecularExponent < 0 {
			return fmt.Errorf("sphere %d: specular exponent %v: %w", i, sp.Material.SpecularExponent, ErrInvalidSphere)
		}
	}
	for i, l := range s.Lights {
		if !(l.Intensity >= 0) {
			return fmt.Errorf("light %d: intensity %v: %w", i, l.Intensity, ErrInvalidLight)
		}
	}
	return nil
}

// Clone returns a deep copy of the scene, so a driver can keep a pristine
// copy while an animation moves spheres around.
func (s *Scene[T]) Clone() *Scene[T] {
	clone := &Scene[T]{
		Name:    s.Name,
		Spheres: make([]Sphere[T], len(s.Spheres)),
		Lights:  make([]Light[T], len(s.Lights)),
		FOV:     s.FOV,
	}
	copy(clone.Spheres, s.Spheres)
	copy(clone.Lights, s.Lights)
	return clone
}

// Convert returns a copy of s in precision U.
func Convert[U, T math3d.Float](s *Scene[T]) *Scene[U] {
	out := &Scene[U]{
		Name:    s.Name,
		Spheres: make([]Sphere[U], len(s.Spheres)),
		Lights:  make([]Light[U], len(s.Lights)),
		FOV:     U(s.FOV),
	}
	for i, sp := range s.Spheres {
		m := sp.Material
		out.Spheres[i] = Sphere[U]{
			Center: math3d.Convert[U](sp.Center),
			Radius: U(sp.Radius),
			Material: Material[U]{
				Name:             m.Name,
				Albedo:           math3d.V2(U(m.Albedo.X), U(m.Albedo.Y)),
				Diffuse:          math3d.Convert[U](m.Diffuse),
				SpecularExponent: U(m.SpecularExponent),
			},
		}
	}
	for i, l := range s.Lights {
		out.Lights[i] = Light[U]{
			Position:  math3d.Convert[U](l.Position),
			Intensity: U(l.Intensity),
		}
	}
	return out
}
