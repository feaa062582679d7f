package scene

import "github.com/taigrr/tinyray/pkg/math3d"

// Material describes how a surface responds to light under the Phong model.
// Materials are small and immutable once a scene is built, so spheres hold
// them by value.
type Material[T math3d.Float] struct {
	Name string

	// Albedo weights the diffuse (X) and specular (Y) terms. The weights do
	// not need to sum to 1.
	Albedo math3d.Vec2[T]

	// Diffuse is the linear RGB colour of the diffuse term.
	Diffuse math3d.Vec3[T]

	// SpecularExponent controls how tight the highlight is.
	SpecularExponent T
}

// NewMaterial creates a material.
func NewMaterial[T math3d.Float](albedo math3d.Vec2[T], diffuse math3d.Vec3[T], specularExponent T) Material[T] {
	return Material[T]{
		Albedo:           albedo,
		Diffuse:          diffuse,
		SpecularExponent: specularExponent,
	}
}

// DefaultMaterial is a matte grey used when a document names no material.
func DefaultMaterial[T math3d.Float]() Material[T] {
	return Material[T]{
		Name:             "default",
		Albedo:           math3d.V2[T](1, 0),
		Diffuse:          math3d.V3[T](0.4, 0.4, 0.3),
		SpecularExponent: 1,
	}
}

// Ivory is a pale, moderately glossy material.
func Ivory[T math3d.Float]() Material[T] {
	m := NewMaterial(math3d.V2[T](0.6, 0.3), math3d.V3[T](0.4, 0.4, 0.3), 50)
	m.Name = "ivory"
	return m
}

// RedRubber is a dark red, mostly diffuse material.
func RedRubber[T math3d.Float]() Material[T] {
	m := NewMaterial(math3d.V2[T](0.9, 0.1), math3d.V3[T](0.3, 0.1, 0.1), 10)
	m.Name = "red rubber"
	return m
}
