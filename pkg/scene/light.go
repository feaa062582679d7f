package scene

import "github.com/taigrr/tinyray/pkg/math3d"

// Light is a point light.
type Light[T math3d.Float] struct {
	Position  math3d.Vec3[T]
	Intensity T
}

// NewLight creates a point light.
func NewLight[T math3d.Float](position math3d.Vec3[T], intensity T) Light[T] {
	return Light[T]{Position: position, Intensity: intensity}
}
