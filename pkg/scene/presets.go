package scene

import (
	"errors"
	"fmt"
	"slices"

	"github.com/taigrr/tinyray/pkg/math3d"
)

var ErrUnknownPreset = errors.New("unknown preset")

// Default returns the classic four-sphere scene: two ivory and two red
// rubber spheres lit by three point lights.
func Default[T math3d.Float]() *Scene[T] {
	ivory := Ivory[T]()
	redRubber := RedRubber[T]()

	s := New[T]("default")
	s.AddSphere(NewSphere(math3d.V3[T](-3, 0, -16), 2, ivory)).
		AddSphere(NewSphere(math3d.V3[T](-1, -1.5, -12), 2, redRubber)).
		AddSphere(NewSphere(math3d.V3[T](1.5, -0.5, -18), 3, redRubber)).
		AddSphere(NewSphere(math3d.V3[T](7, 5, -18), 4, ivory))
	s.AddLight(NewLight(math3d.V3[T](-20, 20, 20), 1.5)).
		AddLight(NewLight(math3d.V3[T](30, 50, -25), 1.8)).
		AddLight(NewLight(math3d.V3[T](30, 20, 30), 1.7))
	return s
}

// Single returns one ivory sphere straight ahead of the camera with a light
// at the camera position.
func Single[T math3d.Float]() *Scene[T] {
	s := New[T]("single")
	s.AddSphere(NewSphere(math3d.V3[T](0, 0, -5), 1, Ivory[T]()))
	s.AddLight(NewLight(math3d.Zero3[T](), 1))
	return s
}

// Eclipse returns a small sphere casting a shadow onto a large one, with a
// second unobstructed light so the shadowed side is not black.
func Eclipse[T math3d.Float]() *Scene[T] {
	s := New[T]("eclipse")
	s.AddSphere(NewSphere(math3d.V3[T](0, 0, -20), 6, Ivory[T]())).
		AddSphere(NewSphere(math3d.V3[T](5, 5, -7), 1.5, RedRubber[T]()))
	s.AddLight(NewLight(math3d.V3[T](10, 10, 0), 1.2)).
		AddLight(NewLight(math3d.V3[T](-30, 30, 0), 0.8))
	return s
}

// PresetNames lists the built-in scenes in a stable order.
func PresetNames() []string {
	names := []string{"default", "single", "eclipse"}
	slices.Sort(names)
	return names
}

// Preset returns the built-in scene with the given name.
func Preset[T math3d.Float](name string) (*Scene[T], error) {
	switch name {
	case "default", "":
		return Default[T](), nil
	case "single":
		return Single[T](), nil
	case "eclipse":
		return Eclipse[T](), nil
	default:
		return nil, fmt.Errorf("%q (have %v): %w", name, PresetNames(), ErrUnknownPreset)
	}
}
