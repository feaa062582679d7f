package anim

import (
	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/tinyray/pkg/math3d"
	"github.com/taigrr/tinyray/pkg/scene"
)

// Options controls the motion applied by an Animator.
type Options struct {
	FPS int // simulation ticks per second

	// BobHeight is how far spheres travel above and below their rest
	// height. Neighbouring spheres move in opposite directions.
	BobHeight float64

	// BobFrames is the number of ticks between direction changes.
	BobFrames int

	// OrbitSpeed is the steady rotation of all centres about the vertical
	// axis through the pivot, in radians per second.
	OrbitSpeed float64
}

// DefaultOptions returns a gentle bob and a slow orbit at 30 ticks per
// second.
func DefaultOptions() Options {
	return Options{
		FPS:        30,
		BobHeight:  0.5,
		BobFrames:  45,
		OrbitSpeed: 0.25,
	}
}

type bob struct {
	pos, vel float64
}

// Animator moves sphere centres of one scene. It remembers the centres
// the scene had when the animator was created and derives every frame
// from them, so errors never accumulate.
type Animator[T math3d.Float] struct {
	opts   Options
	base   []math3d.Vec3[T]
	pivot  math3d.Vec3[T]
	spring harmonica.Spring
	bobs   []bob

	// Orbit is the rotation angle about the pivot. Callers may add
	// impulses to spin the scene.
	Orbit Axis

	frame int
}

// New creates an animator for s. The pivot is the mean of the sphere
// centres, so the group turns in place.
func New[T math3d.Float](s *scene.Scene[T], opts Options) *Animator[T] {
	if opts.FPS <= 0 {
		opts.FPS = DefaultOptions().FPS
	}
	if opts.BobFrames <= 0 {
		opts.BobFrames = DefaultOptions().BobFrames
	}

	a := &Animator[T]{
		opts:   opts,
		spring: harmonica.NewSpring(harmonica.FPS(opts.FPS), 3.0, 0.6),
	}
	a.capture(s)
	return a
}

func (a *Animator[T]) capture(s *scene.Scene[T]) {
	a.base = make([]math3d.Vec3[T], len(s.Spheres))
	var sum math3d.Vec3[T]
	for i, sp := range s.Spheres {
		a.base[i] = sp.Center
		sum = sum.Add(sp.Center)
	}
	a.pivot = math3d.Vec3[T]{}
	if n := len(s.Spheres); n > 0 {
		a.pivot = sum.Div(T(n))
	}
	a.bobs = make([]bob, len(s.Spheres))
	a.Orbit = NewAxis(a.opts.FPS)
	a.frame = 0
}

// Frame returns the number of steps taken since creation or the last
// Reset.
func (a *Animator[T]) Frame() int {
	return a.frame
}

// Pivot returns the point the scene orbits around.
func (a *Animator[T]) Pivot() math3d.Vec3[T] {
	return a.pivot
}

// Step advances the simulation by one tick and writes the new sphere
// centres into s. It must not be called while s is being rendered.
func (a *Animator[T]) Step(s *scene.Scene[T]) {
	a.frame++

	flip := (a.frame / a.opts.BobFrames) % 2
	for i := range a.bobs {
		target := a.opts.BobHeight
		if (i+flip)%2 == 1 {
			target = -target
		}
		a.bobs[i].pos, a.bobs[i].vel = a.spring.Update(a.bobs[i].pos, a.bobs[i].vel, target)
	}

	a.Orbit.Position += a.opts.OrbitSpeed / float64(a.opts.FPS)
	a.Orbit.Update()

	a.apply(s)
}

// apply writes base centres rotated about the pivot and lifted by the
// bob offsets.
func (a *Animator[T]) apply(s *scene.Scene[T]) {
	orbit := math3d.Translate(a.pivot).
		Mul(math3d.RotateY(T(a.Orbit.Position))).
		Mul(math3d.Translate(a.pivot.Negate()))

	n := min(len(s.Spheres), len(a.base))
	for i := 0; i < n; i++ {
		c := orbit.MulVec3(a.base[i])
		c.Y += T(a.bobs[i].pos)
		s.Spheres[i].Center = c
	}
}

// Reset restores the centres s had when the animator was created and
// clears all motion.
func (a *Animator[T]) Reset(s *scene.Scene[T]) {
	n := min(len(s.Spheres), len(a.base))
	for i := 0; i < n; i++ {
		s.Spheres[i].Center = a.base[i]
	}
	for i := range a.bobs {
		a.bobs[i] = bob{}
	}
	a.Orbit = NewAxis(a.opts.FPS)
	a.frame = 0
}
