// Package anim moves scene objects between frames.
//
// Nothing here runs while a frame is being traced: callers step the
// animation, then render, then step again.
package anim

import "github.com/charmbracelet/harmonica"

// Axis tracks an angle and its angular velocity. Impulses add velocity,
// which a critically damped spring decays back to zero.
type Axis struct {
	Position  float64
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64 // internal spring velocity (for animating Velocity toward 0)
}

// NewAxis creates an axis updated fps times per second.
func NewAxis(fps int) Axis {
	return Axis{
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update applies velocity to position and decays velocity toward 0.
func (a *Axis) Update() {
	a.Position += a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// Impulse adds v to the current velocity.
func (a *Axis) Impulse(v float64) {
	a.Velocity += v
}
