// Package window shows a live render in a desktop window.
package window

import (
	"errors"

	"github.com/taigrr/tinyray/pkg/anim"
	"github.com/taigrr/tinyray/pkg/math3d"
	"github.com/taigrr/tinyray/pkg/render"
	"github.com/taigrr/tinyray/pkg/scene"
)

// ErrUnavailable is returned by Run in builds without a window backend.
var ErrUnavailable = errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")

// Options configures Run.
type Options[T math3d.Float] struct {
	Title    string
	Scale    int // window pixels per image pixel
	TPS      int // updates per second
	Renderer *render.Renderer[T]
	Scene    *scene.Scene[T]

	// Animator moves the scene between frames. Nil shows a still image.
	Animator *anim.Animator[T]

	// Caption draws a status line over the image.
	Caption bool
}

