package render

import (
	"time"

	"github.com/taigrr/tinyray/pkg/math3d"
	"github.com/taigrr/tinyray/pkg/scene"
)

// Renderer traces whole frames of a scene.
//
// A pass runs to completion on the calling goroutine. The scene must not
// change while a pass is running; animation belongs between calls.
type Renderer[T math3d.Float] struct {
	cfg    Config[T]
	camera Camera[T]
	Stats  Stats
}

// NewRenderer creates a renderer after validating cfg.
func NewRenderer[T math3d.Float](cfg Config[T]) (*Renderer[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Renderer[T]{
		cfg:    cfg,
		camera: NewCamera(cfg.Width, cfg.Height, cfg.FOV),
	}, nil
}

// Config returns the renderer's configuration.
func (r *Renderer[T]) Config() Config[T] {
	return r.cfg
}

// Render traces one frame into a new framebuffer.
func (r *Renderer[T]) Render(s *scene.Scene[T]) *Framebuffer[T] {
	fb := NewFramebuffer[T](r.cfg.Width, r.cfg.Height)
	r.RenderInto(fb, s)
	return fb
}

// RenderInto traces one frame into fb, overwriting every pixel. fb must
// match the configured size.
func (r *Renderer[T]) RenderInto(fb *Framebuffer[T], s *scene.Scene[T]) {
	start := time.Now()
	for j := 0; j < r.cfg.Height; j++ {
		for i := 0; i < r.cfg.Width; i++ {
			fb.Pixels[j*fb.Width+i] = CastRay(r.camera.Ray(i, j), s, r.cfg)
		}
	}
	r.Stats.record(r.cfg.Width*r.cfg.Height, time.Since(start))
}

// Stream traces one frame and hands each tone mapped pixel to fn in
// row-major order, for sinks that draw point by point.
func (r *Renderer[T]) Stream(s *scene.Scene[T], fn PixelFunc) {
	start := time.Now()
	for j := 0; j < r.cfg.Height; j++ {
		for i := 0; i < r.cfg.Width; i++ {
			fn(i, j, ToneMap(CastRay(r.camera.Ray(i, j), s, r.cfg)))
		}
	}
	r.Stats.record(r.cfg.Width*r.cfg.Height, time.Since(start))
}
