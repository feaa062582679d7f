package main

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/pflag"

	"github.com/taigrr/tinyray/pkg/anim"
	"github.com/taigrr/tinyray/pkg/math3d"
	"github.com/taigrr/tinyray/pkg/render"
	"github.com/taigrr/tinyray/pkg/scene"
)

var errPrecision = errors.New("precision must be 32 or 64")

// options holds the flags shared by every subcommand.
type options struct {
	width       int
	height      int
	fov         float64 // degrees
	background  string  // hex, empty for the default sky
	maxDistance float64
	bias        float64
	scene       string
	precision   int
	animate     bool
	fps         int
	frames      int

	flags *pflag.FlagSet
}

func defaultOptions() *options {
	cfg := render.DefaultConfig[float64]()
	return &options{
		width:       cfg.Width,
		height:      cfg.Height,
		fov:         cfg.FOV * 180 / math.Pi,
		maxDistance: cfg.MaxDistance,
		bias:        cfg.ShadowBias,
		scene:       "default",
		precision:   32,
		fps:         30,
		frames:      1,
	}
}

func (o *options) register(fs *pflag.FlagSet) {
	fs.IntVar(&o.width, "width", o.width, "image width in pixels")
	fs.IntVar(&o.height, "height", o.height, "image height in pixels")
	fs.Float64Var(&o.fov, "fov", o.fov, "vertical field of view in degrees (default: scene camera, else 90)")
	fs.StringVar(&o.background, "background", o.background, "background colour as hex, e.g. #336699")
	fs.Float64Var(&o.maxDistance, "max-distance", o.maxDistance, "ignore hits at or beyond this distance")
	fs.Float64Var(&o.bias, "bias", o.bias, "shadow ray offset from the surface")
	fs.StringVarP(&o.scene, "scene", "s", o.scene, "preset name ("+strings.Join(scene.PresetNames(), ", ")+") or .gltf/.glb file")
	fs.IntVar(&o.precision, "precision", o.precision, "floating point precision: 32 or 64")
	fs.BoolVarP(&o.animate, "animate", "a", o.animate, "bob and orbit the spheres between frames")
	fs.IntVar(&o.fps, "fps", o.fps, "animation ticks per second")
	fs.IntVarP(&o.frames, "frames", "n", o.frames, "number of frames to render")
	o.flags = fs
}

func (o *options) validatePrecision() error {
	if o.precision != 32 && o.precision != 64 {
		return fmt.Errorf("%w, got %d", errPrecision, o.precision)
	}
	return nil
}

// changed reports whether the user set a flag explicitly.
func (o *options) changed(name string) bool {
	return o.flags != nil && o.flags.Changed(name)
}

// loadScene resolves --scene to a preset or a glTF file.
func loadScene[T math3d.Float](name string) (*scene.Scene[T], error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gltf", ".glb":
		return scene.LoadGLTF[T](name)
	default:
		return scene.Preset[T](name)
	}
}

// config builds the render configuration from flags. An explicit --fov
// wins over the scene's camera, which wins over the default.
func config[T math3d.Float](o *options, s *scene.Scene[T]) (render.Config[T], error) {
	cfg := render.DefaultConfig[T]().WithSize(o.width, o.height)
	cfg.MaxDistance = T(o.maxDistance)
	cfg.ShadowBias = T(o.bias)

	switch {
	case o.changed("fov"):
		cfg.FOV = T(o.fov * math.Pi / 180)
	case s.FOV > 0:
		cfg.FOV = s.FOV
	}

	if o.background != "" {
		c, err := colorful.Hex(normalizeHex(o.background))
		if err != nil {
			return cfg, fmt.Errorf("%w: background %q: %v", render.ErrInvalidConfig, o.background, err)
		}
		cfg.Background = math3d.V3(T(c.R), T(c.G), T(c.B))
	}

	return cfg, cfg.Validate()
}

func normalizeHex(s string) string {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return s
}

func animOptions(o *options) anim.Options {
	opts := anim.DefaultOptions()
	if o.fps > 0 {
		opts.FPS = o.fps
	}
	return opts
}

// framePath numbers frames when more than one is written:
// out.ppm becomes out-0000.ppm, out-0001.ppm, ...
func framePath(out string, i, n int) string {
	if n <= 1 {
		return out
	}
	ext := filepath.Ext(out)
	return fmt.Sprintf("%s-%04d%s", strings.TrimSuffix(out, ext), i, ext)
}
