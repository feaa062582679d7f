package main

import (
	"context"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/taigrr/tinyray/pkg/anim"
	"github.com/taigrr/tinyray/pkg/math3d"
	"github.com/taigrr/tinyray/pkg/render"
	"github.com/taigrr/tinyray/pkg/sink"
)

func newRenderCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "render [output.ppm|output.png]",
		Short: "Render the scene to an image file",
		Example: "  tinyray render out.ppm\n" +
			"  tinyray render --scene eclipse --width 640 --height 480 eclipse.png\n" +
			"  tinyray render --animate --frames 60 frames/out.ppm",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validatePrecision(); err != nil {
				return err
			}
			out := "out.ppm"
			if len(args) == 1 {
				out = args[0]
			}
			if opts.precision == 64 {
				return renderFiles[float64](cmd.Context(), opts, out)
			}
			return renderFiles[float32](cmd.Context(), opts, out)
		},
	}
}

func renderFiles[T math3d.Float](ctx context.Context, o *options, out string) error {
	s, err := loadScene[T](o.scene)
	if err != nil {
		return err
	}
	cfg, err := config(o, s)
	if err != nil {
		return err
	}
	r, err := render.NewRenderer(cfg)
	if err != nil {
		return err
	}

	var a *anim.Animator[T]
	if o.animate {
		a = anim.New(s, animOptions(o))
	}

	frames := max(o.frames, 1)
	fb := render.NewFramebuffer[T](cfg.Width, cfg.Height)
	for i := range frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		if a != nil && i > 0 {
			a.Step(s)
		}

		r.RenderInto(fb, s)
		path := framePath(out, i, frames)
		if err := sink.Save(path, fb.ToImage()); err != nil {
			return err
		}
		log.Printf("wrote %s (%dx%d, %s)", path, cfg.Width, cfg.Height, r.Stats.LastFrame.Round(time.Millisecond))
	}
	if frames > 1 {
		log.Printf("%d frames, %s average", r.Stats.Frames, r.Stats.AverageFrame().Round(time.Millisecond))
	}
	return nil
}
