package main

import (
	"github.com/spf13/cobra"

	"github.com/taigrr/tinyray/pkg/anim"
	"github.com/taigrr/tinyray/pkg/math3d"
	"github.com/taigrr/tinyray/pkg/render"
	"github.com/taigrr/tinyray/pkg/window"
)

func newWindowCmd(opts *options) *cobra.Command {
	var (
		scale   int
		caption bool
	)
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Show the render in a desktop window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.validatePrecision(); err != nil {
				return err
			}
			if opts.precision == 64 {
				return runWindow[float64](opts, scale, caption)
			}
			return runWindow[float32](opts, scale, caption)
		},
	}
	cmd.Flags().IntVar(&scale, "scale", 1, "window pixels per image pixel")
	cmd.Flags().BoolVar(&caption, "caption", true, "draw a status caption")
	return cmd
}

func runWindow[T math3d.Float](o *options, scale int, caption bool) error {
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

	wo := window.Options[T]{
		Title:    "tinyray - " + s.Name,
		Scale:    scale,
		TPS:      o.fps,
		Renderer: r,
		Scene:    s,
		Caption:  caption,
	}
	if o.animate {
		wo.Animator = anim.New(s, animOptions(o))
	}
	return window.Run(wo)
}
