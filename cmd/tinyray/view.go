package main

import (
	"context"
	"fmt"
	"image"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/taigrr/tinyray/pkg/anim"
	"github.com/taigrr/tinyray/pkg/math3d"
	"github.com/taigrr/tinyray/pkg/render"
	"github.com/taigrr/tinyray/pkg/scene"
	"github.com/taigrr/tinyray/pkg/sink"
)

func newViewCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Show the render in the terminal",
		Long: "Show the render in the terminal using half-block characters. The image\n" +
			"is sized to the terminal; --width and --height are ignored.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.validatePrecision(); err != nil {
				return err
			}
			if opts.precision == 64 {
				return runView[float64](cmd.Context(), opts)
			}
			return runView[float32](cmd.Context(), opts)
		},
	}
}

type viewCmdKind int

const (
	cmdQuit viewCmdKind = iota
	cmdResize
	cmdPause
	cmdReset
	cmdSpin
	cmdHUD
)

// viewCmd is sent from the input goroutine to the frame loop, which is the
// only code that touches the scene.
type viewCmd struct {
	kind          viewCmdKind
	width, height int
	spin          float64
}

const spinImpulse = 0.05

func runView[T math3d.Float](ctx context.Context, o *options) error {
	s, err := loadScene[T](o.scene)
	if err != nil {
		return err
	}

	term := uv.DefaultTerminal()
	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	if err := term.Resize(width, height); err != nil {
		return fmt.Errorf("resize terminal: %w", err)
	}

	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cmds := make(chan viewCmd, 16)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return readEvents(ctx, term.Events(), cmds)
	})
	g.Go(func() error {
		defer cancel()
		return frameLoop(ctx, o, term, s, width, height, cmds)
	})
	return g.Wait()
}

// readEvents turns terminal input into commands until ctx is done.
func readEvents(ctx context.Context, events <-chan uv.Event, cmds chan<- viewCmd) error {
	send := func(c viewCmd) {
		select {
		case cmds <- c:
		case <-ctx.Done():
		}
	}

	for {
		var ev uv.Event
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-events:
			if !ok {
				send(viewCmd{kind: cmdQuit})
				return nil
			}
			ev = e
		}

		switch ev := ev.(type) {
		case uv.WindowSizeEvent:
			send(viewCmd{kind: cmdResize, width: ev.Width, height: ev.Height})
		case uv.KeyPressEvent:
			c, ok := keyCommand(ev)
			if !ok {
				continue
			}
			send(c)
			if c.kind == cmdQuit {
				return nil
			}
		}
	}
}

// keyCommand maps a key press to a command. Keys with no binding return
// false.
func keyCommand(ev uv.KeyPressEvent) (viewCmd, bool) {
	switch {
	case ev.MatchString("escape", "ctrl+c", "q"):
		return viewCmd{kind: cmdQuit}, true
	case ev.MatchString("space"):
		return viewCmd{kind: cmdPause}, true
	case ev.MatchString("r"):
		return viewCmd{kind: cmdReset}, true
	case ev.MatchString("a", "left"):
		return viewCmd{kind: cmdSpin, spin: -spinImpulse}, true
	case ev.MatchString("d", "right"):
		return viewCmd{kind: cmdSpin, spin: spinImpulse}, true
	case ev.MatchString("?", "shift+/"):
		return viewCmd{kind: cmdHUD}, true
	}
	return viewCmd{}, false
}

// viewer owns everything the frame loop draws with. It is rebuilt on
// resize.
type viewer[T math3d.Float] struct {
	out      *sink.Terminal
	renderer *render.Renderer[T]
	fb       *render.Framebuffer[T]
	img      *image.RGBA
}

func newViewer[T math3d.Float](o *options, s *scene.Scene[T], cols, rows int) (*viewer[T], error) {
	out := sink.NewTerminal(cols, rows)
	w, h := out.FramebufferSize()

	vo := *o
	vo.width, vo.height = w, h
	cfg, err := config(&vo, s)
	if err != nil {
		return nil, err
	}
	r, err := render.NewRenderer(cfg)
	if err != nil {
		return nil, err
	}
	return &viewer[T]{
		out:      out,
		renderer: r,
		fb:       render.NewFramebuffer[T](w, h),
		img:      image.NewRGBA(image.Rect(0, 0, w, h)),
	}, nil
}

func frameLoop[T math3d.Float](ctx context.Context, o *options, term *uv.Terminal, s *scene.Scene[T], width, height int, cmds <-chan viewCmd) error {
	v, err := newViewer(o, s, width, height)
	if err != nil {
		return err
	}

	var a *anim.Animator[T]
	if o.animate {
		a = anim.New(s, animOptions(o))
	}
	hud := NewHUD(s.Name, o.fps)

	targetDuration := time.Second / time.Duration(max(o.fps, 1))
	paused := false
	dirty := true

	for {
		now := time.Now()

		// Commands apply between frames, never during one.
	drain:
		for {
			select {
			case c := <-cmds:
				switch c.kind {
				case cmdQuit:
					return nil
				case cmdResize:
					term.Erase()
					if err := term.Resize(c.width, c.height); err != nil {
						return fmt.Errorf("resize terminal: %w", err)
					}
					if v, err = newViewer(o, s, c.width, c.height); err != nil {
						return err
					}
				case cmdPause:
					paused = !paused
				case cmdReset:
					if a != nil {
						a.Reset(s)
					}
					v.renderer.Stats.Reset()
				case cmdSpin:
					if a != nil {
						a.Orbit.Impulse(c.spin)
					}
				case cmdHUD:
					hud.Visible = !hud.Visible
					if !hud.Visible {
						term.Erase()
					}
				}
				dirty = true
			default:
				break drain
			}
		}

		if a != nil && !paused {
			a.Step(s)
			dirty = true
		}

		if dirty {
			v.renderer.RenderInto(v.fb, s)
			v.fb.ToneMapInto(v.img)
			area := term.Bounds()
			v.out.Draw(term, area, v.img)
			hud.UpdateFPS()
			hud.Draw(term, area, v.renderer.Stats.LastFrame, paused)
			if err := term.Display(); err != nil {
				return fmt.Errorf("display: %w", err)
			}
			dirty = false
		}

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(targetDuration - elapsed):
			}
		} else if ctx.Err() != nil {
			return nil
		}
	}
}
