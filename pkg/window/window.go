//go:build cgo || darwin || windows

package window

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/taigrr/tinyray/pkg/math3d"
	"github.com/taigrr/tinyray/pkg/render"
	"github.com/taigrr/tinyray/pkg/sink"
)

// Run opens a window and blocks until it is closed or Esc is pressed.
//
// Keys: space pauses, left/right spin the scene, r resets the animation.
func Run[T math3d.Float](opts Options[T]) error {
	cfg := opts.Renderer.Config()
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.TPS <= 0 {
		opts.TPS = 30
	}

	g := &game[T]{
		opts:    opts,
		fb:      render.NewFramebuffer[T](cfg.Width, cfg.Height),
		img:     image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height)),
		surface: sink.NewSurface(cfg.Width, cfg.Height),
		dirty:   true,
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(cfg.Width*opts.Scale, cfg.Height*opts.Scale)
	ebiten.SetTPS(opts.TPS)
	return ebiten.RunGame(g)
}

type game[T math3d.Float] struct {
	opts    Options[T]
	fb      *render.Framebuffer[T]
	img     *image.RGBA
	surface *sink.Surface
	fbImg   *ebiten.Image
	paused  bool
	dirty   bool
}

// Update runs one simulation step, then traces a frame into the surface.
// Input is read before the scene is touched, so a frame always sees one
// consistent scene.
func (g *game[T]) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if a := g.opts.Animator; a != nil {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeySpace):
			g.paused = !g.paused
		case inpututil.IsKeyJustPressed(ebiten.KeyR):
			a.Reset(g.opts.Scene)
			g.opts.Renderer.Stats.Reset()
			g.dirty = true
		case ebiten.IsKeyPressed(ebiten.KeyLeft):
			a.Orbit.Impulse(-0.01)
		case ebiten.IsKeyPressed(ebiten.KeyRight):
			a.Orbit.Impulse(0.01)
		}
		if !g.paused {
			a.Step(g.opts.Scene)
			g.dirty = true
		}
	}

	if !g.dirty {
		return nil
	}
	g.dirty = false

	g.opts.Renderer.RenderInto(g.fb, g.opts.Scene)
	g.fb.ToneMapInto(g.img)
	if !g.opts.Caption {
		return sink.Present(g.surface, g.img)
	}
	sink.Draw(g.surface, g.img)
	sink.Caption(g.surface, g.status(), color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff})
	return g.surface.Display()
}

func (g *game[T]) status() string {
	stats := g.opts.Renderer.Stats
	state := ""
	if g.paused {
		state = " paused"
	}
	return fmt.Sprintf("%s %d %.1fms%s", g.opts.Scene.Name, stats.Frames, float64(stats.LastFrame.Microseconds())/1000, state)
}

func (g *game[T]) Draw(screen *ebiten.Image) {
	if g.fbImg == nil {
		b := g.surface.Image().Bounds()
		g.fbImg = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.fbImg.WritePixels(g.surface.Image().Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game[T]) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.surface.Size()
	return int(w), int(h)
}
