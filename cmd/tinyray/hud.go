package main

import (
	"fmt"
	"image/color"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	hudBg   = color.RGBA{A: 0xff}
	hudText = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	hudDim  = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}

	fpsBad, _  = colorful.Hex("#e0443e")
	fpsGood, _ = colorful.Hex("#4adf6a")
)

// HUD renders an overlay with scene info and frame rate
type HUD struct {
	Visible bool

	name      string
	target    int
	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

// NewHUD creates a new HUD for a scene rendered at target frames per second.
func NewHUD(name string, target int) *HUD {
	return &HUD{
		Visible: true,
		name:    name,
		target:  target,
		fpsTime: time.Now(),
	}
}

// UpdateFPS updates the FPS counter (call once per frame)
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// fpsColor shades the counter from red at 0 to green at the target rate.
func (h *HUD) fpsColor() color.Color {
	t := 1.0
	if h.target > 0 {
		t = min(max(h.fps/float64(h.target), 0), 1)
	}
	r, g, b := fpsBad.BlendHcl(fpsGood, t).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Draw writes the HUD into the top and bottom rows of area.
func (h *HUD) Draw(scr uv.Screen, area uv.Rectangle, frame time.Duration, paused bool) {
	if !h.Visible || area.Dy() < 2 {
		return
	}
	top, bottom := area.Min.Y, area.Max.Y-1

	x := writeText(scr, area.Min.X, top, area.Max.X, fmt.Sprintf(" %.0f FPS ", h.fps), h.fpsColor())
	writeText(scr, x, top, area.Max.X, fmt.Sprintf(" %s  %s ", h.name, frame.Round(time.Millisecond)), hudText)

	hint := " space: pause  ←/→: spin  r: reset  ?: hud  esc: quit "
	if paused {
		hint = " paused" + hint
	}
	writeText(scr, area.Min.X, bottom, area.Max.X, hint, hudDim)
}

// writeText draws s one cell per rune and returns the column after it.
func writeText(scr uv.Screen, x, y, maxX int, s string, fg color.Color) int {
	for _, r := range s {
		if x >= maxX {
			break
		}
		scr.SetCell(x, y, &uv.Cell{
			Content: string(r),
			Width:   1,
			Style:   uv.Style{Fg: fg, Bg: hudBg},
		})
		x++
	}
	return x
}
