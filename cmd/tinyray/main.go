// tinyray - sphere ray caster
// Renders spheres under point lights to an image file, the terminal, or a
// desktop window.
//
// Controls (view and window):
//
//	Space       - Pause animation
//	Left/Right  - Spin the scene
//	R           - Reset animation
//	?           - Toggle HUD overlay (view only)
//	Esc/Q       - Quit
package main

import (
	"context"
	"log"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	log.SetFlags(0)
	log.SetPrefix("tinyray: ")

	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := defaultOptions()

	root := &cobra.Command{
		Use:   "tinyray",
		Short: "Ray cast spheres with Phong shading and hard shadows",
		Long: "tinyray renders a scene of spheres lit by point lights, seen from a fixed\n" +
			"camera at the origin looking down -Z. Scenes are built-in presets or glTF\n" +
			"files whose mesh nodes become spheres.",
		SilenceUsage: true,
	}
	opts.register(root.PersistentFlags())

	root.AddCommand(
		newRenderCmd(opts),
		newViewCmd(opts),
		newWindowCmd(opts),
		newScenesCmd(),
	)
	return root
}
