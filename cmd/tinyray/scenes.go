package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taigrr/tinyray/pkg/scene"
)

func newScenesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenes",
		Short: "List the built-in scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range scene.PresetNames() {
				s, err := scene.Preset[float64](name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %d spheres, %d lights\n", name, len(s.Spheres), len(s.Lights))
			}
			return nil
		},
	}
}
