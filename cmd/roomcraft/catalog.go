package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taigrr/roomcraft/pkg/scene"
)

func newCatalogCmd(*app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List furniture kinds and their default dimensions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-14s %6s %6s %6s\n", "KIND", "WIDTH", "HEIGHT", "DEPTH")
			for _, k := range scene.Kinds() {
				d := k.Dimensions()
				fmt.Fprintf(w, "%-14s %6g %6g %6g\n", k, d.Width, d.Height, d.Depth)
			}
			return nil
		},
	}
}
