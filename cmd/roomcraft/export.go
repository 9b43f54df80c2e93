package main

import (
	"github.com/spf13/cobra"
	"github.com/taigrr/roomcraft/pkg/models"
	"github.com/taigrr/roomcraft/pkg/scene"
)

func newExportCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export <scene.yaml>",
		Short: "Export a scene as a glTF binary (.glb)",
		Long:  "Export the room surfaces and every item as box meshes with PBR materials in a single .glb file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			snap, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			if out == "" {
				out = replaceExt(args[0], ".glb")
			}
			meshes := models.BuildSceneMeshes(snap)
			if err := models.ExportGLB(out, meshes); err != nil {
				return err
			}
			tris := 0
			for _, m := range meshes {
				tris += m.TriangleCount()
			}
			a.logger.Info("exported", "scene", args[0], "out", out, "meshes", len(meshes), "triangles", tris)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output GLB (default: scene name with .glb)")
	return cmd
}
