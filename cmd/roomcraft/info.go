package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/taigrr/roomcraft/pkg/models"
	"github.com/taigrr/roomcraft/pkg/scene"
)

func newInfoCmd(*app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <scene.yaml|scene.glb>",
		Short: "Display scene information",
		Long:  "Display the room, lighting and items of a scene file, or the meshes of an exported .glb.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if ext := strings.ToLower(filepath.Ext(args[0])); ext == ".glb" || ext == ".gltf" {
				return glbInfo(w, args[0])
			}
			return sceneInfo(w, args[0])
		},
	}
}

func sceneInfo(w io.Writer, path string) error {
	snap, err := scene.Load(path)
	if err != nil {
		return err
	}
	stat, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}

	r, l := snap.Room, snap.Lighting
	fmt.Fprintf(w, "File:       %s (%d bytes)\n", filepath.Base(path), stat.Size())
	fmt.Fprintf(w, "Room:       %g×%g×%g %s\n", r.Width, r.Length, r.Height, r.Shape)
	fmt.Fprintf(w, "Colors:     floor %s, walls %s, ceiling %s\n", r.Floor, r.Walls, r.Ceiling)
	fmt.Fprintf(w, "Lighting:   intensity %.2f, shadow %.2f, contrast %.2f, ambient %s\n",
		l.Intensity, l.Shadow, l.Contrast, l.Ambient)
	sc := scene.New()
	sc.Load(snap)
	lo, hi := sc.Bounds()
	fmt.Fprintf(w, "Extent:     (%.0f, %.0f, %.0f) to (%.0f, %.0f, %.0f)\n", lo.X, lo.Y, lo.Z, hi.X, hi.Y, hi.Z)
	fmt.Fprintf(w, "Items:      %d\n", len(snap.Items))
	for _, it := range snap.Items {
		mark := " "
		if it.ID == snap.SelectedID {
			mark = "*"
		}
		fmt.Fprintf(w, "  %s %-8.8s %s\n", mark, it.ID, itemLine(it))
	}
	return nil
}

func glbInfo(w io.Writer, path string) error {
	meshes, err := models.LoadGLB(path)
	if err != nil {
		return err
	}
	verts, tris := 0, 0
	for _, m := range meshes {
		verts += m.VertexCount()
		tris += m.TriangleCount()
	}
	fmt.Fprintf(w, "File:       %s\n", filepath.Base(path))
	fmt.Fprintf(w, "Meshes:     %d\n", len(meshes))
	fmt.Fprintf(w, "Vertices:   %d\n", verts)
	fmt.Fprintf(w, "Triangles:  %d\n", tris)
	for _, m := range meshes {
		size := m.Size()
		fmt.Fprintf(w, "  %-20s %6.0f×%-6.0f×%6.0f  at (%.0f, %.0f, %.0f)  metallic %.2f roughness %.2f\n",
			m.Name, size.X, size.Y, size.Z,
			m.Translation.X, m.Translation.Y, m.Translation.Z,
			m.Material.Metallic, m.Material.Roughness)
	}
	return nil
}
