package models

import (
	"github.com/taigrr/roomcraft/pkg/math3d"
	"github.com/taigrr/roomcraft/pkg/scene"
)

// wallRoughness is used for room surfaces, which carry no material data.
const wallRoughness = 0.9

// MaterialFromColor builds a material. Reflectivity maps to metallic.
func MaterialFromColor(name string, c scene.Color, reflectivity, roughness float64) Material {
	return Material{
		Name: name,
		BaseColor: [4]float64{
			float64(c.R) / 255,
			float64(c.G) / 255,
			float64(c.B) / 255,
			float64(c.A) / 255,
		},
		Metallic:  math3d.Clamp(reflectivity, 0, 1),
		Roughness: math3d.Clamp(roughness, 0, 1),
	}
}

// BuildSceneMeshes converts a snapshot to meshes in room space, y up. The
// room contributes its floor, back wall, left wall and ceiling as quads
// facing inward; every item becomes a box translated to its position.
func BuildSceneMeshes(snap scene.Snapshot) []*Mesh {
	r := snap.Room
	lo, hi := r.Min(), r.Max()
	v := math3d.V3

	surface := func(name string, c scene.Color, corners [4]math3d.Vec3) *Mesh {
		return NewQuadMesh(name, corners, MaterialFromColor(name, c, 0, wallRoughness))
	}

	meshes := []*Mesh{
		surface("floor", r.Floor, [4]math3d.Vec3{
			v(lo.X, 0, hi.Z), v(hi.X, 0, hi.Z), v(hi.X, 0, lo.Z), v(lo.X, 0, lo.Z),
		}),
		surface("back wall", r.Walls, [4]math3d.Vec3{
			v(lo.X, 0, lo.Z), v(hi.X, 0, lo.Z), v(hi.X, hi.Y, lo.Z), v(lo.X, hi.Y, lo.Z),
		}),
		surface("left wall", r.Walls, [4]math3d.Vec3{
			v(lo.X, 0, hi.Z), v(lo.X, 0, lo.Z), v(lo.X, hi.Y, lo.Z), v(lo.X, hi.Y, hi.Z),
		}),
		surface("ceiling", r.Ceiling, [4]math3d.Vec3{
			v(lo.X, hi.Y, lo.Z), v(hi.X, hi.Y, lo.Z), v(hi.X, hi.Y, hi.Z), v(lo.X, hi.Y, hi.Z),
		}),
	}

	for _, it := range snap.Items {
		size := math3d.V3(it.Size.Width, it.Size.Height, it.Size.Depth)
		m := NewBoxMesh(it.Name, size, MaterialFromColor(it.Material, it.Color, it.Reflectivity, it.Roughness))
		m.Translation = it.Position
		meshes = append(meshes, m)
	}
	return meshes
}
