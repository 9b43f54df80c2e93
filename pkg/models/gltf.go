package models

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/roomcraft/pkg/math3d"
)

// Document builds a glTF document with one node per mesh.
func Document(meshes []*Mesh) *gltf.Document {
	doc := gltf.NewDocument()
	for _, m := range meshes {
		positions := make([][3]float32, len(m.Vertices))
		normals := make([][3]float32, len(m.Vertices))
		for i, v := range m.Vertices {
			positions[i] = v.Position.Float32()
			normals[i] = v.Normal.Float32()
		}
		indices := make([]uint32, 0, len(m.Faces)*3)
		for _, f := range m.Faces {
			indices = append(indices, uint32(f.V[0]), uint32(f.V[1]), uint32(f.V[2]))
		}

		base := m.Material.BaseColor
		doc.Materials = append(doc.Materials, &gltf.Material{
			Name: m.Material.Name,
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: &base,
				MetallicFactor:  gltf.Float(m.Material.Metallic),
				RoughnessFactor: gltf.Float(m.Material.Roughness),
			},
		})
		if base[3] < 1 {
			doc.Materials[len(doc.Materials)-1].AlphaMode = gltf.AlphaBlend
		}

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: m.Name,
			Primitives: []*gltf.Primitive{{
				Indices: gltf.Index(modeler.WriteIndices(doc, indices)),
				Attributes: map[string]int{
					gltf.POSITION: modeler.WritePosition(doc, positions),
					gltf.NORMAL:   modeler.WriteNormal(doc, normals),
				},
				Material: gltf.Index(len(doc.Materials) - 1),
			}},
		})

		t := m.Translation
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name:        m.Name,
			Mesh:        gltf.Index(len(doc.Meshes) - 1),
			Translation: [3]float64{t.X, t.Y, t.Z},
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}
	return doc
}

// ExportGLB writes meshes to a binary glTF file.
func ExportGLB(path string, meshes []*Mesh) error {
	if err := gltf.SaveBinary(Document(meshes), path); err != nil {
		return fmt.Errorf("export glb: %w", err)
	}
	return nil
}

// LoadGLB reads every node that references a mesh back into a Mesh.
func LoadGLB(path string) ([]*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	var meshes []*Mesh
	for _, node := range doc.Nodes {
		if node.Mesh == nil {
			continue
		}
		gm := doc.Meshes[*node.Mesh]
		mesh := NewMesh(node.Name)
		mesh.Translation = math3d.V3(node.Translation[0], node.Translation[1], node.Translation[2])
		if err := processMesh(doc, gm, mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", gm.Name, err)
		}
		mesh.CalculateBounds()
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}

// processMesh appends the triangles and material of a glTF mesh.
func processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := readVec3Accessor(doc, posIdx)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		var normals []math3d.Vec3
		if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
			normals, err = readVec3Accessor(doc, normIdx)
			if err != nil {
				return fmt.Errorf("read normals: %w", err)
			}
		}

		baseVertex := len(mesh.Vertices)
		for i, p := range positions {
			v := MeshVertex{Position: p}
			if i < len(normals) {
				v.Normal = normals[i]
			}
			mesh.Vertices = append(mesh.Vertices, v)
		}

		var indices []int
		if prim.Indices != nil {
			indices, err = readIndices(doc, *prim.Indices)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
		} else {
			indices = make([]int, len(positions))
			for i := range indices {
				indices[i] = i
			}
		}
		for i := 0; i+2 < len(indices); i += 3 {
			mesh.Faces = append(mesh.Faces, Face{V: [3]int{
				baseVertex + indices[i],
				baseVertex + indices[i+1],
				baseVertex + indices[i+2],
			}})
		}

		if prim.Material != nil {
			mesh.Material = readMaterial(doc.Materials[*prim.Material])
		}
	}
	return nil
}

func readMaterial(gm *gltf.Material) Material {
	mat := Material{Name: gm.Name, BaseColor: [4]float64{1, 1, 1, 1}, Metallic: 1, Roughness: 1}
	if pbr := gm.PBRMetallicRoughness; pbr != nil {
		if pbr.BaseColorFactor != nil {
			mat.BaseColor = *pbr.BaseColorFactor
		}
		if pbr.MetallicFactor != nil {
			mat.Metallic = *pbr.MetallicFactor
		}
		if pbr.RoughnessFactor != nil {
			mat.Roughness = *pbr.RoughnessFactor
		}
	}
	return mat
}

// readVec3Accessor reads float VEC3 data from a glTF accessor.
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Vec3, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 || accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float VEC3, got %v %v", accessor.ComponentType, accessor.Type)
	}

	data, stride, err := accessorBytes(doc, accessor, 12)
	if err != nil {
		return nil, err
	}

	result := make([]math3d.Vec3, accessor.Count)
	for i := range result {
		b := data[i*stride:]
		result[i] = math3d.V3(
			float64(readFloat32(b)),
			float64(readFloat32(b[4:])),
			float64(readFloat32(b[8:])),
		)
	}
	return result, nil
}

// readIndices reads unsigned scalar index data from a glTF accessor.
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]

	var size int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, fmt.Errorf("unexpected index type: %v", accessor.ComponentType)
	}

	data, stride, err := accessorBytes(doc, accessor, size)
	if err != nil {
		return nil, err
	}

	result := make([]int, accessor.Count)
	for i := range result {
		b := data[i*stride:]
		switch size {
		case 1:
			result[i] = int(b[0])
		case 2:
			result[i] = int(binary.LittleEndian.Uint16(b))
		case 4:
			result[i] = int(binary.LittleEndian.Uint32(b))
		}
	}
	return result, nil
}

// accessorBytes returns the embedded buffer bytes starting at the accessor
// and the element stride.
func accessorBytes(doc *gltf.Document, accessor *gltf.Accessor, elemSize int) ([]byte, int, error) {
	if accessor.BufferView == nil {
		return nil, 0, fmt.Errorf("accessor has no buffer view")
	}

	bufferView := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[bufferView.Buffer]
	if buffer.URI != "" {
		return nil, 0, fmt.Errorf("external buffers not supported")
	}
	if buffer.Data == nil {
		return nil, 0, fmt.Errorf("buffer has no data")
	}

	stride := bufferView.ByteStride
	if stride == 0 {
		stride = elemSize
	}
	start := bufferView.ByteOffset + accessor.ByteOffset
	end := start + stride*(accessor.Count-1) + elemSize
	if accessor.Count == 0 {
		end = start
	}
	if end > len(buffer.Data) {
		return nil, 0, fmt.Errorf("accessor overruns buffer (%d > %d)", end, len(buffer.Data))
	}
	return buffer.Data[start:end], stride, nil
}

// readFloat32 reads a little-endian float32.
func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
