// Package model loads glTF scenes into GPU-ready meshes and draws them.
//
// The pipeline is split in two: Build flattens an imported document
// into plain vertex/index arrays with no GL involvement, and Loader
// owns the GPU side (buffer upload, texture binding, draw, release).
package model

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// FloatsPerVertex is the interleaved vertex layout width:
// position (3) + normal (3) + texture coordinate (2).
const FloatsPerVertex = 8

// Data is one flattened drawable produced by Build: interleaved
// vertices, triangle indices and the resolved diffuse texture path
// (empty when the material has none). Immutable once returned.
type Data struct {
	Vertices    []float32
	Indices     []uint32
	TexturePath string
}

// VertexCount returns the number of vertices in the flattened array.
func (d Data) VertexCount() int {
	return len(d.Vertices) / FloatsPerVertex
}

// Build flattens every mesh reachable from the document's default
// scene into a list of Data, in depth-first order (a node's meshes
// before its children). modelDir is the directory texture URIs are
// resolved against.
//
// A document without a scene or without root nodes is an error and
// produces no meshes. Primitives that cannot yield valid geometry
// (no positions, indices out of range) are skipped.
func Build(doc *gltf.Document, modelDir string) ([]Data, error) {
	if len(doc.Scenes) == 0 {
		return nil, fmt.Errorf("document has no scene")
	}
	sceneIdx := uint32(0)
	if doc.Scene != nil {
		sceneIdx = *doc.Scene
	}
	if int(sceneIdx) >= len(doc.Scenes) {
		return nil, fmt.Errorf("default scene %d out of range", sceneIdx)
	}
	roots := doc.Scenes[sceneIdx].Nodes
	if len(roots) == 0 {
		return nil, fmt.Errorf("scene has no root node")
	}

	var out []Data
	var walk func(nodeIdx uint32)
	walk = func(nodeIdx uint32) {
		if int(nodeIdx) >= len(doc.Nodes) {
			return
		}
		node := doc.Nodes[nodeIdx]
		if node.Mesh != nil && int(*node.Mesh) < len(doc.Meshes) {
			for _, prim := range doc.Meshes[*node.Mesh].Primitives {
				d, err := buildPrimitive(doc, prim, modelDir)
				if err != nil {
					continue
				}
				out = append(out, d)
			}
		}
		for _, child := range node.Children {
			walk(child)
		}
	}
	for _, root := range roots {
		walk(root)
	}

	return out, nil
}

// buildPrimitive flattens a single glTF primitive into interleaved
// vertex data. Normals and texture coordinates missing from the
// source are substituted with zeros.
func buildPrimitive(doc *gltf.Document, prim *gltf.Primitive, modelDir string) (Data, error) {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok || int(posIdx) >= len(doc.Accessors) {
		return Data{}, fmt.Errorf("primitive has no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return Data{}, fmt.Errorf("reading positions: %w", err)
	}
	if len(positions) == 0 {
		return Data{}, fmt.Errorf("primitive has no vertices")
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes[gltf.NORMAL]; ok && int(idx) < len(doc.Accessors) {
		if n, err := modeler.ReadNormal(doc, doc.Accessors[idx], nil); err == nil {
			normals = n
		}
	}

	var texCoords [][2]float32
	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok && int(idx) < len(doc.Accessors) {
		if tc, err := modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil); err == nil {
			texCoords = tc
		}
	}

	vertices := make([]float32, 0, len(positions)*FloatsPerVertex)
	for i, pos := range positions {
		vertices = append(vertices, pos[0], pos[1], pos[2])
		if i < len(normals) {
			vertices = append(vertices, normals[i][0], normals[i][1], normals[i][2])
		} else {
			vertices = append(vertices, 0, 0, 0)
		}
		if i < len(texCoords) {
			vertices = append(vertices, texCoords[i][0], texCoords[i][1])
		} else {
			vertices = append(vertices, 0, 0)
		}
	}

	var indices []uint32
	if prim.Indices != nil && int(*prim.Indices) < len(doc.Accessors) {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return Data{}, fmt.Errorf("reading indices: %w", err)
		}
		for _, idx := range indices {
			if int(idx) >= len(positions) {
				return Data{}, fmt.Errorf("index %d out of range (%d vertices)", idx, len(positions))
			}
		}
	} else {
		// Non-indexed geometry draws through the same element path.
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	return Data{
		Vertices:    vertices,
		Indices:     indices,
		TexturePath: diffusePath(doc, prim, modelDir),
	}, nil
}

// diffusePath resolves the primitive material's base-color texture to
// a file path under modelDir. Returns "" when the material has no
// usable diffuse texture (no material, no base-color texture, or an
// embedded image without a URI).
func diffusePath(doc *gltf.Document, prim *gltf.Primitive, modelDir string) string {
	if prim.Material == nil || int(*prim.Material) >= len(doc.Materials) {
		return ""
	}
	mat := doc.Materials[*prim.Material]
	if mat.PBRMetallicRoughness == nil || mat.PBRMetallicRoughness.BaseColorTexture == nil {
		return ""
	}

	texIdx := mat.PBRMetallicRoughness.BaseColorTexture.Index
	if int(texIdx) >= len(doc.Textures) {
		return ""
	}
	tex := doc.Textures[texIdx]
	if tex.Source == nil || int(*tex.Source) >= len(doc.Images) {
		return ""
	}

	uri := doc.Images[*tex.Source].URI
	if uri == "" || strings.HasPrefix(uri, "data:") {
		return ""
	}
	return filepath.Join(modelDir, filepath.FromSlash(uri))
}
