package model

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/qmuntal/gltf"
	"go.uber.org/zap"

	"github.com/gloamdev/gloam/internal/assets"
	"github.com/gloamdev/gloam/internal/engine/texture"
	"github.com/gloamdev/gloam/internal/logger"
)

// Texture is a GPU texture owned by a mesh.
type Texture struct {
	ID   uint32
	Kind string // semantic kind, e.g. "diffuse"
	Path string
}

// Mesh is one drawable unit: GPU buffer handles, index count and the
// textures the draw binds. Created during Load, immutable afterward.
type Mesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
	Textures      []Texture
}

// Loader owns the meshes of one loaded model asset.
type Loader struct {
	Name   string
	Meshes []Mesh

	assets *assets.Manager

	// GPU entry points, swappable in tests.
	uploadFn  func(d Data) (vao, vbo, ebo uint32)
	textureFn func(path string) (uint32, error)
	releaseFn func(m *Mesh)
}

// New creates an empty loader resolving assets through mgr.
func New(mgr *assets.Manager) *Loader {
	l := &Loader{
		assets:    mgr,
		uploadFn:  uploadMeshData,
		releaseFn: releaseMesh,
	}
	l.textureFn = func(path string) (uint32, error) {
		data, err := mgr.Load(path)
		if err != nil {
			return 0, err
		}
		return texture.Load(data, path)
	}
	return l
}

// Load imports the named model and uploads its meshes, first releasing
// anything loaded previously. On import or build failure the loader is
// left empty and the error returned; drawing an empty loader renders
// nothing. A texture failure only leaves that mesh untextured.
func (l *Loader) Load(name string) error {
	l.Release()
	l.Name = name

	scenePath := l.assets.ModelScene(name)
	doc, err := gltf.Open(scenePath)
	if err != nil {
		return fmt.Errorf("importing %s: %w", scenePath, err)
	}

	built, err := Build(doc, l.assets.ModelDir(name))
	if err != nil {
		return fmt.Errorf("building %s: %w", name, err)
	}

	for _, d := range built {
		vao, vbo, ebo := l.uploadFn(d)
		m := Mesh{vao: vao, vbo: vbo, ebo: ebo, indexCount: int32(len(d.Indices))}

		if d.TexturePath != "" {
			id, err := l.textureFn(d.TexturePath)
			if err != nil {
				// Draw untextured rather than fail the load.
				logger.Error("texture load failed",
					zap.String("path", d.TexturePath),
					zap.Error(err),
				)
			} else if id != 0 {
				m.Textures = append(m.Textures, Texture{ID: id, Kind: "diffuse", Path: d.TexturePath})
			}
		}

		l.Meshes = append(l.Meshes, m)
	}

	logger.Info("model loaded",
		zap.String("name", name),
		zap.Int("meshes", len(l.Meshes)),
	)
	return nil
}

// Draw issues one draw call per mesh, binding the first texture (if
// any) to texture unit 0. Must run on the GL thread.
func (l *Loader) Draw() {
	for i := range l.Meshes {
		m := &l.Meshes[i]
		if len(m.Textures) > 0 {
			gl.ActiveTexture(gl.TEXTURE0)
			gl.BindTexture(gl.TEXTURE_2D, m.Textures[0].ID)
		}
		gl.BindVertexArray(m.vao)
		gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
		gl.BindVertexArray(0)
	}
}

// Release frees all GPU resources and empties the loader.
func (l *Loader) Release() {
	for i := range l.Meshes {
		l.releaseFn(&l.Meshes[i])
	}
	l.Meshes = nil
}

// uploadMeshData creates the VAO/VBO/EBO triple for one flattened
// mesh and describes the fixed 8-float vertex layout.
func uploadMeshData(d Data) (vao, vbo, ebo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(d.Vertices)*4, gl.Ptr(d.Vertices), gl.STATIC_DRAW)

	stride := int32(FloatsPerVertex * 4)
	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(d.Indices)*4, gl.Ptr(d.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return vao, vbo, ebo
}

// releaseMesh frees the mesh's buffers and textures.
func releaseMesh(m *Mesh) {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	for i := range m.Textures {
		gl.DeleteTextures(1, &m.Textures[i].ID)
	}
}
