package core

import (
	"errors"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/toxichemicals/GO/solarsystem/geometry"
)

// ErrEmptyMesh is returned when a mesh has no vertices or no indices.
var ErrEmptyMesh = errors.New("mesh has no geometry")

const floatSize = 4

// GPUMesh is a mesh uploaded to a vertex array object.
type GPUMesh struct {
	vao          uint32
	vbo          uint32
	ebo          uint32
	indicesCount int32
}

// UploadMesh copies the mesh into static vertex and index buffers.
// Attribute 0 is the position (3 floats), attribute 1 the UV (2 floats).
func UploadMesh(m *geometry.Mesh) (*GPUMesh, error) {
	if m == nil || len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return nil, ErrEmptyMesh
	}

	vertices := m.Interleaved()
	g := &GPUMesh{indicesCount: int32(len(m.Indices))}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSize, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	stride := int32(geometry.FloatsPerVertex * floatSize)

	// Position attribute (layout location 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	// Texture coordinate attribute (layout location 1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*floatSize))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	if err := CheckError("upload mesh"); err != nil {
		g.Delete()
		return nil, err
	}
	return g, nil
}

// Draw issues one indexed draw call.
func (g *GPUMesh) Draw() {
	gl.BindVertexArray(g.vao)
	gl.DrawElements(gl.TRIANGLES, g.indicesCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

// Delete releases the buffers and the vertex array.
func (g *GPUMesh) Delete() {
	gl.DeleteVertexArrays(1, &g.vao)
	gl.DeleteBuffers(1, &g.vbo)
	gl.DeleteBuffers(1, &g.ebo)
}
