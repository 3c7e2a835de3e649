package render

import (
	"fmt"
	"unsafe"

	"github.com/Faultbox/viewcube/pkg/cube"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// vertexStride is the size of one interleaved vertex: position + normal.
const vertexStride = 6 * 4

// GPUMesh is a triangle mesh uploaded to GPU buffers.
type GPUMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Upload creates GL buffers for a mesh.
func Upload(mesh *cube.Mesh) (*GPUMesh, error) {
	if mesh == nil || len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("cannot upload empty mesh")
	}

	// Interleave position and normal.
	data := make([]float32, 0, len(mesh.Vertices)*6)
	for _, v := range mesh.Vertices {
		data = append(data,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
		)
	}

	m := &GPUMesh{indexCount: int32(len(mesh.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, vertexStride, nil)
	gl.EnableVertexAttribArray(0)

	// Normal attribute (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, vertexStride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	return m, nil
}

// Delete releases the GL buffers.
func (m *GPUMesh) Delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	*m = GPUMesh{}
}
