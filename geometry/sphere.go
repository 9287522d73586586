// Package geometry builds CPU-side meshes that the core package uploads to the GPU.
package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// FloatsPerVertex is the interleaved layout: 3 position floats followed by 2 UV floats.
const FloatsPerVertex = 5

// ErrInvalidSphere is returned when a sphere is requested with a non-positive parameter.
var ErrInvalidSphere = errors.New("invalid sphere parameters")

// Vertex is one point of a mesh with its texture coordinate.
type Vertex struct {
	Position mgl32.Vec3
	UV       mgl32.Vec2
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// NewSphere generates a UV sphere from a stacks x slices latitude/longitude grid.
// Rings run from the north pole (V=0) to the south pole (V=1); the seam column
// is duplicated so that U covers [0,1] inclusive.
func NewSphere(radius float32, stacks, slices int) (*Mesh, error) {
	if radius <= 0 || stacks <= 0 || slices <= 0 {
		return nil, fmt.Errorf("%w: radius=%v stacks=%d slices=%d", ErrInvalidSphere, radius, stacks, slices)
	}

	m := &Mesh{
		Vertices: make([]Vertex, 0, (stacks+1)*(slices+1)),
		Indices:  make([]uint32, 0, stacks*slices*6),
	}

	for i := 0; i <= stacks; i++ {
		v := float32(i) / float32(stacks)
		phi := float64(v) * math.Pi
		sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)

		for j := 0; j <= slices; j++ {
			u := float32(j) / float32(slices)
			theta := float64(u) * 2 * math.Pi

			x := float32(math.Cos(theta) * sinPhi)
			y := float32(cosPhi)
			z := float32(math.Sin(theta) * sinPhi)

			m.Vertices = append(m.Vertices, Vertex{
				Position: mgl32.Vec3{x, y, z}.Mul(radius),
				UV:       mgl32.Vec2{u, v},
			})
		}
	}

	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			first := uint32(i*(slices+1) + j)
			second := first + uint32(slices) + 1

			m.Indices = append(m.Indices,
				first, second, first+1,
				second, second+1, first+1,
			)
		}
	}

	return m, nil
}

// Interleaved flattens the vertices into [x y z u v] records for a vertex buffer.
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Vertices)*FloatsPerVertex)
	for _, v := range m.Vertices {
		out = append(out, v.Position.X(), v.Position.Y(), v.Position.Z(), v.UV.X(), v.UV.Y())
	}
	return out
}

// TriangleCount returns the number of triangles described by the index list.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}
