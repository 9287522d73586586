package geometry

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewSphereCounts(t *testing.T) {
	tests := []struct {
		stacks, slices int
	}{
		{1, 1},
		{2, 3},
		{30, 30},
		{7, 64},
	}

	for _, tt := range tests {
		m, err := NewSphere(1, tt.stacks, tt.slices)
		if err != nil {
			t.Fatalf("NewSphere(1, %d, %d): %v", tt.stacks, tt.slices, err)
		}

		wantVerts := (tt.stacks + 1) * (tt.slices + 1)
		if len(m.Vertices) != wantVerts {
			t.Errorf("stacks=%d slices=%d: got %d vertices, want %d", tt.stacks, tt.slices, len(m.Vertices), wantVerts)
		}
		wantIdx := tt.stacks * tt.slices * 6
		if len(m.Indices) != wantIdx {
			t.Errorf("stacks=%d slices=%d: got %d indices, want %d", tt.stacks, tt.slices, len(m.Indices), wantIdx)
		}
		if m.TriangleCount() != tt.stacks*tt.slices*2 {
			t.Errorf("stacks=%d slices=%d: got %d triangles", tt.stacks, tt.slices, m.TriangleCount())
		}
		for i, idx := range m.Indices {
			if int(idx) >= wantVerts {
				t.Fatalf("index %d = %d out of range [0,%d)", i, idx, wantVerts)
			}
		}
	}
}

func TestNewSphereRadius(t *testing.T) {
	for _, radius := range []float32{0.25, 1, 3.5} {
		m, err := NewSphere(radius, 12, 24)
		if err != nil {
			t.Fatal(err)
		}
		for i, v := range m.Vertices {
			if l := v.Position.Len(); !mgl32.FloatEqualThreshold(l, radius, 1e-4) {
				t.Fatalf("radius %v: vertex %d has length %v", radius, i, l)
			}
		}
	}
}

func TestNewSphereUV(t *testing.T) {
	m, err := NewSphere(2, 4, 8)
	if err != nil {
		t.Fatal(err)
	}

	for i, v := range m.Vertices {
		if v.UV.X() < 0 || v.UV.X() > 1 || v.UV.Y() < 0 || v.UV.Y() > 1 {
			t.Fatalf("vertex %d uv %v outside unit square", i, v.UV)
		}
	}

	first := m.Vertices[0].UV
	last := m.Vertices[len(m.Vertices)-1].UV
	if first != (mgl32.Vec2{0, 0}) {
		t.Errorf("first uv = %v, want (0,0)", first)
	}
	if last != (mgl32.Vec2{1, 1}) {
		t.Errorf("last uv = %v, want (1,1)", last)
	}

	// North pole sits on +Y.
	if y := m.Vertices[0].Position.Y(); !mgl32.FloatEqualThreshold(y, 2, 1e-5) {
		t.Errorf("north pole y = %v, want 2", y)
	}
}

func TestNewSphereInvalid(t *testing.T) {
	tests := []struct {
		name           string
		radius         float32
		stacks, slices int
	}{
		{"zero radius", 0, 4, 4},
		{"negative radius", -1, 4, 4},
		{"zero stacks", 1, 0, 4},
		{"negative slices", 1, 4, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSphere(tt.radius, tt.stacks, tt.slices)
			if !errors.Is(err, ErrInvalidSphere) {
				t.Fatalf("got %v, want ErrInvalidSphere", err)
			}
		})
	}
}

func TestInterleaved(t *testing.T) {
	m, err := NewSphere(1, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	data := m.Interleaved()
	if len(data) != len(m.Vertices)*FloatsPerVertex {
		t.Fatalf("got %d floats, want %d", len(data), len(m.Vertices)*FloatsPerVertex)
	}

	v := m.Vertices[4]
	rec := data[4*FloatsPerVertex : 5*FloatsPerVertex]
	want := []float32{v.Position.X(), v.Position.Y(), v.Position.Z(), v.UV.X(), v.UV.Y()}
	for i := range want {
		if rec[i] != want[i] {
			t.Fatalf("record 4 = %v, want %v", rec, want)
		}
	}
}
