package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAdvanceMonotonic(t *testing.T) {
	var o Orbits
	prev := o
	for _, dt := range []float32{0.016, 0, 0.5, -1, 0.033, 2} {
		o.Advance(dt)
		if o.PlanetAngle < prev.PlanetAngle || o.MoonAngle < prev.MoonAngle {
			t.Fatalf("dt=%v moved backwards: %+v -> %+v", dt, prev, o)
		}
		prev = o
	}

	want := mgl32.DegToRad(PlanetSpeed) * (0.016 + 0.5 + 0.033 + 2)
	if !mgl32.FloatEqualThreshold(o.PlanetAngle, want, 1e-5) {
		t.Errorf("planet angle = %v, want %v", o.PlanetAngle, want)
	}
}

func TestBodiesDistances(t *testing.T) {
	tests := []struct {
		name   string
		orbits Orbits
	}{
		{"start", Orbits{}},
		{"quarter", Orbits{PlanetAngle: math.Pi / 2, MoonAngle: math.Pi}},
		{"odd", Orbits{PlanetAngle: 4.2, MoonAngle: 17.3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := System{Orbits: tt.orbits}
			bodies := s.Bodies()
			if len(bodies) != 3 {
				t.Fatalf("got %d bodies, want 3", len(bodies))
			}

			sun := Position(bodies[0].Model)
			planet := Position(bodies[1].Model)
			moon := Position(bodies[2].Model)

			if sun.Len() > 1e-5 {
				t.Errorf("sun at %v, want origin", sun)
			}
			if d := planet.Len(); !mgl32.FloatEqualThreshold(d, PlanetDistance, 1e-4) {
				t.Errorf("planet distance = %v, want %v", d, PlanetDistance)
			}
			if d := moon.Sub(planet).Len(); !mgl32.FloatEqualThreshold(d, MoonDistance, 1e-4) {
				t.Errorf("moon-planet distance = %v, want %v", d, MoonDistance)
			}
			if planet.Y() != 0 || moon.Y() != 0 {
				t.Errorf("bodies left the orbital plane: planet %v moon %v", planet, moon)
			}
		})
	}
}

func TestPlanetRevolves(t *testing.T) {
	s := System{}
	start := Position(s.Bodies()[1].Model)
	s.Orbits.Advance(1)
	moved := Position(s.Bodies()[1].Model)

	if start.ApproxEqualThreshold(moved, 1e-4) {
		t.Fatalf("planet did not move: %v", moved)
	}
}
