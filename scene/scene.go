// Package scene holds the animated solar system: orbit angles and the model
// matrix of every body drawn each frame.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Orbit parameters. Speeds are in degrees per second.
const (
	SunScale = 1.0

	PlanetDistance = 4.0
	PlanetScale    = 0.4
	PlanetSpeed    = 30.0

	MoonDistance = 1.0
	MoonScale    = 0.15
	MoonSpeed    = 120.0
)

// Orbits are the revolution angles in radians.
type Orbits struct {
	PlanetAngle float32
	MoonAngle   float32
}

// Advance moves both bodies along their orbits by dt seconds.
// Negative dt is ignored so angles never move backwards.
func (o *Orbits) Advance(dt float32) {
	if dt <= 0 {
		return
	}
	o.PlanetAngle += mgl32.DegToRad(PlanetSpeed) * dt
	o.MoonAngle += mgl32.DegToRad(MoonSpeed) * dt
}

// Body is something to draw with the shared sphere mesh.
type Body struct {
	Name  string
	Model mgl32.Mat4
	Color mgl32.Vec3
}

// System is the whole animated scene.
type System struct {
	Orbits Orbits
}

// Bodies returns the sun, the planet and the moon for the current orbit angles.
// The moon's orbit is centred on the planet.
func (s *System) Bodies() []Body {
	sun := mgl32.Scale3D(SunScale, SunScale, SunScale)

	planetPos := mgl32.HomogRotate3DY(s.Orbits.PlanetAngle).Mul4(mgl32.Translate3D(PlanetDistance, 0, 0))
	planet := planetPos.Mul4(mgl32.Scale3D(PlanetScale, PlanetScale, PlanetScale))

	moonPos := planetPos.
		Mul4(mgl32.HomogRotate3DY(s.Orbits.MoonAngle)).
		Mul4(mgl32.Translate3D(MoonDistance, 0, 0))
	moon := moonPos.Mul4(mgl32.Scale3D(MoonScale, MoonScale, MoonScale))

	return []Body{
		{Name: "sun", Model: sun, Color: mgl32.Vec3{1.0, 0.8, 0.2}},
		{Name: "planet", Model: planet, Color: mgl32.Vec3{0.2, 0.5, 1.0}},
		{Name: "moon", Model: moon, Color: mgl32.Vec3{0.7, 0.7, 0.7}},
	}
}

// Position returns the world-space origin of a body's model matrix.
func Position(m mgl32.Mat4) mgl32.Vec3 {
	return m.Col(3).Vec3()
}
