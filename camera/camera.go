// Package camera turns mouse drags into an orbit camera around the origin.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	Sensitivity = 0.3 // Degrees per pixel
	MaxPitch    = 89.0

	DefaultDistance = 12.0
	MinDistance     = 3.0
	MaxDistance     = 40.0
	zoomStep        = 0.8
)

// State is the camera orientation plus the drag bookkeeping.
type State struct {
	Yaw, Pitch   float32 // Degrees
	LastX, LastY float64
	Dragging     bool
	Distance     float32
}

// Controller owns the camera state. Only its methods mutate it.
type Controller struct {
	state State
}

// NewController starts idle with the cursor assumed at (startX, startY),
// normally the window centre.
func NewController(startX, startY float64) *Controller {
	return &Controller{state: State{
		LastX:    startX,
		LastY:    startY,
		Distance: DefaultDistance,
	}}
}

// State returns a copy of the current camera state.
func (c *Controller) State() State {
	return c.state
}

// Press starts a drag.
func (c *Controller) Press() {
	c.state.Dragging = true
}

// Release ends a drag.
func (c *Controller) Release() {
	c.state.Dragging = false
}

// Move handles a cursor position event.
func (c *Controller) Move(x, y float64) {
	if !c.state.Dragging {
		c.state.LastX, c.state.LastY = x, y
		return
	}

	xoffset := float32(x - c.state.LastX)
	yoffset := float32(c.state.LastY - y) // Screen y grows downwards
	c.state.LastX, c.state.LastY = x, y

	c.state.Yaw += xoffset * Sensitivity
	c.state.Pitch = mgl32.Clamp(c.state.Pitch+yoffset*Sensitivity, -MaxPitch, MaxPitch)
}

// Zoom moves the camera along its view axis, scroll up brings it closer.
func (c *Controller) Zoom(yoff float64) {
	d := c.state.Distance - float32(yoff)*zoomStep
	c.state.Distance = mgl32.Clamp(d, MinDistance, MaxDistance)
}

// Eye returns the camera position on its orbit around the origin.
func (c *Controller) Eye() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.state.Yaw))
	pitch := float64(mgl32.DegToRad(c.state.Pitch))

	dir := mgl32.Vec3{
		float32(math.Cos(pitch) * math.Sin(yaw)),
		float32(math.Sin(pitch)),
		float32(math.Cos(pitch) * math.Cos(yaw)),
	}
	return dir.Mul(c.state.Distance)
}

// View builds the view matrix looking at the origin.
func (c *Controller) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(), mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
}
