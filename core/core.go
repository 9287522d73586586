// Package core owns the GLFW window, the OpenGL context and every GPU object
// the demo creates. All of its functions must run on the main OS thread.
package core

import (
	"fmt"
	"log"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/toxichemicals/GO/solarsystem/camera"
)

const (
	fieldOfView = 45.0 // Degrees
	nearPlane   = 0.1
	farPlane    = 100.0
)

// Core wraps the window and the per-window GL state.
type Core struct {
	window *glfw.Window

	width, height int
	title         string

	camera *camera.Controller

	fpsFrames     int
	fpsLastUpdate time.Time
}

// NewCore prepares a window description. Nothing is created until Init.
func NewCore(width, height int, title string, cam *camera.Controller) *Core {
	return &Core{
		width:  width,
		height: height,
		title:  title,
		camera: cam,
	}
}

// Init initializes GLFW, creates a double-buffered window with a core-profile
// context and loads the GL function pointers. The caller must have locked
// the OS thread.
func (c *Core) Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(c.width, c.height, c.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %w", err)
	}
	c.window = window
	c.window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		c.window.Destroy()
		glfw.Terminate()
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	log.Printf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Enable(gl.DEPTH_TEST)

	// The framebuffer can differ from the window size on HiDPI displays.
	c.width, c.height = c.window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(c.width), int32(c.height))

	c.installCallbacks()
	c.fpsLastUpdate = time.Now()

	return nil
}

func (c *Core) installCallbacks() {
	c.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		c.width, c.height = width, height
		gl.Viewport(0, 0, int32(width), int32(height))
	})

	c.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	if c.camera == nil {
		return
	}

	c.window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		switch action {
		case glfw.Press:
			c.camera.Press()
		case glfw.Release:
			c.camera.Release()
		}
	})

	c.window.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		c.camera.Move(xpos, ypos)
	})

	c.window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		c.camera.Zoom(yoff)
	})
}

// Projection returns the perspective matrix for the current framebuffer.
func (c *Core) Projection() mgl32.Mat4 {
	aspect := float32(1)
	if c.height > 0 {
		aspect = float32(c.width) / float32(c.height)
	}
	return mgl32.Perspective(mgl32.DegToRad(fieldOfView), aspect, nearPlane, farPlane)
}

// Time returns seconds since Init.
func (c *Core) Time() float32 {
	return float32(glfw.GetTime())
}

// ShouldClose returns true if the window should close.
func (c *Core) ShouldClose() bool {
	return c.window.ShouldClose()
}

// PollEvents processes window events.
func (c *Core) PollEvents() {
	glfw.PollEvents()
}

// ClearFrame clears the color and depth buffers.
func (c *Core) ClearFrame() {
	gl.ClearColor(0.02, 0.02, 0.06, 1.0) // Space
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SwapBuffers swaps the front and back buffers to display the rendered frame.
func (c *Core) SwapBuffers() {
	c.window.SwapBuffers()
}

// UpdateFPS shows the frame rate in the window title once per second.
func (c *Core) UpdateFPS() {
	c.fpsFrames++
	elapsed := time.Since(c.fpsLastUpdate)
	if elapsed < time.Second {
		return
	}
	fps := float64(c.fpsFrames) / elapsed.Seconds()
	c.window.SetTitle(fmt.Sprintf("%s | FPS: %.1f", c.title, fps))
	c.fpsFrames = 0
	c.fpsLastUpdate = time.Now()
}

// CheckError reports the first pending GL error, if any.
func CheckError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("%s: GL error 0x%04X", op, code)
	}
	return nil
}

// Shutdown destroys the window and terminates GLFW. GPU objects must be
// released before calling it.
func (c *Core) Shutdown() {
	if c.window != nil {
		c.window.Destroy()
	}
	glfw.Terminate()
}
