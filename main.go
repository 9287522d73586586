package main

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/toxichemicals/GO/solarsystem/camera"
	"github.com/toxichemicals/GO/solarsystem/core"
	"github.com/toxichemicals/GO/solarsystem/geometry"
	"github.com/toxichemicals/GO/solarsystem/scene"
	"github.com/toxichemicals/GO/solarsystem/shaders"
)

// Constants for window dimensions
const (
	screenWidth  = 800
	screenHeight = 600
	windowTitle  = "Mini Solar System"
)

// Sphere tessellation shared by every body
const (
	sphereRadius = 1.0
	sphereStacks = 30
	sphereSlices = 30
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	// Shader files are read before any window exists so a bad path fails fast.
	src, err := shaders.Load(shaders.VertexPath, shaders.FragmentPath)
	if err != nil {
		log.Fatalf("Shader loading failed: %v", err)
	}

	sphere, err := geometry.NewSphere(sphereRadius, sphereStacks, sphereSlices)
	if err != nil {
		log.Fatalf("Sphere generation failed: %v", err)
	}
	log.Printf("Sphere: %d vertices, %d triangles", len(sphere.Vertices), sphere.TriangleCount())

	cam := camera.NewController(screenWidth/2, screenHeight/2)
	coreLib := core.NewCore(screenWidth, screenHeight, windowTitle, cam)
	if err := coreLib.Init(); err != nil {
		log.Fatalf("Core library initialization failed: %v", err)
	}

	if err := run(coreLib, cam, src, sphere); err != nil {
		coreLib.Shutdown()
		log.Fatalf("Render loop failed: %v", err)
	}
	coreLib.Shutdown()
	log.Println("Shutting down.")
}

// run owns the GPU objects and draws until the window closes.
func run(coreLib *core.Core, cam *camera.Controller, src shaders.Sources, sphere *geometry.Mesh) error {
	program, err := core.NewProgram(src)
	if err != nil {
		return fmt.Errorf("failed to build shader program: %w", err)
	}
	defer program.Delete()

	mesh, err := core.UploadMesh(sphere)
	if err != nil {
		return fmt.Errorf("failed to upload sphere: %w", err)
	}
	defer mesh.Delete()

	log.Println("Initialized. Starting main loop...")

	var system scene.System
	lastFrameTime := time.Now()

	for !coreLib.ShouldClose() {
		currentTime := time.Now()
		deltaTime := float32(currentTime.Sub(lastFrameTime).Seconds())
		lastFrameTime = currentTime

		system.Orbits.Advance(deltaTime)

		coreLib.ClearFrame()

		program.Use()
		program.SetFrame(cam.View(), coreLib.Projection(), coreLib.Time())
		for _, body := range system.Bodies() {
			program.SetBody(body.Model, body.Color)
			mesh.Draw()
		}

		if err := core.CheckError("draw"); err != nil {
			return err
		}

		coreLib.SwapBuffers()
		coreLib.PollEvents()
		coreLib.UpdateFPS()
	}

	return nil
}
