// Package shaders reads GLSL sources from disk. The default vertex and
// fragment shaders for the demo live next to this file.
package shaders

import (
	"fmt"
	"os"
	"strings"
)

// Default locations, relative to the working directory.
const (
	VertexPath   = "shaders/vertex_shader.glsl"
	FragmentPath = "shaders/fragment_shader.glsl"
)

// Sources is a vertex/fragment pair ready for compilation.
type Sources struct {
	Vertex   string
	Fragment string
}

// Load reads both shader stages. It fails on the first file that cannot be read.
func Load(vertexPath, fragmentPath string) (Sources, error) {
	vertex, err := readFile(vertexPath)
	if err != nil {
		return Sources{}, err
	}
	fragment, err := readFile(fragmentPath)
	if err != nil {
		return Sources{}, err
	}
	return Sources{Vertex: vertex, Fragment: fragment}, nil
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot open shader file %s: %w", path, err)
	}
	src := string(data)
	if strings.TrimSpace(src) == "" {
		return "", fmt.Errorf("shader file %s is empty", path)
	}
	return src, nil
}
