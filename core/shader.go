package core

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/toxichemicals/GO/solarsystem/shaders"
)

// Program is a linked shader program with its uniform locations cached.
// A location of -1 means the uniform is absent or unused; GL ignores writes to it.
type Program struct {
	id uint32

	modelUniform      int32
	viewUniform       int32
	projectionUniform int32
	timeUniform       int32
	colorUniform      int32
}

// NewProgram compiles and links a vertex/fragment pair.
func NewProgram(src shaders.Sources) (*Program, error) {
	id, err := compileShader(src.Vertex, src.Fragment)
	if err != nil {
		return nil, err
	}

	p := &Program{
		id:                id,
		modelUniform:      uniformLocation(id, "model"),
		viewUniform:       uniformLocation(id, "view"),
		projectionUniform: uniformLocation(id, "projection"),
		timeUniform:       uniformLocation(id, "time"),
		colorUniform:      uniformLocation(id, "color"),
	}
	if err := CheckError("create program"); err != nil {
		gl.DeleteProgram(id)
		return nil, err
	}
	return p, nil
}

func uniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// Use binds the program.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// SetFrame uploads the per-frame uniforms.
func (p *Program) SetFrame(view, projection mgl32.Mat4, seconds float32) {
	gl.UniformMatrix4fv(p.viewUniform, 1, false, &view[0])
	gl.UniformMatrix4fv(p.projectionUniform, 1, false, &projection[0])
	gl.Uniform1f(p.timeUniform, seconds)
}

// SetBody uploads the per-draw uniforms.
func (p *Program) SetBody(model mgl32.Mat4, color mgl32.Vec3) {
	gl.UniformMatrix4fv(p.modelUniform, 1, false, &model[0])
	gl.Uniform3fv(p.colorUniform, 1, &color[0])
}

// Delete releases the program.
func (p *Program) Delete() {
	gl.DeleteProgram(p.id)
}

// compileShader compiles vertex and fragment shaders into an OpenGL program.
func compileShader(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileStage(gl.VERTEX_SHADER, vertexShaderSource, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileStage(gl.FRAGMENT_SHADER, fragmentShaderSource, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)
	if err := checkProgramLinkStatus(program); err != nil {
		gl.DeleteProgram(program)
		return 0, err
	}

	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	return program, nil
}

func compileStage(kind uint32, source, name string) (uint32, error) {
	shader := gl.CreateShader(kind)
	glShaderSource(shader, source)
	gl.CompileShader(shader)
	if err := checkShaderCompileStatus(shader, name); err != nil {
		gl.DeleteShader(shader)
		return 0, err
	}
	return shader, nil
}

// glShaderSource is a helper to correctly pass GLSL source to OpenGL
func glShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func checkShaderCompileStatus(shader uint32, shaderType string) error {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		return fmt.Errorf("failed to compile %s shader:\n%v", shaderType, strings.TrimRight(log, "\x00"))
	}
	return nil
}

func checkProgramLinkStatus(program uint32) error {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		return fmt.Errorf("failed to link program:\n%v", strings.TrimRight(log, "\x00"))
	}
	return nil
}
