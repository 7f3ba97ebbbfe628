// Package shader provides OpenGL shader compilation utilities.
package shader

import (
	"fmt"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Program wraps a linked GL shader program. The zero value is invalid
// and safe to carry around: callers skip drawing when !Valid().
type Program struct {
	ID uint32
}

// Valid reports whether the program linked successfully.
func (p Program) Valid() bool {
	return p.ID != 0
}

// Use makes the program current. No-op for an invalid program.
func (p Program) Use() {
	if p.ID != 0 {
		gl.UseProgram(p.ID)
	}
}

// Delete releases the program.
func (p Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
	}
}

// Uniform returns the uniform location, or -1 if not found/inactive.
func (p Program) Uniform(name string) int32 {
	return gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
}

// LoadProgram reads, compiles and links a vertex/fragment shader file
// pair. The returned error carries the compiler or linker diagnostic.
func LoadProgram(vertexPath, fragmentPath string) (Program, error) {
	vertexSrc, err := os.ReadFile(vertexPath)
	if err != nil {
		return Program{}, fmt.Errorf("reading vertex shader: %w", err)
	}
	fragmentSrc, err := os.ReadFile(fragmentPath)
	if err != nil {
		return Program{}, fmt.Errorf("reading fragment shader: %w", err)
	}
	return CompileProgram(string(vertexSrc), string(fragmentSrc))
}

// CompileProgram compiles vertex and fragment shader sources and links
// them into a program.
func CompileProgram(vertexSrc, fragmentSrc string) (Program, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return Program{}, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return Program{}, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return Program{}, fmt.Errorf("link: %s", string(log))
	}

	return Program{ID: program}, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, string(log))
	}

	return shader, nil
}
