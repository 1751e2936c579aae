package renderer

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// StageKind identifies one programmable pipeline stage.
type StageKind uint32

const (
	VertexStage   StageKind = gl.VERTEX_SHADER
	FragmentStage StageKind = gl.FRAGMENT_SHADER
)

func (k StageKind) String() string {
	switch k {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return fmt.Sprintf("StageKind(%d)", uint32(k))
}

// CompileError reports a shader stage the driver refused to compile. Log is
// the driver's full info log.
type CompileError struct {
	Kind StageKind
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %s stage: %s", e.Kind, e.Log)
}

// LinkError reports a program the driver refused to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link program: %s", e.Log)
}

// Stage is one compiled shader stage. It is only needed while programs are
// being linked; release it once every program that uses it exists.
type Stage struct {
	id   uint32
	kind StageKind
}

// CompileStage compiles GLSL source text into a stage of the given kind.
// On failure it returns a *CompileError and leaks no GPU object.
func CompileStage(source string, kind StageKind) (*Stage, error) {
	id := gl.CreateShader(uint32(kind))

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csources, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		log := shaderInfoLog(id)
		gl.DeleteShader(id)
		return nil, &CompileError{Kind: kind, Log: log}
	}

	return &Stage{id: id, kind: kind}, nil
}

// Release deletes the GPU-side stage object.
func (s *Stage) Release() {
	gl.DeleteShader(s.id)
	s.id = 0
}

// Program is a linked, executable vertex+fragment pairing.
type Program struct {
	id        uint32
	locations map[string]int32
}

// LinkProgram links a vertex and a fragment stage into an executable program.
// The same vertex stage may be linked into any number of programs.
func LinkProgram(vertex, fragment *Stage) (*Program, error) {
	id := gl.CreateProgram()
	gl.AttachShader(id, vertex.id)
	gl.AttachShader(id, fragment.id)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := programInfoLog(id)
		gl.DeleteProgram(id)
		return nil, &LinkError{Log: log}
	}

	return &Program{id: id, locations: make(map[string]int32)}, nil
}

// Use makes the program current for subsequent draws.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Locate resolves a uniform location, caching the result for the life of the
// program. The second return is false when the program declares no such
// uniform; that is an expected outcome, not an error.
func (p *Program) Locate(name string) (int32, bool) {
	loc, ok := p.locations[name]
	if !ok {
		loc = gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
		p.locations[name] = loc
	}
	return loc, loc >= 0
}

// SetFloat updates a float uniform on the currently used program, skipping
// programs that do not declare it. It reports whether the update happened.
func (p *Program) SetFloat(name string, v float32) bool {
	loc, ok := p.Locate(name)
	if !ok {
		return false
	}
	gl.Uniform1f(loc, v)
	return true
}

// Release deletes the GPU program object. Uniform locations resolved through
// Locate are invalid afterwards.
func (p *Program) Release() {
	gl.DeleteProgram(p.id)
	p.id = 0
}

func shaderInfoLog(id uint32) string {
	var length int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &length)
	if length <= 0 {
		return ""
	}
	buf := make([]byte, length)
	gl.GetShaderInfoLog(id, length, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00")
}

func programInfoLog(id uint32) string {
	var length int32
	gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &length)
	if length <= 0 {
		return ""
	}
	buf := make([]byte, length)
	gl.GetProgramInfoLog(id, length, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00")
}
