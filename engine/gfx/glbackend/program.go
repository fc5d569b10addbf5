package glbackend

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// CompileError reports a failed shader-stage compilation with the driver's
// diagnostic log. Fatal to program creation.
type CompileError struct {
	Stage string
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %s shader: %s", e.Stage, e.Log)
}

// LinkError reports a failed program link. Fatal to program creation.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link program: %s", e.Log)
}

// Program wraps a linked GL program object. The zero value is invalid and
// all methods are no-ops on it.
type Program struct {
	id uint32
}

// boundProgram tracks the current gl.UseProgram target so redundant binds
// are skipped. GL state is process-wide; the whole backend is single-threaded.
var boundProgram uint32

func stageName(stage uint32) string {
	switch stage {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	default:
		return fmt.Sprintf("stage(0x%X)", stage)
	}
}

func compileStage(src string, stage uint32) (uint32, error) {
	// A missing shader file arrives here as an empty string; it must fail
	// compilation instead of producing a program that later gets bound.
	if strings.TrimRight(src, "\x00") == "" {
		return 0, &CompileError{Stage: stageName(stage), Log: "empty shader source"}
	}
	if !strings.HasSuffix(src, "\x00") {
		src += "\x00"
	}

	sh := gl.CreateShader(stage)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(sh, 1, csrc, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(infoLog))
		gl.DeleteShader(sh)
		return 0, &CompileError{Stage: stageName(stage), Log: strings.TrimRight(infoLog, "\x00")}
	}
	return sh, nil
}

// NewProgram compiles a vertex+fragment pair and links them into one
// program. The intermediate shader objects are released on every path; on
// failure no bindable handle escapes.
func NewProgram(vsSrc, fsSrc string) (*Program, error) {
	vs, err := compileStage(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	fs, err := compileStage(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return nil, err
	}

	id := gl.CreateProgram()
	gl.AttachShader(id, vs)
	gl.AttachShader(id, fs)
	gl.LinkProgram(id)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(id, logLen, nil, gl.Str(infoLog))
		gl.DeleteProgram(id)
		return nil, &LinkError{Log: strings.TrimRight(infoLog, "\x00")}
	}
	return &Program{id: id}, nil
}

// Valid reports whether p holds a linked GL program.
func (p *Program) Valid() bool { return p != nil && p.id != 0 }

// Bind makes the program current. Idempotent: already-bound programs and
// invalid handles are skipped.
func (p *Program) Bind() {
	if !p.Valid() || boundProgram == p.id {
		return
	}
	gl.UseProgram(p.id)
	boundProgram = p.id
}

func (p *Program) uniform(name string) (int32, bool) {
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	if loc < 0 {
		// Non-fatal: the shader simply doesn't declare this uniform.
		log.Printf("uniform %q not found in program %d", name, p.id)
		return 0, false
	}
	return loc, true
}

// SetMat4 binds the program and uploads a 4x4 matrix by uniform name. An
// unknown name logs a warning and leaves GL state untouched.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	if !p.Valid() {
		return
	}
	p.Bind()
	if loc, ok := p.uniform(name); ok {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}

// SetVec4 binds the program and uploads a vec4 by uniform name. Unknown
// names warn and continue, same as SetMat4.
func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	if !p.Valid() {
		return
	}
	p.Bind()
	if loc, ok := p.uniform(name); ok {
		gl.Uniform4fv(loc, 1, &v[0])
	}
}

// Destroy releases the GL program. Safe to call on an already-destroyed or
// invalid handle.
func (p *Program) Destroy() {
	if !p.Valid() {
		return
	}
	if boundProgram == p.id {
		gl.UseProgram(0)
		boundProgram = 0
	}
	gl.DeleteProgram(p.id)
	p.id = 0
}
