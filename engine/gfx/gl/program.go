package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// CompileError reports a failed stage compilation. Stage is "vertex" or
// "fragment"; Log is the driver's info log.
type CompileError struct {
	Stage string
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %s shader: %s", e.Stage, e.Log)
}

// LinkError reports a failed program link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link program: %s", e.Log)
}

// shaderAPI is the slice of GL used to build a program. The seam exists so
// builder behavior (ordering, early abort, release on failure) is testable
// without a live context.
type shaderAPI interface {
	CreateShader(xtype uint32) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	CompileStatus(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ValidateProgram(program uint32)
	LinkStatus(program uint32) bool
	ProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
}

var api shaderAPI = openglAPI{}

// BuildProgram compiles the two stage sources and links them into an
// executable program. On success the returned id is a valid, linked program
// owned by the caller; on any failure the result is (0, err) and every
// intermediate GL object has been deleted. The fragment stage is not
// compiled if the vertex stage fails.
func BuildProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vs, err := compileStage("vertex", gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return 0, err
	}
	fs, err := compileStage("fragment", gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		api.DeleteShader(vs)
		return 0, err
	}

	prog := api.CreateProgram()
	api.AttachShader(prog, vs)
	api.AttachShader(prog, fs)
	api.LinkProgram(prog)
	api.ValidateProgram(prog)

	// Stages are intermediate artifacts; drop them whatever the link outcome.
	api.DeleteShader(vs)
	api.DeleteShader(fs)

	if !api.LinkStatus(prog) {
		log := api.ProgramInfoLog(prog)
		api.DeleteProgram(prog)
		return 0, &LinkError{Log: log}
	}
	return prog, nil
}

func compileStage(stage string, xtype uint32, src string) (uint32, error) {
	sh := api.CreateShader(xtype)
	api.ShaderSource(sh, src)
	api.CompileShader(sh)
	if !api.CompileStatus(sh) {
		log := api.ShaderInfoLog(sh)
		api.DeleteShader(sh)
		return 0, &CompileError{Stage: stage, Log: log}
	}
	return sh, nil
}

// openglAPI forwards to go-gl. Sources are NUL-terminated here; the parser
// hands out plain Go strings.
type openglAPI struct{}

func (openglAPI) CreateShader(xtype uint32) uint32 { return gl.CreateShader(xtype) }

func (openglAPI) ShaderSource(shader uint32, src string) {
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, csrc, nil)
}

func (openglAPI) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (openglAPI) CompileStatus(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (openglAPI) ShaderInfoLog(shader uint32) string {
	var logLen int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	buf := strings.Repeat("\x00", int(logLen))
	gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
	return strings.TrimRight(buf, "\x00\n")
}

func (openglAPI) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (openglAPI) CreateProgram() uint32 { return gl.CreateProgram() }

func (openglAPI) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (openglAPI) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (openglAPI) ValidateProgram(program uint32) { gl.ValidateProgram(program) }

func (openglAPI) LinkStatus(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (openglAPI) ProgramInfoLog(program uint32) string {
	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	buf := strings.Repeat("\x00", int(logLen))
	gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
	return strings.TrimRight(buf, "\x00\n")
}

func (openglAPI) DeleteProgram(program uint32) { gl.DeleteProgram(program) }
