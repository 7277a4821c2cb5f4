package glbackend

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/tryekk/glquad/engine/assets"
	"github.com/tryekk/glquad/engine/core"
)

// RendererGL draws a single indexed quad with a program built from the
// configured shader file.
type RendererGL struct {
	win     core.Window
	program uint32
	vao     uint32
	vbo     uint32
	ibo     uint32
}

// quadVerts are the 2D corner positions of a unit-ish quad;
// quadIndices split it into two triangles sharing the diagonal.
var quadVerts = []float32{
	-0.5, -0.5, // bottom left
	0.5, -0.5,  // bottom right
	0.5, 0.5,   // top right
	-0.5, 0.5,  // top left
}

var quadIndices = []uint32{
	0, 1, 2,
	2, 3, 0,
}

// NewRendererGL parses cfg.ShaderPath, builds the program, and uploads the
// quad geometry. Any failure tears down whatever was already created and
// returns an error; a *RendererGL is never half-initialized.
func NewRendererGL(win core.Window, cfg core.Config) (*RendererGL, error) {
	src, err := assets.ParseShaderFile(cfg.ShaderPath)
	if err != nil {
		return nil, err
	}

	r := &RendererGL{win: win}
	r.program, err = BuildProgram(src.Vertex, src.Fragment)
	if err != nil {
		return nil, fmt.Errorf("build program from %q: %w", cfg.ShaderPath, err)
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(quadVerts), gl.STATIC_DRAW)

	// layout(location = 0) in vec2 aPos;
	const stride = 2 * 4 // bytes
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))

	gl.GenBuffers(1, &r.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(quadIndices)*4, gl.Ptr(quadIndices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	return r, nil
}

func (r *RendererGL) Shutdown() {
	if r.ibo != 0 {
		gl.DeleteBuffers(1, &r.ibo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (r *RendererGL) DrawQuad() {
	gl.UseProgram(r.program)
	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, int32(len(quadIndices)), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}
