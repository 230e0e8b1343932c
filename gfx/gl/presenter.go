// Package glbackend submits immediate-mode draw data through OpenGL 3.3
// core. It owns the GPU device objects (shader program, buffers, fallback
// texture) for one UI and must be used on the thread holding the GL
// context.
package glbackend

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/pluginui/imbridge/colors"
	"github.com/pluginui/imbridge/imdraw"
)

const vertexSource = `
#version 330 core
layout(location=0) in vec2 aPos;
layout(location=1) in vec2 aUV;
layout(location=2) in vec4 aColor;
uniform mat4 uProj;
out vec2 vUV;
out vec4 vColor;
void main() {
    vUV = aUV;
    vColor = aColor;
    gl_Position = uProj * vec4(aPos, 0.0, 1.0);
}
` + "\x00"

const fragmentSource = `
#version 330 core
in vec2 vUV;
in vec4 vColor;
uniform sampler2D uTex;
out vec4 FragColor;
void main() {
    FragColor = vColor * texture(uTex, vUV);
}
` + "\x00"

// Presenter implements the rendering backend surface of the bridge.
type Presenter struct {
	program  uint32
	projLoc  int32
	vao      uint32
	vbo      uint32
	ebo      uint32
	whiteTex uint32
}

func New() *Presenter { return &Presenter{} }

// Setup initializes the GL function loader and creates the device
// objects. Any failure is returned so construction can fail fast instead
// of proceeding with unresolved entry points.
func (p *Presenter) Setup() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl loader init: %w", err)
	}

	var err error
	p.program, err = makeProgram(vertexSource, fragmentSource)
	if err != nil {
		return err
	}
	p.projLoc = gl.GetUniformLocation(p.program, gl.Str("uProj\x00"))

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)

	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.GenBuffers(1, &p.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.ebo)

	// layout matches imdraw.DrawVert: pos2f, uv2f, col4ub
	stride := int32(unsafe.Sizeof(imdraw.DrawVert{}))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(2*4)))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Pointer(uintptr(4*4)))

	gl.BindVertexArray(0)

	// 1x1 white fallback for untextured commands
	gl.GenTextures(1, &p.whiteTex)
	gl.BindTexture(gl.TEXTURE_2D, p.whiteTex)
	white := []uint8{255, 255, 255, 255}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(white))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return nil
}

// Shutdown releases the device objects.
func (p *Presenter) Shutdown() {
	if p.whiteTex != 0 {
		gl.DeleteTextures(1, &p.whiteTex)
	}
	if p.ebo != 0 {
		gl.DeleteBuffers(1, &p.ebo)
	}
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
	}
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
	}
	if p.program != 0 {
		gl.DeleteProgram(p.program)
	}
}

// Clear sets the viewport and clears it to the given color.
func (p *Presenter) Clear(width, height int, c colors.Color) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Render submits all draw lists of dd for a width x height viewport.
func (p *Presenter) Render(dd *imdraw.DrawData, width, height int) {
	gl.Enable(gl.BLEND)
	gl.BlendFuncSeparate(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA, gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(p.program)
	proj := orthoProjection(float32(width), float32(height))
	gl.UniformMatrix4fv(p.projLoc, 1, false, &proj[0])
	gl.Uniform1i(gl.GetUniformLocation(p.program, gl.Str("uTex\x00")), 0)
	gl.ActiveTexture(gl.TEXTURE0)

	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.ebo)

	for _, list := range dd.Lists {
		vtx := imdraw.VtxBytes(list.Vtx)
		idx := imdraw.IdxBytes(list.Idx)
		if len(vtx) == 0 || len(idx) == 0 {
			continue
		}
		gl.BufferData(gl.ARRAY_BUFFER, len(vtx), gl.Ptr(vtx), gl.STREAM_DRAW)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(idx), gl.Ptr(idx), gl.STREAM_DRAW)

		for i := range list.Cmds {
			cmd := &list.Cmds[i]
			applyScissor(cmd.ClipRect, height, width)

			tex := cmd.TextureID
			if tex == 0 {
				tex = p.whiteTex
			}
			gl.BindTexture(gl.TEXTURE_2D, tex)

			gl.DrawElementsBaseVertex(
				gl.TRIANGLES,
				int32(cmd.ElemCount),
				gl.UNSIGNED_SHORT,
				gl.PtrOffset(int(cmd.IdxOffset)*2),
				int32(cmd.VtxOffset),
			)
		}
	}

	gl.BindVertexArray(0)
	gl.UseProgram(0)
	gl.Disable(gl.SCISSOR_TEST)
}

// applyScissor converts a top-left-origin clip rect to GL's bottom-left
// scissor box. A degenerate rect means "no clip" and opens the full
// viewport.
func applyScissor(clip [4]float32, fbHeight, fbWidth int) {
	if clip[2] <= clip[0] || clip[3] <= clip[1] {
		gl.Scissor(0, 0, int32(fbWidth), int32(fbHeight))
		return
	}
	gl.Scissor(
		int32(clip[0]),
		int32(float32(fbHeight)-clip[3]),
		int32(clip[2]-clip[0]),
		int32(clip[3]-clip[1]),
	)
}

// orthoProjection builds a top-left-origin orthographic matrix in
// column-major order.
func orthoProjection(w, h float32) [16]float32 {
	return [16]float32{
		2 / w, 0, 0, 0,
		0, -2 / h, 0, 0,
		0, 0, -1, 0,
		-1, 1, 0, 1,
	}
}

// --- Shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
