package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/tilecast/raster"
)

// blitVertexShaderSource and blitFragmentShaderSource draw a fullscreen
// quad sampling a texture, grounded on the teacher's
// textureVertexShaderSource/textureFragmentShaderSource
// (renderer_opengl.go) with the model/view/proj uniforms dropped since
// the quad is already in clip space.
const (
	blitVertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;

out vec2 TexCoord;

void main() {
	gl_Position = vec4(aPos, 0.0, 1.0);
	TexCoord = aUV;
}
` + "\x00"

	blitFragmentShaderSource = `
#version 410 core
in vec2 TexCoord;

out vec4 FragColor;

uniform sampler2D frameTexture;

void main() {
	FragColor = texture(frameTexture, TexCoord);
}
` + "\x00"
)

// glPresenter mirrors the teacher's OpenGLRenderer (renderer_opengl.go)
// for window setup, shader compile/link and the render loop shape, but
// it never touches a vertex/fragment pipeline of its own: the core's
// CPU framebuffer is uploaded as a texture and blitted over a VAO/VBO
// fullscreen quad every frame, since rasterization already happened
// off the GPU. A core profile context has no fixed-function pipeline,
// so the blit needs a real (if trivial) shader program the same way
// the teacher's textured path does.
type glPresenter struct {
	window  *glfw.Window
	texture uint32
	program uint32
	vao     uint32
	vbo     uint32
	sampler int32
	width   int
	height  int
}

func init() {
	runtime.LockOSThread()
}

func newGLPresenter(width, height int) (*glPresenter, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, "tilecast", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	program, err := linkBlitProgram()
	if err != nil {
		return nil, fmt.Errorf("blit program: %w", err)
	}

	vao, vbo := createBlitQuad()

	return &glPresenter{
		window:  window,
		texture: tex,
		program: program,
		vao:     vao,
		vbo:     vbo,
		sampler: gl.GetUniformLocation(program, gl.Str("frameTexture\x00")),
		width:   width,
		height:  height,
	}, nil
}

// createBlitQuad builds a VAO/VBO pair holding two triangles that
// cover clip space, each vertex carrying a position and a UV,
// following the teacher's createBuffers pattern of interleaved
// attributes plus VertexAttribPointer/EnableVertexAttribArray calls.
func createBlitQuad() (vao, vbo uint32) {
	// aPos.x, aPos.y, aUV.x, aUV.y per vertex; y is flipped versus the
	// framebuffer's top-down row order since OpenGL's texture origin
	// is bottom-left.
	verts := []float32{
		-1, -1, 0, 1,
		1, -1, 1, 1,
		1, 1, 1, 0,
		-1, -1, 0, 1,
		1, 1, 1, 0,
		-1, 1, 0, 0,
	}

	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return vao, vbo
}

func linkBlitProgram() (uint32, error) {
	vertexShader, err := compileShader(blitVertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("blit vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(blitFragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("blit fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("failed to link blit program: %v", log)
	}

	return program, nil
}

// compileShader mirrors the teacher's OpenGLRenderer.compileShader.
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("failed to compile shader: %v", log)
	}

	return shader, nil
}

func (p *glPresenter) shouldClose() bool {
	return p.window.ShouldClose()
}

// present uploads the renderer's packed RGBA color plane as a texture
// and draws it over the fullscreen quad through the blit program,
// since a core profile context has no glBegin/glVertex2f/glTexCoord2f
// fixed-function path to fall back on.
func (p *glPresenter) present(r *raster.Renderer) {
	gl.Viewport(0, 0, int32(p.width), int32(p.height))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, p.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(r.Width), int32(r.Height), 0,
		gl.RGBA, gl.UNSIGNED_INT_8_8_8_8, gl.Ptr(r.ColorBuffer()))

	gl.UseProgram(p.program)
	gl.Uniform1i(p.sampler, 0)

	gl.BindVertexArray(p.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	p.window.SwapBuffers()
	glfw.PollEvents()
}

func (p *glPresenter) close() {
	gl.DeleteProgram(p.program)
	gl.DeleteBuffers(1, &p.vbo)
	gl.DeleteVertexArrays(1, &p.vao)
	glfw.Terminate()
}

func runGLPresenter(r *raster.Renderer, cam *orbitCamera, mesh *raster.Mesh, keys *keyReader, frameLimit int) {
	p, err := newGLPresenter(r.Width, r.Height)
	if err != nil {
		fmt.Println("falling back to terminal presenter:", err)
		runTerminalPresenter(r, cam, mesh, keys, frameLimit)
		return
	}
	defer p.close()

	aspect := float64(r.Width) / float64(r.Height)
	frame := 0
	for !p.shouldClose() {
		in := keys.state()
		if in.quit {
			return
		}
		cam.update(in)

		r.Reset()
		r.Clear(raster.ColorBlack, 1)
		r.SetShaders(demoVertexShader, demoFragmentShader)
		r.SetCullMode(raster.CullBack)
		raster.SetUniforms(r, demoUniforms{MVP: cam.viewProj(aspect)})
		r.DrawMesh(mesh)
		r.BinTriangles()
		r.Rasterize()

		p.present(r)
		keys.clear()

		frame++
		if frameLimit > 0 && frame >= frameLimit {
			return
		}
	}
}
