package glbackend

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/hubastard/vista/engine/assets"
	"github.com/hubastard/vista/engine/colors"
	"github.com/hubastard/vista/engine/core"
)

type RendererGL struct {
	program uint32
	vao     uint32
	vbo     uint32
	ebo     uint32

	uModel, uView, uProj, uAspect int32
}

func NewRendererGL(_ core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{}
	if err := r.Init(); err != nil {
		r.Shutdown()
		return nil, err
	}
	return r, nil
}

// Cube vertices: pos (x,y,z), color (r,g,b)
var cubeVerts = buildCube()

var cubeIndices = []uint32{
	0, 1, 2, 1, 2, 3,
	4, 5, 6, 5, 6, 7,
}

func buildCube() []float32 {
	corners := []struct {
		pos mgl32.Vec3
		col colors.Color
	}{
		{mgl32.Vec3{-0.5, 0.5, 0.5}, colors.White},
		{mgl32.Vec3{-0.5, 0.5, -0.5}, colors.White},
		{mgl32.Vec3{-0.5, -0.5, 0.5}, colors.White},
		{mgl32.Vec3{-0.5, -0.5, -0.5}, colors.White},
		{mgl32.Vec3{0.5, 0.5, 0.5}, colors.Red},
		{mgl32.Vec3{0.5, 0.5, -0.5}, colors.Green},
		{mgl32.Vec3{0.5, -0.5, 0.5}, colors.Blue},
		{mgl32.Vec3{0.5, -0.5, -0.5}, colors.Cyan},
	}
	out := make([]float32, 0, len(corners)*6)
	for _, c := range corners {
		rgb := c.col.RGB()
		out = append(out, c.pos[0], c.pos[1], c.pos[2], rgb[0], rgb[1], rgb[2])
	}
	return out
}

func (r *RendererGL) Init() error {
	vs, err := assets.LoadShader(assets.Shaders, "cube.vert")
	if err != nil {
		return err
	}
	fs, err := assets.LoadShader(assets.Shaders, "cube.frag")
	if err != nil {
		return err
	}
	r.program, err = makeProgram(vs, fs)
	if err != nil {
		return err
	}
	r.uModel = uniform(r.program, "model_matrix")
	r.uView = uniform(r.program, "view_matrix")
	r.uProj = uniform(r.program, "projection_matrix")
	r.uAspect = uniform(r.program, "aspect_ratio")

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVerts)*4, gl.Ptr(cubeVerts), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(cubeIndices)*4, gl.Ptr(cubeIndices), gl.STATIC_DRAW)

	// layout(location = 0) in vec3 aPos;
	// layout(location = 1) in vec3 aColor;
	const stride = 6 * 4 // bytes
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))

	// the element buffer binding is part of the VAO state
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.Enable(gl.DEPTH_TEST)
	return nil
}

func (r *RendererGL) Shutdown() {
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(c colors.Color) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawCube draws the demo cube with the camera matrices of the frame.
func (r *RendererGL) DrawCube(model, view, projection mgl32.Mat4, aspect float32) {
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uModel, 1, false, &model[0])
	gl.UniformMatrix4fv(r.uView, 1, false, &view[0])
	gl.UniformMatrix4fv(r.uProj, 1, false, &projection[0])
	gl.Uniform1f(r.uAspect, aspect)

	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, int32(len(cubeIndices)), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func (r *RendererGL) GPUVendor() string   { return gl.GoStr(gl.GetString(gl.VENDOR)) }
func (r *RendererGL) GPURenderer() string { return gl.GoStr(gl.GetString(gl.RENDERER)) }
func (r *RendererGL) GPUVersion() string  { return gl.GoStr(gl.GetString(gl.VERSION)) }

// --- Shader utilities ---

func uniform(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}

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
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
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
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
