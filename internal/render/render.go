// Package render draws view cube geometry with OpenGL.
package render

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/viewcube/internal/logger"
	"github.com/Faultbox/viewcube/pkg/math"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Color is an RGBA color with components in [0, 1].
type Color [4]float32

// Part colors roughly matching the usual CAD view cube look.
var (
	ColorSide      = Color{0.78, 0.78, 0.78, 1}
	ColorEdge      = Color{0.56, 0.56, 0.56, 1}
	ColorCorner    = Color{0.56, 0.56, 0.56, 1}
	ColorHighlight = Color{0.0, 0.6, 1.0, 1}
	ColorAxisX     = Color{0.8, 0.2, 0.2, 1}
	ColorAxisY     = Color{0.2, 0.7, 0.2, 1}
	ColorAxisZ     = Color{0.25, 0.35, 0.8, 1}
	ColorMarker    = Color{0.85, 0.85, 0.85, 1}
)

// Renderer owns the GL state for drawing widget meshes: one flat-shaded
// program plus the uploaded mesh buffers.
type Renderer struct {
	width  int
	height int

	program    uint32
	uniformMVP int32
	uniformCol int32
	uniformSun int32
}

// New initializes OpenGL and compiles the widget shader.
// Must be called after the GL context is current.
func New(width, height int) (*Renderer, error) {
	r := &Renderer{width: width, height: height}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)

	program, err := buildProgram()
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.program = program
	r.uniformMVP = gl.GetUniformLocation(program, gl.Str("uMVP\x00"))
	r.uniformCol = gl.GetUniformLocation(program, gl.Str("uColor\x00"))
	r.uniformSun = gl.GetUniformLocation(program, gl.Str("uLightDir\x00"))

	return r, nil
}

// Close releases the shader program.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize updates the viewport.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program)
}

// SetLight sets the directional light for the frame.
func (r *Renderer) SetLight(dir math.Vec3) {
	d := dir.Normalize()
	gl.Uniform3f(r.uniformSun, d.X, d.Y, d.Z)
}

// Draw renders one uploaded mesh with the given transform and color.
func (r *Renderer) Draw(mesh *GPUMesh, mvp math.Mat4, color Color) {
	gl.UniformMatrix4fv(r.uniformMVP, 1, false, mvp.Ptr())
	gl.Uniform4f(r.uniformCol, color[0], color[1], color[2], color[3])
	gl.BindVertexArray(mesh.vao)
	gl.DrawElements(gl.TRIANGLES, mesh.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func buildProgram() (uint32, error) {
	vertexShaderSource := `
		#version 410 core

		layout (location = 0) in vec3 aPos;
		layout (location = 1) in vec3 aNormal;

		uniform mat4 uMVP;

		out vec3 vNormal;

		void main() {
			gl_Position = uMVP * vec4(aPos, 1.0);
			vNormal = aNormal;
		}
	` + "\x00"

	fragmentShaderSource := `
		#version 410 core

		in vec3 vNormal;

		uniform vec4 uColor;
		uniform vec3 uLightDir;

		out vec4 FragColor;

		void main() {
			float diffuse = max(dot(normalize(vNormal), -uLightDir), 0.0);
			float shade = 0.55 + 0.45 * diffuse;
			FragColor = vec4(uColor.rgb * shade, uColor.a);
		}
	` + "\x00"

	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
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
		return 0, fmt.Errorf("link failed: %s", log)
	}

	logger.Debug("shader program created", zap.Uint32("program", program))
	return program, nil
}

// compileShader compiles a shader from source.
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
		return 0, fmt.Errorf("compile failed: %s", log)
	}

	return shader, nil
}
