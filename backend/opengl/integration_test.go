//go:build glcontext

package opengl

import (
	"errors"
	"image"
	"image/color"
	"os"
	"runtime"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/glutil"
)

var testWindow *Window

func TestMain(m *testing.M) {
	runtime.LockOSThread()
	w, err := NewWindow(WindowConfig{Width: 64, Height: 64, Title: "glutil test", Hidden: true})
	if err != nil {
		// No display: nothing to run against.
		os.Exit(0)
	}
	testWindow = w
	code := m.Run()
	w.Destroy()
	os.Exit(code)
}

const (
	vertexSrc = `#version 410 core
in vec3 position;
uniform mat4 mvp;
void main() { gl_Position = mvp * vec4(position, 1.0); }
`
	fragmentSrc = `#version 410 core
out vec4 color;
uniform vec4 tint;
uniform samplerCube sky;
void main() { color = tint * texture(sky, vec3(1.0, 0.0, 0.0)); }
`
)

type position struct {
	Pos mgl32.Vec3 `glattrib:"position"`
}

func TestInvalidShaderFails(t *testing.T) {
	c := testWindow.Context()
	_, err := c.NewProgram(glutil.ShaderSource{Vertex: "#version 410 core\nvoid main() { nope }", Fragment: fragmentSrc})
	var ce *glutil.CompileError
	if !errors.As(err, &ce) || ce.Stage != "vertex" || ce.Log == "" {
		t.Fatalf("NewProgram() error = %v, want vertex CompileError with a log", err)
	}
}

func TestProgramDrawsWithCubemap(t *testing.T) {
	c := testWindow.Context()

	prog, err := c.NewProgram(glutil.ShaderSource{Vertex: vertexSrc, Fragment: fragmentSrc})
	if err != nil {
		t.Fatalf("NewProgram() error: %v", err)
	}
	defer prog.Release()
	if err := prog.Use(); err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	faces := make([]image.Image, 6)
	for i := range faces {
		img := image.NewRGBA(image.Rect(0, 0, 64, 64))
		for p := 0; p < len(img.Pix); p += 4 {
			img.Pix[p], img.Pix[p+3] = uint8(40*i), 255
		}
		faces[i] = img
	}
	sky, err := c.BuildCubemap(faces)
	if err != nil {
		t.Fatalf("BuildCubemap() error: %v", err)
	}
	defer sky.Release()

	vao, err := c.NewVertexArray()
	if err != nil {
		t.Fatal(err)
	}
	defer vao.Release()
	vbo, err := c.NewBuffer()
	if err != nil {
		t.Fatal(err)
	}
	defer vbo.Release()

	if err := vao.Bind(); err != nil {
		t.Fatal(err)
	}
	if err := vbo.Bind(glutil.ARRAY_BUFFER); err != nil {
		t.Fatal(err)
	}
	tri := []position{{mgl32.Vec3{-1, -1, 0}}, {mgl32.Vec3{1, -1, 0}}, {mgl32.Vec3{0, 1, 0}}}
	if err := glutil.VertexBufferData(c, tri, glutil.ARRAY_BUFFER, glutil.STATIC_DRAW); err != nil {
		t.Fatalf("VertexBufferData() error: %v", err)
	}
	if err := glutil.SetupVertexAttrib[position](prog); err != nil {
		t.Fatalf("SetupVertexAttrib() error: %v", err)
	}

	err = prog.SetUniforms([]glutil.Uniform{
		{Name: "mvp", Value: glutil.Mat4(mgl32.Ident4())},
		{Name: "tint", Value: glutil.Vec4{1, 1, 1, 1}},
		{Name: "sky", Value: sky},
	})
	if err != nil {
		t.Fatalf("SetUniforms() error: %v", err)
	}
	if err := c.DrawArrays(glutil.TRIANGLES, 0, 3); err != nil {
		t.Fatalf("DrawArrays() error: %v", err)
	}
	if err := c.UnbindVertexArray(); err != nil {
		t.Fatal(err)
	}
}
