// Example renders a spinning triangle in front of a procedural cube map
// skybox.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Pass -config with a TOML file (see config.go) to change the window or to
// load the sky cube map from six images instead of the generated gradient.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/glutil"
	"github.com/go-theft-auto/glutil/backend/opengl"
)

//go:generate go run github.com/go-theft-auto/glutil/cmd/glattribgen -type Vertex

// Vertex is a triangle vertex.
type Vertex struct {
	Position mgl32.Vec3 `glattrib:"position"`
	Color    mgl32.Vec3 `glattrib:"color"`
}

// skyVertex is a skybox cube corner. Its layout is derived by reflection.
type skyVertex struct {
	Position [3]float32 `glattrib:"position"`
}

const triangleVertex = `#version 410 core
in vec3 position;
in vec3 color;
out vec3 vColor;
uniform mat4 mvp;
void main() {
    vColor = color;
    gl_Position = mvp * vec4(position, 1.0);
}
`

const triangleFragment = `#version 410 core
in vec3 vColor;
out vec4 fragColor;
uniform float brightness;
void main() {
    fragColor = vec4(vColor * brightness, 1.0);
}
`

const skyVertexSrc = `#version 410 core
in vec3 position;
out vec3 dir;
uniform mat4 viewProj;
void main() {
    dir = position;
    vec4 p = viewProj * vec4(position, 1.0);
    gl_Position = p.xyww;
}
`

const skyFragmentSrc = `#version 410 core
in vec3 dir;
out vec4 fragColor;
uniform samplerCube sky;
void main() {
    fragColor = texture(sky, dir);
}
`

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "TOML scene config")
	verbose := flag.Bool("v", false, "log resource lifetimes")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *verbose || cfg.Debug {
		glutil.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	win, err := opengl.NewWindow(opengl.WindowConfig{
		Width:         cfg.Window.Width,
		Height:        cfg.Window.Height,
		Title:         cfg.Window.Title,
		VSync:         cfg.Window.VSync,
		CloseOnEscape: true,
	})
	if err != nil {
		return err
	}
	defer win.Destroy()

	s, err := newScene(win.Context(), cfg.Sky)
	if err != nil {
		return err
	}
	defer s.release()

	for {
		ok, err := win.Frame()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := s.draw(float32(glfw.GetTime()), win.Aspect()); err != nil {
			return fmt.Errorf("draw: %w", err)
		}
		win.SwapBuffers()
	}
}

type scene struct {
	ctx *glutil.Context

	triangle    *glutil.Program
	triangleVAO *glutil.VertexArray
	triangleVBO *glutil.Buffer

	sky    *glutil.Program
	skyVAO *glutil.VertexArray
	skyVBO *glutil.Buffer
	skyIBO *glutil.Buffer
	skyTex *glutil.Texture
}

func newScene(c *glutil.Context, sky skyConfig) (*scene, error) {
	s := &scene{ctx: c}
	if err := s.init(sky); err != nil {
		s.release()
		return nil, err
	}
	return s, nil
}

func (s *scene) init(sky skyConfig) error {
	c := s.ctx
	var err error

	if s.triangle, err = c.NewProgram(glutil.ShaderSource{Vertex: triangleVertex, Fragment: triangleFragment}); err != nil {
		return err
	}
	if s.sky, err = c.NewProgram(glutil.ShaderSource{Vertex: skyVertexSrc, Fragment: skyFragmentSrc}); err != nil {
		return err
	}

	if len(sky.Faces) > 0 {
		s.skyTex, err = c.LoadCubemap(sky.Faces)
	} else {
		s.skyTex, err = c.BuildCubemap(gradientFaces(sky.Size))
	}
	if err != nil {
		return fmt.Errorf("sky: %w", err)
	}

	tri := []Vertex{
		{Position: mgl32.Vec3{-0.6, -0.5, 0}, Color: mgl32.Vec3{1, 0.2, 0.2}},
		{Position: mgl32.Vec3{0.6, -0.5, 0}, Color: mgl32.Vec3{0.2, 1, 0.2}},
		{Position: mgl32.Vec3{0, 0.6, 0}, Color: mgl32.Vec3{0.2, 0.2, 1}},
	}
	if s.triangleVAO, s.triangleVBO, err = upload(c, s.triangle, tri); err != nil {
		return fmt.Errorf("triangle: %w", err)
	}

	if s.skyVAO, s.skyVBO, err = upload(c, s.sky, cubeCorners()); err != nil {
		return fmt.Errorf("sky: %w", err)
	}
	// The element buffer binding is part of the vertex array state.
	if err := s.skyVAO.Bind(); err != nil {
		return err
	}
	if s.skyIBO, err = c.NewBuffer(); err != nil {
		return err
	}
	if err := s.skyIBO.Bind(glutil.ELEMENT_ARRAY_BUFFER); err != nil {
		return err
	}
	if err := c.BufferData(glutil.ELEMENT_ARRAY_BUFFER, 2*len(cubeIndices), cubeIndices, glutil.STATIC_DRAW); err != nil {
		return err
	}
	if err := c.UnbindVertexArray(); err != nil {
		return err
	}

	if err := c.Enable(glutil.DEPTH_TEST); err != nil {
		return err
	}
	return c.DepthFunc(glutil.LEQUAL)
}

// upload creates a vertex array holding data and points prog's attributes
// at it.
func upload[T any](c *glutil.Context, prog *glutil.Program, data []T) (*glutil.VertexArray, *glutil.Buffer, error) {
	vao, err := c.NewVertexArray()
	if err != nil {
		return nil, nil, err
	}
	vbo, err := c.NewBuffer()
	if err != nil {
		vao.Release()
		return nil, nil, err
	}
	err = func() error {
		if err := vao.Bind(); err != nil {
			return err
		}
		if err := vbo.Bind(glutil.ARRAY_BUFFER); err != nil {
			return err
		}
		if err := glutil.VertexBufferData(c, data, glutil.ARRAY_BUFFER, glutil.STATIC_DRAW); err != nil {
			return err
		}
		if err := glutil.SetupVertexAttrib[T](prog); err != nil {
			return err
		}
		return c.UnbindVertexArray()
	}()
	if err != nil {
		vbo.Release()
		vao.Release()
		return nil, nil, err
	}
	return vao, vbo, nil
}

func (s *scene) draw(t, aspect float32) error {
	c := s.ctx
	if err := c.ClearColor(0, 0, 0, 1); err != nil {
		return err
	}
	if err := c.Clear(glutil.COLOR_BUFFER_BIT | glutil.DEPTH_BUFFER_BIT); err != nil {
		return err
	}

	proj := mgl32.Perspective(mgl32.DegToRad(60), aspect, 0.1, 100)
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 2}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	model := mgl32.HomogRotate3DY(t)

	if err := s.triangle.Use(); err != nil {
		return err
	}
	if err := s.triangle.SetUniforms([]glutil.Uniform{
		{Name: "mvp", Value: glutil.Mat4(proj.Mul4(view).Mul4(model))},
		{Name: "brightness", Value: glutil.Vec1{0.5 + 0.5*mgl32.Clamp(t/2, 0, 1)}},
	}); err != nil {
		return err
	}
	if err := s.triangleVAO.Bind(); err != nil {
		return err
	}
	if err := c.DrawArrays(glutil.TRIANGLES, 0, 3); err != nil {
		return err
	}

	// Drop the translation so the sky stays at infinity.
	skyView := view.Mat3().Mat4()
	if err := s.sky.Use(); err != nil {
		return err
	}
	if err := s.sky.SetUniforms([]glutil.Uniform{
		{Name: "viewProj", Value: glutil.Mat4(proj.Mul4(skyView).Mul4(mgl32.HomogRotate3DY(t * 0.1)))},
		{Name: "sky", Value: s.skyTex},
	}); err != nil {
		return err
	}
	if err := s.skyVAO.Bind(); err != nil {
		return err
	}
	if err := c.DrawElements(glutil.TRIANGLES, int32(len(cubeIndices)), glutil.UNSIGNED_SHORT, 0); err != nil {
		return err
	}
	return c.UnbindVertexArray()
}

func (s *scene) release() {
	if s.triangleVBO != nil {
		s.triangleVBO.Release()
	}
	if s.triangleVAO != nil {
		s.triangleVAO.Release()
	}
	if s.triangle != nil {
		s.triangle.Release()
	}
	if s.skyIBO != nil {
		s.skyIBO.Release()
	}
	if s.skyVBO != nil {
		s.skyVBO.Release()
	}
	if s.skyVAO != nil {
		s.skyVAO.Release()
	}
	if s.skyTex != nil {
		s.skyTex.Release()
	}
	if s.sky != nil {
		s.sky.Release()
	}
}

func cubeCorners() []skyVertex {
	var out []skyVertex
	for i := 0; i < 8; i++ {
		out = append(out, skyVertex{Position: [3]float32{
			float32(i&1)*2 - 1,
			float32(i>>1&1)*2 - 1,
			float32(i>>2&1)*2 - 1,
		}})
	}
	return out
}

// cubeIndices triangulates the cube faces over cubeCorners.
var cubeIndices = []uint16{
	0, 1, 3, 0, 3, 2, // -Z
	4, 6, 7, 4, 7, 5, // +Z
	0, 4, 5, 0, 5, 1, // -Y
	2, 3, 7, 2, 7, 6, // +Y
	0, 2, 6, 0, 6, 4, // -X
	1, 5, 7, 1, 7, 3, // +X
}

// gradientFaces draws six square faces, each a vertical gradient in its own
// hue.
func gradientFaces(size int) []image.Image {
	hues := []color.NRGBA{
		{R: 220, G: 80, B: 80, A: 255},
		{R: 80, G: 220, B: 220, A: 255},
		{R: 120, G: 160, B: 255, A: 255},
		{R: 60, G: 50, B: 40, A: 255},
		{R: 80, G: 220, B: 80, A: 255},
		{R: 220, G: 80, B: 220, A: 255},
	}
	faces := make([]image.Image, len(hues))
	for i, hue := range hues {
		img := image.NewNRGBA(image.Rect(0, 0, size, size))
		for y := 0; y < size; y++ {
			k := float32(size-y) / float32(size)
			c := color.NRGBA{
				R: uint8(float32(hue.R) * k),
				G: uint8(float32(hue.G) * k),
				B: uint8(float32(hue.B) * k),
				A: 255,
			}
			for x := 0; x < size; x++ {
				img.SetNRGBA(x, y, c)
			}
		}
		faces[i] = img
	}
	return faces
}
