/*
Package glutil wraps OpenGL objects in reference-counted handles and checks
the driver error flag after every call it makes.

# Overview

A Context binds everything to one Driver, the raw OpenGL function table.
The go-gl backend lives in backend/opengl; tests use an in-memory fake.

Buffers, vertex arrays, textures and programs are handles. Clone returns a
new reference to the same driver object; Release drops one reference and the
object is deleted when the last reference goes. Releasing a reference twice
does nothing. A driver error during deletion cannot be returned, so it is
logged and passed to the WithReleaseFailure hook, which panics by default.

There are no finalizers: GL calls are only valid on the thread that owns the
context, and finalizers run elsewhere.

# Quick Start

	runtime.LockOSThread()
	win, _ := opengl.NewWindow(opengl.WindowConfig{Width: 800, Height: 600})
	defer win.Destroy()
	c := win.Context()

	prog, err := c.NewProgram(glutil.ShaderSource{Vertex: vs, Fragment: fs})
	if err != nil {
	    var ce *glutil.CompileError
	    if errors.As(err, &ce) {
	        log.Fatalf("%s stage: %s", ce.Stage, ce.Log)
	    }
	    log.Fatal(err)
	}
	defer prog.Release()

	vao, _ := c.NewVertexArray()
	vbo, _ := c.NewBuffer()
	vao.Bind()
	vbo.Bind(glutil.ARRAY_BUFFER)
	glutil.VertexBufferData(c, vertices, glutil.ARRAY_BUFFER, glutil.STATIC_DRAW)
	glutil.SetupVertexAttrib[Vertex](prog)

	prog.Use()
	prog.SetUniforms([]glutil.Uniform{
	    {Name: "mvp", Value: glutil.Mat4(mvp)},
	    {Name: "sky", Value: skyTexture},
	})
	c.DrawArrays(glutil.TRIANGLES, 0, int32(len(vertices)))

# Vertex Layouts

LayoutOf derives the attribute layout of a vertex struct from its field
types: float32 and [1]float32 through [4]float32, including named types such
as mgl32.Vec3. Other field types can be declared with RegisterAttribType.
Field tags rename (`glattrib:"uv"`) or skip (`glattrib:"-"`) fields, and
blank fields are treated as padding.

The glattribgen command writes a VertexLayout method for a struct, which
LayoutOf prefers over reflection:

	//go:generate go run github.com/go-theft-auto/glutil/cmd/glattribgen -type Vertex

# Uniforms

Uniform values are Vec1 through Vec4, Mat2 through Mat4 (convertible from
the mgl32 types of the same shape) and *Texture. Texture bindings take
consecutive texture units starting at 0 in the order they are listed.

# Errors

Driver error codes are returned as Error and match the sentinels
ErrInvalidEnum, ErrInvalidValue, ErrInvalidOperation and the rest with
errors.Is. Shader compile and link failures return *CompileError and
*LinkError carrying the driver's info log.
*/
package glutil
