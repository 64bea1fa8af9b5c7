package glutil

// Enum is an OpenGL enumeration value.
type Enum uint32

// OpenGL enumerations used by this package. Values match the Khronos registry.
const (
	NO_ERROR                      Enum = 0x0
	INVALID_ENUM                  Enum = 0x0500
	INVALID_VALUE                 Enum = 0x0501
	INVALID_OPERATION             Enum = 0x0502
	STACK_OVERFLOW                Enum = 0x0503
	STACK_UNDERFLOW               Enum = 0x0504
	OUT_OF_MEMORY                 Enum = 0x0505
	INVALID_FRAMEBUFFER_OPERATION Enum = 0x0506

	FALSE Enum = 0
	TRUE  Enum = 1

	// Primitives
	POINTS         Enum = 0x0000
	LINES          Enum = 0x0001
	LINE_LOOP      Enum = 0x0002
	LINE_STRIP     Enum = 0x0003
	TRIANGLES      Enum = 0x0004
	TRIANGLE_STRIP Enum = 0x0005
	TRIANGLE_FAN   Enum = 0x0006

	// Data types
	BYTE           Enum = 0x1400
	UNSIGNED_BYTE  Enum = 0x1401
	SHORT          Enum = 0x1402
	UNSIGNED_SHORT Enum = 0x1403
	INT            Enum = 0x1404
	UNSIGNED_INT   Enum = 0x1405
	FLOAT          Enum = 0x1406
	DOUBLE         Enum = 0x140A

	// Buffers
	ARRAY_BUFFER         Enum = 0x8892
	ELEMENT_ARRAY_BUFFER Enum = 0x8893
	STREAM_DRAW          Enum = 0x88E0
	STATIC_DRAW          Enum = 0x88E4
	DYNAMIC_DRAW         Enum = 0x88E8

	// Shaders
	FRAGMENT_SHADER Enum = 0x8B30
	VERTEX_SHADER   Enum = 0x8B31
	COMPILE_STATUS  Enum = 0x8B81
	LINK_STATUS     Enum = 0x8B82
	INFO_LOG_LENGTH Enum = 0x8B84

	// Textures
	TEXTURE_2D                  Enum = 0x0DE1
	TEXTURE_CUBE_MAP            Enum = 0x8513
	TEXTURE_CUBE_MAP_POSITIVE_X Enum = 0x8515
	TEXTURE_CUBE_MAP_NEGATIVE_X Enum = 0x8516
	TEXTURE_CUBE_MAP_POSITIVE_Y Enum = 0x8517
	TEXTURE_CUBE_MAP_NEGATIVE_Y Enum = 0x8518
	TEXTURE_CUBE_MAP_POSITIVE_Z Enum = 0x8519
	TEXTURE_CUBE_MAP_NEGATIVE_Z Enum = 0x851A
	TEXTURE0                    Enum = 0x84C0
	TEXTURE_MAG_FILTER          Enum = 0x2800
	TEXTURE_MIN_FILTER          Enum = 0x2801
	TEXTURE_WRAP_S              Enum = 0x2802
	TEXTURE_WRAP_T              Enum = 0x2803
	TEXTURE_WRAP_R              Enum = 0x8072
	NEAREST                     Enum = 0x2600
	LINEAR                      Enum = 0x2601
	NEAREST_MIPMAP_NEAREST      Enum = 0x2700
	LINEAR_MIPMAP_NEAREST       Enum = 0x2701
	NEAREST_MIPMAP_LINEAR       Enum = 0x2702
	LINEAR_MIPMAP_LINEAR        Enum = 0x2703
	REPEAT                      Enum = 0x2901
	CLAMP_TO_EDGE               Enum = 0x812F
	MIRRORED_REPEAT             Enum = 0x8370

	// Pixel formats
	RED   Enum = 0x1903
	RGB   Enum = 0x1907
	RGBA  Enum = 0x1908
	RGBA8 Enum = 0x8058

	// Capabilities
	CULL_FACE    Enum = 0x0B44
	DEPTH_TEST   Enum = 0x0B71
	BLEND        Enum = 0x0BE2
	SCISSOR_TEST Enum = 0x0C11

	// Blend factors
	ZERO                Enum = 0x0
	ONE                 Enum = 0x1
	SRC_ALPHA           Enum = 0x0302
	ONE_MINUS_SRC_ALPHA Enum = 0x0303

	// Depth functions
	NEVER    Enum = 0x0200
	LESS     Enum = 0x0201
	EQUAL    Enum = 0x0202
	LEQUAL   Enum = 0x0203
	GREATER  Enum = 0x0204
	NOTEQUAL Enum = 0x0205
	GEQUAL   Enum = 0x0206
	ALWAYS   Enum = 0x0207

	// Clear mask bits
	DEPTH_BUFFER_BIT   Enum = 0x00000100
	STENCIL_BUFFER_BIT Enum = 0x00000400
	COLOR_BUFFER_BIT   Enum = 0x00004000
)

// Driver is the raw OpenGL function table wrapped by this package.
//
// Implementations forward each call to the graphics driver and never check
// the error flag themselves; the wrappers call GetError after every call.
// The driver's binding state is global to the thread owning the GL context,
// so a Driver must only be used from that thread.
type Driver interface {
	GetError() Enum

	GenBuffer() uint32
	DeleteBuffer(id uint32)
	BindBuffer(target Enum, id uint32)
	// BufferData uploads size bytes starting at data, which is a pointer or
	// a slice (nil allocates uninitialised storage).
	BufferData(target Enum, size int, data any, usage Enum)

	GenVertexArray() uint32
	DeleteVertexArray(id uint32)
	BindVertexArray(id uint32)
	VertexAttribPointer(index uint32, size int32, xtype Enum, normalized bool, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)

	GenTexture() uint32
	DeleteTexture(id uint32)
	BindTexture(target Enum, id uint32)
	ActiveTexture(unit Enum)
	TexImage2D(target Enum, level, internalFormat, width, height, border int32, format, xtype Enum, pixels any)
	TexParameteri(target, pname Enum, param int32)
	GenerateMipmap(target Enum)

	CreateShader(stage Enum) uint32
	DeleteShader(id uint32)
	ShaderSource(id uint32, src string)
	CompileShader(id uint32)
	GetShaderi(id uint32, pname Enum) int32
	GetShaderInfoLog(id uint32) string

	CreateProgram() uint32
	DeleteProgram(id uint32)
	AttachShader(program, shader uint32)
	LinkProgram(id uint32)
	GetProgrami(id uint32, pname Enum) int32
	GetProgramInfoLog(id uint32) string
	UseProgram(id uint32)
	GetUniformLocation(program uint32, name string) int32
	GetAttribLocation(program uint32, name string) int32

	Uniform1i(location, v int32)
	Uniform1fv(location, count int32, v []float32)
	Uniform2fv(location, count int32, v []float32)
	Uniform3fv(location, count int32, v []float32)
	Uniform4fv(location, count int32, v []float32)
	UniformMatrix2fv(location, count int32, transpose bool, v []float32)
	UniformMatrix3fv(location, count int32, transpose bool, v []float32)
	UniformMatrix4fv(location, count int32, transpose bool, v []float32)

	Enable(capability Enum)
	Disable(capability Enum)
	BlendFunc(sfactor, dfactor Enum)
	DepthFunc(fn Enum)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	Viewport(x, y, width, height int32)
	DrawArrays(mode Enum, first, count int32)
	DrawElements(mode Enum, count int32, xtype Enum, offset uintptr)
}
