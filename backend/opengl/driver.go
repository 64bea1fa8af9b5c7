// Package opengl provides the OpenGL 4.1 core driver for glutil and a GLFW
// helper that creates a window with a matching context.
package opengl

import (
	"reflect"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/glutil"
)

// Driver forwards glutil calls to go-gl. gl.Init must have been called on
// the thread that owns the current context.
type Driver struct{}

var _ glutil.Driver = Driver{}

// NewDriver returns the go-gl driver.
func NewDriver() Driver {
	return Driver{}
}

// ptr converts a pointer or slice to the address go-gl expects. Nil and
// empty slices map to a nil pointer.
func ptr(data any) unsafe.Pointer {
	if data == nil {
		return nil
	}
	if v := reflect.ValueOf(data); v.Kind() == reflect.Slice && v.Len() == 0 {
		return nil
	}
	return gl.Ptr(data)
}

func floatPtr(v []float32) *float32 {
	if len(v) == 0 {
		return nil
	}
	return &v[0]
}

func (Driver) GetError() glutil.Enum { return glutil.Enum(gl.GetError()) }

func (Driver) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (Driver) DeleteBuffer(id uint32)                   { gl.DeleteBuffers(1, &id) }
func (Driver) BindBuffer(target glutil.Enum, id uint32) { gl.BindBuffer(uint32(target), id) }

func (Driver) BufferData(target glutil.Enum, size int, data any, usage glutil.Enum) {
	gl.BufferData(uint32(target), size, ptr(data), uint32(usage))
}

func (Driver) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (Driver) DeleteVertexArray(id uint32) { gl.DeleteVertexArrays(1, &id) }
func (Driver) BindVertexArray(id uint32)   { gl.BindVertexArray(id) }

func (Driver) VertexAttribPointer(index uint32, size int32, xtype glutil.Enum, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, uint32(xtype), normalized, stride, offset)
}

func (Driver) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (Driver) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (Driver) DeleteTexture(id uint32)                   { gl.DeleteTextures(1, &id) }
func (Driver) BindTexture(target glutil.Enum, id uint32) { gl.BindTexture(uint32(target), id) }
func (Driver) ActiveTexture(unit glutil.Enum)            { gl.ActiveTexture(uint32(unit)) }

func (Driver) TexImage2D(target glutil.Enum, level, internalFormat, width, height, border int32, format, xtype glutil.Enum, pixels any) {
	gl.TexImage2D(uint32(target), level, internalFormat, width, height, border, uint32(format), uint32(xtype), ptr(pixels))
}

func (Driver) TexParameteri(target, pname glutil.Enum, param int32) {
	gl.TexParameteri(uint32(target), uint32(pname), param)
}

func (Driver) GenerateMipmap(target glutil.Enum) { gl.GenerateMipmap(uint32(target)) }

func (Driver) CreateShader(stage glutil.Enum) uint32 { return gl.CreateShader(uint32(stage)) }
func (Driver) DeleteShader(id uint32)                { gl.DeleteShader(id) }

func (Driver) ShaderSource(id uint32, src string) {
	csource, free := gl.Strs(src + "\x00")
	gl.ShaderSource(id, 1, csource, nil)
	free()
}

func (Driver) CompileShader(id uint32) { gl.CompileShader(id) }

func (Driver) GetShaderi(id uint32, pname glutil.Enum) int32 {
	var v int32
	gl.GetShaderiv(id, uint32(pname), &v)
	return v
}

func (d Driver) GetShaderInfoLog(id uint32) string {
	n := d.GetShaderi(id, glutil.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	log := make([]byte, n+1)
	gl.GetShaderInfoLog(id, n, nil, &log[0])
	return string(log)
}

func (Driver) CreateProgram() uint32        { return gl.CreateProgram() }
func (Driver) DeleteProgram(id uint32)      { gl.DeleteProgram(id) }
func (Driver) AttachShader(prog, sh uint32) { gl.AttachShader(prog, sh) }
func (Driver) LinkProgram(id uint32)        { gl.LinkProgram(id) }

func (Driver) GetProgrami(id uint32, pname glutil.Enum) int32 {
	var v int32
	gl.GetProgramiv(id, uint32(pname), &v)
	return v
}

func (d Driver) GetProgramInfoLog(id uint32) string {
	n := d.GetProgrami(id, glutil.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	log := make([]byte, n+1)
	gl.GetProgramInfoLog(id, n, nil, &log[0])
	return string(log)
}

func (Driver) UseProgram(id uint32) { gl.UseProgram(id) }

func (Driver) GetUniformLocation(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}

func (Driver) GetAttribLocation(prog uint32, name string) int32 {
	return gl.GetAttribLocation(prog, gl.Str(name+"\x00"))
}

func (Driver) Uniform1i(loc, v int32) { gl.Uniform1i(loc, v) }

func (Driver) Uniform1fv(loc, count int32, v []float32) { gl.Uniform1fv(loc, count, floatPtr(v)) }
func (Driver) Uniform2fv(loc, count int32, v []float32) { gl.Uniform2fv(loc, count, floatPtr(v)) }
func (Driver) Uniform3fv(loc, count int32, v []float32) { gl.Uniform3fv(loc, count, floatPtr(v)) }
func (Driver) Uniform4fv(loc, count int32, v []float32) { gl.Uniform4fv(loc, count, floatPtr(v)) }

func (Driver) UniformMatrix2fv(loc, count int32, transpose bool, v []float32) {
	gl.UniformMatrix2fv(loc, count, transpose, floatPtr(v))
}

func (Driver) UniformMatrix3fv(loc, count int32, transpose bool, v []float32) {
	gl.UniformMatrix3fv(loc, count, transpose, floatPtr(v))
}

func (Driver) UniformMatrix4fv(loc, count int32, transpose bool, v []float32) {
	gl.UniformMatrix4fv(loc, count, transpose, floatPtr(v))
}

func (Driver) Enable(capability glutil.Enum)  { gl.Enable(uint32(capability)) }
func (Driver) Disable(capability glutil.Enum) { gl.Disable(uint32(capability)) }

func (Driver) BlendFunc(sfactor, dfactor glutil.Enum) { gl.BlendFunc(uint32(sfactor), uint32(dfactor)) }
func (Driver) DepthFunc(fn glutil.Enum)               { gl.DepthFunc(uint32(fn)) }

func (Driver) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }
func (Driver) Clear(mask glutil.Enum)        { gl.Clear(uint32(mask)) }

func (Driver) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (Driver) DrawArrays(mode glutil.Enum, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}

func (Driver) DrawElements(mode glutil.Enum, count int32, xtype glutil.Enum, offset uintptr) {
	gl.DrawElementsWithOffset(uint32(mode), count, uint32(xtype), offset)
}
