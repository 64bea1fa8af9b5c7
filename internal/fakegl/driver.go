// Package fakegl provides an in-memory glutil.Driver that records calls.
//
// It models just enough driver behaviour for tests: object names are
// allocated and tracked per kind, binding a name that was never generated or
// was deleted raises INVALID_OPERATION, shaders fail to compile when their
// source lacks "void main" or contains "#error", and the first error raised
// sticks until GetError reads it.
package fakegl

import (
	"fmt"
	"strings"

	"github.com/go-theft-auto/glutil"
)

// Call is one recorded driver call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

// TexImage records a TexImage2D call.
type TexImage struct {
	Target        glutil.Enum
	Texture       uint32
	Level         int32
	Width, Height int32
	Format, Type  glutil.Enum
	Pixels        any
}

// AttribPointer records a VertexAttribPointer call.
type AttribPointer struct {
	Index      uint32
	Size       int32
	Type       glutil.Enum
	Normalized bool
	Stride     int32
	Offset     uintptr
}

// UniformCall records an upload to a uniform location.
type UniformCall struct {
	Func     string
	Location int32
	Ints     []int32
	Floats   []float32
}

type shader struct {
	stage    glutil.Enum
	src      string
	compiled bool
	log      string
}

type program struct {
	shaders []uint32
	linked  bool
	log     string
}

// Driver is a fake glutil.Driver. The zero value is not usable; call New.
type Driver struct {
	// Attribs maps attribute names to locations for every linked program.
	Attribs map[string]int32
	// Uniforms maps uniform names to locations for every linked program.
	Uniforms map[string]int32
	// LinkError, when set, makes every LinkProgram fail with this log.
	LinkError string

	Calls    []Call
	Images   []TexImage
	Pointers []AttribPointer
	Enabled  map[uint32]bool
	Uploads  []UniformCall
	Params   map[uint32]map[glutil.Enum]int32
	Deleted  map[string][]uint32

	ActiveUnit       glutil.Enum
	BoundBuffers     map[glutil.Enum]uint32
	BoundTextures    map[glutil.Enum]map[glutil.Enum]uint32 // unit -> target -> name
	BoundVertexArray uint32
	CurrentProgram   uint32

	next     uint32
	live     map[string]map[uint32]bool
	shaders  map[uint32]*shader
	programs map[uint32]*program
	err      glutil.Enum
	fails    map[string][]glutil.Enum
}

var _ glutil.Driver = (*Driver)(nil)

// New returns an empty fake driver with no active attributes or uniforms.
func New() *Driver {
	return &Driver{
		Attribs:       make(map[string]int32),
		Uniforms:      make(map[string]int32),
		Enabled:       make(map[uint32]bool),
		Params:        make(map[uint32]map[glutil.Enum]int32),
		Deleted:       make(map[string][]uint32),
		ActiveUnit:    glutil.TEXTURE0,
		BoundBuffers:  make(map[glutil.Enum]uint32),
		BoundTextures: make(map[glutil.Enum]map[glutil.Enum]uint32),
		live: map[string]map[uint32]bool{
			"buffer":       {},
			"vertex array": {},
			"texture":      {},
			"shader":       {},
			"program":      {},
		},
		shaders:  make(map[uint32]*shader),
		programs: make(map[uint32]*program),
		fails:    make(map[string][]glutil.Enum),
	}
}

// FailOn makes the next call named name raise code. Repeated calls queue
// further failures for later calls of the same name.
func (d *Driver) FailOn(name string, code glutil.Enum) {
	d.fails[name] = append(d.fails[name], code)
}

// Live reports whether name of the given kind ("buffer", "vertex array",
// "texture", "shader", "program") exists.
func (d *Driver) Live(kind string, name uint32) bool {
	return d.live[kind][name]
}

// Count returns how many times the named call was made.
func (d *Driver) Count(name string) int {
	n := 0
	for _, c := range d.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// CallsNamed returns the recorded calls with the given name.
func (d *Driver) CallsNamed(name string) []Call {
	var out []Call
	for _, c := range d.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Source returns the source attached to a shader, for inspection.
func (d *Driver) Source(id uint32) string {
	if s, ok := d.shaders[id]; ok {
		return s.src
	}
	return ""
}

func (d *Driver) record(name string, args ...any) {
	d.Calls = append(d.Calls, Call{Name: name, Args: args})
	if q := d.fails[name]; len(q) > 0 {
		d.raise(q[0])
		d.fails[name] = q[1:]
	}
}

func (d *Driver) raise(code glutil.Enum) {
	if d.err == glutil.NO_ERROR {
		d.err = code
	}
}

func (d *Driver) gen(kind string) uint32 {
	d.next++
	d.live[kind][d.next] = true
	return d.next
}

func (d *Driver) del(kind string, id uint32) {
	d.Deleted[kind] = append(d.Deleted[kind], id)
	if id == 0 {
		return
	}
	delete(d.live[kind], id)
}

// bindable checks a name for a Bind* call. Zero always binds.
func (d *Driver) bindable(kind string, id uint32) bool {
	if id != 0 && !d.live[kind][id] {
		d.raise(glutil.INVALID_OPERATION)
		return false
	}
	return true
}

func (d *Driver) GetError() glutil.Enum {
	err := d.err
	d.err = glutil.NO_ERROR
	return err
}

func (d *Driver) GenBuffer() uint32 {
	id := d.gen("buffer")
	d.record("GenBuffer", id)
	return id
}

func (d *Driver) DeleteBuffer(id uint32) {
	d.record("DeleteBuffer", id)
	d.del("buffer", id)
}

func (d *Driver) BindBuffer(target glutil.Enum, id uint32) {
	d.record("BindBuffer", target, id)
	if d.bindable("buffer", id) {
		d.BoundBuffers[target] = id
	}
}

func (d *Driver) BufferData(target glutil.Enum, size int, data any, usage glutil.Enum) {
	d.record("BufferData", target, size, data, usage)
	if d.BoundBuffers[target] == 0 {
		d.raise(glutil.INVALID_OPERATION)
	}
}

func (d *Driver) GenVertexArray() uint32 {
	id := d.gen("vertex array")
	d.record("GenVertexArray", id)
	return id
}

func (d *Driver) DeleteVertexArray(id uint32) {
	d.record("DeleteVertexArray", id)
	d.del("vertex array", id)
}

func (d *Driver) BindVertexArray(id uint32) {
	d.record("BindVertexArray", id)
	if d.bindable("vertex array", id) {
		d.BoundVertexArray = id
	}
}

func (d *Driver) VertexAttribPointer(index uint32, size int32, xtype glutil.Enum, normalized bool, stride int32, offset uintptr) {
	d.record("VertexAttribPointer", index, size, xtype, normalized, stride, offset)
	d.Pointers = append(d.Pointers, AttribPointer{
		Index:      index,
		Size:       size,
		Type:       xtype,
		Normalized: normalized,
		Stride:     stride,
		Offset:     offset,
	})
}

func (d *Driver) EnableVertexAttribArray(index uint32) {
	d.record("EnableVertexAttribArray", index)
	d.Enabled[index] = true
}

func (d *Driver) GenTexture() uint32 {
	id := d.gen("texture")
	d.record("GenTexture", id)
	return id
}

func (d *Driver) DeleteTexture(id uint32) {
	d.record("DeleteTexture", id)
	d.del("texture", id)
}

func (d *Driver) BindTexture(target glutil.Enum, id uint32) {
	d.record("BindTexture", target, id)
	if !d.bindable("texture", id) {
		return
	}
	unit := d.BoundTextures[d.ActiveUnit]
	if unit == nil {
		unit = make(map[glutil.Enum]uint32)
		d.BoundTextures[d.ActiveUnit] = unit
	}
	unit[target] = id
}

// Bound returns the texture bound to target on the active unit.
func (d *Driver) Bound(target glutil.Enum) uint32 {
	return d.BoundTextures[d.ActiveUnit][target]
}

func (d *Driver) ActiveTexture(unit glutil.Enum) {
	d.record("ActiveTexture", unit)
	if unit < glutil.TEXTURE0 || unit >= glutil.TEXTURE0+32 {
		d.raise(glutil.INVALID_ENUM)
		return
	}
	d.ActiveUnit = unit
}

// bindingTarget maps a TexImage2D target to the target the texture is bound
// on, or 0 for invalid targets.
func bindingTarget(target glutil.Enum) glutil.Enum {
	switch {
	case target == glutil.TEXTURE_2D:
		return glutil.TEXTURE_2D
	case target >= glutil.TEXTURE_CUBE_MAP_POSITIVE_X && target <= glutil.TEXTURE_CUBE_MAP_NEGATIVE_Z:
		return glutil.TEXTURE_CUBE_MAP
	}
	return 0
}

func (d *Driver) TexImage2D(target glutil.Enum, level, internalFormat, width, height, border int32, format, xtype glutil.Enum, pixels any) {
	d.record("TexImage2D", target, level, internalFormat, width, height, border, format, xtype)
	bt := bindingTarget(target)
	if bt == 0 {
		d.raise(glutil.INVALID_ENUM)
		return
	}
	tex := d.Bound(bt)
	if tex == 0 {
		d.raise(glutil.INVALID_OPERATION)
		return
	}
	d.Images = append(d.Images, TexImage{
		Target:  target,
		Texture: tex,
		Level:   level,
		Width:   width,
		Height:  height,
		Format:  format,
		Type:    xtype,
		Pixels:  pixels,
	})
}

func (d *Driver) TexParameteri(target, pname glutil.Enum, param int32) {
	d.record("TexParameteri", target, pname, param)
	tex := d.Bound(target)
	if tex == 0 {
		d.raise(glutil.INVALID_OPERATION)
		return
	}
	if d.Params[tex] == nil {
		d.Params[tex] = make(map[glutil.Enum]int32)
	}
	d.Params[tex][pname] = param
}

func (d *Driver) GenerateMipmap(target glutil.Enum) {
	d.record("GenerateMipmap", target)
	if d.Bound(target) == 0 {
		d.raise(glutil.INVALID_OPERATION)
	}
}

func (d *Driver) CreateShader(stage glutil.Enum) uint32 {
	if stage != glutil.VERTEX_SHADER && stage != glutil.FRAGMENT_SHADER {
		d.record("CreateShader", stage, uint32(0))
		d.raise(glutil.INVALID_ENUM)
		return 0
	}
	id := d.gen("shader")
	d.record("CreateShader", stage, id)
	d.shaders[id] = &shader{stage: stage}
	return id
}

func (d *Driver) DeleteShader(id uint32) {
	d.record("DeleteShader", id)
	d.del("shader", id)
}

func (d *Driver) ShaderSource(id uint32, src string) {
	d.record("ShaderSource", id)
	s, ok := d.shaders[id]
	if !ok {
		d.raise(glutil.INVALID_VALUE)
		return
	}
	s.src = src
}

func (d *Driver) CompileShader(id uint32) {
	d.record("CompileShader", id)
	s, ok := d.shaders[id]
	if !ok {
		d.raise(glutil.INVALID_VALUE)
		return
	}
	switch {
	case strings.Contains(s.src, "#error"):
		s.compiled, s.log = false, "0:1(1): error: #error directive\n\x00"
	case !strings.Contains(s.src, "void main"):
		s.compiled, s.log = false, "0:1(1): error: syntax error, unexpected end of file\n\x00"
	default:
		s.compiled, s.log = true, ""
	}
}

func (d *Driver) GetShaderi(id uint32, pname glutil.Enum) int32 {
	d.record("GetShaderi", id, pname)
	s, ok := d.shaders[id]
	if !ok {
		d.raise(glutil.INVALID_VALUE)
		return 0
	}
	switch pname {
	case glutil.COMPILE_STATUS:
		if s.compiled {
			return 1
		}
		return 0
	case glutil.INFO_LOG_LENGTH:
		return int32(len(s.log))
	}
	d.raise(glutil.INVALID_ENUM)
	return 0
}

func (d *Driver) GetShaderInfoLog(id uint32) string {
	d.record("GetShaderInfoLog", id)
	if s, ok := d.shaders[id]; ok {
		return s.log
	}
	d.raise(glutil.INVALID_VALUE)
	return ""
}

func (d *Driver) CreateProgram() uint32 {
	id := d.gen("program")
	d.record("CreateProgram", id)
	d.programs[id] = &program{}
	return id
}

func (d *Driver) DeleteProgram(id uint32) {
	d.record("DeleteProgram", id)
	d.del("program", id)
}

func (d *Driver) AttachShader(prog, sh uint32) {
	d.record("AttachShader", prog, sh)
	p, ok := d.programs[prog]
	if !ok || !d.live["shader"][sh] {
		d.raise(glutil.INVALID_VALUE)
		return
	}
	p.shaders = append(p.shaders, sh)
}

func (d *Driver) LinkProgram(id uint32) {
	d.record("LinkProgram", id)
	p, ok := d.programs[id]
	if !ok {
		d.raise(glutil.INVALID_VALUE)
		return
	}
	if d.LinkError != "" {
		p.linked, p.log = false, d.LinkError
		return
	}
	stages := make(map[glutil.Enum]bool)
	for _, sh := range p.shaders {
		s := d.shaders[sh]
		if !s.compiled {
			p.linked, p.log = false, "error: linking with uncompiled shader"
			return
		}
		stages[s.stage] = true
	}
	if !stages[glutil.VERTEX_SHADER] || !stages[glutil.FRAGMENT_SHADER] {
		p.linked, p.log = false, "error: missing shader stage"
		return
	}
	p.linked, p.log = true, ""
}

func (d *Driver) GetProgrami(id uint32, pname glutil.Enum) int32 {
	d.record("GetProgrami", id, pname)
	p, ok := d.programs[id]
	if !ok {
		d.raise(glutil.INVALID_VALUE)
		return 0
	}
	switch pname {
	case glutil.LINK_STATUS:
		if p.linked {
			return 1
		}
		return 0
	case glutil.INFO_LOG_LENGTH:
		return int32(len(p.log))
	}
	d.raise(glutil.INVALID_ENUM)
	return 0
}

func (d *Driver) GetProgramInfoLog(id uint32) string {
	d.record("GetProgramInfoLog", id)
	if p, ok := d.programs[id]; ok {
		return p.log
	}
	d.raise(glutil.INVALID_VALUE)
	return ""
}

// linked raises the errors the driver reports for queries on a program that
// does not exist or failed to link.
func (d *Driver) linked(id uint32) bool {
	p, ok := d.programs[id]
	if !ok || !d.live["program"][id] {
		d.raise(glutil.INVALID_VALUE)
		return false
	}
	if !p.linked {
		d.raise(glutil.INVALID_OPERATION)
		return false
	}
	return true
}

func (d *Driver) UseProgram(id uint32) {
	d.record("UseProgram", id)
	if id != 0 && !d.linked(id) {
		return
	}
	d.CurrentProgram = id
}

func (d *Driver) GetUniformLocation(prog uint32, name string) int32 {
	d.record("GetUniformLocation", prog, name)
	if !d.linked(prog) {
		return -1
	}
	if loc, ok := d.Uniforms[name]; ok {
		return loc
	}
	return -1
}

func (d *Driver) GetAttribLocation(prog uint32, name string) int32 {
	d.record("GetAttribLocation", prog, name)
	if !d.linked(prog) {
		return -1
	}
	if loc, ok := d.Attribs[name]; ok {
		return loc
	}
	return -1
}

func (d *Driver) uniform(fn string, loc int32, ints []int32, floats []float32) {
	d.record(fn, loc)
	if d.CurrentProgram == 0 {
		d.raise(glutil.INVALID_OPERATION)
		return
	}
	d.Uploads = append(d.Uploads, UniformCall{
		Func:     fn,
		Location: loc,
		Ints:     ints,
		Floats:   append([]float32(nil), floats...),
	})
}

func (d *Driver) Uniform1i(loc, v int32) { d.uniform("Uniform1i", loc, []int32{v}, nil) }

func (d *Driver) Uniform1fv(loc, count int32, v []float32) { d.uniform("Uniform1fv", loc, nil, v) }
func (d *Driver) Uniform2fv(loc, count int32, v []float32) { d.uniform("Uniform2fv", loc, nil, v) }
func (d *Driver) Uniform3fv(loc, count int32, v []float32) { d.uniform("Uniform3fv", loc, nil, v) }
func (d *Driver) Uniform4fv(loc, count int32, v []float32) { d.uniform("Uniform4fv", loc, nil, v) }

func (d *Driver) UniformMatrix2fv(loc, count int32, transpose bool, v []float32) {
	d.uniform("UniformMatrix2fv", loc, nil, v)
}

func (d *Driver) UniformMatrix3fv(loc, count int32, transpose bool, v []float32) {
	d.uniform("UniformMatrix3fv", loc, nil, v)
}

func (d *Driver) UniformMatrix4fv(loc, count int32, transpose bool, v []float32) {
	d.uniform("UniformMatrix4fv", loc, nil, v)
}

func (d *Driver) Enable(capability glutil.Enum)  { d.record("Enable", capability) }
func (d *Driver) Disable(capability glutil.Enum) { d.record("Disable", capability) }

func (d *Driver) BlendFunc(sfactor, dfactor glutil.Enum) { d.record("BlendFunc", sfactor, dfactor) }
func (d *Driver) DepthFunc(fn glutil.Enum)               { d.record("DepthFunc", fn) }

func (d *Driver) ClearColor(r, g, b, a float32) { d.record("ClearColor", r, g, b, a) }
func (d *Driver) Clear(mask glutil.Enum)        { d.record("Clear", mask) }

func (d *Driver) Viewport(x, y, width, height int32) {
	d.record("Viewport", x, y, width, height)
	if width < 0 || height < 0 {
		d.raise(glutil.INVALID_VALUE)
	}
}

func (d *Driver) DrawArrays(mode glutil.Enum, first, count int32) {
	d.record("DrawArrays", mode, first, count)
	if count < 0 {
		d.raise(glutil.INVALID_VALUE)
	}
}

func (d *Driver) DrawElements(mode glutil.Enum, count int32, xtype glutil.Enum, offset uintptr) {
	d.record("DrawElements", mode, count, xtype, offset)
	if count < 0 {
		d.raise(glutil.INVALID_VALUE)
	}
}
