package glutil

import "strings"

// ShaderSource holds the GLSL sources of a two-stage program.
type ShaderSource struct {
	Vertex   string
	Fragment string
}

// Program is a reference to a linked program object.
type Program struct {
	ref
}

// NewProgram compiles both stages of src and links them into a program.
//
// A stage that fails to compile yields a *CompileError carrying the driver's
// info log, and a failed link yields a *LinkError. The intermediate shader
// objects are deleted before NewProgram returns.
func (c *Context) NewProgram(src ShaderSource) (*Program, error) {
	vs, err := c.compileShader(VERTEX_SHADER, "vertex", src.Vertex)
	if err != nil {
		return nil, err
	}
	defer c.deleteShader(vs)

	fs, err := c.compileShader(FRAGMENT_SHADER, "fragment", src.Fragment)
	if err != nil {
		return nil, err
	}
	defer c.deleteShader(fs)

	d := c.driver
	id := d.CreateProgram()
	if s := checkString(d); s != "" {
		return nil, &LinkError{Log: s}
	}
	p := &Program{ref{h: newHandle(c, "program", id, deleteProgram)}}

	if err := p.link(vs, fs); err != nil {
		p.Release()
		return nil, err
	}
	return p, nil
}

func deleteProgram(d Driver, id uint32) { d.DeleteProgram(id) }

func (p *Program) link(vs, fs uint32) error {
	d := p.driver()
	id := p.ID()

	d.AttachShader(id, vs)
	if s := checkString(d); s != "" {
		return &LinkError{Log: s}
	}
	d.AttachShader(id, fs)
	if s := checkString(d); s != "" {
		return &LinkError{Log: s}
	}
	d.LinkProgram(id)
	if s := checkString(d); s != "" {
		return &LinkError{Log: s}
	}

	status := d.GetProgrami(id, LINK_STATUS)
	if s := checkString(d); s != "" {
		return &LinkError{Log: s}
	}
	if status == int32(FALSE) {
		log := cleanLog(d.GetProgramInfoLog(id))
		if s := checkString(d); s != "" {
			return &LinkError{Log: s}
		}
		if log == "" {
			log = "no info log"
		}
		return &LinkError{Log: log}
	}
	return nil
}

// compileShader creates and compiles one shader stage. On failure the shader
// object has already been deleted.
func (c *Context) compileShader(stage Enum, name, src string) (uint32, error) {
	if strings.IndexByte(src, 0) >= 0 {
		return 0, &CompileError{Stage: name, Log: "source contains a NUL byte"}
	}

	d := c.driver
	id := d.CreateShader(stage)
	if s := checkString(d); s != "" {
		return 0, &CompileError{Stage: name, Log: s}
	}

	fail := func(log string) (uint32, error) {
		c.deleteShader(id)
		return 0, &CompileError{Stage: name, Log: log}
	}

	d.ShaderSource(id, src)
	if s := checkString(d); s != "" {
		return fail(s)
	}
	d.CompileShader(id)
	if s := checkString(d); s != "" {
		return fail(s)
	}

	status := d.GetShaderi(id, COMPILE_STATUS)
	if s := checkString(d); s != "" {
		return fail(s)
	}
	if status == int32(FALSE) {
		log := cleanLog(d.GetShaderInfoLog(id))
		if s := checkString(d); s != "" {
			return fail(s)
		}
		if log == "" {
			log = "no info log"
		}
		return fail(log)
	}
	return id, nil
}

func (c *Context) deleteShader(id uint32) {
	c.driver.DeleteShader(id)
	if err := check(c.driver); err != nil {
		c.releaseFailed("shader", id, err)
	}
}

// Clone returns a new reference to the same program object.
func (p *Program) Clone() *Program {
	return &Program{p.clone()}
}

// Use makes p the current program.
func (p *Program) Use() error {
	if err := p.live(); err != nil {
		return err
	}
	d := p.driver()
	d.UseProgram(p.ID())
	return check(d)
}

// UniformLocation returns the location of the named uniform, or -1 if the
// program has no active uniform by that name. Names containing a NUL byte
// cannot reach the driver and fail with ErrInvalidOperation.
func (p *Program) UniformLocation(name string) (int32, error) {
	if err := p.live(); err != nil {
		return -1, err
	}
	if strings.IndexByte(name, 0) >= 0 {
		return -1, ErrInvalidOperation
	}
	d := p.driver()
	loc := d.GetUniformLocation(p.ID(), name)
	if err := check(d); err != nil {
		return -1, err
	}
	return loc, nil
}

// AttribLocation returns the slot of the named vertex attribute, or -1 if
// the program has no active attribute by that name. Names containing a NUL
// byte fail with ErrInvalidOperation.
func (p *Program) AttribLocation(name string) (int32, error) {
	if err := p.live(); err != nil {
		return -1, err
	}
	if strings.IndexByte(name, 0) >= 0 {
		return -1, ErrInvalidOperation
	}
	d := p.driver()
	loc := d.GetAttribLocation(p.ID(), name)
	if err := check(d); err != nil {
		return -1, err
	}
	return loc, nil
}
