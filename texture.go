package glutil

// Texture is a reference to a texture object. The target it binds to is
// fixed at creation.
type Texture struct {
	ref
	target Enum
}

// NewTexture allocates a texture object for target (TEXTURE_2D,
// TEXTURE_CUBE_MAP, ...).
func (c *Context) NewTexture(target Enum) (*Texture, error) {
	id := c.driver.GenTexture()
	if err := check(c.driver); err != nil {
		return nil, err
	}
	return &Texture{ref: ref{h: newHandle(c, "texture", id, deleteTexture)}, target: target}, nil
}

func deleteTexture(d Driver, id uint32) { d.DeleteTexture(id) }

// Clone returns a new reference to the same texture object.
func (t *Texture) Clone() *Texture {
	return &Texture{ref: t.clone(), target: t.target}
}

// Target returns the texture's binding target.
func (t *Texture) Target() Enum {
	return t.target
}

// Bind binds the texture to its target on the active texture unit.
func (t *Texture) Bind() error {
	if err := t.live(); err != nil {
		return err
	}
	d := t.driver()
	d.BindTexture(t.target, t.ID())
	return check(d)
}

// Unbind binds texture 0 to the texture's target.
func (t *Texture) Unbind() error {
	if err := t.live(); err != nil {
		return err
	}
	d := t.driver()
	d.BindTexture(t.target, 0)
	return check(d)
}

// UnbindTexture binds texture 0 to target.
func (c *Context) UnbindTexture(target Enum) error {
	c.driver.BindTexture(target, 0)
	return check(c.driver)
}

// Image2D specifies a two-dimensional image for the texture's target, which
// must be bound. pixels is passed to the driver unchecked: the caller makes
// sure it is a pointer or slice whose layout matches format and xtype and
// that holds width*height texels.
func (t *Texture) Image2D(level, internalFormat, width, height, border int32, format, xtype Enum, pixels any) error {
	return t.image2D(t.target, level, internalFormat, width, height, border, format, xtype, pixels)
}

func (t *Texture) image2D(target Enum, level, internalFormat, width, height, border int32, format, xtype Enum, pixels any) error {
	if err := t.live(); err != nil {
		return err
	}
	d := t.driver()
	d.TexImage2D(target, level, internalFormat, width, height, border, format, xtype, pixels)
	return check(d)
}

// Parameter applies a sampling parameter to the bound texture.
func (t *Texture) Parameter(p TexParameter) error {
	pname, value := p.texParameter()
	return t.ParameterInt(pname, value)
}

// ParameterInt sets an integer parameter on the bound texture.
func (t *Texture) ParameterInt(pname Enum, value int32) error {
	if err := t.live(); err != nil {
		return err
	}
	d := t.driver()
	d.TexParameteri(t.target, pname, value)
	return check(d)
}

// GenerateMipmap builds the mipmap chain of the bound texture.
func (t *Texture) GenerateMipmap() error {
	if err := t.live(); err != nil {
		return err
	}
	d := t.driver()
	d.GenerateMipmap(t.target)
	return check(d)
}
