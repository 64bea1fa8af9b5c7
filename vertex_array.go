package glutil

// VertexArray is a reference to a vertex array object.
type VertexArray struct {
	ref
}

// NewVertexArray allocates a vertex array object.
func (c *Context) NewVertexArray() (*VertexArray, error) {
	id := c.driver.GenVertexArray()
	if err := check(c.driver); err != nil {
		return nil, err
	}
	return &VertexArray{ref{h: newHandle(c, "vertex array", id, deleteVertexArray)}}, nil
}

func deleteVertexArray(d Driver, id uint32) { d.DeleteVertexArray(id) }

// Clone returns a new reference to the same vertex array object.
func (v *VertexArray) Clone() *VertexArray {
	return &VertexArray{v.clone()}
}

// Bind makes v the current vertex array.
func (v *VertexArray) Bind() error {
	if err := v.live(); err != nil {
		return err
	}
	d := v.driver()
	d.BindVertexArray(v.ID())
	return check(d)
}

// UnbindVertexArray binds vertex array 0.
func (c *Context) UnbindVertexArray() error {
	c.driver.BindVertexArray(0)
	return check(c.driver)
}
