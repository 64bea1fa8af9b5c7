package glutil

// Buffer is a reference to a buffer object (vertex, index or any other
// buffer target).
type Buffer struct {
	ref
}

// NewBuffer allocates a buffer object.
func (c *Context) NewBuffer() (*Buffer, error) {
	id := c.driver.GenBuffer()
	if err := check(c.driver); err != nil {
		return nil, err
	}
	return &Buffer{ref{h: newHandle(c, "buffer", id, deleteBuffer)}}, nil
}

func deleteBuffer(d Driver, id uint32) { d.DeleteBuffer(id) }

// Clone returns a new reference to the same buffer object.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{b.clone()}
}

// Bind binds the buffer to target.
func (b *Buffer) Bind(target Enum) error {
	if err := b.live(); err != nil {
		return err
	}
	d := b.driver()
	d.BindBuffer(target, b.ID())
	return check(d)
}

// UnbindBuffer binds buffer 0 to target.
func (c *Context) UnbindBuffer(target Enum) error {
	c.driver.BindBuffer(target, 0)
	return check(c.driver)
}

// BufferData uploads size bytes from data to the buffer bound to target.
// data is a pointer or a slice; nil allocates uninitialised storage.
func (c *Context) BufferData(target Enum, size int, data any, usage Enum) error {
	c.driver.BufferData(target, size, data, usage)
	return check(c.driver)
}

// VertexBufferData uploads data to the buffer bound to target in one call.
// The byte size is len(data) times T's layout stride.
func VertexBufferData[T any](c *Context, data []T, target, usage Enum) error {
	l, err := LayoutOf[T]()
	if err != nil {
		return err
	}
	size := len(data) * int(l.Stride())
	if len(data) == 0 {
		return c.BufferData(target, 0, nil, usage)
	}
	return c.BufferData(target, size, data, usage)
}
