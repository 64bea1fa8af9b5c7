package glutil

// Enable turns on a server-side capability such as BLEND or DEPTH_TEST.
func (c *Context) Enable(capability Enum) error {
	c.driver.Enable(capability)
	return check(c.driver)
}

// Disable turns off a server-side capability.
func (c *Context) Disable(capability Enum) error {
	c.driver.Disable(capability)
	return check(c.driver)
}

// BlendFunc sets the source and destination blend factors.
func (c *Context) BlendFunc(sfactor, dfactor Enum) error {
	c.driver.BlendFunc(sfactor, dfactor)
	return check(c.driver)
}

// DepthFunc sets the depth comparison function.
func (c *Context) DepthFunc(fn Enum) error {
	c.driver.DepthFunc(fn)
	return check(c.driver)
}

// ClearColor sets the color used by Clear.
func (c *Context) ClearColor(r, g, b, a float32) error {
	c.driver.ClearColor(r, g, b, a)
	return check(c.driver)
}

// Clear clears the buffers selected by mask.
func (c *Context) Clear(mask Enum) error {
	c.driver.Clear(mask)
	return check(c.driver)
}

// Viewport sets the viewport rectangle in window coordinates.
func (c *Context) Viewport(x, y, width, height int32) error {
	c.driver.Viewport(x, y, width, height)
	return check(c.driver)
}

// DrawArrays renders count vertices starting at first from the bound
// vertex array.
func (c *Context) DrawArrays(mode Enum, first, count int32) error {
	c.driver.DrawArrays(mode, first, count)
	return check(c.driver)
}

// DrawElements renders count indices of type xtype read at byte offset from
// the bound element array buffer.
func (c *Context) DrawElements(mode Enum, count int32, xtype Enum, offset uintptr) error {
	c.driver.DrawElements(mode, count, xtype, offset)
	return check(c.driver)
}
