package glutil

// handle is a driver object shared by every reference cloned from it.
// The object is deleted exactly once, when the last reference is released.
type handle struct {
	ctx    *Context
	kind   string
	id     uint32
	refs   int
	delete func(d Driver, id uint32)
}

func newHandle(c *Context, kind string, id uint32, del func(Driver, uint32)) *handle {
	c.Logger().Debug("glutil: created", "kind", kind, "id", id)
	return &handle{ctx: c, kind: kind, id: id, refs: 1, delete: del}
}

func (h *handle) drop() {
	h.refs--
	if h.refs > 0 {
		return
	}
	d := h.ctx.driver
	h.delete(d, h.id)
	if err := check(d); err != nil {
		h.ctx.releaseFailed(h.kind, h.id, err)
		return
	}
	h.ctx.Logger().Debug("glutil: deleted", "kind", h.kind, "id", h.id)
}

// ref is one owner of a handle. Handle types embed it.
type ref struct {
	h        *handle
	released bool
}

func (r *ref) clone() ref {
	if !r.released {
		r.h.refs++
	}
	return ref{h: r.h, released: r.released}
}

// ID returns the driver object name.
func (r *ref) ID() uint32 {
	return r.h.id
}

// Refs returns the number of live references sharing the object.
func (r *ref) Refs() int {
	return r.h.refs
}

// Release drops this reference. The driver object is deleted when the last
// reference is released. Releasing the same reference twice is a no-op.
func (r *ref) Release() {
	if r.released {
		return
	}
	r.released = true
	r.h.drop()
}

func (r *ref) live() error {
	if r.released {
		return ErrReleased
	}
	return nil
}

func (r *ref) driver() Driver {
	return r.h.ctx.driver
}
