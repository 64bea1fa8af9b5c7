package glutil

import (
	"fmt"
	"log/slog"
)

// Context binds handle types and state helpers to one Driver.
//
// A Context is not safe for concurrent use. Driver binding state (current
// buffer, texture, program and vertex array) is global to the thread that
// owns the GL context, so every call must come from that thread, in program
// order.
type Context struct {
	driver    Driver
	logger    *slog.Logger
	onRelease func(error)
}

// Option configures a Context.
type Option func(*Context)

// WithLogger sets the logger for this context instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Context) { c.logger = l }
}

// WithReleaseFailure sets the function called when the driver reports an
// error while deleting a resource. Release has no way to return the error,
// so the default panics.
func WithReleaseFailure(fn func(error)) Option {
	return func(c *Context) { c.onRelease = fn }
}

// New creates a Context over d.
func New(d Driver, opts ...Option) *Context {
	c := &Context{driver: d}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Driver returns the underlying driver.
func (c *Context) Driver() Driver {
	return c.driver
}

// Logger returns the logger used by this context.
func (c *Context) Logger() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return Logger()
}

// releaseFailed handles a driver error raised by a delete call.
func (c *Context) releaseFailed(kind string, id uint32, err error) {
	c.Logger().Error("glutil: resource release failed", "kind", kind, "id", id, "err", err)
	err = fmt.Errorf("%s %d: release failed: %w", kind, id, err)
	if c.onRelease != nil {
		c.onRelease(err)
		return
	}
	panic(err)
}
