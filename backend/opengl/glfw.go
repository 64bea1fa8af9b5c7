package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/glutil"
)

// WindowConfig describes the window created by NewWindow.
type WindowConfig struct {
	Width, Height int
	Title         string
	// VSync sets a swap interval of 1.
	VSync bool
	// Hidden creates the window invisible, for offscreen tests.
	Hidden bool
	// CloseOnEscape closes the window when Escape is pressed.
	CloseOnEscape bool
}

// Window is a GLFW window whose OpenGL 4.1 core context is current on the
// calling thread.
type Window struct {
	*glfw.Window
	ctx *glutil.Context
}

// NewWindow initialises GLFW, creates a window with a 4.1 core profile
// context, makes it current and loads the GL function pointers. The caller
// must be on the thread locked with runtime.LockOSThread and must call
// Destroy when done.
func NewWindow(cfg WindowConfig, opts ...glutil.Option) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	w := &Window{Window: win, ctx: glutil.New(NewDriver(), opts...)}
	if cfg.CloseOnEscape {
		win.SetKeyCallback(w.keyCallback)
	}
	return w, nil
}

// Context returns the glutil context bound to this window's GL context.
func (w *Window) Context() *glutil.Context {
	return w.ctx
}

// Frame polls events and sets the viewport to the framebuffer size. It
// reports false once the window should close.
func (w *Window) Frame() (bool, error) {
	glfw.PollEvents()
	if w.ShouldClose() {
		return false, nil
	}
	fw, fh := w.GetFramebufferSize()
	if err := w.ctx.Viewport(0, 0, int32(fw), int32(fh)); err != nil {
		return false, err
	}
	return true, nil
}

// Aspect returns the framebuffer width divided by its height.
func (w *Window) Aspect() float32 {
	fw, fh := w.GetFramebufferSize()
	if fh == 0 {
		return 1
	}
	return float32(fw) / float32(fh)
}

// Destroy destroys the window and terminates GLFW. Resources created through
// Context must be released before.
func (w *Window) Destroy() {
	w.Window.Destroy()
	glfw.Terminate()
}

func (w *Window) keyCallback(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		win.SetShouldClose(true)
	}
}
