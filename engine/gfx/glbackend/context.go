package glbackend

import (
	"errors"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/pong/engine/colors"
	"github.com/hubastard/pong/engine/core"
)

// Context owns the viewport dimensions and the programs that consume the
// screen-space projection. It replaces the usual pile of package-level
// width/height/program globals: the run loop routes resize events here and
// every watched program gets the recomputed projection before the next
// frame's draws.
type Context struct {
	width, height int
	clear         colors.Color
	programs      []*Program
}

// NewContext prepares global GL state for 2D rendering. The window must
// have made its GL context current on this thread already.
func NewContext(_ core.Window, cfg core.Config) (*Context, error) {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	return &Context{clear: cfg.ClearColor}, nil
}

// WatchProgram registers a program to receive projection updates on every
// resize. If the viewport is already known the projection is uploaded
// immediately.
func (c *Context) WatchProgram(p *Program) error {
	if !p.Valid() {
		return errors.New("watch program: invalid program handle")
	}
	c.programs = append(c.programs, p)
	if c.width > 0 && c.height > 0 {
		return c.project(p)
	}
	return nil
}

func (c *Context) project(p *Program) error {
	proj, err := Orthographic(0, float32(c.width), 0, float32(c.height), 0, 1)
	if err != nil {
		return err
	}
	p.SetMat4(ProjectionUniform, proj)
	return nil
}

// Resize stores the new pixel dimensions, updates the GL viewport and
// re-uploads the projection to every watched program. Vertex and instance
// buffers are untouched.
func (c *Context) Resize(w, h int) error {
	c.width, c.height = w, h
	gl.Viewport(0, 0, int32(w), int32(h))
	for _, p := range c.programs {
		if err := c.project(p); err != nil {
			return err
		}
	}
	return nil
}

// Size returns the current viewport dimensions in pixels.
func (c *Context) Size() (int, int) { return c.width, c.height }

// Clear wipes the color buffer with the configured clear color.
func (c *Context) Clear() {
	gl.ClearColor(c.clear[0], c.clear[1], c.clear[2], c.clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Destroy drops the watched-program list. The programs and buffers
// themselves are owned by the scene code that created them and are
// destroyed there, in reverse creation order.
func (c *Context) Destroy() {
	c.programs = nil
}
