package glbackend

import (
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Topologies and index types accepted by Drawable, re-exported so callers
// outside the backend don't reach into the gl package.
const (
	Triangles   = gl.TRIANGLES
	IndexUint32 = gl.UNSIGNED_INT
)

// Drawable composes a vertex array, a program and an instance count into
// one indexed, instanced draw invocation. It borrows the vertex array for
// the duration of a Draw call only; ownership stays with the scene code
// that created it.
type Drawable struct {
	VA        *VertexArray
	Program   *Program
	Mode      uint32 // primitive topology, e.g. Triangles
	Count     int32  // indices per instance
	IndexType uint32 // index element type, e.g. IndexUint32
	Offset    int    // byte offset into the index buffer
	Instances int32
}

// Draw binds the program and vertex array and issues a single instanced
// draw call. Instanced attribute data must already be current: updates
// happen-before draws within a frame, and the call observes whatever buffer
// state was last written.
func (d Drawable) Draw() {
	d.Program.Bind()
	gl.BindVertexArray(d.VA.id)
	gl.DrawElementsInstanced(d.Mode, d.Count, d.IndexType, gl.PtrOffset(d.Offset), d.Instances)
	gl.BindVertexArray(0)
}
