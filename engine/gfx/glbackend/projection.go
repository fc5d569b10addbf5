package glbackend

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ProjectionUniform is the uniform name every shader in this engine declares
// for the screen-space projection matrix. Shaders that misname it render
// untransformed; see Program.SetMat4.
const ProjectionUniform = "projection"

// DegenerateProjectionError reports orthographic bounds that collapse one of
// the box dimensions to zero extent.
type DegenerateProjectionError struct {
	Left, Right, Bottom, Top, Near, Far float32
}

func (e *DegenerateProjectionError) Error() string {
	return fmt.Sprintf("degenerate orthographic bounds (left=%g right=%g bottom=%g top=%g near=%g far=%g)",
		e.Left, e.Right, e.Bottom, e.Top, e.Near, e.Far)
}

// Orthographic maps the given box onto the canonical clip-space cube:
// (left,bottom,near) lands on (-1,-1,-1) and (right,top,far) on (1,1,1).
// Bounds with a zero-extent dimension are rejected, never clamped.
func Orthographic(left, right, bottom, top, near, far float32) (mgl32.Mat4, error) {
	if right == left || top == bottom || far == near {
		return mgl32.Ident4(), &DegenerateProjectionError{
			Left: left, Right: right, Bottom: bottom, Top: top, Near: near, Far: far,
		}
	}
	return mgl32.Ortho(left, right, bottom, top, near, far), nil
}
