package glbackend

import (
	"errors"
	"testing"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileStageRejectsEmptySource(t *testing.T) {
	// A missing shader file arrives as an empty string and must fail before
	// the driver ever sees it.
	for _, src := range []string{"", "\x00", "\x00\x00"} {
		_, err := compileStage(src, gl.VERTEX_SHADER)
		require.Error(t, err)

		var ce *CompileError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, "vertex", ce.Stage)
		assert.Contains(t, ce.Log, "empty shader source")
	}
}

func TestErrorMessages(t *testing.T) {
	ce := &CompileError{Stage: "fragment", Log: "0:3: syntax error"}
	assert.Equal(t, "compile fragment shader: 0:3: syntax error", ce.Error())

	le := &LinkError{Log: "missing main"}
	assert.Equal(t, "link program: missing main", le.Error())
}

func TestStageName(t *testing.T) {
	assert.Equal(t, "vertex", stageName(gl.VERTEX_SHADER))
	assert.Equal(t, "fragment", stageName(gl.FRAGMENT_SHADER))
	assert.Contains(t, stageName(0x1234), "stage(")
}

func TestInvalidProgramIsInert(t *testing.T) {
	var nilProg *Program
	assert.False(t, nilProg.Valid())

	p := &Program{}
	assert.False(t, p.Valid())

	// All of these must be no-ops on an invalid handle, not GL calls.
	p.Bind()
	p.SetMat4(ProjectionUniform, mgl32.Ident4())
	p.SetVec4("uColor", mgl32.Vec4{1, 1, 1, 1})
	p.Destroy()
	p.Destroy()
	assert.False(t, p.Valid())
}
