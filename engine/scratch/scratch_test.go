package scratch

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkAndFrom(t *testing.T) {
	Init(16)

	m := Mark()
	Vec2(mgl32.Vec2{30, 300})
	Vec2(mgl32.Vec2{770, 300})
	assert.Equal(t, []float32{30, 300, 770, 300}, From(m))

	m2 := Mark()
	Vec2(mgl32.Vec2{400, 300})
	assert.Equal(t, []float32{400, 300}, From(m2))
	assert.Equal(t, 6, Len())

	Reset()
	assert.Equal(t, 0, Len())
	assert.GreaterOrEqual(t, Cap(), 16, "reset keeps the allocation")
}

func TestAppendAndGrow(t *testing.T) {
	Init(4)
	Append(1, 2, 3, 4)
	require.Equal(t, 4, Len())

	GrowTo(64)
	assert.GreaterOrEqual(t, Cap(), 64)
	assert.Equal(t, []float32{1, 2, 3, 4}, From(0), "grow preserves contents")

	before := Cap()
	GrowTo(8) // never shrinks
	assert.Equal(t, before, Cap())
}

func TestInitDefaultsCapacity(t *testing.T) {
	Init(0)
	assert.Greater(t, Cap(), 0)
}
