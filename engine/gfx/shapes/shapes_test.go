package shapes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuad(t *testing.T) {
	verts, inds := Quad()
	require.Len(t, verts, 8, "4 xy positions")
	require.Len(t, inds, 6, "two triangles")
	for _, i := range inds {
		assert.Less(t, int(i), 4)
	}
	// Unit extent, centered on the origin.
	for i := 0; i < len(verts); i += 2 {
		assert.InDelta(t, 0.5, math.Abs(float64(verts[i])), 1e-6)
		assert.InDelta(t, 0.5, math.Abs(float64(verts[i+1])), 1e-6)
	}
}

func TestCircleFanTopology(t *testing.T) {
	const n = 8
	verts, inds := CircleFan(n)

	require.Len(t, verts, (n+1)*2, "center plus n rim vertices")
	require.Len(t, inds, n*3, "one triangle per rim segment")

	// Center first, rim on a diameter-1 circle.
	assert.Zero(t, verts[0])
	assert.Zero(t, verts[1])
	for i := 1; i <= n; i++ {
		x, y := float64(verts[i*2]), float64(verts[i*2+1])
		assert.InDelta(t, 0.5, math.Hypot(x, y), 1e-6, "rim vertex %d", i)
	}

	// Every triangle fans out from the center; the last one closes the ring
	// by wrapping back to rim vertex 1.
	for tri := 0; tri < n; tri++ {
		assert.EqualValues(t, 0, inds[tri*3])
		assert.EqualValues(t, tri+1, inds[tri*3+1])
	}
	for _, i := range inds {
		assert.LessOrEqual(t, int(i), n)
	}
	last := inds[len(inds)-3:]
	assert.Equal(t, []uint32{0, n, 1}, last)
}

func TestCircleFanClampsTinySegmentCounts(t *testing.T) {
	verts, inds := CircleFan(1)
	assert.Len(t, verts, 4*2)
	assert.Len(t, inds, 3*3)
}
