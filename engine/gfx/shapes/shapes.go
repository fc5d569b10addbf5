// Package shapes generates the fixed-topology geometry used by the game:
// a unit quad and a circle triangle fan. Everything here is plain vertex
// and index data; uploading it is the backend's job.
package shapes

import "math"

// Quad returns a unit quad centered on the origin as 4 xy positions and 6
// indices forming two triangles. Scaled by the per-instance size attribute
// and translated by the per-instance offset at draw time.
func Quad() (vertices []float32, indices []uint32) {
	vertices = []float32{
		0.5, 0.5,
		-0.5, 0.5,
		-0.5, -0.5,
		0.5, -0.5,
	}
	indices = []uint32{
		0, 1, 2,
		2, 3, 0,
	}
	return vertices, indices
}

// CircleFan returns a unit-diameter circle as a closed triangle fan: the
// center vertex is stored first, followed by n rim vertices. Triangle i is
// (0, i+1, i+2); the final triangle wraps back to rim vertex 1 to close the
// fan, so the index list always holds 3*n entries.
func CircleFan(n int) (vertices []float32, indices []uint32) {
	if n < 3 {
		n = 3
	}
	vertices = make([]float32, 0, (n+1)*2)
	vertices = append(vertices, 0, 0)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		vertices = append(vertices,
			0.5*float32(math.Cos(theta)),
			0.5*float32(math.Sin(theta)),
		)
	}

	indices = make([]uint32, 0, n*3)
	for i := 0; i < n; i++ {
		next := uint32(i + 2)
		if i == n-1 {
			next = 1
		}
		indices = append(indices, 0, uint32(i+1), next)
	}
	return vertices, indices
}
