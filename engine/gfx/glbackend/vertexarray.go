package glbackend

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
)

const floatSize = 4 // byte size of one float32 component

// bufferData allocates a buffer object and uploads data in one step.
// Generic so vertex (float32) and index (uint32) uploads share one path.
func bufferData[T float32 | uint32](target uint32, data []T, usage uint32) uint32 {
	var bo uint32
	gl.GenBuffers(1, &bo)
	gl.BindBuffer(target, bo)
	gl.BufferData(target, len(data)*int(unsafe.Sizeof(T(0))), gl.Ptr(data), usage)
	return bo
}

// attrib records one buffer object bound into a vertex array: its component
// layout, divisor, and allocated byte size.
type attrib struct {
	buffer     uint32
	components int32
	divisor    uint32
	sizeBytes  int
}

// VertexArray owns one vertex-array object plus the buffer objects bound
// into it: static per-vertex data, per-instance attribute buffers, and one
// index buffer. Static buffers are immutable after attach; instanced
// buffers are rewritten in place each frame via UpdateAttribute.
type VertexArray struct {
	id      uint32
	attribs map[uint32]*attrib
	indices uint32
}

// NewVertexArray allocates a vertex-array object with no buffers attached.
func NewVertexArray() *VertexArray {
	va := &VertexArray{attribs: map[uint32]*attrib{}}
	gl.GenVertexArrays(1, &va.id)
	return va
}

func (va *VertexArray) attach(index uint32, components int32, data []float32, divisor uint32, usage uint32) error {
	// Validation happens before any GL call so a bad attach leaves the VAO
	// exactly as it was.
	if _, dup := va.attribs[index]; dup {
		return fmt.Errorf("attribute %d already attached", index)
	}
	if components < 1 || components > 4 {
		return fmt.Errorf("attribute %d: components must be 1..4, got %d", index, components)
	}

	gl.BindVertexArray(va.id)
	bo := bufferData(gl.ARRAY_BUFFER, data, usage)
	gl.EnableVertexAttribArray(index)
	gl.VertexAttribPointer(index, components, gl.FLOAT, false, components*floatSize, gl.PtrOffset(0))
	gl.VertexAttribDivisor(index, divisor)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	va.attribs[index] = &attrib{
		buffer:     bo,
		components: components,
		divisor:    divisor,
		sizeBytes:  len(data) * floatSize,
	}
	return nil
}

// AttachStatic uploads immutable per-vertex data (divisor 0), e.g. the
// shared quad or circle geometry.
func (va *VertexArray) AttachStatic(index uint32, components int32, data []float32) error {
	return va.attach(index, components, data, 0, gl.STATIC_DRAW)
}

// AttachInstanced uploads per-instance data whose value advances once every
// divisor instances during an instanced draw. Divisor must be >= 1; use
// AttachStatic for per-vertex data.
func (va *VertexArray) AttachInstanced(index uint32, components int32, data []float32, divisor uint32) error {
	if divisor < 1 {
		return fmt.Errorf("attribute %d: instanced divisor must be >= 1, got %d", index, divisor)
	}
	return va.attach(index, components, data, divisor, gl.DYNAMIC_DRAW)
}

// AttachIndices uploads the element list used by indexed draws.
func (va *VertexArray) AttachIndices(data []uint32) {
	gl.BindVertexArray(va.id)
	va.indices = bufferData(gl.ELEMENT_ARRAY_BUFFER, data, gl.STATIC_DRAW)
	gl.BindVertexArray(0)
}

// checkUpdateRange validates a sub-range write against an allocation.
func checkUpdateRange(sizeBytes, byteOffset, dataBytes int) error {
	if byteOffset < 0 {
		return fmt.Errorf("negative byte offset %d", byteOffset)
	}
	if byteOffset+dataBytes > sizeBytes {
		return fmt.Errorf("update range [%d,%d) exceeds buffer size %d", byteOffset, byteOffset+dataBytes, sizeBytes)
	}
	return nil
}

// UpdateAttribute overwrites a sub-range of an instanced attribute buffer in
// place. The allocation and the attribute pointer configuration survive the
// write; this is the per-frame hot path for offset/size updates.
func (va *VertexArray) UpdateAttribute(index uint32, byteOffset int, data []float32) error {
	a, ok := va.attribs[index]
	if !ok {
		return fmt.Errorf("attribute %d not attached", index)
	}
	if a.divisor == 0 {
		return fmt.Errorf("attribute %d is static", index)
	}
	if err := checkUpdateRange(a.sizeBytes, byteOffset, len(data)*floatSize); err != nil {
		return fmt.Errorf("attribute %d: %w", index, err)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, a.buffer)
	gl.BufferSubData(gl.ARRAY_BUFFER, byteOffset, len(data)*floatSize, gl.Ptr(data))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return nil
}

// Destroy releases every attribute buffer and the index buffer, then the
// vertex-array object itself. Safe to call more than once.
func (va *VertexArray) Destroy() {
	for index, a := range va.attribs {
		gl.DeleteBuffers(1, &a.buffer)
		delete(va.attribs, index)
	}
	if va.indices != 0 {
		gl.DeleteBuffers(1, &va.indices)
		va.indices = 0
	}
	if va.id != 0 {
		gl.DeleteVertexArrays(1, &va.id)
		va.id = 0
	}
}
