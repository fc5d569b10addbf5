// Package scratch holds a reusable per-frame staging buffer for instance
// attribute data. Single-threaded usage: the render loop resets it once per
// frame, the game layers pack offsets/sizes into it, and the slices handed
// out stay valid until the next Reset.
package scratch

import "github.com/go-gl/mathgl/mgl32"

// Package-level reusable buffer (single-threaded usage).
// Initialize once with Init(capacity in floats). Reset() every frame.
var buf []float32

// Init sets up the global staging buffer. Call once at startup.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 256
	}
	buf = make([]float32, 0, capacity)
}

// Reset clears the buffer length without freeing memory. Call once per
// frame before packing instance data.
func Reset() { buf = buf[:0] }

// Len returns the current length in floats.
func Len() int { return len(buf) }

// Cap returns the current capacity. Useful for tuning.
func Cap() int { return cap(buf) }

// GrowTo increases capacity (and copies current contents) if needed.
// Prefer calling this during load, not every frame.
func GrowTo(minCapacity int) {
	if minCapacity <= cap(buf) {
		return
	}
	nb := make([]float32, len(buf), minCapacity)
	copy(nb, buf)
	buf = nb
}

// Mark returns a bookmark to later slice the packed output.
// Example: m := scratch.Mark(); scratch.Vec2(pos); va.UpdateAttribute(1, 0, scratch.From(m))
func Mark() int { return len(buf) }

// From returns the floats packed since mark. The slice aliases the staging
// buffer; upload it before the next Reset.
func From(mark int) []float32 { return buf[mark:] }

// Append packs raw floats.
func Append(vals ...float32) { buf = append(buf, vals...) }

// Vec2 packs a 2-component vector, the payload shape of the per-instance
// offset and size attributes.
func Vec2(v mgl32.Vec2) { buf = append(buf, v.X(), v.Y()) }
